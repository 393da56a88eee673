// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"log/slog"
)

// ErrCoordinateOutOfRange indicates that a latitude is not in the
// [-90, 90] range or a longitude is not in the [-180, 180] range.
var ErrCoordinateOutOfRange = errors.New("coordinate out of range")

// Coordinate represents a geographical location with a latitude and
// longitude in decimal degrees. It is shared by the reported spots and
// the device's own parked car record.
type Coordinate struct {
	Lat, Lon float64 // latitude and longitude of the geo-location
}

// Validate returns nil if both components of c are in their valid
// ranges. Otherwise, ErrCoordinateOutOfRange is returned after being
// wrapped with the offending values.
func (c Coordinate) Validate() error {
	if c.Lat < -90 || c.Lat > 90 || c.Lon < -180 || c.Lon > 180 {
		return fmt.Errorf("(%g, %g): %w", c.Lat, c.Lon, ErrCoordinateOutOfRange)
	}
	return nil
}

// String returns "lat,lon" with enough digits for a street-level
// position, as expected by most map navigation URLs.
func (c Coordinate) String() string {
	return fmt.Sprintf("%.6f,%.6f", c.Lat, c.Lon)
}

// LogValue implements slog.LogValuer, grouping both components.
func (c Coordinate) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Float64("lat", c.Lat),
		slog.Float64("lon", c.Lon),
	)
}
