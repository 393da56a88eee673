// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package prefskv contains the keys and the value encoding which are
// shared by the key-value based implementations of the repo.Prefs
// interface (i.e., the SQLite and Redis repositories), so a device may
// switch between them by copying the raw entries.
package prefskv

import (
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/parkshare/pkg/core/model"
)

// Keys of the persisted entries.
const (
	KeyCar        = "my_car"
	KeyDisclaimer = "disclaimer_acked"
)

// Acked is the value of the KeyDisclaimer entry once it is set.
const Acked = "true"

type wireCar struct {
	Latitude  float64   `json:"latitude"`
	Longitude float64   `json:"longitude"`
	ParkedAt  time.Time `json:"parked_at"`
}

// MarshalCar encodes car as a JSON object.
func MarshalCar(car model.Car) (string, error) {
	b, err := json.Marshal(wireCar{
		Latitude:  car.Coordinate.Lat,
		Longitude: car.Coordinate.Lon,
		ParkedAt:  car.ParkedAt.UTC(),
	})
	if err != nil {
		return "", fmt.Errorf("marshaling car: %w", err)
	}
	return string(b), nil
}

// UnmarshalCar decodes a JSON object which was encoded by MarshalCar.
func UnmarshalCar(s string) (*model.Car, error) {
	var wc wireCar
	if err := json.Unmarshal([]byte(s), &wc); err != nil {
		return nil, fmt.Errorf("unmarshaling car: %w", err)
	}
	car := &model.Car{
		Coordinate: model.Coordinate{Lat: wc.Latitude, Lon: wc.Longitude},
		ParkedAt:   wc.ParkedAt,
	}
	if err := car.Coordinate.Validate(); err != nil {
		return nil, fmt.Errorf("stored car: %w", err)
	}
	return car, nil
}
