// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package model defines the inner most layer of the Clean Architecture
// containing the business-level models, also called entities or domain.
// This layer may not depend on outter layers, while all other layers
// may depend on it.
// Models in this package carry no serialization tags. The adapters
// which talk to the remote parking service, the local storage, or the
// REST clients define their own wire structs and convert them to and
// from these models.
package model

import "time"

// Car models the device's own parked car, also known as the "my car"
// record. At most one Car exists per device and its existence is what
// makes the device Parked. It is created when a displayed spot is
// claimed and destroyed when the user leaves, re-publishing Coordinate
// as a new free spot.
type Car struct {
	Coordinate Coordinate // position of the car at the time of parking
	ParkedAt   time.Time  // when the spot was claimed, display-only
}

// Date formats the ParkedAt timestamp for display purposes, using the
// local time zone of the process. It is not meant to be parsed back.
func (c Car) Date() string {
	return c.ParkedAt.Local().Format("02/01/2006 15:04")
}
