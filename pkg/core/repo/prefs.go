// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import (
	"context"

	"github.com/momeni/parkshare/pkg/core/model"
)

//go:generate mockgen -source=prefs.go -destination=mocks/prefs.go -package=mocks

// Prefs is the device-local persisted state. It holds two entries:
// the "my car" record and the disclaimer acknowledgment flag.
type Prefs interface {
	// Car returns the persisted car record. A nil car with a nil error
	// is returned when no record exists, i.e., the device is Unparked.
	Car(ctx context.Context) (*model.Car, error)

	// SaveCar creates or replaces the car record.
	SaveCar(ctx context.Context, car model.Car) error

	// DeleteCar removes the car record. Removing a missing record is
	// not an error.
	DeleteCar(ctx context.Context) error

	// DisclaimerAcked reports whether the beta/community disclaimer
	// has been acknowledged on this device.
	DisclaimerAcked(ctx context.Context) (bool, error)

	// AckDisclaimer records the disclaimer acknowledgment. The flag is
	// set once and never reset.
	AckDisclaimer(ctx context.Context) error

	// Close releases the underlying storage resources.
	Close() error
}
