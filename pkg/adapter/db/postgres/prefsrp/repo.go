// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package prefsrp implements the repo.Prefs interface on a PostgreSQL
// database. Each device has one row in the device_prefs table which
// holds its car record (all car columns are NULL when Unparked) and
// its disclaimer flag. This backend lets several devices of a fleet
// keep their state in one shared server.
package prefsrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/db/postgres"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
)

// Repo is a PostgreSQL based prefs repository for one device.
type Repo struct {
	pool   *postgres.Pool
	device uuid.UUID
}

// Open creates the device_prefs table (if it does not exist) using
// pool and returns a repository for the device rows. The pool is
// owned by the returned Repo and is closed by its Close method.
func Open(ctx context.Context, pool *postgres.Pool, device uuid.UUID) (*Repo, error) {
	if device == uuid.Nil {
		return nil, errors.New("nil device id")
	}
	err := pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		_, err := c.Exec(ctx, createTable)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("creating device_prefs table: %w", err)
	}
	return &Repo{pool: pool, device: device}, nil
}

func (r *Repo) conn(
	ctx context.Context, f func(ctx context.Context, c *postgres.Conn) error,
) error {
	return r.pool.Conn(ctx, func(ctx context.Context, c repo.Conn) error {
		return f(ctx, c.(*postgres.Conn))
	})
}

// Car returns the stored car record, or nil if the device is Unparked.
func (r *Repo) Car(ctx context.Context) (car *model.Car, err error) {
	err = r.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		car, err = Car(ctx, c, r.device)
		return err
	})
	return car, err
}

// SaveCar stores car, replacing any previous record.
func (r *Repo) SaveCar(ctx context.Context, car model.Car) error {
	return r.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		return c.Tx(ctx, func(ctx context.Context, tx repo.Tx) error {
			return SaveCar(ctx, tx.(*postgres.Tx), r.device, car)
		})
	})
}

// DeleteCar clears the car record, if any.
func (r *Repo) DeleteCar(ctx context.Context) error {
	return r.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		return DeleteCar(ctx, c, r.device)
	})
}

// DisclaimerAcked reports whether AckDisclaimer was called before.
func (r *Repo) DisclaimerAcked(ctx context.Context) (acked bool, err error) {
	err = r.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		acked, err = DisclaimerAcked(ctx, c, r.device)
		return err
	})
	return acked, err
}

// AckDisclaimer sets the disclaimer flag.
func (r *Repo) AckDisclaimer(ctx context.Context) error {
	return r.conn(ctx, func(ctx context.Context, c *postgres.Conn) error {
		return AckDisclaimer(ctx, c, r.device)
	})
}

// Close closes the connection pool.
func (r *Repo) Close() error {
	return r.pool.Close()
}
