// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package prefsrp implements the repo.Prefs interface on a Redis
// server. All preferences of one device are kept as fields of a single
// hash which is named after the device identifier, so one server may
// hold the preferences of many devices.
package prefsrp

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/momeni/parkshare/pkg/adapter/prefskv"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/redis/go-redis/v9"
)

// KeyPrefix is prepended to the device identifier to form the hash key.
const KeyPrefix = "parkshare:device:"

// Options contains the connection settings of a Redis prefs repository.
type Options struct {
	Addr     string
	Password string
	DB       int
	DeviceID uuid.UUID
}

// Repo is a Redis based prefs repository.
type Repo struct {
	rdb *redis.Client
	key string
}

// Open connects to the Redis server and checks the connection with a
// PING command.
func Open(ctx context.Context, opts Options) (*Repo, error) {
	if opts.DeviceID == uuid.Nil {
		return nil, errors.New("nil device id")
	}
	rdb := redis.NewClient(&redis.Options{
		Addr:     opts.Addr,
		Password: opts.Password,
		DB:       opts.DB,
	})
	if err := rdb.Ping(ctx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("pinging redis at %q: %w", opts.Addr, err)
	}
	return &Repo{rdb: rdb, key: KeyPrefix + opts.DeviceID.String()}, nil
}

// Car returns the stored car record, or nil if the device is Unparked.
func (r *Repo) Car(ctx context.Context) (*model.Car, error) {
	v, err := r.rdb.HGet(ctx, r.key, prefskv.KeyCar).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("reading car record: %w", err)
	}
	return prefskv.UnmarshalCar(v)
}

// SaveCar stores car, replacing any previous record.
func (r *Repo) SaveCar(ctx context.Context, car model.Car) error {
	v, err := prefskv.MarshalCar(car)
	if err != nil {
		return err
	}
	if err := r.rdb.HSet(ctx, r.key, prefskv.KeyCar, v).Err(); err != nil {
		return fmt.Errorf("writing car record: %w", err)
	}
	return nil
}

// DeleteCar removes the car record, if any.
func (r *Repo) DeleteCar(ctx context.Context) error {
	if err := r.rdb.HDel(ctx, r.key, prefskv.KeyCar).Err(); err != nil {
		return fmt.Errorf("deleting car record: %w", err)
	}
	return nil
}

// DisclaimerAcked reports whether AckDisclaimer was called before.
func (r *Repo) DisclaimerAcked(ctx context.Context) (bool, error) {
	v, err := r.rdb.HGet(ctx, r.key, prefskv.KeyDisclaimer).Result()
	switch {
	case errors.Is(err, redis.Nil):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("reading disclaimer flag: %w", err)
	}
	return v == prefskv.Acked, nil
}

// AckDisclaimer sets the disclaimer flag.
func (r *Repo) AckDisclaimer(ctx context.Context) error {
	err := r.rdb.HSet(ctx, r.key, prefskv.KeyDisclaimer, prefskv.Acked).Err()
	if err != nil {
		return fmt.Errorf("writing disclaimer flag: %w", err)
	}
	return nil
}

// Close closes the Redis client.
func (r *Repo) Close() error {
	return r.rdb.Close()
}
