// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package prefsrp implements the repo.Prefs interface on a local SQLite
// database file, using the pure Go modernc.org/sqlite driver. It is the
// default storage of the device preferences.
package prefsrp

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/momeni/parkshare/pkg/adapter/prefskv"
	"github.com/momeni/parkshare/pkg/core/model"

	_ "modernc.org/sqlite"
)

// Repo is a SQLite based prefs repository.
type Repo struct {
	db *sql.DB
}

// Open opens (or creates) the SQLite database at path and creates the
// prefs table if it does not exist. The ":memory:" path may be used
// for an ephemeral database.
func Open(ctx context.Context, path string) (*Repo, error) {
	if path != ":memory:" {
		if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
			return nil, fmt.Errorf("creating database directory: %w", err)
		}
	}
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite %q: %w", path, err)
	}
	// a single connection serializes writers and keeps :memory: alive
	db.SetMaxOpenConns(1)
	r := &Repo{db: db}
	if err := r.migrate(ctx); err != nil {
		_ = db.Close()
		return nil, err
	}
	return r, nil
}

func (r *Repo) migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS prefs (
		key TEXT PRIMARY KEY,
		value TEXT NOT NULL
	);`
	if _, err := r.db.ExecContext(ctx, query); err != nil {
		return fmt.Errorf("creating prefs table: %w", err)
	}
	return nil
}

// Car returns the stored car record, or nil if the device is Unparked.
func (r *Repo) Car(ctx context.Context) (*model.Car, error) {
	v, ok, err := r.get(ctx, prefskv.KeyCar)
	if err != nil || !ok {
		return nil, err
	}
	return prefskv.UnmarshalCar(v)
}

// SaveCar stores car, replacing any previous record.
func (r *Repo) SaveCar(ctx context.Context, car model.Car) error {
	v, err := prefskv.MarshalCar(car)
	if err != nil {
		return err
	}
	return r.set(ctx, prefskv.KeyCar, v)
}

// DeleteCar removes the car record. It is not an error if there is
// no record.
func (r *Repo) DeleteCar(ctx context.Context) error {
	query := `DELETE FROM prefs WHERE key = ?`
	if _, err := r.db.ExecContext(ctx, query, prefskv.KeyCar); err != nil {
		return fmt.Errorf("deleting car record: %w", err)
	}
	return nil
}

// DisclaimerAcked reports whether AckDisclaimer was called before.
func (r *Repo) DisclaimerAcked(ctx context.Context) (bool, error) {
	v, ok, err := r.get(ctx, prefskv.KeyDisclaimer)
	return ok && v == prefskv.Acked, err
}

// AckDisclaimer sets the disclaimer flag.
func (r *Repo) AckDisclaimer(ctx context.Context) error {
	return r.set(ctx, prefskv.KeyDisclaimer, prefskv.Acked)
}

// Close closes the database.
func (r *Repo) Close() error {
	return r.db.Close()
}

func (r *Repo) get(ctx context.Context, key string) (string, bool, error) {
	query := `SELECT value FROM prefs WHERE key = ?`
	var v string
	err := r.db.QueryRowContext(ctx, query, key).Scan(&v)
	switch {
	case errors.Is(err, sql.ErrNoRows):
		return "", false, nil
	case err != nil:
		return "", false, fmt.Errorf("reading %q: %w", key, err)
	}
	return v, true, nil
}

func (r *Repo) set(ctx context.Context, key, value string) error {
	query := `
	INSERT INTO prefs (key, value) VALUES (?, ?)
	ON CONFLICT (key) DO UPDATE SET value = excluded.value`
	if _, err := r.db.ExecContext(ctx, query, key, value); err != nil {
		return fmt.Errorf("writing %q: %w", key, err)
	}
	return nil
}
