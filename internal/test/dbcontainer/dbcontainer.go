// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package dbcontainer is an internal helper for the test packages.
// It starts a temporary PostgreSQL container (using the docker API of
// a docker or podman service) and returns a *postgres.Pool which is
// connected to it. The PostgreSQL prefs repository tests use it and
// are skipped when no container engine can be found.
//
// When podman is used, its socket has to be exported beforehand, e.g.,
// DOCKER_HOST=unix://$XDG_RUNTIME_DIR/podman/podman.sock
package dbcontainer

import (
	"context"
	"errors"
	"net"
	"os"
	"testing"
	"time"

	"github.com/bitcomplete/sqltestutil"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/momeni/parkshare/pkg/adapter/db/postgres"
	"github.com/stretchr/testify/require"
)

// Version of the PostgreSQL image.
const Version = "16"

// codeStartingUp is the SQLSTATE of "the database system is starting
// up" errors.
const codeStartingUp = "57P03"

// Pool starts a PostgreSQL container and connects to it. The t test is
// skipped if no container engine is available and is failed if the
// container cannot be started or reached within timeout. Both of the
// container and the returned pool are released by t.Cleanup.
func Pool(ctx context.Context, t testing.TB, timeout time.Duration) *postgres.Pool {
	t.Helper()
	if !engineAvailable() {
		t.Skip("no container engine is available")
	}
	startCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	pg, err := sqltestutil.StartPostgresContainer(startCtx, Version)
	require.NoError(t, err, "starting postgres container")
	t.Cleanup(func() {
		if err := pg.Shutdown(ctx); err != nil {
			t.Errorf("shutting down postgres container: %v", err)
		}
	})
	pool, err := connect(startCtx, pg.ConnectionString())
	require.NoError(t, err, "connecting to postgres container")
	t.Cleanup(func() {
		if err := pool.Close(); err != nil {
			t.Errorf("closing postgres pool: %v", err)
		}
	})
	return pool
}

// connect retries while the DBMS is starting up or its port is not
// reachable yet, until ctx expires.
func connect(ctx context.Context, url string) (*postgres.Pool, error) {
	for {
		pool, err := postgres.NewPool(ctx, url)
		if err == nil {
			return pool, nil
		}
		if ctx.Err() != nil {
			return nil, err
		}
		var pgErr *pgconn.PgError
		var netErr net.Error
		switch {
		case errors.As(err, &pgErr) && pgErr.SQLState() == codeStartingUp:
		case errors.As(err, &netErr):
		default:
			return nil, err
		}
		time.Sleep(100 * time.Millisecond)
	}
}

func engineAvailable() bool {
	if os.Getenv("DOCKER_HOST") != "" {
		return true
	}
	_, err := os.Stat("/var/run/docker.sock")
	return err == nil
}
