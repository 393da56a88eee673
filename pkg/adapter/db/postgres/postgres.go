// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package postgres realizes the repo.Pool, repo.Conn, and repo.Tx
// interfaces on a PostgreSQL database using the GORM framework over
// the pgx driver. Repository packages (such as prefsrp) take the Conn
// or Tx objects and run their queries with GORM or plain SQL.
package postgres

// ApplicationName is reported to the server for each connection, so
// the parkshare sessions may be identified in pg_stat_activity.
const ApplicationName = "parkshare"
