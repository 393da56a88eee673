// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package repo

import "context"

// ConnHandler is a handler function which takes a context and a
// database connection. The connection is released after the handler
// returns.
type ConnHandler func(context.Context, Conn) error

// Pool represents a pool of SQL database connections, as used by the
// relational prefs repositories.
type Pool interface {
	// Conn acquires a connection, passes it to handler, and releases
	// it when handler returns. The handler error is returned.
	Conn(ctx context.Context, handler ConnHandler) error
}
