// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package device

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"sync"

	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
)

// Notifier logs every notice and, if W is not nil, prints it as one
// line. The W writes are serialized.
type Notifier struct {
	W io.Writer

	mu sync.Mutex
}

// Notify never blocks on the user.
func (n *Notifier) Notify(ctx context.Context, nt model.Notice) {
	attrs := []slog.Attr{
		slog.String("level", nt.Level.String()),
		slog.String("title", nt.Title),
		slog.String("body", nt.Body),
	}
	switch nt.Level {
	case model.NoticeError:
		log.Warn(ctx, "notice", attrs...)
	default:
		log.Info(ctx, "notice", attrs...)
	}
	if n.W == nil {
		return
	}
	n.mu.Lock()
	defer n.mu.Unlock()
	_, _ = fmt.Fprintf(n.W, "[%s] %s: %s\n", nt.Level, nt.Title, nt.Body)
}
