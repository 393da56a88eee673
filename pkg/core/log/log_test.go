// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"

	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewHandler(t *testing.T) {
	var buf bytes.Buffer
	h, err := log.NewHandler(&buf, "json", "warn")
	require.NoError(t, err)
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	defer slog.SetDefault(prev)

	ctx := context.Background()
	log.Info(ctx, "hidden")
	log.Warn(ctx, "refresh failed",
		log.Err("err", errors.New("timeout")),
		log.SpotID("spot", "42"),
		log.State("state", model.Parked),
	)
	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, `"msg":"refresh failed"`)
	assert.Contains(t, out, `"err":"timeout"`)
	assert.Contains(t, out, `"spot":"42"`)
	assert.Contains(t, out, `"state":"parked"`)
	assert.Contains(t, out, "log_test.go")
}

func TestNewHandlerRejectsBadInput(t *testing.T) {
	_, err := log.NewHandler(&bytes.Buffer{}, "xml", "info")
	assert.Error(t, err)
	_, err = log.NewHandler(&bytes.Buffer{}, "text", "loud")
	assert.Error(t, err)
}

func TestErrAttrWithNil(t *testing.T) {
	assert.Equal(t, "no-error", log.Err("err", nil).Value.String())
	assert.Equal(t, "invalid", log.Action("a", model.ActionInvalid).Value.String())
}

func TestWithAttrs(t *testing.T) {
	var buf bytes.Buffer
	h, err := log.NewHandler(&buf, "text", "debug")
	require.NoError(t, err)
	prev := slog.Default()
	slog.SetDefault(slog.New(h))
	defer slog.SetDefault(prev)

	ctx := log.WithAttrs(context.Background(), slog.String("command", "claim"))
	child := log.WithAttrs(ctx, log.SpotID("spot", "7"))
	log.Debug(child, "claiming", slog.Int("try", 1))
	log.Debug(ctx, "done")
	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "command=claim spot=7 try=1")
	assert.Contains(t, lines[1], "command=claim")
	assert.NotContains(t, lines[1], "spot=7", "parent context is not changed")
	assert.Equal(t, ctx, log.WithAttrs(ctx))
}
