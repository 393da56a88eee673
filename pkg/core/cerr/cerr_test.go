// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package cerr_test

import (
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/momeni/parkshare/pkg/core/cerr"
	"github.com/stretchr/testify/assert"
)

func TestRetryable(t *testing.T) {
	base := errors.New("connection refused")
	wrapped := fmt.Errorf("reporting spot: %w", cerr.Unavailable(base))
	assert.True(t, cerr.Retryable(wrapped))
	assert.ErrorIs(t, wrapped, base)
	assert.False(t, cerr.Retryable(cerr.Conflict(base)))
	assert.False(t, cerr.Retryable(base))
	assert.False(t, cerr.Retryable(nil))
}

func TestErrorString(t *testing.T) {
	err := cerr.NotFound(errors.New("no such spot"))
	assert.Equal(t, http.StatusNotFound, err.HTTPStatusCode)
	assert.Equal(t, "[404] no such spot", err.Error())
}
