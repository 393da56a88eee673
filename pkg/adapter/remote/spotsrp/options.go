// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsrp

import (
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/google/uuid"
)

// Option represents an optional setting for the remote Repo.
type Option func(r *Repo) error

// WithTimeout sets the total timeout of each request, including the
// connection time, any redirects, and reading the response body.
// It is ignored if WithHTTPClient is used too.
func WithTimeout(timeout time.Duration) Option {
	return func(r *Repo) error {
		if d := int64(timeout); d <= 0 {
			return fmt.Errorf("timeout (%d) is not positive", d)
		}
		if r.timeout != 0 {
			return errors.New("timeout is already configured")
		}
		r.timeout = timeout
		return nil
	}
}

// WithDeviceID sends id in the DeviceHeader of mutating requests.
func WithDeviceID(id uuid.UUID) Option {
	return func(r *Repo) error {
		if id == uuid.Nil {
			return errors.New("nil device id")
		}
		if r.deviceID != "" {
			return errors.New("device id is already configured")
		}
		r.deviceID = id.String()
		return nil
	}
}

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(r *Repo) error {
		if c == nil {
			return errors.New("nil http client")
		}
		if r.client != nil {
			return errors.New("http client is already configured")
		}
		r.client = c
		return nil
	}
}
