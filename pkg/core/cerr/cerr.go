// Copyright (c) 2023-2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package cerr contains the core errors which carry an HTTP status
// code, so the use cases layer may classify its failures once and the
// REST adapters may report them without knowing about each use case.
package cerr

import (
	"errors"
	"fmt"
	"net/http"
)

// Error wraps Err and annotates it with the HTTP status code which
// best describes the failure class.
type Error struct {
	Err            error
	HTTPStatusCode int
}

func (e *Error) Unwrap() error {
	return e.Err
}

func (e *Error) Error() string {
	return fmt.Sprintf("[%d] %s", e.HTTPStatusCode, e.Err.Error())
}

func BadRequest(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusBadRequest}
}

// Authorization is used when the device refused a required
// permission, such as the foreground location access.
func Authorization(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusForbidden}
}

func NotFound(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusNotFound}
}

// Conflict is used for actions which the current parking state does
// not allow, e.g., claiming a second spot while already parked.
func Conflict(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusConflict}
}

// Unavailable marks a transient failure of the remote parking service
// or of its transport. Such failures may be retried by the user.
func Unavailable(err error) *Error {
	return &Error{Err: err, HTTPStatusCode: http.StatusServiceUnavailable}
}

// Retryable reports whether err chain contains an Error which was
// created by Unavailable.
func Retryable(err error) bool {
	var ce *Error
	if errors.As(err, &ce) {
		return ce.HTTPStatusCode == http.StatusServiceUnavailable
	}
	return false
}
