// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package log

import (
	"log/slog"

	"github.com/momeni/parkshare/pkg/core/model"
)

// Valuer returns an Attr for the given slog.LogValuer value, such as
// a model.Spot or a model.Coordinate.
func Valuer(key string, value slog.LogValuer) slog.Attr {
	return slog.Any(key, value)
}

// Err returns an Attr for the given error value.
// The error value is resolved as a string by its Error() method.
// If error value is nil, the constant "no-error" value will be used.
func Err(key string, value error) slog.Attr {
	if value == nil {
		return slog.String(key, "no-error")
	}
	return slog.String(key, value.Error())
}

// SpotID returns an Attr for the given spot identifier.
func SpotID(key string, id model.SpotID) slog.Attr {
	return slog.String(key, string(id))
}

// State returns an Attr for the given parking state.
func State(key string, s model.ParkingState) slog.Attr {
	return slog.String(key, s.String())
}

// Action returns an Attr for the given gated action.
// Invalid actions are logged as "invalid" rather than panicking.
func Action(key string, a model.Action) slog.Attr {
	if a == model.ActionInvalid {
		return slog.String(key, "invalid")
	}
	return slog.String(key, a.String())
}
