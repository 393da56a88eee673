// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package settings

import (
	"errors"
	"log/slog"
	"strings"
	"time"
)

// Duration is a time.Duration which is read from and written to the
// configuration files in the time.ParseDuration format, e.g., 5s or
// 1m30s, instead of a plain number of nanoseconds.
type Duration time.Duration

// ParseDuration parses s as a Duration. It is used for the environment
// variables which override the settings of a configuration file.
func ParseDuration(s string) (*Duration, error) {
	d := new(Duration)
	if err := d.UnmarshalText([]byte(s)); err != nil {
		return nil, err
	}
	return d, nil
}

// UnmarshalText implements encoding.TextUnmarshaler, so a YAML scalar
// can be decoded as a Duration. The `d` receiver is only updated when
// data could be parsed.
func (d *Duration) UnmarshalText(data []byte) error {
	dd, err := time.ParseDuration(strings.TrimSpace(string(data)))
	if err != nil {
		return err
	}
	*d = Duration(dd)
	return nil
}

// Marshal returns the human-readable string form of `d`, dropping the
// zero trailing units (so 5m0s becomes 5m and 1h0m0s becomes 1h).
// A nil `d` gives a nil string.
func (d *Duration) Marshal() *string {
	if d == nil {
		return nil
	}
	s := (*time.Duration)(d).String()
	if strings.HasSuffix(s, "m0s") {
		s = s[:len(s)-2]
	}
	if strings.HasSuffix(s, "h0m") {
		s = s[:len(s)-2]
	}
	return &s
}

// MarshalText implements encoding.TextMarshaler using Marshal.
func (d *Duration) MarshalText() ([]byte, error) {
	if s := d.Marshal(); s != nil {
		return []byte(*s), nil
	}
	return nil, errors.New("nil duration")
}

// Std returns `d` as a time.Duration, or zero if `d` is nil.
func (d *Duration) Std() time.Duration {
	if d == nil {
		return 0
	}
	return time.Duration(*d)
}

// LogValue implements slog.LogValuer.
func (d *Duration) LogValue() slog.Value {
	if d == nil {
		return slog.StringValue("nil-duration")
	}
	return slog.DurationValue(time.Duration(*d))
}
