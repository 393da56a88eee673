// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import "time"

// VisibleSettings contains the settings which are visible by the UI
// clients. They are immutable for the lifetime of a session and can be
// configured only using the configuration file or environment
// variables. A map renderer uses the thresholds for its legend.
type VisibleSettings struct {
	// PollInterval is the fixed interval between two refreshes of the
	// spots collection.
	PollInterval time.Duration `json:"poll_interval"`

	// Thresholds contains the upper (exclusive) age bounds of the
	// visible freshness tiers.
	Thresholds Thresholds `json:"thresholds"`
}

// Thresholds represents the upper (exclusive) bounds of the fresh,
// aging, and stale tiers. Spots which are older than Stale are expired.
// A valid Thresholds instance satisfies 0 < Fresh < Aging < Stale.
type Thresholds struct {
	Fresh time.Duration `json:"fresh"`
	Aging time.Duration `json:"aging"`
	Stale time.Duration `json:"stale"`
}

// DefaultThresholds returns the 5, 10, and 15 minutes bounds.
func DefaultThresholds() Thresholds {
	return Thresholds{
		Fresh: 5 * time.Minute,
		Aging: 10 * time.Minute,
		Stale: 15 * time.Minute,
	}
}

// Valid reports whether th bounds are positive and strictly ordered.
func (th Thresholds) Valid() bool {
	return th.Fresh > 0 && th.Fresh < th.Aging && th.Aging < th.Stale
}
