// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// Tier is the time-bucketed freshness of a reported spot. It is derived
// from the elapsed time since the spot was reported and is never
// persisted.
type Tier int

// Valid values for the Tier enum, ordered by increasing age.
const (
	TierInvalid Tier = iota // zero value is invalid

	TierFresh   // reported less than 5 minutes ago by default
	TierAging   // reported 5 to 10 minutes ago by default
	TierStale   // reported 10 to 15 minutes ago by default
	TierExpired // older, in the future, or with a bad timestamp
)

// ErrUnknownTier indicates an unparsable tier string.
var ErrUnknownTier = errors.New("unknown freshness tier")

// String converts the Tier enum to a string. Invalid tiers cause a
// panic.
func (t Tier) String() string {
	switch t {
	case TierFresh:
		return "fresh"
	case TierAging:
		return "aging"
	case TierStale:
		return "stale"
	case TierExpired:
		return "expired"
	default:
		panic(fmt.Sprintf("invalid freshness tier: %d", int(t)))
	}
}

// ParseTier parses the string representation of a Tier.
func ParseTier(s string) (Tier, error) {
	switch s {
	case "fresh":
		return TierFresh, nil
	case "aging":
		return TierAging, nil
	case "stale":
		return TierStale, nil
	case "expired":
		return TierExpired, nil
	default:
		return TierInvalid, ErrUnknownTier
	}
}

// Color is the display color of a visible tier. Expired spots have no
// color because they are not displayed at all.
type Color string

// Display colors of the visible tiers.
const (
	ColorNone   Color = ""
	ColorGreen  Color = "green"
	ColorOrange Color = "orange"
	ColorRed    Color = "red"
)

// Color returns the display color of t.
func (t Tier) Color() Color {
	switch t {
	case TierFresh:
		return ColorGreen
	case TierAging:
		return ColorOrange
	case TierStale:
		return ColorRed
	default:
		return ColorNone
	}
}

// Visible reports whether spots of the t tier should be displayed.
func (t Tier) Visible() bool {
	return t == TierFresh || t == TierAging || t == TierStale
}

// Classification is the output of the freshness classifier.
type Classification struct {
	Tier    Tier
	Color   Color
	Visible bool
}

// Classify builds the Classification of the t tier.
func (t Tier) Classify() Classification {
	return Classification{Tier: t, Color: t.Color(), Visible: t.Visible()}
}
