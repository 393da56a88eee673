// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"strings"
	"time"

	"github.com/momeni/parkshare/pkg/core/model"
)

// TimestampLayout is the canonical wire format of the created_at
// field. Fractional seconds are optional when parsing.
const TimestampLayout = time.RFC3339Nano

// Classifier maps the report timestamp of a spot to its freshness tier.
// It is stateless after construction and performs no I/O.
type Classifier struct {
	th model.Thresholds
}

// NewClassifier creates a Classifier with the th bounds. Invalid
// bounds are replaced by model.DefaultThresholds.
func NewClassifier(th model.Thresholds) *Classifier {
	if !th.Valid() {
		th = model.DefaultThresholds()
	}
	return &Classifier{th: th}
}

// Thresholds returns the tier bounds of c.
func (c *Classifier) Thresholds() model.Thresholds {
	return c.th
}

// Classify returns the classification of a spot which was reported at
// createdAt, as seen at the now instant. Missing or unparsable
// timestamps are expired (invisible). Locale-formatted time-only
// strings are not coerced. Timestamps in the future are expired too.
func (c *Classifier) Classify(createdAt string, now time.Time) model.Classification {
	t, err := time.Parse(TimestampLayout, strings.TrimSpace(createdAt))
	if err != nil {
		return model.TierExpired.Classify()
	}
	return c.Tier(now.Sub(t)).Classify()
}

// Tier returns the tier of a spot with the given age.
func (c *Classifier) Tier(age time.Duration) model.Tier {
	switch {
	case age < 0:
		return model.TierExpired
	case age < c.th.Fresh:
		return model.TierFresh
	case age < c.th.Aging:
		return model.TierAging
	case age < c.th.Stale:
		return model.TierStale
	default:
		return model.TierExpired
	}
}

// FormatTimestamp formats t in the canonical created_at wire format.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}
