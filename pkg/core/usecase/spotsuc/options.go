// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"errors"
	"fmt"
	"time"

	"github.com/momeni/parkshare/pkg/core/model"
)

// Option is a functional option for the spots use case.
type Option func(uc *UseCase) error

// WithPollInterval option configures the fixed interval between two
// refreshes of the spots collection. Default interval is 5 seconds.
func WithPollInterval(interval time.Duration) Option {
	return func(uc *UseCase) error {
		if d := int64(interval); d <= 0 {
			return fmt.Errorf("poll interval (%d) is not positive", d)
		}
		if uc.pollInterval != 0 {
			return errors.New("poll interval is already configured")
		}
		uc.pollInterval = interval
		return nil
	}
}

// WithThresholds option replaces the default 5, 10, and 15 minutes
// bounds of the fresh, aging, and stale tiers.
func WithThresholds(th model.Thresholds) Option {
	return func(uc *UseCase) error {
		if !th.Valid() {
			return fmt.Errorf(
				"thresholds (%s, %s, %s) are not increasing",
				th.Fresh, th.Aging, th.Stale,
			)
		}
		if uc.thresholds != nil {
			return errors.New("thresholds are already configured")
		}
		uc.thresholds = &th
		return nil
	}
}

// WithClock option replaces time.Now as the source of the current
// time. It is used for classification and for the created_at and
// parked-at timestamps.
func WithClock(now func() time.Time) Option {
	return func(uc *UseCase) error {
		if now == nil {
			return errors.New("nil clock")
		}
		if uc.now != nil {
			return errors.New("clock is already configured")
		}
		uc.now = now
		return nil
	}
}
