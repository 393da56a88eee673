// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsuc contains the spots UseCase which implements the
// client-side spot lifecycle policy. It consists of three parts:
//  1. the Store which caches the remote spots and the local car record,
//  2. the Classifier which maps report timestamps to freshness tiers,
//  3. the Gate which permits or rejects user actions based on the
//     parking state and performs the permitted transitions.
package spotsuc

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
)

// Errors which are reported by the Gate. They are wrapped by the
// relevant cerr kinds, so errors.Is may be used to detect them.
var (
	ErrAlreadyParked    = errors.New("device already owns a parked spot")
	ErrNotParked        = errors.New("device has no parked spot")
	ErrPermissionDenied = errors.New("location permission denied")
	ErrCanceled         = errors.New("canceled by the user")
	ErrSpotNotFound     = errors.New("spot is not displayed")
)

// Locator provides the foreground location permission and single-shot
// position fixes of the device.
type Locator interface {
	// RequestPermission asks for the foreground location permission
	// (if it is not granted yet) and reports whether it is granted.
	RequestPermission(ctx context.Context) (bool, error)

	// CurrentPosition takes one position fix. It may be called only
	// after the permission is granted.
	CurrentPosition(ctx context.Context) (model.Coordinate, error)
}

// Navigator launches an external map navigation towards dst and
// returns the launched URL.
type Navigator interface {
	Open(ctx context.Context, dst model.Coordinate, label string) (string, error)
}

// Notifier shows short non-blocking notices to the user.
type Notifier interface {
	Notify(ctx context.Context, n model.Notice)
}

// Confirmer is a blocking decision step. Its outcome is one of the
// closed set of model.Decision values.
type Confirmer interface {
	Confirm(ctx context.Context, p model.Prompt) (model.Decision, error)
}

// Device bundles the device-level collaborators which are required by
// the Gate. Confirmers are passed per action instead, because each
// caller (CLI or REST client) decides differently.
type Device struct {
	Locator   Locator
	Navigator Navigator
	Notifier  Notifier
}

// UseCase represents the spots use case. It holds the Store, the
// Classifier, and the Gate which share the same repositories, clock,
// and settings.
type UseCase struct {
	store      *Store
	gate       *Gate
	classifier *Classifier

	pollInterval time.Duration
	thresholds   *model.Thresholds
	now          func() time.Time
}

// New instantiates a spots use case.
// Required parameters are passed individually, so caller has to
// provision them and whenever they change, caller will notice and fix
// them due to a compilation error.
// Optional parameters are passed as a series of functional options
// in order to facilitate their validation and flexibility.
func New(
	spots repo.Spots, prefs repo.Prefs, dev Device, opts ...Option,
) (*UseCase, error) {
	switch {
	case spots == nil:
		return nil, errors.New("nil spots repository")
	case prefs == nil:
		return nil, errors.New("nil prefs repository")
	case dev.Locator == nil || dev.Navigator == nil || dev.Notifier == nil:
		return nil, errors.New("incomplete device collaborators")
	}
	uc := &UseCase{}
	for _, opt := range opts {
		if err := opt(uc); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if uc.pollInterval == 0 {
		uc.pollInterval = 5 * time.Second
	}
	if uc.thresholds == nil {
		th := model.DefaultThresholds()
		uc.thresholds = &th
	}
	if uc.now == nil {
		uc.now = time.Now
	}
	uc.classifier = &Classifier{th: *uc.thresholds}
	uc.store = &Store{
		spots:      spots,
		prefs:      prefs,
		classifier: uc.classifier,
		now:        uc.now,
	}
	uc.gate = &Gate{
		store: uc.store,
		spots: spots,
		prefs: prefs,
		dev:   dev,
		now:   uc.now,
	}
	return uc, nil
}

// Store returns the spots store.
func (uc *UseCase) Store() *Store {
	return uc.store
}

// Gate returns the action gate.
func (uc *UseCase) Gate() *Gate {
	return uc.gate
}

// Classifier returns the freshness classifier.
func (uc *UseCase) Classifier() *Classifier {
	return uc.classifier
}

// PollInterval returns the fixed interval of the Store polling.
func (uc *UseCase) PollInterval() time.Duration {
	return uc.pollInterval
}

// Settings returns the settings which are visible by UI clients.
func (uc *UseCase) Settings() model.VisibleSettings {
	return model.VisibleSettings{
		PollInterval: uc.pollInterval,
		Thresholds:   *uc.thresholds,
	}
}
