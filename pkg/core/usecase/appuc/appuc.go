// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package appuc contains the application UseCase which represents one
// running session of the parking client. It owns the spots use case
// (and so, the spots store and the action gate) for the lifetime of the
// session, runs the periodic refresh of the spots collection, manages
// the community disclaimer acknowledgement, and provides the visible
// settings and use case objects so they may be used by the resources
// packages and the command line interface.
package appuc

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

// DefaultDisclaimer is shown until the user acknowledges it once.
const DefaultDisclaimer = "This service is in beta and relies on the " +
	"community. Reported spots may already be taken: share only the " +
	"spots you really see and mark the fake ones."

// UseCase represents an application use case. It holds the spots and
// prefs repository instances and the device collaborators which are
// required by the spots use case. Therefore, it can pass them to a use
// case builder object (which is realized by the effective Config
// instance) in order to create the spots use case during Open.
type UseCase struct {
	builder Builder
	spots   repo.Spots
	prefs   repo.Prefs
	dev     spotsuc.Device

	disclaimer string

	// mutex is used by Open, Start, and Close methods so only one go
	// routine may change the session lifecycle at any time.
	mutex sync.Mutex

	// rwlock is locked for writing whenever the visible settings and use
	// case objects are published (by Open), while it is locked by all
	// getter methods for reading in order to access the published state.
	rwlock sync.RWMutex

	settings     *model.VisibleSettings // cached visible settings
	spotsUseCase *spotsuc.UseCase

	cancel context.CancelFunc // stops the poller, if started
	done   chan struct{}      // closed when the poller returns
}

// New instantiates an application use case object. The Open method of
// this object should be called once, so it can create the spots use
// case, before its getter methods are invoked.
func New(
	b Builder,
	spots repo.Spots,
	prefs repo.Prefs,
	dev spotsuc.Device,
	opts ...Option,
) (*UseCase, error) {
	switch {
	case b == nil:
		return nil, errors.New("nil use case builder")
	case spots == nil:
		return nil, errors.New("nil spots repository")
	case prefs == nil:
		return nil, errors.New("nil prefs repository")
	}
	app := &UseCase{
		builder: b,
		spots:   spots,
		prefs:   prefs,
		dev:     dev,
	}
	for _, opt := range opts {
		if err := opt(app); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	if app.disclaimer == "" {
		app.disclaimer = DefaultDisclaimer
	}
	return app, nil
}
