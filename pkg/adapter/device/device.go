// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package device realizes the device collaborators of the spots use
// case for a headless host: a locator which reports a configured
// position, a navigator which builds map navigation URLs, notifiers
// which log (and optionally print) the notices, and confirmers which
// either ask on a terminal or return a fixed decision.
package device

import (
	"context"
	"errors"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

// ErrNoPosition indicates that no position fix is configured.
var ErrNoPosition = errors.New("no position is configured")

// StaticLocator reports a fixed position. Granted models the answer of
// the location permission request.
type StaticLocator struct {
	Granted  bool
	Position *model.Coordinate
}

// RequestPermission reports the configured permission.
func (l StaticLocator) RequestPermission(context.Context) (bool, error) {
	return l.Granted, nil
}

// CurrentPosition returns the configured position.
func (l StaticLocator) CurrentPosition(context.Context) (model.Coordinate, error) {
	if l.Position == nil {
		return model.Coordinate{}, ErrNoPosition
	}
	return *l.Position, nil
}

// New combines the device collaborators.
func New(l spotsuc.Locator, nav spotsuc.Navigator, n spotsuc.Notifier) spotsuc.Device {
	return spotsuc.Device{Locator: l, Navigator: nav, Notifier: n}
}
