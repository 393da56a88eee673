// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

// Settings returns a copy of visible settings which are in effect. The
// Open method must be called before this (and other use case objects
// getter methods) may be called.
func (app *UseCase) Settings() model.VisibleSettings {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return *app.settings
}

// updateAll atomically publishes the visible settings and the use case
// objects which are built based on them.
func (app *UseCase) updateAll(
	vs *model.VisibleSettings,
	spotsUseCase *spotsuc.UseCase,
) {
	app.rwlock.Lock()
	defer app.rwlock.Unlock()
	app.settings = vs
	app.spotsUseCase = spotsUseCase
}

// SpotsUseCase returns the spots use case object of this session, or
// nil if Open was not called yet.
func (app *UseCase) SpotsUseCase() *spotsuc.UseCase {
	app.rwlock.RLock()
	defer app.rwlock.RUnlock()
	return app.spotsUseCase
}

// Store is a shorthand for SpotsUseCase().Store().
func (app *UseCase) Store() *spotsuc.Store {
	return app.SpotsUseCase().Store()
}

// Gate is a shorthand for SpotsUseCase().Gate().
func (app *UseCase) Gate() *spotsuc.Gate {
	return app.SpotsUseCase().Gate()
}
