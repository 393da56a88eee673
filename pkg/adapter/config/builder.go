// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package config

import (
	"context"
	"fmt"
	"io"

	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/momeni/parkshare/pkg/core/usecase/appuc"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

var _ appuc.Builder = (*Config)(nil)

// NewSpotsUseCase instantiates a new spots use case. It reifies the
// appuc.Builder interface.
func (c *Config) NewSpotsUseCase(
	spots repo.Spots, prefs repo.Prefs, dev spotsuc.Device,
) (*spotsuc.UseCase, error) {
	return c.Usecases.Spots.NewUseCase(spots, prefs, dev)
}

// NewSession wires the remote and prefs repositories and the device
// collaborators of this configuration into a session which is not
// opened yet. Notices are printed on w (if not nil). The prefs repo is
// owned by the returned session and is closed by its Close method.
func (c *Config) NewSession(
	ctx context.Context, w io.Writer,
) (*appuc.UseCase, error) {
	id := c.Device.DeviceID()
	spots, err := c.Remote.NewRepo(id)
	if err != nil {
		return nil, fmt.Errorf("creating remote repo: %w", err)
	}
	dev, err := c.Device.NewDevice(w)
	if err != nil {
		return nil, fmt.Errorf("creating device: %w", err)
	}
	prefs, err := c.Storage.NewPrefsRepo(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("opening %s prefs: %w", c.Storage.Driver, err)
	}
	app, err := appuc.New(c, spots, prefs, dev, c.Usecases.App.Options()...)
	if err != nil {
		_ = prefs.Close()
		return nil, fmt.Errorf("creating session: %w", err)
	}
	return app, nil
}
