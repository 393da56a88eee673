// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
)

// Builder interface represents the expectations from the application
// use case builders. All use cases which can be instantiated by a
// configuration struct have one NewX method here which takes their
// repository and collaborator dependencies. The configuration struct
// implements this interface, takes the repository instances, and
// creates use case objects based on its contained settings.
type Builder interface {
	// NewSpotsUseCase creates a new spotsuc UseCase object having the
	// provided remote spots repository, local prefs repository, and
	// device collaborators. The polling interval and freshness
	// thresholds are taken from the builder settings.
	NewSpotsUseCase(
		spots repo.Spots, prefs repo.Prefs, dev spotsuc.Device,
	) (*spotsuc.UseCase, error)
}
