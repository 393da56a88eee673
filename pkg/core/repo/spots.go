// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package repo declares the interfaces which the use cases layer
// expects from its repositories. The remote parking service is
// represented by Spots and the device-local persisted state by Prefs.
// Implementations live in the adapters layer.
package repo

import (
	"context"

	"github.com/momeni/parkshare/pkg/core/model"
)

//go:generate mockgen -source=spots.go -destination=mocks/spots.go -package=mocks

// Spots is the remote parking service. It is the single source of
// truth for the reported spots; the client only caches its listing.
type Spots interface {
	// List returns all currently reported spots. An empty slice is a
	// valid result and means that no spot is reported.
	List(ctx context.Context) ([]model.Spot, error)

	// Report creates a new spot. The ID of the given spot is ignored
	// because identifiers are assigned remotely. The assigned ID is
	// returned if the service reported it, otherwise, an empty SpotID
	// will be returned along a nil error.
	Report(ctx context.Context, s model.Spot) (model.SpotID, error)

	// Delete removes the id spot. Deleting a spot which is already
	// gone is not an error.
	Delete(ctx context.Context, id model.SpotID) error
}
