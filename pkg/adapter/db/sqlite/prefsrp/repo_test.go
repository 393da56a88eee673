// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package prefsrp_test

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/momeni/parkshare/pkg/adapter/db/sqlite/prefsrp"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var _ repo.Prefs = (*prefsrp.Repo)(nil)

func TestPrefsPersistence(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "state", "prefs.db")
	r, err := prefsrp.Open(ctx, path)
	require.NoError(t, err)

	car, err := r.Car(ctx)
	require.NoError(t, err)
	assert.Nil(t, car, "a fresh device is unparked")
	acked, err := r.DisclaimerAcked(ctx)
	require.NoError(t, err)
	assert.False(t, acked)

	parkedAt := time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	want := model.Car{
		Coordinate: model.Coordinate{Lat: 48.8566, Lon: 2.3522},
		ParkedAt:   parkedAt,
	}
	require.NoError(t, r.SaveCar(ctx, want))
	require.NoError(t, r.AckDisclaimer(ctx))
	require.NoError(t, r.AckDisclaimer(ctx), "acknowledging is idempotent")
	require.NoError(t, r.Close())

	r, err = prefsrp.Open(ctx, path)
	require.NoError(t, err)
	defer r.Close()
	car, err = r.Car(ctx)
	require.NoError(t, err)
	require.NotNil(t, car)
	assert.Equal(t, want.Coordinate, car.Coordinate)
	assert.True(t, parkedAt.Equal(car.ParkedAt))
	acked, err = r.DisclaimerAcked(ctx)
	require.NoError(t, err)
	assert.True(t, acked)

	require.NoError(t, r.DeleteCar(ctx))
	require.NoError(t, r.DeleteCar(ctx))
	car, err = r.Car(ctx)
	require.NoError(t, err)
	assert.Nil(t, car)
}

func TestPrefsInMemory(t *testing.T) {
	ctx := context.Background()
	r, err := prefsrp.Open(ctx, ":memory:")
	require.NoError(t, err)
	defer r.Close()
	require.NoError(t, r.SaveCar(ctx, model.Car{}))
	require.NoError(t, r.SaveCar(ctx, model.Car{
		Coordinate: model.Coordinate{Lat: 1, Lon: 2},
	}))
	car, err := r.Car(ctx)
	require.NoError(t, err)
	assert.Equal(t, model.Coordinate{Lat: 1, Lon: 2}, car.Coordinate)
}
