// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package prefskv_test

import (
	"testing"
	"time"

	"github.com/momeni/parkshare/pkg/adapter/prefskv"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCarEncoding(t *testing.T) {
	at := time.Date(2024, 5, 1, 14, 0, 0, 0, time.FixedZone("CEST", 7200))
	s, err := prefskv.MarshalCar(model.Car{
		Coordinate: model.Coordinate{Lat: 48.8566, Lon: 2.3522},
		ParkedAt:   at,
	})
	require.NoError(t, err)
	assert.JSONEq(t,
		`{"latitude":48.8566,"longitude":2.3522,"parked_at":"2024-05-01T12:00:00Z"}`,
		s,
	)
	car, err := prefskv.UnmarshalCar(s)
	require.NoError(t, err)
	assert.True(t, at.Equal(car.ParkedAt))
	assert.Equal(t, 48.8566, car.Coordinate.Lat)

	_, err = prefskv.UnmarshalCar(`{"latitude":123}`)
	assert.ErrorIs(t, err, model.ErrCoordinateOutOfRange)
	_, err = prefskv.UnmarshalCar(`not json`)
	assert.Error(t, err)
}
