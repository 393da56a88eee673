// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model_test

import (
	"testing"
	"time"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpotStatus(t *testing.T) {
	s, err := model.ParseSpotStatus("libre")
	require.NoError(t, err)
	assert.Equal(t, model.SpotStatusFree, s)
	assert.Equal(t, "libre", s.String())
	assert.NoError(t, s.Validate())

	s, err = model.ParseSpotStatus("occupée")
	assert.ErrorIs(t, err, model.ErrUnknownSpotStatus)
	assert.Equal(t, model.SpotStatusInvalid, s)
	assert.Equal(t, "unknown", s.String())
	assert.Equal(t, model.SpotStatusError(0), s.Validate())
}

func TestReportReason(t *testing.T) {
	for _, name := range []string{"spotted", "left"} {
		r, err := model.ParseReportReason(name)
		require.NoError(t, err)
		assert.Equal(t, name, r.String())
		assert.NotEmpty(t, r.Message())
	}
	assert.Equal(t, "Libre (GPS)", model.ReportReasonSpotted.Message())
	_, err := model.ParseReportReason("towed")
	assert.ErrorIs(t, err, model.ErrUnknownReportReason)
	assert.Panics(t, func() { _ = model.ReportReasonInvalid.Message() })
}

func TestTierClassify(t *testing.T) {
	for _, tc := range []struct {
		tier    model.Tier
		color   model.Color
		visible bool
	}{
		{model.TierFresh, model.ColorGreen, true},
		{model.TierAging, model.ColorOrange, true},
		{model.TierStale, model.ColorRed, true},
		{model.TierExpired, model.ColorNone, false},
	} {
		t.Run(tc.tier.String(), func(t *testing.T) {
			c := tc.tier.Classify()
			assert.Equal(t, tc.color, c.Color)
			assert.Equal(t, tc.visible, c.Visible)
			parsed, err := model.ParseTier(tc.tier.String())
			require.NoError(t, err)
			assert.Equal(t, tc.tier, parsed)
		})
	}
}

func TestActions(t *testing.T) {
	for _, a := range model.Actions {
		parsed, err := model.ParseAction(a.String())
		require.NoError(t, err)
		assert.Equal(t, a, parsed)
	}
	_, err := model.ParseAction("teleport")
	assert.ErrorIs(t, err, model.ErrUnknownAction)
}

func TestStateOf(t *testing.T) {
	assert.Equal(t, model.Unparked, model.StateOf(nil))
	assert.Equal(t, model.Parked, model.StateOf(&model.Car{}))
	assert.Equal(t, "parked", model.Parked.String())
}

func TestCoordinateValidate(t *testing.T) {
	assert.NoError(t, model.Coordinate{Lat: 48.8566, Lon: 2.3522}.Validate())
	assert.ErrorIs(t,
		model.Coordinate{Lat: 91, Lon: 0}.Validate(),
		model.ErrCoordinateOutOfRange,
	)
	assert.ErrorIs(t,
		model.Coordinate{Lat: 0, Lon: -180.5}.Validate(),
		model.ErrCoordinateOutOfRange,
	)
	assert.Equal(t, "48.856600,2.352200",
		model.Coordinate{Lat: 48.8566, Lon: 2.3522}.String())
}

func TestThresholds(t *testing.T) {
	assert.True(t, model.DefaultThresholds().Valid())
	assert.False(t, model.Thresholds{
		Fresh: 5 * time.Minute, Aging: 5 * time.Minute, Stale: time.Hour,
	}.Valid())
	assert.False(t, model.Thresholds{}.Valid())
}
