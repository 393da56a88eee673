// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo/mocks"
	"github.com/momeni/parkshare/pkg/core/usecase/spotsuc"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

var (
	now     = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)
	here    = model.Coordinate{Lat: 48.8566, Lon: 2.3522}
	parking = model.Coordinate{Lat: 48.8606, Lon: 2.3376}
)

func clock() time.Time {
	return now
}

func ago(d time.Duration) string {
	return spotsuc.FormatTimestamp(now.Add(-d))
}

type fakeDevice struct {
	mu      sync.Mutex
	denied  bool
	pos     model.Coordinate
	posErr  error
	notices []model.Notice
}

func (d *fakeDevice) RequestPermission(context.Context) (bool, error) {
	return !d.denied, nil
}

func (d *fakeDevice) CurrentPosition(context.Context) (model.Coordinate, error) {
	return d.pos, d.posErr
}

func (d *fakeDevice) Open(
	_ context.Context, dst model.Coordinate, label string,
) (string, error) {
	return fmt.Sprintf("geo:%s?q=%s", dst, label), nil
}

func (d *fakeDevice) Notify(_ context.Context, n model.Notice) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.notices = append(d.notices, n)
}

func (d *fakeDevice) last() model.Notice {
	d.mu.Lock()
	defer d.mu.Unlock()
	if len(d.notices) == 0 {
		return model.Notice{}
	}
	return d.notices[len(d.notices)-1]
}

// answer is a Confirmer which always returns the same decision and
// counts the shown prompts.
type answer struct {
	d     model.Decision
	asked int
}

func (a *answer) Confirm(context.Context, model.Prompt) (model.Decision, error) {
	a.asked++
	return a.d, nil
}

func yes() *answer {
	return &answer{d: model.DecisionConfirm}
}

func no() *answer {
	return &answer{d: model.DecisionCancel}
}

type fixture struct {
	spots *mocks.MockSpots
	prefs *mocks.MockPrefs
	dev   *fakeDevice
	uc    *spotsuc.UseCase

	mu     sync.Mutex
	remote []model.Spot
}

// newFixture creates a use case whose remote collection is served from
// f.remote by any number of List calls.
func newFixture(t *testing.T, remote ...model.Spot) *fixture {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &fixture{
		spots:  mocks.NewMockSpots(ctrl),
		prefs:  mocks.NewMockPrefs(ctrl),
		dev:    &fakeDevice{pos: here},
		remote: remote,
	}
	f.spots.EXPECT().List(gomock.Any()).DoAndReturn(
		func(context.Context) ([]model.Spot, error) {
			f.mu.Lock()
			defer f.mu.Unlock()
			return append([]model.Spot(nil), f.remote...), nil
		},
	).AnyTimes()
	dev := spotsuc.Device{Locator: f.dev, Navigator: f.dev, Notifier: f.dev}
	uc, err := spotsuc.New(f.spots, f.prefs, dev, spotsuc.WithClock(clock))
	require.NoError(t, err, "creating spots use case")
	f.uc = uc
	require.NoError(t, uc.Store().Refresh(context.Background()))
	return f
}

// park makes the fixture device Parked at the parking coordinate.
func (f *fixture) park(t *testing.T) {
	t.Helper()
	car := &model.Car{Coordinate: parking, ParkedAt: now.Add(-time.Hour)}
	f.prefs.EXPECT().Car(gomock.Any()).Return(car, nil)
	require.NoError(t, f.uc.Store().LoadLocalCar(context.Background()))
	require.Equal(t, model.Parked, f.uc.Gate().State())
}

func spot(id string, age time.Duration) model.Spot {
	return model.Spot{
		ID:         model.SpotID(id),
		Coordinate: parking,
		Message:    model.ReportReasonSpotted.Message(),
		Status:     model.SpotStatusFree,
		CreatedAt:  ago(age),
	}
}

var errBoom = errors.New("boom")

// withdraw removes the id spot from the remote collection.
func (f *fixture) withdraw(id model.SpotID) {
	f.mu.Lock()
	defer f.mu.Unlock()
	kept := f.remote[:0]
	for _, s := range f.remote {
		if s.ID != id {
			kept = append(kept, s)
		}
	}
	f.remote = kept
}
