// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
)

// Store holds the last fetched collection of reported spots and the
// local car record of the device.
//
// The mutex only protects the in-memory state while it is read or
// replaced. It is never held during a remote call, so concurrent
// refreshes still race with each other and the response which arrives
// last wins. The next refresh corrects any staleness.
type Store struct {
	spots      repo.Spots
	prefs      repo.Prefs
	classifier *Classifier
	now        func() time.Time

	mu          sync.RWMutex
	items       []model.Spot
	car         *model.Car
	refreshedAt time.Time
}

// Refresh reads all currently reported spots from the remote service
// and replaces the cached collection wholesale. On failure, the cached
// collection is left unchanged and the error is logged and returned.
// Callers which poll periodically may ignore the returned error.
func (s *Store) Refresh(ctx context.Context) error {
	items, err := s.spots.List(ctx)
	if err != nil {
		if ctx.Err() == nil {
			log.Warn(ctx, "refreshing spots failed", log.Err("err", err))
		}
		return fmt.Errorf("listing spots: %w", err)
	}
	if items == nil {
		items = []model.Spot{}
	}
	s.mu.Lock()
	s.items = items
	s.refreshedAt = s.now()
	s.mu.Unlock()
	log.Debug(ctx, "spots refreshed", slog.Int("count", len(items)))
	return nil
}

// LoadLocalCar reads the persisted car record into memory. Absence of
// a record is the normal Unparked state and is not an error.
func (s *Store) LoadLocalCar(ctx context.Context) error {
	car, err := s.prefs.Car(ctx)
	if err != nil {
		return fmt.Errorf("loading car record: %w", err)
	}
	s.setCar(car)
	log.Info(ctx, "car record loaded", log.State("state", model.StateOf(car)))
	return nil
}

// Poll refreshes the spots once and then once per interval tick until
// ctx is cancelled. Each tick runs independently, so a slow refresh may
// overlap the next one. Failed refreshes are retried by the next tick
// with no backoff. Poll returns after all started refreshes return.
func (s *Store) Poll(ctx context.Context, interval time.Duration) {
	var wg sync.WaitGroup
	tick := func() {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = s.Refresh(ctx) // already logged
		}()
	}
	tick()
	t := time.NewTicker(interval)
	defer t.Stop()
	for {
		select {
		case <-ctx.Done():
			wg.Wait()
			return
		case <-t.C:
			tick()
		}
	}
}

// Spots returns a copy of the cached collection, ordered as received.
func (s *Store) Spots() []model.Spot {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return append([]model.Spot(nil), s.items...)
}

// Spot looks up the id spot in the cached collection.
func (s *Store) Spot(id model.SpotID) (model.Spot, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for _, spot := range s.items {
		if spot.ID == id {
			return spot, true
		}
	}
	return model.Spot{}, false
}

// View returns the rendered set: the cached spots which are visible
// at the current time, along their classification. Expired spots and
// spots with unparsable timestamps are excluded.
func (s *Store) View() []model.SpotView {
	now := s.now()
	s.mu.RLock()
	defer s.mu.RUnlock()
	views := make([]model.SpotView, 0, len(s.items))
	for _, spot := range s.items {
		c := s.classifier.Classify(spot.CreatedAt, now)
		if !c.Visible {
			continue
		}
		views = append(views, model.SpotView{Spot: spot, Classification: c})
	}
	return views
}

// Car returns a copy of the local car record, or nil when Unparked.
func (s *Store) Car() *model.Car {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.car == nil {
		return nil
	}
	car := *s.car
	return &car
}

// State returns Parked if and only if a car record is held.
func (s *Store) State() model.ParkingState {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return model.StateOf(s.car)
}

// RefreshedAt returns the time of the last successful refresh, or the
// zero time if no refresh has succeeded yet.
func (s *Store) RefreshedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshedAt
}

func (s *Store) setCar(car *model.Car) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.car = car
}
