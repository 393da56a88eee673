// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsuc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/momeni/parkshare/pkg/core/cerr"
	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
	"github.com/momeni/parkshare/pkg/core/repo"
)

// Gate decides which user actions are permitted in the current parking
// state and performs each permitted action as a remote mutation which
// is followed by the local state update. The local car record is never
// updated when the remote mutation fails. When the local update fails
// after a successful remote mutation, the remote mutation is reverted
// on a best effort basis.
//
// Actions of one Gate are serialized, so a claim and a leave which are
// requested concurrently (e.g., from the CLI and the REST API) may not
// interleave. Nothing is queued or debounced beyond that.
type Gate struct {
	store *Store
	spots repo.Spots
	prefs repo.Prefs
	dev   Device
	now   func() time.Time

	mu sync.Mutex
}

var (
	claimPrompt = model.Prompt{
		Title:   "Park here?",
		Message: "Do you confirm that you took this spot?",
		Confirm: "Yes, I take it",
		Cancel:  "Cancel",
	}
	leavePrompt = model.Prompt{
		Title:   "Leaving?",
		Message: "Your spot will be shared with the community as free.",
		Confirm: "Yes, I am leaving",
		Cancel:  "Cancel",
	}
)

// Allowed is the transition table of the gate. It returns nil if the a
// action is permitted in the given parking state. Otherwise, it returns
// a cerr.Conflict wrapping ErrAlreadyParked or ErrNotParked.
//
//	state     report  claim  navigate  mark-fake  leave
//	Unparked  yes     yes    yes       yes        no
//	Parked    yes     no     no        yes        yes
func Allowed(state model.ParkingState, a model.Action) error {
	switch a {
	case model.ActionReport, model.ActionMarkFake:
		return nil
	case model.ActionClaim, model.ActionNavigate:
		if state == model.Parked {
			return cerr.Conflict(ErrAlreadyParked)
		}
		return nil
	case model.ActionLeave:
		if state == model.Unparked {
			return cerr.Conflict(ErrNotParked)
		}
		return nil
	default:
		return cerr.BadRequest(model.ErrUnknownAction)
	}
}

// State returns the current parking state of the device.
func (g *Gate) State() model.ParkingState {
	return g.store.State()
}

// Allowed reports whether the a action is permitted right now.
func (g *Gate) Allowed(a model.Action) error {
	return Allowed(g.State(), a)
}

// AllowedActions lists the currently permitted actions, so a UI may
// disable the others.
func (g *Gate) AllowedActions() []model.Action {
	state := g.State()
	var actions []model.Action
	for _, a := range model.Actions {
		if Allowed(state, a) == nil {
			actions = append(actions, a)
		}
	}
	return actions
}

// Report publishes a new free spot for the reason reason. The spot is
// placed at the `at` coordinate if it is not nil, otherwise, at the
// current device position. The location permission is required in
// both cases; when it is denied, nothing is sent and nothing changes.
func (g *Gate) Report(
	ctx context.Context, reason model.ReportReason, at *model.Coordinate,
) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(ctx, model.ActionReport); err != nil {
		return err
	}
	if reason == model.ReportReasonInvalid {
		return cerr.BadRequest(model.ErrUnknownReportReason)
	}
	if at != nil {
		if err := at.Validate(); err != nil {
			return cerr.BadRequest(err)
		}
	}
	if err := g.permit(ctx); err != nil {
		return err
	}
	var pos model.Coordinate
	if at != nil {
		pos = *at
	} else {
		var err error
		if pos, err = g.position(ctx); err != nil {
			return err
		}
	}
	spot := model.Spot{
		Coordinate: pos,
		Message:    reason.Message(),
		Status:     model.SpotStatusFree,
		CreatedAt:  FormatTimestamp(g.now()),
	}
	if _, err := g.spots.Report(ctx, spot); err != nil {
		return g.fail(ctx, "Sending failed", fmt.Errorf(
			"reporting spot at %s: %w", pos, err,
		))
	}
	log.Info(ctx, "spot reported", log.Valuer("spot", spot))
	g.notify(ctx, model.NoticeInfo, "Thank you!", "The spot was shared.")
	g.refresh(ctx)
	return nil
}

// Claim takes the id spot from the displayed collection. After the c
// confirmation is accepted and the device position is fixed, the spot
// is deleted remotely and the car record is created at the device
// position. Claiming is rejected with no remote call while Parked.
func (g *Gate) Claim(ctx context.Context, id model.SpotID, c Confirmer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(ctx, model.ActionClaim); err != nil {
		return err
	}
	spot, err := g.displayed(ctx, id)
	if err != nil {
		return err
	}
	if err := g.confirm(ctx, c, claimPrompt); err != nil {
		return err
	}
	pos, err := g.locate(ctx)
	if err != nil {
		return err
	}
	if err := g.spots.Delete(ctx, id); err != nil {
		return g.fail(ctx, "Claim failed", fmt.Errorf(
			"deleting claimed spot %q: %w", id, err,
		))
	}
	car := model.Car{Coordinate: pos, ParkedAt: g.now()}
	if err := g.prefs.SaveCar(ctx, car); err != nil {
		g.republish(ctx, spot)
		return g.fail(ctx, "Claim failed", fmt.Errorf(
			"saving car record: %w", err,
		))
	}
	g.store.setCar(&car)
	log.Info(ctx, "spot claimed",
		log.SpotID("id", id), log.Valuer("car", car.Coordinate),
	)
	g.notify(ctx, model.NoticeInfo, "Parked", "The spot was removed from the map.")
	g.refresh(ctx)
	return nil
}

// Navigate opens the external map navigation towards the id spot and
// returns the launched URL. It is rejected while Parked.
func (g *Gate) Navigate(ctx context.Context, id model.SpotID) (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(ctx, model.ActionNavigate); err != nil {
		return "", err
	}
	spot, err := g.displayed(ctx, id)
	if err != nil {
		return "", err
	}
	u, err := g.dev.Navigator.Open(ctx, spot.Coordinate, "Spot #"+string(id))
	if err != nil {
		return "", g.fail(ctx, "Navigation failed", fmt.Errorf(
			"opening navigation to %s: %w", spot.Coordinate, err,
		))
	}
	log.Info(ctx, "navigation opened", log.SpotID("id", id))
	return u, nil
}

// MarkFake reports the id spot as fake or occupied by deleting it
// remotely. Deletion of a spot which is already gone succeeds.
func (g *Gate) MarkFake(ctx context.Context, id model.SpotID) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(ctx, model.ActionMarkFake); err != nil {
		return err
	}
	if err := id.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	if err := g.spots.Delete(ctx, id); err != nil {
		return g.fail(ctx, "Report failed", fmt.Errorf(
			"deleting fake spot %q: %w", id, err,
		))
	}
	log.Info(ctx, "spot marked as fake", log.SpotID("id", id))
	g.notify(ctx, model.NoticeInfo, "Thank you!", "The spot was removed.")
	g.refresh(ctx)
	return nil
}

// Leave releases the parked spot. After the c confirmation is accepted,
// a free spot is published at the car coordinate and then the car
// record is deleted. It is rejected while Unparked.
func (g *Gate) Leave(ctx context.Context, c Confirmer) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	if err := g.check(ctx, model.ActionLeave); err != nil {
		return err
	}
	car := g.store.Car()
	if err := g.confirm(ctx, c, leavePrompt); err != nil {
		return err
	}
	spot := model.Spot{
		Coordinate: car.Coordinate,
		Message:    model.ReportReasonLeft.Message(),
		Status:     model.SpotStatusFree,
		CreatedAt:  FormatTimestamp(g.now()),
	}
	id, err := g.spots.Report(ctx, spot)
	if err != nil {
		return g.fail(ctx, "Leaving failed", fmt.Errorf(
			"publishing left spot: %w", err,
		))
	}
	if err := g.prefs.DeleteCar(ctx); err != nil {
		g.withdraw(ctx, id)
		return g.fail(ctx, "Leaving failed", fmt.Errorf(
			"deleting car record: %w", err,
		))
	}
	g.store.setCar(nil)
	log.Info(ctx, "spot left", log.Valuer("at", car.Coordinate))
	g.notify(ctx, model.NoticeInfo, "See you!", "Your spot was shared as free.")
	g.refresh(ctx)
	return nil
}

// check rejects the a action if it is not permitted in the current
// state, notifying the user about the rejection.
func (g *Gate) check(ctx context.Context, a model.Action) error {
	err := g.Allowed(a)
	if err == nil {
		return nil
	}
	log.Info(ctx, "action rejected",
		log.Action("action", a), log.State("state", g.State()),
	)
	switch {
	case errors.Is(err, ErrAlreadyParked):
		g.notify(ctx, model.NoticeWarn, "Already parked",
			"Leave your current spot before taking another one.")
	case errors.Is(err, ErrNotParked):
		g.notify(ctx, model.NoticeWarn, "Not parked",
			"You have no parked spot to leave.")
	}
	return err
}

// displayed finds the id spot in the cached collection. Spots which
// are cached but expired (or carry an unparsable timestamp) are not on
// the map and are rejected like the missing ones.
func (g *Gate) displayed(ctx context.Context, id model.SpotID) (model.Spot, error) {
	if err := id.Validate(); err != nil {
		return model.Spot{}, cerr.BadRequest(err)
	}
	spot, ok := g.store.Spot(id)
	if ok && !g.store.classifier.Classify(spot.CreatedAt, g.now()).Visible {
		ok = false
	}
	if !ok {
		g.notify(ctx, model.NoticeWarn, "Spot unavailable",
			"This spot is no longer on the map.")
		return model.Spot{}, cerr.NotFound(
			fmt.Errorf("spot %q: %w", id, ErrSpotNotFound),
		)
	}
	return spot, nil
}

// confirm runs the p decision step and maps a cancel outcome to
// ErrCanceled.
func (g *Gate) confirm(ctx context.Context, c Confirmer, p model.Prompt) error {
	if c == nil {
		return cerr.Conflict(ErrCanceled)
	}
	d, err := c.Confirm(ctx, p)
	if err != nil {
		return fmt.Errorf("confirming %q: %w", p.Title, err)
	}
	switch d {
	case model.DecisionConfirm:
		return nil
	default:
		log.Info(ctx, "action canceled by the user")
		return cerr.Conflict(ErrCanceled)
	}
}

// locate requests the location permission and takes a position fix.
func (g *Gate) locate(ctx context.Context) (model.Coordinate, error) {
	if err := g.permit(ctx); err != nil {
		return model.Coordinate{}, err
	}
	return g.position(ctx)
}

func (g *Gate) permit(ctx context.Context) error {
	granted, err := g.dev.Locator.RequestPermission(ctx)
	if err != nil {
		return fmt.Errorf("requesting location permission: %w", err)
	}
	if !granted {
		g.notify(ctx, model.NoticeError, "Error", "GPS permission denied.")
		return cerr.Authorization(ErrPermissionDenied)
	}
	return nil
}

func (g *Gate) position(ctx context.Context) (model.Coordinate, error) {
	pos, err := g.dev.Locator.CurrentPosition(ctx)
	if err != nil {
		return model.Coordinate{}, g.fail(ctx, "Location failed", fmt.Errorf(
			"taking position fix: %w", err,
		))
	}
	return pos, nil
}

// republish reverts the remote delete of a claimed spot.
func (g *Gate) republish(ctx context.Context, spot model.Spot) {
	spot.ID = ""
	if _, err := g.spots.Report(ctx, spot); err != nil {
		log.Error(ctx, "re-publishing claimed spot failed",
			log.Valuer("spot", spot), log.Err("err", err),
		)
	}
}

// withdraw reverts the remote create of a left spot, if its id is known.
func (g *Gate) withdraw(ctx context.Context, id model.SpotID) {
	if id == "" {
		log.Error(ctx, "left spot id is unknown and may not be withdrawn")
		return
	}
	if err := g.spots.Delete(ctx, id); err != nil {
		log.Error(ctx, "withdrawing left spot failed",
			log.SpotID("id", id), log.Err("err", err),
		)
	}
}

// fail logs err, notifies the user with a retryable failure notice, and
// returns err. Transport-level failures are already cerr.Unavailable.
func (g *Gate) fail(ctx context.Context, title string, err error) error {
	log.Warn(ctx, "action failed", log.Err("err", err))
	body := "Please try again."
	if !cerr.Retryable(err) {
		body = err.Error()
	}
	g.notify(ctx, model.NoticeError, title, body)
	return err
}

func (g *Gate) notify(ctx context.Context, lvl model.NoticeLevel, title, body string) {
	g.dev.Notifier.Notify(ctx, model.Notice{Level: lvl, Title: title, Body: body})
}

func (g *Gate) refresh(ctx context.Context) {
	_ = g.store.Refresh(ctx) // already logged, the poller retries
}
