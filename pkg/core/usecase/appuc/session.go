// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import (
	"context"
	"errors"
	"fmt"

	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
)

// Open creates the spots use case using the builder, loads the local
// car record, and fetches the spots collection for the first time.
// A failed first fetch is logged and tolerated since the poller (or a
// manual refresh) retries it, but failing to read the local car record
// fails the Open because the parking state would be unknown.
// If the community disclaimer is not acknowledged yet, an info notice
// is emitted.
func (app *UseCase) Open(ctx context.Context) error {
	app.mutex.Lock()
	defer app.mutex.Unlock()
	if app.SpotsUseCase() != nil {
		return errors.New("session is already opened")
	}
	return app.open(ctx)
}

// open implements Open while app.mutex is held by the caller.
func (app *UseCase) open(ctx context.Context) error {
	uc, err := app.builder.NewSpotsUseCase(app.spots, app.prefs, app.dev)
	if err != nil {
		return fmt.Errorf("creating spots use case: %w", err)
	}
	if err := uc.Store().LoadLocalCar(ctx); err != nil {
		return err
	}
	_ = uc.Store().Refresh(ctx) // already logged
	acked, err := app.prefs.DisclaimerAcked(ctx)
	if err != nil {
		log.Warn(ctx, "reading disclaimer flag failed", log.Err("err", err))
	} else if !acked {
		app.dev.Notifier.Notify(ctx, model.Notice{
			Level: model.NoticeInfo,
			Title: "Welcome",
			Body:  app.disclaimer,
		})
	}
	vs := uc.Settings()
	app.updateAll(&vs, uc)
	log.Info(ctx, "session opened", log.State("state", uc.Gate().State()))
	return nil
}

// Start opens the session (if it is not opened yet) and runs the
// spots poller on a separate go routine until ctx is cancelled or
// Close is called.
func (app *UseCase) Start(ctx context.Context) error {
	app.mutex.Lock()
	defer app.mutex.Unlock()
	if app.cancel != nil {
		return errors.New("poller is already started")
	}
	if app.SpotsUseCase() == nil {
		if err := app.open(ctx); err != nil {
			return err
		}
	}
	uc := app.SpotsUseCase()
	ctx, cancel := context.WithCancel(ctx)
	done := make(chan struct{})
	app.cancel, app.done = cancel, done
	go func() {
		defer close(done)
		uc.Store().Poll(ctx, uc.PollInterval())
	}()
	log.Info(ctx, "spots poller started")
	return nil
}

// Close stops the poller (if it is started), waits for it to return,
// and closes the prefs repository. The session may not be used after
// a Close.
func (app *UseCase) Close() error {
	app.mutex.Lock()
	defer app.mutex.Unlock()
	if app.cancel != nil {
		app.cancel()
		<-app.done
		app.cancel, app.done = nil, nil
	}
	if err := app.prefs.Close(); err != nil {
		return fmt.Errorf("closing prefs repository: %w", err)
	}
	return nil
}

// Disclaimer returns the community disclaimer text and whether it was
// acknowledged on this device.
func (app *UseCase) Disclaimer(ctx context.Context) (
	text string, acked bool, err error,
) {
	acked, err = app.prefs.DisclaimerAcked(ctx)
	if err != nil {
		return "", false, fmt.Errorf("reading disclaimer flag: %w", err)
	}
	return app.disclaimer, acked, nil
}

// AckDisclaimer records the disclaimer acknowledgement. The flag is
// never reset, so acknowledging it again is a no-op.
func (app *UseCase) AckDisclaimer(ctx context.Context) error {
	if err := app.prefs.AckDisclaimer(ctx); err != nil {
		return fmt.Errorf("storing disclaimer flag: %w", err)
	}
	log.Info(ctx, "disclaimer acknowledged")
	return nil
}
