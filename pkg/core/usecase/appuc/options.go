// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package appuc

import "errors"

// Option represents an optional setting for the application UseCase.
type Option func(app *UseCase) error

// WithDisclaimer replaces the DefaultDisclaimer text.
func WithDisclaimer(text string) Option {
	return func(app *UseCase) error {
		if text == "" {
			return errors.New("empty disclaimer text")
		}
		if app.disclaimer != "" {
			return errors.New("disclaimer is already configured")
		}
		app.disclaimer = text
		return nil
	}
}
