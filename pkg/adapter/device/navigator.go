// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package device

import (
	"context"
	"errors"
	"fmt"
	"net/url"

	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
)

// NavProvider enumerates the supported map navigation providers.
type NavProvider int

// Valid values for the NavProvider enum.
const (
	NavInvalid NavProvider = iota // zero value is invalid

	NavGoogle // Google Maps directions URL
	NavOSM    // OpenStreetMap directions URL
	NavGeo    // RFC 5870 geo URI, handled by the platform map app
)

// ErrUnknownNavProvider indicates an unparsable provider name.
var ErrUnknownNavProvider = errors.New("unknown navigation provider")

// ParseNavProvider parses "google", "osm", or "geo".
func ParseNavProvider(s string) (NavProvider, error) {
	switch s {
	case "google":
		return NavGoogle, nil
	case "osm":
		return NavOSM, nil
	case "geo":
		return NavGeo, nil
	default:
		return NavInvalid, ErrUnknownNavProvider
	}
}

// Launcher hands a navigation URL to the platform, e.g., by printing
// it or by running a URL opener.
type Launcher func(ctx context.Context, u string) error

// Navigator builds the navigation URLs of a provider and passes them
// to an optional Launcher.
type Navigator struct {
	Provider NavProvider
	Launch   Launcher
}

// URL returns the navigation URL towards dst.
func (n Navigator) URL(dst model.Coordinate, label string) (string, error) {
	switch n.Provider {
	case NavGoogle:
		q := url.Values{}
		q.Set("api", "1")
		q.Set("destination", dst.String())
		return "https://www.google.com/maps/dir/?" + q.Encode(), nil
	case NavOSM:
		q := url.Values{}
		q.Set("route", ";"+dst.String())
		return "https://www.openstreetmap.org/directions?" + q.Encode(), nil
	case NavGeo:
		q := url.Values{}
		q.Set("q", fmt.Sprintf("%s(%s)", dst, label))
		return "geo:" + dst.String() + "?" + q.Encode(), nil
	default:
		return "", ErrUnknownNavProvider
	}
}

// Open builds the URL and launches it.
func (n Navigator) Open(ctx context.Context, dst model.Coordinate, label string) (string, error) {
	u, err := n.URL(dst, label)
	if err != nil {
		return "", err
	}
	if n.Launch != nil {
		if err := n.Launch(ctx, u); err != nil {
			return "", fmt.Errorf("launching %q: %w", u, err)
		}
	}
	log.Debug(ctx, "navigation url", log.Valuer("dst", dst))
	return u, nil
}
