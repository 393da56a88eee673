// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

// Package spotsrp implements the repo.Spots interface over the REST
// API of the remote parking service. It lists the reported spots with
// GET /parkings, reports a new spot with POST /report, and deletes a
// spot with DELETE /parkings/{id}.
//
// Transport failures and 5xx (or 429) responses are reported as
// cerr.Unavailable errors, so callers may offer a retry, while other
// rejections are reported as cerr.BadRequest errors.
package spotsrp

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/momeni/parkshare/pkg/core/cerr"
	"github.com/momeni/parkshare/pkg/core/log"
	"github.com/momeni/parkshare/pkg/core/model"
)

// DeviceHeader carries the device identifier on mutating requests.
const DeviceHeader = "X-Device-ID"

const maxBodySize = 4 << 20

// Repo is a remote spots repository.
type Repo struct {
	base     *url.URL
	client   *http.Client
	timeout  time.Duration
	deviceID string
}

// New instantiates a remote spots repository for the service which is
// served at baseURL, e.g., "http://192.168.1.22:8000".
func New(baseURL string, opts ...Option) (*Repo, error) {
	base, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("parsing base url %q: %w", baseURL, err)
	}
	if base.Scheme != "http" && base.Scheme != "https" {
		return nil, fmt.Errorf("unsupported base url scheme %q", base.Scheme)
	}
	r := &Repo{base: base}
	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, fmt.Errorf("invalid option: %w", err)
		}
	}
	// now, deal with defaults
	if r.timeout == 0 {
		r.timeout = 10 * time.Second
	}
	if r.client == nil {
		r.client = &http.Client{Timeout: r.timeout}
	}
	return r, nil
}

// List fetches all reported spots, as ordered by the remote service.
func (r *Repo) List(ctx context.Context) ([]model.Spot, error) {
	body, err := r.do(ctx, http.MethodGet, "parkings", nil)
	if err != nil {
		return nil, err
	}
	var ws []wireSpot
	if err := json.Unmarshal(body, &ws); err != nil {
		return nil, cerr.Unavailable(
			fmt.Errorf("unmarshaling spots list: %w", err),
		)
	}
	spots := make([]model.Spot, 0, len(ws))
	for i := range ws {
		spots = append(spots, ws[i].Model())
	}
	return spots, nil
}

// Report creates the s spot remotely, ignoring its ID field. If the
// service echoes the created spot back, its assigned ID is returned.
// Otherwise, an empty ID is returned without an error.
func (r *Repo) Report(ctx context.Context, s model.Spot) (model.SpotID, error) {
	body, err := r.do(ctx, http.MethodPost, "report", newWireReport(s))
	if err != nil {
		return "", err
	}
	var ws wireSpot
	if err := json.Unmarshal(body, &ws); err != nil {
		log.Debug(ctx, "report response carries no spot", log.Err("err", err))
		return "", nil
	}
	return model.SpotID(ws.ID), nil
}

// Delete removes the id spot remotely. A spot which is already gone is
// not an error, so deleting is idempotent.
func (r *Repo) Delete(ctx context.Context, id model.SpotID) error {
	if err := id.Validate(); err != nil {
		return cerr.BadRequest(err)
	}
	_, err := r.do(
		ctx, http.MethodDelete, "parkings/"+url.PathEscape(string(id)), nil,
	)
	var se *statusError
	if errors.As(err, &se) && se.code == http.StatusNotFound {
		log.Debug(ctx, "deleted spot was already gone", log.SpotID("id", id))
		return nil
	}
	return err
}

// do sends one request and returns the body of a 2xx response. The req
// is marshaled as JSON if it is not nil.
func (r *Repo) do(
	ctx context.Context, method, path string, req any,
) ([]byte, error) {
	u := r.base.JoinPath(path)
	var rb io.Reader
	if req != nil {
		b, err := json.Marshal(req)
		if err != nil {
			return nil, fmt.Errorf("marshaling %s request: %w", path, err)
		}
		rb = bytes.NewReader(b)
	}
	hr, err := http.NewRequestWithContext(ctx, method, u.String(), rb)
	if err != nil {
		return nil, fmt.Errorf("creating %s request: %w", method, err)
	}
	hr.Header.Set("Accept", "application/json")
	if req != nil {
		hr.Header.Set("Content-Type", "application/json")
	}
	if method != http.MethodGet && r.deviceID != "" {
		hr.Header.Set(DeviceHeader, r.deviceID)
	}
	resp, err := r.client.Do(hr)
	if err != nil {
		return nil, cerr.Unavailable(fmt.Errorf("%s %s: %w", method, u, err))
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return nil, cerr.Unavailable(
			fmt.Errorf("reading %s %s response: %w", method, u, err),
		)
	}
	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		return body, nil
	}
	se := &statusError{
		method: method,
		url:    u.String(),
		code:   resp.StatusCode,
		detail: detailOf(body),
	}
	switch {
	case se.code >= 500, se.code == http.StatusTooManyRequests:
		return nil, cerr.Unavailable(se)
	case se.code == http.StatusNotFound:
		return nil, cerr.NotFound(se)
	default:
		return nil, cerr.BadRequest(se)
	}
}

type statusError struct {
	method, url string
	code        int
	detail      string
}

func (e *statusError) Error() string {
	if e.detail == "" {
		return fmt.Sprintf("%s %s: status %d", e.method, e.url, e.code)
	}
	return fmt.Sprintf(
		"%s %s: status %d: %s", e.method, e.url, e.code, e.detail,
	)
}

// detailOf extracts a FastAPI style {"detail": ...} message, falling
// back to the trimmed body text.
func detailOf(body []byte) string {
	var wd wireDetail
	if err := json.Unmarshal(body, &wd); err == nil && wd.Detail != nil {
		if s, ok := wd.Detail.(string); ok {
			return s
		}
		if b, err := json.Marshal(wd.Detail); err == nil {
			return string(b)
		}
	}
	s := strings.TrimSpace(string(body))
	if len(s) > 200 {
		s = s[:200]
	}
	return s
}
