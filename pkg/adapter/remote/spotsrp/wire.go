// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package spotsrp

import (
	"bytes"
	"fmt"

	"github.com/goccy/go-json"
	"github.com/momeni/parkshare/pkg/core/model"
)

// wireID is a spot identifier which the remote service may encode as
// a JSON number (its current integer primary keys) or a JSON string.
type wireID string

func (id *wireID) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	switch {
	case len(b) == 0 || bytes.Equal(b, []byte("null")):
		*id = ""
	case b[0] == '"':
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return fmt.Errorf("unmarshaling string id: %w", err)
		}
		*id = wireID(s)
	default:
		var n json.Number
		if err := json.Unmarshal(b, &n); err != nil {
			return fmt.Errorf("unmarshaling numeric id: %w", err)
		}
		*id = wireID(n.String())
	}
	return nil
}

type wireSpot struct {
	ID        wireID  `json:"id"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

// Model converts ws to a model.Spot. An unknown status is kept as the
// invalid status, so the spot is still listed and classified by its
// age.
func (ws *wireSpot) Model() model.Spot {
	status, _ := model.ParseSpotStatus(ws.Status)
	return model.Spot{
		ID: model.SpotID(ws.ID),
		Coordinate: model.Coordinate{
			Lat: ws.Latitude,
			Lon: ws.Longitude,
		},
		Message:   ws.Message,
		Status:    status,
		CreatedAt: ws.CreatedAt,
	}
}

type wireReport struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Message   string  `json:"message"`
	Status    string  `json:"status"`
	CreatedAt string  `json:"created_at"`
}

func newWireReport(s model.Spot) wireReport {
	return wireReport{
		Latitude:  s.Coordinate.Lat,
		Longitude: s.Coordinate.Lon,
		Message:   s.Message,
		Status:    s.Status.String(),
		CreatedAt: s.CreatedAt,
	}
}

type wireDetail struct {
	Detail any `json:"detail"`
}
