// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
	"log/slog"
)

// SpotID is the opaque identifier of a reported spot. It is assigned by
// the remote service and the client never invents one. An empty SpotID
// represents a spot which is not reported yet.
type SpotID string

// ErrEmptySpotID indicates that a spot identifier was required but an
// empty one was given.
var ErrEmptySpotID = errors.New("empty spot id")

// Validate returns ErrEmptySpotID if id is empty.
func (id SpotID) Validate() error {
	if id == "" {
		return ErrEmptySpotID
	}
	return nil
}

// SpotStatus specifies the status of a reported spot. Only the free
// status is produced by the current action flows, but the enum leaves
// room for extension. It is (de)serialized as a string.
type SpotStatus int

// Valid values for the SpotStatus enum.
const (
	SpotStatusInvalid SpotStatus = iota // zero value is invalid

	SpotStatusFree // the spot was reported as free ("libre")
)

// ErrUnknownSpotStatus indicates that a given string may not be parsed
// as a known spot status. Similar to other parsing errors, it does not
// repeat the offending string because the caller knows about it.
var ErrUnknownSpotStatus = errors.New("unknown spot status")

// SpotStatusError indicates an invalid numeric spot status.
type SpotStatusError int

// Error implements the error interface.
func (e SpotStatusError) Error() string {
	return fmt.Sprintf("invalid spot status: %d", e)
}

// Validate returns nil if s is a known status and a SpotStatusError
// otherwise.
func (s SpotStatus) Validate() error {
	switch s {
	case SpotStatusFree:
		return nil
	default:
		return SpotStatusError(s)
	}
}

// String converts the SpotStatus enum to its wire representation.
// Invalid statuses are reported as "unknown" instead of panicking
// because they may be received from the remote service.
func (s SpotStatus) String() string {
	switch s {
	case SpotStatusFree:
		return "libre"
	default:
		return "unknown"
	}
}

// ParseSpotStatus parses the wire representation of a spot status.
// For unknown strings, SpotStatusInvalid and ErrUnknownSpotStatus
// will be returned.
func ParseSpotStatus(s string) (SpotStatus, error) {
	switch s {
	case "libre":
		return SpotStatusFree, nil
	default:
		return SpotStatusInvalid, ErrUnknownSpotStatus
	}
}

// Spot is a single reported parking-availability event at a location
// and time. The client holds a cached copy of the remote collection.
type Spot struct {
	ID         SpotID
	Coordinate Coordinate
	Message    string     // free text describing how it was reported
	Status     SpotStatus // SpotStatusFree for all produced reports
	CreatedAt  string     // report timestamp, RFC 3339 when well-formed
}

// LogValue implements slog.LogValuer so spots may be logged compactly.
func (s Spot) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("id", string(s.ID)),
		slog.Any("at", s.Coordinate),
		slog.String("created_at", s.CreatedAt),
	)
}

// ReportReason describes why a spot is being reported. It is encoded
// in the Message of the created spot.
type ReportReason int

// Valid values for the ReportReason enum.
const (
	ReportReasonInvalid ReportReason = iota // zero value is invalid

	ReportReasonSpotted // a passer-by saw a free spot
	ReportReasonLeft    // the device owner left its parked spot
)

// ErrUnknownReportReason indicates an unparsable report reason string.
var ErrUnknownReportReason = errors.New("unknown report reason")

// String converts the reason to its short name. Invalid reasons cause
// a panic, similar to other enums which are never received remotely.
func (r ReportReason) String() string {
	switch r {
	case ReportReasonSpotted:
		return "spotted"
	case ReportReasonLeft:
		return "left"
	default:
		panic(fmt.Sprintf("invalid report reason: %d", int(r)))
	}
}

// Message returns the tag which is stored in the Message field of the
// spots which are reported for the r reason.
func (r ReportReason) Message() string {
	switch r {
	case ReportReasonSpotted:
		return "Libre (GPS)"
	case ReportReasonLeft:
		return "Libre (départ)"
	default:
		panic(fmt.Sprintf("invalid report reason: %d", int(r)))
	}
}

// ParseReportReason parses a short reason name.
func ParseReportReason(s string) (ReportReason, error) {
	switch s {
	case "spotted":
		return ReportReasonSpotted, nil
	case "left":
		return ReportReasonLeft, nil
	default:
		return ReportReasonInvalid, ErrUnknownReportReason
	}
}

// SpotView is one element of the rendered set: a visible spot and its
// freshness classification.
type SpotView struct {
	Spot
	Classification
}
