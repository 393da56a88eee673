// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package model

import (
	"errors"
	"fmt"
)

// ParkingState is the per-device state of the action gate. A device is
// Parked if and only if it holds a Car record.
type ParkingState int

// Valid values for the ParkingState enum.
const (
	Unparked ParkingState = iota // no car record
	Parked                       // a car record is present
)

// String returns "unparked" or "parked".
func (s ParkingState) String() string {
	if s == Parked {
		return "parked"
	}
	return "unparked"
}

// StateOf returns the ParkingState which corresponds to a possibly
// nil car record.
func StateOf(car *Car) ParkingState {
	if car == nil {
		return Unparked
	}
	return Parked
}

// Action enumerates the user actions which are governed by the gate.
type Action int

// Valid values for the Action enum.
const (
	ActionInvalid Action = iota // zero value is invalid

	ActionReport   // report a seen free spot
	ActionClaim    // take a displayed spot
	ActionNavigate // navigate to a displayed spot
	ActionMarkFake // report a displayed spot as fake or occupied
	ActionLeave    // leave the currently parked spot
)

// Actions lists all valid actions in a stable order.
var Actions = []Action{
	ActionReport, ActionClaim, ActionNavigate, ActionMarkFake, ActionLeave,
}

// ErrUnknownAction indicates an unparsable action string.
var ErrUnknownAction = errors.New("unknown action")

// String converts the Action enum to a string. Invalid actions cause a
// panic.
func (a Action) String() string {
	switch a {
	case ActionReport:
		return "report"
	case ActionClaim:
		return "claim"
	case ActionNavigate:
		return "navigate"
	case ActionMarkFake:
		return "mark-fake"
	case ActionLeave:
		return "leave"
	default:
		panic(fmt.Sprintf("invalid action: %d", int(a)))
	}
}

// ParseAction parses the string representation of an Action.
func ParseAction(s string) (Action, error) {
	for _, a := range Actions {
		if a.String() == s {
			return a, nil
		}
	}
	return ActionInvalid, ErrUnknownAction
}

// Decision is the outcome of a blocking confirmation step. It is a
// closed set so the gate may handle every outcome explicitly.
type Decision int

// Valid values for the Decision enum.
const (
	DecisionCancel  Decision = iota // the zero value declines
	DecisionConfirm                 // the user accepted the prompt
)

// String returns "confirm" or "cancel".
func (d Decision) String() string {
	if d == DecisionConfirm {
		return "confirm"
	}
	return "cancel"
}

// Prompt is the content of a confirmation step.
type Prompt struct {
	Title   string
	Message string
	Confirm string // label of the accepting choice
	Cancel  string // label of the declining choice
}

// NoticeLevel is the severity of a Notice.
type NoticeLevel int

// Valid values for the NoticeLevel enum.
const (
	NoticeInfo NoticeLevel = iota
	NoticeWarn
	NoticeError
)

// String returns the lower-case name of the level.
func (l NoticeLevel) String() string {
	switch l {
	case NoticeWarn:
		return "warn"
	case NoticeError:
		return "error"
	default:
		return "info"
	}
}

// Notice is a short, non-blocking user notification. Unlike a Prompt,
// showing a Notice never waits for the user.
type Notice struct {
	Level NoticeLevel
	Title string
	Body  string
}
