// Copyright (c) 2024 Behnam Momeni
// This Source Code Form is subject to the terms of the Mozilla Public
// License, v. 2.0. If a copy of the MPL was not distributed with this
// file, You can obtain one at https://mozilla.org/MPL/2.0/.

package device

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/momeni/parkshare/pkg/core/model"
)

// Fixed is a Confirmer which returns itself as the decision. It serves
// the non-interactive clients which collect the decision beforehand,
// e.g., by a "-y" flag or a "confirm" form field.
type Fixed model.Decision

// Confirm returns d without showing anything.
func (d Fixed) Confirm(context.Context, model.Prompt) (model.Decision, error) {
	return model.Decision(d), nil
}

// Terminal is a Confirmer which shows the prompt on an output and
// reads a "y" or "n" answer line from an input. An empty answer, an
// EOF, or a cancelled context declines.
//
// A line is read by at most one goroutine at a time. When the context
// of a Confirm call is cancelled, its pending read is kept and the next
// line answers the next Confirm call. Confirm calls must not overlap.
type Terminal struct {
	in  *bufio.Reader
	out io.Writer

	mu      sync.Mutex
	pending chan answer
}

type answer struct {
	line string
	err  error
}

// NewTerminal creates a Terminal which reads answers from in and writes
// prompts to out.
func NewTerminal(in io.Reader, out io.Writer) *Terminal {
	return &Terminal{in: bufio.NewReader(in), out: out}
}

// Confirm asks the p prompt and waits for one answer line.
func (t *Terminal) Confirm(ctx context.Context, p model.Prompt) (model.Decision, error) {
	_, err := fmt.Fprintf(t.out, "%s\n%s\n[y] %s / [N] %s: ",
		p.Title, p.Message, p.Confirm, p.Cancel,
	)
	if err != nil {
		return model.DecisionCancel, fmt.Errorf("writing prompt: %w", err)
	}
	ch := t.read()
	select {
	case <-ctx.Done():
		return model.DecisionCancel, nil
	case a := <-ch:
		t.mu.Lock()
		t.pending = nil
		t.mu.Unlock()
		if a.err != nil && !errors.Is(a.err, io.EOF) {
			return model.DecisionCancel, fmt.Errorf("reading answer: %w", a.err)
		}
		switch strings.ToLower(strings.TrimSpace(a.line)) {
		case "y", "yes":
			return model.DecisionConfirm, nil
		default:
			return model.DecisionCancel, nil
		}
	}
}

// read returns the channel of the pending line read, starting one if
// no read is pending.
func (t *Terminal) read() <-chan answer {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.pending == nil {
		ch := make(chan answer, 1)
		go func() {
			line, err := t.in.ReadString('\n')
			ch <- answer{line, err}
		}()
		t.pending = ch
	}
	return t.pending
}
