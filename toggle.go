// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blinky

import "math"

// A Toggle is a counter driven square wave generator: its output bit
// flips at a fixed rate derived from the frequency of the clock that
// ticks it.
//
// Reload convention: the counter initializes and reloads to the period;
// each tick decrements it first and then tests it against zero; when it
// hits zero the output flips and the counter reloads within that same
// tick. Exactly Period() ticks elapse between two consecutive flips.
//
type Toggle struct {
	period uint
	count  uint
	out    bool
	init   bool
}

// A ToggleOpt is a construction option for a Toggle.
//
type ToggleOpt func(*Toggle)

// InitialOutput sets the output value the Toggle starts with and
// returns to on reset. The default is false.
//
func InitialOutput(v bool) ToggleOpt {
	return func(t *Toggle) { t.init = v }
}

// NewToggle returns a Toggle whose output flips toggleHz times per
// second when ticked at clockHz. The flip period in ticks is
// round(clockHz / (2*toggleHz)); the output therefore completes a full
// low-high cycle at toggleHz Hz, within one clock period of jitter due
// to integer rounding.
//
// NewToggle fails with a ConfigError if either frequency is not
// positive or if toggleHz exceeds clockHz/2 (no whole-tick period can
// represent a faster rate).
//
func NewToggle(clockHz, toggleHz float64, opts ...ToggleOpt) (*Toggle, error) {
	if clockHz <= 0 {
		return nil, configErrf("clock frequency %g Hz must be positive", clockHz)
	}
	if toggleHz <= 0 {
		return nil, configErrf("toggle frequency %g Hz must be positive", toggleHz)
	}
	// checked before rounding: clockHz/(2*toggleHz) < 1 would round up
	// to a period of 1 for any toggleHz up to clockHz.
	if toggleHz > clockHz/2 {
		return nil, configErrf("toggle frequency %g Hz too high for a %g Hz clock", toggleHz, clockHz)
	}
	t := &Toggle{period: uint(math.Round(clockHz / (2 * toggleHz)))}
	for _, o := range opts {
		o(t)
	}
	t.count = t.period
	t.out = t.init
	return t, nil
}

// Tick advances the Toggle by one clock edge. While reset is asserted
// the counter holds at its reload value and the output holds at its
// initial value; counting resumes on the first tick after deassert.
//
func (t *Toggle) Tick(reset bool) {
	if reset {
		t.count = t.period
		t.out = t.init
		return
	}
	t.count--
	if t.count == 0 {
		t.out = !t.out
		t.count = t.period
	}
}

// Out returns the current output bit.
//
func (t *Toggle) Out() bool { return t.out }

// Period returns the number of ticks between two output flips.
//
func (t *Toggle) Period() uint { return t.period }
