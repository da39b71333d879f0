// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package chaser provides the LED sequencing collaborator used by the
// top level designs. The real sequencing core is an external module;
// its contract is captured by the Sequencer interface, and the package
// ships a simple stand-in implementation satisfying it.
//
package chaser

import (
	"math"

	"github.com/db47h/blinky"
	"github.com/db47h/blinky/board"
)

// A Sequencer produces a repeating visual pattern across a set of
// output pads: it advances once per clock tick and writes its current
// pattern on demand.
//
type Sequencer interface {
	blinky.Ticker
	Drive(pads []*board.Pin)
}

// A Chaser is a simple Sequencer: one lit position sweeping across its
// n outputs, advancing at a fixed step rate derived from the clock that
// ticks it. Reset returns the lit position to output 0.
//
type Chaser struct {
	period uint
	count  uint
	pos    int
	n      int
}

// New returns a Chaser sweeping over n outputs, stepping stepHz times
// per second when ticked at clockHz.
//
func New(clockHz, stepHz float64, n int) (*Chaser, error) {
	if n < 1 {
		return nil, blinky.ConfigError("chaser needs at least one output")
	}
	if clockHz <= 0 || stepHz <= 0 {
		return nil, blinky.ConfigError("chaser frequencies must be positive")
	}
	// checked before rounding, like the toggler: a ratio below 1 would
	// round up to a period of 1.
	if stepHz > clockHz {
		return nil, blinky.ConfigError("chaser step frequency too high for the clock")
	}
	c := &Chaser{period: uint(math.Round(clockHz / stepHz)), n: n}
	c.count = c.period
	return c, nil
}

// NewSweep returns a Chaser completing one full sweep of its n outputs
// per second, matching the default rate of the external core.
//
func NewSweep(clockHz float64, n int) (*Chaser, error) {
	return New(clockHz, float64(n), n)
}

// Tick implements blinky.Ticker.
//
func (c *Chaser) Tick(reset bool) {
	if reset {
		c.count = c.period
		c.pos = 0
		return
	}
	c.count--
	if c.count == 0 {
		c.pos = (c.pos + 1) % c.n
		c.count = c.period
	}
}

// Drive writes the current pattern to the given pads. Extra pads beyond
// the configured width repeat the pattern.
//
func (c *Chaser) Drive(pads []*board.Pin) {
	for i, p := range pads {
		p.Set(i%c.n == c.pos)
	}
}

// Pos returns the currently lit output.
//
func (c *Chaser) Pos() int { return c.pos }

// Period returns the number of ticks between two steps.
//
func (c *Chaser) Period() uint { return c.period }
