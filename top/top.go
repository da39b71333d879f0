// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package top assembles complete designs for a target board: the
// introductory Blinky (a periodic toggler, a reset indicator and an LED
// chaser) and the Audio variant with a second clock domain.
//
package top

import (
	"github.com/pkg/errors"

	"github.com/db47h/blinky"
	"github.com/db47h/blinky/board"
	"github.com/db47h/blinky/chaser"
)

// DefaultBlinkHz is the blink rate of the first user LED.
const DefaultBlinkHz = 3

// A Signal is a named single bit probe into a running design, for
// logging and waveform dumps.
//
type Signal struct {
	Name string
	Get  func() bool
}

type config struct {
	blinkHz float64
	seq     chaser.Sequencer
}

// An Option configures a top level design.
//
type Option func(*config)

// WithBlinkHz overrides the blink rate of the first user LED.
//
func WithBlinkHz(hz float64) Option {
	return func(c *config) { c.blinkHz = hz }
}

// WithSequencer replaces the default chaser with an external sequencing
// core.
//
func WithSequencer(s chaser.Sequencer) Option {
	return func(c *config) { c.seq = s }
}

// crg wires the board clock and reset button into a clock domain: the
// domain runs at clkHz and its reset samples the button pad, inverted
// on boards with an active low button.
//
func crg(brd *board.Board, name string, clkHz float64) (*blinky.Domain, func() bool, error) {
	d, err := blinky.NewDomain(name, clkHz)
	if err != nil {
		return nil, nil, err
	}
	rname, ridx := brd.ResetPad()
	rst, err := brd.Request(rname, ridx)
	if err != nil {
		return nil, nil, errors.Wrap(err, "reset pad")
	}
	var level func() bool
	if brd.ResetActiveLow() {
		level = func() bool { return !rst.Get() }
	} else {
		level = rst.Get
	}
	d.SetReset(level)
	return d, level, nil
}

// chaserPads requests the pads the chaser drives: the RGB sub-pins in
// r, g, b plane order when the board has RGB LEDs, the remaining user
// LEDs otherwise.
//
func chaserPads(brd *board.Board) ([]*board.Pin, error) {
	if n := brd.CountRGB("rgb_led"); n > 0 {
		groups := make([]*board.RGB, n)
		for i := range groups {
			g, err := brd.RequestRGB("rgb_led", i)
			if err != nil {
				return nil, err
			}
			groups[i] = g
		}
		pads := make([]*board.Pin, 0, 3*n)
		for _, g := range groups {
			pads = append(pads, g.R)
		}
		for _, g := range groups {
			pads = append(pads, g.G)
		}
		for _, g := range groups {
			pads = append(pads, g.B)
		}
		return pads, nil
	}
	n := brd.Count("user_led")
	if n <= 2 {
		return nil, errors.Errorf("%s: no pads left for the chaser", brd.Name())
	}
	pads := make([]*board.Pin, 0, n-2)
	for i := 2; i < n; i++ {
		p, err := brd.Request("user_led", i)
		if err != nil {
			return nil, err
		}
		pads = append(pads, p)
	}
	return pads, nil
}

// Blinky is the introductory design: a toggler blinking user_led 0, a
// reset indicator on user_led 1 and a chaser sweeping the remaining
// pads, all in a single clock domain fed by the board clock.
//
type Blinky struct {
	brd   *board.Board
	sys   *blinky.Domain
	sim   *blinky.Simulator
	blink *blinky.Toggle
	seq   chaser.Sequencer
	led0  *board.Pin
	led1  *board.Pin
	pads  []*board.Pin
}

// NewBlinky assembles a Blinky for the given board.
//
func NewBlinky(brd *board.Board, opts ...Option) (*Blinky, error) {
	cfg := config{blinkHz: DefaultBlinkHz}
	for _, o := range opts {
		o(&cfg)
	}

	sys, rstLevel, err := crg(brd, "sys", brd.ClockHz())
	if err != nil {
		return nil, err
	}
	blink, err := blinky.NewToggle(brd.ClockHz(), cfg.blinkHz)
	if err != nil {
		return nil, errors.Wrap(err, "blink")
	}
	led0, err := brd.Request("user_led", 0)
	if err != nil {
		return nil, err
	}
	led1, err := brd.Request("user_led", 1)
	if err != nil {
		return nil, err
	}
	pads, err := chaserPads(brd)
	if err != nil {
		return nil, err
	}
	seq := cfg.seq
	if seq == nil {
		seq, err = chaser.NewSweep(brd.ClockHz(), len(pads))
		if err != nil {
			return nil, errors.Wrap(err, "chaser")
		}
	}

	t := &Blinky{
		brd:   brd,
		sys:   sys,
		blink: blink,
		seq:   seq,
		led0:  led0,
		led1:  led1,
		pads:  pads,
	}
	sys.Add(blink, seq)
	sys.Comb(func() { led0.Set(blink.Out()) })
	sys.Comb(func() { led1.Set(rstLevel()) })
	sys.Comb(func() { seq.Drive(pads) })

	t.sim, err = blinky.NewSimulator(sys)
	if err != nil {
		return nil, err
	}
	return t, nil
}

// Tick performs one system clock edge.
//
func (t *Blinky) Tick() { t.sys.Tick() }

// Sys returns the system clock domain.
//
func (t *Blinky) Sys() *blinky.Domain { return t.sys }

// Sim returns a simulator driving the design.
//
func (t *Blinky) Sim() *blinky.Simulator { return t.sim }

// Blink returns the toggler driving user_led 0.
//
func (t *Blinky) Blink() *blinky.Toggle { return t.blink }

// Pads returns the pads driven by the chaser.
//
func (t *Blinky) Pads() []*board.Pin { return t.pads }

// Signals returns the design's observable signals.
//
func (t *Blinky) Signals() []Signal {
	sigs := []Signal{
		{"blink", t.blink.Out},
		{t.led0.String(), t.led0.Get},
		{t.led1.String(), t.led1.Get},
	}
	for _, p := range t.pads {
		p := p
		sigs = append(sigs, Signal{p.String(), p.Get})
	}
	return sigs
}
