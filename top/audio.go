// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package top

import (
	"github.com/pkg/errors"

	"github.com/db47h/blinky"
	"github.com/db47h/blinky/board"
)

// I2SClockHz is the audio master clock frequency, normally produced by
// a PLL from the board clock.
const I2SClockHz = 12.288e6

// AudioBlinkHz is the blink rate of the LED clocked by the audio
// domain, chosen different from the system blink so the two domains can
// be told apart on the board.
const AudioBlinkHz = 5

// Audio is the two clock domain design: the system domain blinks
// user_led 0 at 3 Hz, the 12.288 MHz audio domain blinks user_led 1 at
// 5 Hz and derives the I2S bit and word clocks from a divider chain,
// and user_led 2 indicates reset.
//
type Audio struct {
	brd      *board.Board
	sys      *blinky.Domain
	i2s      *blinky.Domain
	sim      *blinky.Simulator
	blinkSys *blinky.Toggle
	blinkI2S *blinky.Toggle
	div      *blinky.Divider
	led0     *board.Pin
	led1     *board.Pin
	led2     *board.Pin
	tx       *board.I2S
	mclk     *board.Pin
}

// NewAudio assembles the audio design. The board must expose I2S
// transmit pads.
//
func NewAudio(brd *board.Board, opts ...Option) (*Audio, error) {
	if brd.CountI2S() == 0 {
		return nil, errors.Errorf("%s: board has no I2S pads", brd.Name())
	}
	cfg := config{blinkHz: DefaultBlinkHz}
	for _, o := range opts {
		o(&cfg)
	}

	sys, rstLevel, err := crg(brd, "sys", brd.ClockHz())
	if err != nil {
		return nil, err
	}
	// the PLL output domain shares the button reset with sys.
	i2s, err := blinky.NewDomain("i2s", I2SClockHz)
	if err != nil {
		return nil, err
	}
	i2s.SetReset(rstLevel)

	blinkSys, err := blinky.NewToggle(brd.ClockHz(), cfg.blinkHz)
	if err != nil {
		return nil, errors.Wrap(err, "sys blink")
	}
	blinkI2S, err := blinky.NewToggle(I2SClockHz, AudioBlinkHz)
	if err != nil {
		return nil, errors.Wrap(err, "i2s blink")
	}
	div, err := blinky.NewDivider(8)
	if err != nil {
		return nil, err
	}

	a := &Audio{
		brd:      brd,
		sys:      sys,
		i2s:      i2s,
		blinkSys: blinkSys,
		blinkI2S: blinkI2S,
		div:      div,
	}
	if a.led0, err = brd.Request("user_led", 0); err != nil {
		return nil, err
	}
	if a.led1, err = brd.Request("user_led", 1); err != nil {
		return nil, err
	}
	if a.led2, err = brd.Request("user_led", 2); err != nil {
		return nil, err
	}
	if a.tx, err = brd.RequestI2S(0); err != nil {
		return nil, err
	}
	if a.mclk, err = brd.Request("i2s_tx_mclk", 0); err != nil {
		return nil, err
	}

	sys.Add(blinkSys)
	sys.Comb(func() { a.led0.Set(blinkSys.Out()) })
	sys.Comb(func() { a.led2.Set(rstLevel()) })

	i2s.Add(blinkI2S, div)
	i2s.Comb(func() { a.led1.Set(blinkI2S.Out()) })
	// SCLK = MCLK/4 and LRCK = MCLK/256, straight off the divider chain.
	// Tap 0 stands in for MCLK itself: a tick level model cannot
	// express a wave faster than half the domain clock.
	i2s.Comb(func() {
		a.mclk.Set(div.Bit(0))
		a.tx.Clk.Set(div.Bit(1))
		a.tx.Sync.Set(div.Bit(7))
	})

	if a.sim, err = blinky.NewSimulator(sys, i2s); err != nil {
		return nil, err
	}
	return a, nil
}

// Sim returns a simulator driving both domains.
//
func (a *Audio) Sim() *blinky.Simulator { return a.sim }

// Sys returns the system clock domain.
//
func (a *Audio) Sys() *blinky.Domain { return a.sys }

// I2S returns the audio clock domain.
//
func (a *Audio) I2S() *blinky.Domain { return a.i2s }

// Divider returns the audio clock divider chain.
//
func (a *Audio) Divider() *blinky.Divider { return a.div }

// Signals returns the design's observable signals.
//
func (a *Audio) Signals() []Signal {
	return []Signal{
		{"blink_sys", a.blinkSys.Out},
		{"blink_i2s", a.blinkI2S.Out},
		{a.led0.String(), a.led0.Get},
		{a.led1.String(), a.led1.Get},
		{a.led2.String(), a.led2.Get},
		{a.mclk.String(), a.mclk.Get},
		{a.tx.Clk.String(), a.tx.Clk.Get},
		{a.tx.Sync.String(), a.tx.Sync.Get},
	}
}
