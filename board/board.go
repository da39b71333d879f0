// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package board models FPGA development boards as inventories of named,
// indexed pads. Designs request the pads they drive at configuration
// time; a pad can be requested only once.
//
package board

import (
	"strconv"

	"github.com/pkg/errors"
)

// A Pin is a single physical pad with a current logic level. Pins are
// obtained from a Board with Request and owned by the requester; the
// board only drives the pin backing its reset button.
//
type Pin struct {
	name      string
	index     int
	value     bool
	requested bool
}

// Name returns the pad name the pin was requested under.
//
func (p *Pin) Name() string { return p.name }

// Index returns the pad index.
//
func (p *Pin) Index() int { return p.index }

// Set drives the pin to the given level.
//
func (p *Pin) Set(v bool) { p.value = v }

// Get returns the current pin level.
//
func (p *Pin) Get() bool { return p.value }

func (p *Pin) String() string { return p.name + strconv.Itoa(p.index) }

// An RGB groups the r, g and b pads of one RGB LED.
//
type RGB struct {
	R, G, B *Pin
}

// An I2S groups the pads of one I2S transmit interface.
//
type I2S struct {
	Clk, Sync, Tx *Pin
}

// A Board is a pad inventory plus the board level facts a design needs:
// the system clock frequency and the reset button with its polarity.
//
type Board struct {
	name           string
	clockHz        float64
	pins           map[string][]*Pin
	rgbs           map[string][]*RGB
	i2s            []*I2S
	resetName      string
	resetIndex     int
	resetActiveLow bool
	resetPressed   bool
}

func newBoard(name string, clockHz float64, resetName string, resetIndex int, resetActiveLow bool) *Board {
	return &Board{
		name:           name,
		clockHz:        clockHz,
		pins:           make(map[string][]*Pin),
		rgbs:           make(map[string][]*RGB),
		resetName:      resetName,
		resetIndex:     resetIndex,
		resetActiveLow: resetActiveLow,
	}
}

func (b *Board) addPins(name string, count int) {
	ps := make([]*Pin, count)
	for i := range ps {
		ps[i] = &Pin{name: name, index: i}
	}
	b.pins[name] = ps
	if name == b.resetName {
		// button released: an active low pad idles high.
		ps[b.resetIndex].value = b.resetActiveLow
	}
}

func (b *Board) addRGB(name string, count int) {
	rs := make([]*RGB, count)
	for i := range rs {
		rs[i] = &RGB{
			R: &Pin{name: name + "_r", index: i},
			G: &Pin{name: name + "_g", index: i},
			B: &Pin{name: name + "_b", index: i},
		}
	}
	b.rgbs[name] = rs
}

func (b *Board) addI2S(count int) {
	for i := 0; i < count; i++ {
		b.i2s = append(b.i2s, &I2S{
			Clk:  &Pin{name: "i2s_tx_clk", index: i},
			Sync: &Pin{name: "i2s_tx_sync", index: i},
			Tx:   &Pin{name: "i2s_tx", index: i},
		})
	}
}

// Name returns the board name.
//
func (b *Board) Name() string { return b.name }

// ClockHz returns the frequency of the board's system clock input.
//
func (b *Board) ClockHz() float64 { return b.clockHz }

// Request returns the pad with the given name and index. It fails for
// unknown names, out of range indices and pads already requested.
//
func (b *Board) Request(name string, index int) (*Pin, error) {
	ps, ok := b.pins[name]
	if !ok {
		return nil, errors.Errorf("%s: unknown pad %q", b.name, name)
	}
	if index < 0 || index >= len(ps) {
		return nil, errors.Errorf("%s: pad %s[%d] out of range, %d available", b.name, name, index, len(ps))
	}
	p := ps[index]
	if p.requested {
		return nil, errors.Errorf("%s: pad %s[%d] already requested", b.name, name, index)
	}
	p.requested = true
	return p, nil
}

// RequestRGB returns the RGB pad group with the given name and index.
//
func (b *Board) RequestRGB(name string, index int) (*RGB, error) {
	rs, ok := b.rgbs[name]
	if !ok {
		return nil, errors.Errorf("%s: unknown RGB pad %q", b.name, name)
	}
	if index < 0 || index >= len(rs) {
		return nil, errors.Errorf("%s: RGB pad %s[%d] out of range, %d available", b.name, name, index, len(rs))
	}
	r := rs[index]
	if r.R.requested {
		return nil, errors.Errorf("%s: RGB pad %s[%d] already requested", b.name, name, index)
	}
	r.R.requested, r.G.requested, r.B.requested = true, true, true
	return r, nil
}

// RequestI2S returns the I2S transmit pad group with the given index.
//
func (b *Board) RequestI2S(index int) (*I2S, error) {
	if index < 0 || index >= len(b.i2s) {
		return nil, errors.Errorf("%s: I2S pad group %d out of range, %d available", b.name, index, len(b.i2s))
	}
	g := b.i2s[index]
	if g.Clk.requested {
		return nil, errors.Errorf("%s: I2S pad group %d already requested", b.name, index)
	}
	g.Clk.requested, g.Sync.requested, g.Tx.requested = true, true, true
	return g, nil
}

// Count returns the number of pads with the given name.
//
func (b *Board) Count(name string) int { return len(b.pins[name]) }

// CountRGB returns the number of RGB pad groups with the given name.
//
func (b *Board) CountRGB(name string) int { return len(b.rgbs[name]) }

// CountI2S returns the number of I2S transmit pad groups.
//
func (b *Board) CountI2S() int { return len(b.i2s) }

// ResetPad returns the name and index of the pad wired to the board's
// reset button.
//
func (b *Board) ResetPad() (string, int) { return b.resetName, b.resetIndex }

// ResetActiveLow reports whether the reset button pad idles high and
// reads low while pressed.
//
func (b *Board) ResetActiveLow() bool { return b.resetActiveLow }

// PressReset sets the state of the physical reset button and drives the
// backing pad accordingly.
//
func (b *Board) PressReset(pressed bool) {
	b.resetPressed = pressed
	if ps, ok := b.pins[b.resetName]; ok {
		ps[b.resetIndex].value = pressed != b.resetActiveLow
	}
}

// ResetAsserted returns the reset level normalized to active high,
// regardless of the button's electrical polarity.
//
func (b *Board) ResetAsserted() bool { return b.resetPressed }
