// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blinky

// A Divider is a free running up-counter used to derive slower clock
// enables from a domain clock: tap i toggles at clockHz / 2^(i+1).
//
type Divider struct {
	count uint64
	mask  uint64
	width uint
}

// NewDivider returns a Divider of the given width in bits, 1 to 64.
//
func NewDivider(width uint) (*Divider, error) {
	if width < 1 || width > 64 {
		return nil, configErrf("divider width %d out of range [1, 64]", width)
	}
	var mask uint64 = ^uint64(0)
	if width < 64 {
		mask = 1<<width - 1
	}
	return &Divider{mask: mask, width: width}, nil
}

// Tick advances the counter by one. Reset clears it.
//
func (d *Divider) Tick(reset bool) {
	if reset {
		d.count = 0
		return
	}
	d.count = (d.count + 1) & d.mask
}

// Bit returns tap i of the counter. It panics if i is out of range,
// like a request for a pin that does not exist.
//
func (d *Divider) Bit(i uint) bool {
	if i >= d.width {
		panic("divider tap out of range")
	}
	return d.count&(1<<i) != 0
}

// Count returns the raw counter value.
//
func (d *Divider) Count() uint64 { return d.count }

// Width returns the counter width in bits.
//
func (d *Divider) Width() uint { return d.width }
