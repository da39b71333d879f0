// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blinky

// A Ticker is a clocked component: its state advances once per clock
// edge of the domain it is registered with. The reset level passed to
// Tick is sampled by the domain at the start of the tick; while it is
// true the component must hold in its reset state.
//
type Ticker interface {
	Tick(reset bool)
}

// TickerFn wraps a plain function into a Ticker.
//
type TickerFn func(reset bool)

// Tick implements Ticker.
//
func (f TickerFn) Tick(reset bool) { f(reset) }

// A Domain is a single clock domain: a named periodic tick source that
// a set of clocked components and combinational assignments are defined
// relative to.
//
// Each call to Tick models one clock edge: the reset level is sampled
// once, every registered Ticker advances with that level, then every
// combinational assignment is evaluated in registration order. Reset is
// level sensitive and synchronous; there is no way for it to preempt a
// component mid-tick.
//
type Domain struct {
	name  string
	clkHz float64
	reset func() bool
	parts []Ticker
	combs []func()
	ticks uint64
}

// NewDomain returns a clock domain running at clkHz.
//
func NewDomain(name string, clkHz float64) (*Domain, error) {
	if name == "" {
		return nil, configErrf("clock domain must have a name")
	}
	if clkHz <= 0 {
		return nil, configErrf("clock domain %s: frequency %g Hz must be positive", name, clkHz)
	}
	return &Domain{name: name, clkHz: clkHz}, nil
}

// SetReset sets the domain's reset source, sampled once per tick. A nil
// source (the default) means reset is never asserted. The source must
// already be normalized to an active high level; boards with active low
// reset buttons invert the pin before driving this.
//
func (d *Domain) SetReset(f func() bool) { d.reset = f }

// Add registers clocked components with the domain. Components tick in
// registration order.
//
func (d *Domain) Add(parts ...Ticker) { d.parts = append(d.parts, parts...) }

// Comb registers a combinational assignment, evaluated after the
// clocked updates of every tick.
//
func (d *Domain) Comb(f func()) { d.combs = append(d.combs, f) }

// Name returns the domain name.
//
func (d *Domain) Name() string { return d.name }

// ClockHz returns the domain clock frequency in Hz.
//
func (d *Domain) ClockHz() float64 { return d.clkHz }

// Ticks returns the number of clock edges performed so far.
//
func (d *Domain) Ticks() uint64 { return d.ticks }

// Tick performs one clock edge.
//
func (d *Domain) Tick() {
	rst := false
	if d.reset != nil {
		rst = d.reset()
	}
	for _, p := range d.parts {
		p.Tick(rst)
	}
	for _, f := range d.combs {
		f()
	}
	d.ticks++
}

// Run performs n clock edges.
//
func (d *Domain) Run(n uint64) {
	for ; n > 0; n-- {
		d.Tick()
	}
}

// Time returns the simulated time of the domain's last edge in seconds.
//
func (d *Domain) Time() float64 {
	return float64(d.ticks) / d.clkHz
}
