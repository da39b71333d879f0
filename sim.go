// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

package blinky

// A Simulator steps one or more clock domains in simulated-time order.
// With a single domain it degenerates to calling Domain.Tick in a loop;
// with several it interleaves their edges deterministically: the domain
// whose next edge comes first in simulated time ticks first, ties going
// to the domain registered first.
//
type Simulator struct {
	domains []*Domain
	onEdge  []func(t float64)
}

// NewSimulator returns a Simulator driving the given domains.
//
func NewSimulator(domains ...*Domain) (*Simulator, error) {
	if len(domains) == 0 {
		return nil, configErrf("empty domain list")
	}
	for i, d := range domains {
		for _, e := range domains[:i] {
			if e.name == d.name {
				return nil, configErrf("duplicate clock domain %s", d.name)
			}
		}
	}
	return &Simulator{domains: domains}, nil
}

// OnEdge registers f to run after every clock edge of any domain, with
// the simulated time of that edge in seconds. Used for tracing.
//
func (s *Simulator) OnEdge(f func(t float64)) {
	s.onEdge = append(s.onEdge, f)
}

// next returns the domain with the earliest upcoming edge.
//
func (s *Simulator) next() *Domain {
	d := s.domains[0]
	for _, e := range s.domains[1:] {
		// (ticks+1)/clkHz compared by cross multiplication to avoid
		// accumulating division error.
		if float64(e.ticks+1)*d.clkHz < float64(d.ticks+1)*e.clkHz {
			d = e
		}
	}
	return d
}

// Step performs the next clock edge across all domains and returns its
// simulated time in seconds.
//
func (s *Simulator) Step() float64 {
	d := s.next()
	d.Tick()
	t := d.Time()
	for _, f := range s.onEdge {
		f(t)
	}
	return t
}

// RunTicks advances the simulation until domain d has performed n more
// edges. Other domains keep pace in simulated time.
//
func (s *Simulator) RunTicks(d *Domain, n uint64) {
	for end := d.ticks + n; d.ticks < end; {
		s.Step()
	}
}

// RunUntil advances the simulation until every domain has reached
// simulated time t in seconds.
//
func (s *Simulator) RunUntil(t float64) {
	for {
		d := s.next()
		if float64(d.ticks+1) > t*d.clkHz {
			return
		}
		s.Step()
	}
}

// Domains returns the simulated domains in registration order.
//
func (s *Simulator) Domains() []*Domain { return s.domains }
