package blinky_test

import (
	"testing"
	"testing/quick"

	"github.com/db47h/blinky"
	"github.com/pkg/errors"
)

func TestToggle_concrete_3Hz(t *testing.T) {
	// 50 MHz clock, 3 Hz toggle: period = round(50e6/6) = 8333333.
	tg, err := blinky.NewToggle(50e6, 3)
	if err != nil {
		t.Fatal(err)
	}
	if p := tg.Period(); p != 8333333 {
		t.Fatalf("period = %d, expected 8333333", p)
	}
	if tg.Out() {
		t.Fatal("output high after construction")
	}
	for i := uint(0); i < tg.Period()-1; i++ {
		tg.Tick(false)
		if tg.Out() {
			t.Fatalf("output flipped early, after %d ticks", i+1)
		}
	}
	tg.Tick(false)
	if !tg.Out() {
		t.Fatal("output still low after a full period")
	}
	for i := uint(0); i < tg.Period(); i++ {
		tg.Tick(false)
	}
	if tg.Out() {
		t.Fatal("output still high after a second full period")
	}
}

func TestToggle_max_rate(t *testing.T) {
	// toggleHz = clockHz/2 is the highest representable rate: period 1,
	// the output flips on every tick.
	tg, err := blinky.NewToggle(100, 50)
	if err != nil {
		t.Fatal(err)
	}
	if p := tg.Period(); p != 1 {
		t.Fatalf("period = %d, expected 1", p)
	}
	out := tg.Out()
	for i := 0; i < 10; i++ {
		tg.Tick(false)
		if tg.Out() == out {
			t.Fatalf("output did not flip on tick %d", i+1)
		}
		out = tg.Out()
	}
}

func TestToggle_config_errors(t *testing.T) {
	td := []struct {
		name     string
		clockHz  float64
		toggleHz float64
	}{
		{"zero clock", 0, 3},
		{"zero toggle", 50e6, 0},
		{"negative clock", -50e6, 3},
		{"negative toggle", 50e6, -3},
		{"toggle above clock/2", 100, 51},
		{"toggle just above clock/2", 1000, 500.5},
		{"toggle at clock rate", 100, 100},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := blinky.NewToggle(d.clockHz, d.toggleHz)
			if err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := errors.Cause(err).(blinky.ConfigError); !ok {
				t.Fatalf("expected a ConfigError, got %T: %v", err, err)
			}
		})
	}
}

func TestToggle_reset(t *testing.T) {
	tg, err := blinky.NewToggle(1000, 5, blinky.InitialOutput(true))
	if err != nil {
		t.Fatal(err)
	}
	// period = 100. Run into the second half cycle, then reset.
	for i := 0; i < 150; i++ {
		tg.Tick(false)
	}
	if tg.Out() {
		t.Fatal("output should be low mid second half cycle")
	}
	// level sensitive: holds in reset state for as long as asserted.
	for i := 0; i < 3; i++ {
		tg.Tick(true)
		if !tg.Out() {
			t.Fatal("output not back at initial value under reset")
		}
	}
	// a fresh full cycle follows deassertion.
	for i := uint(0); i < tg.Period()-1; i++ {
		tg.Tick(false)
		if !tg.Out() {
			t.Fatalf("output flipped %d ticks after reset release", i+1)
		}
	}
	tg.Tick(false)
	if tg.Out() {
		t.Fatal("output did not flip a full period after reset release")
	}
}

func TestToggle_full_cycle_quick(t *testing.T) {
	// For any representable period, driving 2*period ticks flips the
	// output exactly twice and returns it to its initial value.
	f := func(p uint16) bool {
		period := uint(p%5000) + 1
		tg, err := blinky.NewToggle(float64(2*period), 1)
		if err != nil {
			t.Fatal(err)
		}
		if tg.Period() != period {
			return false
		}
		flips := 0
		out := tg.Out()
		for i := uint(0); i < 2*period; i++ {
			tg.Tick(false)
			if tg.Out() != out {
				flips++
				out = tg.Out()
			}
		}
		return flips == 2 && tg.Out() == false
	}
	if err := quick.Check(f, nil); err != nil {
		t.Fatal(err)
	}
}

func TestToggle_periodicity(t *testing.T) {
	// Between any two consecutive flips, exactly period ticks elapse.
	tg, err := blinky.NewToggle(977, 11) // period 44
	if err != nil {
		t.Fatal(err)
	}
	out := tg.Out()
	last := uint(0)
	for i := uint(1); i <= 50*tg.Period(); i++ {
		tg.Tick(false)
		if tg.Out() == out {
			continue
		}
		out = tg.Out()
		if got := i - last; got != tg.Period() {
			t.Fatalf("flip after %d ticks, expected %d", got, tg.Period())
		}
		last = i
	}
}
