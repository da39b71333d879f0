package chaser_test

import (
	"testing"

	"github.com/db47h/blinky"
	"github.com/db47h/blinky/board"
	"github.com/db47h/blinky/chaser"
	"github.com/pkg/errors"
)

func requestLeds(t *testing.T, b *board.Board, first, n int) []*board.Pin {
	t.Helper()
	pads := make([]*board.Pin, n)
	for i := range pads {
		p, err := b.Request("user_led", first+i)
		if err != nil {
			t.Fatal(err)
		}
		pads[i] = p
	}
	return pads
}

func litPositions(pads []*board.Pin) []int {
	var lit []int
	for i, p := range pads {
		if p.Get() {
			lit = append(lit, i)
		}
	}
	return lit
}

func TestChaser_sweep(t *testing.T) {
	c, err := chaser.New(600, 100, 6) // period 6
	if err != nil {
		t.Fatal(err)
	}
	if c.Period() != 6 {
		t.Fatalf("period = %d, expected 6", c.Period())
	}
	pads := requestLeds(t, board.DE0Nano(), 2, 6)
	for step := 0; step < 13; step++ {
		c.Drive(pads)
		lit := litPositions(pads)
		if len(lit) != 1 || lit[0] != step%6 {
			t.Fatalf("step %d: lit = %v", step, lit)
		}
		for i := uint(0); i < c.Period(); i++ {
			c.Tick(false)
		}
	}
}

func TestChaser_reset(t *testing.T) {
	c, err := chaser.New(100, 50, 4) // period 2
	if err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 5; i++ {
		c.Tick(false)
	}
	if c.Pos() == 0 {
		t.Fatal("chaser did not advance")
	}
	c.Tick(true)
	if c.Pos() != 0 {
		t.Fatalf("pos = %d after reset, expected 0", c.Pos())
	}
	// a full fresh period before the next step.
	c.Tick(false)
	if c.Pos() != 0 {
		t.Fatal("chaser stepped one tick after reset release")
	}
	c.Tick(false)
	if c.Pos() != 1 {
		t.Fatalf("pos = %d a full period after reset release, expected 1", c.Pos())
	}
}

func TestChaser_config_errors(t *testing.T) {
	td := []struct {
		name    string
		clockHz float64
		stepHz  float64
		n       int
	}{
		{"no outputs", 100, 10, 0},
		{"zero clock", 0, 10, 4},
		{"zero step", 100, 0, 4},
		{"step above clock", 100, 201, 4},
		{"step just above clock", 100, 101, 4},
	}
	for _, d := range td {
		t.Run(d.name, func(t *testing.T) {
			_, err := chaser.New(d.clockHz, d.stepHz, d.n)
			if err == nil {
				t.Fatal("expected an error")
			}
			if _, ok := errors.Cause(err).(blinky.ConfigError); !ok {
				t.Fatalf("expected a ConfigError, got %T", err)
			}
		})
	}
}

func TestNewSweep(t *testing.T) {
	c, err := chaser.NewSweep(50e6, 6)
	if err != nil {
		t.Fatal(err)
	}
	// one sweep per second: each of the 6 steps takes 1/6 s.
	if c.Period() != 8333333 {
		t.Fatalf("period = %d, expected 8333333", c.Period())
	}
}
