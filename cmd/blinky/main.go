// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Command blinky assembles one of the tutorial designs for a target
// board and runs it in simulation, optionally dumping a VCD trace of
// the board pads for inspection in a wave viewer.
//
package main

import (
	"flag"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
	"go.uber.org/zap"

	"github.com/db47h/blinky"
	"github.com/db47h/blinky/board"
	"github.com/db47h/blinky/internal/vcd"
	"github.com/db47h/blinky/top"
)

var (
	boardName = flag.String("board", "arty", "target board: arty or de0nano")
	audio     = flag.Bool("audio", false, "build the audio design instead of the blinky (arty only)")
	ticks     = flag.Uint64("ticks", 0, "system clock ticks to run (default: one simulated second)")
	runFor    = flag.Duration("for", 0, "simulated duration to run, overrides -ticks")
	vcdPath   = flag.String("vcd", "", "write a VCD trace to this file")
	holdReset = flag.Uint64("press-reset", 0, "hold the reset button for the first N system ticks")
)

func main() {
	flag.Parse()
	logger, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	defer logger.Sync()
	log := logger.Sugar()
	if err := run(log); err != nil {
		log.Fatal(err)
	}
}

func run(log *zap.SugaredLogger) error {
	var brd *board.Board
	switch *boardName {
	case "arty":
		brd = board.ArtyA7()
	case "de0nano":
		brd = board.DE0Nano()
	default:
		return errors.Errorf("unknown board %q", *boardName)
	}

	var (
		sim  *blinky.Simulator
		sys  *blinky.Domain
		sigs []top.Signal
	)
	if *audio {
		a, err := top.NewAudio(brd)
		if err != nil {
			return err
		}
		sim, sys, sigs = a.Sim(), a.Sys(), a.Signals()
	} else {
		b, err := top.NewBlinky(brd)
		if err != nil {
			return err
		}
		sim, sys, sigs = b.Sim(), b.Sys(), b.Signals()
	}

	n := *ticks
	if *runFor > 0 {
		n = uint64(runFor.Seconds() * brd.ClockHz())
	}
	if n == 0 {
		n = uint64(brd.ClockHz())
	}

	var traceErr error
	if *vcdPath != "" {
		f, err := vcd.Create(afero.NewOsFs(), *vcdPath)
		if err != nil {
			return err
		}
		defer func() {
			if err := f.Close(); err != nil {
				log.Errorw("closing trace", "path", *vcdPath, "error", err)
			}
		}()
		for _, s := range sigs {
			if err := f.Add(s.Name, s.Get); err != nil {
				return err
			}
		}
		sim.OnEdge(func(t float64) {
			if traceErr == nil {
				// trace timescale is 1 ns
				traceErr = f.Sample(uint64(t*1e9 + 0.5))
			}
		})
	}

	log.Infow("starting", "board", brd.Name(), "clock_hz", brd.ClockHz(), "ticks", n)
	start := time.Now()

	if *holdReset > 0 {
		hold := *holdReset
		if hold > n {
			hold = n
		}
		brd.PressReset(true)
		sim.RunTicks(sys, hold)
		brd.PressReset(false)
		n -= hold
		log.Infow("reset released", "after_ticks", hold)
	}
	sim.RunTicks(sys, n)

	elapsed := time.Since(start)
	for _, d := range sim.Domains() {
		log.Infow("domain done", "name", d.Name(), "ticks", d.Ticks(), "simulated_s", d.Time())
	}
	for _, s := range sigs {
		log.Infow("signal", "name", s.Name, "value", s.Get())
	}
	log.Infow("done", "elapsed", elapsed, "ticks_per_s", float64(sys.Ticks())/elapsed.Seconds())
	return traceErr
}
