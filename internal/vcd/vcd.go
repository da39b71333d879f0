// Copyright 2023 Denis Bernard <db047h@gmail.com>
// Licensed under the MIT license. See license text in the LICENSE file.

// Package vcd writes IEEE 1364 value change dump files for single bit
// signals, enough for a wave viewer to inspect a simulation run.
//
package vcd

import (
	"bufio"
	"io"
	"strconv"
	"time"

	"github.com/pkg/errors"
	"github.com/spf13/afero"
)

// timescale of emitted timestamps.
const timescale = "1ns"

type signal struct {
	name string
	code string
	get  func() bool
	last bool
}

// A Writer emits a VCD document to an io.Writer. Signals are registered
// with Add before the first Sample; the header and initial dump are
// written on that first Sample, later ones emit only value changes.
//
type Writer struct {
	w      io.Writer
	sigs   []*signal
	header bool
	lastT  uint64
}

// New returns a Writer emitting to w.
//
func New(w io.Writer) *Writer {
	return &Writer{w: w}
}

// identifier codes are printable ASCII, base 94 starting at '!'.
//
func idCode(n int) string {
	code := ""
	for {
		code += string(rune('!' + n%94))
		n /= 94
		if n == 0 {
			return code
		}
		n--
	}
}

// Add registers a named signal. All signals must be added before the
// first call to Sample.
//
func (w *Writer) Add(name string, get func() bool) error {
	if w.header {
		return errors.New("cannot add signals after the first sample")
	}
	if name == "" || get == nil {
		return errors.New("signal needs a name and a probe")
	}
	w.sigs = append(w.sigs, &signal{name: name, code: idCode(len(w.sigs)), get: get})
	return nil
}

func (w *Writer) writeHeader() error {
	var b []byte
	b = append(b, "$date "+time.Now().Format(time.ANSIC)+" $end\n"...)
	b = append(b, "$version blinky $end\n"...)
	b = append(b, "$timescale "+timescale+" $end\n"...)
	b = append(b, "$scope module top $end\n"...)
	for _, s := range w.sigs {
		b = append(b, "$var wire 1 "+s.code+" "+s.name+" $end\n"...)
	}
	b = append(b, "$upscope $end\n$enddefinitions $end\n"...)
	_, err := w.w.Write(b)
	return err
}

func value(v bool) string {
	if v {
		return "1"
	}
	return "0"
}

// Sample records the state of all signals at time t in timescale units,
// emitting changes since the previous sample. Time must not go
// backwards; equal timestamps fold into one.
//
func (w *Writer) Sample(t uint64) error {
	if !w.header {
		if err := w.writeHeader(); err != nil {
			return err
		}
		w.header = true
		var b []byte
		b = append(b, "#"+strconv.FormatUint(t, 10)+"\n$dumpvars\n"...)
		for _, s := range w.sigs {
			s.last = s.get()
			b = append(b, value(s.last)+s.code+"\n"...)
		}
		b = append(b, "$end\n"...)
		w.lastT = t
		_, err := w.w.Write(b)
		return err
	}
	if t < w.lastT {
		return errors.Errorf("sample at %d%s before sample at %d%s", t, timescale, w.lastT, timescale)
	}
	var b []byte
	for _, s := range w.sigs {
		v := s.get()
		if v == s.last {
			continue
		}
		if len(b) == 0 && t != w.lastT {
			b = append(b, "#"+strconv.FormatUint(t, 10)+"\n"...)
		}
		s.last = v
		b = append(b, value(v)+s.code+"\n"...)
	}
	if len(b) == 0 {
		return nil
	}
	w.lastT = t
	_, err := w.w.Write(b)
	return err
}

// A File is a Writer backed by a file, buffered.
//
type File struct {
	*Writer
	b *bufio.Writer
	f afero.File
}

// Create opens path for writing on fs and returns a File. The caller
// must Close it to flush the trace.
//
func Create(fs afero.Fs, path string) (*File, error) {
	f, err := fs.Create(path)
	if err != nil {
		return nil, errors.Wrap(err, "vcd")
	}
	b := bufio.NewWriter(f)
	return &File{Writer: New(b), b: b, f: f}, nil
}

// Close flushes and closes the underlying file.
//
func (f *File) Close() error {
	if err := f.b.Flush(); err != nil {
		f.f.Close()
		return errors.Wrap(err, "vcd")
	}
	return f.f.Close()
}
