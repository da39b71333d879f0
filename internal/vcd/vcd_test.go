package vcd_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/db47h/blinky/internal/vcd"
	"github.com/spf13/afero"
)

func TestWriter(t *testing.T) {
	var buf bytes.Buffer
	var a, b bool

	w := vcd.New(&buf)
	if err := w.Add("clk", func() bool { return a }); err != nil {
		t.Fatal(err)
	}
	if err := w.Add("led", func() bool { return b }); err != nil {
		t.Fatal(err)
	}

	if err := w.Sample(0); err != nil {
		t.Fatal(err)
	}
	a = true
	if err := w.Sample(5); err != nil {
		t.Fatal(err)
	}
	// no change: no output expected.
	if err := w.Sample(7); err != nil {
		t.Fatal(err)
	}
	a, b = false, true
	if err := w.Sample(10); err != nil {
		t.Fatal(err)
	}

	out := buf.String()
	for _, want := range []string{
		"$timescale 1ns $end",
		"$var wire 1 ! clk $end",
		"$var wire 1 \" led $end",
		"$enddefinitions $end",
		"$dumpvars\n0!\n0\"\n$end",
		"#5\n1!",
		"#10\n0!\n1\"",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
	if strings.Contains(out, "#7") {
		t.Errorf("timestamp emitted without a value change:\n%s", out)
	}
}

func TestWriter_add_after_sample(t *testing.T) {
	w := vcd.New(&bytes.Buffer{})
	if err := w.Add("a", func() bool { return false }); err != nil {
		t.Fatal(err)
	}
	if err := w.Sample(0); err != nil {
		t.Fatal(err)
	}
	if err := w.Add("b", func() bool { return false }); err == nil {
		t.Fatal("expected an error adding a signal after the first sample")
	}
}

func TestWriter_time_backwards(t *testing.T) {
	w := vcd.New(&bytes.Buffer{})
	v := false
	if err := w.Add("a", func() bool { return v }); err != nil {
		t.Fatal(err)
	}
	if err := w.Sample(10); err != nil {
		t.Fatal(err)
	}
	v = true
	if err := w.Sample(5); err == nil {
		t.Fatal("expected an error for a sample in the past")
	}
}

func TestCreate(t *testing.T) {
	fs := afero.NewMemMapFs()
	f, err := vcd.Create(fs, "/trace.vcd")
	if err != nil {
		t.Fatal(err)
	}
	v := false
	if err := f.Add("led", func() bool { return v }); err != nil {
		t.Fatal(err)
	}
	if err := f.Sample(0); err != nil {
		t.Fatal(err)
	}
	v = true
	if err := f.Sample(3); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	out, err := afero.ReadFile(fs, "/trace.vcd")
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(out), "#3\n1!") {
		t.Fatalf("trace missing change record:\n%s", out)
	}
}
