// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"bytes"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/GermanBionicSystems/hyt-devices/hyt"
	"github.com/GermanBionicSystems/hyt-devices/hyt/hyttest"
)

func run(t *testing.T, args ...string) (string, error) {
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestRead(t *testing.T) {
	for _, args := range [][]string{
		{"--fake", "-n", "2", "-i", "0", "-d", "1", "--color", "never"},
		{"read", "--fake", "-n", "2", "-i", "0", "-d", "1", "--color", "never"},
	} {
		out, err := run(t, args...)
		if err != nil {
			t.Fatal(err)
		}
		if expected := "50.0 %rH 20.4 °C\n50.0 %rH 20.4 °C\n"; out != expected {
			t.Errorf("%v: %q != %q", args, out, expected)
		}
	}
}

func TestRead_Color(t *testing.T) {
	out, err := run(t, "--fake", "-n", "1", "--color", "always")
	if err != nil {
		t.Fatal(err)
	}
	line := " 50.00 %rH 20.43 °C\n"
	if !strings.HasSuffix(out, line) || len(out) <= len(line) {
		t.Errorf("unexpected output %q", out)
	}
}

func TestRead_InvalidFlags(t *testing.T) {
	if _, err := run(t, "--fake", "-n", "1", "-d", "7"); err == nil {
		t.Error("expected an error for --decimals 7")
	}
	if _, err := run(t, "--fake", "-n", "1", "--color", "sometimes"); err == nil {
		t.Error("expected an error for --color sometimes")
	}
	if _, err := run(t, "--fake", "-n", "1", "-a", "0x80"); err == nil {
		t.Error("expected an error for an 8-bit address")
	}
}

func TestFormatScaled(t *testing.T) {
	var tests = []struct {
		v        int32
		decimals int
		expected string
	}{
		{v: 2043, decimals: 2, expected: "20.43"},
		{v: -50, decimals: 2, expected: "-0.50"},
		{v: -4000, decimals: 2, expected: "-40.00"},
		{v: 125, decimals: 0, expected: "125"},
		{v: 1, decimals: 6, expected: "0.000001"},
	}
	for _, test := range tests {
		if s := formatScaled(test.v, test.decimals); s != test.expected {
			t.Errorf("formatScaled(%d, %d)=%q != %q", test.v, test.decimals, s, test.expected)
		}
	}
}

func TestSwatch(t *testing.T) {
	cold := swatch(hyt.FromRaw(hyttest.Frame(0, 0, 0)))
	hot := swatch(hyt.FromRaw(hyttest.Frame(0, 0, 0x3fff)))
	if cold == "" || hot == "" || cold == hot {
		t.Errorf("cold=%q hot=%q", cold, hot)
	}
}

func TestRenderCard(t *testing.T) {
	img, err := renderCard(hyt.FromRaw(hyttest.Frame(0, 0x3fff, 6000)), 250, 122)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 250 || b.Dy() != 122 {
		t.Fatalf("bounds %v", b)
	}
	if r, _, _, _ := img.At(0, 0).RGBA(); r != 0xffff {
		t.Errorf("background not white: %#x", r)
	}
	// Inside the humidity bar, full at 100 %rH.
	if r, _, _, _ := img.At(125, 94).RGBA(); r > 0x1000 {
		t.Errorf("bar not filled: %#x", r)
	}
}

func TestPNG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "card.png")
	if _, err := run(t, "png", "--fake", "-o", path); err != nil {
		t.Fatal(err)
	}
	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		t.Fatal(err)
	}
	if b := img.Bounds(); b.Dx() != 250 || b.Dy() != 122 {
		t.Errorf("bounds %v", b)
	}
}
