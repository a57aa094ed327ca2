// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"image/color"
	"io"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/GermanBionicSystems/hyt-devices/hyt"
	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
)

func newReadCmd(o *options) *cobra.Command {
	return &cobra.Command{
		Use:   "read",
		Short: "Print measurements",
		Long: `Run measurement cycles and print humidity and temperature.

Readings are converted with integer arithmetic at the requested number of
decimals. Stale results are polled again; command mode and diagnostic frames
are logged and skipped.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, o)
		},
	}
}

func runRead(cmd *cobra.Command, o *options) error {
	if o.decimals < 0 || o.decimals > 6 {
		return fmt.Errorf("invalid --decimals %d, must be 0-6", o.decimals)
	}
	w, colored, err := output(cmd, o.color)
	if err != nil {
		return err
	}
	d, closeBus, err := openDevice(o)
	if err != nil {
		return err
	}
	defer closeBus()

	for i := 0; o.count <= 0 || i < o.count; i++ {
		if i > 0 {
			time.Sleep(o.interval)
		}
		m, err := d.Measure()
		if err != nil {
			var timeout *hyt.ReadTimeoutError
			var cond *hyt.ConditionError
			if errors.As(err, &timeout) || errors.As(err, &cond) {
				log.Printf("%s: %v", d, err)
				continue
			}
			return err
		}
		line, err := formatLine(m, o.decimals)
		if err != nil {
			return err
		}
		if colored {
			line = swatch(m) + " " + line
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// output returns where to print and whether to add colour.
func output(cmd *cobra.Command, mode string) (io.Writer, bool, error) {
	out := cmd.OutOrStdout()
	switch mode {
	case "never":
		return out, false, nil
	case "always":
	case "auto":
		f, ok := out.(*os.File)
		if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
			return out, false, nil
		}
	default:
		return nil, false, fmt.Errorf("invalid --color %q", mode)
	}
	if out == os.Stdout {
		return colorable.NewColorableStdout(), true, nil
	}
	return out, true, nil
}

func formatLine(m hyt.Measurement, decimals int) (string, error) {
	scale := pow10(decimals)
	h, err := m.HumidityScaled(scale)
	if err != nil {
		return "", err
	}
	t, err := m.TemperatureScaled(scale)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s %%rH %s °C", formatScaled(h, decimals), formatScaled(t, decimals)), nil
}

// formatScaled prints v, a value multiplied by 10^decimals, as a decimal.
func formatScaled(v int32, decimals int) string {
	if decimals == 0 {
		return strconv.Itoa(int(v))
	}
	scale := int64(pow10(decimals))
	sign := ""
	u := int64(v)
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%0*d", sign, u/scale, decimals, u%scale)
}

func pow10(n int) uint32 {
	p := uint32(1)
	for i := 0; i < n; i++ {
		p *= 10
	}
	return p
}

// swatch returns a terminal colour block going from blue at -40°C to red at
// 125°C.
func swatch(m hyt.Measurement) string {
	t, _ := m.TemperatureScaled(10)
	p := (int(t) + 400) * 510 / 1650
	var c color.NRGBA
	if p <= 255 {
		c = color.NRGBA{R: 0, G: uint8(p), B: uint8(255 - p), A: 255}
	} else {
		c = color.NRGBA{R: uint8(p - 255), G: uint8(510 - p), B: 0, A: 255}
	}
	return ansi256.Default.Block(c)
}
