// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"time"

	"github.com/GermanBionicSystems/hyt-devices/hyt"
	"github.com/GermanBionicSystems/hyt-devices/hyt/hyttest"
	"github.com/spf13/cobra"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/i2c/i2creg"
	"periph.io/x/host/v3"
)

// Codes served by the simulated sensor: 50.00 %rH, 20.43°C.
const (
	fakeHumidity    = 8192
	fakeTemperature = 6000
)

type options struct {
	bus      string
	addr     uint16
	zeroByte bool
	fake     bool

	count    int
	interval time.Duration
	decimals int
	color    string
}

func newRootCmd() *cobra.Command {
	o := &options{}
	root := &cobra.Command{
		Use:   "hyt",
		Short: "Read an HYT humidity/temperature sensor",
		Long: `hyt reads an IST HYT221/HYT271/HYT939 humidity and temperature sensor on
an I²C bus and prints the measurements.

Run without a subcommand it behaves like "hyt read".`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runRead(cmd, o)
		},
	}
	f := root.PersistentFlags()
	f.StringVarP(&o.bus, "bus", "b", "", "I²C bus to use (default: first available)")
	f.Uint16VarP(&o.addr, "addr", "a", hyt.DefaultAddress, "7-bit I²C address of the sensor")
	f.BoolVar(&o.zeroByte, "zero-byte", false, "send a 0x00 byte with measurement requests")
	f.BoolVar(&o.fake, "fake", false, "use a simulated sensor instead of hardware")
	f.IntVarP(&o.count, "count", "n", 0, "number of measurements, 0 for no limit")
	f.DurationVarP(&o.interval, "interval", "i", time.Second, "wait between measurements")
	f.IntVarP(&o.decimals, "decimals", "d", 2, "digits after the decimal point (0-6)")
	f.StringVar(&o.color, "color", "auto", "colour swatch: auto, always or never")

	root.AddCommand(newReadCmd(o), newPNGCmd(o))
	return root
}

// openDevice returns the sensor and a function releasing its bus.
func openDevice(o *options) (*hyt.Dev, func() error, error) {
	opts := hyt.DefaultOpts
	opts.ZeroByteTrigger = o.zeroByte
	var bus i2c.BusCloser
	if o.fake {
		s := hyttest.NewSensor(o.addr)
		s.ConversionReads = 2
		s.Set(fakeHumidity, fakeTemperature)
		bus = s
		opts.ConversionDelay = 0
		opts.PollInterval = time.Millisecond
	} else {
		if _, err := host.Init(); err != nil {
			return nil, nil, fmt.Errorf("failed to initialize periph: %w", err)
		}
		b, err := i2creg.Open(o.bus)
		if err != nil {
			return nil, nil, fmt.Errorf("failed to open I²C: %w", err)
		}
		bus = b
	}
	d, err := hyt.New(bus, o.addr, &opts)
	if err != nil {
		_ = bus.Close()
		return nil, nil, err
	}
	return d, bus.Close, nil
}
