// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hyttest is meant to be used to test drivers talking to an HYT
// sensor without hardware.
//
// Unlike i2ctest.Playback, which replays a fixed script, Sensor models the
// device: measurement requests, conversion latency, stale results and the
// status codes.
package hyttest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

// Status codes, as found in the top two bits of a frame.
const (
	StatusNormal      byte = 0b00
	StatusStale       byte = 0b01
	StatusCommandMode byte = 0b10
	StatusDiagnostic  byte = 0b11
)

// Frame encodes a 4 byte data fetch answer. Codes above 0x3fff are
// truncated to 14 bits.
func Frame(status byte, humidity, temperature uint16) [4]byte {
	return [4]byte{
		status<<6 | byte(humidity>>8)&0x3f,
		byte(humidity),
		byte(temperature>>8) & 0x3f,
		byte(temperature),
	}
}

// Sensor is a simulated HYT sensor that implements i2c.BusCloser.
//
// A measurement request starts a conversion that completes after
// ConversionReads data fetches; fetches before that return the previous
// result marked stale. On completion the conversion latches the codes last
// passed to Set. A result is fresh on its first fetch and stale afterwards.
type Sensor struct {
	// Addr is the address the sensor answers on.
	Addr uint16
	// ConversionReads is the number of stale fetches before a triggered
	// conversion completes.
	ConversionReads int

	mu          sync.Mutex
	humidity    uint16
	temperature uint16
	mode        byte
	err         error
	last        [2]uint16
	fetched     bool
	converting  bool
	pending     int
	attempts    int
	triggers    int
	reads       int
}

// NewSensor returns a Sensor answering on addr. Before the first measurement
// request it returns a stale zero frame.
func NewSensor(addr uint16) *Sensor {
	return &Sensor{Addr: addr, fetched: true}
}

// Set sets the raw codes produced by the next conversion.
func (s *Sensor) Set(humidity, temperature uint16) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.humidity = humidity & 0x3fff
	s.temperature = temperature & 0x3fff
}

// SetStatus forces the status of every following frame. StatusNormal and
// StatusStale restore the simulated behavior.
func (s *Sensor) SetStatus(status byte) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.mode = status & 0b11
}

// SetErr makes every following transaction fail with err. nil restores
// normal operation.
func (s *Sensor) SetErr(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.err = err
}

// Attempts returns the number of transactions started on the bus, including
// the ones that failed.
func (s *Sensor) Attempts() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.attempts
}

// Triggers returns the number of measurement requests received.
func (s *Sensor) Triggers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.triggers
}

// Reads returns the number of data fetches served.
func (s *Sensor) Reads() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reads
}

func (s *Sensor) String() string {
	return "hyttest"
}

// Tx implements i2c.Bus.
func (s *Sensor) Tx(addr uint16, w, r []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.attempts++
	if s.err != nil {
		return s.err
	}
	if addr != s.Addr {
		return fmt.Errorf("hyttest: no ack from address %#x", addr)
	}
	switch {
	case len(w) != 0 && len(r) != 0:
		return errors.New("hyttest: combined write-read is not supported")
	case len(r) != 0:
		return s.fetch(r)
	case len(w) > 1 || (len(w) == 1 && w[0] != 0):
		return fmt.Errorf("hyttest: unsupported command %#v", w)
	default:
		s.triggers++
		s.converting = true
		s.pending = s.ConversionReads
		return nil
	}
}

// SetSpeed implements i2c.Bus.
func (s *Sensor) SetSpeed(f physic.Frequency) error {
	return nil
}

// Close implements i2c.BusCloser.
func (s *Sensor) Close() error {
	return nil
}

func (s *Sensor) fetch(r []byte) error {
	if len(r) > 4 {
		return fmt.Errorf("hyttest: read of %d bytes, at most 4 are available", len(r))
	}
	s.reads++
	if s.converting {
		if s.pending > 0 {
			s.pending--
		} else {
			s.converting = false
			s.last = [2]uint16{s.humidity, s.temperature}
			s.fetched = false
		}
	}
	status := StatusNormal
	switch {
	case s.mode >= StatusCommandMode:
		status = s.mode
	case s.fetched:
		status = StatusStale
	}
	s.fetched = true
	f := Frame(status, s.last[0], s.last[1])
	copy(r, f[:])
	return nil
}

var _ i2c.BusCloser = &Sensor{}
