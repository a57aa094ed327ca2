// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hyt

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
	"periph.io/x/conn/v3/physic"
)

const (
	// DefaultAddress is the factory default I²C address.
	DefaultAddress uint16 = 0x28

	// MinSampleInterval is the shortest interval accepted by SenseContinuous.
	MinSampleInterval = 100 * time.Millisecond
)

// Opts holds the configuration options for the device.
type Opts struct {
	// ZeroByteTrigger sends a single 0x00 byte as the measurement request
	// instead of an empty write. Use it with bus drivers that cannot issue
	// zero-length writes.
	ZeroByteTrigger bool
	// ConversionDelay is how long Measure waits after the measurement request
	// before the first data fetch. The datasheet specifies 60-100ms.
	ConversionDelay time.Duration
	// PollInterval is the wait between data fetches while the result is
	// still stale. Leave 0 to use the default of 10ms.
	PollInterval time.Duration
	// ReadTimeout bounds the polling done by Measure after ConversionDelay. 0
	// means no timeout.
	ReadTimeout time.Duration
}

// DefaultOpts holds the default configuration options for the device.
var DefaultOpts = Opts{
	ConversionDelay: 60 * time.Millisecond,
	PollInterval:    10 * time.Millisecond,
	ReadTimeout:     100 * time.Millisecond,
}

// Dev is a handle to an HYT sensor.
//
// Trigger and Poll each run exactly one bus transaction and never sleep. The
// other methods build on them and block for the conversion time.
type Dev struct {
	d    *i2c.Dev
	opts Opts

	mu   sync.Mutex
	stop chan struct{}
	done chan struct{}
}

// New returns a handle to the HYT sensor at addr on b. Nothing is sent on
// the bus. The Opts can be nil.
func New(b i2c.Bus, addr uint16, opts *Opts) (*Dev, error) {
	if addr > 0x7f {
		return nil, fmt.Errorf("%w: %#x", ErrInvalidAddress, addr)
	}
	if opts == nil {
		opts = &DefaultOpts
	}
	o := *opts
	if o.PollInterval <= 0 {
		o.PollInterval = DefaultOpts.PollInterval
	}
	return &Dev{d: &i2c.Dev{Bus: b, Addr: addr}, opts: o}, nil
}

// Trigger sends a measurement request. The sensor starts a conversion; until
// it completes, Poll returns the previous result flagged as stale.
//
// Triggering again while a conversion runs restarts it. Calling Trigger in a
// tight loop therefore never lets a result complete.
func (d *Dev) Trigger() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.trigger()
}

// Poll fetches the latest result. It does not wait for the conversion: a
// result fetched too early is returned with StatusStale. Frames in command
// mode or with the diagnostic status are returned as-is too; check
// Measurement.Status before using the values.
func (d *Dev) Poll() (Measurement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.poll()
}

// Measure runs a complete cycle: Trigger, wait Opts.ConversionDelay, then
// Poll every Opts.PollInterval until the result is fresh.
//
// It returns a *ReadTimeoutError when the result is still stale after
// Opts.ReadTimeout and a *ConditionError when the device answers in command
// mode or with the diagnostic status. The Measurement is returned in both
// cases.
func (d *Dev) Measure() (Measurement, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.measure()
}

// Sense implements physic.SenseEnv. It runs Measure and converts the result.
// Pressure is always 0 since the sensor does not measure it.
func (d *Dev) Sense(e *physic.Env) error {
	e.Temperature = 0
	e.Pressure = 0
	e.Humidity = 0
	d.mu.Lock()
	defer d.mu.Unlock()
	m, err := d.measure()
	if err != nil {
		return err
	}
	*e = m.Env()
	return nil
}

// SenseContinuous implements physic.SenseEnv. It runs Sense every interval
// and sends the results on the returned channel until Halt is called. Failed
// cycles are skipped.
func (d *Dev) SenseContinuous(interval time.Duration) (<-chan physic.Env, error) {
	if interval < MinSampleInterval {
		return nil, fmt.Errorf("hyt: sample interval %s is below %s", interval, MinSampleInterval)
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.stop != nil {
		return nil, errors.New("hyt: SenseContinuous already running")
	}
	stop := make(chan struct{})
	done := make(chan struct{})
	d.stop = stop
	d.done = done
	ch := make(chan physic.Env)
	go func() {
		defer close(done)
		defer close(ch)
		ticker := time.NewTicker(interval)
		defer ticker.Stop()
		for {
			select {
			case <-stop:
				return
			case <-ticker.C:
				var e physic.Env
				if err := d.Sense(&e); err != nil {
					continue
				}
				select {
				case ch <- e:
				case <-stop:
					return
				}
			}
		}
	}()
	return ch, nil
}

// Precision implements physic.SenseEnv. It returns one step of the 14-bit
// codes.
func (d *Dev) Precision(e *physic.Env) {
	e.Temperature = physic.Kelvin * (temperatureMax - temperatureMin) / rawMax
	e.Humidity = physic.PercentRH * (humidityMax - humidityMin) / rawMax
	e.Pressure = 0
}

// Halt implements conn.Resource. It stops a running SenseContinuous and waits
// for its goroutine to exit. A run started after Halt released it is left
// alone. The sensor itself has nothing to halt.
func (d *Dev) Halt() error {
	d.mu.Lock()
	stop, done := d.stop, d.done
	d.stop, d.done = nil, nil
	d.mu.Unlock()
	if stop != nil {
		close(stop)
		<-done
	}
	return nil
}

func (d *Dev) String() string {
	return fmt.Sprintf("HYT{%s}", d.d)
}

// trigger sends the "MR" (measurement request) command, which is an address
// write with no data.
func (d *Dev) trigger() error {
	var w []byte
	if d.opts.ZeroByteTrigger {
		w = []byte{0}
	}
	if err := d.d.Tx(w, nil); err != nil {
		return fmt.Errorf("hyt: trigger: %w", err)
	}
	return nil
}

// poll sends the "DF" (data fetch) command and reads the 4 byte frame.
func (d *Dev) poll() (Measurement, error) {
	var raw [frameSize]byte
	if err := d.d.Tx(nil, raw[:]); err != nil {
		return Measurement{}, fmt.Errorf("hyt: poll: %w", err)
	}
	return FromRaw(raw), nil
}

func (d *Dev) measure() (Measurement, error) {
	if err := d.trigger(); err != nil {
		return Measurement{}, err
	}
	time.Sleep(d.opts.ConversionDelay)
	end := time.Now().Add(d.opts.ReadTimeout)
	for polls := 1; ; polls++ {
		m, err := d.poll()
		if err != nil {
			return m, err
		}
		switch s := m.Status(); s {
		case StatusNormal:
			return m, nil
		case StatusCommandMode, StatusDiagnostic:
			return m, &ConditionError{Status: s}
		}
		if d.opts.ReadTimeout > 0 && !time.Now().Before(end) {
			return m, &ReadTimeoutError{Polls: polls}
		}
		time.Sleep(d.opts.PollInterval)
	}
}

var _ conn.Resource = &Dev{}
var _ physic.SenseEnv = &Dev{}
