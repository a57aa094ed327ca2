// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hyt

import (
	"fmt"
	"math"

	"periph.io/x/conn/v3/physic"
)

// Status is the 2-bit condition code at the top of every frame.
type Status uint8

const (
	// StatusNormal marks a result fetched for the first time.
	StatusNormal Status = iota
	// StatusStale marks a result that was already fetched. The device keeps
	// returning it until the conversion started by the last Trigger completes.
	StatusStale
	// StatusCommandMode means the device is in command mode and the payload is
	// not a measurement.
	StatusCommandMode
	// StatusDiagnostic means the device flagged a fault and the payload is not
	// a measurement.
	StatusDiagnostic
)

func (s Status) String() string {
	switch s {
	case StatusNormal:
		return "normal"
	case StatusStale:
		return "stale"
	case StatusCommandMode:
		return "command mode"
	case StatusDiagnostic:
		return "diagnostic"
	default:
		return fmt.Sprintf("Status(%d)", uint8(s))
	}
}

const (
	// frameSize is the length of a data fetch.
	frameSize = 4
	// rawMax is the full scale 14-bit code.
	rawMax  = 0x3fff
	rawMask = 0x3f

	humidityMin    = 0
	humidityMax    = 100
	temperatureMin = -40
	temperatureMax = 125

	// MaxHumidityScale is the largest scale accepted by HumidityScaled.
	MaxHumidityScale = math.MaxInt32 / humidityMax
	// MaxTemperatureScale is the largest scale accepted by TemperatureScaled.
	MaxTemperatureScale = math.MaxInt32 / temperatureMax
)

// Measurement is one frame fetched from the sensor.
//
// The layout, most significant bit first, is:
//
//	byte:  [0              |1             |2              |3             ]
//	bit:   [7 6 5         0|7            0|7 6 5         0|7            0]
//	        \_/ \__________________________/\_/ \__________________________/
//	      Status     Humidity<13:0>      Reserved    Temperature<13:0>
//
// The reserved bits are ignored. Conversions are computed on every call.
type Measurement struct {
	raw [frameSize]byte
}

// FromRaw wraps a frame read from the device. Every bit pattern is accepted;
// use Status or Valid to find out whether it holds a measurement.
func FromRaw(raw [4]byte) Measurement {
	return Measurement{raw: raw}
}

// Raw returns the frame as read from the device.
func (m Measurement) Raw() [4]byte {
	return m.raw
}

// Status returns the condition code of the frame.
func (m Measurement) Status() Status {
	return Status(m.raw[0] >> 6)
}

// IsStale reports whether this result was already fetched before. This is
// decided by the device at fetch time and says nothing about the age of the
// Measurement value itself.
func (m Measurement) IsStale() bool {
	return m.Status() == StatusStale
}

// Valid reports whether the frame carries a measurement, fresh or stale.
func (m Measurement) Valid() bool {
	s := m.Status()
	return s == StatusNormal || s == StatusStale
}

// HumidityRaw returns the 14-bit humidity code.
func (m Measurement) HumidityRaw() uint16 {
	return uint16(m.raw[0]&rawMask)<<8 | uint16(m.raw[1])
}

// TemperatureRaw returns the 14-bit temperature code.
func (m Measurement) TemperatureRaw() uint16 {
	return uint16(m.raw[2]&rawMask)<<8 | uint16(m.raw[3])
}

// Humidity returns the relative humidity in %rH rounded to the nearest
// integer, in [0, 100].
func (m Measurement) Humidity() int {
	v, _ := valueScaled(m.HumidityRaw(), humidityMin, humidityMax, 1)
	return int(v)
}

// Temperature returns the temperature in °C rounded to the nearest integer,
// in [-40, 125].
func (m Measurement) Temperature() int {
	v, _ := valueScaled(m.TemperatureRaw(), temperatureMin, temperatureMax, 1)
	return int(v)
}

// HumidityScaled returns the relative humidity in %rH multiplied by scale
// and rounded to the nearest integer. A scale of 100 returns hundredths of a
// percent, which is enough to print the full resolution of the sensor.
//
// scale must be in [1, MaxHumidityScale], otherwise ErrScaleOutOfRange is
// returned whatever the reading.
func (m Measurement) HumidityScaled(scale uint32) (int32, error) {
	return valueScaled(m.HumidityRaw(), humidityMin, humidityMax, scale)
}

// TemperatureScaled returns the temperature in °C multiplied by scale and
// rounded to the nearest integer.
//
// scale must be in [1, MaxTemperatureScale], otherwise ErrScaleOutOfRange
// is returned whatever the reading.
func (m Measurement) TemperatureScaled(scale uint32) (int32, error) {
	return valueScaled(m.TemperatureRaw(), temperatureMin, temperatureMax, scale)
}

// Env returns the measurement as periph physical units. Pressure is 0.
func (m Measurement) Env() physic.Env {
	h, _ := m.HumidityScaled(uint32(physic.PercentRH))
	t, _ := m.TemperatureScaled(microPerUnit)
	return physic.Env{
		Temperature: physic.ZeroCelsius + physic.Temperature(t)*physic.MicroKelvin,
		Humidity:    physic.RelativeHumidity(h),
	}
}

func (m Measurement) String() string {
	h, _ := m.HumidityScaled(100)
	t, _ := m.TemperatureScaled(100)
	return fmt.Sprintf("%s%%rH %s°C (%s)", centi(h), centi(t), m.Status())
}

const microPerUnit = 1000000

// valueScaled maps raw in [0, rawMax] linearly onto [min, max]*scale.
//
// The product is formed in 64 bits before the division. Adding rawMax/2
// rounds half up; since rawMax is odd the quotient never lands exactly on a
// half, so every tie-breaking rule gives the same result. The representability
// check covers the whole output range so the outcome does not depend on the
// reading.
func valueScaled(raw uint16, min, max int32, scale uint32) (int32, error) {
	lo := int64(scale) * int64(min)
	hi := int64(scale) * int64(max)
	if scale == 0 || lo < math.MinInt32 || hi > math.MaxInt32 {
		return 0, ErrScaleOutOfRange
	}
	if raw > rawMax {
		raw = rawMax
	}
	num := uint64(scale)*uint64(raw)*uint64(max-min) + rawMax/2
	return int32(int64(num/rawMax) + lo), nil
}

// centi formats a value scaled by 100 as a decimal.
func centi(v int32) string {
	sign := ""
	u := int64(v)
	if u < 0 {
		sign = "-"
		u = -u
	}
	return fmt.Sprintf("%s%d.%02d", sign, u/100, u%100)
}
