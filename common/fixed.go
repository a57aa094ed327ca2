// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package common

import (
	"fmt"
	"strconv"
)

// I8F24 is a signed fixed-point number with 8 integer bits and 24 fractional
// bits. It covers [-128, 128) with a resolution of 2^-24.
type I8F24 int32

const (
	i8f24FracBits = 24
	i8f24One      = 1 << i8f24FracBits
	i8f24Half     = 1 << (i8f24FracBits - 1)
)

// FromBits returns the I8F24 whose two's complement representation is b.
func FromBits(b int32) I8F24 {
	return I8F24(b)
}

// FromInt returns i as an I8F24. i must be in [-128, 127].
func FromInt(i int) I8F24 {
	return I8F24(int32(i) << i8f24FracBits)
}

// Bits returns the raw representation.
func (f I8F24) Bits() int32 {
	return int32(f)
}

// Floor returns the largest integer not above f.
func (f I8F24) Floor() int {
	return int(int32(f) >> i8f24FracBits)
}

// Trunc returns the integer part of f, rounding toward zero.
func (f I8F24) Trunc() int {
	if f < 0 {
		return -int((-int64(f)) >> i8f24FracBits)
	}
	return f.Floor()
}

// Round returns the nearest integer, halves rounding up.
func (f I8F24) Round() int {
	return int((int64(f) + i8f24Half) >> i8f24FracBits)
}

// Frac returns f minus Floor(f), always in [0, 1).
func (f I8F24) Frac() I8F24 {
	return f & (i8f24One - 1)
}

// Format returns f as a decimal with the given number of digits after the
// point, rounded half away from zero. digits is clamped to [0, 9]. No
// floating point is involved.
func (f I8F24) Format(digits int) string {
	if digits < 0 {
		digits = 0
	} else if digits > 9 {
		digits = 9
	}
	mag := int64(f)
	neg := mag < 0
	if neg {
		mag = -mag
	}
	p := uint64(1)
	for i := 0; i < digits; i++ {
		p *= 10
	}
	v := (uint64(mag)*p + i8f24Half) >> i8f24FracBits
	s := strconv.FormatUint(v/p, 10)
	if digits > 0 {
		s += fmt.Sprintf(".%0*d", digits, v%p)
	}
	if neg && v != 0 {
		s = "-" + s
	}
	return s
}

// String returns f with 6 decimals.
func (f I8F24) String() string {
	return f.Format(6)
}
