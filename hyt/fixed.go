// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

//go:build i8f24

package hyt

import "github.com/GermanBionicSystems/hyt-devices/common"

// fixedScale makes the scaled conversion return 8.24 bits directly.
const fixedScale = 1 << 24

// HumidityFixed returns the relative humidity in %rH as a signed 8.24
// fixed-point value. The worst-case error is about 0.00024 %rH, well below
// the 0.006 %rH resolution of the reading.
//
// This requires the "i8f24" build tag.
func (m Measurement) HumidityFixed() common.I8F24 {
	v, _ := m.HumidityScaled(fixedScale)
	return common.FromBits(v)
}

// TemperatureFixed returns the temperature in °C as a signed 8.24
// fixed-point value. The worst-case error is about 0.00031°C, well below the
// 0.01°C resolution of the reading.
//
// This requires the "i8f24" build tag.
func (m Measurement) TemperatureFixed() common.I8F24 {
	v, _ := m.TemperatureScaled(fixedScale)
	return common.FromBits(v)
}
