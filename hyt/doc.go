// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package hyt controls an IST HYT-series humidity and temperature module
// (HYT221, HYT271, HYT939) over I²C.
//
// A measurement cycle has two phases. Trigger sends a measurement request,
// then after the conversion time (specified as 60-100ms, often ready after
// ~40ms) Poll fetches the 4 byte result. Until the new conversion completes
// the device returns the previous result flagged as stale, so callers poll
// until Measurement.IsStale returns false. The driver never sleeps in Trigger
// or Poll; timing and retries belong to the caller. Dev.Sense wraps the whole
// cycle for callers that are fine with blocking.
//
// All conversions are integer only. Measurement.Humidity and
// Measurement.Temperature round to the nearest unit, the Scaled variants
// multiply the result by a caller supplied factor (100 gives hundredths) and
// report ErrScaleOutOfRange instead of wrapping. Building with the i8f24 tag
// adds HumidityFixed and TemperatureFixed returning common.I8F24 values.
//
// Range: 0-100 %rH, -40-125°C
//
// Resolution: 14 bits, about 0.006 %rH and 0.01°C
//
// Command mode, used to change the bus address, is not supported.
//
// # Datasheet
//
// https://www.ist-ag.com/sites/default/files/AHHYTM_E.pdf
package hyt
