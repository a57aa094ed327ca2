// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package hyt

import (
	"errors"
	"fmt"
)

var (
	// ErrScaleOutOfRange is returned by the scaled conversions when the full
	// output range at the requested scale does not fit in an int32.
	ErrScaleOutOfRange = errors.New("hyt: scale out of range")
	// ErrInvalidAddress is returned by New for addresses that are not 7 bits.
	ErrInvalidAddress = errors.New("hyt: invalid 7-bit address")
)

// ReadTimeoutError is returned by Measure when the device still reports stale
// data after Opts.ReadTimeout.
type ReadTimeoutError struct {
	// Polls is the number of data fetches issued before giving up.
	Polls int
}

func (e *ReadTimeoutError) Error() string {
	return fmt.Sprintf("hyt: read timeout, measurement still stale after %d polls", e.Polls)
}

// ConditionError is returned by Measure when the device answers in command
// mode or with the diagnostic bit set. Poll reports the same frames as a
// Measurement with that Status instead.
type ConditionError struct {
	Status Status
}

func (e *ConditionError) Error() string {
	return fmt.Sprintf("hyt: device reports %s", e.Status)
}
