// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// hyt reads an IST HYT humidity/temperature sensor.
//
// Without hardware, --fake runs the same code against a simulated sensor:
//
//	hyt --fake -n 3 -i 1s
//	hyt png --fake -o reading.png
package main

import (
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
