// Copyright 2021 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the IST HYT sensor driver and its
// tooling.
//
// The driver lives in package hyt, a simulated sensor for tests in
// hyt/hyttest and a command line reader in cmd/hyt.
package devices
