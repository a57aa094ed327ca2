// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package common contains types used across multiple packages. For
// example, the I8F24 fixed-point number returned by integer-only drivers.
package common
