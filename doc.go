// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package devices is a container for the MMA865x accelerometer driver.
//
// See package mma8653 for the driver and mma8653/mma8653smbus for a
// transport on top of the Linux SMBus interface.
package devices
