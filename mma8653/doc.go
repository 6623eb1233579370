// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma8653 controls an NXP MMA8653FC 3-axis 10 bit accelerometer
// over I²C. The MMA8652FC uses the same registers and works too; set
// Opts.ExpectedDeviceID to DeviceIDMMA8652.
//
// Configuration registers (range, offsets, fast-read) are only writable in
// standby. The setters put the device in standby for the write and leave it
// active.
//
// Range: ±2g, ±4g, ±8g
//
// Resolution: 10 bit, 8 bit in fast-read mode
//
// # Datasheet
//
// https://www.nxp.com/docs/en/data-sheet/MMA8653FC.pdf
package mma8653
