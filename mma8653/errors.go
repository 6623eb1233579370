// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownRegister is returned for a register the driver has no address
	// for.
	ErrUnknownRegister = errors.New("mma8653: unknown register")
	// ErrInvalidLength is returned when a block read is not 1 to 32 bytes.
	ErrInvalidLength = errors.New("mma8653: block length must be 1 to 32 bytes")
	// ErrReservedRange is returned when XYZ_DATA_CFG holds the reserved range
	// encoding 0b11.
	ErrReservedRange = errors.New("mma8653: reserved value for FS[1:0]")
	// ErrDataNotReady is returned when no new sample is available yet. Poll
	// again.
	ErrDataNotReady = errors.New("mma8653: data not ready")
	// ErrInvalidRange is returned by SetRange for a value other than 2, 4 or
	// 8.
	ErrInvalidRange = errors.New("mma8653: range must be 2, 4 or 8")
	// ErrInvalidOffset is returned when an offset doesn't fit the 10 bit
	// offset count at the current range.
	ErrInvalidOffset = errors.New("mma8653: offset out of range")
	// ErrWrongDevice is returned when WHO_AM_I doesn't match
	// Opts.ExpectedDeviceID.
	ErrWrongDevice = errors.New("mma8653: unexpected device id")
)

// TransportError is returned when a bus transaction fails. It wraps the
// error reported by the Transport.
type TransportError struct {
	Op  string
	Reg Register
	Err error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("mma8653: %s %s: %v", e.Op, e.Reg, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}
