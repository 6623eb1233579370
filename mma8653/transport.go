// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"periph.io/x/conn/v3/i2c"
)

// DebugF the debug function type.
type DebugF func(string, ...interface{})

// Transport is byte addressed register access to a single device.
//
// Implementations are bound to the device address. See NewI2C for the
// periph.io implementation and package mma8653smbus for one on top of the
// Linux SMBus ioctls.
type Transport interface {
	// ReadReg reads one register.
	ReadReg(reg byte) (byte, error)
	// WriteReg writes one register.
	WriteReg(reg, value byte) error
	// ReadRegs reads len(b) consecutive registers starting at reg.
	ReadRegs(reg byte, b []byte) error
}

// i2cTransport talks to the device with a write-then-read I²C transaction
// per access.
type i2cTransport struct {
	d     *i2c.Dev
	debug DebugF
}

func newI2CTransport(bus i2c.Bus, address uint16) *i2cTransport {
	return &i2cTransport{d: &i2c.Dev{Bus: bus, Addr: address}, debug: noop}
}

func (t *i2cTransport) ReadReg(reg byte) (byte, error) {
	t.debug("read register %#x", reg)
	r := make([]byte, 1)
	if err := t.d.Tx([]byte{reg}, r); err != nil {
		return 0, err
	}
	t.debug("register content %#x", r[0])
	return r[0], nil
}

func (t *i2cTransport) WriteReg(reg, value byte) error {
	t.debug("write register %#x value %#x", reg, value)
	return t.d.Tx([]byte{reg, value}, nil)
}

func (t *i2cTransport) ReadRegs(reg byte, b []byte) error {
	t.debug("read %d registers from %#x", len(b), reg)
	if err := t.d.Tx([]byte{reg}, b); err != nil {
		return err
	}
	t.debug("registers content % x", b)
	return nil
}

func (t *i2cTransport) String() string {
	return t.d.String()
}

func noop(string, ...interface{}) {}
