// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package mma8653smbus is a mma8653.Transport on top of the Linux SMBus
// ioctls, for hosts where periph.io's host drivers aren't available.
//
// Block reads use the SMBus I²C block data command which the adapter must
// support.
package mma8653smbus

import (
	"fmt"

	"github.com/Noeddy/MMA8653FC/mma8653"
	"github.com/go-daq/smbus"
)

const addr = uint8(mma8653.DefaultAddress)

// Conn is a connection to the device on one SMBus adapter.
type Conn struct {
	c   *smbus.Conn
	bus int
}

// Open opens /dev/i2c-<bus>. Close it when done.
func Open(bus int) (*Conn, error) {
	c, err := smbus.Open(bus, addr)
	if err != nil {
		return nil, fmt.Errorf("mma8653smbus: can't open bus %d: %w", bus, err)
	}
	return &Conn{c: c, bus: bus}, nil
}

// New wraps an already open connection. The device address is selected on
// it.
func New(c *smbus.Conn) (*Conn, error) {
	if err := c.SetAddr(addr); err != nil {
		return nil, err
	}
	return &Conn{c: c, bus: -1}, nil
}

// ReadReg implements mma8653.Transport.
func (c *Conn) ReadReg(reg byte) (byte, error) {
	return c.c.ReadReg(addr, reg)
}

// WriteReg implements mma8653.Transport.
func (c *Conn) WriteReg(reg, value byte) error {
	return c.c.WriteReg(addr, reg, value)
}

// ReadRegs implements mma8653.Transport.
func (c *Conn) ReadRegs(reg byte, b []byte) error {
	return c.c.ReadBlockData(addr, reg, b)
}

// Close releases the bus.
func (c *Conn) Close() error {
	return c.c.Close()
}

func (c *Conn) String() string {
	return fmt.Sprintf("smbus(%d)/%#x", c.bus, addr)
}

var _ mma8653.Transport = &Conn{}
