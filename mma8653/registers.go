// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import "strconv"

// Register is one of the device registers known to the driver.
type Register uint8

const (
	Status     Register = iota // Data status, bit 2 is the data ready flag
	OutXMSB                    // X sample [9:2]
	OutXLSB                    // X sample [1:0] in bits 7:6
	OutYMSB                    // Y sample [9:2]
	OutYLSB                    // Y sample [1:0] in bits 7:6
	OutZMSB                    // Z sample [9:2]
	OutZLSB                    // Z sample [1:0] in bits 7:6
	WhoAmI                     // Device ID
	XYZDataCfg                 // Dynamic range in bits 1:0
	CtrlReg1                   // ACTIVE in bit 0, F_READ in bit 1
	CtrlReg2
	CtrlReg3
	CtrlReg4
	CtrlReg5
	OffX // X offset, top 8 bits of a 10 bit count
	OffY // Y offset
	OffZ // Z offset

	numRegisters
)

var registerAddrs = [...]byte{
	Status:     0x00,
	OutXMSB:    0x01,
	OutXLSB:    0x02,
	OutYMSB:    0x03,
	OutYLSB:    0x04,
	OutZMSB:    0x05,
	OutZLSB:    0x06,
	WhoAmI:     0x0D,
	XYZDataCfg: 0x0E,
	CtrlReg1:   0x2A,
	CtrlReg2:   0x2B,
	CtrlReg3:   0x2C,
	CtrlReg4:   0x2D,
	CtrlReg5:   0x2E,
	OffX:       0x2F,
	OffY:       0x30,
	OffZ:       0x31,
}

var registerNames = [...]string{
	Status:     "STATUS",
	OutXMSB:    "OUT_X_MSB",
	OutXLSB:    "OUT_X_LSB",
	OutYMSB:    "OUT_Y_MSB",
	OutYLSB:    "OUT_Y_LSB",
	OutZMSB:    "OUT_Z_MSB",
	OutZLSB:    "OUT_Z_LSB",
	WhoAmI:     "WHO_AM_I",
	XYZDataCfg: "XYZ_DATA_CFG",
	CtrlReg1:   "CTRL_REG1",
	CtrlReg2:   "CTRL_REG2",
	CtrlReg3:   "CTRL_REG3",
	CtrlReg4:   "CTRL_REG4",
	CtrlReg5:   "CTRL_REG5",
	OffX:       "OFF_X",
	OffY:       "OFF_Y",
	OffZ:       "OFF_Z",
}

// Both tables must cover every register; these fail to compile otherwise.
var (
	_ [len(registerAddrs) - int(numRegisters)]struct{}
	_ [int(numRegisters) - len(registerAddrs)]struct{}
	_ [len(registerNames) - int(numRegisters)]struct{}
	_ [int(numRegisters) - len(registerNames)]struct{}
)

// Addr returns the bus address of the register.
func (r Register) Addr() (byte, error) {
	if r >= numRegisters {
		return 0, ErrUnknownRegister
	}
	return registerAddrs[r], nil
}

func (r Register) String() string {
	if r >= numRegisters {
		return "Register(" + strconv.Itoa(int(r)) + ")"
	}
	return registerNames[r]
}

// LookupRegister returns the register with the datasheet name, e.g.
// "XYZ_DATA_CFG".
func LookupRegister(name string) (Register, error) {
	for i, n := range registerNames {
		if n == name {
			return Register(i), nil
		}
	}
	return 0, ErrUnknownRegister
}
