// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"errors"
	"testing"
)

func TestRegisterAddr(t *testing.T) {
	tests := []struct {
		name string
		addr byte
	}{
		{"STATUS", 0x00},
		{"OUT_X_MSB", 0x01},
		{"OUT_X_LSB", 0x02},
		{"OUT_Y_MSB", 0x03},
		{"OUT_Y_LSB", 0x04},
		{"OUT_Z_MSB", 0x05},
		{"OUT_Z_LSB", 0x06},
		{"WHO_AM_I", 0x0D},
		{"XYZ_DATA_CFG", 0x0E},
		{"CTRL_REG1", 0x2A},
		{"CTRL_REG2", 0x2B},
		{"CTRL_REG3", 0x2C},
		{"CTRL_REG4", 0x2D},
		{"CTRL_REG5", 0x2E},
		{"OFF_X", 0x2F},
		{"OFF_Y", 0x30},
		{"OFF_Z", 0x31},
	}
	if len(tests) != int(numRegisters) {
		t.Fatalf("%d registers tested, %d defined", len(tests), numRegisters)
	}
	for _, test := range tests {
		r, err := LookupRegister(test.name)
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
			continue
		}
		a, err := r.Addr()
		if err != nil {
			t.Errorf("%s: %v", test.name, err)
		}
		if a != test.addr {
			t.Errorf("%s: address %#x, expected %#x", test.name, a, test.addr)
		}
		if s := r.String(); s != test.name {
			t.Errorf("String() = %q, expected %q", s, test.name)
		}
	}
}

func TestRegisterUnknown(t *testing.T) {
	if _, err := LookupRegister("CTRL_REG6"); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("got %v, expected %v", err, ErrUnknownRegister)
	}
	if _, err := LookupRegister("status"); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("got %v, expected %v", err, ErrUnknownRegister)
	}
	r := numRegisters
	if _, err := r.Addr(); !errors.Is(err, ErrUnknownRegister) {
		t.Errorf("got %v, expected %v", err, ErrUnknownRegister)
	}
	if s := Register(99).String(); s != "Register(99)" {
		t.Errorf("String() = %q", s)
	}
}
