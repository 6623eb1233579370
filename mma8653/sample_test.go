// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"math"
	"testing"
)

func TestDecode8(t *testing.T) {
	for raw := 0; raw < 256; raw++ {
		got := Decode(uint16(raw), Res8Bit)
		want := raw
		if raw >= 128 {
			want = raw - 256
		}
		if got != want {
			t.Errorf("Decode(%#x, 8) = %d, expected %d", raw, got, want)
		}
		if got < -128 || got > 127 {
			t.Errorf("Decode(%#x, 8) = %d out of range", raw, got)
		}
	}
}

func TestDecode10(t *testing.T) {
	tests := []struct {
		msb, lsb byte
		want     int
	}{
		{0x00, 0x00, 0},
		{0x00, 0x40, 1},
		{0x7F, 0xC0, 511},
		{0x80, 0x00, -512},
		{0xFF, 0xC0, -1},
		{0xFF, 0xFF, -1},
		{0xC0, 0x40, -255},
		{0x40, 0x00, 256},
	}
	for _, test := range tests {
		if got := Decode(Pack10(test.msb, test.lsb), Res10Bit); got != test.want {
			t.Errorf("Decode(Pack10(%#x, %#x)) = %d, expected %d", test.msb, test.lsb, got, test.want)
		}
	}
}

func TestPack10RoundTrip(t *testing.T) {
	for msb := 0; msb < 256; msb++ {
		for top := 0; top < 4; top++ {
			// The low 6 bits of LSB are don't care.
			for _, low := range []byte{0x00, 0x15, 0x3F} {
				lsb := byte(top)<<6 | low
				c := Decode(Pack10(byte(msb), lsb), Res10Bit)
				if c < -512 || c > 511 {
					t.Fatalf("%#x:%#x decoded to %d", msb, lsb, c)
				}
				gotMSB, gotLSB := Unpack10(Encode(c, Res10Bit))
				if gotMSB != byte(msb) || gotLSB != lsb&0xC0 {
					t.Errorf("%#x:%#x -> %d -> %#x:%#x", msb, lsb, c, gotMSB, gotLSB)
				}
			}
		}
	}
}

func TestEncode(t *testing.T) {
	for _, res := range []Resolution{Res8Bit, Res10Bit} {
		half := 1 << (res - 1)
		for c := -half; c < half; c++ {
			if got := Decode(Encode(c, res), res); got != c {
				t.Fatalf("Decode(Encode(%d, %d)) = %d", c, res, got)
			}
		}
	}
}

func TestScaleToG(t *testing.T) {
	tests := []struct {
		counts int
		r      Range
		res    Resolution
		want   float64
	}{
		{0, Range2G, Res8Bit, 0},
		{0, Range8G, Res10Bit, 0},
		{-1, Range2G, Res10Bit, -0.00390625},
		{256, Range2G, Res10Bit, 1},
		{256, Range2G, Res8Bit, 2},
		{-128, Range8G, Res8Bit, -4},
		{511, Range4G, Res10Bit, 3.9921875},
	}
	for _, test := range tests {
		if got := ScaleToG(test.counts, test.r, test.res); got != test.want {
			t.Errorf("ScaleToG(%d, %d, %d) = %g, expected %g", test.counts, test.r, test.res, got, test.want)
		}
	}
}

func TestScaleToGLinear(t *testing.T) {
	for _, res := range []Resolution{Res8Bit, Res10Bit} {
		for _, r := range []Range{Range2G, Range4G, Range8G} {
			unit := ScaleToG(1, r, res)
			for _, c := range []int{-512, -100, -1, 3, 77, 511} {
				if got, want := ScaleToG(c, r, res), float64(c)*unit; got != want {
					t.Errorf("ScaleToG(%d, %d, %d) = %g, expected %g", c, r, res, got, want)
				}
			}
			if got, want := ScaleToG(100, r, res), ScaleToG(100, Range2G, res)*float64(r)/2; got != want {
				t.Errorf("ScaleToG(100, %d, %d) = %g, expected %g", r, res, got, want)
			}
		}
	}
}

func TestRound3(t *testing.T) {
	tests := []struct{ in, want float64 }{
		{-0.00390625, -0.004},
		{0.0004, 0},
		{3.9921875, 3.992},
		{1.0625, 1.063},
	}
	for _, test := range tests {
		if got := round3(test.in); math.Abs(got-test.want) > 1e-12 {
			t.Errorf("round3(%g) = %g, expected %g", test.in, got, test.want)
		}
	}
}

func TestAccelerationString(t *testing.T) {
	a := Acceleration{X: -0.004, Y: 1, Z: 0.5}
	if got, want := a.String(), "X:-0.004g Y:1.000g Z:0.500g"; got != want {
		t.Errorf("got %q, expected %q", got, want)
	}
}
