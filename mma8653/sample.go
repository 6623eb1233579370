// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"fmt"
	"math"
)

// Resolution is the bit width of one axis sample.
type Resolution uint8

const (
	// Res8Bit is what the device returns with fast-read enabled: the MSB
	// register only.
	Res8Bit Resolution = 8
	// Res10Bit is the full MSB:LSB sample.
	Res10Bit Resolution = 10
)

func (r Resolution) mask() uint16 {
	return uint16(1)<<r - 1
}

// Decode converts an N bit two's-complement count to a signed value. Bits
// above the resolution are ignored.
func Decode(raw uint16, res Resolution) int {
	m := res.mask()
	raw &= m
	if raw&(1<<(res-1)) == 0 {
		return int(raw)
	}
	return -int((^raw + 1) & m)
}

// Encode converts a signed count to its N bit two's-complement
// representation. Values outside the resolution wrap.
func Encode(counts int, res Resolution) uint16 {
	return uint16(counts) & res.mask()
}

// Pack10 combines the MSB and LSB output registers of one axis into the raw
// 10 bit sample. Only the top 2 bits of lsb are significant.
func Pack10(msb, lsb byte) uint16 {
	return uint16(msb)<<2 | uint16(lsb>>6)
}

// Unpack10 splits a raw 10 bit sample in the register layout used by the
// output and offset registers.
func Unpack10(raw uint16) (msb, lsb byte) {
	raw &= Res10Bit.mask()
	return byte(raw >> 2), byte(raw&0x3) << 6
}

// ScaleToG converts counts to g.
//
// 8 bit samples scale by r/256 and 10 bit samples by r/512.
func ScaleToG(counts int, r Range, res Resolution) float64 {
	return float64(counts) * float64(r) / countsPerG(res)
}

// countsPerG is the divisor applied to count*range.
func countsPerG(res Resolution) float64 {
	switch res {
	case Res8Bit:
		return 256
	case Res10Bit:
		return 512
	default:
		return float64(uint(1) << (res - 1))
	}
}

// gToCounts is the inverse of ScaleToG, rounded to the nearest count.
func gToCounts(g float64, r Range, res Resolution) int {
	return int(math.Round(g * countsPerG(res) / float64(r)))
}

func round3(v float64) float64 {
	return math.Round(v*1000) / 1000
}

// Acceleration is a sample on the three axes, in g.
type Acceleration struct {
	X float64
	Y float64
	Z float64
}

func (a Acceleration) String() string {
	return fmt.Sprintf("X:%.3fg Y:%.3fg Z:%.3fg", a.X, a.Y, a.Z)
}
