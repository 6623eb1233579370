// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package mma8653

import (
	"fmt"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/i2c"
)

// Range is the ± full scale of the accelerometer, in g.
type Range uint8

const (
	Range2G Range = 2
	Range4G Range = 4
	Range8G Range = 8
)

const (
	// DefaultAddress is the I²C address of the MMA8652FC and MMA8653FC. It
	// is not configurable on these parts.
	DefaultAddress uint16 = 0x1D

	// WHO_AM_I values.
	DeviceIDMMA8653 byte = 0x5A
	DeviceIDMMA8652 byte = 0x4A

	// MaxBlockLength is the longest burst ReadBlock accepts.
	MaxBlockLength = 32

	statusDataReady byte = 1 << 2
	ctrl1Active     byte = 1 << 0
	ctrl1FastRead   byte = 1 << 1
	rangeMask       byte = 0x03
	offsetMask           = 0b1111111100
)

// DefaultOpts are the options used by New and NewI2C when nil is passed.
var DefaultOpts = Opts{
	ExpectedDeviceID: DeviceIDMMA8653,
	Activate:         true,
}

// Opts holds the configuration applied when the device is opened.
type Opts struct {
	// ExpectedDeviceID is compared against WHO_AM_I. Zero skips the check.
	ExpectedDeviceID byte
	// Range to set on start. Zero keeps the range the device has.
	Range Range
	// Activate puts the device in active mode on start.
	Activate bool
}

// Dev is a driver for the MMA8653FC accelerometer.
//
// Dev does no locking. Serialize access when it is shared between
// goroutines.
type Dev struct {
	t     Transport
	rng   Range // Last range read from or written to XYZ_DATA_CFG.
	debug DebugF
}

// NewI2C returns a Dev talking to the device at DefaultAddress on b.
func NewI2C(b i2c.Bus, opts *Opts) (*Dev, error) {
	return New(newI2CTransport(b, DefaultAddress), opts)
}

// New returns a Dev using the register level transport t.
//
// The device ID is verified, the dynamic range is read and then the range
// and mode in opts are applied.
func New(t Transport, opts *Opts) (*Dev, error) {
	if opts == nil {
		opts = &DefaultOpts
	}
	d := &Dev{t: t, debug: noop}
	if opts.ExpectedDeviceID != 0 {
		id, err := d.ReadRegister(WhoAmI)
		if err != nil {
			return nil, err
		}
		if id != opts.ExpectedDeviceID {
			return nil, fmt.Errorf("%w: got %#x, expected %#x", ErrWrongDevice, id, opts.ExpectedDeviceID)
		}
	}
	r, err := d.Range()
	if err != nil {
		return nil, err
	}
	d.rng = r
	if opts.Range != 0 {
		if err := d.SetRange(opts.Range); err != nil {
			return nil, err
		}
	}
	if opts.Activate {
		if err := d.SetActive(); err != nil {
			return nil, err
		}
	}
	return d, nil
}

// EnableDebug sets a function called with a trace of mode changes and, for
// a Dev created with NewI2C, of every register access.
func (d *Dev) EnableDebug(f DebugF) {
	d.debug = f
	if t, ok := d.t.(*i2cTransport); ok {
		t.debug = f
	}
}

func (d *Dev) String() string {
	return fmt.Sprintf("MMA8653{%s, ±%dg}", d.t, d.rng)
}

// Halt puts the device in standby. Implements conn.Resource.
func (d *Dev) Halt() error {
	return d.SetStandby()
}

// ReadRegister reads one register.
func (d *Dev) ReadRegister(r Register) (byte, error) {
	a, err := r.Addr()
	if err != nil {
		return 0, err
	}
	v, err := d.t.ReadReg(a)
	if err != nil {
		return 0, &TransportError{Op: "read", Reg: r, Err: err}
	}
	return v, nil
}

// WriteRegister writes one register.
//
// Most configuration registers can only be changed in standby. See
// SetStandby.
func (d *Dev) WriteRegister(r Register, v byte) error {
	a, err := r.Addr()
	if err != nil {
		return err
	}
	if err := d.t.WriteReg(a, v); err != nil {
		return &TransportError{Op: "write", Reg: r, Err: err}
	}
	return nil
}

// ReadBlock reads n consecutive registers starting at r. n must be between 1
// and MaxBlockLength.
func (d *Dev) ReadBlock(r Register, n int) ([]byte, error) {
	if n < 1 || n > MaxBlockLength {
		return nil, ErrInvalidLength
	}
	a, err := r.Addr()
	if err != nil {
		return nil, err
	}
	b := make([]byte, n)
	if err := d.t.ReadRegs(a, b); err != nil {
		return nil, &TransportError{Op: "block read", Reg: r, Err: err}
	}
	return b, nil
}

// Range reads the dynamic range from the device.
func (d *Dev) Range() (Range, error) {
	v, err := d.ReadRegister(XYZDataCfg)
	if err != nil {
		return 0, err
	}
	switch v & rangeMask {
	case 0b00:
		return Range2G, nil
	case 0b01:
		return Range4G, nil
	case 0b10:
		return Range8G, nil
	default:
		return 0, ErrReservedRange
	}
}

// SetRange sets the dynamic range. It does nothing if r is the current
// range.
//
// The device is put in standby for the write and is active afterward.
func (d *Dev) SetRange(r Range) error {
	var bits byte
	switch r {
	case Range2G:
		bits = 0b00
	case Range4G:
		bits = 0b01
	case Range8G:
		bits = 0b10
	default:
		return fmt.Errorf("%w: %d", ErrInvalidRange, r)
	}
	if r == d.rng {
		return nil
	}
	cfg, err := d.ReadRegister(XYZDataCfg)
	if err != nil {
		return err
	}
	cfg = cfg&^rangeMask | bits
	if err := d.inStandby(func() error {
		return d.WriteRegister(XYZDataCfg, cfg)
	}); err != nil {
		return err
	}
	d.rng = r
	return nil
}

// IsActive reports whether the device is in active mode.
func (d *Dev) IsActive() (bool, error) {
	v, err := d.ReadRegister(CtrlReg1)
	if err != nil {
		return false, err
	}
	return v&ctrl1Active != 0, nil
}

// SetActive puts the device in active mode, where it samples continuously.
func (d *Dev) SetActive() error {
	return d.setMode(true)
}

// SetStandby puts the device in standby, where configuration registers can
// be written.
func (d *Dev) SetStandby() error {
	return d.setMode(false)
}

func (d *Dev) setMode(active bool) error {
	v, err := d.ReadRegister(CtrlReg1)
	if err != nil {
		return err
	}
	if (v&ctrl1Active != 0) == active {
		return nil
	}
	d.debug("mma8653: active=%t", active)
	return d.WriteRegister(CtrlReg1, v^ctrl1Active)
}

// inStandby runs write with the device in standby, then makes it active.
//
// The device is made active even if write fails. If that fails too the
// device is left in standby and the error of write is returned.
func (d *Dev) inStandby(write func() error) error {
	if err := d.SetStandby(); err != nil {
		return err
	}
	err := write()
	if aerr := d.SetActive(); err == nil {
		err = aerr
	}
	return err
}

// FastRead reports whether fast-read mode (8 bit samples) is enabled.
func (d *Dev) FastRead() (bool, error) {
	v, err := d.ReadRegister(CtrlReg1)
	if err != nil {
		return false, err
	}
	return v&ctrl1FastRead != 0, nil
}

// SetFastRead enables or disables fast-read mode. With fast-read the output
// registers hold 8 bit samples, use Acceleration8 to read them.
//
// The device is put in standby for the write and is active afterward.
func (d *Dev) SetFastRead(on bool) error {
	v, err := d.ReadRegister(CtrlReg1)
	if err != nil {
		return err
	}
	if (v&ctrl1FastRead != 0) == on {
		return nil
	}
	return d.inStandby(func() error {
		return d.WriteRegister(CtrlReg1, (v&^ctrl1Active)^ctrl1FastRead)
	})
}

// Acceleration returns the latest 10 bit sample, in g rounded to 3 decimals.
//
// It returns ErrDataNotReady when the device has no new sample. Fast-read is
// disabled if it was on.
func (d *Dev) Acceleration() (Acceleration, error) {
	s, err := d.ReadRegister(Status)
	if err != nil {
		return Acceleration{}, err
	}
	if s&statusDataReady == 0 {
		return Acceleration{}, ErrDataNotReady
	}
	if err := d.SetFastRead(false); err != nil {
		return Acceleration{}, err
	}
	raw, err := d.ReadBlock(OutXMSB, 6)
	if err != nil {
		return Acceleration{}, err
	}
	axis := func(i int) float64 {
		c := Decode(Pack10(raw[i], raw[i+1]), Res10Bit)
		return round3(ScaleToG(c, d.rng, Res10Bit))
	}
	return Acceleration{X: axis(0), Y: axis(2), Z: axis(4)}, nil
}

// Acceleration8 returns the latest sample at 8 bit resolution, in g. Only
// the MSB output registers are used.
func (d *Dev) Acceleration8() (Acceleration, error) {
	raw, err := d.ReadBlock(OutXMSB, 6)
	if err != nil {
		return Acceleration{}, err
	}
	axis := func(i int) float64 {
		return ScaleToG(Decode(uint16(raw[i]), Res8Bit), d.rng, Res8Bit)
	}
	return Acceleration{X: axis(0), Y: axis(2), Z: axis(4)}, nil
}

// SetOffsetX sets the X axis offset, in g.
func (d *Dev) SetOffsetX(g float64) error {
	return d.setOffset(OffX, g)
}

// SetOffsetY sets the Y axis offset, in g.
func (d *Dev) SetOffsetY(g float64) error {
	return d.setOffset(OffY, g)
}

// SetOffsetZ sets the Z axis offset, in g.
func (d *Dev) SetOffsetZ(g float64) error {
	return d.setOffset(OffZ, g)
}

// SetOffsets sets the offsets of the three axes, in g.
func (d *Dev) SetOffsets(o Acceleration) error {
	if err := d.SetOffsetX(o.X); err != nil {
		return err
	}
	if err := d.SetOffsetY(o.Y); err != nil {
		return err
	}
	return d.SetOffsetZ(o.Z)
}

// ResetOffsets clears the offsets of the three axes.
func (d *Dev) ResetOffsets() error {
	return d.SetOffsets(Acceleration{})
}

// setOffset writes the top 8 bits of the 10 bit offset count. The offset
// resolution is 4 counts.
func (d *Dev) setOffset(r Register, g float64) error {
	c := gToCounts(g, d.rng, Res10Bit)
	if c < -512 || c > 511 {
		return fmt.Errorf("%w: %gg at ±%dg", ErrInvalidOffset, g, d.rng)
	}
	v := byte((c & offsetMask) >> 2)
	return d.inStandby(func() error {
		return d.WriteRegister(r, v)
	})
}

// Offsets reads back the offsets of the three axes, in g.
func (d *Dev) Offsets() (Acceleration, error) {
	var c [3]int
	for i, r := range []Register{OffX, OffY, OffZ} {
		v, err := d.ReadRegister(r)
		if err != nil {
			return Acceleration{}, err
		}
		c[i] = Decode(Pack10(v, 0), Res10Bit)
	}
	return Acceleration{
		X: ScaleToG(c[0], d.rng, Res10Bit),
		Y: ScaleToG(c[1], d.rng, Res10Bit),
		Z: ScaleToG(c[2], d.rng, Res10Bit),
	}, nil
}

var _ conn.Resource = &Dev{}
