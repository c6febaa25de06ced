// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"time"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/host/v3/rpi"

	"github.com/GermanBionicSystems/epd2in7/image1bit"
)

// Panel dimensions in landscape orientation.
const (
	Width  = 264
	Height = 176
)

// frameBytes is the size of a packed full-frame buffer.
const frameBytes = Width * Height / 8

// Color is a single pixel color as stored in a Frame. White is the default
// background.
type Color int

// Valid Color.
const (
	White Color = iota
	Black
)

// Set sets the Color to a value represented by the string s. Set implements
// the flag.Value interface.
func (c *Color) Set(s string) error {
	switch s {
	case "white":
		*c = White
	case "black":
		*c = Black
	default:
		return fmt.Errorf("unknown color %q: expected either white or black", s)
	}
	return nil
}

func (c Color) String() string {
	if c == Black {
		return "black"
	}
	return "white"
}

// fill is the buffer byte filling 8 pixels of this color.
func (c Color) fill() byte {
	if c == Black {
		return 0x00
	}
	return 0xFF
}

func (c Color) bit() image1bit.Bit {
	return image1bit.Bit(c == White)
}

// RefreshRate selects a refresh waveform profile.
//
// This panel revision ships a single profile; the type exists for interface
// symmetry with sibling drivers and SetLut ignores its value.
type RefreshRate int

// Valid RefreshRate.
const (
	RefreshFull RefreshRate = iota
	RefreshQuick
)

// Opts defines the driver configuration.
type Opts struct {
	// BackgroundColor is the initial background color. Defaults to White.
	BackgroundColor Color
	// Speed is the SPI bus speed. Defaults to 5MHz.
	Speed physic.Frequency
}

// Dev defines the handler which is used to access the display.
//
// Dev owns its SPI connection and pins exclusively and is not safe for
// concurrent use; wrap it externally if multiple goroutines must share it.
type Dev struct {
	c conn.Conn

	dc   gpio.PinOut
	cs   gpio.PinOut
	rst  gpio.PinOut
	busy gpio.PinIO

	color Color
}

// New creates a Dev and initializes the panel hardware.
//
// If initialization fails the panel may be left in an indeterminate
// electrical state; a full reset is required before retrying.
func New(p spi.Port, dc, cs, rst gpio.PinOut, busy gpio.PinIO, opts *Opts) (*Dev, error) {
	speed := opts.Speed
	if speed == 0 {
		speed = 5 * physic.MegaHertz
	}
	c, err := p.Connect(speed, spi.Mode0, 8)
	if err != nil {
		return nil, err
	}

	d := &Dev{
		c:     c,
		dc:    dc,
		cs:    cs,
		rst:   rst,
		busy:  busy,
		color: opts.BackgroundColor,
	}

	if err := d.Init(); err != nil {
		return nil, err
	}

	return d, nil
}

// NewHat creates a Dev using the default Waveshare HAT pin assignment.
func NewHat(p spi.Port, opts *Opts) (*Dev, error) {
	dc := rpi.P1_22
	cs := rpi.P1_24
	rst := rpi.P1_11
	busy := rpi.P1_18
	return New(p, dc, cs, rst, busy, opts)
}

// Init performs a hardware reset followed by the full power-up sequence and
// loads the waveform tables. It also wakes the panel from deep sleep; there
// is no lighter-weight resume path.
func (d *Dev) Init() error {
	if err := d.reset(); err != nil {
		return err
	}

	eh := errorHandler{d: *d}
	initDisplay(&eh)
	return eh.err
}

// Sleep puts the panel into deep sleep. Init() wakes it up again.
func (d *Dev) Sleep() error {
	eh := errorHandler{d: *d}
	sleepDisplay(&eh)
	return eh.err
}

// Busy reports whether the panel is currently performing an internal
// operation. No command may be issued while it is.
func (d *Dev) Busy() bool {
	return d.busy.Read() == gpio.Low
}

// UpdateFrame stages a full frame buffer in the panel's memory without
// refreshing. buf must hold Width*Height/8 packed bytes, as returned by
// Frame.Bytes(). The buffer is only borrowed for the duration of the call.
func (d *Dev) UpdateFrame(buf []byte) error {
	eh := errorHandler{d: *d}
	updateFrame(&eh, buf)
	return eh.err
}

// UpdatePartialFrame stages buf into the window (x, y, w, h) without
// refreshing. x and w are truncated to a multiple of 8 pixels by the
// controller's byte-addressed column granularity; buf must hold w/8*h
// packed bytes.
func (d *Dev) UpdatePartialFrame(buf []byte, x, y, w, h int) error {
	eh := errorHandler{d: *d}
	updatePartialFrame(&eh, buf, x, y, w, h)
	return eh.err
}

// DisplayFrame refreshes the panel from the staged memory and blocks until
// the refresh sweep finishes.
func (d *Dev) DisplayFrame() error {
	eh := errorHandler{d: *d}
	displayFrame(&eh)
	return eh.err
}

// UpdateAndDisplayFrame stages buf and refreshes the panel.
func (d *Dev) UpdateAndDisplayFrame(buf []byte) error {
	eh := errorHandler{d: *d}
	updateFrame(&eh, buf)
	displayFrame(&eh)
	return eh.err
}

// ClearFrame fills the panel with the background color and refreshes.
func (d *Dev) ClearFrame() error {
	eh := errorHandler{d: *d}
	clearFrame(&eh, d.color.fill())
	return eh.err
}

// SetLut loads the waveform tables. The rate argument is accepted for
// interface symmetry with sibling panel drivers and is ignored; this panel
// revision has a single built-in profile.
func (d *Dev) SetLut(rate RefreshRate) error {
	eh := errorHandler{d: *d}
	setLut(&eh)
	return eh.err
}

// BackgroundColor returns the current background color.
func (d *Dev) BackgroundColor() Color {
	return d.color
}

// SetBackgroundColor changes the color used by ClearFrame and as the fill
// of partial update padding.
func (d *Dev) SetBackgroundColor(c Color) {
	d.color = c
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return image.Rect(0, 0, Width, Height)
}

// Draw implements display.Drawer. It rasterizes src into a full frame,
// stages it and refreshes the panel.
func (d *Dev) Draw(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	f := NewFrame()
	if d.color == Black {
		f.img.Fill(image1bit.Off)
	}
	draw.Src.Draw(f, dstRect.Intersect(d.Bounds()), src, srcPts)
	return d.UpdateAndDisplayFrame(f.Bytes())
}

// DrawPartial rasterizes src into the given window and refreshes only that
// region. The window is widened to byte boundaries on the X axis so no
// requested pixel is dropped; the padding pixels take the background color.
func (d *Dev) DrawPartial(dstRect image.Rectangle, src image.Image, srcPts image.Point) error {
	dstRect = dstRect.Intersect(d.Bounds())
	if dstRect.Empty() {
		return nil
	}

	// Align to the controller's 8 pixel column granularity.
	aligned := dstRect
	aligned.Min.X &^= 7
	aligned.Max.X = (aligned.Max.X + 7) &^ 7

	region := image1bit.NewHorizontalMSB(aligned)
	region.Fill(d.color.bit())
	draw.Src.Draw(region, dstRect, src, srcPts)

	eh := errorHandler{d: *d}
	updatePartialFrame(&eh, region.Pix, aligned.Min.X, aligned.Min.Y, aligned.Dx(), aligned.Dy())
	displayFrame(&eh)
	return eh.err
}

// Halt implements conn.Resource. It clears the display to the background
// color.
func (d *Dev) Halt() error {
	return d.ClearFrame()
}

// String returns a string containing configuration information.
func (d *Dev) String() string {
	return fmt.Sprintf("epd2in7.Dev{%s, %s, Width: %d, Height: %d}", d.c, d.dc, Width, Height)
}

// reset drives the hardware reset line through two low/high pulses. Used
// only before the power-up sequence.
func (d *Dev) reset() error {
	eh := errorHandler{d: *d}

	eh.rstOut(gpio.High)
	time.Sleep(10 * time.Millisecond)
	for i := 0; i < 2; i++ {
		eh.rstOut(gpio.Low)
		time.Sleep(10 * time.Millisecond)
		eh.rstOut(gpio.High)
		time.Sleep(10 * time.Millisecond)
	}

	return eh.err
}

var _ display.Drawer = &Dev{}
var _ conn.Resource = &Dev{}
