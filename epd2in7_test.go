// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

import (
	"image"
	"testing"

	"github.com/google/go-cmp/cmp"
	"periph.io/x/conn/v3/conntest"
	"periph.io/x/conn/v3/gpio"
	"periph.io/x/conn/v3/gpio/gpiotest"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
	"periph.io/x/conn/v3/spi/spitest"

	"github.com/GermanBionicSystems/epd2in7/image1bit"
)

// testDev builds a Dev around playback doubles without touching Init.
func testDev(t *testing.T) *Dev {
	t.Helper()
	p := &spitest.Playback{Playback: conntest.Playback{DontPanic: true}}
	c, err := p.Connect(5*physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatalf("Connect() failed: %v", err)
	}
	return &Dev{
		c:   c,
		dc:  &gpiotest.Pin{},
		cs:  &gpiotest.Pin{},
		rst: &gpiotest.Pin{},
		// The busy line is active-low; keep it high so nothing blocks.
		busy: &gpiotest.Pin{L: gpio.High},
	}
}

func TestDevString(t *testing.T) {
	d := testDev(t)
	if diff := cmp.Diff(d.String(), "epd2in7.Dev{playback, (0), Width: 264, Height: 176}"); diff != "" {
		t.Errorf("String() difference (-got +want):\n%s", diff)
	}
}

func TestDevBounds(t *testing.T) {
	d := testDev(t)
	if diff := cmp.Diff(d.Bounds(), image.Rect(0, 0, 264, 176)); diff != "" {
		t.Errorf("Bounds() difference (-got +want):\n%s", diff)
	}
}

func TestDevColorModel(t *testing.T) {
	d := testDev(t)
	if got := d.ColorModel().Convert(image1bit.On); got != image1bit.On {
		t.Errorf("ColorModel().Convert(On) = %v, want On", got)
	}
}

func TestDevBusy(t *testing.T) {
	d := testDev(t)

	d.busy = &gpiotest.Pin{L: gpio.Low}
	if !d.Busy() {
		t.Errorf("Busy() = false with busy line low, want true")
	}

	d.busy = &gpiotest.Pin{L: gpio.High}
	if d.Busy() {
		t.Errorf("Busy() = true with busy line high, want false")
	}
}

// TestInitTransportFailure injects a failing SPI connection; the error must
// surface and stop the command sequence instead of panicking partway.
func TestInitTransportFailure(t *testing.T) {
	d := testDev(t)

	// The playback has no expected operations, so the very first transfer
	// fails.
	if err := d.Init(); err == nil {
		t.Errorf("Init() = nil, want transport error")
	}
}

func TestUpdateFrameTransportFailure(t *testing.T) {
	d := testDev(t)

	if err := d.UpdateFrame(make([]byte, frameBytes)); err == nil {
		t.Errorf("UpdateFrame() = nil, want transport error")
	}
}

func TestBackgroundColor(t *testing.T) {
	d := testDev(t)

	if got := d.BackgroundColor(); got != White {
		t.Errorf("BackgroundColor() = %v, want White", got)
	}

	d.SetBackgroundColor(Black)
	if got := d.BackgroundColor(); got != Black {
		t.Errorf("BackgroundColor() = %v, want Black", got)
	}
}

func TestColorSet(t *testing.T) {
	var c Color
	if err := c.Set("black"); err != nil || c != Black {
		t.Errorf(`Set("black") = %v, c = %v; want nil, Black`, err, c)
	}
	if err := c.Set("white"); err != nil || c != White {
		t.Errorf(`Set("white") = %v, c = %v; want nil, White`, err, c)
	}
	if err := c.Set("chartreuse"); err == nil {
		t.Errorf(`Set("chartreuse") = nil, want error`)
	}
}

func TestColorFill(t *testing.T) {
	if got := White.fill(); got != 0xFF {
		t.Errorf("White.fill() = %#x, want 0xFF", got)
	}
	if got := Black.fill(); got != 0x00 {
		t.Errorf("Black.fill() = %#x, want 0x00", got)
	}
}
