// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package image1bit

import (
	"image"
	"image/color"
	"testing"
)

func TestNewHorizontalMSB(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 20, 3))
	if got, want := img.Stride, 3; got != want {
		t.Errorf("Stride = %d, want %d", got, want)
	}
	if got, want := len(img.Pix), 9; got != want {
		t.Errorf("len(Pix) = %d, want %d", got, want)
	}
	if got, want := img.Bounds(), image.Rect(0, 0, 20, 3); got != want {
		t.Errorf("Bounds() = %v, want %v", got, want)
	}

	empty := NewHorizontalMSB(image.Rectangle{})
	if len(empty.Pix) != 0 {
		t.Errorf("empty image allocated %d bytes", len(empty.Pix))
	}
}

func TestSetBit(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 2))

	img.SetBit(0, 0, On)
	if got, want := img.Pix[0], byte(0x80); got != want {
		t.Errorf("Pix[0] = %#x, want %#x", got, want)
	}

	img.SetBit(7, 0, On)
	if got, want := img.Pix[0], byte(0x81); got != want {
		t.Errorf("Pix[0] = %#x, want %#x", got, want)
	}

	img.SetBit(8, 1, On)
	if got, want := img.Pix[3], byte(0x80); got != want {
		t.Errorf("Pix[3] = %#x, want %#x", got, want)
	}

	img.SetBit(0, 0, Off)
	if got, want := img.Pix[0], byte(0x01); got != want {
		t.Errorf("Pix[0] = %#x, want %#x", got, want)
	}
}

func TestBitAt(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 1))
	img.Pix[0] = 0x41

	for x, want := range []Bit{Off, On, Off, Off, Off, Off, Off, On} {
		if got := img.BitAt(x, 0); got != want {
			t.Errorf("BitAt(%d, 0) = %v, want %v", x, got, want)
		}
	}
}

func TestOutOfBounds(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 8, 1))

	for _, p := range []image.Point{
		{-1, 0},
		{8, 0},
		{0, -1},
		{0, 1},
		{1 << 30, 1 << 30},
	} {
		img.SetBit(p.X, p.Y, On)
		if got := img.BitAt(p.X, p.Y); got != Off {
			t.Errorf("BitAt(%v) = %v, want Off", p, got)
		}
	}
	if img.Pix[0] != 0 {
		t.Errorf("out of bounds writes modified Pix: %#x", img.Pix[0])
	}
}

func TestFill(t *testing.T) {
	img := NewHorizontalMSB(image.Rect(0, 0, 16, 2))
	img.Fill(On)
	for i, b := range img.Pix {
		if b != 0xFF {
			t.Fatalf("Pix[%d] = %#x after Fill(On)", i, b)
		}
	}
	img.Fill(Off)
	for i, b := range img.Pix {
		if b != 0x00 {
			t.Fatalf("Pix[%d] = %#x after Fill(Off)", i, b)
		}
	}
}

func TestBitModel(t *testing.T) {
	for _, tc := range []struct {
		in   color.Color
		want Bit
	}{
		{color.White, On},
		{color.Black, Off},
		{color.NRGBA{0xFF, 0xFF, 0xFF, 0xFF}, On},
		{color.NRGBA{0x10, 0x10, 0x10, 0xFF}, Off},
		{On, On},
		{Off, Off},
	} {
		if got := BitModel.Convert(tc.in); got != tc.want {
			t.Errorf("Convert(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestBitString(t *testing.T) {
	if got := On.String(); got != "On" {
		t.Errorf("On.String() = %q", got)
	}
	if got := Off.String(); got != "Off" {
		t.Errorf("Off.String() = %q", got)
	}
}
