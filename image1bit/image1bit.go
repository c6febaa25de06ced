// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package image1bit implements black and white (1 bit per pixel) images
// packed in the horizontal, MSB-first layout used by UltraChip e-paper
// controllers.
//
// Each byte holds 8 horizontally adjacent pixels, with the leftmost pixel in
// the most significant bit.
package image1bit

import (
	"image"
	"image/color"
	"image/draw"
)

// Bit implements a 1 bit color.
type Bit bool

// Possible bitness.
const (
	On  Bit = true
	Off Bit = false
)

// RGBA returns either all white or all black.
func (b Bit) RGBA() (uint32, uint32, uint32, uint32) {
	if b {
		return 65535, 65535, 65535, 65535
	}
	return 0, 0, 0, 65535
}

func (b Bit) String() string {
	if b {
		return "On"
	}
	return "Off"
}

// BitModel is the color model for the 1 bit color.
var BitModel = color.ModelFunc(convertBit)

func convertBit(c color.Color) color.Color {
	if b, ok := c.(Bit); ok {
		return b
	}
	r, g, b, _ := c.RGBA()
	// Fast approximation of the ITU-R 601 luma.
	y := (r + r + b + g + g + g) / 6
	return Bit(y >= 0x8000)
}

// HorizontalMSB is a 1 bit per pixel image with pixels packed 8 per byte
// along the X axis, most significant bit first.
//
// The memory layout matches the raster format the e-paper controller's
// data-transmission commands expect: byte (y*Stride + x/8), bit 7-(x%8).
type HorizontalMSB struct {
	// Pix holds the image's pixels, as horizontally packed bits.
	Pix []byte
	// Stride is the Pix stride (in bytes) between vertically adjacent pixels.
	Stride int
	// Rect is the image's bounds.
	Rect image.Rectangle
}

// NewHorizontalMSB returns an initialized (all Off) HorizontalMSB instance.
func NewHorizontalMSB(r image.Rectangle) *HorizontalMSB {
	w, h := r.Dx(), r.Dy()
	if w <= 0 || h <= 0 {
		return &HorizontalMSB{Rect: r}
	}
	stride := (w + 7) / 8
	return &HorizontalMSB{
		Pix:    make([]byte, stride*h),
		Stride: stride,
		Rect:   r,
	}
}

// ColorModel implements image.Image.
func (i *HorizontalMSB) ColorModel() color.Model {
	return BitModel
}

// Bounds implements image.Image.
func (i *HorizontalMSB) Bounds() image.Rectangle {
	return i.Rect
}

// At implements image.Image.
func (i *HorizontalMSB) At(x, y int) color.Color {
	return i.BitAt(x, y)
}

// BitAt is the optimized version of At(). Out of bounds reads return Off.
func (i *HorizontalMSB) BitAt(x, y int) Bit {
	if !(image.Point{x, y}.In(i.Rect)) {
		return Off
	}
	offset, mask := i.pixOffset(x, y)
	return Bit(i.Pix[offset]&mask != 0)
}

// Set implements draw.Image.
func (i *HorizontalMSB) Set(x, y int, c color.Color) {
	i.SetBit(x, y, convertBit(c).(Bit))
}

// SetBit is the optimized version of Set(). Out of bounds writes are
// silently dropped.
func (i *HorizontalMSB) SetBit(x, y int, b Bit) {
	if !(image.Point{x, y}.In(i.Rect)) {
		return
	}
	offset, mask := i.pixOffset(x, y)
	if b {
		i.Pix[offset] |= mask
	} else {
		i.Pix[offset] &^= mask
	}
}

// Fill sets every pixel to b.
func (i *HorizontalMSB) Fill(b Bit) {
	v := byte(0)
	if b {
		v = 0xFF
	}
	for n := range i.Pix {
		i.Pix[n] = v
	}
}

func (i *HorizontalMSB) pixOffset(x, y int) (int, byte) {
	x -= i.Rect.Min.X
	y -= i.Rect.Min.Y
	return y*i.Stride + x/8, 0x80 >> uint(x&7)
}

var _ image.Image = &HorizontalMSB{}
var _ draw.Image = &HorizontalMSB{}
