// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

import (
	"image"
	"image/color"

	"github.com/GermanBionicSystems/epd2in7/image1bit"
)

// Rotation selects the logical orientation used when addressing Frame
// pixels.
type Rotation int

// Valid Rotation. Rotate0 is landscape, matching how the panel itself is
// wired.
const (
	Rotate0 Rotation = iota
	Rotate90
	Rotate180
	Rotate270
)

func (r Rotation) String() string {
	switch r {
	case Rotate90:
		return "Rotate90"
	case Rotate180:
		return "Rotate180"
	case Rotate270:
		return "Rotate270"
	default:
		return "Rotate0"
	}
}

// Frame is a full size pixel buffer for the panel.
//
// Pixels are stored packed 8 per byte, MSB first, one bit per pixel, with
// 1 meaning white. The stored layout never changes; Rotation only affects
// the coordinate mapping applied to subsequent pixel accesses.
//
// Frame implements draw.Image so rasterizers can target it directly.
type Frame struct {
	img      *image1bit.HorizontalMSB
	rotation Rotation
}

// NewFrame returns a Frame with every pixel set to white, at Rotate0.
func NewFrame() *Frame {
	f := &Frame{
		img: image1bit.NewHorizontalMSB(image.Rect(0, 0, Width, Height)),
	}
	f.img.Fill(image1bit.On)
	return f
}

// SetRotation changes the coordinate mapping used by subsequent pixel
// accesses. Already stored pixels are not re-packed.
func (f *Frame) SetRotation(r Rotation) {
	f.rotation = r
}

// Rotation returns the current coordinate mapping.
func (f *Frame) Rotation() Rotation {
	return f.rotation
}

// ColorModel implements image.Image.
func (f *Frame) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements image.Image. Width and height are swapped for Rotate90
// and Rotate270.
func (f *Frame) Bounds() image.Rectangle {
	switch f.rotation {
	case Rotate90, Rotate270:
		return image.Rect(0, 0, Height, Width)
	default:
		return image.Rect(0, 0, Width, Height)
	}
}

// At implements image.Image.
func (f *Frame) At(x, y int) color.Color {
	px, py := f.transpose(x, y)
	return f.img.BitAt(px, py)
}

// Set implements draw.Image. Out of bounds writes are silently dropped.
func (f *Frame) Set(x, y int, c color.Color) {
	px, py := f.transpose(x, y)
	f.img.Set(px, py, c)
}

// SetPixel writes a single pixel under the current rotation. Out of bounds
// coordinates are silently dropped.
func (f *Frame) SetPixel(x, y int, c Color) {
	px, py := f.transpose(x, y)
	f.img.SetBit(px, py, c.bit())
}

// Bytes returns the packed pixel buffer. The driver borrows it for the
// duration of a transfer and never retains it.
func (f *Frame) Bytes() []byte {
	return f.img.Pix
}

// transpose maps a logical coordinate under the current rotation to the
// physical panel coordinate.
func (f *Frame) transpose(x, y int) (int, int) {
	switch f.rotation {
	case Rotate90:
		return Width - 1 - y, x
	case Rotate180:
		return Width - 1 - x, Height - 1 - y
	case Rotate270:
		return y, Height - 1 - x
	default:
		return x, y
	}
}
