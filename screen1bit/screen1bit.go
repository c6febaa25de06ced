// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package screen1bit implements a 1-bit display.Drawer that outputs to
// terminal (stdout) using ANSI color codes.
//
// Useful to develop e-paper output without the panel attached. One glyph is
// printed per pixel, so a portrait frame (Rotate90) fits narrower terminals
// better than the full landscape width.
package screen1bit

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"io"

	"github.com/maruel/ansi256"
	"github.com/mattn/go-colorable"
	"periph.io/x/conn/v3/display"

	"github.com/GermanBionicSystems/epd2in7/image1bit"
)

// Opts represents the options available for this display.
type Opts struct {
	Width   int
	Height  int
	Palette *ansi256.Palette
	// Writer overrides the output; defaults to a colorable stdout.
	Writer io.Writer

	_ struct{}
}

// Dev is a 1-bit panel emulator that outputs to the console.
type Dev struct {
	w       io.Writer
	palette ansi256.Palette

	img   *image1bit.HorizontalMSB
	buf   bytes.Buffer
	lines int
}

// New returns a Dev that displays at the console.
func New(opts *Opts) *Dev {
	p := opts.Palette
	if p == nil {
		p = ansi256.Default
	}
	w := opts.Writer
	if w == nil {
		w = colorable.NewColorableStdout()
	}
	d := &Dev{
		w:       w,
		palette: *p,
		img:     image1bit.NewHorizontalMSB(image.Rect(0, 0, opts.Width, opts.Height)),
	}
	d.img.Fill(image1bit.On)
	return d
}

func (d *Dev) String() string {
	return fmt.Sprintf("Screen1bit{%dx%d}", d.img.Bounds().Dx(), d.img.Bounds().Dy())
}

// Halt implements conn.Resource.
//
// It resets the terminal attributes so the console is not corrupted.
func (d *Dev) Halt() error {
	_, err := d.w.Write([]byte("\n\033[0m"))
	return err
}

// ColorModel implements display.Drawer.
func (d *Dev) ColorModel() color.Model {
	return image1bit.BitModel
}

// Bounds implements display.Drawer.
func (d *Dev) Bounds() image.Rectangle {
	return d.img.Bounds()
}

// Draw implements display.Drawer.
func (d *Dev) Draw(r image.Rectangle, src image.Image, sp image.Point) error {
	draw.Src.Draw(d.img, r.Intersect(d.Bounds()), src, sp)
	return d.refresh()
}

func (d *Dev) refresh() error {
	// This code is designed to minimize the amount of memory allocated per
	// call. Rewind over the previously printed frame instead of scrolling.
	d.buf.Reset()
	if d.lines > 0 {
		fmt.Fprintf(&d.buf, "\033[%dA", d.lines)
	}
	b := d.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		_, _ = d.buf.WriteString("\r\033[0m")
		for x := b.Min.X; x < b.Max.X; x++ {
			_, _ = io.WriteString(&d.buf, d.palette.Block(color.NRGBAModel.Convert(d.img.BitAt(x, y)).(color.NRGBA)))
		}
		_, _ = d.buf.WriteString("\033[0m\n")
	}
	d.lines = b.Dy()
	_, err := d.buf.WriteTo(d.w)
	return err
}

var _ display.Drawer = &Dev{}
var _ fmt.Stringer = &Dev{}
