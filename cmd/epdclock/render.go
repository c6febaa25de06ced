// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"image"
	"image/color"
	_ "image/jpeg"
	_ "image/png"
	"os"
	"time"

	"github.com/MaxHalford/halfgone"
	"github.com/disintegration/imaging"
	"github.com/fogleman/gg"
	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"

	"github.com/GermanBionicSystems/epd2in7"
)

// timeBox is the region the partial clock redraw targets. X coordinates are
// multiples of 8 so the window maps directly to the controller's
// byte-addressed columns.
var timeBox = image.Rect(40, 48, 224, 112)

// renderer rasterizes the clock card, optionally over a dithered photo.
type renderer struct {
	timeFace font.Face
	dateFace font.Face
	photo    image.Image
}

func newRenderer(imagePath string) (*renderer, error) {
	ttf, err := truetype.Parse(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("parsing font: %w", err)
	}
	r := &renderer{
		timeFace: truetype.NewFace(ttf, &truetype.Options{Size: 48}),
		dateFace: truetype.NewFace(ttf, &truetype.Options{Size: 18}),
	}

	if imagePath != "" {
		photo, err := loadPhoto(imagePath)
		if err != nil {
			return nil, err
		}
		r.photo = photo
	}

	return r, nil
}

// loadPhoto decodes, scales and dithers a photo down to the panel's 1-bit
// format.
func loadPhoto(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening image: %w", err)
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decoding image %s: %w", path, err)
	}

	fitted := imaging.Fit(img, epd2in7.Width, epd2in7.Height, imaging.Lanczos)

	b := fitted.Bounds()
	gray := image.NewGray(b)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			gray.Set(x, y, color.GrayModel.Convert(fitted.At(x, y)))
		}
	}

	return halfgone.FloydSteinbergDitherer{}.Apply(gray), nil
}

// frame renders a full panel image for the given time.
func (r *renderer) frame(now time.Time) image.Image {
	dc := gg.NewContext(epd2in7.Width, epd2in7.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()

	if r.photo != nil {
		b := r.photo.Bounds()
		dc.DrawImage(r.photo, (epd2in7.Width-b.Dx())/2, (epd2in7.Height-b.Dy())/2)
	}

	// Clock card.
	dc.SetRGB(1, 1, 1)
	dc.DrawRoundedRectangle(float64(timeBox.Min.X), float64(timeBox.Min.Y), float64(timeBox.Dx()), float64(timeBox.Dy()), 8)
	dc.Fill()
	dc.SetRGB(0, 0, 0)
	dc.DrawRoundedRectangle(float64(timeBox.Min.X), float64(timeBox.Min.Y), float64(timeBox.Dx()), float64(timeBox.Dy()), 8)
	dc.Stroke()

	r.drawClock(dc, now)

	dc.SetFontFace(r.dateFace)
	dc.DrawStringAnchored(now.Format("Monday, January 2"), epd2in7.Width/2, float64(timeBox.Max.Y+28), 0.5, 0.5)

	return dc.Image()
}

// timeImage renders only the clock card, positioned for a partial update of
// timeBox.
func (r *renderer) timeImage(now time.Time) image.Image {
	dc := gg.NewContext(epd2in7.Width, epd2in7.Height)
	dc.SetRGB(1, 1, 1)
	dc.Clear()
	dc.SetRGB(0, 0, 0)
	dc.DrawRoundedRectangle(float64(timeBox.Min.X), float64(timeBox.Min.Y), float64(timeBox.Dx()), float64(timeBox.Dy()), 8)
	dc.Stroke()

	r.drawClock(dc, now)

	return dc.Image()
}

func (r *renderer) drawClock(dc *gg.Context, now time.Time) {
	dc.SetRGB(0, 0, 0)
	dc.SetFontFace(r.timeFace)
	cx := float64(timeBox.Min.X+timeBox.Max.X) / 2
	cy := float64(timeBox.Min.Y+timeBox.Max.Y) / 2
	dc.DrawStringAnchored(now.Format("15:04"), cx, cy, 0.5, 0.5)
}
