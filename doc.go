// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// Package epd2in7 controls the Waveshare 2.7 inch e-paper display.
//
// The panel is a 264x176 black and white display driven by an IL91874-class
// controller over 4-wire SPI (SCLK/MOSI plus data/command, chip select,
// reset and busy lines).
//
// Datasheet:
//
// https://www.waveshare.com/w/upload/b/ba/2.7inch_e-Paper_Specification.pdf
//
// Product page:
//
// https://www.waveshare.com/wiki/2.7inch_e-Paper_HAT
package epd2in7
