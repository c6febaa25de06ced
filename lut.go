// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

// LUT contains a waveform that is used to program the display.
type LUT []byte

// The single built-in waveform profile for this panel revision, taken from
// the vendor driver. The tables parameterize the voltage sequencing applied
// to each pixel transition during a refresh.
var (
	lutVcomDC = LUT{
		0x00, 0x00,
		0x00, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x32, 0x32, 0x00, 0x00, 0x02,
		0x00, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	lutWW = LUT{
		0x50, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x60, 0x32, 0x32, 0x00, 0x00, 0x02,
		0xA0, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	lutBW = LUT{
		0x50, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x60, 0x32, 0x32, 0x00, 0x00, 0x02,
		0xA0, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	lutWB = LUT{
		0xA0, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x60, 0x32, 0x32, 0x00, 0x00, 0x02,
		0x50, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}

	lutBB = LUT{
		0xA0, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x60, 0x32, 0x32, 0x00, 0x00, 0x02,
		0x50, 0x0F, 0x0F, 0x00, 0x00, 0x05,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
		0x00, 0x00, 0x00, 0x00, 0x00, 0x00,
	}
)
