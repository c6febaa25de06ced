// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

import "bytes"

// controller is the interface implemented by the electrical layer. All
// protocol sequencing is expressed as free functions over it so the command
// streams can be verified against a test double.
type controller interface {
	sendCommand(byte)
	sendData([]byte)
	waitUntilIdle()
}

// powerOptimizations holds the register/value pairs the vendor init sequence
// writes to the undocumented 0xF8 register.
var powerOptimizations = [][]byte{
	{0x60, 0xA5},
	{0x89, 0xA5},
	{0x90, 0x00},
	{0x93, 0x2A},
	{0xA0, 0xA5},
	{0xA1, 0x00},
	{0x73, 0x41},
}

// initDisplay runs the power-up sequence. It assumes a hardware reset was
// performed immediately before.
func initDisplay(ctrl controller) {
	ctrl.sendCommand(powerSetting)
	ctrl.sendData([]byte{0x03, 0x00, 0x2B, 0x2B, 0x09})

	ctrl.sendCommand(boosterSoftStart)
	ctrl.sendData([]byte{0x07, 0x07, 0x17})

	for _, p := range powerOptimizations {
		ctrl.sendCommand(powerOptimization)
		ctrl.sendData(p)
	}

	ctrl.sendCommand(partialDisplayRefresh)
	ctrl.sendData([]byte{0x00})

	ctrl.sendCommand(powerOn)
	ctrl.waitUntilIdle()

	ctrl.sendCommand(panelSetting)
	ctrl.sendData([]byte{0xAF})

	ctrl.sendCommand(pllControl)
	ctrl.sendData([]byte{0x3A})

	ctrl.sendCommand(vcomDCSetting)
	ctrl.sendData([]byte{0x12})

	setLut(ctrl)
}

// setLut loads the built-in waveform profile into the five LUT registers.
func setLut(ctrl controller) {
	ctrl.waitUntilIdle()

	ctrl.sendCommand(lutForVcom)
	ctrl.sendData(lutVcomDC)

	ctrl.sendCommand(lutWhiteToWhite)
	ctrl.sendData(lutWW)

	ctrl.sendCommand(lutBlackToWhite)
	ctrl.sendData(lutBW)

	ctrl.sendCommand(lutWhiteToBlack)
	ctrl.sendData(lutWB)

	ctrl.sendCommand(lutBlackToBlack)
	ctrl.sendData(lutBB)
}

// sendInverted transmits buf with every byte complemented. The controller
// encodes "set" pixels inverted relative to the buffer's storage convention,
// so the inversion lives here at the transfer boundary and nowhere else.
func sendInverted(ctrl controller, buf []byte) {
	inv := make([]byte, len(buf))
	for i, b := range buf {
		inv[i] = ^b
	}
	ctrl.sendData(inv)
}

// updateFrame stages a full frame in the controller's memory. Only the
// "chromatic" channel (data-start-transmission-2) is used; this panel
// variant has a single image plane.
func updateFrame(ctrl controller, buf []byte) {
	ctrl.sendCommand(dataStartTransmission2)
	sendInverted(ctrl, buf)
	ctrl.sendCommand(dataStop)
}

// updatePartialFrame stages buf into the rectangular window (x, y, w, h).
// The controller addresses columns at byte granularity, so the low bytes of
// x and w are masked to a multiple of 8 pixels.
func updatePartialFrame(ctrl controller, buf []byte, x, y, w, h int) {
	ctrl.sendCommand(partialDataStartTransmission1)
	ctrl.sendData([]byte{
		byte(x >> 8), byte(x) & 0xF8,
		byte(y >> 8), byte(y),
		byte(w >> 8), byte(w) & 0xF8,
		byte(h >> 8), byte(h),
	})
	ctrl.waitUntilIdle()

	sendInverted(ctrl, buf)
	ctrl.sendCommand(dataStop)
}

// displayFrame triggers the physical refresh sweep from the staged memory
// and blocks until the panel finishes it. This is the only operation that
// produces a visible change.
func displayFrame(ctrl controller) {
	ctrl.sendCommand(displayRefresh)
	ctrl.waitUntilIdle()
}

// clearFrame stages a solid frame of the given fill byte and refreshes.
func clearFrame(ctrl controller, fill byte) {
	updateFrame(ctrl, bytes.Repeat([]byte{fill}, frameBytes))
	displayFrame(ctrl)
}

// sleepDisplay puts the panel into deep sleep.
//
// Unlike power-on there is no busy-wait after power-off before the
// deep-sleep command. That asymmetry matches the vendor sequence; kept
// as observed, possible latent timing issue.
func sleepDisplay(ctrl controller) {
	ctrl.sendCommand(vcomAndDataIntervalSetting)
	ctrl.sendData([]byte{0xF7})

	ctrl.sendCommand(powerOff)

	ctrl.sendCommand(deepSleep)
	ctrl.sendData([]byte{0xA5})
}
