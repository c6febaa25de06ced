// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package epd2in7

// Commands
const (
	panelSetting                  byte = 0x00
	powerSetting                  byte = 0x01
	powerOff                      byte = 0x02
	powerOffSequenceSetting       byte = 0x03
	powerOn                       byte = 0x04
	powerOnMeasure                byte = 0x05
	boosterSoftStart              byte = 0x06
	deepSleep                     byte = 0x07
	dataStartTransmission1        byte = 0x10
	dataStop                      byte = 0x11
	displayRefresh                byte = 0x12
	dataStartTransmission2        byte = 0x13
	partialDataStartTransmission1 byte = 0x14
	partialDataStartTransmission2 byte = 0x15
	partialDisplayRefresh         byte = 0x16
	lutForVcom                    byte = 0x20
	lutWhiteToWhite               byte = 0x21
	lutBlackToWhite               byte = 0x22
	lutWhiteToBlack               byte = 0x23
	lutBlackToBlack               byte = 0x24
	pllControl                    byte = 0x30
	temperatureSensorCommand      byte = 0x40
	temperatureSensorCalibration  byte = 0x41
	temperatureSensorWrite        byte = 0x42
	temperatureSensorRead         byte = 0x43
	vcomAndDataIntervalSetting    byte = 0x50
	lowPowerDetection             byte = 0x51
	tconSetting                   byte = 0x60
	tconResolution                byte = 0x61
	sourceAndGateStartSetting     byte = 0x62
	getStatus                     byte = 0x71
	autoMeasureVcom               byte = 0x80
	vcomValue                     byte = 0x81
	vcomDCSetting                 byte = 0x82
	programMode                   byte = 0xA0
	activeProgram                 byte = 0xA1
	readOTPData                   byte = 0xA2

	// Not listed in the command table, but required by the vendor init
	// sequence.
	powerOptimization byte = 0xF8
)
