// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// config is the epdclock configuration file model.
type config struct {
	// SPI is the SPI port name. Empty selects the first available port.
	SPI string `yaml:"spi"`

	// Background is the panel background color, "white" or "black".
	Background string `yaml:"background"`

	// Image is an optional photo rendered behind the clock card.
	Image string `yaml:"image"`

	// FullRefresh is the cron schedule for full-frame refreshes. A periodic
	// full refresh clears the ghosting partial updates accumulate.
	FullRefresh string `yaml:"full_refresh"`

	// TimeRefresh is the cron schedule for partial redraws of the clock
	// area.
	TimeRefresh string `yaml:"time_refresh"`
}

func defaultConfig() *config {
	return &config{
		Background:  "white",
		FullRefresh: "0 * * * *",
		TimeRefresh: "* * * * *",
	}
}

// loadConfig reads the YAML file at path, or returns the defaults if path is
// empty. Missing fields keep their default value.
func loadConfig(path string) (*config, error) {
	c := defaultConfig()
	if path == "" {
		return c, nil
	}

	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(raw, c); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	c.normalize()
	return c, nil
}

func (c *config) normalize() {
	if c.Background == "" {
		c.Background = "white"
	}
	if c.FullRefresh == "" {
		c.FullRefresh = "0 * * * *"
	}
	if c.TimeRefresh == "" {
		c.TimeRefresh = "* * * * *"
	}
}
