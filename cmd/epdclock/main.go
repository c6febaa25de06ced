// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

// epdclock renders a clock card to a Waveshare 2.7" e-paper HAT, optionally
// over a dithered background photo.
//
// The clock area is redrawn through the panel's partial update path; a full
// refresh runs on its own schedule to clear accumulated ghosting. With
// -preview the frame is rendered to the terminal instead of the panel.
package main

import (
	"flag"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"periph.io/x/conn/v3/display"
	"periph.io/x/conn/v3/spi/spireg"
	"periph.io/x/host/v3"

	"github.com/GermanBionicSystems/epd2in7"
	"github.com/GermanBionicSystems/epd2in7/screen1bit"
)

func mainImpl() error {
	configPath := flag.String("config", "", "path to the YAML config file")
	preview := flag.Bool("preview", false, "render to the terminal instead of the panel")
	once := flag.Bool("once", false, "render a single frame and exit")
	spiPort := flag.String("spi", "", "SPI port name, overrides the config file")
	background := epd2in7.White
	flag.Var(&background, "bg", "panel background color (white or black), overrides the config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *spiPort != "" {
		cfg.SPI = *spiPort
	}
	if isFlagSet("bg") {
		cfg.Background = background.String()
	}
	if err := background.Set(cfg.Background); err != nil {
		return err
	}

	r, err := newRenderer(cfg.Image)
	if err != nil {
		return err
	}

	var drawer display.Drawer
	var dev *epd2in7.Dev
	if *preview {
		drawer = screen1bit.New(&screen1bit.Opts{Width: epd2in7.Width, Height: epd2in7.Height})
	} else {
		if _, err := host.Init(); err != nil {
			return err
		}
		port, err := spireg.Open(cfg.SPI)
		if err != nil {
			return err
		}
		defer port.Close()

		dev, err = epd2in7.NewHat(port, &epd2in7.Opts{BackgroundColor: background})
		if err != nil {
			return err
		}
		drawer = dev
	}

	renderFull := func() {
		if err := drawer.Draw(drawer.Bounds(), r.frame(time.Now()), image.Point{}); err != nil {
			log.Printf("full refresh failed: %v", err)
		}
	}
	renderTime := func() {
		if dev == nil {
			renderFull()
			return
		}
		if err := dev.DrawPartial(timeBox, r.timeImage(time.Now()), timeBox.Min); err != nil {
			log.Printf("partial refresh failed: %v", err)
		}
	}

	renderFull()

	if *once {
		if dev != nil {
			return dev.Sleep()
		}
		return nil
	}

	c := cron.New()
	if _, err := c.AddFunc(cfg.FullRefresh, renderFull); err != nil {
		return err
	}
	if _, err := c.AddFunc(cfg.TimeRefresh, renderTime); err != nil {
		return err
	}
	c.Start()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	<-c.Stop().Done()

	if dev != nil {
		return dev.Sleep()
	}
	return drawer.(*screen1bit.Dev).Halt()
}

func isFlagSet(name string) bool {
	set := false
	flag.Visit(func(f *flag.Flag) {
		if f.Name == name {
			set = true
		}
	})
	return set
}

func main() {
	if err := mainImpl(); err != nil {
		log.Fatalf("epdclock: %v", err)
	}
}
