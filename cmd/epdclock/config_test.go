// Copyright 2026 The Periph Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigDefaults(t *testing.T) {
	got, err := loadConfig("")
	if err != nil {
		t.Fatalf("loadConfig(\"\") failed: %v", err)
	}

	want := &config{
		Background:  "white",
		FullRefresh: "0 * * * *",
		TimeRefresh: "* * * * *",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("loadConfig(\"\") difference (-got +want):\n%s", diff)
	}
}

func TestLoadConfigFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	data := `
spi: "SPI0.0"
background: black
image: /var/lib/epdclock/photo.jpg
time_refresh: "*/5 * * * *"
`
	if err := os.WriteFile(path, []byte(data), 0o600); err != nil {
		t.Fatal(err)
	}

	got, err := loadConfig(path)
	if err != nil {
		t.Fatalf("loadConfig() failed: %v", err)
	}

	want := &config{
		SPI:         "SPI0.0",
		Background:  "black",
		Image:       "/var/lib/epdclock/photo.jpg",
		FullRefresh: "0 * * * *",
		TimeRefresh: "*/5 * * * *",
	}
	if diff := cmp.Diff(got, want); diff != "" {
		t.Errorf("loadConfig() difference (-got +want):\n%s", diff)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	if _, err := loadConfig(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Errorf("loadConfig() = nil error for a missing file")
	}
}

func TestTimeBoxAlignment(t *testing.T) {
	if timeBox.Min.X%8 != 0 || timeBox.Max.X%8 != 0 {
		t.Errorf("timeBox X coordinates %d..%d are not byte aligned", timeBox.Min.X, timeBox.Max.X)
	}
}
