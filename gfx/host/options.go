// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/qmcloud/gamecanvas/gfx/logx"
)

// Options is the user facing configuration of a host, as stored in a TOML
// settings file:
//
//	title = "Game Canvas"
//	width = 640
//	height = 480
//	max_catch_up = 0
//	log_level = "info"
//	log_file = ""
type Options struct {
	Title      string `toml:"title"`
	Width      int    `toml:"width"`
	Height     int    `toml:"height"`
	MaxCatchUp int    `toml:"max_catch_up"`
	LogLevel   string `toml:"log_level"`

	// LogFile, if set, sends log output to this file instead of stderr.
	LogFile string `toml:"log_file"`
}

// DefaultOptions returns the options used when no settings file is given.
func DefaultOptions() Options {
	return Options{
		Title:    DefaultTitle,
		Width:    640,
		Height:   480,
		LogLevel: "info",
	}
}

// LoadOptions reads a TOML settings file. Keys missing from the file keep
// their default values.
func LoadOptions(path string) (Options, error) {
	o := DefaultOptions()
	data, err := os.ReadFile(path)
	if err != nil {
		return o, fmt.Errorf("host: read options: %w", err)
	}
	if err := toml.Unmarshal(data, &o); err != nil {
		return o, fmt.Errorf("host: parse options %s: %w", path, err)
	}
	return o, o.Validate()
}

// Validate checks the options for values the host cannot run with.
func (o Options) Validate() error {
	var errs []error
	if o.Width <= 0 || o.Height <= 0 {
		errs = append(errs, fmt.Errorf("host: invalid size %dx%d", o.Width, o.Height))
	}
	if o.MaxCatchUp < 0 {
		errs = append(errs, fmt.Errorf("host: negative max_catch_up %d", o.MaxCatchUp))
	}
	if _, err := logx.ParseLevel(o.LogLevel); err != nil {
		errs = append(errs, err)
	}
	return errors.Join(errs...)
}

// HostOptions returns the host options corresponding to o.
func (o Options) HostOptions() []Option {
	return []Option{
		WithTitle(o.Title),
		WithMaxCatchUp(o.MaxCatchUp),
	}
}
