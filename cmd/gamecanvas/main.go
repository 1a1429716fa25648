// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command gamecanvas opens a window and runs an empty application on the
// fixed-timestep host: it clears the screen every frame and exits when the
// window is closed.
//
// Usage:
//
//	gamecanvas [-c settings.toml] [--width N] [--height N] [--title T] [-v|-vv|-q]
//
// The process exits with status 0 after a normal close and a negative status
// (255 on Unix) when the window or its GL context could not be created.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/qmcloud/gamecanvas/gfx/host"
	"github.com/qmcloud/gamecanvas/gfx/key"
	"github.com/qmcloud/gamecanvas/gfx/logx"
	"github.com/qmcloud/gamecanvas/gfx/window"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

func run(args []string, stderr io.Writer) int {
	opts, level, err := parseArgs(args)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	log := logx.New(stderr, level)
	if opts.LogFile != "" {
		fl, c, err := logx.OpenFile(opts.LogFile, level)
		if err != nil {
			fmt.Fprintln(stderr, err)
			return 2
		}
		defer c.Close()
		log = fl
	}

	var win window.Window
	opener := func(title string, width, height int, log *slog.Logger) (host.Surface, error) {
		w, err := window.Open(window.Config{Title: title, Width: width, Height: height}, log)
		if err != nil {
			return nil, err
		}
		win = w
		return w, nil
	}

	var clearScreen func()
	app := host.AppFuncs{
		Setup: func(h *host.Host) {
			clearScreen = newClearer(win)
		},
		Update: func(h *host.Host, dt float32) {
			if h.IsPressed(key.F1) {
				h.Logger().Info("frame", "width", h.Width(), "height", h.Height())
			}
		},
		Draw: func(h *host.Host) {
			clearScreen()
		},
	}

	hopts := append(opts.HostOptions(), host.WithLogger(log), host.WithOpener(opener))
	h := host.New(app, opts.Width, opts.Height, hopts...)
	return host.ExitCode(h.Run())
}

// parseArgs loads the settings file, if any, and applies command line
// overrides on top of it.
func parseArgs(args []string) (host.Options, slog.Level, error) {
	fs := pflag.NewFlagSet("gamecanvas", pflag.ContinueOnError)
	config := fs.StringP("config", "c", "", "TOML settings `file`")
	title := fs.String("title", "", "window title")
	width := fs.Int("width", 0, "window width in pixels")
	height := fs.Int("height", 0, "window height in pixels")
	maxCatchUp := fs.Int("max-catch-up", 0, "maximum updates per frame after a stall (0 = unbounded)")
	logFile := fs.String("log-file", "", "write the log to `file` instead of stderr")
	vv := fs.Bool("vv", false, "debug logging, same as -vv")
	v := fs.CountP("verbose", "v", "info logging; repeat (-vv) for debug logging")
	q := fs.BoolP("quiet", "q", false, "only log errors")
	if err := fs.Parse(args); err != nil {
		return host.Options{}, 0, err
	}

	opts := host.DefaultOptions()
	if *config != "" {
		var err error
		if opts, err = host.LoadOptions(*config); err != nil {
			return opts, 0, err
		}
	}
	if fs.Changed("title") {
		opts.Title = *title
	}
	if fs.Changed("width") {
		opts.Width = *width
	}
	if fs.Changed("height") {
		opts.Height = *height
	}
	if fs.Changed("max-catch-up") {
		opts.MaxCatchUp = *maxCatchUp
	}
	if fs.Changed("log-file") {
		opts.LogFile = *logFile
	}
	if err := opts.Validate(); err != nil {
		return opts, 0, err
	}

	level, err := logx.ParseLevel(opts.LogLevel)
	if err != nil {
		return opts, 0, err
	}
	if *v >= 2 {
		*vv = true
	}
	if *vv || *v > 0 || *q {
		level = logx.LevelFromFlags(*vv, *v > 0, *q)
	}
	return opts, level, nil
}
