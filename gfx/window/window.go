// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package window opens a window with an OpenGL 4.3 core debug context and
// delivers its input as events.
//
// The default backend uses GLFW. Building with the "sdl" tag selects SDL2
// instead, and GOOS=js builds render into a WebGL canvas.
package window

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/logx"
)

// Window is an open window with a current GL context.
type Window interface {
	// Events returns the events queued since the previous call without
	// blocking for new ones.
	Events() iter.Seq[event.Event]

	// Present swaps the back buffer to the screen.
	Present()

	// Destroy releases the context, the window and the platform. It is
	// safe to call more than once.
	Destroy()

	// Seconds returns the platform clock in seconds.
	Seconds() float64
}

// Config describes the window to open.
type Config struct {
	Title  string
	Width  int
	Height int
}

func orNop(log *slog.Logger) *slog.Logger {
	if log == nil {
		return logx.Nop()
	}
	return log
}

func (c Config) validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidSize, c.Width, c.Height)
	}
	return nil
}

// Attributes is the fixed framebuffer and context policy every backend
// requests.
var Attributes = struct {
	RedBits, GreenBits, BlueBits, AlphaBits int
	DepthBits, StencilBits                  int
	DoubleBuffer                            bool
	Debug                                   bool
	Major, Minor                            int
}{
	RedBits: 8, GreenBits: 8, BlueBits: 8, AlphaBits: 8,
	DepthBits:    24,
	StencilBits:  8,
	DoubleBuffer: true,
	Debug:        true,
	Major:        4,
	Minor:        3,
}

var (
	ErrInvalidSize    = errors.New("window: invalid size")
	ErrPlatformInit   = errors.New("window: platform initialization failed")
	ErrCreateWindow   = errors.New("window: window creation failed")
	ErrCreateContext  = errors.New("window: context creation failed")
	ErrLoadFunctions  = errors.New("window: loading GL functions failed")
	errAlreadyStarted = errors.New("window: a window is already open")
)

// BootstrapError reports the stage at which Open failed together with the
// platform's diagnostic.
type BootstrapError struct {
	Stage error // one of the Err* stage sentinels
	Err   error // platform diagnostic
}

func (e *BootstrapError) Error() string {
	return e.Stage.Error() + ": " + e.Err.Error()
}

func (e *BootstrapError) Is(target error) bool {
	return target == e.Stage
}

func (e *BootstrapError) Unwrap() error {
	return e.Err
}

func bootstrapError(stage, err error) error {
	if err == nil {
		err = errors.New("unknown error")
	}
	return &BootstrapError{Stage: stage, Err: err}
}
