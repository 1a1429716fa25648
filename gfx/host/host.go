// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package host runs an application on a window surface with a fixed-timestep
// update loop.
//
// Each iteration of the loop measures the elapsed time, resets the
// edge-triggered key states, drains the surface's pending events, runs as
// many fixed updates as the accumulated time allows and, if at least one
// update ran, draws once and presents the frame. The loop ends after the
// iteration in which a quit event was seen.
package host

import (
	"errors"
	"fmt"
	"iter"
	"log/slog"
	"time"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/key"
	"github.com/qmcloud/gamecanvas/gfx/logx"
)

// App is the set of callbacks the host drives.
type App interface {
	// OnSetup is called once, after the surface is open and before the
	// first iteration.
	OnSetup(h *Host)

	// OnUpdate is called zero or more times per iteration, always with
	// dt equal to Step.
	OnUpdate(h *Host, dt float32)

	// OnDraw is called at most once per iteration, and only if OnUpdate
	// ran in that iteration.
	OnDraw(h *Host)
}

// AppFuncs adapts plain functions to [App]. Nil fields are skipped.
type AppFuncs struct {
	Setup  func(h *Host)
	Update func(h *Host, dt float32)
	Draw   func(h *Host)
}

func (a AppFuncs) OnSetup(h *Host) {
	if a.Setup != nil {
		a.Setup(h)
	}
}

func (a AppFuncs) OnUpdate(h *Host, dt float32) {
	if a.Update != nil {
		a.Update(h, dt)
	}
}

func (a AppFuncs) OnDraw(h *Host) {
	if a.Draw != nil {
		a.Draw(h)
	}
}

// Surface is an open drawing surface with its event source.
type Surface interface {
	// Events returns the events queued since the previous call. The
	// sequence is finite and does not block waiting for new input.
	Events() iter.Seq[event.Event]

	// Present shows the frame drawn since the previous Present.
	Present()

	// Destroy releases the surface. Calls after the first do nothing.
	Destroy()
}

// Clock reports a monotonic time in seconds. Surfaces that implement Clock
// are used as the host's time source unless one is given with WithClock.
type Clock interface {
	Seconds() float64
}

// Opener opens the surface the host runs on.
type Opener func(title string, width, height int, log *slog.Logger) (Surface, error)

// ErrNoOpener is returned by Run when the host has no Opener.
var ErrNoOpener = errors.New("host: no surface opener")

// ErrAlreadyRun is returned by Run on a host that has already run.
var ErrAlreadyRun = errors.New("host: already run")

// BootstrapError reports that the surface could not be opened. No
// application callback has run when it is returned.
type BootstrapError struct {
	Err error
}

func (e *BootstrapError) Error() string { return "host: bootstrap failed: " + e.Err.Error() }
func (e *BootstrapError) Unwrap() error { return e.Err }

// ExitCode maps the result of [Host.Run] to a process exit code: 0 for a
// normal shutdown and -1 otherwise.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	return -1
}

// DefaultTitle is the window title used when none is configured.
const DefaultTitle = "Game Canvas"

// Option configures a [Host].
type Option func(h *Host)

// WithLogger sets the logger. The default discards everything.
func WithLogger(log *slog.Logger) Option {
	return func(h *Host) {
		if log != nil {
			h.log = log
		}
	}
}

// WithClock sets the time source used by the scheduler.
func WithClock(c Clock) Option {
	return func(h *Host) { h.clock = c }
}

// WithOpener sets the function that opens the surface.
func WithOpener(o Opener) Option {
	return func(h *Host) { h.open = o }
}

// WithTitle sets the window title.
func WithTitle(title string) Option {
	return func(h *Host) { h.title = title }
}

// WithMaxCatchUp bounds the number of updates that may run in a single
// iteration after a stall. Zero, the default, means unbounded.
func WithMaxCatchUp(n int) Option {
	return func(h *Host) { h.maxCatchUp = n }
}

// Host owns the loop, the keyboard snapshot and the surface.
type Host struct {
	app           App
	width, height int
	title         string
	log           *slog.Logger
	clock         Clock
	open          Opener
	maxCatchUp    int

	state    State
	surface  Surface
	keyboard *Keyboard
	sched    *Scheduler
	running  bool
}

// New returns a host that will run app on a width x height surface. The
// size is expected to be positive.
func New(app App, width, height int, opts ...Option) *Host {
	h := &Host{
		app:      app,
		width:    width,
		height:   height,
		title:    DefaultTitle,
		log:      logx.Nop(),
		keyboard: NewKeyboard(),
	}
	for _, o := range opts {
		o(h)
	}
	h.sched = NewScheduler(h.maxCatchUp)
	return h
}

func (h *Host) Width() int           { return h.width }
func (h *Host) Height() int          { return h.height }
func (h *Host) Title() string        { return h.title }
func (h *Host) State() State         { return h.state }
func (h *Host) Logger() *slog.Logger { return h.log }

// IsPressed reports whether k went down in the current frame.
func (h *Host) IsPressed(k key.Key) bool { return h.keyboard.IsPressed(k) }

// IsReleased reports whether k went up in the current frame.
func (h *Host) IsReleased(k key.Key) bool { return h.keyboard.IsReleased(k) }

// IsHeld reports whether k is down.
func (h *Host) IsHeld(k key.Key) bool { return h.keyboard.IsHeld(k) }

// Surface returns the open surface, or nil outside of Run.
func (h *Host) Surface() Surface { return h.surface }

// Run opens the surface, calls OnSetup and loops until a quit event is
// seen, then destroys the surface. It returns nil after a normal quit and a
// *BootstrapError if the surface could not be opened. A host runs once.
func (h *Host) Run() error {
	if h.state != Uninitialized {
		return ErrAlreadyRun
	}
	if err := h.bootstrap(); err != nil {
		h.state = ShuttingDown
		h.log.Error("bootstrap failed", "err", err)
		h.state = Terminated
		return err
	}
	defer h.teardown()

	h.sched.Start(h.clock.Seconds())
	h.state = Running
	h.running = true
	h.app.OnSetup(h)

	for h.running {
		h.iterate()
	}
	return nil
}

func (h *Host) bootstrap() error {
	h.log.Info(fmt.Sprintf("%dx%d", h.width, h.height))
	if h.open == nil {
		return &BootstrapError{Err: ErrNoOpener}
	}
	s, err := h.open(h.title, h.width, h.height, h.log)
	if err != nil {
		return &BootstrapError{Err: err}
	}
	if s == nil {
		return &BootstrapError{Err: errors.New("host: opener returned no surface")}
	}
	h.surface = s
	if h.clock == nil {
		if c, ok := s.(Clock); ok {
			h.clock = c
		} else {
			h.clock = newWallClock()
		}
	}
	return nil
}

// iterate runs one pass of the outer loop.
func (h *Host) iterate() {
	h.sched.Tick(h.clock.Seconds())
	h.pollEvents()
	n := h.sched.Steps(func(dt float32) {
		h.app.OnUpdate(h, dt)
	})
	if n > 0 {
		h.app.OnDraw(h)
		h.surface.Present()
	}
}

// pollEvents resets the key edges and drains the surface's queued events.
func (h *Host) pollEvents() {
	h.keyboard.ResetEdges()
	for ev := range h.surface.Events() {
		switch ev := ev.(type) {
		case event.Quit:
			if h.running {
				h.log.Debug("quit requested")
			}
			h.running = false
			h.state = ShuttingDown
		case event.KeyDown:
			if !ev.Repeat {
				h.keyboard.Down(ev.Key)
			}
		case event.KeyUp:
			h.keyboard.Up(ev.Key)
		}
	}
}

func (h *Host) teardown() {
	if h.state == Terminated {
		return
	}
	h.state = ShuttingDown
	h.surface.Destroy()
	h.surface = nil
	h.state = Terminated
	h.log.Debug("terminated")
}

// wallClock measures seconds since its creation.
type wallClock struct {
	start time.Time
}

func newWallClock() *wallClock {
	return &wallClock{start: time.Now()}
}

func (c *wallClock) Seconds() float64 {
	return time.Since(c.start).Seconds()
}
