// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sdl && !js

package window

import (
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/key"
)

func init() {
	// GLFW must be driven from the main thread on most platforms.
	runtime.LockOSThread()
}

// started is set while a window owns the GLFW library.
var started bool

type glfwWindow struct {
	glw     *glfw.Window
	log     *slog.Logger
	queue   event.Queue
	quit    bool
	destroy sync.Once
}

// Open initializes GLFW, opens a window with a current OpenGL 4.3 core
// debug context and installs the debug message callback. Driver messages
// are written to log.
func Open(cfg Config, log *slog.Logger) (Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log = orNop(log)
	if started {
		return nil, errAlreadyStarted
	}
	if err := glfw.Init(); err != nil {
		return nil, bootstrapError(ErrPlatformInit, err)
	}
	started = true

	glfwHints()
	glw, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		terminateGLFW()
		return nil, bootstrapError(ErrCreateWindow, err)
	}
	w := &glfwWindow{glw: glw, log: log}

	glw.MakeContextCurrent()
	if glfw.GetCurrentContext() != glw {
		w.Destroy()
		return nil, bootstrapError(ErrCreateContext, nil)
	}
	if err := loadGL(log, glfwLoadGL); err != nil {
		w.Destroy()
		return nil, err
	}

	glw.SetCloseCallback(w.closeRequested)
	glw.SetKeyCallback(w.keyEvent)
	glw.SetFramebufferSizeCallback(w.fbResized)
	glw.SetCursorPosCallback(w.cursorPos)
	glw.SetFocusCallback(w.focused)
	return w, nil
}

func terminateGLFW() {
	glfw.Terminate()
	started = false
}

func (w *glfwWindow) Events() iter.Seq[event.Event] {
	glfw.PollEvents()
	return w.queue.Drain()
}

func (w *glfwWindow) Present() {
	w.glw.SwapBuffers()
}

func (w *glfwWindow) Seconds() float64 {
	return glfw.GetTime()
}

func (w *glfwWindow) Destroy() {
	w.destroy.Do(func() {
		glfw.DetachCurrentContext()
		w.glw.Destroy()
		terminateGLFW()
		w.log.Debug("window destroyed")
	})
}

func (w *glfwWindow) closeRequested(_ *glfw.Window) {
	if w.quit {
		return
	}
	w.quit = true
	w.queue.Push(event.Quit{})
}

func (w *glfwWindow) keyEvent(_ *glfw.Window, k glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	kk := key.Key(k)
	switch action {
	case glfw.Press:
		w.queue.Push(event.KeyDown{Key: kk})
	case glfw.Repeat:
		w.queue.Push(event.KeyDown{Key: kk, Repeat: true})
	case glfw.Release:
		w.queue.Push(event.KeyUp{Key: kk})
	}
}

func (w *glfwWindow) fbResized(_ *glfw.Window, width, height int) {
	w.queue.Push(event.Resize{Width: width, Height: height})
}

func (w *glfwWindow) cursorPos(_ *glfw.Window, x, y float64) {
	w.queue.Push(event.MouseMove{X: x, Y: y})
}

func (w *glfwWindow) focused(_ *glfw.Window, focused bool) {
	w.queue.Push(event.Focus{Focused: focused})
}
