// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build sdl && !js

package window

import (
	"iter"
	"log/slog"
	"runtime"
	"sync"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/veandco/go-sdl2/sdl"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/key"
)

func init() {
	runtime.LockOSThread()
}

var started bool

type sdlWindow struct {
	win     *sdl.Window
	ctx     sdl.GLContext
	log     *slog.Logger
	destroy sync.Once
}

// Open initializes SDL, opens a window with a current OpenGL 4.3 core debug
// context and installs the debug message callback. Driver messages are
// written to log.
func Open(cfg Config, log *slog.Logger) (Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log = orNop(log)
	if started {
		return nil, errAlreadyStarted
	}
	if err := sdl.Init(sdl.INIT_EVERYTHING); err != nil {
		return nil, bootstrapError(ErrPlatformInit, err)
	}
	started = true

	if err := sdlAttributes(); err != nil {
		quitSDL()
		return nil, bootstrapError(ErrPlatformInit, err)
	}
	win, err := sdl.CreateWindow(cfg.Title,
		int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED),
		int32(cfg.Width), int32(cfg.Height),
		uint32(sdl.WINDOW_SHOWN|sdl.WINDOW_OPENGL))
	if err != nil {
		quitSDL()
		return nil, bootstrapError(ErrCreateWindow, err)
	}
	w := &sdlWindow{win: win, log: log}

	w.ctx, err = win.GLCreateContext()
	if err != nil {
		w.Destroy()
		return nil, bootstrapError(ErrCreateContext, err)
	}
	if err := loadGL(log, func() error { return gl.InitWithProcAddrFunc(sdl.GLGetProcAddress) }); err != nil {
		w.Destroy()
		return nil, err
	}
	return w, nil
}

// sdlAttributes requests the context and framebuffer described by
// Attributes. It must run before the window is created: SDL picks the
// pixel format of an OpenGL window when it is created.
func sdlAttributes() error {
	flags, err := sdl.GLGetAttribute(sdl.GL_CONTEXT_FLAGS)
	if err != nil {
		return err
	}
	if Attributes.Debug {
		flags |= sdl.GL_CONTEXT_DEBUG_FLAG
	}
	doubleBuffer := 0
	if Attributes.DoubleBuffer {
		doubleBuffer = 1
	}
	attrs := []struct {
		attr  sdl.GLattr
		value int
	}{
		{sdl.GL_CONTEXT_PROFILE_MASK, sdl.GL_CONTEXT_PROFILE_CORE},
		{sdl.GL_CONTEXT_MAJOR_VERSION, Attributes.Major},
		{sdl.GL_CONTEXT_MINOR_VERSION, Attributes.Minor},
		{sdl.GL_DOUBLEBUFFER, doubleBuffer},
		{sdl.GL_RED_SIZE, Attributes.RedBits},
		{sdl.GL_GREEN_SIZE, Attributes.GreenBits},
		{sdl.GL_BLUE_SIZE, Attributes.BlueBits},
		{sdl.GL_ALPHA_SIZE, Attributes.AlphaBits},
		{sdl.GL_STENCIL_SIZE, Attributes.StencilBits},
		{sdl.GL_DEPTH_SIZE, Attributes.DepthBits},
		{sdl.GL_CONTEXT_FLAGS, flags},
	}
	for _, a := range attrs {
		if err := sdl.GLSetAttribute(a.attr, a.value); err != nil {
			return err
		}
	}
	return nil
}

func quitSDL() {
	sdl.Quit()
	started = false
}

func (w *sdlWindow) Events() iter.Seq[event.Event] {
	return func(yield func(event.Event) bool) {
		for e := sdl.PollEvent(); e != nil; e = sdl.PollEvent() {
			ev, ok := sdlEvent(e)
			if !ok {
				continue
			}
			if !yield(ev) {
				return
			}
		}
	}
}

func sdlEvent(e sdl.Event) (event.Event, bool) {
	switch e := e.(type) {
	case *sdl.QuitEvent:
		return event.Quit{}, true
	case *sdl.KeyboardEvent:
		k := sdlKey(e.Keysym.Sym)
		if e.Type == sdl.KEYDOWN {
			return event.KeyDown{Key: k, Repeat: e.Repeat != 0}, true
		}
		return event.KeyUp{Key: k}, true
	case *sdl.MouseMotionEvent:
		return event.MouseMove{X: float64(e.X), Y: float64(e.Y)}, true
	case *sdl.WindowEvent:
		switch e.Event {
		case sdl.WINDOWEVENT_SIZE_CHANGED:
			return event.Resize{Width: int(e.Data1), Height: int(e.Data2)}, true
		case sdl.WINDOWEVENT_FOCUS_GAINED:
			return event.Focus{Focused: true}, true
		case sdl.WINDOWEVENT_FOCUS_LOST:
			return event.Focus{Focused: false}, true
		}
	}
	return nil, false
}

func (w *sdlWindow) Present() {
	w.win.GLSwap()
}

func (w *sdlWindow) Seconds() float64 {
	return float64(sdl.GetTicks64()) / 1000
}

func (w *sdlWindow) Destroy() {
	w.destroy.Do(func() {
		if w.ctx != nil {
			sdl.GLDeleteContext(w.ctx)
		}
		if err := w.win.Destroy(); err != nil {
			w.log.Warn("destroy window", "err", err)
		}
		quitSDL()
		w.log.Debug("window destroyed")
	})
}

var sdlKeys = map[sdl.Keycode]key.Key{
	sdl.K_ESCAPE:       key.Escape,
	sdl.K_RETURN:       key.Enter,
	sdl.K_TAB:          key.Tab,
	sdl.K_BACKSPACE:    key.Backspace,
	sdl.K_INSERT:       key.Insert,
	sdl.K_DELETE:       key.Delete,
	sdl.K_RIGHT:        key.Right,
	sdl.K_LEFT:         key.Left,
	sdl.K_DOWN:         key.Down,
	sdl.K_UP:           key.Up,
	sdl.K_PAGEUP:       key.PageUp,
	sdl.K_PAGEDOWN:     key.PageDown,
	sdl.K_HOME:         key.Home,
	sdl.K_END:          key.End,
	sdl.K_CAPSLOCK:     key.CapsLock,
	sdl.K_SCROLLLOCK:   key.ScrollLock,
	sdl.K_NUMLOCKCLEAR: key.NumLock,
	sdl.K_PRINTSCREEN:  key.PrintScreen,
	sdl.K_PAUSE:        key.Pause,
	sdl.K_F1:           key.F1,
	sdl.K_F2:           key.F2,
	sdl.K_F3:           key.F3,
	sdl.K_F4:           key.F4,
	sdl.K_F5:           key.F5,
	sdl.K_F6:           key.F6,
	sdl.K_F7:           key.F7,
	sdl.K_F8:           key.F8,
	sdl.K_F9:           key.F9,
	sdl.K_F10:          key.F10,
	sdl.K_F11:          key.F11,
	sdl.K_F12:          key.F12,
	sdl.K_LSHIFT:       key.LeftShift,
	sdl.K_LCTRL:        key.LeftControl,
	sdl.K_LALT:         key.LeftAlt,
	sdl.K_LGUI:         key.LeftSuper,
	sdl.K_RSHIFT:       key.RightShift,
	sdl.K_RCTRL:        key.RightControl,
	sdl.K_RALT:         key.RightAlt,
	sdl.K_RGUI:         key.RightSuper,
	sdl.K_MENU:         key.Menu,
}

// sdlKey translates an SDL keycode. Printable keys share their ASCII value
// with key.Key, except that letters are upper case.
func sdlKey(sym sdl.Keycode) key.Key {
	switch {
	case sym >= 'a' && sym <= 'z':
		return key.Key(sym - 'a' + 'A')
	case sym >= ' ' && sym <= '`':
		if k := key.Key(sym); k.Printable() {
			return k
		}
		return key.Unknown
	}
	if k, ok := sdlKeys[sym]; ok {
		return k
	}
	return key.Unknown
}
