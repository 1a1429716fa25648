// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package window

import (
	"errors"
	"iter"
	"log/slog"
	"sync"

	"github.com/gopherjs/gopherjs/js"
	"github.com/gopherjs/webgl"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/key"
)

var started bool

// WebGLWindow is a canvas element with a WebGL context. Browsers provide no
// debug output callback, so driver messages are not forwarded.
type WebGLWindow struct {
	canvas  *js.Object
	gl      *webgl.Context
	log     *slog.Logger
	queue   event.Queue
	frame   chan struct{}
	closed  bool
	destroy sync.Once
}

// Open creates a canvas of the configured size in the document body and a
// WebGL context on it.
func Open(cfg Config, log *slog.Logger) (Window, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	log = orNop(log)
	if started {
		return nil, errAlreadyStarted
	}
	doc := js.Global.Get("document")
	if doc == js.Undefined || doc.Get("body") == nil {
		return nil, bootstrapError(ErrPlatformInit, errors.New("no document body"))
	}
	started = true

	canvas := doc.Call("createElement", "canvas")
	if canvas == nil || canvas == js.Undefined {
		started = false
		return nil, bootstrapError(ErrCreateWindow, errors.New("cannot create canvas element"))
	}
	canvas.Set("width", cfg.Width)
	canvas.Set("height", cfg.Height)
	canvas.Set("title", cfg.Title)
	doc.Set("title", cfg.Title)
	doc.Get("body").Call("appendChild", canvas)

	attrs := webgl.DefaultAttributes()
	attrs.Alpha = Attributes.AlphaBits > 0
	attrs.Depth = Attributes.DepthBits > 0
	attrs.Stencil = Attributes.StencilBits > 0
	attrs.PreserveDrawingBuffer = !Attributes.DoubleBuffer
	ctx, err := webgl.NewContext(canvas, attrs)
	if err != nil {
		doc.Get("body").Call("removeChild", canvas)
		started = false
		return nil, bootstrapError(ErrCreateContext, err)
	}

	w := &WebGLWindow{
		canvas: canvas,
		gl:     ctx,
		log:    log,
		frame:  make(chan struct{}, 1),
	}
	doc.Call("addEventListener", "keydown", w.keyDown, false)
	doc.Call("addEventListener", "keyup", w.keyUp, false)
	canvas.Call("addEventListener", "mousemove", w.mouseMove, false)
	js.Global.Call("addEventListener", "resize", w.resized, false)
	js.Global.Call("addEventListener", "focus", func() { w.push(event.Focus{Focused: true}) }, false)
	js.Global.Call("addEventListener", "blur", func() { w.push(event.Focus{Focused: false}) }, false)
	js.Global.Call("addEventListener", "pagehide", func() { w.push(event.Quit{}) }, false)
	log.Info("WebGL context", "version", ctx.GetParameter(ctx.VERSION).String())
	return w, nil
}

// GL returns the WebGL context.
func (w *WebGLWindow) GL() *webgl.Context {
	return w.gl
}

func (w *WebGLWindow) push(ev event.Event) {
	if !w.closed {
		w.queue.Push(ev)
	}
}

func (w *WebGLWindow) keyDown(ev *js.Object) {
	w.push(event.KeyDown{Key: domKey(ev.Get("keyCode").Int()), Repeat: ev.Get("repeat").Bool()})
}

func (w *WebGLWindow) keyUp(ev *js.Object) {
	w.push(event.KeyUp{Key: domKey(ev.Get("keyCode").Int())})
}

func (w *WebGLWindow) mouseMove(ev *js.Object) {
	w.push(event.MouseMove{X: ev.Get("offsetX").Float(), Y: ev.Get("offsetY").Float()})
}

func (w *WebGLWindow) resized() {
	w.push(event.Resize{Width: w.canvas.Get("width").Int(), Height: w.canvas.Get("height").Int()})
}

// Events waits for the next animation frame, so the browser gets a chance
// to deliver input, and then drains the queued events.
func (w *WebGLWindow) Events() iter.Seq[event.Event] {
	js.Global.Call("requestAnimationFrame", func() {
		select {
		case w.frame <- struct{}{}:
		default:
		}
	})
	<-w.frame
	return w.queue.Drain()
}

// Present is a no-op; the browser composites the canvas after each frame.
func (w *WebGLWindow) Present() {}

func (w *WebGLWindow) Seconds() float64 {
	return js.Global.Get("performance").Call("now").Float() / 1000
}

func (w *WebGLWindow) Destroy() {
	w.destroy.Do(func() {
		w.closed = true
		if parent := w.canvas.Get("parentNode"); parent != nil {
			parent.Call("removeChild", w.canvas)
		}
		started = false
		w.log.Debug("canvas destroyed")
	})
}

// domKeys maps DOM keyCode values that differ from key.Key values.
var domKeys = map[int]key.Key{
	8:   key.Backspace,
	9:   key.Tab,
	13:  key.Enter,
	16:  key.LeftShift,
	17:  key.LeftControl,
	18:  key.LeftAlt,
	19:  key.Pause,
	20:  key.CapsLock,
	27:  key.Escape,
	33:  key.PageUp,
	34:  key.PageDown,
	35:  key.End,
	36:  key.Home,
	37:  key.Left,
	38:  key.Up,
	39:  key.Right,
	40:  key.Down,
	44:  key.PrintScreen,
	45:  key.Insert,
	46:  key.Delete,
	91:  key.LeftSuper,
	93:  key.Menu,
	144: key.NumLock,
	145: key.ScrollLock,
	186: key.Semicolon,
	187: key.Equal,
	188: key.Comma,
	189: key.Minus,
	190: key.Period,
	191: key.Slash,
	192: key.GraveAccent,
	219: key.LeftBracket,
	220: key.Backslash,
	221: key.RightBracket,
	222: key.Apostrophe,
}

// domKey translates a DOM keyCode. Letters, digits and space share their
// value with key.Key.
func domKey(code int) key.Key {
	if k, ok := domKeys[code]; ok {
		return k
	}
	switch k := key.Key(code); {
	case k == key.Space, k >= key.A && k <= key.Z, k >= key.Num0 && k <= key.Num9:
		return k
	case code >= 112 && code <= 123:
		return key.F1 + key.Key(code-112)
	}
	return key.Unknown
}
