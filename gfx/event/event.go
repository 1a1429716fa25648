// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package event defines the window and input events delivered by a window
// backend to the host loop.
package event

import (
	"fmt"

	"github.com/qmcloud/gamecanvas/gfx/key"
)

// Event is a single window or input event. The set of event types is closed.
type Event interface {
	isEvent()
}

// Quit is sent when the user or the system asks the window to close.
type Quit struct{}

// KeyDown is sent when a key goes down. Repeat is set for the auto-repeat
// events a platform generates while the key stays down.
type KeyDown struct {
	Key    key.Key
	Repeat bool
}

// KeyUp is sent when a key is released.
type KeyUp struct {
	Key key.Key
}

// Resize reports the new framebuffer size in pixels.
type Resize struct {
	Width, Height int
}

// MouseMove reports the cursor position in window coordinates.
type MouseMove struct {
	X, Y float64
}

// Focus reports a change of input focus.
type Focus struct {
	Focused bool
}

func (Quit) isEvent()      {}
func (KeyDown) isEvent()   {}
func (KeyUp) isEvent()     {}
func (Resize) isEvent()    {}
func (MouseMove) isEvent() {}
func (Focus) isEvent()     {}

func (Quit) String() string { return "Quit" }

func (e KeyDown) String() string {
	if e.Repeat {
		return fmt.Sprintf("KeyDown(%v, repeat)", e.Key)
	}
	return fmt.Sprintf("KeyDown(%v)", e.Key)
}

func (e KeyUp) String() string     { return fmt.Sprintf("KeyUp(%v)", e.Key) }
func (e Resize) String() string    { return fmt.Sprintf("Resize(%dx%d)", e.Width, e.Height) }
func (e MouseMove) String() string { return fmt.Sprintf("MouseMove(%g, %g)", e.X, e.Y) }
func (e Focus) String() string     { return fmt.Sprintf("Focus(%t)", e.Focused) }
