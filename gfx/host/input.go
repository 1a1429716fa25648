// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import "github.com/qmcloud/gamecanvas/gfx/key"

// KeyState is the per-frame state of a single key.
type KeyState struct {
	// Pressed is true only in the frame the key went down.
	Pressed bool

	// Released is true only in the frame the key went up.
	Released bool

	// Held is true from the frame the key went down until the frame it
	// went up.
	Held bool
}

// Keyboard tracks key states across frames. Entries are created on first
// reference, by an event or a query, and are never removed.
type Keyboard struct {
	keys map[key.Key]*KeyState
}

// NewKeyboard returns an empty keyboard table.
func NewKeyboard() *Keyboard {
	return &Keyboard{keys: make(map[key.Key]*KeyState)}
}

func (kb *Keyboard) state(k key.Key) *KeyState {
	s, ok := kb.keys[k]
	if !ok {
		s = &KeyState{}
		kb.keys[k] = s
	}
	return s
}

// ResetEdges clears Pressed and Released for every known key. It is called
// at the start of each frame before events are drained.
func (kb *Keyboard) ResetEdges() {
	for _, s := range kb.keys {
		s.Pressed = false
		s.Released = false
	}
}

// Down records a key-down transition.
func (kb *Keyboard) Down(k key.Key) {
	s := kb.state(k)
	s.Pressed = true
	s.Held = true
}

// Up records a key-up transition.
func (kb *Keyboard) Up(k key.Key) {
	s := kb.state(k)
	s.Released = true
	s.Held = false
}

// State returns a copy of the current state of k.
func (kb *Keyboard) State(k key.Key) KeyState {
	return *kb.state(k)
}

func (kb *Keyboard) IsPressed(k key.Key) bool  { return kb.state(k).Pressed }
func (kb *Keyboard) IsReleased(k key.Key) bool { return kb.state(k).Released }
func (kb *Keyboard) IsHeld(k key.Key) bool     { return kb.state(k).Held }

// Len returns the number of keys seen so far.
func (kb *Keyboard) Len() int {
	return len(kb.keys)
}
