// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// State is the lifecycle state of a [Host].
type State int

const (
	// Uninitialized is the state of a new host before Run.
	Uninitialized State = iota

	// Running means the surface is open and the loop is iterating.
	Running

	// ShuttingDown is entered on a quit event or a bootstrap failure.
	ShuttingDown

	// Terminated is final; the surface has been destroyed.
	Terminated
)

func (s State) String() string {
	switch s {
	case Uninitialized:
		return "Uninitialized"
	case Running:
		return "Running"
	case ShuttingDown:
		return "ShuttingDown"
	case Terminated:
		return "Terminated"
	}
	return "State(?)"
}
