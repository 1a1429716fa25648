// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build js

package main

import "github.com/qmcloud/gamecanvas/gfx/window"

func newClearer(w window.Window) func() {
	gl := w.(*window.WebGLWindow).GL()
	gl.ClearColor(0.1, 0.1, 0.12, 1)
	return func() {
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
	}
}
