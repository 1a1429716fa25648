// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !sdl && !js

package window

import (
	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

const (
	glfwClientAPI           = glfw.OpenGLAPI
	glfwContextVersionMajor = 4
	glfwContextVersionMinor = 3
)

// glfwHints requests the context and framebuffer described by Attributes.
func glfwHints() {
	glfw.DefaultWindowHints()
	glfw.WindowHint(glfw.ClientAPI, glfwClientAPI)
	glfw.WindowHint(glfw.ContextVersionMajor, glfwContextVersionMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, glfwContextVersionMinor)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.OpenGLDebugContext, glfwBool(Attributes.Debug))
	glfw.WindowHint(glfw.DoubleBuffer, glfwBool(Attributes.DoubleBuffer))

	glfw.WindowHint(glfw.RedBits, Attributes.RedBits)
	glfw.WindowHint(glfw.GreenBits, Attributes.GreenBits)
	glfw.WindowHint(glfw.BlueBits, Attributes.BlueBits)
	glfw.WindowHint(glfw.AlphaBits, Attributes.AlphaBits)
	glfw.WindowHint(glfw.DepthBits, Attributes.DepthBits)
	glfw.WindowHint(glfw.StencilBits, Attributes.StencilBits)
}

func glfwBool(b bool) int {
	if b {
		return glfw.True
	}
	return glfw.False
}

// glfwLoadGL resolves GL entry points through GLFW's current context.
func glfwLoadGL() error {
	return gl.Init()
}
