// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

//go:build !js

package window

import (
	"context"
	"log/slog"
	"unsafe"

	"github.com/go-gl/gl/v4.3-core/gl"

	"github.com/qmcloud/gamecanvas/gfx/logx"
)

func sourceLabel(source uint32) string {
	switch source {
	case gl.DEBUG_SOURCE_API:
		return "API"
	case gl.DEBUG_SOURCE_WINDOW_SYSTEM:
		return "WINDOW SYSTEM"
	case gl.DEBUG_SOURCE_SHADER_COMPILER:
		return "SHADER COMPILER"
	case gl.DEBUG_SOURCE_APPLICATION:
		return "APPLICATION"
	default:
		return "OTHER"
	}
}

func typeLabel(typ uint32) string {
	switch typ {
	case gl.DEBUG_TYPE_ERROR:
		return "ERROR"
	case gl.DEBUG_TYPE_DEPRECATED_BEHAVIOR:
		return "DEPRECATED"
	case gl.DEBUG_TYPE_UNDEFINED_BEHAVIOR:
		return "U.B."
	case gl.DEBUG_TYPE_PERFORMANCE:
		return "PERFORMANCE"
	default:
		return "OTHER"
	}
}

// severityLevel maps a driver severity to a log level. High severity is
// logged as fatal but does not stop anything.
func severityLevel(severity uint32) slog.Level {
	switch severity {
	case gl.DEBUG_SEVERITY_LOW:
		return slog.LevelWarn
	case gl.DEBUG_SEVERITY_MEDIUM:
		return slog.LevelError
	case gl.DEBUG_SEVERITY_HIGH:
		return logx.LevelFatal
	default:
		return slog.LevelInfo
	}
}

// debugHandler returns the callback that forwards driver messages to log.
func debugHandler(log *slog.Logger) gl.DebugProc {
	return func(source, typ, id, severity uint32, length int32, message string, userParam unsafe.Pointer) {
		log.Log(context.Background(), severityLevel(severity), "OpenGL: "+message,
			"source", sourceLabel(source), "type", typeLabel(typ), "id", id)
	}
}

// loadGL resolves the GL function table for the current context and routes
// synchronous debug output to log.
func loadGL(log *slog.Logger, init func() error) error {
	if err := init(); err != nil {
		return bootstrapError(ErrLoadFunctions, err)
	}
	log.Info("OpenGL context",
		"version", gl.GoStr(gl.GetString(gl.VERSION)),
		"renderer", gl.GoStr(gl.GetString(gl.RENDERER)))

	gl.Enable(gl.DEBUG_OUTPUT)
	gl.Enable(gl.DEBUG_OUTPUT_SYNCHRONOUS)
	gl.DebugMessageCallback(debugHandler(log), nil)
	return nil
}
