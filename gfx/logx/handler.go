// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the console log handler used by gamecanvas: one
// timestamped, severity colored line per record.
//
//	[10/19/2026 14:02:11] [WRN] [debug.go(onDebugMessage @ 61)] OpenGL source=API type=PERFORMANCE ...
package logx

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/muesli/termenv"
)

// TimeFormat is the layout of the timestamp at the start of each line.
const TimeFormat = "01/02/2006 15:04:05"

// HandlerOptions configures a [Handler].
type HandlerOptions struct {
	// Level is the minimum level that is written. Defaults to
	// [slog.LevelInfo].
	Level slog.Leveler

	// NoColor disables ANSI styling even if the output is a terminal.
	NoColor bool
}

// Handler is a [slog.Handler] writing human readable lines.
type Handler struct {
	mu     *sync.Mutex
	w      io.Writer
	out    *termenv.Output
	level  slog.Leveler
	prefix string // preformatted attrs from WithAttrs
	group  string
}

// NewHandler returns a handler writing to w. Colors are used only when w is
// a terminal that supports them.
func NewHandler(w io.Writer, opts *HandlerOptions) *Handler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	var oo []termenv.OutputOption
	if opts.NoColor {
		oo = append(oo, termenv.WithProfile(termenv.Ascii))
	}
	h := &Handler{
		mu:    &sync.Mutex{},
		w:     w,
		out:   termenv.NewOutput(w, oo...),
		level: opts.Level,
	}
	if h.level == nil {
		h.level = slog.LevelInfo
	}
	return h
}

// New returns a logger using a [Handler] on w at the given level.
func New(w io.Writer, level slog.Leveler) *slog.Logger {
	return slog.New(NewHandler(w, &HandlerOptions{Level: level}))
}

func (h *Handler) Enabled(_ context.Context, l slog.Level) bool {
	return l >= h.level.Level()
}

func (h *Handler) Handle(_ context.Context, r slog.Record) error {
	buf := &bytes.Buffer{}

	ts := r.Time
	if ts.IsZero() {
		ts = time.Now()
	}
	buf.WriteString(h.out.String("[" + ts.Format(TimeFormat) + "] ").Foreground(termenv.ANSIGreen).Faint().String())
	buf.WriteString(h.out.String(tag(r.Level)).Foreground(levelColor(r.Level)).String())

	if r.PC != 0 {
		fs := runtime.CallersFrames([]uintptr{r.PC})
		f, _ := fs.Next()
		buf.WriteString(" [")
		buf.WriteString(filepath.Base(f.File))
		buf.WriteString("(")
		buf.WriteString(funcName(f.Function))
		buf.WriteString(" @ ")
		buf.WriteString(strconv.Itoa(f.Line))
		buf.WriteString(")]")
	}

	buf.WriteByte(' ')
	buf.WriteString(r.Message)
	buf.WriteString(h.prefix)
	r.Attrs(func(a slog.Attr) bool {
		appendAttr(buf, h.group, a)
		return true
	})
	buf.WriteByte('\n')

	h.mu.Lock()
	defer h.mu.Unlock()
	_, err := h.w.Write(buf.Bytes())
	return err
}

func (h *Handler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	h2 := *h
	buf := &bytes.Buffer{}
	buf.WriteString(h.prefix)
	for _, a := range attrs {
		appendAttr(buf, h.group, a)
	}
	h2.prefix = buf.String()
	return &h2
}

func (h *Handler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	h2 := *h
	if h2.group != "" {
		h2.group += "."
	}
	h2.group += name
	return &h2
}

func appendAttr(buf *bytes.Buffer, group string, a slog.Attr) {
	a.Value = a.Value.Resolve()
	if a.Equal(slog.Attr{}) {
		return
	}
	if a.Value.Kind() == slog.KindGroup {
		g := group
		if a.Key != "" {
			if g != "" {
				g += "."
			}
			g += a.Key
		}
		for _, ga := range a.Value.Group() {
			appendAttr(buf, g, ga)
		}
		return
	}
	buf.WriteByte(' ')
	if group != "" {
		buf.WriteString(group)
		buf.WriteByte('.')
	}
	buf.WriteString(a.Key)
	buf.WriteByte('=')
	s := a.Value.String()
	if needsQuote(s) {
		s = strconv.Quote(s)
	}
	buf.WriteString(s)
}

func needsQuote(s string) bool {
	if s == "" {
		return true
	}
	for _, c := range s {
		if c <= ' ' || c == '"' || c == '=' {
			return true
		}
	}
	return false
}

// funcName trims the package path from a fully qualified function name.
func funcName(fn string) string {
	if i := strings.LastIndexByte(fn, '/'); i >= 0 {
		fn = fn[i+1:]
	}
	if i := strings.IndexByte(fn, '.'); i >= 0 {
		fn = fn[i+1:]
	}
	return fn
}

func levelColor(l slog.Level) termenv.Color {
	switch {
	case l >= LevelFatal:
		return termenv.ANSIMagenta
	case l >= slog.LevelError:
		return termenv.ANSIRed
	case l >= slog.LevelWarn:
		return termenv.ANSIYellow
	case l >= slog.LevelInfo:
		return termenv.ANSIBlue
	default:
		return termenv.ANSICyan
	}
}
