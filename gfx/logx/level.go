// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"fmt"
	"log/slog"
	"strings"
)

// LevelFatal marks conditions the reporter considers fatal. Logging at this
// level never stops the process; it only labels the record.
const LevelFatal = slog.LevelError + 4

// LevelFromFlags returns the [slog.Level] corresponding to the given user
// flag options. The flags correspond to the following values:
//   - vv: [slog.LevelDebug]
//   - v: [slog.LevelInfo]
//   - q: [slog.LevelError]
//   - (default: [slog.LevelWarn])
//
// The flags are evaluated in that order, so, for example, if both vv and q
// are specified, it will still return [slog.LevelDebug].
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return slog.LevelWarn
	}
}

// ParseLevel parses a level name as accepted by [slog.Level.UnmarshalText],
// plus "fatal". Matching is case insensitive.
func ParseLevel(s string) (slog.Level, error) {
	if strings.EqualFold(s, "fatal") {
		return LevelFatal, nil
	}
	var l slog.Level
	if err := l.UnmarshalText([]byte(s)); err != nil {
		return 0, fmt.Errorf("logx: invalid level %q: %w", s, err)
	}
	return l, nil
}

// tag returns the short bracketed label printed for a level.
func tag(l slog.Level) string {
	switch {
	case l >= LevelFatal:
		return "[FTL]"
	case l >= slog.LevelError:
		return "[ERR]"
	case l >= slog.LevelWarn:
		return "[WRN]"
	case l >= slog.LevelInfo:
		return "[INF]"
	default:
		return "[DBG]"
	}
}
