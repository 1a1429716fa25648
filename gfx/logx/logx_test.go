// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package logx

import (
	"bytes"
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFromFlags(t *testing.T) {
	assert.Equal(t, slog.LevelDebug, LevelFromFlags(true, false, false))
	assert.Equal(t, slog.LevelInfo, LevelFromFlags(false, true, true))
	assert.Equal(t, slog.LevelError, LevelFromFlags(false, false, true))
	assert.Equal(t, slog.LevelWarn, LevelFromFlags(false, false, false))
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in   string
		want slog.Level
	}{
		{"debug", slog.LevelDebug},
		{"INFO", slog.LevelInfo},
		{"warn", slog.LevelWarn},
		{"error", slog.LevelError},
		{"Fatal", LevelFatal},
	}
	for _, tt := range tests {
		got, err := ParseLevel(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := ParseLevel("loud")
	assert.Error(t, err)
}

func TestTag(t *testing.T) {
	assert.Equal(t, "[DBG]", tag(slog.LevelDebug))
	assert.Equal(t, "[INF]", tag(slog.LevelInfo))
	assert.Equal(t, "[WRN]", tag(slog.LevelWarn))
	assert.Equal(t, "[ERR]", tag(slog.LevelError))
	assert.Equal(t, "[FTL]", tag(LevelFatal))
}

var lineRE = regexp.MustCompile(`^\[\d{2}/\d{2}/\d{4} \d{2}:\d{2}:\d{2}\] \[WRN\] \[logx_test\.go\(TestHandlerLine @ \d+\)\] driver message source=API type=U\.B\. id=7\n$`)

func TestHandlerLine(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &HandlerOptions{Level: slog.LevelDebug, NoColor: true}))

	log.Warn("driver message", "source", "API", "type", "U.B.", "id", 7)
	assert.Regexp(t, lineRE, buf.String())
}

func TestHandlerTimestamp(t *testing.T) {
	var buf bytes.Buffer
	h := NewHandler(&buf, &HandlerOptions{NoColor: true})

	r := slog.NewRecord(time.Date(2017, 12, 12, 23, 45, 0, 0, time.UTC), LevelFatal, "Test error!", 0)
	require.NoError(t, h.Handle(context.Background(), r))
	assert.Equal(t, "[12/12/2017 23:45:00] [FTL] Test error!\n", buf.String())
}

func TestHandlerLevel(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &HandlerOptions{Level: slog.LevelWarn, NoColor: true}))

	log.Info("hidden")
	log.Debug("hidden")
	assert.Empty(t, buf.String())

	log.Error("shown")
	assert.Contains(t, buf.String(), "[ERR]")
}

func TestHandlerAttrsAndGroups(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(NewHandler(&buf, &HandlerOptions{NoColor: true}))

	log.With("window", "Game Canvas").WithGroup("gl").Info("context", "major", 4, "minor", 3)
	out := buf.String()
	assert.True(t, strings.HasSuffix(out, ` context window="Game Canvas" gl.major=4 gl.minor=3`+"\n"), out)
}

func TestNop(t *testing.T) {
	log := Nop()
	assert.False(t, log.Enabled(context.Background(), LevelFatal))
	log.Error("dropped")
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "canvas.log")
	log, c, err := OpenFile(path, slog.LevelInfo)
	require.NoError(t, err)

	log.Info("640x480")
	require.NoError(t, c.Close())

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "[INF]")
	assert.Contains(t, string(data), "640x480")
	assert.NotContains(t, string(data), "\x1b[")
}
