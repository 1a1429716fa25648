// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

import (
	"errors"
	"iter"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/qmcloud/gamecanvas/gfx/event"
	"github.com/qmcloud/gamecanvas/gfx/key"
)

// fakeClock returns the scripted times in order, then repeats the last one.
type fakeClock struct {
	times []float64
	i     int
}

func (c *fakeClock) Seconds() float64 {
	if c.i < len(c.times) {
		t := c.times[c.i]
		c.i++
		return t
	}
	return c.times[len(c.times)-1]
}

// fakeSurface yields one scripted batch of events per poll and a quit once
// the script runs out.
type fakeSurface struct {
	polls    [][]event.Event
	trace    *[]string
	presents int
	destroys int
}

func (s *fakeSurface) Events() iter.Seq[event.Event] {
	var batch []event.Event
	if len(s.polls) > 0 {
		batch, s.polls = s.polls[0], s.polls[1:]
	} else {
		batch = []event.Event{event.Quit{}}
	}
	*s.trace = append(*s.trace, "poll")
	return func(yield func(event.Event) bool) {
		for _, ev := range batch {
			if !yield(ev) {
				return
			}
		}
	}
}

func (s *fakeSurface) Present() {
	s.presents++
	*s.trace = append(*s.trace, "present")
}

func (s *fakeSurface) Destroy() {
	s.destroys++
	*s.trace = append(*s.trace, "destroy")
}

// recorder is an App that traces every callback.
type recorder struct {
	trace   *[]string
	setups  int
	updates int
	draws   int
	dts     []float32
	onUpd   func(h *Host)
}

func (r *recorder) OnSetup(h *Host) {
	r.setups++
	*r.trace = append(*r.trace, "setup")
}

func (r *recorder) OnUpdate(h *Host, dt float32) {
	r.updates++
	r.dts = append(r.dts, dt)
	*r.trace = append(*r.trace, "update")
	if r.onUpd != nil {
		r.onUpd(h)
	}
}

func (r *recorder) OnDraw(h *Host) {
	r.draws++
	*r.trace = append(*r.trace, "draw")
}

type fixture struct {
	trace   []string
	app     *recorder
	surface *fakeSurface
	host    *Host
}

func newFixture(times []float64, polls [][]event.Event, opts ...Option) *fixture {
	f := &fixture{}
	f.app = &recorder{trace: &f.trace}
	f.surface = &fakeSurface{polls: polls, trace: &f.trace}
	opener := func(title string, width, height int, log *slog.Logger) (Surface, error) {
		return f.surface, nil
	}
	opts = append([]Option{WithClock(&fakeClock{times: times}), WithOpener(opener)}, opts...)
	f.host = New(f.app, 640, 480, opts...)
	return f
}

func TestRunThreeFrames(t *testing.T) {
	f := newFixture(
		[]float64{0, 0.0167, 0.0334, 0.0501},
		[][]event.Event{nil, nil, {event.Quit{}}},
	)
	require.NoError(t, f.host.Run())

	assert.Equal(t, 1, f.app.setups)
	assert.Equal(t, 3, f.app.updates)
	assert.Equal(t, 3, f.app.draws)
	assert.Equal(t, 3, f.surface.presents)
	assert.Equal(t, 1, f.surface.destroys)
	for _, dt := range f.app.dts {
		assert.Equal(t, float32(Step), dt)
	}
	assert.Equal(t, "setup poll update draw present poll update draw present poll update draw present destroy",
		strings.Join(f.trace, " "))
	assert.Equal(t, Terminated, f.host.State())
}

func TestRunLargeDeltaCatchUp(t *testing.T) {
	f := newFixture([]float64{0, 0.5}, [][]event.Event{{event.Quit{}}})
	require.NoError(t, f.host.Run())

	assert.Equal(t, 30, f.app.updates)
	assert.Equal(t, 1, f.app.draws)

	// The quit seen in the first drain still lets that iteration finish.
	want := []string{"setup", "poll"}
	for i := 0; i < 30; i++ {
		want = append(want, "update")
	}
	want = append(want, "draw", "present", "destroy")
	assert.Equal(t, want, f.trace)
}

func TestRunMaxCatchUp(t *testing.T) {
	f := newFixture([]float64{0, 0.5}, [][]event.Event{{event.Quit{}}}, WithMaxCatchUp(5))
	require.NoError(t, f.host.Run())

	assert.Equal(t, 5, f.app.updates)
	assert.Equal(t, 1, f.app.draws)
}

func TestRunNoDrawWithoutUpdate(t *testing.T) {
	f := newFixture(
		[]float64{0, 0.001, 0.002, 0.02},
		[][]event.Event{nil, nil, {event.Quit{}}},
	)
	require.NoError(t, f.host.Run())

	assert.Equal(t, "setup poll poll poll update draw present destroy", strings.Join(f.trace, " "))
}

func TestRunUpdateCountMatchesElapsedSteps(t *testing.T) {
	deltas := []float64{0.004, 0.031, 0.0101, 0.25, 0.0002, 0.07, 0.016}
	times := []float64{0}
	sum := 0.0
	polls := make([][]event.Event, len(deltas))
	for _, d := range deltas {
		sum += d
		times = append(times, sum)
	}
	polls[len(polls)-1] = []event.Event{event.Quit{}}

	f := newFixture(times, polls)
	require.NoError(t, f.host.Run())

	assert.Equal(t, int(sum/Step), f.app.updates)
	assert.Equal(t, f.app.draws, f.surface.presents)
	assert.GreaterOrEqual(t, f.host.sched.Accumulator(), 0.0)
}

func TestRunBootstrapFailure(t *testing.T) {
	var trace []string
	app := &recorder{trace: &trace}
	errWindow := errors.New("could not create window")
	h := New(app, 640, 480,
		WithClock(&fakeClock{times: []float64{0}}),
		WithOpener(func(string, int, int, *slog.Logger) (Surface, error) {
			return nil, errWindow
		}))

	err := h.Run()
	require.Error(t, err)
	var be *BootstrapError
	assert.ErrorAs(t, err, &be)
	assert.ErrorIs(t, err, errWindow)
	assert.Equal(t, -1, ExitCode(err))
	assert.Less(t, ExitCode(err), 0)

	assert.Zero(t, app.setups)
	assert.Zero(t, app.updates)
	assert.Zero(t, app.draws)
	assert.Empty(t, trace)
	assert.Equal(t, Terminated, h.State())
}

func TestRunNoOpener(t *testing.T) {
	var trace []string
	h := New(&recorder{trace: &trace}, 640, 480)
	err := h.Run()
	assert.ErrorIs(t, err, ErrNoOpener)
	assert.Empty(t, trace)
}

func TestRunTwice(t *testing.T) {
	f := newFixture([]float64{0, 0.02}, nil)
	require.NoError(t, f.host.Run())
	assert.ErrorIs(t, f.host.Run(), ErrAlreadyRun)
	assert.Equal(t, 1, f.app.setups)
	assert.Equal(t, 1, f.surface.destroys)
}

func TestRunDestroysSurfaceOnPanic(t *testing.T) {
	f := newFixture([]float64{0, 0.02}, nil)
	f.app.onUpd = func(*Host) { panic("boom") }

	assert.Panics(t, func() { _ = f.host.Run() })
	assert.Equal(t, 1, f.surface.destroys)
	assert.Equal(t, Terminated, f.host.State())
}

func TestExitCode(t *testing.T) {
	assert.Equal(t, 0, ExitCode(nil))
	assert.Equal(t, -1, ExitCode(&BootstrapError{Err: ErrNoOpener}))
}

func frameTimes(n int) []float64 {
	times := make([]float64, n+1)
	for i := range times {
		times[i] = float64(i) / 60
	}
	return times
}

func TestRunKeySnapshot(t *testing.T) {
	f := newFixture(frameTimes(6), [][]event.Event{
		{event.KeyDown{Key: key.A}},
		nil,
		{event.KeyDown{Key: key.A, Repeat: true}},
		{event.KeyUp{Key: key.A}},
		nil,
		{event.Quit{}},
	})

	var got []KeyState
	f.app.onUpd = func(h *Host) {
		got = append(got, KeyState{
			Pressed:  h.IsPressed(key.A),
			Released: h.IsReleased(key.A),
			Held:     h.IsHeld(key.A),
		})
	}
	require.NoError(t, f.host.Run())

	assert.Equal(t, []KeyState{
		{Pressed: true, Held: true},
		{Held: true},
		{Held: true},
		{Released: true},
		{},
		{},
	}, got)
}

func TestRunDownAndUpInOneFrame(t *testing.T) {
	f := newFixture(frameTimes(2), [][]event.Event{
		{event.KeyDown{Key: key.Space}, event.KeyUp{Key: key.Space}},
		{event.Quit{}},
	})

	var got []KeyState
	f.app.onUpd = func(h *Host) {
		got = append(got, h.keyboard.State(key.Space))
	}
	require.NoError(t, f.host.Run())

	assert.Equal(t, []KeyState{
		{Pressed: true, Released: true},
		{},
	}, got)
}

func TestRunIgnoresOtherEvents(t *testing.T) {
	f := newFixture(frameTimes(1), [][]event.Event{
		{event.Resize{Width: 10, Height: 10}, event.MouseMove{X: 1, Y: 2}, event.Focus{Focused: true}, event.Quit{}},
	})
	require.NoError(t, f.host.Run())
	assert.Equal(t, 1, f.app.updates)
	assert.Zero(t, f.host.keyboard.Len())
}

type clockSurface struct {
	fakeSurface
	fakeClock
}

func TestRunUsesSurfaceClock(t *testing.T) {
	var trace []string
	app := &recorder{trace: &trace}
	s := &clockSurface{
		fakeSurface: fakeSurface{trace: &trace},
		fakeClock:   fakeClock{times: []float64{10, 10.5}},
	}
	h := New(app, 640, 480, WithOpener(func(string, int, int, *slog.Logger) (Surface, error) {
		return s, nil
	}))
	require.NoError(t, h.Run())
	assert.Equal(t, 30, app.updates)
}

func TestAccessors(t *testing.T) {
	h := New(AppFuncs{}, 800, 600, WithTitle("demo"))
	assert.Equal(t, 800, h.Width())
	assert.Equal(t, 600, h.Height())
	assert.Equal(t, "demo", h.Title())
	assert.Equal(t, Uninitialized, h.State())
	assert.NotNil(t, h.Logger())
	assert.Nil(t, h.Surface())
}

func TestAppFuncs(t *testing.T) {
	var calls []string
	app := AppFuncs{
		Update: func(h *Host, dt float32) { calls = append(calls, "update") },
	}
	var trace []string
	s := &fakeSurface{trace: &trace}
	h := New(app, 640, 480,
		WithClock(&fakeClock{times: frameTimes(1)}),
		WithOpener(func(string, int, int, *slog.Logger) (Surface, error) { return s, nil }))
	require.NoError(t, h.Run())
	assert.Equal(t, []string{"update"}, calls)
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "Running", Running.String())
	assert.Equal(t, "Terminated", Terminated.String())
}
