// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package host

// Step is the fixed simulation time slice, in seconds, passed to every
// update.
const Step = 1.0 / 60.0

// stepTolerance absorbs float rounding so an accumulator that holds a whole
// number of steps is not left one step short.
const stepTolerance = 1e-9

// Scheduler is a fixed-timestep accumulator. Time is fed in with Tick and
// consumed in Step sized slices by Steps.
//
// The accumulator is never negative.
type Scheduler struct {
	accumulator float64
	lastTime    float64

	// maxCatchUp bounds the steps that may be pending after a Tick; zero
	// means no bound.
	maxCatchUp int
}

// NewScheduler returns a scheduler. If maxCatchUp is positive, time beyond
// maxCatchUp pending steps is dropped on every Tick.
func NewScheduler(maxCatchUp int) *Scheduler {
	return &Scheduler{maxCatchUp: maxCatchUp}
}

// Start resets the scheduler with now as the reference time.
func (s *Scheduler) Start(now float64) {
	s.accumulator = 0
	s.lastTime = now
}

// Tick adds the time elapsed since the previous Tick (or Start) to the
// accumulator and returns it. A clock going backwards adds nothing.
func (s *Scheduler) Tick(now float64) float64 {
	delta := now - s.lastTime
	s.lastTime = now
	if delta < 0 {
		delta = 0
	}
	s.accumulator += delta
	if s.maxCatchUp > 0 {
		if limit := float64(s.maxCatchUp) * Step; s.accumulator > limit {
			s.accumulator = limit
		}
	}
	return delta
}

// Steps calls update once per whole Step held in the accumulator, removing
// the consumed time, and returns the number of calls. The count is the floor
// of accumulator/Step within 1e-9 s: an accumulator up to 1e-9 s short of a
// whole step still runs that step, and the accumulator is then clamped to
// zero.
func (s *Scheduler) Steps(update func(dt float32)) int {
	n := 0
	for s.accumulator+stepTolerance >= Step {
		update(float32(Step))
		s.accumulator -= Step
		if s.accumulator < 0 {
			s.accumulator = 0
		}
		n++
	}
	return n
}

// Accumulator returns the unconsumed time in seconds.
func (s *Scheduler) Accumulator() float64 {
	return s.accumulator
}
