// Copyright 2014 The Azul3D Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package event

import "iter"

// Queue buffers events produced by platform callbacks until the next drain.
// It is not safe for concurrent use; callbacks must run on the polling
// thread.
type Queue struct {
	events []Event
}

// Push appends ev to the queue.
func (q *Queue) Push(ev Event) {
	q.events = append(q.events, ev)
}

// Len returns the number of buffered events.
func (q *Queue) Len() int {
	return len(q.events)
}

// Drain returns a sequence yielding the buffered events in arrival order.
// Events pushed while the sequence is being consumed are yielded too. The
// queue is empty once the sequence is exhausted; if the consumer stops early
// the remaining events stay queued for the next drain.
func (q *Queue) Drain() iter.Seq[Event] {
	return func(yield func(Event) bool) {
		for len(q.events) > 0 {
			ev := q.events[0]
			q.events[0] = nil
			q.events = q.events[1:]
			if !yield(ev) {
				return
			}
		}
		q.events = q.events[:0]
	}
}
