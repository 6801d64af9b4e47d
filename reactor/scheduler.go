// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package reactor

import "sync"

// Scheduler defers work to a later turn of the host's event queue.
// Implementations must run scheduled functions serially; the reactor
// relies on apply callbacks never executing concurrently with the turn
// that scheduled them.
type Scheduler interface {
	Schedule(fn func())
}

// Queue is a serial FIFO Scheduler drained by the host's main loop.
// Schedule may be called from any goroutine; Drain must only be called
// from the single consumer turn.
type Queue struct {
	mu    sync.Mutex
	tasks []func()
}

// NewQueue creates an empty task queue.
func NewQueue() *Queue {
	return &Queue{}
}

// Schedule appends fn to the queue for the next Drain.
func (q *Queue) Schedule(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.tasks = append(q.tasks, fn)
	q.mu.Unlock()
}

// Drain runs queued tasks in order until the queue is empty, including
// tasks scheduled while draining, and returns the number executed.
func (q *Queue) Drain() int {
	n := 0
	for {
		q.mu.Lock()
		if len(q.tasks) == 0 {
			q.mu.Unlock()
			return n
		}
		fn := q.tasks[0]
		q.tasks = q.tasks[1:]
		q.mu.Unlock()

		fn()
		n++
	}
}

// Pending returns the number of tasks waiting to run.
func (q *Queue) Pending() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.tasks)
}
