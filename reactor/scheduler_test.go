// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package reactor

import "testing"

func TestQueue_DrainRunsInOrder(t *testing.T) {
	q := NewQueue()

	var order []int
	for i := 0; i < 3; i++ {
		i := i
		q.Schedule(func() { order = append(order, i) })
	}
	if q.Pending() != 3 {
		t.Fatalf("Pending = %d, want 3", q.Pending())
	}

	if n := q.Drain(); n != 3 {
		t.Errorf("Drain = %d, want 3", n)
	}
	for i, v := range order {
		if v != i {
			t.Fatalf("order = %v, want FIFO", order)
		}
	}
	if q.Pending() != 0 {
		t.Errorf("Pending = %d, want 0 after drain", q.Pending())
	}
}

func TestQueue_DrainIncludesNestedTasks(t *testing.T) {
	q := NewQueue()

	ran := 0
	q.Schedule(func() {
		ran++
		q.Schedule(func() { ran++ })
	})

	if n := q.Drain(); n != 2 {
		t.Errorf("Drain = %d, want 2 including the nested task", n)
	}
	if ran != 2 {
		t.Errorf("ran = %d, want 2", ran)
	}
}

func TestQueue_IgnoresNil(t *testing.T) {
	q := NewQueue()
	q.Schedule(nil)
	if q.Pending() != 0 {
		t.Error("nil tasks must not be queued")
	}
}
