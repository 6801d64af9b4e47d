// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import "sync"

// StreamPool manages a pool of reusable Stream objects.
// After warmup, mesh rebuilds are free of steady-state allocations.
//
// Usage:
//
//	pool := NewStreamPool()
//	s := pool.Get()
//	defer pool.Put(s)
//	// rebuild s...
type StreamPool struct {
	pool sync.Pool
}

// NewStreamPool creates a new stream pool.
func NewStreamPool() *StreamPool {
	return &StreamPool{
		pool: sync.Pool{
			New: func() any {
				return NewStream()
			},
		},
	}
}

// Get retrieves a stream from the pool.
// The stream is reset and ready for use.
func (p *StreamPool) Get() *Stream {
	s := p.pool.Get().(*Stream)
	s.Reset()
	return s
}

// Put returns a stream to the pool for reuse.
// The stream will be reset on the next Get.
func (p *StreamPool) Put(s *Stream) {
	if s == nil {
		return
	}
	p.pool.Put(s)
}

// Warmup pre-allocates streams to avoid allocation during rebuilds.
func (p *StreamPool) Warmup(count int) {
	streams := make([]*Stream, count)
	for i := 0; i < count; i++ {
		streams[i] = p.Get()
	}
	for i := 0; i < count; i++ {
		p.Put(streams[i])
	}
}

// DefaultPool is a global stream pool for convenience.
var DefaultPool = NewStreamPool()
