// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"testing"

	"github.com/gogpu/uifx"
)

func TestStreamPool_GetReturnsReset(t *testing.T) {
	pool := NewStreamPool()

	s := pool.Get()
	s.AddRect(0, 0, 10, 10, uifx.White)
	pool.Put(s)

	got := pool.Get()
	if got.Len() != 0 || got.IndexCount() != 0 {
		t.Errorf("pooled stream not reset: %d vertices, %d indices", got.Len(), got.IndexCount())
	}
}

func TestStreamPool_PutNil(t *testing.T) {
	pool := NewStreamPool()
	pool.Put(nil) // must not panic
	if s := pool.Get(); s == nil {
		t.Error("Get() returned nil after Put(nil)")
	}
}

func TestStreamPool_Warmup(t *testing.T) {
	pool := NewStreamPool()
	pool.Warmup(8)
	s := pool.Get()
	if s == nil {
		t.Fatal("Get() returned nil after Warmup")
	}
	pool.Put(s)
}
