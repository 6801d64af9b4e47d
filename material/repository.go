// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// Repository is the asset store the resolver creates variants in.
//
// Find looks an asset up by canonical name. Create registers a new
// asset: a primary one at its Path, or a subordinate one nested under
// the primary named by Parent. Save flushes pending changes to the
// backing store.
//
// Implementations must be safe for concurrent use; the resolver
// serializes its own lookup-then-create sequence, but nothing stops a
// host from reading the repository concurrently.
type Repository interface {
	Find(name string) (*Material, bool)
	Create(m *Material) error
	Save() error
}

// MemoryRepository is an in-memory Repository. It backs tests and
// hosts that do not persist generated assets. Mutations are counted
// atomically so idempotence is observable.
type MemoryRepository struct {
	mu       sync.RWMutex
	assets   map[string]*Material
	children map[string][]string // primary shader name -> subordinate names

	creates atomic.Uint64
	saves   atomic.Uint64
}

// NewMemoryRepository creates an empty in-memory repository.
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{
		assets:   make(map[string]*Material),
		children: make(map[string][]string),
	}
}

// Find returns the asset with the given canonical name.
func (r *MemoryRepository) Find(name string) (*Material, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	m, ok := r.assets[name]
	return m, ok
}

// Create registers a new asset. Registering a name twice is an error:
// the resolver's lookup-then-create sequence must never reach this
// path for an existing key.
func (r *MemoryRepository) Create(m *Material) error {
	if m == nil || m.Name == "" {
		return fmt.Errorf("uifx/material: cannot create unnamed asset")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assets[m.Name]; ok {
		return fmt.Errorf("uifx/material: asset %q already exists", m.Name)
	}
	r.assets[m.Name] = m
	if m.Parent != "" {
		r.children[m.Parent] = append(r.children[m.Parent], m.Name)
	}
	r.creates.Add(1)
	return nil
}

// Save counts the flush; an in-memory repository has no backing store.
func (r *MemoryRepository) Save() error {
	r.saves.Add(1)
	return nil
}

// Len returns the number of stored assets.
func (r *MemoryRepository) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.assets)
}

// Variants returns the subordinate assets nested under the primary
// asset of the given shader base name, in creation order.
func (r *MemoryRepository) Variants(base string) []*Material {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := r.children[base]
	out := make([]*Material, 0, len(names))
	for _, name := range names {
		if m, ok := r.assets[name]; ok {
			out = append(out, m)
		}
	}
	return out
}

// CreateCount returns the number of Create mutations performed.
func (r *MemoryRepository) CreateCount() uint64 { return r.creates.Load() }

// SaveCount returns the number of Save flushes performed.
func (r *MemoryRepository) SaveCount() uint64 { return r.saves.Load() }
