// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"log/slog"
	"sync"

	"github.com/gogpu/uifx"
)

// ResolverOption configures a Resolver during creation.
type ResolverOption func(*Resolver)

// WithLogger sets a dedicated logger for the resolver. By default the
// resolver shares the package logger (uifx.Logger).
func WithLogger(l *slog.Logger) ResolverOption {
	return func(r *Resolver) {
		if l != nil {
			r.log = l
		}
	}
}

// Resolver maps mode combinations to cached material variants.
//
// Resolution is idempotent: two resolutions for the same key converge
// on the same stored asset, even when interleaved from multiple
// goroutines. The lookup-then-create sequence runs under a mutex, so
// many primitives sharing a mode combination never create duplicates.
type Resolver struct {
	repo Repository
	mu   sync.Mutex
	log  *slog.Logger
}

// NewResolver creates a resolver over the given repository.
func NewResolver(repo Repository, opts ...ResolverOption) *Resolver {
	r := &Resolver{
		repo: repo,
		log:  uifx.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Resolve returns the material variant for a shader and mode
// combination, creating and persisting it on first use.
//
// A nil or unresolvable shader yields nil: the effect is simply not
// applied, and the repository is left untouched. A repository save
// failure is logged and the in-memory asset is returned anyway; it
// remains usable for the current session.
func (r *Resolver) Resolve(shader *Shader, tone uifx.ToneFilter, color uifx.ColorFilter, blur uifx.BlurFilter) *Material {
	if !shader.Resolvable() {
		return nil
	}

	name := VariantName(shader.Name, tone, color, blur)

	r.mu.Lock()
	defer r.mu.Unlock()

	if m, ok := r.repo.Find(name); ok {
		return m
	}

	kws := KeywordsFor(tone, color, blur)
	m := &Material{
		Name:     name,
		Shader:   shader.Name,
		Keywords: kws,
		Source:   Preprocess(shader.Source, kws),
		Locked:   true,
	}
	if len(kws) == 0 {
		// The all-default combination is the shader's primary asset at
		// its deterministic default path.
		m.Path = DefaultAssetPath(shader.Name)
	} else {
		m.Parent = shader.Name
	}

	if err := r.repo.Create(m); err != nil {
		// Lost a race with an external writer; the stored asset wins.
		if existing, ok := r.repo.Find(name); ok {
			return existing
		}
		r.log.Warn("uifx/material: variant not created", "name", name, "err", err)
		return m
	}
	if err := r.repo.Save(); err != nil {
		r.log.Warn("uifx/material: variant not persisted", "name", name, "err", err)
	}

	r.log.Info("uifx/material: created variant", "name", name, "keywords", len(kws))
	return m
}
