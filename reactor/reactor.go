// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package reactor

import (
	"log/slog"
	"sync"

	"github.com/gogpu/uifx"
	"github.com/gogpu/uifx/material"
)

// State tracks whether a variant re-resolution is pending.
type State int

const (
	// Idle means no apply is scheduled.
	Idle State = iota
	// PendingApply means an apply callback is queued and further change
	// events are debounced until it fires.
	PendingApply
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case PendingApply:
		return "pending-apply"
	default:
		return "unknown"
	}
}

// Host reports the lifecycle conditions that cancel a pending apply.
type Host interface {
	// Alive reports whether the owning object still exists.
	Alive() bool
	// Simulating reports whether the host has entered live-simulation
	// mode, where material assets must not be swapped.
	Simulating() bool
}

// Target receives the resolved material. It is the renderable the
// reactor manages the material reference for.
type Target interface {
	Material() *material.Material
	SetMaterial(m *material.Material)
	// MarkChanged tells the target its render state is stale.
	MarkChanged()
}

// Reactor re-resolves a target's material variant when its effect
// parameters change. Change events are cheap; the expensive resolution
// runs once per burst on a deferred scheduler turn.
type Reactor struct {
	mu     sync.Mutex
	state  State
	params *uifx.Params

	sched    Scheduler
	host     Host
	target   Target
	resolver *material.Resolver
	shader   *material.Shader
	log      *slog.Logger
}

// Option configures a Reactor.
type Option func(*Reactor)

// WithLogger overrides the package logger for this reactor.
func WithLogger(log *slog.Logger) Option {
	return func(r *Reactor) {
		if log != nil {
			r.log = log
		}
	}
}

// New creates a reactor resolving variants of shader against repo and
// applying them to target. The scheduler decides when pending applies
// run; host gates them. Persistence is the resolver's: a newly created
// variant is saved as part of its resolution, so an apply that resolves
// an existing variant performs no repository writes.
func New(sched Scheduler, host Host, target Target, repo material.Repository, shader *material.Shader, opts ...Option) *Reactor {
	r := &Reactor{
		sched:    sched,
		host:     host,
		target:   target,
		resolver: material.NewResolver(repo),
		shader:   shader,
		log:      uifx.Logger(),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// State returns the current debounce state.
func (r *Reactor) State() State {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.state
}

// OnChange reacts to an edit of p. Custom-factor configurations bypass
// variant resolution entirely, since the packed channel carries the
// caller's values and the base material already renders them. Otherwise
// an apply is scheduled unless one is already pending; the parameter
// set is held by reference so the apply reads the filters as they are
// when it fires, not as they were when the edit happened.
func (r *Reactor) OnChange(p *uifx.Params) {
	if p == nil {
		return
	}
	if _, ok := p.Source().(uifx.Custom); ok {
		return
	}

	r.mu.Lock()
	r.params = p
	if r.state == PendingApply {
		r.mu.Unlock()
		return
	}
	r.state = PendingApply
	r.mu.Unlock()

	r.sched.Schedule(r.apply)
}

// apply runs on a scheduler turn. It re-checks liveness, resolves the
// variant for the configuration's current filters, and swaps the
// target's material if the resolved asset differs from the current one.
// Edits coalesced while the apply was pending are picked up here.
func (r *Reactor) apply() {
	r.mu.Lock()
	r.state = Idle
	p := r.params
	r.mu.Unlock()

	if r.host != nil && (!r.host.Alive() || r.host.Simulating()) {
		return
	}
	if p == nil {
		return
	}
	// The configuration may have switched to a custom factor while the
	// apply was pending.
	if _, ok := p.Source().(uifx.Custom); ok {
		return
	}

	tone, color, blur := p.ToneFilter(), p.ColorFilter(), p.BlurFilter()
	m := r.resolver.Resolve(r.shader, tone, color, blur)
	if m == nil {
		return
	}
	if r.target.Material() == m {
		return
	}

	r.target.SetMaterial(m)
	r.target.MarkChanged()
	r.log.Debug("material variant applied",
		"material", m.Name, "tone", tone, "color", color, "blur", blur)
}
