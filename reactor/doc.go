// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package reactor re-resolves material variants when effect
// configuration changes at development time.
//
// A Reactor debounces change events through a deferred callback on an
// injected Scheduler: many edits in one processing turn collapse into
// one resolution on a later turn. Cancellation is not a token but a
// predicate pair checked when the callback fires: if the owning object
// is gone or the host has entered live-simulation mode, the pending
// apply is silently dropped.
//
// Queue is the reference Scheduler: an explicit serial task queue
// drained by the host's main loop, matching the single-threaded
// cooperative execution model of the rest of the pipeline.
package reactor
