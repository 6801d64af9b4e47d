// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package material resolves effect mode combinations to cached,
// shader-configured material assets.
//
// A material variant is identified by its canonical name, derived from
// the shader base name and the non-default filters of its mode key
// ("UI-Effect-Grayscale-Fast"). Resolution is deterministic and
// idempotent: the first resolution for a key creates and persists the
// asset in an injectable Repository; every later resolution returns the
// same identity with no creation side effect.
//
// Variant generation enables one feature keyword per non-default filter.
// Keywords become const declarations prepended to the WGSL source, which
// the shader branches on; naga folds the disabled branches when the
// variant is compiled to SPIR-V.
//
// The all-default combination is the shader's primary asset at a
// deterministic default path; every other combination is a subordinate
// asset nested under the primary, keeping asset listings uncluttered.
package material
