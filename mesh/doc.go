// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package mesh provides the vertex stream of a UI primitive and the
// writer that stamps packed effect parameters into it.
//
// A Stream holds interleavable vertices: position, primary UV, vertex
// color, and the secondary UV-equivalent attribute that carries the two
// packed effect channels. On every mesh rebuild a Writer recomputes the
// packed pair once (it is shared by all vertices of one primitive) and
// destructively rewrites the stream.
//
// Streams are reusable through StreamPool to keep rebuild paths free of
// steady-state allocations.
package mesh
