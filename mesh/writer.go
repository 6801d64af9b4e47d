// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"golang.org/x/image/math/f32"

	"github.com/gogpu/uifx"
)

// Writer stamps packed effect channels into the secondary attribute of
// a vertex stream on every mesh rebuild.
//
// The packed pair is computed once per rebuild, not once per vertex:
// all vertices of one primitive share the same parameter set. Rebuild
// fully reconstructs the vertex list (clear and rewrite, not an
// incremental patch), so any stage that relies on the previous
// secondary attribute contents must run before the writer.
type Writer struct {
	enabled bool
	params  *uifx.Params
}

// NewWriter creates an enabled writer over the given parameter set.
func NewWriter(params *uifx.Params) *Writer {
	return &Writer{enabled: true, params: params}
}

// Enabled reports whether the writer modifies streams.
func (w *Writer) Enabled() bool { return w.enabled }

// SetEnabled toggles the writer. While disabled, Rebuild is a no-op and
// streams pass through unmodified, mirroring an inactive host component.
func (w *Writer) SetEnabled(enabled bool) { w.enabled = enabled }

// Params returns the parameter set the writer reads from.
func (w *Writer) Params() *uifx.Params { return w.params }

// SetParams replaces the parameter set the writer reads from.
func (w *Writer) SetParams(p *uifx.Params) { w.params = p }

// Rebuild replaces the secondary attribute of every vertex in s with
// the current packed channel pair. It has no error conditions: the
// parameter set is already validated by its accessors.
func (w *Writer) Rebuild(s *Stream) {
	if w == nil || !w.enabled || w.params == nil || s == nil {
		return
	}

	a, b := w.params.PackedChannels()
	packed := f32.Vec2{a, b}

	uifx.Logger().Debug("mesh: rebuilding packed channels",
		"vertices", s.Len(), "channelA", a, "channelB", b)

	// Destructive rewrite: drain the vertex list and re-append every
	// vertex with the new secondary attribute.
	verts := s.drainVertices()
	for i := range verts {
		verts[i].Params = packed
	}
	s.Append(verts...)
}
