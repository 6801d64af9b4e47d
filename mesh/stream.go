// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package mesh

import (
	"github.com/gogpu/gputypes"
	"golang.org/x/image/math/f32"

	"github.com/gogpu/uifx"
)

// Vertex is one element of a UI primitive's vertex stream.
type Vertex struct {
	// Position is the vertex position in canvas coordinates.
	Position f32.Vec2

	// UV is the primary texture coordinate.
	UV f32.Vec2

	// Color is the vertex color.
	Color uifx.RGBA

	// Params is the secondary UV-equivalent attribute carrying the two
	// packed effect channels (channel A, channel B).
	Params f32.Vec2
}

// Vertex attribute layout constants. The interleaved GPU layout is
// position (2 float32), uv (2), color (4), params (2): 40 bytes.
const (
	offsetPosition = 0
	offsetUV       = 8
	offsetColor    = 16
	offsetParams   = 32

	// Stride is the byte stride of one interleaved vertex.
	Stride = 40

	// floatsPerVertex is the float32 count of one interleaved vertex.
	floatsPerVertex = Stride / 4
)

// VertexLayout returns the GPU vertex buffer layout for interleaved
// streams, matching the output of Stream.Interleave.
func VertexLayout() gputypes.VertexBufferLayout {
	return gputypes.VertexBufferLayout{
		ArrayStride: Stride,
		StepMode:    gputypes.VertexStepModeVertex,
		Attributes: []gputypes.VertexAttribute{
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetPosition, ShaderLocation: 0}, // position
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetUV, ShaderLocation: 1},       // uv
			{Format: gputypes.VertexFormatFloat32x4, Offset: offsetColor, ShaderLocation: 2},    // color
			{Format: gputypes.VertexFormatFloat32x2, Offset: offsetParams, ShaderLocation: 3},   // packed params
		},
	}
}

// Stream holds the vertex and index data of one UI primitive.
// It is rebuilt from scratch whenever the primitive changes; Reset
// clears it for reuse without deallocating.
type Stream struct {
	verts   []Vertex
	indices []uint32
}

// NewStream creates a new empty stream.
func NewStream() *Stream {
	return &Stream{
		verts:   make([]Vertex, 0, 64),
		indices: make([]uint32, 0, 96),
	}
}

// Reset clears the stream for reuse without deallocating memory.
func (s *Stream) Reset() {
	s.verts = s.verts[:0]
	s.indices = s.indices[:0]
}

// Len returns the number of vertices in the stream.
func (s *Stream) Len() int { return len(s.verts) }

// IndexCount returns the number of indices in the stream.
func (s *Stream) IndexCount() int { return len(s.indices) }

// Append adds vertices to the stream.
func (s *Stream) Append(vs ...Vertex) {
	s.verts = append(s.verts, vs...)
}

// AppendIndices adds indices to the stream.
func (s *Stream) AppendIndices(idx ...uint32) {
	s.indices = append(s.indices, idx...)
}

// Vertex returns vertex i. The index must be in range.
func (s *Stream) Vertex(i int) Vertex { return s.verts[i] }

// SetVertex replaces vertex i. The index must be in range.
func (s *Stream) SetVertex(i int, v Vertex) { s.verts[i] = v }

// Vertices returns the vertex slice for iteration. The slice is owned
// by the stream; it is invalidated by Reset and the writer's rebuild.
func (s *Stream) Vertices() []Vertex { return s.verts }

// Indices returns the index slice for iteration.
func (s *Stream) Indices() []uint32 { return s.indices }

// drainVertices detaches and returns the vertex slice, leaving the
// stream with an empty vertex list backed by the same storage.
func (s *Stream) drainVertices() []Vertex {
	vs := s.verts
	s.verts = s.verts[:0]
	return vs
}

// AddRect appends an axis-aligned quad (two triangles) with the given
// color, UV-mapped over [0,1]x[0,1]. This is the typical geometry of a
// UI primitive such as an image or a text glyph background.
func (s *Stream) AddRect(x, y, w, h float32, c uifx.RGBA) {
	//nolint:gosec // vertex count is bounded by slice length
	base := uint32(len(s.verts))
	s.verts = append(s.verts,
		Vertex{Position: f32.Vec2{x, y}, UV: f32.Vec2{0, 0}, Color: c},
		Vertex{Position: f32.Vec2{x + w, y}, UV: f32.Vec2{1, 0}, Color: c},
		Vertex{Position: f32.Vec2{x + w, y + h}, UV: f32.Vec2{1, 1}, Color: c},
		Vertex{Position: f32.Vec2{x, y + h}, UV: f32.Vec2{0, 1}, Color: c},
	)
	s.indices = append(s.indices,
		base, base+1, base+2,
		base, base+2, base+3,
	)
}

// Clone creates a deep copy of the stream.
func (s *Stream) Clone() *Stream {
	clone := &Stream{
		verts:   make([]Vertex, len(s.verts)),
		indices: make([]uint32, len(s.indices)),
	}
	copy(clone.verts, s.verts)
	copy(clone.indices, s.indices)
	return clone
}

// Interleave appends the stream's vertices to dst as interleaved
// float32 data matching VertexLayout, and returns the extended slice.
// Pass nil to allocate exactly.
func (s *Stream) Interleave(dst []float32) []float32 {
	if dst == nil {
		dst = make([]float32, 0, len(s.verts)*floatsPerVertex)
	}
	for i := range s.verts {
		v := &s.verts[i]
		c := v.Color.Vec4()
		dst = append(dst,
			v.Position[0], v.Position[1],
			v.UV[0], v.UV[1],
			c[0], c[1], c[2], c[3],
			v.Params[0], v.Params[1],
		)
	}
	return dst
}
