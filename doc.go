// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package uifx carries per-vertex visual-effect parameters through an
// ordinary UI mesh pipeline.
//
// # Overview
//
// uifx augments a rendered UI primitive with tone, color, and blur effect
// parameters without extra draw calls or per-primitive uniform buffers.
// Up to four independent [0, 1] values are quantized into a single
// float32 channel; two such channels ride in the secondary UV attribute
// of every vertex, where a companion shader decodes them.
//
// The module is organized into:
//   - uifx (this package): the parameter codec and the effect parameter set
//   - mesh: vertex streams and the per-rebuild parameter writer
//   - material: shader material variants, keywords, and the asset repository
//   - reactor: development-time change handling on a deferred scheduler
//   - preset: named effect presets loaded from YAML
//
// # Quick Start
//
//	params := uifx.NewParams()
//	params.SetToneFilter(uifx.ToneGrayscale)
//	params.SetToneLevel(0.5)
//
//	stream := mesh.NewStream()
//	stream.AddRect(0, 0, 128, 32, uifx.RGB(1, 1, 1))
//	mesh.NewWriter(params).Rebuild(stream)
//
//	resolver := material.NewResolver(material.NewMemoryRepository())
//	mat := resolver.Resolve(material.DefaultShader(),
//	    params.ToneFilter(), params.ColorFilter(), params.BlurFilter())
//
// # Packed Channel Contract
//
// The bit layout of a packed channel is a hard compatibility contract
// shared with the decoding shader: four 6-bit fields, x in bits [0:6),
// y in [6:12), z in [12:18), w in [18:24), each field floor(v*63).
// See Pack for details.
package uifx
