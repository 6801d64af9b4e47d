// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	_ "embed"
	"sync"
)

// Shader is a handle to a WGSL effect shader. The base name identifies
// the shader in variant names and asset paths; the source contains the
// keyword-conditional effect blocks.
type Shader struct {
	// Name is the shader base name, e.g. "UI-Effect".
	Name string

	// Source is the WGSL source. It references the feature consts that
	// Preprocess generates and therefore compiles only as part of a
	// material variant.
	Source string
}

// Resolvable reports whether the handle can produce material variants.
// An absent or empty handle is a degraded default, not an error: the
// resolver returns nil for it and the effect is simply not applied.
func (s *Shader) Resolvable() bool {
	return s != nil && s.Name != "" && s.Source != ""
}

//go:embed shaders/uieffect.wgsl
var defaultShaderSource string

// DefaultShader returns the built-in UI effect shader. Its fragment
// stage decodes the packed per-vertex channels and applies the tone,
// color, and blur branches selected by the variant's keywords.
func DefaultShader() *Shader {
	return &Shader{Name: "UI-Effect", Source: defaultShaderSource}
}

// Material is a generated, shader-configured asset. Materials are
// created by the Resolver, stored in a Repository, and shared by every
// primitive using the same mode combination; treat them as immutable
// after creation.
type Material struct {
	// Name is the canonical variant name (see VariantName).
	Name string `json:"name"`

	// Shader is the base name of the shader this variant configures.
	Shader string `json:"shader"`

	// Path is the repository path of a primary asset. Empty for
	// subordinate variants, which live under their parent.
	Path string `json:"path,omitempty"`

	// Parent is the primary asset's shader base name for subordinate
	// variants. Empty for the primary asset itself.
	Parent string `json:"parent,omitempty"`

	// Keywords are the enabled feature flags, in tone, color, blur order.
	Keywords []Keyword `json:"keywords,omitempty"`

	// Source is the preprocessed WGSL: the generated feature header
	// followed by the shader source.
	Source string `json:"source"`

	// Locked marks the asset non-editable by downstream tooling.
	Locked bool `json:"locked"`

	mu    sync.Mutex
	spirv []uint32
	cerr  error
}

// Primary reports whether this is the shader's primary (all-default)
// asset rather than a subordinate variant.
func (m *Material) Primary() bool {
	return m.Parent == ""
}

// HasKeyword reports whether the given feature keyword is enabled.
func (m *Material) HasKeyword(kw Keyword) bool {
	for _, k := range m.Keywords {
		if k == kw {
			return true
		}
	}
	return false
}
