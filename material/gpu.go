// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// CompileWGSL compiles WGSL source to a SPIR-V uint32 slice.
func CompileWGSL(source string) ([]uint32, error) {
	// Compile WGSL to SPIR-V bytes
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("uifx/material: failed to compile shader: %w", err)
	}

	// SPIR-V is little-endian 32-bit words
	spirvCode := make([]uint32, len(spirvBytes)/4)
	for i := range spirvCode {
		spirvCode[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}

	return spirvCode, nil
}

// CreateShaderModule creates a HAL shader module from SPIR-V code.
func CreateShaderModule(device hal.Device, label string, spirvCode []uint32) (hal.ShaderModule, error) {
	return device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label: label,
		Source: hal.ShaderSource{
			SPIRV: spirvCode,
		},
	})
}

// Compile returns the variant's SPIR-V, compiling the preprocessed
// source on first use. The result (or the failure) is cached: a
// material is immutable after creation, so recompiling cannot change
// the outcome.
func (m *Material) Compile() ([]uint32, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.spirv == nil && m.cerr == nil {
		m.spirv, m.cerr = CompileWGSL(m.Source)
	}
	return m.spirv, m.cerr
}

// Upload compiles the variant if needed and creates its shader module
// on the given HAL device. The module is labeled with the variant's
// canonical name.
func (m *Material) Upload(device hal.Device) (hal.ShaderModule, error) {
	spirv, err := m.Compile()
	if err != nil {
		return nil, err
	}
	return CreateShaderModule(device, m.Name, spirv)
}
