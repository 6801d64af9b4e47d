// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import "github.com/gogpu/gputypes"

// RenderState returns the color target configuration shared by all UI
// effect materials: premultiplied alpha blending over an RGBA8 surface.
// The mode combination selects shader code, never blend state, so one
// target state serves every variant.
func RenderState() gputypes.ColorTargetState {
	premulBlend := gputypes.BlendStatePremultiplied()
	return gputypes.ColorTargetState{
		Format:    gputypes.TextureFormatRGBA8Unorm,
		Blend:     &premulBlend,
		WriteMask: gputypes.ColorWriteMaskAll,
	}
}
