// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uifx

import (
	"math"

	"golang.org/x/image/math/f32"
)

// Quantization constants for the packed parameter channel.
// Four sub-values at 6 bits each fill 24 bits, which is exactly the
// mantissa width of a float32, so a packed value survives storage in a
// float-typed vertex attribute with no precision loss.
const (
	// ComponentBits is the width of one quantized sub-value.
	ComponentBits = 6

	// ComponentSteps is the number of discrete quantization steps per
	// sub-value (64).
	ComponentSteps = 1 << ComponentBits

	// ComponentMax is the largest quantized sub-value (63).
	ComponentMax = ComponentSteps - 1

	// PackedBits is the total bit width of a packed channel.
	PackedBits = 4 * ComponentBits

	// PackedMax is the largest packed channel value (all 24 bits set).
	PackedMax = 1<<PackedBits - 1
)

// MaxDecodeError bounds the per-component reconstruction error of the
// pack/decode round trip: 1/63 ≈ 0.0159.
const MaxDecodeError = 1.0 / ComponentMax

// Pack quantizes four values into a single float32 channel.
//
// Each input is clamped to [0, 1] and quantized to 6 bits via
// floor(v*63) (truncation, not rounding). The fields are contiguous:
// x occupies bits [0:6), y [6:12), z [12:18), w [18:24).
//
// The layout and the truncation semantics are a compatibility contract
// with the decoding shader; see Component for the inverse operation.
// There is no error path: out-of-range inputs are silently clamped.
func Pack(x, y, z, w float64) float32 {
	qx := uint32(clamp01(x) * ComponentMax)
	qy := uint32(clamp01(y)*ComponentMax) << (1 * ComponentBits)
	qz := uint32(clamp01(z)*ComponentMax) << (2 * ComponentBits)
	qw := uint32(clamp01(w)*ComponentMax) << (3 * ComponentBits)
	return float32(qx | qy | qz | qw)
}

// PackVec packs a four-component vector. Each component is clamped to
// [0, 1] before delegating to Pack.
func PackVec(v f32.Vec4) float32 {
	return Pack(float64(v[0]), float64(v[1]), float64(v[2]), float64(v[3]))
}

// Component recovers sub-value i (0..3) of a packed channel as an
// approximate [0, 1] value. The reconstruction error is bounded by
// MaxDecodeError per component.
//
// This mirrors the decode the companion shader performs:
//
//	component_i(v) = f32((u32(floor(v)) >> (6*i)) & 63) / 63
//
// Out-of-range indices return 0.
func Component(packed float32, i int) float64 {
	if i < 0 || i > 3 {
		return 0
	}
	bits := uint32(math.Floor(float64(packed)))
	q := (bits >> (uint(i) * ComponentBits)) & ComponentMax
	return float64(q) / ComponentMax
}

// clamp01 clamps v to the [0, 1] range. NaN normalizes to 0: the
// float-to-integer conversion in Pack is only defined for in-range
// values, so NaN must never reach the quantization.
func clamp01(v float64) float64 {
	if !(v > 0) {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
