// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uifx

import (
	"image/color"
	"testing"

	"golang.org/x/image/math/f32"
)

func TestRGBA_Color(t *testing.T) {
	tests := []struct {
		name string
		c    RGBA
		want color.NRGBA
	}{
		{"opaque black", Black, color.NRGBA{0, 0, 0, 255}},
		{"opaque white", White, color.NRGBA{255, 255, 255, 255}},
		{"opaque red", Red, color.NRGBA{255, 0, 0, 255}},
		{"transparent", Transparent, color.NRGBA{0, 0, 0, 0}},
		{"clamped above", RGBA{2, 2, 2, 2}, color.NRGBA{255, 255, 255, 255}},
		{"clamped below", RGBA{-1, -1, -1, -1}, color.NRGBA{0, 0, 0, 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.c.Color(); got != tt.want {
				t.Errorf("Color() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFromColor_RoundTrip(t *testing.T) {
	orig := color.NRGBA{R: 128, G: 64, B: 255, A: 255}
	c := FromColor(orig)
	if got := c.Color(); got != orig {
		t.Errorf("round trip = %v, want %v", got, orig)
	}
}

func TestHex(t *testing.T) {
	tests := []struct {
		name string
		hex  string
		want RGBA
	}{
		{"short rgb", "#F00", Red},
		{"long rgb", "#00FF00", Green},
		{"long rgba", "0000FFFF", Blue},
		{"invalid falls back to black", "nope", Black},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Hex(tt.hex); got != tt.want {
				t.Errorf("Hex(%q) = %v, want %v", tt.hex, got, tt.want)
			}
		})
	}
}

func TestRGBA_Clamped(t *testing.T) {
	got := RGBA{R: 1.5, G: -0.5, B: 0.25, A: 2}.Clamped()
	want := RGBA{R: 1, G: 0, B: 0.25, A: 1}
	if got != want {
		t.Errorf("Clamped() = %v, want %v", got, want)
	}
}

func TestRGBA_Vec4(t *testing.T) {
	got := RGBA{R: 1, G: 0.5, B: 0, A: 1}.Vec4()
	want := f32.Vec4{1, 0.5, 0, 1}
	if got != want {
		t.Errorf("Vec4() = %v, want %v", got, want)
	}
}
