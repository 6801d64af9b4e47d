// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package uifx

import (
	"fmt"

	"golang.org/x/image/math/f32"
)

const unknownStr = "Unknown"

// ToneFilter selects the tone adjustment a material variant applies.
type ToneFilter int

// Tone filter constants. ToneNone disables tone adjustment.
const (
	ToneNone ToneFilter = iota
	ToneGrayscale
	ToneSepia
	ToneNegative
	TonePixelate
	ToneMono
	ToneCutoff
	ToneHue
)

// String returns the canonical identifier for the tone filter.
// This is an explicit static mapping; variant names and shader keywords
// are derived from it, so the strings are part of the asset contract.
func (f ToneFilter) String() string {
	switch f {
	case ToneNone:
		return "None"
	case ToneGrayscale:
		return "Grayscale"
	case ToneSepia:
		return "Sepia"
	case ToneNegative:
		return "Negative"
	case TonePixelate:
		return "Pixelate"
	case ToneMono:
		return "Mono"
	case ToneCutoff:
		return "Cutoff"
	case ToneHue:
		return "Hue"
	default:
		return unknownStr
	}
}

// ParseToneFilter converts a canonical identifier back to a ToneFilter.
func ParseToneFilter(s string) (ToneFilter, error) {
	for f := ToneNone; f <= ToneHue; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return ToneNone, fmt.Errorf("uifx: unknown tone filter %q", s)
}

// ColorFilter selects how the effect color combines with the source.
type ColorFilter int

// Color filter constants. ColorNone disables the color effect.
const (
	ColorNone ColorFilter = iota
	ColorFill
	ColorAdd
	ColorSub
)

// String returns the canonical identifier for the color filter.
func (f ColorFilter) String() string {
	switch f {
	case ColorNone:
		return "None"
	case ColorFill:
		return "Fill"
	case ColorAdd:
		return "Add"
	case ColorSub:
		return "Sub"
	default:
		return unknownStr
	}
}

// ParseColorFilter converts a canonical identifier back to a ColorFilter.
func ParseColorFilter(s string) (ColorFilter, error) {
	for f := ColorNone; f <= ColorSub; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return ColorNone, fmt.Errorf("uifx: unknown color filter %q", s)
}

// BlurFilter selects the blur kernel a material variant applies.
type BlurFilter int

// Blur filter constants. BlurNone disables blurring.
const (
	BlurNone BlurFilter = iota
	BlurFast
	BlurMedium
	BlurDetail
)

// String returns the canonical identifier for the blur filter.
func (f BlurFilter) String() string {
	switch f {
	case BlurNone:
		return "None"
	case BlurFast:
		return "Fast"
	case BlurMedium:
		return "Medium"
	case BlurDetail:
		return "Detail"
	default:
		return unknownStr
	}
}

// ParseBlurFilter converts a canonical identifier back to a BlurFilter.
func ParseBlurFilter(s string) (BlurFilter, error) {
	for f := BlurNone; f <= BlurDetail; f++ {
		if f.String() == s {
			return f, nil
		}
	}
	return BlurNone, fmt.Errorf("uifx: unknown blur filter %q", s)
}

// MaxBlur is the upper bound of the stored blur amount. The packing path
// rescales blur by 1/MaxBlur into [0, 1]; the decoding shader multiplies
// the recovered value back by MaxBlur.
const MaxBlur = 2.0

// PackingSource identifies which four values feed packed channel A.
// It is either ToneBlur or Custom, selected explicitly via the Params
// accessors rather than inferred from a side flag.
type PackingSource interface {
	packingSource()
}

// ToneBlur packs the tone level and the rescaled blur amount:
// (Level, 0, Blur/MaxBlur, 0).
type ToneBlur struct {
	Level float64
	Blur  float64
}

// Custom packs an arbitrary four-component factor. Components are
// clamped to [0, 1] at pack time, not at storage time.
type Custom struct {
	Factor f32.Vec4
}

func (ToneBlur) packingSource() {}
func (Custom) packingSource()   {}

// Params is the effect parameter set owned by one UI primitive.
// It is mutated only through its accessors, which maintain the range
// invariants: tone level in [0, 1], blur in [0, MaxBlur], filters never
// negative, effect color channels in [0, 1]. Params is not safe for
// concurrent mutation; it belongs to the host's main processing turn.
type Params struct {
	toneLevel   float64
	blur        float64
	tone        ToneFilter
	color       ColorFilter
	blurFilter  BlurFilter
	effectColor RGBA

	custom       bool
	customFactor f32.Vec4
}

// NewParams returns a parameter set with full tone level, unit blur
// extent, all filters disabled, and a white effect color.
func NewParams() *Params {
	return &Params{
		toneLevel:   1,
		blur:        1,
		effectColor: White,
	}
}

// ToneLevel returns the effect intensity in [0, 1].
func (p *Params) ToneLevel() float64 { return p.toneLevel }

// SetToneLevel sets the effect intensity, clamped to [0, 1].
func (p *Params) SetToneLevel(v float64) { p.toneLevel = clamp01(v) }

// Blur returns the blur spatial extent in [0, MaxBlur].
func (p *Params) Blur() float64 { return p.blur }

// SetBlur sets the blur spatial extent, clamped to [0, MaxBlur].
// NaN normalizes to 0, like every other clamped write.
func (p *Params) SetBlur(v float64) {
	if !(v > 0) {
		v = 0
	}
	if v > MaxBlur {
		v = MaxBlur
	}
	p.blur = v
}

// ToneFilter returns the active tone filter.
func (p *Params) ToneFilter() ToneFilter { return p.tone }

// SetToneFilter sets the tone filter. Values outside the known range
// fall back to ToneNone.
func (p *Params) SetToneFilter(f ToneFilter) {
	if f < ToneNone || f > ToneHue {
		f = ToneNone
	}
	p.tone = f
}

// ColorFilter returns the active color filter.
func (p *Params) ColorFilter() ColorFilter { return p.color }

// SetColorFilter sets the color filter. Values outside the known range
// fall back to ColorNone.
func (p *Params) SetColorFilter(f ColorFilter) {
	if f < ColorNone || f > ColorSub {
		f = ColorNone
	}
	p.color = f
}

// BlurFilter returns the active blur filter.
func (p *Params) BlurFilter() BlurFilter { return p.blurFilter }

// SetBlurFilter sets the blur filter. Values outside the known range
// fall back to BlurNone.
func (p *Params) SetBlurFilter(f BlurFilter) {
	if f < BlurNone || f > BlurDetail {
		f = BlurNone
	}
	p.blurFilter = f
}

// EffectColor returns the effect color.
func (p *Params) EffectColor() RGBA { return p.effectColor }

// SetEffectColor sets the effect color with each channel clamped to [0, 1].
func (p *Params) SetEffectColor(c RGBA) { p.effectColor = c.Clamped() }

// CustomEffect reports whether the custom packing source is active.
// While active, material variant resolution is bypassed entirely.
func (p *Params) CustomEffect() bool { return p.custom }

// SetCustom activates the custom packing source with the given factor.
// The factor is stored as-is; clamping happens at pack time.
func (p *Params) SetCustom(factor f32.Vec4) {
	p.custom = true
	p.customFactor = factor
}

// ClearCustom deactivates the custom packing source, restoring the
// tone/blur packing.
func (p *Params) ClearCustom() {
	p.custom = false
	p.customFactor = f32.Vec4{}
}

// CustomFactor returns the stored custom factor (unclamped).
func (p *Params) CustomFactor() f32.Vec4 { return p.customFactor }

// Source returns the active packing source as a tagged union:
// Custom when the custom effect is active, ToneBlur otherwise.
func (p *Params) Source() PackingSource {
	if p.custom {
		return Custom{Factor: p.customFactor}
	}
	return ToneBlur{Level: p.toneLevel, Blur: p.blur}
}

// PackedChannels computes the two packed per-vertex channels.
//
// Channel A encodes the active packing source: the custom factor, or
// (toneLevel, 0, blur/MaxBlur, 0). Channel B always encodes the effect
// color (r, g, b, a). The pair is ephemeral: it is recomputed on every
// mesh rebuild and identical across all vertices of one primitive.
func (p *Params) PackedChannels() (a, b float32) {
	switch src := p.Source().(type) {
	case Custom:
		a = PackVec(src.Factor)
	case ToneBlur:
		a = Pack(src.Level, 0, src.Blur/MaxBlur, 0)
	}
	b = Pack(p.effectColor.R, p.effectColor.G, p.effectColor.B, p.effectColor.A)
	return a, b
}
