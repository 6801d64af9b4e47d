// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"strings"

	"github.com/gogpu/uifx"
)

// Keyword is a shader feature flag enabled on a material variant.
// Keywords map 1:1 to filter variants through the explicit tables
// below; no identifier is ever derived from runtime type names.
type Keyword string

// Feature keywords, one per non-default filter variant.
const (
	KeywordToneGrayscale Keyword = "TONE_GRAYSCALE"
	KeywordToneSepia     Keyword = "TONE_SEPIA"
	KeywordToneNegative  Keyword = "TONE_NEGATIVE"
	KeywordTonePixelate  Keyword = "TONE_PIXELATE"
	KeywordToneMono      Keyword = "TONE_MONO"
	KeywordToneCutoff    Keyword = "TONE_CUTOFF"
	KeywordToneHue       Keyword = "TONE_HUE"

	KeywordColorFill Keyword = "COLOR_FILL"
	KeywordColorAdd  Keyword = "COLOR_ADD"
	KeywordColorSub  Keyword = "COLOR_SUB"

	KeywordBlurFast   Keyword = "BLUR_FAST"
	KeywordBlurMedium Keyword = "BLUR_MEDIUM"
	KeywordBlurDetail Keyword = "BLUR_DETAIL"
)

// toneKeywords maps each non-default tone filter to its keyword.
var toneKeywords = map[uifx.ToneFilter]Keyword{
	uifx.ToneGrayscale: KeywordToneGrayscale,
	uifx.ToneSepia:     KeywordToneSepia,
	uifx.ToneNegative:  KeywordToneNegative,
	uifx.TonePixelate:  KeywordTonePixelate,
	uifx.ToneMono:      KeywordToneMono,
	uifx.ToneCutoff:    KeywordToneCutoff,
	uifx.ToneHue:       KeywordToneHue,
}

// colorKeywords maps each non-default color filter to its keyword.
var colorKeywords = map[uifx.ColorFilter]Keyword{
	uifx.ColorFill: KeywordColorFill,
	uifx.ColorAdd:  KeywordColorAdd,
	uifx.ColorSub:  KeywordColorSub,
}

// blurKeywords maps each non-default blur filter to its keyword.
var blurKeywords = map[uifx.BlurFilter]Keyword{
	uifx.BlurFast:   KeywordBlurFast,
	uifx.BlurMedium: KeywordBlurMedium,
	uifx.BlurDetail: KeywordBlurDetail,
}

// ToneKeyword returns the feature keyword for a tone filter.
// The second result is false for ToneNone and unknown values.
func ToneKeyword(f uifx.ToneFilter) (Keyword, bool) {
	kw, ok := toneKeywords[f]
	return kw, ok
}

// ColorKeyword returns the feature keyword for a color filter.
// The second result is false for ColorNone and unknown values.
func ColorKeyword(f uifx.ColorFilter) (Keyword, bool) {
	kw, ok := colorKeywords[f]
	return kw, ok
}

// BlurKeyword returns the feature keyword for a blur filter.
// The second result is false for BlurNone and unknown values.
func BlurKeyword(f uifx.BlurFilter) (Keyword, bool) {
	kw, ok := blurKeywords[f]
	return kw, ok
}

// KeywordsFor returns the feature keywords for a mode combination,
// in tone, color, blur order. The all-default combination yields nil.
func KeywordsFor(tone uifx.ToneFilter, color uifx.ColorFilter, blur uifx.BlurFilter) []Keyword {
	var kws []Keyword
	if kw, ok := ToneKeyword(tone); ok {
		kws = append(kws, kw)
	}
	if kw, ok := ColorKeyword(color); ok {
		kws = append(kws, kw)
	}
	if kw, ok := BlurKeyword(blur); ok {
		kws = append(kws, kw)
	}
	return kws
}

// AllKeywords returns every known feature keyword in declaration order:
// tone variants, color variants, blur variants. The order is stable and
// part of the generated shader header contract.
func AllKeywords() []Keyword {
	return []Keyword{
		KeywordToneGrayscale, KeywordToneSepia, KeywordToneNegative,
		KeywordTonePixelate, KeywordToneMono, KeywordToneCutoff, KeywordToneHue,
		KeywordColorFill, KeywordColorAdd, KeywordColorSub,
		KeywordBlurFast, KeywordBlurMedium, KeywordBlurDetail,
	}
}

// VariantName derives the canonical variant name for a shader and mode
// combination: the shader base name, suffixed with "-<Filter>" for each
// non-default filter in tone, color, blur order. Distinct mode triples
// never collide; the all-default triple maps to the bare base name.
func VariantName(base string, tone uifx.ToneFilter, color uifx.ColorFilter, blur uifx.BlurFilter) string {
	var sb strings.Builder
	sb.WriteString(base)
	if tone != uifx.ToneNone {
		sb.WriteByte('-')
		sb.WriteString(tone.String())
	}
	if color != uifx.ColorNone {
		sb.WriteByte('-')
		sb.WriteString(color.String())
	}
	if blur != uifx.BlurNone {
		sb.WriteByte('-')
		sb.WriteString(blur.String())
	}
	return sb.String()
}

// DefaultAssetPath returns the deterministic repository path of a
// shader's primary (all-default) material asset.
func DefaultAssetPath(base string) string {
	return "materials/" + base + ".mat"
}
