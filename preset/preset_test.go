// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package preset

import (
	"path/filepath"
	"testing"

	"golang.org/x/image/math/f32"

	"github.com/gogpu/uifx"
)

func TestParse_Defaults(t *testing.T) {
	pr, err := Parse([]byte("name: minimal\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p, err := pr.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.ToneLevel() != 1 || p.Blur() != 1 {
		t.Errorf("ToneLevel = %v, Blur = %v, want defaults 1, 1", p.ToneLevel(), p.Blur())
	}
	if p.ToneFilter() != uifx.ToneNone || p.ColorFilter() != uifx.ColorNone || p.BlurFilter() != uifx.BlurNone {
		t.Error("omitted filters must default to None")
	}
	if p.EffectColor() != uifx.White {
		t.Errorf("EffectColor = %v, want white", p.EffectColor())
	}
}

func TestParse_FullPreset(t *testing.T) {
	src := []byte(`name: sepia-soft
toneLevel: 0.75
blur: 1.5
tone: Sepia
color: Add
blurMode: Medium
effectColor:
  r: 1
  g: 0.5
  b: 0.25
  a: 1
`)
	pr, err := Parse(src)
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p, err := pr.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.ToneFilter() != uifx.ToneSepia || p.ColorFilter() != uifx.ColorAdd || p.BlurFilter() != uifx.BlurMedium {
		t.Errorf("filters = %v/%v/%v, want Sepia/Add/Medium",
			p.ToneFilter(), p.ColorFilter(), p.BlurFilter())
	}
	if p.ToneLevel() != 0.75 || p.Blur() != 1.5 {
		t.Errorf("ToneLevel = %v, Blur = %v", p.ToneLevel(), p.Blur())
	}
	if got := p.EffectColor(); got.G != 0.5 || got.B != 0.25 {
		t.Errorf("EffectColor = %v", got)
	}
}

func TestParse_ClampsOutOfRange(t *testing.T) {
	pr, err := Parse([]byte("toneLevel: 3.5\nblur: -1\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	p, err := pr.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}
	if p.ToneLevel() != 1 {
		t.Errorf("ToneLevel = %v, want clamped to 1", p.ToneLevel())
	}
	if p.Blur() != 0 {
		t.Errorf("Blur = %v, want clamped to 0", p.Blur())
	}
}

func TestParse_UnknownFilterFails(t *testing.T) {
	pr, err := Parse([]byte("tone: Posterize\n"))
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	if _, err := pr.Params(); err == nil {
		t.Error("unknown filter name must fail Params")
	}
}

func TestRoundTrip_SaveLoad(t *testing.T) {
	p := uifx.NewParams()
	p.SetToneLevel(0.5)
	p.SetToneFilter(uifx.ToneGrayscale)
	p.SetBlurFilter(uifx.BlurDetail)
	p.SetEffectColor(uifx.RGBA{R: 0.25, G: 0.5, B: 0.75, A: 1})

	path := filepath.Join(t.TempDir(), "grayscale.yaml")
	if err := FromParams("grayscale", p).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}

	pr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := pr.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}

	if got.ToneLevel() != p.ToneLevel() ||
		got.ToneFilter() != p.ToneFilter() ||
		got.BlurFilter() != p.BlurFilter() ||
		got.EffectColor() != p.EffectColor() {
		t.Error("preset round trip must preserve the configuration")
	}

	// The packed channels must also agree, since that is what the
	// renderer ultimately consumes.
	a1, b1 := p.PackedChannels()
	a2, b2 := got.PackedChannels()
	if a1 != a2 || b1 != b2 {
		t.Errorf("packed channels diverged: (%v, %v) vs (%v, %v)", a1, b1, a2, b2)
	}
}

func TestRoundTrip_CustomFactor(t *testing.T) {
	p := uifx.NewParams()
	p.SetCustom(f32.Vec4{0.1, 0.2, 0.3, 0.4})

	path := filepath.Join(t.TempDir(), "custom.yaml")
	if err := FromParams("custom", p).Save(path); err != nil {
		t.Fatalf("Save: %v", err)
	}
	pr, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	got, err := pr.Params()
	if err != nil {
		t.Fatalf("Params: %v", err)
	}

	if !got.CustomEffect() {
		t.Fatal("custom flag must survive the round trip")
	}
	a1, _ := p.PackedChannels()
	a2, _ := got.PackedChannels()
	if a1 != a2 {
		t.Errorf("packed custom channel diverged: %v vs %v", a1, a2)
	}
}
