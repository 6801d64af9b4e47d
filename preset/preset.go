// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package preset loads effect parameter presets from YAML files.
//
// A preset is a declarative snapshot of one Params configuration.
// Filters are stored by their canonical names so preset files stay
// readable and stable across enum reordering. Loading goes through the
// Params accessors, so out-of-range values in a file are clamped the
// same way runtime edits are.
package preset

import (
	"fmt"
	"os"

	"golang.org/x/image/math/f32"
	"gopkg.in/yaml.v3"

	"github.com/gogpu/uifx"
)

// Color is the YAML shape of an effect color.
type Color struct {
	R float64 `yaml:"r"`
	G float64 `yaml:"g"`
	B float64 `yaml:"b"`
	A float64 `yaml:"a"`
}

// Preset is the on-disk shape of an effect configuration.
type Preset struct {
	Name      string  `yaml:"name"`
	ToneLevel float64 `yaml:"toneLevel"`
	Blur      float64 `yaml:"blur"`
	Tone      string  `yaml:"tone"`
	Color     string  `yaml:"color"`
	BlurMode  string  `yaml:"blurMode"`
	Effect    Color   `yaml:"effectColor"`

	Custom       bool       `yaml:"custom"`
	CustomFactor [4]float64 `yaml:"customFactor,flow"`
}

// FromParams snapshots p into a preset named name.
func FromParams(name string, p *uifx.Params) *Preset {
	c := p.EffectColor()
	pr := &Preset{
		Name:      name,
		ToneLevel: p.ToneLevel(),
		Blur:      p.Blur(),
		Tone:      p.ToneFilter().String(),
		Color:     p.ColorFilter().String(),
		BlurMode:  p.BlurFilter().String(),
		Effect:    Color{R: c.R, G: c.G, B: c.B, A: c.A},
	}
	if p.CustomEffect() {
		pr.Custom = true
		f := p.CustomFactor()
		for i := range pr.CustomFactor {
			pr.CustomFactor[i] = float64(f[i])
		}
	}
	return pr
}

// Params materializes the preset as a parameter set. Unknown filter
// names are an error; numeric fields are clamped by the accessors.
func (pr *Preset) Params() (*uifx.Params, error) {
	tone, err := uifx.ParseToneFilter(pr.Tone)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", pr.Name, err)
	}
	color, err := uifx.ParseColorFilter(pr.Color)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", pr.Name, err)
	}
	blur, err := uifx.ParseBlurFilter(pr.BlurMode)
	if err != nil {
		return nil, fmt.Errorf("preset %q: %w", pr.Name, err)
	}

	p := uifx.NewParams()
	p.SetToneLevel(pr.ToneLevel)
	p.SetBlur(pr.Blur)
	p.SetToneFilter(tone)
	p.SetColorFilter(color)
	p.SetBlurFilter(blur)
	p.SetEffectColor(uifx.RGBA{R: pr.Effect.R, G: pr.Effect.G, B: pr.Effect.B, A: pr.Effect.A})
	if pr.Custom {
		p.SetCustom(f32.Vec4{
			float32(pr.CustomFactor[0]),
			float32(pr.CustomFactor[1]),
			float32(pr.CustomFactor[2]),
			float32(pr.CustomFactor[3]),
		})
	}
	return p, nil
}

// Load reads a preset from a YAML file.
func Load(path string) (*Preset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("preset: read %s: %w", path, err)
	}
	return Parse(data)
}

// Parse decodes a preset from YAML bytes.
func Parse(data []byte) (*Preset, error) {
	pr := &Preset{
		ToneLevel: 1,
		Blur:      1,
		Tone:      uifx.ToneNone.String(),
		Color:     uifx.ColorNone.String(),
		BlurMode:  uifx.BlurNone.String(),
		Effect:    Color{R: 1, G: 1, B: 1, A: 1},
	}
	if err := yaml.Unmarshal(data, pr); err != nil {
		return nil, fmt.Errorf("preset: decode: %w", err)
	}
	return pr, nil
}

// Save writes the preset to a YAML file.
func (pr *Preset) Save(path string) error {
	data, err := yaml.Marshal(pr)
	if err != nil {
		return fmt.Errorf("preset: encode %q: %w", pr.Name, err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("preset: write %s: %w", path, err)
	}
	return nil
}
