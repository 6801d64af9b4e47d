// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"strings"
	"testing"
)

func TestPreprocess_EmitsEveryKeyword(t *testing.T) {
	out := Preprocess("fn main() {}", []Keyword{KeywordToneGrayscale, KeywordBlurFast})

	for _, kw := range AllKeywords() {
		want := "const " + string(kw) + ": bool = false;"
		if kw == KeywordToneGrayscale || kw == KeywordBlurFast {
			want = "const " + string(kw) + ": bool = true;"
		}
		if !strings.Contains(out, want) {
			t.Errorf("missing declaration %q in header", want)
		}
	}
	if !strings.HasSuffix(out, "fn main() {}") {
		t.Error("source must follow the generated header")
	}
}

func TestPreprocess_StableUnderKeywordOrder(t *testing.T) {
	a := Preprocess("src", []Keyword{KeywordToneSepia, KeywordColorAdd})
	b := Preprocess("src", []Keyword{KeywordColorAdd, KeywordToneSepia})
	if a != b {
		t.Error("header must be independent of keyword order")
	}
}

func TestPreprocess_NoKeywords(t *testing.T) {
	out := Preprocess("src", nil)
	if strings.Contains(out, "= true;") {
		t.Error("all-default variant must enable no keywords")
	}
	if !strings.Contains(out, "const "+string(KeywordToneGrayscale)+": bool = false;") {
		t.Error("header must still declare every keyword")
	}
}

func TestPreprocess_DeclarationCount(t *testing.T) {
	out := Preprocess("", nil)
	if got, want := strings.Count(out, "const "), len(AllKeywords()); got != want {
		t.Errorf("header declares %d consts, want %d", got, want)
	}
}

func TestDefaultShader_ReferencesContract(t *testing.T) {
	s := DefaultShader()
	if !s.Resolvable() {
		t.Fatal("DefaultShader must be resolvable")
	}
	// The embedded source must not declare the feature consts itself;
	// they come from the preprocessor.
	if strings.Contains(s.Source, "const TONE_GRAYSCALE") {
		t.Error("embedded shader must not declare feature consts")
	}
	for _, frag := range []string{"unpack_component", "63u", "vs_main", "fs_main"} {
		if !strings.Contains(s.Source, frag) {
			t.Errorf("embedded shader missing %q", frag)
		}
	}
}

func TestShader_Resolvable(t *testing.T) {
	tests := []struct {
		name   string
		shader *Shader
		want   bool
	}{
		{"nil handle", nil, false},
		{"empty name", &Shader{Source: "x"}, false},
		{"empty source", &Shader{Name: "x"}, false},
		{"complete", &Shader{Name: "x", Source: "y"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.shader.Resolvable(); got != tt.want {
				t.Errorf("Resolvable() = %v, want %v", got, tt.want)
			}
		})
	}
}
