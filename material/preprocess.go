// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package material

import (
	"fmt"
	"strings"
)

// featureHeaderMark opens the generated feature header. The decoding
// shader must not declare these consts itself.
const featureHeaderMark = "// --- generated feature header ---"

// Preprocess prepends the feature header to WGSL source: one boolean
// const per known keyword, true when enabled on this variant. Shader
// code branches on the consts; naga folds the disabled branches during
// compilation, so a variant carries only the code its keywords select.
//
// The header lists every known keyword in AllKeywords order regardless
// of the enabled set, keeping the output stable for identical inputs.
func Preprocess(source string, keywords []Keyword) string {
	enabled := make(map[Keyword]bool, len(keywords))
	for _, kw := range keywords {
		enabled[kw] = true
	}

	var sb strings.Builder
	sb.WriteString(featureHeaderMark)
	sb.WriteByte('\n')
	for _, kw := range AllKeywords() {
		fmt.Fprintf(&sb, "const %s: bool = %t;\n", kw, enabled[kw])
	}
	sb.WriteByte('\n')
	sb.WriteString(source)
	return sb.String()
}
