// SPDX-License-Identifier: Apache-2.0

package legal

import "strings"

var fractionGlyphs = strings.NewReplacer(
	"½", "1/2",
	"¼", "1/4",
)

// Normalize rewrites the one-half and one-quarter glyphs into ASCII
// slash notation. Every other rune is left alone, so Normalize is
// idempotent.
func Normalize(text string) string {
	if !strings.ContainsAny(text, "½¼") {
		return text
	}
	return fractionGlyphs.Replace(text)
}
