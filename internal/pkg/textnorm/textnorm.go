// Package textnorm rewrites text into the character set the certificate font can draw.
package textnorm

import (
	"strings"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
)

var replacements = map[rune]rune{
	'–': '-', '—': '-',
	'“': '"', '”': '"',
	'‘': '\'', '’': '\'',
	'á': 'a', 'é': 'e', 'í': 'i', 'ó': 'o', 'ú': 'u',
	'Á': 'A', 'É': 'E', 'Í': 'I', 'Ó': 'O', 'Ú': 'U',
	'ñ': 'n', 'Ñ': 'N',
}

var table = runes.Map(func(r rune) rune {
	if rep, ok := replacements[r]; ok {
		return rep
	}
	return r
})

// Normalize replaces typographic punctuation with ASCII and strips the Spanish
// diacritics in a fixed table. Every other rune is kept as is.
func Normalize(s string) string {
	if s == "" {
		return s
	}

	out, _, err := transform.String(table, s)
	if err != nil {
		out = s
	}

	return strings.ReplaceAll(out, "…", "...")
}
