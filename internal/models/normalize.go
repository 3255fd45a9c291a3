package models

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var deaccent = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// NormalizeName produces the shadow value backing case- and
// accent-insensitive uniqueness and search: lowercased, diacritics
// stripped, inner whitespace collapsed to single spaces.
func NormalizeName(name string) string {
	out, _, err := transform.String(deaccent, name)
	if err != nil {
		out = name
	}
	out = strings.ToLower(out)
	return strings.Join(strings.Fields(out), " ")
}
