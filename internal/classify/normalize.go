// Package classify assigns bookkeeping transactions to income-statement
// buckets using ordered keyword rules over the free-text "group" field.
package classify

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

var stripAccents = transform.Chain(
	norm.NFD,
	runes.Remove(runes.In(unicode.Mn)),
	norm.NFC,
)

// Normalize lower-cases text and strips diacritics so rule keywords match
// both accented and unaccented spellings ("Custos Variáveis" and
// "Custos Variaveis" normalize identically). Bookkeeping exports mix both.
func Normalize(text string) string {
	out, _, err := transform.String(stripAccents, text)
	if err != nil {
		// Malformed UTF-8; fall back to plain lower-casing.
		return strings.ToLower(text)
	}
	return strings.ToLower(out)
}
