package dataprocessing

import (
	"regexp"
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// stripMarks decomposes accented characters and drops the combining marks, so
// "PRODUÇÃO" and "PRODUCAO" reduce to the same skeleton.
var stripMarks = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

var (
	// Strays are replaced with a space; / ( ) % - survive because domain
	// labels like "T/H", "QTD (TON)" and "%" depend on them.
	nonLabelChars = regexp.MustCompile(`[^\w\s/()%-]`)
	multiSpace    = regexp.MustCompile(`\s+`)
)

// NormalizeKey reduces a header or label to its canonical lookup skeleton:
// accents stripped, upper-cased, stray symbols collapsed to single spaces.
// It is total (empty in, empty out) and idempotent, so it is safe to apply
// both to raw headers and to keys that were already normalized.
func NormalizeKey(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return ""
	}
	if folded, _, err := transform.String(stripMarks, s); err == nil {
		s = folded
	}
	s = strings.ToUpper(s)
	s = nonLabelChars.ReplaceAllString(s, " ")
	s = multiSpace.ReplaceAllString(s, " ")
	return strings.TrimSpace(s)
}

// NormalizeRow re-keys a raw row by normalized header skeletons.
func NormalizeRow(raw RawRow) Row {
	row := make(Row, len(raw))
	for k, v := range raw {
		row[NormalizeKey(k)] = v
	}
	return row
}
