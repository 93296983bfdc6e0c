package dataprocessing

import (
	"math"
	"regexp"
	"strconv"
	"strings"
)

var (
	asciiLetters  = regexp.MustCompile(`[a-zA-Z]+`)
	nonNumeric    = regexp.MustCompile(`[^\d.,-]`)
	anyWhitespace = regexp.MustCompile(`\s+`)
)

// ParseNumberBR converts a locale-formatted, possibly unit-suffixed cell into
// a float. It understands Brazilian decimal commas ("1.234,56"), plain decimal
// points ("1234.56") and glued unit suffixes ("12kg", "500 ton"). Every
// tonnage and throughput figure in the pipeline passes through here. Returns
// nil for empty, non-finite or unparseable input; it never fails.
func ParseNumberBR(v CellValue) *float64 {
	switch v.Kind {
	case CellNumber:
		if math.IsNaN(v.Number) || math.IsInf(v.Number, 0) {
			return nil
		}
		n := v.Number
		return &n
	case CellText:
		return parseNumberText(v.Text)
	default:
		return nil
	}
}

func parseNumberText(s string) *float64 {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	s = asciiLetters.ReplaceAllString(s, " ")
	s = nonNumeric.ReplaceAllString(s, " ")
	s = anyWhitespace.ReplaceAllString(s, "")
	if s == "" {
		return nil
	}
	// Both separators present: period is a thousands separator, comma the
	// decimal point. Comma alone is the decimal point. Period alone is
	// already valid.
	if strings.Contains(s, ",") && strings.Contains(s, ".") {
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	} else if strings.Contains(s, ",") {
		s = strings.ReplaceAll(s, ",", ".")
	}
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsNaN(n) || math.IsInf(n, 0) {
		return nil
	}
	return &n
}
