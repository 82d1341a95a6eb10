package csvimport

import (
	"strconv"
	"strings"
)

// Numeric coercion used on receipt rows. Values arrive from spreadsheets
// with currency symbols, thousands separators and stray whitespace; the
// pipeline strips everything that cannot be part of the number and parses
// what remains. Unparsable values coerce to zero rather than failing the
// row, so the sign check downstream is the sole gate.

// ParseLooseInt keeps digits and a leading minus sign, then parses.
// Unparsable input yields zero.
func ParseLooseInt(s string) int {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '-' {
			sb.WriteRune(r)
		}
	}
	n, err := strconv.Atoi(sb.String())
	if err != nil {
		return 0
	}
	return n
}

// ParseLooseDecimal keeps digits, the decimal point and a minus sign,
// returning the cleaned string for decimal parsing. Empty result means
// "treat as zero".
func ParseLooseDecimal(s string) string {
	var sb strings.Builder
	for _, r := range s {
		if (r >= '0' && r <= '9') || r == '.' || r == '-' {
			sb.WriteRune(r)
		}
	}
	return sb.String()
}
