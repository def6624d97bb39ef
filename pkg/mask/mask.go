// Package mask implements the fixed-position digit masks used by Brazilian
// fiscal identifiers. Both transforms are pure: the input is reduced to its
// digits, truncated to the target length, and separators are inserted at
// fixed offsets. Applying a mask to its own output yields the same output.
package mask

import "strings"

const (
	cpfDigits  = 11
	cnpjDigits = 14
)

// CPF formats raw as a personal fiscal identifier (ddd.ddd.ddd-dd).
// Non-digit characters are ignored; inputs longer than 11 digits are
// truncated. Partial inputs yield partial masks.
func CPF(raw string) string {
	return apply(raw, cpfDigits, map[int]byte{3: '.', 6: '.', 9: '-'})
}

// CNPJ formats raw as an organization fiscal identifier (dd.ddd.ddd/dddd-dd).
// Same truncation and non-digit handling as CPF.
func CNPJ(raw string) string {
	return apply(raw, cnpjDigits, map[int]byte{2: '.', 5: '.', 8: '/', 12: '-'})
}

func apply(raw string, max int, separators map[int]byte) string {
	var out strings.Builder
	count := 0
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if count == max {
			break
		}
		if sep, ok := separators[count]; ok && count > 0 {
			out.WriteByte(sep)
		}
		out.WriteRune(r)
		count++
	}
	return out.String()
}
