package render

import (
	"fmt"
	"time"
)

// The rendered document uses a single fixed locale (pt-BR). Month names
// are spelled out in long-form dates; there is no pluggable translator.
var monthsPtBR = [...]string{
	"janeiro", "fevereiro", "março", "abril", "maio", "junho",
	"julho", "agosto", "setembro", "outubro", "novembro", "dezembro",
}

// LongDate renders t in the document's long form: "12 de março de 2026".
func LongDate(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), monthsPtBR[t.Month()-1], t.Year())
}

// LongDateISO parses an ISO calendar date (YYYY-MM-DD) and renders it in
// long form. Unparseable input is returned unchanged so a half-typed date
// never breaks the preview.
func LongDateISO(iso string) string {
	t, err := time.Parse("2006-01-02", iso)
	if err != nil {
		return iso
	}
	return LongDate(t)
}
