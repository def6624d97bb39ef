package render

import (
	"testing"
	"time"
)

func TestLongDate(t *testing.T) {
	cases := []struct {
		date time.Time
		want string
	}{
		{time.Date(2026, time.March, 12, 0, 0, 0, 0, time.UTC), "12 de março de 2026"},
		{time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC), "1 de janeiro de 2026"},
		{time.Date(1999, time.December, 31, 0, 0, 0, 0, time.UTC), "31 de dezembro de 1999"},
	}
	for _, tc := range cases {
		if got := LongDate(tc.date); got != tc.want {
			t.Fatalf("LongDate(%v): expected %q, got %q", tc.date, tc.want, got)
		}
	}
}

func TestLongDateISO(t *testing.T) {
	if got := LongDateISO("2026-08-24"); got != "24 de agosto de 2026" {
		t.Fatalf("expected long form, got %q", got)
	}
}

func TestLongDateISOPassesThroughUnparseableInput(t *testing.T) {
	if got := LongDateISO("2026-08"); got != "2026-08" {
		t.Fatalf("expected pass-through, got %q", got)
	}
	if got := LongDateISO(""); got != "" {
		t.Fatalf("expected empty pass-through, got %q", got)
	}
}
