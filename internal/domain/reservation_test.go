package domain_test

import (
	"testing"
	"time"

	"github.com/Gunvolt24/moa_wifi/internal/domain"
)

func TestNormalizeSurname(t *testing.T) {
	cases := map[string]string{
		"Smith":      "smith",
		"  SMITH  ":  "smith",
		"müller":     "müller",
		"":           "",
		"   ":        "",
		"O'Brien":    "o'brien",
		"van Helden": "van helden",
	}
	for in, want := range cases {
		if got := domain.NormalizeSurname(in); got != want {
			t.Fatalf("NormalizeSurname(%q): want %q, got %q", in, want, got)
		}
	}
}

func TestDateOnly(t *testing.T) {
	in := time.Date(2026, 8, 31, 23, 59, 59, 123, time.FixedZone("MSK", 3*3600))
	got := domain.DateOnly(in)

	// 23:59 MSK = 20:59 UTC того же дня.
	want := time.Date(2026, 8, 31, 0, 0, 0, 0, time.UTC)
	if !got.Equal(want) {
		t.Fatalf("DateOnly: want %v, got %v", want, got)
	}
}

func TestNotFound(t *testing.T) {
	res := domain.NotFound()
	if res == nil || res.Valid || res.FromCache {
		t.Fatalf("unexpected NotFound result: %+v", res)
	}
}
