package date

import (
	"errors"
	"testing"
	"time"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in   string
		want Date
	}{
		{"2024-01-31", New(2024, time.January, 31)},
		{"2024-1-3", New(2024, time.January, 3)},
		{"2024/01/31", New(2024, time.January, 31)}, // slashes are normalized
		{" 2024-06-15 ", New(2024, time.June, 15)},
	}
	for _, tt := range tests {
		got, err := Parse(tt.in)
		if err != nil {
			t.Errorf("Parse(%q) error = %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("Parse(%q) = %s, want %s", tt.in, got, tt.want)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	_, err := Parse("31/01/2024") // day-first is not a valid year-first date
	if err == nil {
		t.Fatal("Parse() expected error, got nil")
	}
	var perr *ParseError
	if !errors.As(err, &perr) {
		t.Fatalf("Parse() error = %T, want *ParseError", err)
	}
	if perr.Value != "31/01/2024" {
		t.Errorf("ParseError.Value = %q, want the original input", perr.Value)
	}
}

func TestParseDMY(t *testing.T) {
	got, err := ParseDMY("29/02/2024")
	if err != nil {
		t.Fatalf("ParseDMY() error = %v", err)
	}
	if want := New(2024, time.February, 29); got != want {
		t.Errorf("ParseDMY() = %s, want %s", got, want)
	}
	if _, err := ParseDMY("2024-02-29"); err == nil {
		t.Error("ParseDMY() expected error for a year-first input")
	}
}

func TestDate_Ordering(t *testing.T) {
	a := New(2024, time.March, 31)
	b := New(2024, time.April, 1)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("%s should be before %s", a, b)
	}
	if !b.After(a) {
		t.Errorf("%s should be after %s", b, a)
	}
	if a.Add(1) != b {
		t.Errorf("%s.Add(1) = %s, want %s", a, a.Add(1), b)
	}
}

func TestDate_Normalization(t *testing.T) {
	// Out-of-range components roll over, like time.Date.
	if got, want := New(2024, time.January, 32), New(2024, time.February, 1); got != want {
		t.Errorf("New(2024, Jan, 32) = %s, want %s", got, want)
	}
}
