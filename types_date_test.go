package findash

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want Date
		err  bool
	}{
		{in: "2024-07-20", want: NewDate(2024, time.July, 20)},
		{in: "2025-7-1", want: NewDate(2025, time.July, 1)},
		{in: " 2024-01-02 ", want: NewDate(2024, time.January, 2)},
		{in: "20/07/2024", err: true},
		{in: "", err: true},
	}
	for _, tc := range tests {
		got, err := ParseDate(tc.in)
		if tc.err {
			if err == nil {
				t.Errorf("ParseDate(%q) expected an error, got %v", tc.in, got)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseDate(%q) error = %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseDate(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestDateLong(t *testing.T) {
	d := NewDate(2024, time.July, 20)
	if got, want := d.Long(), "July 20, 2024"; got != want {
		t.Errorf("Long() = %q, want %q", got, want)
	}
	if got, want := d.String(), "2024-07-20"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestDateOrdering(t *testing.T) {
	a := NewDate(2024, time.July, 18)
	b := NewDate(2024, time.July, 20)
	if !a.Before(b) || b.Before(a) {
		t.Errorf("expected %v before %v", a, b)
	}
	if !b.After(a) {
		t.Errorf("expected %v after %v", b, a)
	}
	if got := a.Add(2); got != b {
		t.Errorf("Add(2) = %v, want %v", got, b)
	}
}
