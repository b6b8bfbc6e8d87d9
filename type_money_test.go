package findash

import (
	"encoding/json"
	"testing"
)

func TestMoneyArithmetic(t *testing.T) {
	a := M(150.75)
	b := M(49.25)
	if got, want := a.Add(b), M(200); !got.Equal(want) {
		t.Errorf("Add = %v, want %v", got, want)
	}
	if got, want := a.Sub(b), M(101.50); !got.Equal(want) {
		t.Errorf("Sub = %v, want %v", got, want)
	}
	if got, want := M(-150.75).Abs(), a; !got.Equal(want) {
		t.Errorf("Abs = %v, want %v", got, want)
	}
	if got, want := M(64000).Mul(Q(0.5)), M(32000); !got.Equal(want) {
		t.Errorf("Mul = %v, want %v", got, want)
	}
}

func TestMoneyPercentOf(t *testing.T) {
	if got, want := M(94.5).PercentOf(M(200)), Percent(47.25); !got.Equal(want) {
		t.Errorf("PercentOf = %v, want %v", got, want)
	}
	// zero denominator must not yield NaN or Inf
	if got := M(100).PercentOf(M(0)); got != 0 {
		t.Errorf("PercentOf zero = %v, want 0", got)
	}
}

func TestMoneyJSONIsRawNumber(t *testing.T) {
	data, err := json.Marshal(M(150.75))
	if err != nil {
		t.Fatalf("Marshal error = %v", err)
	}
	if string(data) != "150.75" {
		t.Errorf("Marshal = %s, want an unquoted 150.75", data)
	}

	var m Money
	if err := json.Unmarshal([]byte("-0.1"), &m); err != nil {
		t.Fatalf("Unmarshal error = %v", err)
	}
	if !m.Equal(M(-0.1)) {
		t.Errorf("Unmarshal = %v, want -0.1", m)
	}
}

func TestMoneyExactDecimal(t *testing.T) {
	// 0.1+0.2 must be exactly 0.3, not a float artifact
	got := M(0.1).Add(M(0.2))
	if got.Decimal().String() != "0.3" {
		t.Errorf("0.1+0.2 = %s, want 0.3", got.Decimal())
	}
}

func TestMoneyStrings(t *testing.T) {
	if got, want := M(1234.56).String(), "$1,234.56"; got != want {
		t.Errorf("String = %q, want %q", got, want)
	}
	if got, want := M(10).SignedString(), "+$10.00"; got != want {
		t.Errorf("SignedString = %q, want %q", got, want)
	}
	if got, want := M(0).SignedString(), "-"; got != want {
		t.Errorf("SignedString zero = %q, want %q", got, want)
	}
}
