package decimal

import (
	"math/big"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestZero(t *testing.T) {
	z := Zero()
	if !z.IsZero() || !z.positive || z.decimals != 0 {
		t.Errorf("Zero() = %+v, want mantissa=0 decimals=0 positive=true", z)
	}
}

func TestNewFromInt(t *testing.T) {
	tests := []struct {
		input int64
		want  string
	}{
		{0, "0"},
		{123, "123"},
		{-123, "-123"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			got := NewFromInt(tt.input)
			if got.String() != tt.want {
				t.Errorf("NewFromInt(%d) = %v, want %v", tt.input, got, tt.want)
			}
		})
	}
}

func TestNewFromParts(t *testing.T) {
	tests := []struct {
		name     string
		digits   string
		decimals int32
		want     string
		wantErr  bool
	}{
		{"integer", "123", 0, "123", false},
		{"fraction", "12345", 2, "123.45", false},
		{"negative", "-12345", 2, "-123.45", false},
		{"negative decimals", "123", -1, "", true},
		{"zero mantissa stays positive", "-0", 2, "0.00", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := NewFromParts(tt.digits, tt.decimals)
			if (err != nil) != tt.wantErr {
				t.Errorf("NewFromParts(%q, %d) error = %v, wantErr %v", tt.digits, tt.decimals, err, tt.wantErr)
			}
			if !tt.wantErr && got.String() != tt.want {
				t.Errorf("NewFromParts(%q, %d) = %v, want %v", tt.digits, tt.decimals, got, tt.want)
			}
		})
	}
}

func TestCloneAndCopyFrom(t *testing.T) {
	a := NewFromInt(42)
	b := a.Clone()
	b.mantissa.SetInt64(7)
	if a.mantissa.Int64() != 42 {
		t.Errorf("Clone shares mutable state: mutating clone changed original to %v", a.mantissa)
	}

	var c DecimalNumber
	c.CopyFrom(a)
	if !Equal(c, a) {
		t.Errorf("CopyFrom(%v) = %v, want equal", a, c)
	}
	c.mantissa.SetInt64(99)
	if a.mantissa.Int64() != 42 {
		t.Errorf("CopyFrom shares mutable state: mutating destination changed source to %v", a.mantissa)
	}
}

func TestScale(t *testing.T) {
	saved := GetScale()
	defer SetScale(saved)

	SetScale(4)
	if GetScale() != 4 {
		t.Errorf("GetScale() = %d, want 4", GetScale())
	}

	SetScale(0)
	if GetScale() != 1 {
		t.Errorf("SetScale(0) should clamp to 1, got %d", GetScale())
	}

	SetScale(-5)
	if GetScale() != 1 {
		t.Errorf("SetScale(-5) should clamp to 1, got %d", GetScale())
	}
}

func TestCompare(t *testing.T) {
	tests := []struct {
		name string
		a, b DecimalNumber
		want int
	}{
		{"equal same scale", NewFromInt(5), NewFromInt(5), 0},
		{"equal different scale", mustParts("500", 2), NewFromInt(5), 0},
		{"less", NewFromInt(3), NewFromInt(5), -1},
		{"greater", NewFromInt(5), NewFromInt(3), 1},
		{"negative less than positive", NewFromInt(-1), NewFromInt(1), -1},
		{"zero equals negative zero form", mustParts("-0", 3), Zero(), 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Compare(tt.a, tt.b); got != tt.want {
				t.Errorf("Compare(%v, %v) = %d, want %d", tt.a, tt.b, got, tt.want)
			}
		})
	}
}

func TestCompareInt(t *testing.T) {
	if CompareInt(NewFromInt(5), 5) != 0 {
		t.Errorf("CompareInt(5, 5) != 0")
	}
	if CompareInt(NewFromInt(4), 5) >= 0 {
		t.Errorf("CompareInt(4, 5) >= 0")
	}
}

func mustParts(digits string, decimals int32) DecimalNumber {
	v, err := NewFromParts(digits, decimals)
	if err != nil {
		panic(err)
	}
	return v
}

// cmpDecimal compares two DecimalNumber values field-by-field, used
// where a plain String() comparison would hide a canonical-form bug
// (e.g. a stray non-canonical decimals count on an otherwise-equal
// value) that Equal/Compare are specifically not meant to see.
func cmpDecimal(t *testing.T, got, want DecimalNumber) {
	t.Helper()
	diff := cmp.Diff(want, got,
		cmp.AllowUnexported(DecimalNumber{}),
		cmp.Comparer(func(a, b *big.Int) bool { return a.Cmp(b) == 0 }),
	)
	if diff != "" {
		t.Errorf("DecimalNumber mismatch (-want +got):\n%s", diff)
	}
}

func TestCanonicalFormOfParsedZero(t *testing.T) {
	got, err := NewFromParts("-0", 0)
	if err != nil {
		t.Fatalf("NewFromParts: %v", err)
	}
	cmpDecimal(t, got, Zero())
}

func TestNewFromMantissa(t *testing.T) {
	_, err := NewFromMantissa(big.NewInt(5), -1, true)
	if err != ErrBadInit {
		t.Errorf("NewFromMantissa with negative decimals = %v, want ErrBadInit", err)
	}

	v, err := NewFromMantissa(big.NewInt(-5), 1, true)
	if err != nil {
		t.Fatalf("NewFromMantissa: %v", err)
	}
	// sign is carried by the explicit flag, not by a negative mantissa;
	// the constructor takes mantissa's absolute value.
	if v.String() != "0.5" {
		t.Errorf("NewFromMantissa(-5, 1, true) = %v, want 0.5", v)
	}
}
