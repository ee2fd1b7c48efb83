package decimal

import "testing"

func TestPow10(t *testing.T) {
	tests := []struct {
		n    int32
		want string
	}{
		{0, "1"},
		{1, "10"},
		{5, "100000"},
		{20, "100000000000000000000"},
	}
	for _, tt := range tests {
		if got := pow10(tt.n).String(); got != tt.want {
			t.Errorf("pow10(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestPow10NegativePanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Errorf("pow10(-1) did not panic")
		}
	}()
	pow10(-1)
}

func TestPow10CachedResultIsShared(t *testing.T) {
	a := pow10(40)
	b := pow10(40)
	if a != b {
		t.Errorf("pow10(40) returned distinct pointers across calls; cache should share them")
	}
}
