package decimal

import "math/big"

// align rescales the operand with fewer fractional digits so both a and
// b share the larger decimals count. Pure: returns new values, does not
// mutate its arguments.
func align(a, b DecimalNumber) (DecimalNumber, DecimalNumber) {
	d := a.decimals
	if b.decimals > d {
		d = b.decimals
	}
	return rescale(a, d), rescale(b, d)
}

// rescale multiplies v's mantissa by 10^(target-v.decimals) so it is
// expressed with target fractional digits. target must be >= v.decimals.
func rescale(v DecimalNumber, target int32) DecimalNumber {
	if v.decimals == target {
		return v.Clone()
	}
	shift := target - v.decimals
	m := new(big.Int).Mul(v.mantissa, pow10(shift))
	return DecimalNumber{mantissa: m, decimals: target, positive: v.positive}
}

// roundTo rounds v to target fractional digits using round-half-to-even.
// If v already has target decimals or fewer, it is returned unchanged.
func roundTo(v DecimalNumber, target int32) DecimalNumber {
	if v.decimals <= target {
		return v.Clone()
	}
	k := v.decimals - target
	divisor := pow10(k)

	q, r := new(big.Int).QuoRem(v.mantissa, divisor, new(big.Int))
	half := new(big.Int).Rsh(divisor, 1) // divisor is always even for k>=1

	switch r.Cmp(half) {
	case 1:
		q.Add(q, big.NewInt(1))
	case 0:
		// Exactly half: round so the retained digit is even. big.Int.Bit
		// reports q's least significant binary bit, but q is a decimal
		// digit string's integer value, so parity of q as an integer is
		// exactly parity of its last decimal digit.
		if q.Bit(0) == 1 {
			q.Add(q, big.NewInt(1))
		}
	}

	positive := v.positive
	if q.Sign() == 0 {
		positive = true
	}
	return DecimalNumber{mantissa: q, decimals: target, positive: positive}
}

// normalize rounds v to the current process-wide scale and returns a zero
// result in its canonical form (mantissa 0, decimals 0, positive). Every
// public operation's result passes through normalize before being
// returned.
func normalize(v DecimalNumber) DecimalNumber {
	r := roundTo(v, GetScale())
	if r.IsZero() {
		return Zero()
	}
	return r
}

// UnaryPlus re-normalizes v to the current scale. It is the user-visible
// mechanism to snap a value produced under one scale to the scale in
// effect now; deliberately not a no-op when scale has since changed.
func UnaryPlus(v DecimalNumber) DecimalNumber {
	return normalize(v)
}

// Negate flips v's sign, leaving the mantissa and decimals unchanged. A
// zero mantissa is always reported as positive.
func Negate(v DecimalNumber) DecimalNumber {
	if v.IsZero() {
		return v.Clone()
	}
	r := v.Clone()
	r.positive = !r.positive
	return r
}

// Abs returns v with positive forced true.
func Abs(v DecimalNumber) DecimalNumber {
	r := v.Clone()
	r.positive = true
	return r
}

// Compare returns -1, 0 or 1 according to whether a is less than, equal
// to, or greater than b.
func Compare(a, b DecimalNumber) int {
	aa, bb := align(a, b)
	return aa.signedMantissa().Cmp(bb.signedMantissa())
}

// CompareInt compares a DecimalNumber with a plain integer.
func CompareInt(a DecimalNumber, n int64) int {
	return Compare(a, lift(n))
}

// Equal reports whether a and b represent the same value.
func Equal(a, b DecimalNumber) bool {
	return Compare(a, b) == 0
}
