package decimal

import "math/big"

// sqrtGuardDigits is the small guard carried beyond the requested
// scale: working precision is scale+k fractional digits so
// normalize's final round-half-to-even has real digits to decide a tie
// on, rather than the exact boundary of the integer square root itself.
const sqrtGuardDigits = 2

// SquareRoot returns normalize(sqrt(v)). It fails with ErrMathDomain
// when v is negative.
func SquareRoot(v DecimalNumber) (DecimalNumber, error) {
	if !v.positive && !v.IsZero() {
		return DecimalNumber{}, ErrMathDomain
	}
	if v.IsZero() {
		return Zero(), nil
	}

	workingDecimals := GetScale() + sqrtGuardDigits

	// Lift v to a big integer M = mantissa * 10^(2*workingDecimals - decimals)
	// so that floor(sqrt(M)) carries workingDecimals fractional digits of
	// the true root.
	shift := 2*workingDecimals - v.decimals
	M := new(big.Int).Set(v.mantissa)
	if shift >= 0 {
		M.Mul(M, pow10(shift))
	} else {
		M.Quo(M, pow10(-shift))
	}

	r := bigIntSqrt(M)

	return normalize(DecimalNumber{mantissa: r, decimals: workingDecimals, positive: true}), nil
}

// bigIntSqrt computes the greatest integer r such that r*r <= m, via
// Newton–Raphson iteration started from a bit-length-based initial
// estimate (a power of two at least as large as the true root).
func bigIntSqrt(m *big.Int) *big.Int {
	if m.Sign() == 0 {
		return big.NewInt(0)
	}

	// Initial estimate: 2^ceil(bitlen(m)/2), guaranteed >= sqrt(m).
	bitLen := m.BitLen()
	guessExp := (bitLen + 1) / 2
	r := new(big.Int).Lsh(big.NewInt(1), uint(guessExp))

	two := big.NewInt(2)
	for {
		// next = (r + m/r) / 2
		quotient := new(big.Int).Quo(m, r)
		next := new(big.Int).Add(r, quotient)
		next.Quo(next, two)

		if next.Cmp(r) >= 0 {
			break
		}
		r = next
	}

	// r now satisfies r*r <= m < (r+1)*(r+1); the loop below is a
	// defensive check that nudges r down should r^2 ever exceed m.
	rSq := new(big.Int).Mul(r, r)
	for rSq.Cmp(m) > 0 {
		r.Sub(r, big.NewInt(1))
		rSq.Mul(r, r)
	}
	return r
}
