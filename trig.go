package decimal

import "math/big"

// transcendentalGuardDigits is the extra working precision every
// function in this file carries during series summation and argument
// reduction, discarded again when the final result is normalized back
// to the caller's scale.
const transcendentalGuardDigits = 6

// Exp returns e^x, normalized to the current scale. Defined for all
// finite x.
//
// Argument reduction splits x into a truncated integer part n and a
// fractional remainder r = x - n with |r| < 1, then reconstructs
// e^x = e^n * e^r: e^n is obtained from the cached constant e via
// integer exponentiation, and e^r converges quickly from the Maclaurin
// series since |r| < 1.
func Exp(x DecimalNumber) DecimalNumber {
	scale := GetScale()
	return normalize(withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		n := x.ToIntTruncate()
		r := Sub(x, NewFromBigInt(n))

		frac := expSeries(r)
		if n.Sign() == 0 {
			return frac
		}
		whole, err := Pow(E(), n.Int64())
		if err != nil {
			// Pow(E(), n) only fails for negative n when E() is zero,
			// which never happens.
			panic("decimal: exp integer part computation failed")
		}
		return Mul(whole, frac)
	}))
}

// expSeries evaluates e^r via its Maclaurin series, summing until the
// running total stops changing.
func expSeries(r DecimalNumber) DecimalNumber {
	term := NewFromInt(1)
	sum := NewFromInt(1)
	k := int64(1)
	for {
		term = Mul(term, r)
		term, _ = DivInt(term, k)
		newSum := Add(sum, term)
		if Equal(newSum, sum) {
			break
		}
		sum = newSum
		k++
	}
	return sum
}

// ln10 is cached the same way Pi and E are: lazily computed, refined
// whenever the scale grows.
var ln10Cache = &constantCache{}

func ln10() DecimalNumber {
	return ln10Cache.get(GetScale(), func(workingScale int32) DecimalNumber {
		return withScale(workingScale, func() DecimalNumber {
			return lnNearOne(NewFromInt(10))
		})
	})
}

// Ln returns ln(x), normalized to the current scale. It fails with
// ErrMathDomain when x <= 0.
//
// x is decomposed exactly as m*10^k with m in [1, 10) by reinterpreting
// the mantissa's decimal point (no division, so no rounding error is
// introduced by the reduction itself); ln(x) = k*ln(10) + ln(m), and
// ln(m) is evaluated by the fast-converging series for m near 1.
func Ln(x DecimalNumber) (DecimalNumber, error) {
	if !x.positive || x.IsZero() {
		return DecimalNumber{}, ErrMathDomain
	}
	scale := GetScale()
	result := withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		m, k := decadeReduce(x)
		lm := lnNearOne(m)
		if k == 0 {
			return lm
		}
		return Add(lm, MulInt(ln10(), k))
	})
	return normalize(result), nil
}

// decadeReduce rewrites x (x > 0) as m*10^k with m in [1, 10).
func decadeReduce(x DecimalNumber) (m DecimalNumber, k int64) {
	numDigits := int32(len(x.mantissa.String()))
	k = int64(numDigits - 1 - x.decimals)
	m = DecimalNumber{mantissa: new(big.Int).Set(x.mantissa), decimals: numDigits - 1, positive: true}
	return m, k
}

// lnNearOne evaluates ln(m) for m > 0 via ln((1+u)/(1-u)) = 2*sum
// u^(2k+1)/(2k+1), u = (m-1)/(m+1). Convergence is fast for m close to
// 1 and still terminates, if more slowly, for m up to 10.
func lnNearOne(m DecimalNumber) DecimalNumber {
	num := SubInt(m, 1)
	den := AddInt(m, 1)
	u, _ := Div(num, den)

	usq := Mul(u, u)
	term := u
	sum := u
	n := int64(1)
	for {
		term = Mul(term, usq)
		denom := NewFromInt(2*n + 1)
		addend, _ := Div(term, denom)
		newSum := Add(sum, addend)
		if Equal(newSum, sum) {
			break
		}
		sum = newSum
		n++
	}
	return MulInt(sum, 2)
}

// sinInternal computes sin(x) for any finite x by reducing modulo 2*pi
// and then into the first quadrant, tracking sign and complement
// bookkeeping, before evaluating the Maclaurin series.
func sinInternal(x DecimalNumber) DecimalNumber {
	pi := Pi()
	twoPi := MulInt(pi, 2)
	halfPi, _ := DivInt(pi, 2)
	threeHalfPi := Add(pi, halfPi)

	q, _ := Div(x, twoPi)
	k := q.ToIntTruncate()
	r := Sub(x, Mul(NewFromBigInt(k), twoPi))
	if !r.positive && !r.IsZero() {
		r = Add(r, twoPi)
	}
	if Compare(r, twoPi) >= 0 {
		r = Sub(r, twoPi)
	}

	switch {
	case Compare(r, halfPi) < 0:
		return sinSeries(r)
	case Compare(r, pi) < 0:
		return sinSeries(Sub(pi, r))
	case Compare(r, threeHalfPi) < 0:
		return Negate(sinSeries(Sub(r, pi)))
	default:
		return Negate(sinSeries(Sub(twoPi, r)))
	}
}

// sinSeries evaluates sin(t) via its Maclaurin series for t already
// reduced into [0, pi/2].
func sinSeries(t DecimalNumber) DecimalNumber {
	term := t
	sum := t
	tsq := Mul(t, t)
	n := int64(1)
	negative := true
	for {
		term = Mul(term, tsq)
		denom := NewFromInt((2 * n) * (2*n + 1))
		term, _ = Div(term, denom)
		addend := term
		if negative {
			addend = Negate(addend)
		}
		newSum := Add(sum, addend)
		if Equal(newSum, sum) {
			break
		}
		sum = newSum
		negative = !negative
		n++
	}
	return sum
}

// Sin returns sin(x), normalized to the current scale.
func Sin(x DecimalNumber) DecimalNumber {
	scale := GetScale()
	return normalize(withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		return sinInternal(x)
	}))
}

// Cos returns cos(x), normalized to the current scale, computed as
// sin(x + pi/2).
func Cos(x DecimalNumber) DecimalNumber {
	scale := GetScale()
	return normalize(withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		halfPi, _ := DivInt(Pi(), 2)
		return sinInternal(Add(x, halfPi))
	}))
}

// Tan returns sin(x)/cos(x), normalized to the current scale. It fails
// with ErrDivisionByZero when cos(x) rounds to exactly zero at the
// current (user-visible) scale.
func Tan(x DecimalNumber) (DecimalNumber, error) {
	outerScale := GetScale()
	var divErr error
	result := withScale(outerScale+transcendentalGuardDigits, func() DecimalNumber {
		halfPi, _ := DivInt(Pi(), 2)
		s := sinInternal(x)
		c := sinInternal(Add(x, halfPi))
		if roundTo(c, outerScale).IsZero() {
			divErr = ErrDivisionByZero
			return DecimalNumber{}
		}
		q, _ := Div(s, c)
		return q
	})
	if divErr != nil {
		return DecimalNumber{}, divErr
	}
	return normalize(result), nil
}

// asinSeries evaluates asin(x) via its Maclaurin series for |x| <=
// sqrt(2)/2, where it converges quickly.
func asinSeries(x DecimalNumber) DecimalNumber {
	term := x
	sum := x
	xsq := Mul(x, x)
	n := int64(0)
	for {
		num := NewFromInt((2*n + 1) * (2*n + 1))
		den := Mul(NewFromInt(2*(n+1)), NewFromInt(2*n+3))
		ratio, _ := Div(num, den)
		term = Mul(term, Mul(ratio, xsq))
		newSum := Add(sum, term)
		if Equal(newSum, sum) {
			break
		}
		sum = newSum
		n++
	}
	return sum
}

// sqrtHalf is computed fresh (not cached) each call: it is cheap
// relative to the series it gates and its precision must always track
// the working scale in effect at the time.
func sqrtHalf() DecimalNumber {
	half, _ := DivInt(NewFromInt(1), 2)
	root, _ := SquareRoot(half)
	return root
}

// Asin returns asin(x), normalized to the current scale. It fails with
// ErrMathDomain when |x| > 1.
//
// For |x| <= sqrt(2)/2 the Maclaurin series is used directly; for
// larger |x| the identity asin(x) = pi/2 - asin(sqrt(1-x^2)) reduces
// the argument back into the fast-converging range.
func Asin(x DecimalNumber) (DecimalNumber, error) {
	if Compare(Abs(x), NewFromInt(1)) > 0 {
		return DecimalNumber{}, ErrMathDomain
	}
	scale := GetScale()
	result := withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		negative := !x.positive
		ax := Abs(x)

		var res DecimalNumber
		threshold := sqrtHalf()
		if Compare(ax, threshold) <= 0 {
			res = asinSeries(ax)
		} else {
			xsq := Mul(ax, ax)
			inner := Sub(NewFromInt(1), xsq)
			s, _ := SquareRoot(inner)
			halfPi, _ := DivInt(Pi(), 2)
			res = Sub(halfPi, asinSeries(s))
		}
		if negative {
			res = Negate(res)
		}
		return res
	})
	return normalize(result), nil
}

// Acos returns acos(x) = pi/2 - asin(x), normalized to the current
// scale. It fails with ErrMathDomain when |x| > 1.
func Acos(x DecimalNumber) (DecimalNumber, error) {
	asinX, err := Asin(x)
	if err != nil {
		return DecimalNumber{}, err
	}
	scale := GetScale()
	result := withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		halfPi, _ := DivInt(Pi(), 2)
		return Sub(halfPi, asinX)
	})
	return normalize(result), nil
}

// atanThreshold bounds the argument range in which the Maclaurin series
// for atan is evaluated directly; above it, atanReduced halves the
// argument via the half-angle identity until it falls back under this
// bound.
func atanThreshold() DecimalNumber {
	v, _ := NewFromMantissa(big.NewInt(1), 1, true) // 0.1
	return v
}

const atanMaxHalvings = 64

// atanSeries evaluates atan(x) via its Maclaurin series for small x.
func atanSeries(x DecimalNumber) DecimalNumber {
	term := x
	sum := x
	xsq := Mul(x, x)
	n := int64(1)
	negative := true
	for {
		term = Mul(term, xsq)
		denom := NewFromInt(2*n + 1)
		addend, _ := Div(term, denom)
		if negative {
			addend = Negate(addend)
		}
		newSum := Add(sum, addend)
		if Equal(newSum, sum) {
			break
		}
		sum = newSum
		negative = !negative
		n++
	}
	return sum
}

// atanReduced computes atan(x) for x >= 0 by repeatedly applying the
// half-angle identity atan(x) = 2*atan(x/(1+sqrt(1+x^2))) until the
// argument is small enough for the Maclaurin series to converge fast.
func atanReduced(x DecimalNumber) DecimalNumber {
	threshold := atanThreshold()
	cur := x
	halvings := 0
	for Compare(cur, threshold) > 0 && halvings < atanMaxHalvings {
		sq := Mul(cur, cur)
		s, _ := SquareRoot(AddInt(sq, 1))
		denom := AddInt(s, 1)
		cur, _ = Div(cur, denom)
		halvings++
	}
	res := atanSeries(cur)
	for i := 0; i < halvings; i++ {
		res = MulInt(res, 2)
	}
	return res
}

// Atan returns atan(x), normalized to the current scale. Defined for
// all finite x.
func Atan(x DecimalNumber) DecimalNumber {
	scale := GetScale()
	return normalize(withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		negative := !x.positive
		ax := Abs(x)

		var res DecimalNumber
		if Compare(ax, NewFromInt(1)) > 0 {
			halfPi, _ := DivInt(Pi(), 2)
			inv, _ := Div(NewFromInt(1), ax)
			res = Sub(halfPi, atanReduced(inv))
		} else {
			res = atanReduced(ax)
		}
		if negative {
			res = Negate(res)
		}
		return res
	}))
}

// Atan2 returns the quadrant-aware arctangent of y/x, normalized to the
// current scale. It fails with ErrMathDomain when both y and x are
// zero.
func Atan2(y, x DecimalNumber) (DecimalNumber, error) {
	if x.IsZero() && y.IsZero() {
		return DecimalNumber{}, ErrMathDomain
	}
	scale := GetScale()
	result := withScale(scale+transcendentalGuardDigits, func() DecimalNumber {
		halfPi, _ := DivInt(Pi(), 2)
		switch {
		case x.IsZero():
			if y.positive {
				return halfPi
			}
			return Negate(halfPi)
		case x.positive:
			q, _ := Div(y, x)
			return Atan(q)
		default: // x < 0
			q, _ := Div(y, x)
			r := Atan(q)
			if y.positive {
				return Add(r, Pi())
			}
			return Sub(r, Pi())
		}
	})
	return normalize(result), nil
}
