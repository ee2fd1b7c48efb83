package decimal

import "sync"

// constantGuardDigits matches the other transcendentals' habit of
// carrying a few extra digits of working precision so cumulative series
// rounding error never reaches the digit the caller actually asked for.
const constantGuardDigits = 8

// piCache and eCache hold a lazily materialized value together with the
// scale at which it was last computed. A read that races a refinement
// either sees the older value (still valid at >= the scale it was
// computed at) or the refined one; the cache is monotone, so both are
// acceptable.
type constantCache struct {
	mu               sync.RWMutex
	value            DecimalNumber
	computedDecimals int32
}

var (
	piCache = &constantCache{}
	eCache  = &constantCache{}
)

// get returns c's value rounded to scale, recomputing via compute when
// the cache is stale.
func (c *constantCache) get(scale int32, compute func(workingScale int32) DecimalNumber) DecimalNumber {
	c.mu.RLock()
	if c.computedDecimals >= scale {
		v := roundTo(c.value, scale)
		c.mu.RUnlock()
		return v
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.computedDecimals < scale {
		workingScale := scale + constantGuardDigits
		c.value = compute(workingScale)
		c.computedDecimals = workingScale
	}
	return roundTo(c.value, scale)
}

// Pi returns pi rounded to the current scale, recomputing and caching a
// higher-precision value whenever the cache was last computed at fewer
// decimals than the current scale demands.
func Pi() DecimalNumber {
	return piCache.get(GetScale(), computePi)
}

// E returns e rounded to the current scale, with the same progressive
// refinement and caching behavior as Pi.
func E() DecimalNumber {
	return eCache.get(GetScale(), computeE)
}

// computePi evaluates pi at workingScale fractional digits using the
// well-known spigot recipe built from the running variables
// (lasts, t, s, n, na, d, da): n/d produce successive series terms and s
// accumulates the sum until it stops changing.
func computePi(workingScale int32) DecimalNumber {
	return withScale(workingScale, func() DecimalNumber {
		lasts := Zero()
		t := NewFromInt(3)
		s := NewFromInt(3)
		n := NewFromInt(1)
		na := Zero()
		d := Zero()
		da := NewFromInt(24)

		for !Equal(s, lasts) {
			lasts = s
			n = Add(n, na)
			na = AddInt(na, 8)
			d = Add(d, da)
			da = AddInt(da, 32)

			num := Mul(t, n)
			quot, err := Div(num, d)
			if err != nil {
				// d starts at 0 and grows by da each iteration without
				// ever landing back on zero after the first addition, so
				// this can only happen from a logic error above.
				panic("decimal: pi series produced a zero divisor")
			}
			t = quot
			s = Add(s, t)
		}
		return s
	})
}

// computeE evaluates e at workingScale fractional digits as the running
// sum of 1/k!, stopping when the sum stops changing.
func computeE(workingScale int32) DecimalNumber {
	return withScale(workingScale, func() DecimalNumber {
		s := NewFromInt(2)
		term := NewFromInt(1)
		lasts := Zero()
		k := int64(1)

		for !Equal(s, lasts) {
			lasts = s
			k++
			var err error
			term, err = DivInt(term, k)
			if err != nil {
				panic("decimal: e series division by zero")
			}
			s = Add(s, term)
		}
		return s
	})
}

// withScale temporarily raises the process-wide scale to workingScale
// for the duration of fn, restoring the previous scale afterward. This
// is the mechanism every transcendental uses to carry guard digits
// through intermediate computation without leaking the raised precision
// into results the caller did not ask for.
func withScale(workingScale int32, fn func() DecimalNumber) DecimalNumber {
	saved := GetScale()
	SetScale(workingScale)
	defer SetScale(saved)
	return fn()
}
