package decimal

import (
	"math/big"
	"strings"
)

// NewFromString parses s as a decimal literal matching the grammar
// [-+]?([0-9]+(\.[0-9]*)?|\.[0-9]+) and fails with ErrParseError for
// anything else: empty input, a doubled sign, more than one decimal
// point, or any character outside [0-9.+-]. The literal's declared
// precision is retained verbatim — NewFromString does not normalize to
// the current scale.
func NewFromString(s string) (DecimalNumber, error) {
	if s == "" {
		return DecimalNumber{}, ErrParseError
	}

	positive := true
	rest := s
	switch rest[0] {
	case '-':
		positive = false
		rest = rest[1:]
	case '+':
		rest = rest[1:]
	}
	if rest == "" {
		return DecimalNumber{}, ErrParseError
	}
	// A second sign character, anywhere, is not part of the grammar.
	if strings.ContainsAny(rest, "+-") {
		return DecimalNumber{}, ErrParseError
	}

	var intPart, fracPart string
	switch strings.Count(rest, ".") {
	case 0:
		intPart = rest
	case 1:
		i := strings.IndexByte(rest, '.')
		intPart, fracPart = rest[:i], rest[i+1:]
	default:
		return DecimalNumber{}, ErrParseError
	}

	if intPart == "" && fracPart == "" {
		return DecimalNumber{}, ErrParseError
	}
	if !isAllDigits(intPart) || !isAllDigits(fracPart) {
		return DecimalNumber{}, ErrParseError
	}

	digits := intPart + fracPart
	if digits == "" {
		digits = "0"
	}
	mantissa := new(big.Int)
	if _, ok := mantissa.SetString(digits, 10); !ok {
		return DecimalNumber{}, ErrParseError
	}
	if mantissa.Sign() == 0 {
		positive = true
	}

	return DecimalNumber{
		mantissa: mantissa,
		decimals: int32(len(fracPart)),
		positive: positive,
	}, nil
}

func isAllDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

// String renders v's canonical decimal form: an optional "-", the
// integer digits, and, when decimals > 0, a "." followed by the
// fractional digits. Trailing fractional zeros are preserved since they
// carry precision information.
func (v DecimalNumber) String() string {
	digits := v.mantissa.String()
	if v.decimals == 0 {
		return v.signPrefix() + digits
	}

	if int32(len(digits)) <= v.decimals {
		digits = strings.Repeat("0", int(v.decimals)-len(digits)+1) + digits
	}
	cut := len(digits) - int(v.decimals)
	return v.signPrefix() + digits[:cut] + "." + digits[cut:]
}

func (v DecimalNumber) signPrefix() string {
	if v.positive || v.IsZero() {
		return ""
	}
	return "-"
}

// ToString is an explicit alias for String, matching the public
// contract's naming.
func (v DecimalNumber) ToString() string {
	return v.String()
}

// ToStringThousands renders v like String, but groups the integer
// portion's digits in threes with ',' separators, right to left.
func (v DecimalNumber) ToStringThousands() string {
	s := v.String()
	sign := ""
	if strings.HasPrefix(s, "-") {
		sign = "-"
		s = s[1:]
	}

	intPart := s
	fracPart := ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, fracPart = s[:i], s[i:]
	}

	grouped := groupThousands(intPart)
	return sign + grouped + fracPart
}

func groupThousands(digits string) string {
	n := len(digits)
	if n <= 3 {
		return digits
	}
	var b strings.Builder
	lead := n % 3
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < n; i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}
	return b.String()
}

// ToStringMaxLength renders v like String but bounds the result to at
// most maxLen characters. maxLen must be >= 8. If the integer portion
// alone (sign, digits, no point, no fraction) would exceed maxLen, it
// returns the literal string "Overflow". Otherwise it truncates (never
// rounds) fractional digits from the right until the total length fits,
// dropping the decimal point too if no fractional digits remain.
//
// The fraction budget reserves two characters beyond the integer part
// rather than one, so a truncated rendering is at most maxLen-1
// characters long: a lone trailing fractional digit that would land
// exactly on maxLen is dropped along with the point, matching this
// target environment's convention of leaving headroom in a fixed-size
// output buffer.
func (v DecimalNumber) ToStringMaxLength(maxLen int) string {
	if maxLen < 8 {
		panic("decimal: ToStringMaxLength requires maxLen >= 8")
	}

	full := v.String()
	sign := ""
	rest := full
	if strings.HasPrefix(rest, "-") {
		sign = "-"
		rest = rest[1:]
	}

	intPart := rest
	fracPart := ""
	if i := strings.IndexByte(rest, '.'); i >= 0 {
		intPart, fracPart = rest[:i], rest[i+1:]
	}

	if len(sign)+len(intPart) > maxLen {
		return "Overflow"
	}

	if len(full) <= maxLen {
		return full
	}

	// Truncate fractional digits from the right until it fits, reserving
	// one character of headroom below maxLen.
	budget := maxLen - len(sign) - len(intPart) - 2
	if budget <= 0 {
		return sign + intPart
	}
	return sign + intPart + "." + fracPart[:budget]
}

// ToIntTruncate integer-divides the mantissa by 10^decimals, carrying
// sign, discarding any fractional part.
func (v DecimalNumber) ToIntTruncate() *big.Int {
	q := new(big.Int).Quo(v.mantissa, pow10(v.decimals))
	if !v.positive {
		q.Neg(q)
	}
	return q
}

// ToIntRound rounds v to zero decimals using round-half-to-even, then
// returns the signed integer mantissa.
func (v DecimalNumber) ToIntRound() *big.Int {
	rounded := roundTo(v, 0)
	m := new(big.Int).Set(rounded.mantissa)
	if !rounded.positive {
		m.Neg(m)
	}
	return m
}
