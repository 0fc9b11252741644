package rational

import (
	"math"
	"regexp"
	"strings"

	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/LeJamon/tpa/internal/tpaerr"
)

var (
	reMixed    = regexp.MustCompile(`^([+-]?)(\d+) (\d+)/(\d+)$`)
	reFraction = regexp.MustCompile(`^([+-]?)(\d+)/(\d+)$`)
	reDecimal  = regexp.MustCompile(`^([+-]?)(\d*)\.(\d*)(?:\[(\d+)\])?$`)
	reInteger  = regexp.MustCompile(`^([+-]?)(\d+)$`)
)

// NewFromInt64 returns an integer-valued R, integer-only by default.
func NewFromInt64(v int64, integerOnly ...bool) *R {
	mode := resolveMode(integerOnly, true)
	r := &R{IntegerOnly: mode, Whole: bigint.NewFromInt64(v)}
	if !mode {
		r.Num, r.Den = bigint.New(), bigint.NewFromInt64(1)
	}
	return r
}

// NewFromFloat64 truncates v to Whole and derives the fraction to 8
// decimal places (with trailing-zero reduction), inferring integer
// mode when the fractional part is exactly zero and no mode is given.
func NewFromFloat64(v float64, integerOnly ...bool) *R {
	r := NewZero(true)
	r.SetFloat64(v, integerOnly...)
	return r
}

// NewFromString parses s per the grammar documented on SetString.
func NewFromString(s string, integerOnly ...bool) (*R, error) {
	r := NewZero(true)
	if err := r.SetString(s, integerOnly...); err != nil {
		return nil, err
	}
	return r, nil
}

// NewFromR clones src, coercing to the requested mode if it differs
// from src's own (no aliasing shortcut — see DESIGN.md's Open Question
// decision on static-constructor aliasing).
func NewFromR(src *R, integerOnly ...bool) *R {
	mode := resolveMode(integerOnly, src.IntegerOnly)
	c := src.Clone()
	if mode != c.IntegerOnly {
		if mode {
			c.MakeInteger()
		} else {
			c.MakeFractional()
		}
	}
	return c
}

// SetFloat64 sets r from a platform float, truncating the whole part
// and capturing the fraction to 8 decimal places.
func (r *R) SetFloat64(v float64, integerOnly ...bool) {
	whole := int64(v)
	frac := v - float64(whole)
	scaled := int64(math.Round(frac * 1e8))
	den := int64(1e8)
	for scaled != 0 && scaled%10 == 0 && den%10 == 0 {
		scaled /= 10
		den /= 10
	}
	mode := resolveMode(integerOnly, scaled == 0)
	r.IntegerOnly = mode
	r.Whole = bigint.NewFromInt64(whole)
	if mode {
		r.Num, r.Den = nil, nil
		return
	}
	r.Num = bigint.NewFromInt64(scaled)
	r.Den = bigint.NewFromInt64(den)
	r.normaliseRemainder()
}

// SetString parses s against the grammar (after trimming):
//
//	[+-]?\d+ \d+/\d+   mixed fraction (space significant)
//	[+-]?\d+/\d+       pure fraction
//	[+-]?\d*\.(...)    decimal, optional [recurring] suffix
//	[+-]?\d+           pure integer
func (r *R) SetString(s string, integerOnly ...bool) error {
	trimmed := strings.TrimSpace(s)
	switch {
	case reMixed.MatchString(trimmed):
		return r.setMixed(trimmed, integerOnly)
	case reFraction.MatchString(trimmed):
		return r.setFraction(trimmed, integerOnly)
	case reDecimal.MatchString(trimmed):
		return r.setDecimal(trimmed, integerOnly)
	case reInteger.MatchString(trimmed):
		return r.setInteger(trimmed, integerOnly)
	default:
		return tpaerr.New("parse", s, tpaerr.ErrMalformedNumber)
	}
}

func (r *R) setInteger(s string, integerOnly []bool) error {
	whole, err := bigint.NewFromString(s)
	if err != nil {
		return tpaerr.New("parse_integer", s, tpaerr.ErrMalformedNumber)
	}
	mode := resolveMode(integerOnly, true)
	r.IntegerOnly = mode
	r.Whole = whole
	if mode {
		r.Num, r.Den = nil, nil
		return nil
	}
	r.Num, r.Den = bigint.New(), bigint.NewFromInt64(1)
	return nil
}

// mergeIntegerQuotient returns floor((whole*den + num) / den), the
// combined integer quotient of a whole-plus-fraction literal. Used
// when the declared mode is integer-only: the fractional part is
// discarded only after its contribution to the whole part is folded
// in, not truncated away outright.
//
// den is always the positive denominator parsed straight off the
// literal's digits, so DivMod's truncating quotient only needs a
// floor correction when the combined numerator is negative and the
// division isn't exact.
func mergeIntegerQuotient(whole, num, den *bigint.Int) (*bigint.Int, error) {
	combined := whole.Clone()
	combined.Multiply(den)
	combined.Add(num)
	negative := combined.Sign() < 0

	quotient := combined.Clone()
	remainder, err := quotient.DivMod(den.Clone())
	if err != nil {
		return nil, err
	}
	if negative && !remainder.IsZero() {
		quotient.Subtract(bigint.NewFromInt64(1))
	}
	return quotient, nil
}

func (r *R) setFraction(s string, integerOnly []bool) error {
	m := reFraction.FindStringSubmatch(s)
	sign, numStr, denStr := m[1], m[2], m[3]

	den, _ := bigint.NewFromString(denStr)
	if den.IsZero() {
		return tpaerr.New("parse_fraction", s, tpaerr.ErrZeroDenominator)
	}
	num, _ := bigint.NewFromString(sign + numStr)

	mode := resolveMode(integerOnly, false)
	r.IntegerOnly = mode
	if mode {
		quotient, err := mergeIntegerQuotient(bigint.New(), num, den)
		if err != nil {
			return tpaerr.New("parse_fraction", s, err)
		}
		r.Whole = quotient
		r.Num, r.Den = nil, nil
		return nil
	}
	r.Whole, r.Num, r.Den = bigint.New(), num, den
	r.normaliseRemainder()
	return nil
}

func (r *R) setMixed(s string, integerOnly []bool) error {
	m := reMixed.FindStringSubmatch(s)
	sign, wholeStr, numStr, denStr := m[1], m[2], m[3], m[4]

	den, _ := bigint.NewFromString(denStr)
	if den.IsZero() {
		return tpaerr.New("parse_mixed", s, tpaerr.ErrZeroDenominator)
	}
	// The negation sign is prepended before re-parsing both the whole
	// and numerator literals, so "-4 538/1284" yields whole=-4,
	// num=-538 -- the numerator carries the sign once whole is
	// non-zero (see DESIGN.md's Open Question decision on this).
	whole, _ := bigint.NewFromString(sign + wholeStr)
	num, _ := bigint.NewFromString(sign + numStr)

	mode := resolveMode(integerOnly, false)
	r.IntegerOnly = mode
	if mode {
		quotient, err := mergeIntegerQuotient(whole, num, den)
		if err != nil {
			return tpaerr.New("parse_mixed", s, err)
		}
		r.Whole = quotient
		r.Num, r.Den = nil, nil
		return nil
	}
	r.Whole, r.Num, r.Den = whole, num, den
	r.normaliseRemainder()
	return nil
}

func (r *R) setDecimal(s string, integerOnly []bool) error {
	m := reDecimal.FindStringSubmatch(s)
	sign, intPart, fracPart, recurPart := m[1], m[2], m[3], m[4]

	wholeLit := sign + intPart
	if intPart == "" {
		wholeLit = sign + "0"
	}
	whole, err := bigint.NewFromString(wholeLit)
	if err != nil {
		return tpaerr.New("parse_decimal", s, tpaerr.ErrMalformedDecimal)
	}

	num := bigint.New()
	den := bigint.NewFromInt64(1)
	ten := bigint.NewFromInt64(10)
	accumulate := func(ch rune) {
		num.Multiply(ten)
		num.Add(bigint.NewFromInt64(int64(ch - '0')))
		den.Multiply(ten)
	}
	for _, ch := range fracPart {
		accumulate(ch)
	}
	if recurPart != "" {
		num0, den0 := num.Clone(), den.Clone()
		for _, ch := range recurPart {
			accumulate(ch)
		}
		num.Subtract(num0)
		den.Subtract(den0)
	}

	// The leading sign governs the fraction's sign as well as the
	// whole part's.
	if sign == "-" && num.Sign() > 0 {
		num.Negate()
	}

	mode := resolveMode(integerOnly, num.IsZero())
	r.IntegerOnly = mode
	if mode {
		quotient, err := mergeIntegerQuotient(whole, num, den)
		if err != nil {
			return tpaerr.New("parse_decimal", s, err)
		}
		r.Whole = quotient
		r.Num, r.Den = nil, nil
		return nil
	}
	r.Whole, r.Num, r.Den = whole, num, den
	r.normaliseRemainder()
	return nil
}
