// Package rational implements the exact-arithmetic rational type built
// on top of internal/bigint: a signed integer part plus an optional
// signed-numerator fraction, in either integer-only or fractional
// mode. Mode is fixed per value except through the explicit
// MakeInteger/MakeFractional mutators.
package rational

import (
	"github.com/LeJamon/tpa/internal/bigint"
)

// R is a rational number: an integer part plus, unless IntegerOnly,
// a fraction with a strictly positive denominator. The fraction's
// numerator carries the sign; Den is never zero or negative.
//
// Invariant (for a normalised fractional R with non-zero numerator):
// 0 < |Num| < Den, and sign(Num) == sign(Whole) unless Whole is zero.
type R struct {
	IntegerOnly bool
	Whole       *bigint.Int
	Num         *bigint.Int
	Den         *bigint.Int
}

// NewZero returns a zero R in the requested mode.
func NewZero(integerOnly bool) *R {
	r := &R{IntegerOnly: integerOnly, Whole: bigint.New()}
	if !integerOnly {
		r.Num, r.Den = bigint.New(), bigint.NewFromInt64(1)
	}
	return r
}

// resolveMode returns explicit[0] if present, else inferred. It
// stands in for the reference's optional trailing is_integer argument.
func resolveMode(explicit []bool, inferred bool) bool {
	if len(explicit) > 0 {
		return explicit[0]
	}
	return inferred
}

// Clone returns an independent deep copy of r.
func (r *R) Clone() *R {
	c := &R{IntegerOnly: r.IntegerOnly, Whole: r.Whole.Clone()}
	if !r.IntegerOnly {
		c.Num = r.Num.Clone()
		c.Den = r.Den.Clone()
	}
	return c
}

// MakeInteger switches r into integer-only mode, discarding any
// fraction.
func (r *R) MakeInteger() {
	if r.IntegerOnly {
		return
	}
	r.IntegerOnly = true
	r.Num, r.Den = nil, nil
}

// MakeFractional switches r into fractional mode with a zero fraction,
// if it was integer-only.
func (r *R) MakeFractional() {
	if !r.IntegerOnly {
		return
	}
	r.IntegerOnly = false
	r.Num = bigint.New()
	r.Den = bigint.NewFromInt64(1)
}

// Abs takes the absolute value of r in place.
func (r *R) Abs() {
	r.Whole = r.Whole.Abs()
	if !r.IntegerOnly {
		r.Num = r.Num.Abs()
	}
}

// Int returns the integer part of r as a fresh integer-only R.
func (r *R) Int() *R {
	return &R{IntegerOnly: true, Whole: r.Whole.Clone()}
}

// Frac returns the fractional part of r as a fresh fractional R with
// a zero whole part.
func (r *R) Frac() *R {
	out := &R{IntegerOnly: false, Whole: bigint.New()}
	if r.IntegerOnly {
		out.Num, out.Den = bigint.New(), bigint.NewFromInt64(1)
		return out
	}
	out.Num, out.Den = r.Num.Clone(), r.Den.Clone()
	return out
}

// combinedSign returns the sign of Whole if non-zero, else the sign of
// Num (0 for an integer-only zero).
func (r *R) combinedSign() int {
	if s := r.Whole.Sign(); s != 0 {
		return s
	}
	if r.IntegerOnly {
		return 0
	}
	return r.Num.Sign()
}

// Sign returns -1, 0, or 1.
func (r *R) Sign() int { return r.combinedSign() }

// IsZero reports whether r is exactly zero.
func (r *R) IsZero() bool {
	return r.Whole.IsZero() && (r.IntegerOnly || r.Num.IsZero())
}

// HasFraction reports whether r carries a non-zero fractional part.
func (r *R) HasFraction() bool {
	return !r.IntegerOnly && !r.Num.IsZero()
}

// IsNegative reports whether r's combined sign is negative.
func (r *R) IsNegative() bool { return r.combinedSign() < 0 }

// IsPositive reports whether r's combined sign is positive.
func (r *R) IsPositive() bool { return r.combinedSign() > 0 }

// IsIntegerMode reports whether r is in integer-only mode.
func (r *R) IsIntegerMode() bool { return r.IntegerOnly }

// IsFractional reports whether r is in fractional mode.
func (r *R) IsFractional() bool { return !r.IntegerOnly }

// normaliseRemainder restores the fractional invariant after an
// arithmetic op has left Num possibly with |Num| >= Den or a sign that
// disagrees with Whole: it folds the integer part of the fraction into
// Whole, then reconciles signs so Num and Whole agree (or Num is
// zero).
func (r *R) normaliseRemainder() {
	if r.IntegerOnly {
		return
	}
	quotient := r.Num.Clone()
	remainder, err := quotient.DivMod(r.Den.Clone())
	if err != nil {
		return
	}
	r.Whole.Add(quotient)
	r.Num = remainder

	if r.Num.IsZero() {
		r.Den = bigint.NewFromInt64(1)
		return
	}
	numSign := r.Num.Sign()
	wholeSign := r.Whole.Sign()
	if numSign < 0 && wholeSign > 0 {
		r.Num.Add(r.Den)
		r.Whole.Subtract(bigint.NewFromInt64(1))
	} else if numSign > 0 && wholeSign < 0 {
		r.Num.Subtract(r.Den)
		r.Whole.Add(bigint.NewFromInt64(1))
	}
}

// fractionOrZero returns (Num, Den), or (0, 1) for an integer-only R.
func (r *R) fractionOrZero() (*bigint.Int, *bigint.Int) {
	if r.IntegerOnly {
		return bigint.New(), bigint.NewFromInt64(1)
	}
	return r.Num, r.Den
}

// Compare returns -1, 0, or 1, comparing sign first, then |Whole|,
// then cross-multiplied fractional parts.
func (r *R) Compare(b *R) int {
	sr, sb := r.combinedSign(), b.combinedSign()
	if sr != sb {
		if sr < sb {
			return -1
		}
		return 1
	}
	if sr == 0 {
		return 0
	}

	wr, wb := r.Whole.Abs(), b.Whole.Abs()
	if c := wr.Compare(wb); c != 0 {
		if sr < 0 {
			return -c
		}
		return c
	}

	rn, rd := r.fractionOrZero()
	bn, bd := b.fractionOrZero()
	left := rn.Abs()
	left.Multiply(bd.Abs())
	right := bn.Abs()
	right.Multiply(rd.Abs())
	c := left.Compare(right)
	if sr < 0 {
		return -c
	}
	return c
}

// Lt, Lte, Gt, Gte, Eq are named-comparison conveniences over Compare.
func (r *R) Lt(b *R) bool  { return r.Compare(b) < 0 }
func (r *R) Lte(b *R) bool { return r.Compare(b) <= 0 }
func (r *R) Gt(b *R) bool  { return r.Compare(b) > 0 }
func (r *R) Gte(b *R) bool { return r.Compare(b) >= 0 }
func (r *R) Eq(b *R) bool  { return r.Compare(b) == 0 }
