package rational

import (
	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/LeJamon/tpa/internal/tpaerr"
)

// Add computes r += b in place. When r is integer-only, b's fraction
// (if any) is discarded: integer-only mode means "only whole
// participates."
func (r *R) Add(b *R) error {
	r.Whole.Add(b.Whole)
	if r.IntegerOnly {
		return nil
	}
	if !b.IntegerOnly && !b.Num.IsZero() {
		t1 := r.Num.Clone()
		t1.Multiply(b.Den)
		t2 := b.Num.Clone()
		t2.Multiply(r.Den)
		t1.Add(t2)
		r.Num = t1
		r.Den.Multiply(b.Den)
	}
	r.normaliseRemainder()
	return nil
}

// Subtract computes r -= b in place, symmetrical to Add.
func (r *R) Subtract(b *R) error {
	r.Whole.Subtract(b.Whole)
	if r.IntegerOnly {
		return nil
	}
	if !b.IntegerOnly && !b.Num.IsZero() {
		t1 := r.Num.Clone()
		t1.Multiply(b.Den)
		t2 := b.Num.Clone()
		t2.Multiply(r.Den)
		t1.Subtract(t2)
		r.Num = t1
		r.Den.Multiply(b.Den)
	}
	r.normaliseRemainder()
	return nil
}

// Multiply computes r *= b in place, using a fused
// (A + p/q)(C + r/s) expansion.
func (r *R) Multiply(b *R) error {
	if r.IntegerOnly {
		r.Whole.Multiply(b.Whole)
		return nil
	}
	if b.IntegerOnly {
		r.Num.Multiply(b.Whole)
		r.Whole.Multiply(b.Whole)
		r.normaliseRemainder()
		return nil
	}

	bCombined := b.Num.Clone()
	t := b.Den.Clone()
	t.Multiply(b.Whole)
	bCombined.Add(t)

	newNum := r.Num.Clone()
	newNum.Multiply(bCombined)
	t2 := b.Num.Clone()
	t2.Multiply(r.Whole)
	t2.Multiply(r.Den)
	newNum.Add(t2)

	r.Num = newNum
	r.Den.Multiply(b.Den)
	r.Whole.Multiply(b.Whole)
	r.normaliseRemainder()
	return nil
}

// combinedNumerator returns (b.whole*b.den+b.num, b.den) for a
// fractional b, or (b.whole, 1) for an integer-only b -- b expressed
// as a single improper fraction over its own denominator.
func combinedNumerator(b *R) (*bigint.Int, *bigint.Int) {
	if b.IntegerOnly {
		return b.Whole.Clone(), bigint.NewFromInt64(1)
	}
	n := b.Whole.Clone()
	n.Multiply(b.Den)
	n.Add(b.Num)
	return n, b.Den.Clone()
}

// Divide computes r /= b in place. When r is integer-only, b's
// fraction is discarded and this is a plain truncating integer
// divide; otherwise both sides are folded to improper fractions
// before dividing.
func (r *R) Divide(b *R) error {
	if r.IntegerOnly {
		if b.Whole.IsZero() {
			return tpaerr.New("divide", "", tpaerr.ErrDivideByZero)
		}
		quotient := r.Whole.Clone()
		if _, err := quotient.DivMod(b.Whole.Clone()); err != nil {
			return err
		}
		r.Whole = quotient
		return nil
	}

	bNumerator, bDen := combinedNumerator(b)
	if bNumerator.IsZero() {
		return tpaerr.New("divide", "", tpaerr.ErrDivideByZero)
	}

	selfNumerator := r.Whole.Clone()
	selfNumerator.Multiply(r.Den)
	selfNumerator.Add(r.Num)
	selfNumerator.Multiply(bDen)

	denomFull := r.Den.Clone()
	denomFull.Multiply(bNumerator)

	quotient := selfNumerator.Clone()
	remainder, err := quotient.DivMod(denomFull)
	if err != nil {
		return err
	}
	r.Whole, r.Num, r.Den = quotient, remainder, denomFull
	r.normaliseRemainder()
	return nil
}

// Modulus sets r.Whole = r.Whole mod b.Whole, discarding any fraction.
// Defined only over integer parts.
func (r *R) Modulus(b *R) error {
	if b.Whole.IsZero() {
		return tpaerr.New("modulus", "", tpaerr.ErrDivideByZero)
	}
	quotient := r.Whole.Clone()
	remainder, err := quotient.DivMod(b.Whole.Clone())
	if err != nil {
		return err
	}
	r.Whole = remainder
	if !r.IntegerOnly {
		r.Num, r.Den = bigint.New(), bigint.NewFromInt64(1)
	}
	return nil
}
