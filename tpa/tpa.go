// Package tpa is the public facade over internal/rational: a single
// Tpa type providing exact integer/fraction arithmetic, grammar-based
// string parsing, decimal rendering with recurring-digit detection,
// and a best-effort time-budgeted simplifier.
package tpa

import (
	"github.com/LeJamon/tpa/internal/rational"
)

// Tpa is an arbitrary-precision rational number. The zero value is not
// usable; construct with New, NewFromString, or NewFromFloat64.
type Tpa struct {
	r *rational.R
}

// New returns a zero Tpa in the requested mode (integer-only by
// default).
func New(integerOnly ...bool) *Tpa {
	mode := true
	if len(integerOnly) > 0 {
		mode = integerOnly[0]
	}
	return &Tpa{r: rational.NewZero(mode)}
}

// NewFromInt64 constructs an integer-only (unless overridden) Tpa from
// a platform integer.
func NewFromInt64(v int64, integerOnly ...bool) *Tpa {
	return &Tpa{r: rational.NewFromInt64(v, integerOnly...)}
}

// NewFromFloat64 constructs a Tpa from a platform float: the whole part
// is truncated toward zero and the fractional part rounded to 8
// decimal places. Mode defaults to integer-only iff the fractional
// part rounds away to nothing.
func NewFromFloat64(v float64, integerOnly ...bool) *Tpa {
	return &Tpa{r: rational.NewFromFloat64(v, integerOnly...)}
}

// NewFromString parses s as an integer, a fraction, a decimal with an
// optional [recurring] block, or a mixed fraction.
func NewFromString(s string, integerOnly ...bool) (*Tpa, error) {
	r, err := rational.NewFromString(s, integerOnly...)
	if err != nil {
		return nil, err
	}
	return &Tpa{r: r}, nil
}

// NewFromTpa clones src, coercing to the requested mode when given.
// Always returns an independent clone, never the same instance.
func NewFromTpa(src *Tpa, integerOnly ...bool) *Tpa {
	return &Tpa{r: rational.NewFromR(src.r, integerOnly...)}
}

// Clone returns an independent deep copy of t.
func (t *Tpa) Clone() *Tpa { return &Tpa{r: t.r.Clone()} }
