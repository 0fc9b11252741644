package tpa

import "github.com/LeJamon/tpa/internal/rational"

// Set overwrites t in place by parsing s, preserving t's identity.
func (t *Tpa) Set(s string, integerOnly ...bool) error {
	next, err := rational.NewFromString(s, integerOnly...)
	if err != nil {
		return err
	}
	*t.r = *next
	return nil
}

// Add adds b into t in place. Alias: Plus.
func (t *Tpa) Add(b *Tpa) error { return t.r.Add(b.r) }

// Plus is an alias for Add.
func (t *Tpa) Plus(b *Tpa) error { return t.Add(b) }

// Subtract subtracts b from t in place. Aliases: Sub, Minus.
func (t *Tpa) Subtract(b *Tpa) error { return t.r.Subtract(b.r) }

// Sub is an alias for Subtract.
func (t *Tpa) Sub(b *Tpa) error { return t.Subtract(b) }

// Minus is an alias for Subtract.
func (t *Tpa) Minus(b *Tpa) error { return t.Subtract(b) }

// Multiply multiplies t by b in place. Aliases: Mult, Times.
func (t *Tpa) Multiply(b *Tpa) error { return t.r.Multiply(b.r) }

// Mult is an alias for Multiply.
func (t *Tpa) Mult(b *Tpa) error { return t.Multiply(b) }

// Times is an alias for Multiply.
func (t *Tpa) Times(b *Tpa) error { return t.Multiply(b) }

// Divide divides t by b in place. Alias: Div.
func (t *Tpa) Divide(b *Tpa) error { return t.r.Divide(b.r) }

// Div is an alias for Divide.
func (t *Tpa) Div(b *Tpa) error { return t.Divide(b) }

// Modulus reduces t modulo b in place. Alias: Mod.
func (t *Tpa) Modulus(b *Tpa) error { return t.r.Modulus(b.r) }

// Mod is an alias for Modulus.
func (t *Tpa) Mod(b *Tpa) error { return t.Modulus(b) }

// Abs takes the absolute value of t in place.
func (t *Tpa) Abs() { t.r.Abs() }

// Int returns the integer part of t as a fresh Tpa.
func (t *Tpa) Int() *Tpa { return &Tpa{r: t.r.Int()} }

// Frac returns the fractional part of t as a fresh Tpa.
func (t *Tpa) Frac() *Tpa { return &Tpa{r: t.r.Frac()} }

// MakeInteger switches t into integer-only mode, discarding any
// fraction.
func (t *Tpa) MakeInteger() { t.r.MakeInteger() }

// MakeFractional switches t into fractional mode, if it was
// integer-only.
func (t *Tpa) MakeFractional() { t.r.MakeFractional() }

// Simplify reduces t's fraction to lowest terms within the given
// millisecond budget (0 = unbounded), polling clock for elapsed time.
// Returns true iff the reduction ran to completion.
func (t *Tpa) Simplify(maxMS int64, clock rational.Clock) (bool, error) {
	return t.r.Simplify(maxMS, clock)
}
