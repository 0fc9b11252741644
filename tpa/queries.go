package tpa

// Sign returns -1, 0, or 1.
func (t *Tpa) Sign() int { return t.r.Sign() }

// HasFraction reports whether t carries a non-zero fractional part.
func (t *Tpa) HasFraction() bool { return t.r.HasFraction() }

// IsZero reports whether t is exactly zero.
func (t *Tpa) IsZero() bool { return t.r.IsZero() }

// IsPositive reports whether t is strictly greater than zero.
func (t *Tpa) IsPositive() bool { return t.r.IsPositive() }

// IsNegative reports whether t is strictly less than zero.
func (t *Tpa) IsNegative() bool { return t.r.IsNegative() }

// IsInteger reports whether t is in integer-only mode.
func (t *Tpa) IsInteger() bool { return t.r.IsIntegerMode() }

// IsFractional reports whether t is in fractional mode.
func (t *Tpa) IsFractional() bool { return t.r.IsFractional() }

// Compare returns -1, 0, or 1 as t is less than, equal to, or greater
// than b.
func (t *Tpa) Compare(b *Tpa) int { return t.r.Compare(b.r) }

// Lt reports whether t is strictly less than b.
func (t *Tpa) Lt(b *Tpa) bool { return t.r.Lt(b.r) }

// Lte reports whether t is less than or equal to b.
func (t *Tpa) Lte(b *Tpa) bool { return t.r.Lte(b.r) }

// Gt reports whether t is strictly greater than b.
func (t *Tpa) Gt(b *Tpa) bool { return t.r.Gt(b.r) }

// Gte reports whether t is greater than or equal to b.
func (t *Tpa) Gte(b *Tpa) bool { return t.r.Gte(b.r) }

// Eq reports whether t equals b.
func (t *Tpa) Eq(b *Tpa) bool { return t.r.Eq(b.r) }
