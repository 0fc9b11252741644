package tpa

// ToString renders t as decimal: the whole part, then, if a non-zero
// fraction is present, the long-division digit expansion with
// recurring digits bracketed. maxDP (default 100) caps the expansion;
// exceeding it truncates and appends "...". Alias: ToDecimal.
func (t *Tpa) ToString(maxDP ...int) (string, error) { return t.r.ToString(maxDP...) }

// ToDecimal is an alias for ToString.
func (t *Tpa) ToDecimal(maxDP ...int) (string, error) { return t.r.ToDecimal(maxDP...) }

// ToFraction renders t as ToInteger() plus, if a non-zero fraction is
// present, a trailing " num/den" with an absolute-valued numerator.
func (t *Tpa) ToFraction() string { return t.r.ToFraction() }

// ToInteger renders t's whole part as a signed base-10 string.
func (t *Tpa) ToInteger() string { return t.r.ToInteger() }

// Value returns a lossy platform float approximation of t.
func (t *Tpa) Value() float64 { return t.r.Value() }

// MarshalBinary encodes t as a compact CBOR-framed byte string,
// preserving mode and exact magnitude.
func (t *Tpa) MarshalBinary() ([]byte, error) { return t.r.MarshalBinary() }

// UnmarshalBinary decodes data produced by MarshalBinary into t.
func (t *Tpa) UnmarshalBinary(data []byte) error { return t.r.UnmarshalBinary(data) }
