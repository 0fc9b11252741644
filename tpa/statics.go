package tpa

// Non-mutating statics: each clones its first argument, applies the
// corresponding mutator, and returns the clone. The mode of the result
// is inherited from the first argument; the clone is always fresh,
// never the same instance as either operand.

// Add returns a.Clone() with b added in.
func Add(a, b *Tpa) (*Tpa, error) {
	out := a.Clone()
	if err := out.Add(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Subtract returns a.Clone() with b subtracted from it.
func Subtract(a, b *Tpa) (*Tpa, error) {
	out := a.Clone()
	if err := out.Subtract(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Multiply returns a.Clone() multiplied by b.
func Multiply(a, b *Tpa) (*Tpa, error) {
	out := a.Clone()
	if err := out.Multiply(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Divide returns a.Clone() divided by b.
func Divide(a, b *Tpa) (*Tpa, error) {
	out := a.Clone()
	if err := out.Divide(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Modulus returns a.Clone() reduced modulo b.
func Modulus(a, b *Tpa) (*Tpa, error) {
	out := a.Clone()
	if err := out.Modulus(b); err != nil {
		return nil, err
	}
	return out, nil
}

// Abs returns a.Clone() with its sign made non-negative.
func Abs(a *Tpa) *Tpa {
	out := a.Clone()
	out.Abs()
	return out
}

// MakeInteger returns a.Clone() switched to integer-only mode.
func MakeInteger(a *Tpa) *Tpa {
	out := a.Clone()
	out.MakeInteger()
	return out
}

// MakeFractional returns a.Clone() switched to fractional mode.
func MakeFractional(a *Tpa) *Tpa {
	out := a.Clone()
	out.MakeFractional()
	return out
}
