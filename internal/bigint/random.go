package bigint

import "github.com/LeJamon/tpa/internal/tpaerr"

// RandomSource is the external collaborator big integers use to
// manufacture random instances: a uniform sample in [0, 1). Ambient
// randomness is explicitly out of this engine's scope (spec §1); a
// caller wanting deterministic tests supplies its own source, such as
// a seeded math/rand.Rand wrapped to expose Float64.
type RandomSource interface {
	Float64() float64
}

// Random fills n with a uniformly sampled non-negative integer of
// approximately decimalDigits decimal digits, sampled via src. Full
// B-sized digit slots are filled first; the most significant slot
// targets whatever decimal digits are left over once no more full
// slots fit. The contract is "approximate length", not an exact digit
// count — see DESIGN.md's Open Question decision on this sampler.
func (n *Int) Random(decimalDigits int, src RandomSource) error {
	if decimalDigits <= 0 {
		return tpaerr.New("random", "", tpaerr.ErrInvalidRandomDigits)
	}
	n.Reset()

	perSlot := decimalDigitsPerSlot()
	fullSlots := decimalDigits / perSlot
	residual := decimalDigits % perSlot

	for i := 0; i < fullSlots; i++ {
		n.digits = append(n.digits, int64(src.Float64()*float64(B)))
	}
	if residual > 0 {
		span := pow10(residual)
		n.digits = append(n.digits, int64(src.Float64()*float64(span)))
	}
	n.safeMax = B - 1
	n.trimZeros()
	return nil
}

// decimalDigitsPerSlot returns how many decimal digits one base-B
// digit slot is worth, i.e. the decimal digit count of B itself.
func decimalDigitsPerSlot() int {
	digits := 0
	for v := B; v > 1; v /= 10 {
		digits++
	}
	if digits == 0 {
		digits = 1
	}
	return digits
}

func pow10(n int) int64 {
	r := int64(1)
	for i := 0; i < n; i++ {
		r *= 10
	}
	return r
}
