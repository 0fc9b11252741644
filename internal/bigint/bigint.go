// Package bigint implements the arbitrary-precision integer engine
// that underlies the tpa rational type: a digit-array integer whose
// digits are stored least-significant first in a configurable base B.
//
// Digits are allowed to be transiently denormal — an entry may exceed
// B or be negative — between operations. Normalise and Positivise
// restore the two invariants the rest of the engine relies on; callers
// pay for carry propagation only when they actually need a canonical
// form, which is what makes chained Add/Subtract calls cheap.
package bigint

import (
	"strings"

	"github.com/LeJamon/tpa/internal/tpaerr"
)

// defaultB is 2^25, the reference radix. RootB and BSquared are
// derived from whatever B currently is; SetRadix recomputes both.
const defaultB = 1 << 25

var (
	// B is the digit radix. It is a package variable rather than a
	// constant only so tests can exercise the engine at small radixes;
	// production code must never call SetRadix.
	B int64 = defaultB
	// RootB is floor(sqrt(B)), the lane width used by the split-scalar
	// fast multiply.
	RootB int64 = introot(defaultB)
	// BSquared is B*B, the ceiling normalise uses to decide when a
	// digit's accumulated safe_max is about to overflow machine
	// arithmetic.
	BSquared int64 = defaultB * defaultB
)

// SetRadix reconfigures the global radix. This is a testing hatch,
// not a production API: every live Int constructed under the old
// radix becomes garbage the moment this is called.
func SetRadix(newB int64) error {
	if newB <= 0 {
		return tpaerr.New("set_radix", "", tpaerr.ErrInvalidRadix)
	}
	B = newB
	RootB = introot(newB)
	BSquared = newB * newB
	return nil
}

// introot returns floor(sqrt(n)) for n >= 0 using Newton's method
// seeded from the machine float approximation, then corrected by
// integer comparison so it is exact even where the float estimate
// rounds the wrong way.
func introot(n int64) int64 {
	if n <= 0 {
		return 0
	}
	x := int64(isqrtSeed(n))
	for x*x > n {
		x--
	}
	for (x+1)*(x+1) <= n {
		x++
	}
	return x
}

func isqrtSeed(n int64) float64 {
	f := float64(n)
	if f <= 0 {
		return 0
	}
	x := f
	for i := 0; i < 40; i++ {
		x = 0.5 * (x + f/x)
	}
	return x
}

// Int is a signed arbitrary-precision integer stored as base-B digits,
// least significant first. The empty digit slice denotes zero.
type Int struct {
	digits  []int64
	safeMax int64
}

// New returns a zero-valued Int.
func New() *Int {
	return &Int{}
}

// NewFromInt64 returns an Int truncated from a machine integer.
func NewFromInt64(m int64) *Int {
	n := New()
	n.Set(m)
	return n
}

// NewFromString parses a signed base-10 integer literal ([+-]?\d+).
func NewFromString(s string) (*Int, error) {
	n := New()
	if err := n.SetString(s); err != nil {
		return nil, err
	}
	return n, nil
}

// Clone returns an independent copy of n.
func (n *Int) Clone() *Int {
	c := &Int{safeMax: n.safeMax, digits: make([]int64, len(n.digits))}
	copy(c.digits, n.digits)
	return c
}

// Reset empties n back to zero.
func (n *Int) Reset() {
	n.digits = n.digits[:0]
	n.safeMax = 0
}

// Set truncates m toward zero and stores it as base-B digits.
func (n *Int) Set(m int64) {
	n.Reset()
	neg := m < 0
	if neg {
		m = -m
	}
	for m != 0 {
		n.digits = append(n.digits, m%B)
		m /= B
	}
	if neg {
		n.Negate()
	}
	n.safeMax = B - 1
}

// SetString parses a signed base-10 literal into n, replacing its
// prior value only on success.
func (n *Int) SetString(s string) error {
	trimmed := s
	neg := false
	if len(trimmed) > 0 && (trimmed[0] == '+' || trimmed[0] == '-') {
		neg = trimmed[0] == '-'
		trimmed = trimmed[1:]
	}
	if trimmed == "" || strings.IndexFunc(trimmed, func(r rune) bool { return r < '0' || r > '9' }) >= 0 {
		return tpaerr.New("parse_integer", s, tpaerr.ErrMalformedNumber)
	}
	fresh := New()
	// Base-10 to base-B conversion: fold digits left to right,
	// acc = acc*10 + digit, via the scalar multiply-add primitive.
	for _, r := range trimmed {
		fresh.digitMultiplyWithAdd(10, int64(r-'0'))
	}
	if neg {
		fresh.Negate()
	}
	*n = *fresh
	return nil
}

// Value returns a lossy platform float approximation of n.
func (n *Int) Value() float64 {
	var v float64
	pow := 1.0
	for _, d := range n.digits {
		v += float64(d) * pow
		pow *= float64(B)
	}
	return v
}

// IsZero normalises n and reports whether it is zero.
func (n *Int) IsZero() bool {
	n.Normalise(false)
	return len(n.digits) == 0
}

// IsNegative reports whether n's normalised sign is negative.
func (n *Int) IsNegative() bool {
	n.Normalise(false)
	return len(n.digits) > 0 && n.digits[len(n.digits)-1] < 0
}

// IsPositive reports whether n's normalised sign is positive.
func (n *Int) IsPositive() bool {
	n.Normalise(false)
	return len(n.digits) > 0 && n.digits[len(n.digits)-1] > 0
}

// LSB returns the least significant base-B digit, normalised into
// [0, B), or 0 for a zero value.
func (n *Int) LSB() int64 {
	if len(n.digits) == 0 {
		return 0
	}
	return floorMod(B+n.digits[0], B)
}

// Sign returns -1, 0, or 1 after normalising n.
func (n *Int) Sign() int {
	n.Normalise(false)
	if len(n.digits) == 0 {
		return 0
	}
	if n.digits[len(n.digits)-1] < 0 {
		return -1
	}
	return 1
}

// Abs returns a positivised clone of |n|, leaving n untouched.
func (n *Int) Abs() *Int {
	c := n.Clone()
	c.absPositivise()
	return c
}

// Digits returns a positivised copy of n's magnitude as base-B digits,
// least significant first, and whether n is negative. It exists for
// codecs that need a portable representation of n without exposing
// the mutable internal slice.
func (n *Int) Digits() (digits []int64, negative bool) {
	c := n.Clone()
	negative = c.absPositivise()
	return append([]int64(nil), c.digits...), negative
}

// FromDigits reconstructs an Int from the (digits, negative) pair
// produced by Digits. digits must already be in [0, B) with no
// trailing zero at the top, as Digits guarantees.
func FromDigits(digits []int64, negative bool) *Int {
	n := &Int{digits: append([]int64(nil), digits...), safeMax: B - 1}
	if negative {
		// digits are already in [0, B); negating each in place gives
		// every digit the value's sign, so the top digit carries it.
		n.Negate()
	}
	return n
}

// Normalise propagates carries so every interior digit lies in
// [0, B); the most significant digit may remain negative, encoding
// the overall sign. When noReduction is false, trailing (most
// significant) zero digits are trimmed afterward.
func (n *Int) Normalise(noReduction bool) {
	if n.safeMax >= B {
		var carry int64
		for i := 0; i < len(n.digits); i++ {
			carry += n.digits[i]
			n.digits[i] = floorMod(carry, B)
			carry = floorDiv(carry, B)
		}
		for carry != 0 {
			top := len(n.digits) - 1
			if carry == -1 && top >= 0 && n.digits[top] > 0 {
				// A final borrow folds into the top digit, which turns
				// negative and so carries the overall sign.
				n.digits[top] -= B
				break
			}
			n.digits = append(n.digits, floorMod(carry, B))
			carry = floorDiv(carry, B)
		}
	}
	n.safeMax = B - 1
	if !noReduction {
		n.trimZeros()
	}
}

// Positivise propagates borrows so every digit lies in [0, B).
// Precondition: n is normalised and its value is non-negative.
func (n *Int) Positivise() {
	for i := 0; i < len(n.digits); i++ {
		if n.digits[i] < 0 {
			n.digits[i] += B
			if i+1 < len(n.digits) {
				n.digits[i+1]--
			}
		}
	}
	n.trimZeros()
}

// absPositivise normalises n, then returns n's absolute value in
// positivised form along with the sign that was removed.
func (n *Int) absPositivise() bool {
	n.Normalise(false)
	neg := len(n.digits) > 0 && n.digits[len(n.digits)-1] < 0
	if neg {
		n.Negate()
	}
	n.Positivise()
	return neg
}

func (n *Int) trimZeros() {
	i := len(n.digits)
	for i > 0 && n.digits[i-1] == 0 {
		i--
	}
	n.digits = n.digits[:i]
}

// Compare returns -1, 0, or 1. Precondition: both n and other are
// already positivised.
func (n *Int) Compare(other *Int) int {
	if len(n.digits) != len(other.digits) {
		if len(n.digits) < len(other.digits) {
			return -1
		}
		return 1
	}
	for i := len(n.digits) - 1; i >= 0; i-- {
		if n.digits[i] != other.digits[i] {
			if n.digits[i] < other.digits[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Negate flips the sign of every digit. The result may be transiently
// denormal (interior digits negative); a later Normalise/Positivise
// restores the canonical form.
func (n *Int) Negate() {
	for i := range n.digits {
		n.digits[i] = -n.digits[i]
	}
}

// Add computes n += other.
func (n *Int) Add(other *Int) {
	n.ensureSafe(other.safeMax)
	n.growCombine(other, false)
	n.safeMax += other.safeMax
}

// Subtract computes n -= other.
func (n *Int) Subtract(other *Int) {
	n.ensureSafe(other.safeMax)
	n.growCombine(other, true)
	n.safeMax += other.safeMax
}

// ensureSafe normalises n if accumulating another safeMax of otherMax
// would push n.safeMax to or past BSquared, keeping every accumulator
// well inside machine integer range.
func (n *Int) ensureSafe(otherMax int64) {
	if n.safeMax+otherMax >= BSquared {
		n.Normalise(true)
	}
}

func (n *Int) growCombine(other *Int, negate bool) {
	nl, ol := len(n.digits), len(other.digits)
	if ol > nl {
		ext := make([]int64, ol-nl)
		for i := nl; i < ol; i++ {
			v := other.digits[i]
			if negate {
				v = -v
			}
			ext[i-nl] = v
		}
		n.digits = append(n.digits, ext...)
	}
	overlap := ol
	if nl < overlap {
		overlap = nl
	}
	for i := 0; i < overlap; i++ {
		if negate {
			n.digits[i] -= other.digits[i]
		} else {
			n.digits[i] += other.digits[i]
		}
	}
}

// String renders n in base 10.
func (n *Int) String() string {
	c := n.Clone()
	neg := c.absPositivise()
	if len(c.digits) == 0 {
		return "0"
	}
	var sb strings.Builder
	var digits []byte
	for len(c.digits) > 0 {
		r := c.digitDivideScalar(10)
		digits = append(digits, byte('0'+r))
		c.trimZeros()
	}
	if neg {
		sb.WriteByte('-')
	}
	for i := len(digits) - 1; i >= 0; i-- {
		sb.WriteByte(digits[i])
	}
	return sb.String()
}

// floorDiv and floorMod give floor-division semantics regardless of
// sign, unlike Go's / and % which truncate toward zero. Normalise's
// carry step relies on floorMod always landing in [0, B).
func floorDiv(a, b int64) int64 {
	q := a / b
	r := a % b
	if r != 0 && (r < 0) != (b < 0) {
		q--
	}
	return q
}

func floorMod(a, b int64) int64 {
	return a - floorDiv(a, b)*b
}
