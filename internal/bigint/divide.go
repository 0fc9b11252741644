package bigint

import "github.com/LeJamon/tpa/internal/tpaerr"

// digitDivideScalar divides the positivised digits of n in place by
// the positive scalar d, walking high to low, and returns the scalar
// remainder.
func (n *Int) digitDivideScalar(d int64) int64 {
	var overflow int64
	for i := len(n.digits) - 1; i >= 0; i-- {
		t := overflow*B + n.digits[i]
		n.digits[i] = t / d
		overflow = t % d
	}
	n.trimZeros()
	return overflow
}

// DivMod divides n by other, leaving the quotient in n and returning
// the remainder. other is left normalised as a side effect; when it
// has more than one digit it is also replaced by its positivised
// absolute value.
func (n *Int) DivMod(other *Int) (*Int, error) {
	n.Normalise(false)
	other.Normalise(false)

	if len(other.digits) == 0 {
		return nil, tpaerr.New("divide", "", tpaerr.ErrDivideByZero)
	}
	if len(n.digits) == 0 {
		return New(), nil
	}
	if len(other.digits) == 1 {
		return n.divideByScalar(other.digits[0])
	}

	selfNeg := n.absPositivise()
	otherNeg := other.absPositivise()

	switch n.Compare(other) {
	case -1:
		rem := n.Clone()
		n.Reset()
		if selfNeg != otherNeg {
			n.Negate()
		}
		if selfNeg {
			rem.Negate()
		}
		return rem, nil
	case 0:
		n.Set(1)
		if selfNeg != otherNeg {
			n.Negate()
		}
		return New(), nil
	}

	quotient, remainder := longDivide(n.digits, other.digits)
	n.digits = quotient
	n.trimZeros()
	n.safeMax = B - 1
	remN := &Int{digits: remainder, safeMax: B - 1}
	remN.trimZeros()

	if selfNeg != otherNeg {
		n.Negate()
	}
	if selfNeg {
		remN.Negate()
	}
	return remN, nil
}

func (n *Int) divideByScalar(d int64) (*Int, error) {
	if d == 0 {
		return nil, tpaerr.New("divide", "", tpaerr.ErrDivideByZero)
	}
	selfNeg := n.absPositivise()
	otherNeg := d < 0
	dd := d
	if otherNeg {
		dd = -d
	}
	r := n.digitDivideScalar(dd)
	n.safeMax = B - 1
	if selfNeg != otherNeg {
		n.Negate()
	}
	remN := NewFromInt64(r)
	if selfNeg {
		remN.Negate()
	}
	return remN, nil
}

// longDivide implements the schoolbook long division described in
// the engine design: seed the remainder with other's width worth of
// self's most significant digits, then for each remaining digit of
// self, estimate a quotient digit from the top two digits of the
// remainder and divisor, subtract the estimate's multiple, correct
// upward while the remainder still dominates the divisor, and shift
// the next digit of self into the remainder's low end.
//
// Precondition: both selfDigits and otherDigits are positivised
// (every entry in [0, B), top entry non-zero) and len(selfDigits) >=
// len(otherDigits) >= 2.
func longDivide(selfDigits, otherDigits []int64) (quotient, remainder []int64) {
	ls, lo := len(selfDigits), len(otherDigits)
	quotient = make([]int64, ls-lo+1)

	rem := make([]int64, lo)
	copy(rem, selfDigits[ls-lo:])

	otherTop := otherDigits[lo-1]
	var otherNext int64
	if lo >= 2 {
		otherNext = otherDigits[lo-2]
	}
	denom := otherTop*B + otherNext + 1

	for i := ls - lo; i >= 0; i-- {
		remTop := digitFromTop(rem, 1)
		remNext := digitFromTop(rem, 2)
		q := (remTop*B + remNext) / denom
		if q < 0 {
			q = 0
		}
		rem = subtractMultiple(rem, otherDigits, q)
		for compareDigitSlices(rem, otherDigits) >= 0 {
			rem = subtractMultiple(rem, otherDigits, 1)
			q++
		}
		quotient[i] = q
		if i > 0 {
			rem = append([]int64{selfDigits[i-1]}, rem...)
		}
	}

	trimHighZeros(&quotient)
	trimHighZeros(&rem)
	return quotient, rem
}

// digitFromTop returns the digit `fromTop` positions down from the
// most significant end (1 = the top digit itself), or 0 past the end.
func digitFromTop(digits []int64, fromTop int) int64 {
	idx := len(digits) - fromTop
	if idx < 0 || idx >= len(digits) {
		return 0
	}
	return digits[idx]
}

// subtractMultiple subtracts m*other from rem in place, borrowing
// into higher digits. Precondition (guaranteed by longDivide's
// estimate-then-correct loop): the result never goes negative.
func subtractMultiple(rem, other []int64, m int64) []int64 {
	var borrow int64
	for i := 0; i < len(other); i++ {
		v := rem[i] - other[i]*m - borrow
		borrow = 0
		if v < 0 {
			b := (-v + B - 1) / B
			v += b * B
			borrow = b
		}
		rem[i] = v
	}
	for i := len(other); i < len(rem) && borrow != 0; i++ {
		v := rem[i] - borrow
		borrow = 0
		if v < 0 {
			b := (-v + B - 1) / B
			v += b * B
			borrow = b
		}
		rem[i] = v
	}
	return rem
}

func compareDigitSlices(a, b []int64) int {
	ai := len(a) - 1
	for ai >= 0 && a[ai] == 0 {
		ai--
	}
	bi := len(b) - 1
	for bi >= 0 && b[bi] == 0 {
		bi--
	}
	if ai != bi {
		if ai < bi {
			return -1
		}
		return 1
	}
	for i := ai; i >= 0; i-- {
		if a[i] != b[i] {
			if a[i] < b[i] {
				return -1
			}
			return 1
		}
	}
	return 0
}

func trimHighZeros(digits *[]int64) {
	i := len(*digits)
	for i > 0 && (*digits)[i-1] == 0 {
		i--
	}
	*digits = (*digits)[:i]
}

// RoughSqrt returns an approximate upper bound on sqrt(|n|), used only
// to cap the simplifier's trial-division ceiling. A single digit d
// gives ceil(sqrt(d)). For a digit array of length L >= 2 it takes
// ceil(sqrt(top*B + next + 1)) and concatenates the lower (L-2)/2
// digits of n unchanged; for odd L the top is further scaled by RootB
// to keep the digit count roughly halved. For even L the result is
// never below sqrt(|n|); for odd L, RootB = floor(sqrt(B)) can leave
// it marginally below.
func (n *Int) RoughSqrt() *Int {
	c := n.Clone()
	c.absPositivise()
	L := len(c.digits)
	if L < 2 {
		r := New()
		if L == 1 {
			head := introot(c.digits[0])
			if head*head < c.digits[0] {
				head++
			}
			r.digits = []int64{head}
		}
		return r
	}
	top := c.digits[L-1]
	next := c.digits[L-2]
	x := top*B + next + 1
	head := introot(x)
	if head*head < x {
		head++
	}
	lowerLen := (L - 2) / 2
	result := make([]int64, 0, lowerLen+1)
	result = append(result, c.digits[:lowerLen]...)
	if L%2 != 0 {
		head *= RootB
	}
	result = append(result, head)
	r := &Int{digits: result, safeMax: B - 1}
	r.trimZeros()
	return r
}
