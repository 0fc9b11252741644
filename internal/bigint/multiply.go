package bigint

// digitMultiplyWithAdd computes n = n*m + addend in place, as a
// carry-propagating scalar multiply-add. It is the primitive base-10
// string parsing folds through, and the fallback multiply path for a
// single-digit operand once the cheap deferred-carry path isn't safe.
func (n *Int) digitMultiplyWithAdd(m, addend int64) {
	n.Normalise(true)
	carry := addend
	for i := 0; i < len(n.digits); i++ {
		acc := carry + n.digits[i]*m
		n.digits[i] = floorMod(acc, B)
		carry = floorDiv(acc, B)
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
	n.safeMax = B - 1
}

func absInt64(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

// Multiply computes n *= other in place.
//
// A single-digit other takes the scalar fast path: if n's current
// safe_max guarantees the product can't overflow B², the multiply is
// applied digit-by-digit with no carry processing at all, deferring
// carries to the next Normalise the same way Add/Subtract do.
//
// Otherwise both operands are normalised and, when both have more
// than three digits, multiplied via the split-scalar method: each
// digit of n is split into a high half (divided by RootB) and a low
// half (mod RootB), each half multiplied against every digit of other
// without any carry step, the accumulator rescaled by RootB between
// the two halves, and the whole buffer normalised once at the end.
// This is carry-deferred schoolbook multiplication with half-digit
// lanes, not Karatsuba.
func (n *Int) Multiply(other *Int) {
	if len(n.digits) == 0 || len(other.digits) == 0 {
		n.Reset()
		return
	}
	if len(other.digits) == 1 {
		m := other.digits[0]
		if n.safeMax*absInt64(m) < BSquared {
			for i := range n.digits {
				n.digits[i] *= m
			}
			n.safeMax *= absInt64(m)
			return
		}
		n.digitMultiplyWithAdd(m, 0)
		return
	}

	n.Normalise(false)
	other.Normalise(false)
	a := n.digits
	b := other.digits

	var result []int64
	if len(a) > 3 && len(b) > 3 {
		result = make([]int64, len(a)+len(b)-1)
		for i, ai := range a {
			q := ai / RootB
			if q == 0 {
				continue
			}
			for j, bj := range b {
				result[i+j] += q * bj
			}
		}
		for i := range result {
			result[i] *= RootB
		}
		for i, ai := range a {
			q := ai % RootB
			if q == 0 {
				continue
			}
			for j, bj := range b {
				result[i+j] += q * bj
			}
		}
	} else {
		result = make([]int64, len(a)+len(b)-1)
		for i, ai := range a {
			if ai == 0 {
				continue
			}
			var acc int64
			for j, bj := range b {
				acc += result[i+j] + ai*bj
				result[i+j] = floorMod(acc, B)
				acc = floorDiv(acc, B)
			}
			k := i + len(b)
			for acc != 0 {
				if k >= len(result) {
					// Past the buffer: store the carry as it is and
					// leave it to the final Normalise.
					result = append(result, acc)
					break
				}
				acc += result[k]
				result[k] = floorMod(acc, B)
				acc = floorDiv(acc, B)
				k++
			}
		}
	}

	n.digits = result
	n.safeMax = BSquared - 1
	n.Normalise(false)
}
