package rational

import (
	"strconv"
	"strings"

	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/LeJamon/tpa/internal/tpaerr"
)

// ToInteger renders r's whole part as a signed base-10 string.
func (r *R) ToInteger() string {
	return r.Whole.String()
}

// ToFraction renders r as ToInteger() plus, if a non-zero fraction is
// present, a trailing " num/den" with an absolute-valued numerator.
func (r *R) ToFraction() string {
	base := r.ToInteger()
	if r.IntegerOnly || r.Num.IsZero() {
		return base
	}
	return base + " " + r.Num.Abs().String() + "/" + r.Den.String()
}

// Value returns a lossy platform float approximation of r: the whole
// part plus the fraction truncated toward zero at 8 decimal places.
func (r *R) Value() float64 {
	v := r.Whole.Value()
	if r.IntegerOnly || r.Num.IsZero() {
		return v
	}
	scaled := r.Num.Clone()
	scaled.Multiply(bigint.NewFromInt64(100000000))
	quotient := scaled.Clone()
	if _, err := quotient.DivMod(r.Den.Clone()); err != nil {
		return v
	}
	return v + quotient.Value()/100000000
}

// ToString renders r as decimal: the whole part, then, if a non-zero
// fraction is present, '.' followed by the long-division digit
// expansion. Repetition is detected by recording every numerator seen
// during the expansion and bracketing the cycle once a numerator
// recurs; expansion otherwise stops at maxDP digits (default 100),
// appending "..." to mark truncation.
func (r *R) ToString(maxDP ...int) (string, error) {
	limit := 100
	if len(maxDP) > 0 {
		if maxDP[0] < 0 {
			return "", tpaerr.New("to_string", "", tpaerr.ErrInvalidPrecision)
		}
		limit = maxDP[0]
	}

	var sb strings.Builder
	sb.WriteString(r.ToInteger())
	if r.IntegerOnly || r.Num.IsZero() {
		return sb.String(), nil
	}
	sb.WriteByte('.')

	numerator := r.Num.Abs()
	den := r.Den
	ten := bigint.NewFromInt64(10)

	var seen []*bigint.Int
	var digits strings.Builder
	bracketAt := -1
	truncated := false

	for !numerator.IsZero() {
		matchIdx := -1
		for i, s := range seen {
			if s.Compare(numerator) == 0 {
				matchIdx = i
				break
			}
		}
		if matchIdx >= 0 {
			bracketAt = matchIdx
			break
		}
		if digits.Len() >= limit {
			truncated = true
			break
		}
		seen = append(seen, numerator.Clone())

		numerator.Multiply(ten)
		quotient := numerator.Clone()
		remainder, _ := quotient.DivMod(den.Clone())
		digits.WriteString(strconv.FormatInt(quotient.LSB(), 10))
		numerator = remainder
	}

	digitStr := digits.String()
	if bracketAt >= 0 {
		sb.WriteString(digitStr[:bracketAt])
		sb.WriteByte('[')
		sb.WriteString(digitStr[bracketAt:])
		sb.WriteByte(']')
	} else {
		sb.WriteString(digitStr)
	}
	if truncated {
		sb.WriteString("...")
	}
	return sb.String(), nil
}

// ToDecimal is an alias for ToString.
func (r *R) ToDecimal(maxDP ...int) (string, error) { return r.ToString(maxDP...) }
