package rational

import (
	"github.com/LeJamon/tpa/internal/bigint"
	"github.com/LeJamon/tpa/internal/tpaerr"
)

// Simplify reduces r's fraction by trial-dividing against the shared
// prime sieve, up to a rough upper bound on sqrt(|num|), within a
// maxMS millisecond budget polled via clock (0 means unbounded). It
// returns true iff the walk ran to completion (no timeout, and the
// sieve did not exhaust itself below the prime ceiling) and the
// post-loop exact-division reassembly succeeded. This is best-effort:
// a false return leaves r's value unchanged but does not guarantee no
// further common factor exists.
func (r *R) Simplify(maxMS int64, clock Clock) (bool, error) {
	if maxMS < 0 {
		return false, tpaerr.New("simplify", "", tpaerr.ErrInvalidSimplifyBudget)
	}
	if r.IntegerOnly || r.Num.IsZero() {
		return true, nil
	}

	key := r.cacheKey()
	if cached, ok := simplifyCache.Get(key); ok {
		num, _ := bigint.NewFromString(cached.num)
		den, _ := bigint.NewFromString(cached.den)
		r.Num, r.Den = num, den
		return true, nil
	}

	negative := r.Num.Sign() < 0
	num := r.Num.Abs()
	den := r.Den.Clone()
	factor := bigint.NewFromInt64(1)

	ceil := num.RoughSqrt().Value()
	sieve := bigint.NewSieve()
	start := clock.ElapsedMillis()
	ranToCompletion := true

loop:
	for {
		if maxMS > 0 && clock.ElapsedMillis()-start >= maxMS {
			ranToCompletion = false
			break
		}
		p := sieve.Next()
		if p == 0 {
			ranToCompletion = false
			break
		}
		if float64(p) > ceil {
			break loop
		}
		pN := bigint.NewFromInt64(p)
		for {
			q, ok := dividesExact(num, pN)
			if !ok {
				break
			}
			num = q
			if dq, ok2 := dividesExact(den, pN); ok2 {
				den = dq
			} else {
				factor.Multiply(pN)
			}
		}
	}

	quotient, exact := dividesExact(den, num)
	success := ranToCompletion && exact
	if exact {
		den = quotient
		num = factor
	} else {
		num.Multiply(factor)
	}
	if negative {
		num.Negate()
	}
	r.Num, r.Den = num, den

	if success {
		simplifyCache.Add(key, simplifyResult{num: r.Num.String(), den: r.Den.String()})
	}
	return success, nil
}

// dividesExact reports whether d divides n exactly, returning the
// quotient when it does. n and d are left untouched.
func dividesExact(n, d *bigint.Int) (*bigint.Int, bool) {
	quotient := n.Clone()
	remainder, err := quotient.DivMod(d.Clone())
	if err != nil || !remainder.IsZero() {
		return nil, false
	}
	return quotient, true
}
