package rational

import lru "github.com/hashicorp/golang-lru/v2"

// simplifyResult is the memoized outcome of a completed Simplify run,
// keyed by the pre-simplification whole/num/den triple so repeat calls
// on an equal value skip the prime-sieve walk entirely.
type simplifyResult struct {
	num string
	den string
}

const simplifyCacheCapacity = 512

var simplifyCache = mustNewLRU(simplifyCacheCapacity)

func mustNewLRU(size int) *lru.Cache[string, simplifyResult] {
	c, err := lru.New[string, simplifyResult](size)
	if err != nil {
		// size is a positive compile-time constant; lru.New only
		// fails for size <= 0.
		panic(err)
	}
	return c
}

func (r *R) cacheKey() string {
	return r.Whole.String() + "/" + r.Num.String() + "/" + r.Den.String()
}
