package bigint

import (
	"strconv"
	"sync"

	"golang.org/x/sync/singleflight"
)

// primeCache is the process-wide, monotonically growing list of
// primes the simplifier's trial division draws from. It starts at
// [2, 3] and is only ever appended to, never mutated otherwise, under
// primeMu. primeGroup deduplicates concurrent requests to extend the
// cache to the same length, the way golang.org/x/sync/errgroup
// deduplicates concurrent fan-out elsewhere in the corpus — here the
// shape that fits is "only one caller should do the work", which is
// singleflight's job rather than errgroup's.
var (
	primeMu    sync.RWMutex
	primeCache = []int64{2, 3}
	primeGroup singleflight.Group
)

// Sieve is a cursor over the shared prime cache. Each Sieve instance
// holds only its own read position; the cache itself is shared.
type Sieve struct {
	cursor int
}

// NewSieve returns an iterator positioned before the first prime.
func NewSieve() *Sieve {
	return &Sieve{}
}

// Next returns the next prime in order, or 0 once the next candidate
// would reach B — primes at or beyond the radix fall outside the
// simplifier's trial-division range by construction.
func (s *Sieve) Next() int64 {
	primeMu.RLock()
	have := len(primeCache)
	primeMu.RUnlock()

	if s.cursor >= have && !extendCache(s.cursor + 1) {
		return 0
	}

	primeMu.RLock()
	defer primeMu.RUnlock()
	if s.cursor >= len(primeCache) {
		return 0
	}
	p := primeCache[s.cursor]
	s.cursor++
	return p
}

// extendCache grows the shared cache until it holds at least `want`
// primes, or until the next +2 candidate would reach B, whichever
// comes first. Returns whether `want` was reached.
func extendCache(want int) bool {
	key := strconv.Itoa(want)
	primeGroup.Do(key, func() (interface{}, error) {
		primeMu.Lock()
		defer primeMu.Unlock()
		candidate := primeCache[len(primeCache)-1]
		for len(primeCache) < want {
			candidate += 2
			if candidate >= B {
				break
			}
			if isPrimeAgainstCache(candidate) {
				primeCache = append(primeCache, candidate)
			}
		}
		return nil, nil
	})

	primeMu.RLock()
	defer primeMu.RUnlock()
	return len(primeCache) >= want
}

// isPrimeAgainstCache trial-divides candidate by every cached prime up
// to its square root. Callers must hold primeMu.
func isPrimeAgainstCache(candidate int64) bool {
	for _, p := range primeCache {
		if p*p > candidate {
			break
		}
		if candidate%p == 0 {
			return false
		}
	}
	return true
}
