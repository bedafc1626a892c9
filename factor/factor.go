// Package factor decomposes positive integers into primes with a mix
// of trial division and a Pollard's-rho style cycle search.
package factor

import (
	"errors"
	"math/rand"
	"sort"
	"sync"
	"time"

	logging "github.com/ipfs/go-log/v2"

	"github.com/akalin/gfnum/numtheory"
)

var log = logging.Logger("factor")

// errSearchFailed is returned by the cycle search when the gcd it
// finds is the number itself. Factor recovers from it by falling back
// to trial division, so it never reaches a caller.
var errSearchFailed = errors.New("cycle search found only the trivial divisor")

// A Factorizer finds prime factorizations. Its only state is the
// random source that picks each cycle search's starting point, which
// is guarded so that a Factorizer may be shared between goroutines.
type Factorizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
	log *logging.ZapEventLogger
}

// An Option configures a Factorizer.
type Option func(*Factorizer)

// WithRand makes the Factorizer draw starting points from r. The
// Factorizer takes ownership of r.
func WithRand(r *rand.Rand) Option {
	return func(f *Factorizer) {
		f.rnd = r
	}
}

// WithSeed makes the Factorizer deterministic.
func WithSeed(seed int64) Option {
	return WithRand(rand.New(rand.NewSource(seed)))
}

// WithLogger replaces the package logger.
func WithLogger(l *logging.ZapEventLogger) Option {
	return func(f *Factorizer) {
		f.log = l
	}
}

// New returns a Factorizer. Without WithRand or WithSeed it is seeded
// from the current time.
func New(opts ...Option) *Factorizer {
	f := &Factorizer{log: log}
	for _, opt := range opts {
		opt(f)
	}
	if f.rnd == nil {
		f.rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return f
}

var defaultFactorizer = New()

// Default returns the process-wide Factorizer.
func Default() *Factorizer {
	return defaultFactorizer
}

// Factor returns the prime factors of num, with repetition, whose
// product is num. It returns an empty slice when num is prime or
// less than 2.
//
// Even numbers are factored by trial division, so their factors come
// out ascending. Odd composites go through the cycle search and their
// factors come out in discovery order, followed by whatever trial
// division produced if a search failed. The result is therefore not
// sorted in general; see Sorted.
func (f *Factorizer) Factor(num int64) []int64 {
	factors := []int64{}
	if num < 2 || numtheory.IsPrime(num) {
		return factors
	}
	if num%2 == 0 {
		return TrialDivision(num)
	}
	return f.factorOdd(num, factors)
}

// factorOdd appends the factors of the odd composite n to factors.
func (f *Factorizer) factorOdd(n int64, factors []int64) []int64 {
	remaining := n
	for {
		d, err := f.search(remaining)
		if errors.Is(err, errSearchFailed) {
			f.log.Debugf("cycle search failed on %d, falling back to trial division", remaining)
			return append(factors, TrialDivision(remaining)...)
		}

		// d need not be prime; it is split further in place.
		if numtheory.IsPrime(d) {
			factors = append(factors, d)
		} else {
			factors = f.factorOdd(d, factors)
		}

		remaining /= d
		if numtheory.IsPrime(remaining) {
			return append(factors, remaining)
		}
	}
}

// search runs Floyd's cycle detection over x ↦ x² + 1 (mod n) from
// a random start in [1, n-2] and returns a divisor d of n with
// 1 < d < n, or errSearchFailed. n must be an odd composite, so
// n >= 9.
func (f *Factorizer) search(n int64) (int64, error) {
	x := f.startingPoint(n)
	y := x
	d := int64(1)
	for d == 1 {
		x = step(x, n)
		y = step(step(y, n), n)
		d = numtheory.GCD(x-y, n)
	}
	if d == n {
		return 0, errSearchFailed
	}
	return d, nil
}

func (f *Factorizer) startingPoint(n int64) int64 {
	f.mu.Lock()
	defer f.mu.Unlock()
	return 1 + f.rnd.Int63n(n-2)
}

// step is the pseudo-random map of the cycle search. It is reduced
// mod n so that x never leaves [0, n) and cannot overflow.
func step(x, n int64) int64 {
	return numtheory.AddMod(numtheory.MulMod(x, x, n), 1, n)
}

// TrialDivision factors n by dividing out candidates 2, 3, 4, ...
// while the candidate is at most the square root of what remains;
// whatever is left above 1 is the last factor. The result is
// ascending. Unlike Factor, a prime n yields []int64{n}, and n < 2
// yields an empty slice.
func TrialDivision(n int64) []int64 {
	factors := []int64{}
	i := int64(2)
	for i <= n/i {
		if n%i == 0 {
			factors = append(factors, i)
			n /= i
		} else {
			i++
		}
	}
	if n > 1 {
		factors = append(factors, n)
	}
	return factors
}

// Sorted returns an ascending copy of factors.
func Sorted(factors []int64) []int64 {
	s := make([]int64, len(factors))
	copy(s, factors)
	sort.Slice(s, func(i, j int) bool { return s[i] < s[j] })
	return s
}

// Product returns the product of factors, which is 1 for an empty
// slice.
func Product(factors []int64) int64 {
	p := int64(1)
	for _, x := range factors {
		p *= x
	}
	return p
}
