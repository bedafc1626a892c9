// Package numtheory holds the integer primitives shared by the field
// and factorization packages: primality by trial division, the two
// gcd variants, and overflow-aware int64 arithmetic.
package numtheory

import (
	"errors"
	"math"
	"math/bits"
)

// ErrOverflow is returned when a result does not fit in an int64.
var ErrOverflow = errors.New("int64 overflow")

// IsPrime reports whether x is prime. Anything below 2 is not
// prime. Odd candidates are trial-divided from 3 up to the integer
// square root of x, so the cost is O(√x).
func IsPrime(x int64) bool {
	if x == 2 {
		return true
	}
	if x < 2 || x%2 == 0 {
		return false
	}
	// i <= x/i is i*i <= x without the overflow.
	for i := int64(3); i <= x/i; i += 2 {
		if x%i == 0 {
			return false
		}
	}
	return true
}

// GCD returns the greatest common divisor of |a| and |b| using the
// remainder-based Euclidean algorithm. GCD(0, 0) is 0.
func GCD(a, b int64) int64 {
	x, y := Abs(a), Abs(b)
	for y != 0 {
		x, y = y, x%y
	}
	return x
}

// SubtractiveGCD returns the greatest common divisor of two
// non-negative values by repeated subtraction, which is O(max(a, b))
// rather than logarithmic. If exactly one argument is zero the other
// is returned, and SubtractiveGCD(0, 0) is 0; callers that must
// reject that case check for it first.
func SubtractiveGCD(a, b int64) int64 {
	if a < 0 || b < 0 {
		panic("negative argument")
	}
	if a == 0 {
		return b
	}
	if b == 0 {
		return a
	}
	for a != b {
		if a > b {
			a -= b
		} else {
			b -= a
		}
	}
	return a
}

// Abs returns |x|. Abs(math.MinInt64) is math.MinInt64, as for any
// two's complement negation.
func Abs(x int64) int64 {
	if x < 0 {
		return -x
	}
	return x
}

// ISqrt returns ⌊√n⌋ for n >= 0.
func ISqrt(n int64) int64 {
	if n < 0 {
		panic("negative argument")
	}
	r := int64(math.Sqrt(float64(n)))
	// The float estimate can be off by one either way near 2^63.
	for r > 0 && r > n/r {
		r--
	}
	for r+1 <= n/(r+1) {
		r++
	}
	return r
}

// MulChecked returns a*b, or ErrOverflow if the product does not fit
// in an int64.
func MulChecked(a, b int64) (int64, error) {
	if a == 0 || b == 0 {
		return 0, nil
	}
	p := a * b
	if p/b != a || (a == -1 && b == math.MinInt64) || (b == -1 && a == math.MinInt64) {
		return 0, ErrOverflow
	}
	return p, nil
}

// Pow returns base^exp for exp >= 0, or ErrOverflow if any
// intermediate result does not fit in an int64.
func Pow(base, exp int64) (int64, error) {
	if exp < 0 {
		panic("negative exponent")
	}
	result := int64(1)
	for i := int64(0); i < exp; i++ {
		var err error
		result, err = MulChecked(result, base)
		if err != nil {
			return 0, err
		}
	}
	return result, nil
}

// Mod returns the floored remainder of x by m, which is always in
// [0, m). m must be positive.
func Mod(x, m int64) int64 {
	if m <= 0 {
		panic("non-positive modulus")
	}
	r := x % m
	if r < 0 {
		r += m
	}
	return r
}

// AddMod returns (a + b) mod m for a, b in [0, m).
func AddMod(a, b, m int64) int64 {
	// a and b are below m <= MaxInt64, so the sum fits in a uint64.
	s := uint64(a) + uint64(b)
	if s >= uint64(m) {
		s -= uint64(m)
	}
	return int64(s)
}

// SubMod returns (a - b) mod m for a, b in [0, m).
func SubMod(a, b, m int64) int64 {
	d := a - b
	if d < 0 {
		d += m
	}
	return d
}

// MulMod returns (a * b) mod m for a, b in [0, m). The product is
// formed in 128 bits, so there is no overflow for any int64 modulus.
func MulMod(a, b, m int64) int64 {
	hi, lo := bits.Mul64(uint64(a), uint64(b))
	return int64(bits.Rem64(hi, lo, uint64(m)))
}
