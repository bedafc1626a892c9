package factor

import (
	"context"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/akalin/gfnum/numtheory"
)

func requireFactorization(t *testing.T, n int64, factors []int64) {
	t.Helper()
	for _, p := range factors {
		require.True(t, numtheory.IsPrime(p), "n=%d, factors=%v", n, factors)
	}
	require.Equal(t, n, Product(factors), "n=%d, factors=%v", n, factors)
	require.Equal(t, TrialDivision(n), Sorted(factors), "n=%d", n)
}

func TestTrialDivision(t *testing.T) {
	require.Equal(t, []int64{}, TrialDivision(0))
	require.Equal(t, []int64{}, TrialDivision(1))
	require.Equal(t, []int64{13}, TrialDivision(13))
	require.Equal(t, []int64{2, 2, 3}, TrialDivision(12))
	require.Equal(t, []int64{2, 2, 2, 2, 2, 2, 2, 2, 2, 2}, TrialDivision(1024))
	require.Equal(t, []int64{3, 3, 5, 7}, TrialDivision(315))
	require.Equal(t, []int64{65521, 65521}, TrialDivision(65521*65521))
}

func TestFactorPrimeOrSmall(t *testing.T) {
	f := New(WithSeed(1))
	for _, n := range []int64{-10, 0, 1, 2, 3, 13, 97, 1000000007} {
		require.Equal(t, []int64{}, f.Factor(n), "n=%d", n)
	}
}

func TestFactorEvenIsAscending(t *testing.T) {
	f := New(WithSeed(1))
	require.Equal(t, []int64{2, 2, 3}, f.Factor(12))
	require.Equal(t, []int64{2, 3, 3, 5, 7}, f.Factor(630))
	require.Equal(t, []int64{2, 1000000007}, f.Factor(2000000014))
}

func TestFactorOddComposites(t *testing.T) {
	f := New(WithSeed(2))
	for _, n := range []int64{
		9, 15, 21, 25, 27, 45, 49, 81, 105, 121, 125,
		243, 315, 343, 1001, 3375, 10403, 999999,
		65521 * 65521,
		1000003 * 1000033,
		3 * 3 * 3 * 7 * 7 * 11 * 13,
	} {
		requireFactorization(t, n, f.Factor(n))
	}
}

func TestFactorExhaustive(t *testing.T) {
	f := New(WithSeed(3))
	for n := int64(2); n < 5000; n++ {
		factors := f.Factor(n)
		if numtheory.IsPrime(n) {
			require.Empty(t, factors, "n=%d", n)
			continue
		}
		requireFactorization(t, n, factors)
	}
}

func TestFactorManySeeds(t *testing.T) {
	// Prime powers make the search hit the trivial divisor often, so
	// this exercises the trial division fallback.
	for seed := int64(0); seed < 50; seed++ {
		f := New(WithSeed(seed))
		for _, n := range []int64{9, 25, 27, 49, 3 * 3 * 3 * 3 * 3 * 3, 5 * 5 * 5 * 7} {
			requireFactorization(t, n, f.Factor(n))
		}
	}
}

func TestFactorDeterministicWithSeed(t *testing.T) {
	n := int64(1000003 * 1000033 * 3)
	a := New(WithSeed(42)).Factor(n)
	b := New(WithSeed(42)).Factor(n)
	require.Equal(t, a, b)
}

func TestSearchFindsProperDivisor(t *testing.T) {
	f := New(WithSeed(7))
	for i := 0; i < 100; i++ {
		n := int64(10403) // 101 * 103
		d, err := f.search(n)
		if err != nil {
			require.Equal(t, errSearchFailed, err)
			continue
		}
		require.True(t, d == 101 || d == 103, "d=%d", d)
	}
}

func TestStartingPointRange(t *testing.T) {
	f := New(WithSeed(5))
	for i := 0; i < 1000; i++ {
		x := f.startingPoint(9)
		require.True(t, x >= 1 && x <= 7, "x=%d", x)
	}
}

func TestSorted(t *testing.T) {
	in := []int64{7, 3, 5, 3}
	require.Equal(t, []int64{3, 3, 5, 7}, Sorted(in))
	require.Equal(t, []int64{7, 3, 5, 3}, in)
}

func TestProduct(t *testing.T) {
	require.Equal(t, int64(1), Product(nil))
	require.Equal(t, int64(105), Product([]int64{3, 5, 7}))
}

func TestFactorAll(t *testing.T) {
	nums := make([]int64, 200)
	r := rand.New(rand.NewSource(9))
	for i := range nums {
		nums[i] = 2 + r.Int63n(1000000)
	}

	results, err := New(WithSeed(11)).FactorAll(context.Background(), nums, 4)
	require.NoError(t, err)
	require.Len(t, results, len(nums))
	for i, n := range nums {
		if numtheory.IsPrime(n) {
			require.Empty(t, results[i])
			continue
		}
		requireFactorization(t, n, results[i])
	}

	again, err := New(WithSeed(11)).FactorAll(context.Background(), nums, 1)
	require.NoError(t, err)
	require.Equal(t, results, again)
}

func TestFactorAllDefaultWorkers(t *testing.T) {
	require.True(t, DefaultWorkers() > 0)
	results, err := New(WithSeed(1)).FactorAll(context.Background(), []int64{12, 13}, 0)
	require.NoError(t, err)
	require.Equal(t, [][]int64{{2, 2, 3}, {}}, results)
}

func TestFactorAllCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := New(WithSeed(1)).FactorAll(ctx, []int64{12, 15, 21}, 2)
	require.Equal(t, context.Canceled, err)
}

func BenchmarkFactorSemiprime(b *testing.B) {
	f := New(WithSeed(1))
	for i := 0; i < b.N; i++ {
		f.Factor(1000003 * 1000033)
	}
}
