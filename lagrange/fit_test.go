package lagrange_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/tiquad/lagrange"
	"github.com/katalvlaran/tiquad/sample"
)

// quadraticSet is the worked end-to-end example: y = x² + 1 sampled at
// x = 0, 1, 2. The exact fit is [1, 0, 1] in ascending powers.
func quadraticSet() sample.Set {
	return sample.Set{{X: 0, Y: 1}, {X: 1, Y: 2}, {X: 2, Y: 5}}
}

// randomSet builds a deterministic pseudo-random sample set: strictly
// increasing jittered x over [0, 1], y in [-10, 10). Same seed ⇒ same
// set, keeping failures reproducible.
func randomSet(seed int64, n int) sample.Set {
	rng := rand.New(rand.NewSource(seed))

	set := make(sample.Set, n)
	h := 1.0 / float64(n)
	for i := 0; i < n; i++ {
		set[i] = sample.Sample{
			X: (float64(i) + 0.5*rng.Float64()) * h,
			Y: rng.Float64()*20 - 10,
		}
	}

	return set
}

// TestFit_WorkedExample verifies the full pipeline against hand-derived
// coefficients: every intermediate of this set is exact in float64, so
// the comparison is equality, not tolerance.
func TestFit_WorkedExample(t *testing.T) {
	p, err := lagrange.Fit(quadraticSet())
	require.NoError(t, err)
	assert.Equal(t, lagrange.Polynomial{1, 0, 1}, p)
}

// TestFit_LengthEqualsSampleCount verifies len(p) == len(set) for a
// spread of sizes.
func TestFit_LengthEqualsSampleCount(t *testing.T) {
	for n := 2; n <= 12; n++ {
		p, err := lagrange.Fit(randomSet(int64(n), n))
		require.NoError(t, err)
		assert.Len(t, p, n)
	}
}

// TestFit_InterpolationProperty verifies the defining property: the
// fitted polynomial reproduces every sample's own y at its x, within
// floating-point tolerance, across seeded random sets.
func TestFit_InterpolationProperty(t *testing.T) {
	for seed := int64(1); seed <= 5; seed++ {
		for _, n := range []int{2, 3, 5, 8, 12} {
			set := randomSet(seed, n)

			p, err := lagrange.Fit(set)
			require.NoError(t, err)

			// Cancellation inside the expansion grows with n and y
			// spans [-10, 10), so the tolerance stays loose.
			for _, s := range set {
				assert.InDelta(t, s.Y, p.At(s.X), 1e-4,
					"seed=%d n=%d x=%v", seed, n, s.X)
			}
		}
	}
}

// TestFit_Deterministic verifies that refitting the same set yields a
// bit-identical coefficient vector: the operation order is fixed by
// sample order.
func TestFit_Deterministic(t *testing.T) {
	set := randomSet(42, 9)

	a, err := lagrange.Fit(set)
	require.NoError(t, err)
	b, err := lagrange.Fit(set)
	require.NoError(t, err)

	assert.Equal(t, a, b)
}

// TestFit_DuplicateX verifies the degenerate-input contract: an exact
// duplicate x must surface ErrDuplicateX, never NaN coefficients.
func TestFit_DuplicateX(t *testing.T) {
	set := sample.Set{{X: 0.5, Y: 1}, {X: 0.5, Y: 2}}

	p, err := lagrange.Fit(set)
	require.ErrorIs(t, err, lagrange.ErrDuplicateX)
	assert.Nil(t, p, "no partially valid vector on error")
}

// TestFit_TooFew verifies that 0 and 1 samples are rejected.
func TestFit_TooFew(t *testing.T) {
	_, err := lagrange.Fit(nil)
	require.ErrorIs(t, err, lagrange.ErrTooFewSamples)

	_, err = lagrange.Fit(sample.Set{{X: 0, Y: 0}})
	require.ErrorIs(t, err, lagrange.ErrTooFewSamples)
}

// TestFit_TooMany verifies the fail-fast bitmask ceiling at
// MaxSamples+1 distinct points.
func TestFit_TooMany(t *testing.T) {
	set := make(sample.Set, lagrange.MaxSamples+1)
	for i := range set {
		set[i] = sample.Sample{X: float64(i), Y: 0}
	}

	_, err := lagrange.Fit(set)
	require.ErrorIs(t, err, lagrange.ErrTooManySamples)
}

// TestFit_NonFinite verifies that NaN and Inf coordinates are rejected
// up front rather than propagated.
func TestFit_NonFinite(t *testing.T) {
	_, err := lagrange.Fit(sample.Set{{X: 0, Y: math.NaN()}, {X: 1, Y: 0}})
	require.ErrorIs(t, err, lagrange.ErrNonFiniteSample)

	_, err = lagrange.Fit(sample.Set{{X: math.Inf(1), Y: 0}, {X: 1, Y: 0}})
	require.ErrorIs(t, err, lagrange.ErrNonFiniteSample)
}

// TestFit_LineThroughTwoPoints verifies the smallest legal fit: the
// line through (0,0) and (1,1) is exactly x.
func TestFit_LineThroughTwoPoints(t *testing.T) {
	p, err := lagrange.Fit(sample.Set{{X: 0, Y: 0}, {X: 1, Y: 1}})
	require.NoError(t, err)
	assert.Equal(t, lagrange.Polynomial{0, 1}, p)
}
