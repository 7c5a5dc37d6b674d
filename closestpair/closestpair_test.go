package closestpair_test

import (
	"fmt"
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/arvidhal/geosearch/closestpair"
	"github.com/arvidhal/geosearch/vec"
)

// bruteMinDist is the O(n²) reference minimum distance.
func bruteMinDist(pts []vec.Vec) float64 {
	best := math.Inf(1)
	for i := range pts {
		for j := i + 1; j < len(pts); j++ {
			if d := vec.Dist(pts[i], pts[j]); d < best {
				best = d
			}
		}
	}

	return best
}

// algorithms under test, 2D-capable set.
var algos2D = []struct {
	name string
	fn   func([]vec.Vec) (closestpair.Pair, error)
}{
	{"Sweep", closestpair.Sweep},
	{"RTree", closestpair.RTree},
	{"RangeTree", closestpair.RangeTree},
}

// TestAgreement_Random2D verifies all three algorithms return the brute-force
// minimum distance for random 2D sets of growing size.
func TestAgreement_Random2D(t *testing.T) {
	rng := rand.New(rand.NewSource(11))

	for _, n := range []int{2, 3, 5, 10, 25, 60, 150, 500} {
		pts := make([]vec.Vec, n)
		for i := range pts {
			pts[i] = vec.New(rng.Float64()*100, rng.Float64()*100)
		}
		want := bruteMinDist(pts)

		for _, algo := range algos2D {
			t.Run(fmt.Sprintf("%s/n=%d", algo.name, n), func(t *testing.T) {
				pair, err := algo.fn(pts)
				require.NoError(t, err)
				require.InDelta(t, want, pair.Dist, closestpair.DistEpsilon)
				require.InDelta(t, vec.Dist(pair.A, pair.B), pair.Dist, closestpair.DistEpsilon,
					"reported distance must match reported pair")
			})
		}
	}
}

// TestAgreement_Random3D verifies the two any-dimension algorithms in 3D.
func TestAgreement_Random3D(t *testing.T) {
	rng := rand.New(rand.NewSource(13))

	pts := make([]vec.Vec, 120)
	for i := range pts {
		pts[i] = vec.New(rng.Float64()*50, rng.Float64()*50, rng.Float64()*50)
	}
	want := bruteMinDist(pts)

	for _, fn := range []func([]vec.Vec) (closestpair.Pair, error){
		closestpair.RTree, closestpair.RangeTree,
	} {
		pair, err := fn(pts)
		require.NoError(t, err)
		require.InDelta(t, want, pair.Dist, closestpair.DistEpsilon)
	}
}

// TestKnownQuartet pins the fixed example set: distance 1.0 under every
// algorithm. Two pairs tie at 1.0, so only the distance is pinned; the
// returned pair must attain it.
func TestKnownQuartet(t *testing.T) {
	pts := []vec.Vec{vec.New(0, 0), vec.New(1, 0), vec.New(5, 5), vec.New(5, 6)}

	for _, algo := range algos2D {
		t.Run(algo.name, func(t *testing.T) {
			pair, err := algo.fn(pts)
			require.NoError(t, err)
			require.InDelta(t, 1.0, pair.Dist, closestpair.DistEpsilon)
			require.InDelta(t, 1.0, vec.Dist(pair.A, pair.B), closestpair.DistEpsilon)
		})
	}
}

// TestDuplicatePoints verifies coincident points yield distance zero.
func TestDuplicatePoints(t *testing.T) {
	pts := []vec.Vec{vec.New(3, 3), vec.New(9, 1), vec.New(3, 3), vec.New(0, 7)}

	for _, algo := range algos2D {
		t.Run(algo.name, func(t *testing.T) {
			pair, err := algo.fn(pts)
			require.NoError(t, err)
			require.InDelta(t, 0.0, pair.Dist, closestpair.DistEpsilon)
		})
	}
}

// TestSharedPointInstance verifies one Vec header referenced twice in the
// input is treated as a coincident pair at distance zero by every
// algorithm, matching the shared read-only point ownership model.
func TestSharedPointInstance(t *testing.T) {
	p := vec.New(5, 5)
	pts := []vec.Vec{vec.New(0, 0), p, vec.New(1, 0), p}

	for _, algo := range algos2D {
		t.Run(algo.name, func(t *testing.T) {
			pair, err := algo.fn(pts)
			require.NoError(t, err)
			require.InDelta(t, 0.0, pair.Dist, closestpair.DistEpsilon)
		})
	}
}

// TestPreconditions verifies the n<2 and dimension sentinels.
func TestPreconditions(t *testing.T) {
	for _, algo := range algos2D {
		t.Run(algo.name, func(t *testing.T) {
			_, err := algo.fn(nil)
			require.ErrorIs(t, err, closestpair.ErrTooFewPoints)

			_, err = algo.fn([]vec.Vec{vec.New(1, 2)})
			require.ErrorIs(t, err, closestpair.ErrTooFewPoints)
		})
	}

	_, err := closestpair.Sweep([]vec.Vec{vec.New(1, 2, 3), vec.New(4, 5, 6)})
	require.ErrorIs(t, err, closestpair.ErrDimension)

	_, err = closestpair.RTree([]vec.Vec{vec.New(1, 2), vec.New(1)})
	require.ErrorIs(t, err, vec.ErrDimensionMismatch)
}
