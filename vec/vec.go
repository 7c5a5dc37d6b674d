// Package vec defines the shared point type used by every index structure in
// geosearch, together with the small set of vector helpers the algorithms
// need (Euclidean distance, norm, dimension checks).
//
// A Vec is a plain []float64 slice header. Several index structures may hold
// the same Vec at once: they all alias one backing array, which is exactly
// the shared, read-only ownership model the library relies on. A Vec must
// not be mutated after it has been handed to any structure.
package vec

import (
	"errors"
	"math"
)

// Sentinel errors for point-set validation.
var (
	// ErrDimensionMismatch indicates a point set with inconsistent dimensions.
	ErrDimensionMismatch = errors.New("vec: points must share one dimension")
	// ErrZeroDimension indicates a point with no coordinates.
	ErrZeroDimension = errors.New("vec: points must have at least one coordinate")
)

// Vec is a fixed-dimension real-valued coordinate tuple.
// Treat it as immutable once indexed by any structure.
type Vec []float64

// New builds a Vec from the given coordinates.
func New(coords ...float64) Vec {
	v := make(Vec, len(coords))
	copy(v, coords)

	return v
}

// Dim reports the number of coordinates.
func (v Vec) Dim() int { return len(v) }

// Clone returns an independent copy of v with its own backing array.
func (v Vec) Clone() Vec {
	c := make(Vec, len(v))
	copy(c, v)

	return c
}

// Same reports whether a and b are the same point instance, i.e. alias the
// same backing array. Distinct points with equal coordinates are not Same.
func Same(a, b Vec) bool {
	return len(a) > 0 && len(b) > 0 && &a[0] == &b[0]
}

// DistSq returns the squared Euclidean distance between a and b.
// The caller guarantees equal dimensions.
// Complexity: O(d).
func DistSq(a, b Vec) float64 {
	var sum float64
	for i := range a {
		d := a[i] - b[i]
		sum += d * d
	}

	return sum
}

// Dist returns the Euclidean distance between a and b.
// Complexity: O(d).
func Dist(a, b Vec) float64 {
	return math.Sqrt(DistSq(a, b))
}

// Norm returns the Euclidean length of v.
func Norm(v Vec) float64 {
	var sum float64
	for _, c := range v {
		sum += c * c
	}

	return math.Sqrt(sum)
}

// CheckDims validates that all points share one non-zero dimension and
// returns it. An empty point set is valid and reports dimension 0.
// Complexity: O(n).
func CheckDims(points []Vec) (int, error) {
	if len(points) == 0 {
		return 0, nil
	}
	dim := points[0].Dim()
	if dim == 0 {
		return 0, ErrZeroDimension
	}
	for _, p := range points[1:] {
		if p.Dim() != dim {
			return 0, ErrDimensionMismatch
		}
	}

	return dim, nil
}
