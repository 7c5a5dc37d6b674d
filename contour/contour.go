package contour

import (
	"image"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/planar"
	"github.com/paulmach/orb/simplify"
)

// mooreOffsets enumerates the 8-connected neighbourhood in the fixed
// clockwise rotational order the tracer scans in.
var mooreOffsets = [8]image.Point{
	{-1, -1}, {0, -1}, {1, -1}, {1, 0}, {1, 1}, {0, 1}, {-1, 1}, {-1, 0},
}

// Contour is an ordered sequence of boundary pixels. Closed reports whether
// the trace returned to its seed pixel; a degenerate contour (single pixel
// or dead-ended thin region) is open.
type Contour struct {
	Pixels []image.Point
	Closed bool
}

// Option configures a trace.
type Option func(*traceOptions)

type traceOptions struct {
	paint      *Bitmap
	paintValue uint8
}

// WithBoundaryPaint paints every traced pixel into dst with the given value.
// dst is typically an all-background raster of the same size as the input.
func WithBoundaryPaint(dst *Bitmap, value uint8) Option {
	return func(o *traceOptions) {
		o.paint = dst
		o.paintValue = value
	}
}

// Trace extracts all blob boundaries from the raster.
//
// The raster is scanned in row-major order for seeds: unvisited foreground
// pixels whose left neighbour is background. A foreground pixel with a
// foreground left neighbour is never a seed, which keeps interior fill from
// being retraced as a boundary. From each seed the boundary is followed with
// Moore neighbour tracing until the seed is revisited (closed contour) or no
// foreground neighbour remains (degenerate contour). Traced pixels are
// consumed; a pixel belongs to at most one contour.
//
// Complexity: O(W×H + total boundary length).
func Trace(bm *Bitmap, opts ...Option) []Contour {
	var o traceOptions
	for _, opt := range opts {
		opt(&o)
	}

	visited := make([]bool, bm.width*bm.height)
	var contours []Contour
	for y := 0; y < bm.height; y++ {
		for x := 0; x < bm.width; x++ {
			if bm.At(x, y) == 0 || visited[y*bm.width+x] || bm.At(x-1, y) != 0 {
				continue
			}
			contours = append(contours, traceFrom(bm, image.Pt(x, y), visited, &o))
		}
	}

	return contours
}

// traceFrom follows one boundary starting at seed.
func traceFrom(bm *Bitmap, seed image.Point, visited []bool, o *traceOptions) Contour {
	mark := func(p image.Point) {
		visited[p.Y*bm.width+p.X] = true
		if o.paint != nil {
			o.paint.Set(p.X, p.Y, o.paintValue)
		}
	}

	pos, dir := seed, image.Pt(1, 0)
	pixels := []image.Point{seed}
	mark(seed)

	closed := false
	for {
		found := false
		var step image.Point
		for i := 0; i < 8 && !found; i++ {
			nd, ok := nextDir(dir, i)
			if !ok {
				break
			}
			if bm.At(pos.X+nd.X, pos.Y+nd.Y) != 0 {
				step, found = nd, true
			}
		}
		if !found {
			break
		}

		dir = step
		pos = pos.Add(dir)
		if pos == seed {
			closed = true
			break
		}
		pixels = append(pixels, pos)
		mark(pos)
	}

	return Contour{Pixels: pixels, Closed: closed}
}

// nextDir returns the iter-th candidate direction, counting clockwise from
// the position just after the reversal of the previous step. Scanning from
// the back-direction guarantees the trace hugs the blob boundary.
func nextDir(dir image.Point, iter int) (image.Point, bool) {
	back := image.Pt(-dir.X, -dir.Y)
	for i, off := range mooreOffsets {
		if back == off {
			return mooreOffsets[(iter+i+1)%8], true
		}
	}

	return image.Point{}, false
}

// Ring converts the contour to a closed orb.Ring in pixel coordinates.
// The first pixel is appended again to close the ring.
func (c Contour) Ring() orb.Ring {
	ring := make(orb.Ring, 0, len(c.Pixels)+1)
	for _, p := range c.Pixels {
		ring = append(ring, orb.Point{float64(p.X), float64(p.Y)})
	}
	if len(c.Pixels) > 0 {
		first := c.Pixels[0]
		ring = append(ring, orb.Point{float64(first.X), float64(first.Y)})
	}

	return ring
}

// SimplifyRing reduces a ring with Douglas-Peucker at the given tolerance.
func SimplifyRing(r orb.Ring, tolerance float64) orb.Ring {
	return simplify.DouglasPeucker(tolerance).Ring(r)
}

// Simplify returns the contour's ring simplified at the given tolerance.
func (c Contour) Simplify(tolerance float64) orb.Ring {
	return SimplifyRing(c.Ring(), tolerance)
}

// Area returns the signed planar area enclosed by the contour's ring.
func (c Contour) Area() float64 {
	return planar.Area(c.Ring())
}
