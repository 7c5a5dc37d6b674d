package contour

import "errors"

// Sentinel errors for raster construction.
var (
	// ErrEmptyRaster indicates the input grid has no rows or no columns.
	ErrEmptyRaster = errors.New("contour: raster must have at least one row and one column")
	// ErrRaggedRaster indicates rows of differing lengths.
	ErrRaggedRaster = errors.New("contour: all raster rows must have the same length")
)

// Bitmap is a dense row-major uint8 raster. Cell value zero is background;
// any non-zero value is foreground. Reads outside the bounds return the
// background sentinel and writes outside the bounds are dropped, so callers
// never need to bounds-check neighbour probes.
type Bitmap struct {
	width, height int
	pix           []uint8
}

// NewBitmap returns an all-background raster of the given size.
// Returns ErrEmptyRaster if either dimension is not positive.
func NewBitmap(width, height int) (*Bitmap, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrEmptyRaster
	}

	return &Bitmap{width: width, height: height, pix: make([]uint8, width*height)}, nil
}

// FromGrid builds a Bitmap from a rectangular 2D slice, deep-copying the
// input. Returns ErrEmptyRaster or ErrRaggedRaster on malformed input.
// Complexity: O(W×H) time and memory.
func FromGrid(values [][]uint8) (*Bitmap, error) {
	if len(values) == 0 || len(values[0]) == 0 {
		return nil, ErrEmptyRaster
	}
	h, w := len(values), len(values[0])

	bm := &Bitmap{width: w, height: h, pix: make([]uint8, w*h)}
	for y, row := range values {
		if len(row) != w {
			return nil, ErrRaggedRaster
		}
		copy(bm.pix[y*w:(y+1)*w], row)
	}

	return bm, nil
}

// Width returns the raster width in pixels.
func (bm *Bitmap) Width() int { return bm.width }

// Height returns the raster height in pixels.
func (bm *Bitmap) Height() int { return bm.height }

// InBounds reports whether (x,y) lies within the raster.
func (bm *Bitmap) InBounds(x, y int) bool {
	return x >= 0 && x < bm.width && y >= 0 && y < bm.height
}

// At returns the value at (x,y), or zero when (x,y) is out of bounds.
func (bm *Bitmap) At(x, y int) uint8 {
	if !bm.InBounds(x, y) {
		return 0
	}

	return bm.pix[y*bm.width+x]
}

// Set writes the value at (x,y). Out-of-bounds writes are dropped.
func (bm *Bitmap) Set(x, y int, v uint8) {
	if !bm.InBounds(x, y) {
		return
	}
	bm.pix[y*bm.width+x] = v
}
