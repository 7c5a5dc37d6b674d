// Package contour extracts closed pixel boundaries from a binary raster.
//
// A Bitmap is a width×height grid of uint8 cells where zero is background
// and any non-zero value is foreground. Trace scans the raster in row-major
// order for boundary seeds and follows each blob's outline with 8-connected
// Moore neighbour tracing, producing zero or more Contours. A pixel belongs
// to at most one contour per trace.
//
// Traced contours convert to orb.Ring geometries for downstream polygon
// consumers, with Douglas-Peucker simplification and signed-area helpers.
package contour
