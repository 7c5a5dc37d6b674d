// Package geosearch is the geometric search and roadmap infrastructure for
// obstacle-aware motion planning of multi-axis positioning instruments.
//
// What's inside?
//
//	A small, in-memory, CPU-bound library that brings together:
//		• Orthogonal range search: static k-dimensional range trees
//		• Closest pair: sweep-line, R-tree and range-tree accelerated variants
//		• Roadmap containers: dense and sparse weighted graphs behind one interface
//		• Contour extraction: raster obstacle masks → closed polygonal boundaries
//		• Treap: ordered structure with a secondary priority dimension
//
// Everything is organized under one subpackage per concern:
//
//	vec/         — shared immutable point type and distance helpers
//	rangetree/   — k-dim range tree with associated subtrees per level
//	treap/       — tree on the first coordinate, max-heap on the second
//	closestpair/ — three interchangeable minimum-distance-pair algorithms
//	contour/     — bitmap rasters and Moore-neighbour boundary tracing
//	graph/       — AdjacencyMatrix / AdjacencyList roadmap containers + Dijkstra
//
// Typical data flow: a raster obstacle mask is traced into contours, contour
// vertices are indexed in range trees and fed to closest-pair queries, and the
// resulting reachability roadmap is stored in a graph container for an
// external shortest-path search.
//
// All structures are synchronous and single-threaded: bulk-build once, then
// query. Concurrent read-only queries on a non-mutating structure are safe;
// concurrent mutation is not supported.
package geosearch
