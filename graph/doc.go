// Package graph provides two interchangeable weighted directed graph
// containers behind one capability contract:
//
//   - AdjacencyMatrix: O(V²) dense weight storage. Edge set/get is O(1);
//     vertex add/remove reallocates and copies the matrix in O(V²).
//   - AdjacencyList: O(V+E) sparse storage with per-vertex singly linked
//     edge records. Edge insertion is an O(1) prepend; vertex removal
//     unlinks every record referencing the removed index and renumbers
//     survivors.
//
// Both containers identify vertices by unique non-empty string identifiers
// and additionally expose stable integer indices for dense consumers.
// Removing a vertex compacts the index space: surviving vertices with a
// higher index shift down by one, identically in both representations.
//
// Edge presence is tracked explicitly, so a legitimate zero-weight edge is
// distinguishable from "no edge": Weight returns 0 for an absent edge, and
// IsAdjacent answers presence.
//
// ShortestPaths runs Dijkstra's algorithm over the shared contract, and
// WriteDot renders any Graph in DOT form for visual inspection.
package graph
