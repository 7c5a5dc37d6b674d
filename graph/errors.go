package graph

import "errors"

// Sentinel errors for graph mutation and query operations.
var (
	// ErrEmptyVertexID indicates an empty string vertex identifier.
	ErrEmptyVertexID = errors.New("graph: vertex identifier must be non-empty")
	// ErrDuplicateVertex indicates the identifier is already present.
	ErrDuplicateVertex = errors.New("graph: vertex already exists")
	// ErrVertexNotFound indicates an identifier with no matching vertex.
	ErrVertexNotFound = errors.New("graph: vertex not found")
	// ErrEdgeNotFound indicates the addressed edge is absent.
	ErrEdgeNotFound = errors.New("graph: edge not found")

	// ErrEmptySource indicates no source vertex was supplied to ShortestPaths.
	ErrEmptySource = errors.New("graph: source vertex ID is empty")
	// ErrNegativeWeight indicates a negative edge weight reached ShortestPaths.
	ErrNegativeWeight = errors.New("graph: negative edge weight encountered")
)
