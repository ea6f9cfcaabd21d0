// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package graph

import "errors"

var (
	// ErrInvalidNode is returned when a node fails field-level validation
	// (blank id, empty text, confidence out of range, unknown kind).
	ErrInvalidNode = errors.New("argmap: invalid node")

	// ErrInvalidEdge is returned when an edge fails field-level validation
	// (missing endpoint id, unknown kind).
	ErrInvalidEdge = errors.New("argmap: invalid edge")

	// ErrInvalidOutput is returned when the output wrapper has no text.
	ErrInvalidOutput = errors.New("argmap: invalid output")

	// ErrDuplicateNodeID is returned when two nodes in a graph share an id.
	ErrDuplicateNodeID = errors.New("argmap: duplicate node id")

	// ErrDanglingEdge is returned when an edge references a node id that
	// is not present in the graph's node set.
	ErrDanglingEdge = errors.New("argmap: dangling edge reference")

	// ErrSemanticViolation is returned in strict mode when an edge kind is
	// incompatible with the kinds of its endpoints.
	ErrSemanticViolation = errors.New("argmap: semantic rule violation")
)
