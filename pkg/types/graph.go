// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package types defines the canonical data model for reasoning graphs:
// typed nodes (claims, evidence, assumptions), directed edges between
// them, and the Output wrapper returned by the extraction service.
package types

// NodeKind categorizes the epistemic role of a node's content.
// The vocabulary is closed; validation rejects any other value.
type NodeKind string

const (
	KindClaim      NodeKind = "Claim"
	KindEvidence   NodeKind = "Evidence"
	KindAssumption NodeKind = "Assumption"
)

// EdgeKind categorizes the directed logical relation between two nodes.
// The vocabulary is closed; validation rejects any other value.
type EdgeKind string

const (
	EdgeSupports    EdgeKind = "supports"
	EdgeContradicts EdgeKind = "contradicts"
	EdgeDependsOn   EdgeKind = "depends-on"
	EdgeImplies     EdgeKind = "implies"
)

// Node is a single identified unit of reasoning content.
type Node struct {
	// ID is a caller-assigned identifier, unique within a graph.
	// Conventionally a short mnemonic token (c1, e2, a1), but any string
	// that is non-empty after trimming is accepted. Stored trimmed.
	ID string `json:"id" yaml:"id" validate:"notblank"`

	// Kind is the node's epistemic role: Claim, Evidence, or Assumption.
	Kind NodeKind `json:"type" yaml:"type" validate:"oneof=Claim Evidence Assumption"`

	// Text is the human-readable content.
	Text string `json:"text" yaml:"text" validate:"required"`

	// Source is optional free-form provenance, e.g. "code:L12-L18",
	// "test:stderr", "log", "spec". Nil means unspecified.
	Source *string `json:"source" yaml:"source"`

	// Confidence is an optional value in [0,1]. Nil means unspecified,
	// which is distinct from zero.
	Confidence *float64 `json:"confidence" yaml:"confidence" validate:"omitempty,gte=0,lte=1"`
}

// Edge is a directed, typed relation between two node ids (source → target).
// Referential validity against the node set is checked at the graph level;
// an edge cannot know the node set in isolation.
type Edge struct {
	Source string   `json:"source" yaml:"source" validate:"required"`
	Target string   `json:"target" yaml:"target" validate:"required"`
	Kind   EdgeKind `json:"type" yaml:"type" validate:"oneof=supports contradicts depends-on implies"`
}

// ReasoningGraph aggregates nodes and edges. Both slices preserve
// insertion order; exports emit elements in the same order.
type ReasoningGraph struct {
	Nodes []Node `json:"nodes" yaml:"nodes" validate:"dive"`
	Edges []Edge `json:"edges" yaml:"edges" validate:"dive"`
}

// Output pairs a short free-text explanation with its reasoning graph.
// It is the exact shape the extraction service is asked to produce, and
// the unit that is accepted or rejected whole.
type Output struct {
	Text  string         `json:"text" yaml:"text" validate:"required"`
	Graph ReasoningGraph `json:"graph" yaml:"graph"`
}
