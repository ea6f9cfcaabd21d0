// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package graph validates reasoning graphs produced by the extraction
// service. Validation is whole-object and two-phase: field-level checks
// on every node, edge, and the output wrapper, followed by graph-level
// integrity checks (distinct node ids, resolvable edge endpoints). A
// value either passes as a unit or is rejected as a unit; there is no
// partially valid graph.
package graph

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/rkovacs/argmap/pkg/types"
)

// Options controls optional validation behavior.
type Options struct {
	// Semantic enables the edge/endpoint kind compatibility rules.
	// Disabled by default to match the rules the extraction service is
	// actually held to; see semantics.go.
	Semantic bool
}

// validate is the shared validator instance for struct tag rules.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their JSON names (id, type, text, confidence).
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// notblank: non-empty after trimming whitespace.
	v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})

	return v
}

// NewNode builds a validated node. The id is stored trimmed. Source and
// confidence are optional; pass nil when unspecified.
func NewNode(id string, kind types.NodeKind, text string, source *string, confidence *float64) (types.Node, error) {
	n := types.Node{ID: id, Kind: kind, Text: text, Source: source, Confidence: confidence}
	if err := validateNode(&n); err != nil {
		return types.Node{}, err
	}
	return n, nil
}

// NewEdge builds a validated edge. Whether the endpoints resolve to real
// nodes is checked at the graph level, not here.
func NewEdge(source, target string, kind types.EdgeKind) (types.Edge, error) {
	e := types.Edge{Source: source, Target: target, Kind: kind}
	if err := validateEdge(&e); err != nil {
		return types.Edge{}, err
	}
	return e, nil
}

// NewGraph builds a validated reasoning graph from ordered node and edge
// sequences. Order is preserved as given; nothing is deduplicated.
func NewGraph(nodes []types.Node, edges []types.Edge, opts Options) (types.ReasoningGraph, error) {
	g := types.ReasoningGraph{Nodes: nodes, Edges: edges}
	if err := ValidateGraph(&g, opts); err != nil {
		return types.ReasoningGraph{}, err
	}
	return g, nil
}

// NewOutput builds a validated output wrapper around a reasoning graph.
func NewOutput(text string, g types.ReasoningGraph, opts Options) (types.Output, error) {
	out := types.Output{Text: text, Graph: g}
	if err := ValidateOutput(&out, opts); err != nil {
		return types.Output{}, err
	}
	return out, nil
}

// ValidateOutput checks the output wrapper and its graph. Data from the
// extraction service must pass here before anything downstream runs.
func ValidateOutput(out *types.Output, opts Options) error {
	if out == nil {
		return fmt.Errorf("%w: nil output", ErrInvalidOutput)
	}
	if out.Text == "" {
		return fmt.Errorf("%w: text must be non-empty", ErrInvalidOutput)
	}
	return ValidateGraph(&out.Graph, opts)
}

// ValidateGraph runs field-level checks on every node and edge, then the
// graph integrity checks. Node ids are trimmed in place before checking,
// so a validated graph always carries trimmed ids. Validation stops at
// the first violation encountered in iteration order.
func ValidateGraph(g *types.ReasoningGraph, opts Options) error {
	for i := range g.Nodes {
		if err := validateNode(&g.Nodes[i]); err != nil {
			return err
		}
	}
	for i := range g.Edges {
		if err := validateEdge(&g.Edges[i]); err != nil {
			return err
		}
	}

	ids := make(map[string]struct{}, len(g.Nodes))
	for _, n := range g.Nodes {
		if _, dup := ids[n.ID]; dup {
			return fmt.Errorf("%w: %q", ErrDuplicateNodeID, n.ID)
		}
		ids[n.ID] = struct{}{}
	}

	for _, e := range g.Edges {
		if _, ok := ids[e.Source]; !ok {
			return fmt.Errorf("%w: edge source %q not found in nodes", ErrDanglingEdge, e.Source)
		}
		if _, ok := ids[e.Target]; !ok {
			return fmt.Errorf("%w: edge target %q not found in nodes", ErrDanglingEdge, e.Target)
		}
	}

	if opts.Semantic {
		return checkSemantics(g)
	}
	return nil
}

func validateNode(n *types.Node) error {
	n.ID = strings.TrimSpace(n.ID)
	if err := validate.Struct(n); err != nil {
		return fmt.Errorf("%w %q: %s", ErrInvalidNode, n.ID, formatValidationError(err))
	}
	return nil
}

func validateEdge(e *types.Edge) error {
	if err := validate.Struct(e); err != nil {
		return fmt.Errorf("%w %s->%s: %s", ErrInvalidEdge, e.Source, e.Target, formatValidationError(err))
	}
	return nil
}

// formatValidationError flattens validator errors into one readable message.
func formatValidationError(err error) string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err.Error()
	}
	msgs := make([]string, len(verrs))
	for i, e := range verrs {
		msgs[i] = formatFieldError(e)
	}
	return strings.Join(msgs, "; ")
}

// formatFieldError names the field and the violated rule for one error.
func formatFieldError(e validator.FieldError) string {
	switch e.Tag() {
	case "notblank", "required":
		return fmt.Sprintf("%s must be non-empty", e.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", e.Field(), e.Param())
	case "gte", "lte":
		return fmt.Sprintf("%s must be within [0,1]", e.Field())
	default:
		return fmt.Sprintf("%s is invalid", e.Field())
	}
}
