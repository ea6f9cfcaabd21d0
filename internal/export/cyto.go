// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package export serializes a validated Output into a Cytoscape-style
// visualization document: one element per node and per edge, wrapped in
// the data envelope graph renderers expect.
package export

import (
	"encoding/json"
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"

	"github.com/rkovacs/argmap/pkg/types"
)

// Document is the visualization document written for the renderer.
type Document struct {
	Text     string   `json:"text" yaml:"text"`
	Elements Elements `json:"elements" yaml:"elements"`
}

// Elements holds the node and edge element lists, in input order.
type Elements struct {
	Nodes []NodeElement `json:"nodes" yaml:"nodes"`
	Edges []EdgeElement `json:"edges" yaml:"edges"`
}

// NodeElement wraps one node's renderer attributes.
type NodeElement struct {
	Data NodeData `json:"data" yaml:"data"`
}

// NodeData carries a node's renderer attributes. Source and Confidence
// are emitted as explicit nulls when unspecified, so consumers can tell
// "node with unspecified confidence" from "no node".
type NodeData struct {
	ID         string   `json:"id" yaml:"id"`
	Label      string   `json:"label" yaml:"label"`
	Type       string   `json:"type" yaml:"type"`
	Source     *string  `json:"source" yaml:"source"`
	Confidence *float64 `json:"confidence" yaml:"confidence"`
}

// EdgeElement wraps one edge's renderer attributes.
type EdgeElement struct {
	Data EdgeData `json:"data" yaml:"data"`
}

// EdgeData carries an edge's renderer attributes. ID is synthesized as
// "<kind>:<source>-><target>".
type EdgeData struct {
	ID     string `json:"id" yaml:"id"`
	Source string `json:"source" yaml:"source"`
	Target string `json:"target" yaml:"target"`
	Type   string `json:"type" yaml:"type"`
}

// Cytoscape maps a validated Output to its visualization document.
// Pure and deterministic: element order matches input order, nothing is
// deduplicated or sorted, and no I/O happens here.
func Cytoscape(out types.Output) Document {
	doc := Document{
		Text: out.Text,
		Elements: Elements{
			Nodes: make([]NodeElement, len(out.Graph.Nodes)),
			Edges: make([]EdgeElement, len(out.Graph.Edges)),
		},
	}

	for i, n := range out.Graph.Nodes {
		doc.Elements.Nodes[i] = NodeElement{Data: NodeData{
			ID:         n.ID,
			Label:      n.Text,
			Type:       string(n.Kind),
			Source:     n.Source,
			Confidence: n.Confidence,
		}}
	}

	for i, e := range out.Graph.Edges {
		doc.Elements.Edges[i] = EdgeElement{Data: EdgeData{
			ID:     EdgeID(e),
			Source: e.Source,
			Target: e.Target,
			Type:   string(e.Kind),
		}}
	}

	return doc
}

// EdgeID synthesizes the element id for an edge: "<kind>:<source>-><target>".
func EdgeID(e types.Edge) string {
	return fmt.Sprintf("%s:%s->%s", e.Kind, e.Source, e.Target)
}

// Write serializes the document to path in the configured format.
func Write(cfg types.ExportConfig, doc Document) error {
	switch cfg.Format {
	case types.FormatJSON, "":
		return WriteJSON(cfg.OutputPath, doc)
	case types.FormatYAML:
		return WriteYAML(cfg.OutputPath, doc)
	default:
		return fmt.Errorf("unsupported format %q: use json or yaml", cfg.Format)
	}
}

// WriteJSON writes the document as indented JSON.
func WriteJSON(path string, doc Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling JSON: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}

// WriteYAML writes the document as YAML.
func WriteYAML(path string, doc Document) error {
	data, err := yaml.Marshal(doc)
	if err != nil {
		return fmt.Errorf("marshaling YAML: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
