// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package export

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rkovacs/argmap/pkg/types"
)

func fptr(f float64) *float64 { return &f }

func sptr(s string) *string { return &s }

func sampleOutput() types.Output {
	return types.Output{
		Text: "Evidence of an off-by-one bug.",
		Graph: types.ReasoningGraph{
			Nodes: []types.Node{
				{ID: "c1", Kind: types.KindClaim, Text: "off-by-one bug"},
				{ID: "e1", Kind: types.KindEvidence, Text: "IndexError on n=0", Source: sptr("test:stderr"), Confidence: fptr(0.9)},
			},
			Edges: []types.Edge{
				{Source: "e1", Target: "c1", Kind: types.EdgeSupports},
			},
		},
	}
}

func TestCytoscape(t *testing.T) {
	doc := Cytoscape(sampleOutput())

	assert.Equal(t, "Evidence of an off-by-one bug.", doc.Text)
	require.Len(t, doc.Elements.Nodes, 2)
	require.Len(t, doc.Elements.Edges, 1)

	c1 := doc.Elements.Nodes[0].Data
	assert.Equal(t, "c1", c1.ID)
	assert.Equal(t, "off-by-one bug", c1.Label)
	assert.Equal(t, "Claim", c1.Type)
	assert.Nil(t, c1.Source)
	assert.Nil(t, c1.Confidence)

	e1 := doc.Elements.Nodes[1].Data
	assert.Equal(t, "e1", e1.ID)
	assert.Equal(t, "Evidence", e1.Type)
	require.NotNil(t, e1.Source)
	assert.Equal(t, "test:stderr", *e1.Source)
	require.NotNil(t, e1.Confidence)
	assert.Equal(t, 0.9, *e1.Confidence)

	edge := doc.Elements.Edges[0].Data
	assert.Equal(t, "supports:e1->c1", edge.ID)
	assert.Equal(t, "e1", edge.Source)
	assert.Equal(t, "c1", edge.Target)
	assert.Equal(t, "supports", edge.Type)
}

func TestEdgeID(t *testing.T) {
	tests := []struct {
		edge types.Edge
		want string
	}{
		{types.Edge{Source: "e1", Target: "c1", Kind: types.EdgeSupports}, "supports:e1->c1"},
		{types.Edge{Source: "c1", Target: "a1", Kind: types.EdgeDependsOn}, "depends-on:c1->a1"},
		{types.Edge{Source: "c1", Target: "c2", Kind: types.EdgeImplies}, "implies:c1->c2"},
		{types.Edge{Source: "e2", Target: "c1", Kind: types.EdgeContradicts}, "contradicts:e2->c1"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, EdgeID(tt.edge))
	}
}

func TestCytoscapeDeterministic(t *testing.T) {
	out := sampleOutput()

	first, err := json.Marshal(Cytoscape(out))
	require.NoError(t, err)
	second, err := json.Marshal(Cytoscape(out))
	require.NoError(t, err)

	assert.Equal(t, first, second, "repeated exports must be byte-identical")
}

func TestCytoscapeEmitsExplicitNulls(t *testing.T) {
	out := types.Output{
		Text: "t",
		Graph: types.ReasoningGraph{
			Nodes: []types.Node{{ID: "c1", Kind: types.KindClaim, Text: "x"}},
		},
	}

	data, err := json.Marshal(Cytoscape(out))
	require.NoError(t, err)

	var decoded map[string]any
	require.NoError(t, json.Unmarshal(data, &decoded))
	nodes := decoded["elements"].(map[string]any)["nodes"].([]any)
	nodeData := nodes[0].(map[string]any)["data"].(map[string]any)

	// Keys must be present with null values, not omitted.
	v, present := nodeData["source"]
	assert.True(t, present)
	assert.Nil(t, v)
	v, present = nodeData["confidence"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestCytoscapePreservesInputOrder(t *testing.T) {
	out := types.Output{
		Text: "t",
		Graph: types.ReasoningGraph{
			Nodes: []types.Node{
				{ID: "z9", Kind: types.KindClaim, Text: "last alphabetically, first in input"},
				{ID: "a1", Kind: types.KindAssumption, Text: "first alphabetically, second in input"},
			},
			Edges: []types.Edge{
				{Source: "z9", Target: "a1", Kind: types.EdgeDependsOn},
				{Source: "z9", Target: "a1", Kind: types.EdgeImplies},
			},
		},
	}

	doc := Cytoscape(out)
	assert.Equal(t, "z9", doc.Elements.Nodes[0].Data.ID)
	assert.Equal(t, "a1", doc.Elements.Nodes[1].Data.ID)
	assert.Equal(t, "depends-on:z9->a1", doc.Elements.Edges[0].Data.ID)
	assert.Equal(t, "implies:z9->a1", doc.Elements.Edges[1].Data.ID)
}

func TestWrite(t *testing.T) {
	doc := Cytoscape(sampleOutput())
	dir := t.TempDir()

	t.Run("json", func(t *testing.T) {
		path := filepath.Join(dir, "cyto.json")
		require.NoError(t, Write(types.ExportConfig{OutputPath: path, Format: types.FormatJSON}, doc))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		var round Document
		require.NoError(t, json.Unmarshal(data, &round))
		assert.Equal(t, doc, round)
	})

	t.Run("yaml", func(t *testing.T) {
		path := filepath.Join(dir, "cyto.yaml")
		require.NoError(t, Write(types.ExportConfig{OutputPath: path, Format: types.FormatYAML}, doc))

		data, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(data), "supports:e1->c1")
	})

	t.Run("empty format defaults to json", func(t *testing.T) {
		path := filepath.Join(dir, "default.json")
		require.NoError(t, Write(types.ExportConfig{OutputPath: path}, doc))
		assert.FileExists(t, path)
	})

	t.Run("unknown format rejected", func(t *testing.T) {
		err := Write(types.ExportConfig{OutputPath: filepath.Join(dir, "x"), Format: "toml"}, doc)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "unsupported format")
	})
}
