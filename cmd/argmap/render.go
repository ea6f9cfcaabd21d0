// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/rkovacs/argmap/internal/export"
	"github.com/rkovacs/argmap/internal/graph"
	"github.com/rkovacs/argmap/pkg/types"
)

var renderCmd = &cobra.Command{
	Use:   "render <graph.json|->",
	Short: "Validate a candidate graph file and export it",
	Long: `Render reads a candidate output document (a "text" field and a "graph"
field with nodes and edges) from a JSON file or stdin ("-"), runs the
same validation as extract, and writes the visualization document.

Use it to re-render saved model responses or to check hand-written
graphs without calling the model.`,
	Args: cobra.ExactArgs(1),
	RunE: runRender,
}

func runRender(cmd *cobra.Command, args []string) error {
	data, err := readInput(args[0])
	if err != nil {
		return err
	}

	var out types.Output
	if err := json.Unmarshal(data, &out); err != nil {
		return fmt.Errorf("parsing candidate graph: %w", err)
	}

	strict, _ := cmd.Flags().GetBool("strict")
	if err := graph.ValidateOutput(&out, graph.Options{Semantic: strict}); err != nil {
		return err
	}

	exportCfg := exportConfig(cmd)
	if err := export.Write(exportCfg, export.Cytoscape(out)); err != nil {
		return err
	}

	fmt.Printf("%s exported successfully.\n", exportCfg.OutputPath)
	return nil
}

func readInput(path string) ([]byte, error) {
	if path == "-" {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			return nil, fmt.Errorf("reading stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	return data, nil
}

func init() {
	renderCmd.Flags().String("out", "cyto.json", "output path for the visualization document")
	renderCmd.Flags().String("format", "json", "output format: json or yaml")
	renderCmd.Flags().Bool("strict", false, "enforce semantic edge/endpoint compatibility rules")

	rootCmd.AddCommand(renderCmd)
}
