package main

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rkovacs/argmap/internal/export"
	"github.com/rkovacs/argmap/internal/extract"
	"github.com/rkovacs/argmap/pkg/types"
)

// sampleText is the built-in example used when no input is given.
const sampleText = `Bug report: tests fail when n=0.
Code: for i in range(n+1): arr[i] += 1
Error: IndexError: list index out of range
I think it's an off-by-one bug.`

var extractCmd = &cobra.Command{
	Use:   "extract [text...]",
	Short: "Extract a reasoning graph from text and export it",
	Long: `Extract sends the input text to the language model, validates the
returned reasoning graph (distinct node ids, resolvable edge endpoints,
well-formed fields), and writes a Cytoscape-style visualization document.

Input comes from the command arguments, from --file, or, when neither is
given, from a built-in sample bug report.`,
	RunE: runExtract,
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, err := inputText(cmd, args)
	if err != nil {
		return err
	}

	cfg := extractionConfig(cmd)
	if cfg.APIKey == "" {
		return fmt.Errorf("no API key: set --api-key, OPENAI_API_KEY, or .secrets/openai-api-key")
	}

	backend := extract.NewOpenAIBackend(cfg)
	out, err := extract.ExtractGraph(context.Background(), backend, text, cfg)
	if err != nil {
		return err
	}

	exportCfg := exportConfig(cmd)
	doc := export.Cytoscape(*out)
	if err := export.Write(exportCfg, doc); err != nil {
		return err
	}

	fmt.Printf("%s exported successfully.\n", exportCfg.OutputPath)
	return nil
}

// inputText resolves the text to extract from: arguments, --file, or the
// built-in sample.
func inputText(cmd *cobra.Command, args []string) (string, error) {
	if file, _ := cmd.Flags().GetString("file"); file != "" {
		data, err := os.ReadFile(file)
		if err != nil {
			return "", fmt.Errorf("reading input %s: %w", file, err)
		}
		return string(data), nil
	}
	if len(args) > 0 {
		return strings.Join(args, " "), nil
	}
	return sampleText, nil
}

// --- shared helpers ---

func extractionConfig(cmd *cobra.Command) types.ExtractionConfig {
	model, _ := cmd.Flags().GetString("model")
	if model == "" {
		model = viper.GetString("model")
	}

	apiKey, _ := cmd.Flags().GetString("api-key")
	if apiKey == "" {
		apiKey = os.Getenv("OPENAI_API_KEY")
	}
	apiKey = secretDefault("openai-api-key", apiKey)

	strict, _ := cmd.Flags().GetBool("strict")

	return types.ExtractionConfig{
		AIConfig: types.AIConfig{
			Model:      model,
			APIKey:     apiKey,
			MaxRetries: viper.GetInt("max_retries"),
		},
		HTTPConfig: types.HTTPConfig{
			Timeout:   60 * time.Second,
			UserAgent: "argmap/" + version,
		},
		BaseURL:         viper.GetString("base_url"),
		StrictSemantics: strict || viper.GetBool("strict_semantics"),
	}
}

func exportConfig(cmd *cobra.Command) types.ExportConfig {
	out, _ := cmd.Flags().GetString("out")
	if out == "" {
		out = "cyto.json"
	}
	format, _ := cmd.Flags().GetString("format")
	return types.ExportConfig{
		OutputPath: out,
		Format:     types.ExportFormat(format),
	}
}

func init() {
	extractCmd.Flags().String("file", "", "read input text from a file instead of arguments")
	extractCmd.Flags().String("model", "", "model identifier for extraction")
	extractCmd.Flags().String("api-key", "", "API key for the model service")
	extractCmd.Flags().String("out", "cyto.json", "output path for the visualization document")
	extractCmd.Flags().String("format", "json", "output format: json or yaml")
	extractCmd.Flags().Bool("strict", false, "enforce semantic edge/endpoint compatibility rules")

	rootCmd.AddCommand(extractCmd)
}
