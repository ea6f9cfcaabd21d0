package types

import "time"

// HTTPConfig holds shared HTTP settings for stages that make network requests.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "argmap/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// AIConfig holds shared settings for calls to the extraction model API.
type AIConfig struct {
	// Model is the model identifier (e.g. "gpt-4.1-mini").
	Model string `json:"model" yaml:"model"`

	// APIKey is the authentication key for the model API.
	APIKey string `json:"api_key,omitempty" yaml:"api_key,omitempty"`

	// MaxRetries is the number of retry attempts for failed API calls (default 3).
	MaxRetries int `json:"max_retries" yaml:"max_retries"`
}

// ExtractionConfig holds settings for the extraction stage.
type ExtractionConfig struct {
	AIConfig `yaml:",inline"`

	HTTPConfig `yaml:",inline"`

	// BaseURL overrides the model API endpoint (default https://api.openai.com).
	BaseURL string `json:"base_url,omitempty" yaml:"base_url,omitempty"`

	// StrictSemantics enables the semantic edge/endpoint compatibility
	// rules during validation. Off by default.
	StrictSemantics bool `json:"strict_semantics" yaml:"strict_semantics"`
}

// ExportFormat selects the visualization document serialization.
type ExportFormat string

const (
	FormatJSON ExportFormat = "json"
	FormatYAML ExportFormat = "yaml"
)

// ExportConfig holds settings for writing the visualization document.
type ExportConfig struct {
	// OutputPath is the destination file (default "cyto.json").
	OutputPath string `json:"output_path" yaml:"output_path"`

	// Format selects the serialization: json or yaml.
	Format ExportFormat `json:"format" yaml:"format"`
}
