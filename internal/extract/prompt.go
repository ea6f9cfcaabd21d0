// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package extract

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rkovacs/argmap/internal/httputil"
	"github.com/rkovacs/argmap/pkg/types"
)

// systemPrompt instructs the model to return a reasoning graph in the
// Output shape. JSON mode guarantees syntactically valid JSON only; the
// schema itself is enforced by validation after decoding.
const systemPrompt = `You are an information extraction engine.
Return a JSON object with a concise explanation in "text" and a reasoning graph in "graph".
The graph has "nodes" and "edges" arrays.
Each node has: "id", "type", "text", and optionally "source" and "confidence" (0.0-1.0).
Each edge has: "source", "target", "type".
Node types: Claim, Evidence, Assumption.
Edge types: supports, contradicts, depends-on, implies.
Use short ids: c1,c2 for claims; e1,e2 for evidence; a1,a2 for assumptions.
Only create edges that are justified by the input.
Do not include any text outside the JSON object.`

// defaultBaseURL is the OpenAI API endpoint. Tests point BaseURL at an
// httptest server instead.
const defaultBaseURL = "https://api.openai.com"

const defaultModel = "gpt-4.1-mini"

// OpenAIBackend calls the OpenAI chat completions API in JSON mode to
// extract a reasoning graph from text.
type OpenAIBackend struct {
	APIKey    string
	Model     string
	BaseURL   string
	UserAgent string
	Client    *http.Client
}

// NewOpenAIBackend builds a backend from the extraction configuration.
func NewOpenAIBackend(cfg types.ExtractionConfig) *OpenAIBackend {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &OpenAIBackend{
		APIKey:    cfg.APIKey,
		Model:     cfg.Model,
		BaseURL:   cfg.BaseURL,
		UserAgent: cfg.UserAgent,
		Client:    &http.Client{Timeout: timeout},
	}
}

// chatRequest is the request body for the chat completions API.
type chatRequest struct {
	Model          string         `json:"model"`
	Messages       []chatMessage  `json:"messages"`
	ResponseFormat responseFormat `json:"response_format"`
}

// chatMessage is a single message in the conversation.
type chatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// responseFormat set to json_object enables JSON mode.
type responseFormat struct {
	Type string `json:"type"`
}

// chatResponse is the response body from the chat completions API.
type chatResponse struct {
	Choices []struct {
		Message struct {
			Content string `json:"content"`
		} `json:"message"`
	} `json:"choices"`
}

// Extract sends the extraction prompt for one input text and decodes the
// model's reply into the Output shape. The decoded value is returned
// unvalidated; callers run the graph validation.
func (b *OpenAIBackend) Extract(ctx context.Context, text string) (types.Output, error) {
	model := b.Model
	if model == "" {
		model = defaultModel
	}

	reqBody := chatRequest{
		Model: model,
		Messages: []chatMessage{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: text},
		},
		ResponseFormat: responseFormat{Type: "json_object"},
	}

	bodyBytes, err := json.Marshal(reqBody)
	if err != nil {
		return types.Output{}, fmt.Errorf("marshaling request: %w", err)
	}

	base := strings.TrimSuffix(b.BaseURL, "/")
	if base == "" {
		base = defaultBaseURL
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, base+"/v1/chat/completions", bytes.NewReader(bodyBytes))
	if err != nil {
		return types.Output{}, fmt.Errorf("creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+b.APIKey)
	if b.UserAgent != "" {
		req.Header.Set("User-Agent", b.UserAgent)
	}

	client := b.Client
	if client == nil {
		client = http.DefaultClient
	}

	resp, err := httputil.DoWithRetry(ctx, client, req, 0)
	if err != nil {
		return types.Output{}, fmt.Errorf("calling OpenAI API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return types.Output{}, fmt.Errorf("OpenAI API returned %d: %s", resp.StatusCode, string(body))
	}

	var cResp chatResponse
	if err := json.NewDecoder(resp.Body).Decode(&cResp); err != nil {
		return types.Output{}, fmt.Errorf("decoding OpenAI response: %w", err)
	}

	if len(cResp.Choices) == 0 {
		return types.Output{}, fmt.Errorf("OpenAI API returned no choices")
	}

	var out types.Output
	if err := json.Unmarshal([]byte(cResp.Choices[0].Message.Content), &out); err != nil {
		return types.Output{}, fmt.Errorf("parsing model response JSON: %w", err)
	}
	return out, nil
}
