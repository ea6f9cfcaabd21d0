// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package extract turns free-form text into a candidate reasoning graph
// by calling a language model, then validates the result. The model is
// an untrusted producer: whatever it returns must pass the full graph
// validation before anything downstream sees it, and a value that fails
// is rejected outright rather than coerced or repaired.
package extract

import (
	"context"
	"fmt"
	"math"
	"strings"
	"time"

	"github.com/rkovacs/argmap/internal/graph"
	"github.com/rkovacs/argmap/pkg/types"
)

// AIBackend abstracts the language model API so tests can supply a mock.
// Extract returns the decoded but still unvalidated candidate output.
type AIBackend interface {
	Extract(ctx context.Context, text string) (types.Output, error)
}

// backoffBase controls the base duration for exponential backoff. Tests
// override this to avoid real sleeps.
var backoffBase = time.Second

// ExtractGraph asks the backend for a reasoning graph over text and
// validates the response. Transport failures are retried with
// exponential backoff; validation failures are not, since a graph that
// fails integrity checks is a hard failure, not a transient one.
func ExtractGraph(ctx context.Context, backend AIBackend, text string, cfg types.ExtractionConfig) (*types.Output, error) {
	if strings.TrimSpace(text) == "" {
		return nil, fmt.Errorf("input text is empty")
	}

	maxRetries := cfg.MaxRetries
	if maxRetries <= 0 {
		maxRetries = 3
	}

	out, err := callWithRetry(ctx, backend, text, maxRetries)
	if err != nil {
		return nil, fmt.Errorf("extracting graph: %w", err)
	}

	if err := graph.ValidateOutput(&out, graph.Options{Semantic: cfg.StrictSemantics}); err != nil {
		return nil, err
	}

	return &out, nil
}

// callWithRetry calls the backend with exponential backoff.
func callWithRetry(ctx context.Context, backend AIBackend, text string, maxRetries int) (types.Output, error) {
	var lastErr error
	for attempt := 0; attempt <= maxRetries; attempt++ {
		if attempt > 0 {
			backoff := time.Duration(math.Pow(2, float64(attempt-1))) * backoffBase
			select {
			case <-ctx.Done():
				return types.Output{}, ctx.Err()
			case <-time.After(backoff):
			}
		}

		out, err := backend.Extract(ctx, text)
		if err == nil {
			return out, nil
		}
		lastErr = err
	}
	return types.Output{}, fmt.Errorf("after %d retries: %w", maxRetries, lastErr)
}
