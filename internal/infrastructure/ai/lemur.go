// Package ai provides the text-generation client used for marketing copy.
package ai

import (
	"context"
	"errors"
	"fmt"

	"github.com/AssemblyAI/assemblyai-go-sdk"
)

// ErrNotConfigured is returned when no API key is set. Callers are expected
// to fall back to deterministic copy rather than fail the request.
var ErrNotConfigured = errors.New("text generation API key not configured")

// TextGenerator is the boundary to the external text-generation service.
type TextGenerator interface {
	Generate(ctx context.Context, prompt, inputText string) (string, error)
	Configured() bool
}

// LemurClient calls the AssemblyAI LeMUR task API.
type LemurClient struct {
	apiKey string
}

// NewLemurClient builds the client. An empty apiKey yields an unconfigured
// client whose Generate always returns ErrNotConfigured.
func NewLemurClient(apiKey string) *LemurClient {
	return &LemurClient{apiKey: apiKey}
}

// Configured reports whether an API key is present.
func (c *LemurClient) Configured() bool {
	return c.apiKey != ""
}

// Generate runs one LeMUR task and returns the raw response string.
func (c *LemurClient) Generate(ctx context.Context, prompt, inputText string) (string, error) {
	if !c.Configured() {
		return "", ErrNotConfigured
	}

	client := assemblyai.NewClient(c.apiKey)

	var params assemblyai.LeMURTaskParams
	params.Prompt = assemblyai.String(prompt)
	params.InputText = assemblyai.String(inputText)
	params.FinalModel = assemblyai.LeMURModel("anthropic/claude-3-5-sonnet")
	params.MaxOutputSize = assemblyai.Int64(2000)
	params.Temperature = assemblyai.Float64(0.7)

	response, err := client.LeMUR.Task(ctx, params)
	if err != nil {
		return "", fmt.Errorf("text generation call failed: %w", err)
	}
	if response.Response == nil || *response.Response == "" {
		return "", errors.New("text generation returned an empty response")
	}
	return *response.Response, nil
}
