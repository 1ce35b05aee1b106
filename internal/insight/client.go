// Package insight talks to the Gemini generative-language API to turn a
// ledger snapshot into spending advice. The call is fallible and possibly
// slow; callers substitute FallbackMessage on any failure and never let it
// block ledger mutation.
package insight

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/arjunveda/studentspend/internal/config"
	"github.com/arjunveda/studentspend/internal/expense"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	maxBodySize    = 1 << 20 // 1 MB

	temperature = 0.7
	topP        = 0.8
)

const (
	// FallbackMessage replaces the advice on any provider failure.
	FallbackMessage = "AI Insights currently unavailable. Tip: Try to limit 'Entertainment' spending this week!"

	// EmptyLedgerMessage is returned without a network call when there is
	// nothing to analyze.
	EmptyLedgerMessage = "Add some expenses to see AI-powered financial advice!"
)

// ErrMissingAPIKey indicates no credential was configured.
var ErrMissingAPIKey = errors.New("insight: missing API key")

// Client calls the generative-language API. A nil *Client is valid and
// fails every request with ErrMissingAPIKey, so an unconfigured credential
// degrades to the fallback message like any other provider failure.
type Client struct {
	apiKey   string
	model    string
	currency string
	baseURL  string
	http     *http.Client
}

// NewClient builds a client from configuration. Returns nil when no API
// key is configured.
func NewClient(conf config.InsightConfig, currency string) *Client {
	apiKey := strings.TrimSpace(conf.APIKey)
	if apiKey == "" {
		return nil
	}

	timeout := time.Duration(conf.TimeoutSeconds) * time.Second
	if timeout <= 0 {
		timeout = 15 * time.Second
	}

	return &Client{
		apiKey:   apiKey,
		model:    conf.Model,
		currency: currency,
		baseURL:  defaultBaseURL,
		http:     &http.Client{Timeout: timeout},
	}
}

type generateRequest struct {
	Contents         []content        `json:"contents"`
	GenerationConfig generationConfig `json:"generationConfig"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	Temperature float64 `json:"temperature"`
	TopP        float64 `json:"topP"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

// Generate asks the provider for advice on the given snapshot. The empty
// ledger short-circuits locally. Every other failure path returns an error;
// it is the caller's job to fall back.
func (c *Client) Generate(ctx context.Context, records []expense.Record, monthlyLimit int64) (string, error) {
	if len(records) == 0 {
		return EmptyLedgerMessage, nil
	}
	if c == nil {
		return "", ErrMissingAPIKey
	}

	payload := generateRequest{
		Contents: []content{{Parts: []part{{Text: c.prompt(records, monthlyLimit)}}}},
		GenerationConfig: generationConfig{
			Temperature: temperature,
			TopP:        topP,
		},
	}

	body, err := json.Marshal(payload)
	if err != nil {
		return "", fmt.Errorf("insight: encoding request: %w", err)
	}

	url := fmt.Sprintf("%s/models/%s:generateContent", c.baseURL, c.model)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("insight: creating request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("x-goog-api-key", c.apiKey)

	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("insight: request failed: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("insight: unexpected status %d", resp.StatusCode)
	}

	raw, err := io.ReadAll(io.LimitReader(resp.Body, maxBodySize))
	if err != nil {
		return "", fmt.Errorf("insight: reading response: %w", err)
	}

	var parsed generateResponse
	if err = json.Unmarshal(raw, &parsed); err != nil {
		return "", fmt.Errorf("insight: parsing response: %w", err)
	}

	text := extractText(parsed)
	if text == "" {
		return "", errors.New("insight: empty response")
	}
	return text, nil
}

func extractText(resp generateResponse) string {
	if len(resp.Candidates) == 0 {
		return ""
	}

	var b strings.Builder
	for _, p := range resp.Candidates[0].Content.Parts {
		b.WriteString(p.Text)
	}
	return strings.TrimSpace(b.String())
}
