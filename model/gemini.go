// Package model implements the resilient client for the external
// text-generation service. One logical call sweeps the key pool at most
// once: quota failures rotate to the next key, any other failure
// propagates immediately.
package model

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com"
	DefaultModel   = "gemini-1.5-flash"

	// Fixed generation parameters, matching the service defaults the
	// product was tuned on.
	genTemperature     = 0.7
	genTopK            = 40
	genTopP            = 0.95
	genMaxOutputTokens = 2048
)

type generationConfig struct {
	Temperature     float64 `json:"temperature"`
	TopK            int     `json:"topK"`
	TopP            float64 `json:"topP"`
	MaxOutputTokens int     `json:"maxOutputTokens"`
}

type generatePart struct {
	Text string `json:"text"`
}

type generateContent struct {
	Parts []generatePart `json:"parts"`
}

type generateRequest struct {
	Contents         []generateContent `json:"contents"`
	GenerationConfig generationConfig  `json:"generationConfig"`
}

type generateResponse struct {
	Candidates []struct {
		Content generateContent `json:"content"`
	} `json:"candidates"`
	UsageMetadata struct {
		TotalTokenCount int `json:"totalTokenCount"`
	} `json:"usageMetadata"`
}

// GenerateResult is the raw reply plus the provider's token usage count,
// zero when the provider omits it.
type GenerateResult struct {
	Text       string
	TokensUsed int
}

type Client struct {
	pool       *KeyPool
	httpClient *http.Client
	baseURL    string
	model      string
	timeout    time.Duration
	logger     *slog.Logger
}

// NewClient builds a client over the given key pool. timeout bounds each
// individual model request; zero means the 60s default.
func NewClient(pool *KeyPool, baseURL, modelName string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	if modelName == "" {
		modelName = DefaultModel
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &Client{
		pool:       pool,
		httpClient: &http.Client{},
		baseURL:    baseURL,
		model:      modelName,
		timeout:    timeout,
		logger:     slog.Default(),
	}
}

// Call issues one logical generation call. Keys rotate on every attempt;
// the sweep stops at the first success, the first non-quota failure, or
// after every key has been tried once.
func (c *Client) Call(ctx context.Context, prompt string) (*GenerateResult, error) {
	if c.pool.Len() == 0 {
		return nil, ErrKeyPoolExhausted
	}

	for attempt := 0; attempt < c.pool.Len(); attempt++ {
		key, ok := c.pool.Next()
		if !ok {
			return nil, ErrKeyPoolExhausted
		}

		result, err := c.generate(ctx, key, prompt)
		if err == nil {
			return result, nil
		}

		if isQuotaErr(err) {
			c.logger.Warn("rate limit hit, trying next key", "attempt", attempt+1, "keys", c.pool.Len())
			continue
		}
		return nil, err
	}

	return nil, ErrKeyPoolExhausted
}

// CallStructured issues a call whose reply is expected to be JSON,
// possibly wrapped in a fenced code block, and decodes it into out.
func (c *Client) CallStructured(ctx context.Context, prompt string, out any) error {
	result, err := c.Call(ctx, prompt)
	if err != nil {
		return err
	}
	return DecodeStructured(result.Text, out)
}

func (c *Client) generate(ctx context.Context, key, prompt string) (*GenerateResult, error) {
	reqBody, err := json.Marshal(generateRequest{
		Contents: []generateContent{{Parts: []generatePart{{Text: prompt}}}},
		GenerationConfig: generationConfig{
			Temperature:     genTemperature,
			TopK:            genTopK,
			TopP:            genTopP,
			MaxOutputTokens: genMaxOutputTokens,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/v1beta/models/%s:generateContent?key=%s", c.baseURL, c.model, key)

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewBuffer(reqBody))
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return nil, &TransportError{StatusCode: 0, Message: err.Error()}
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: err.Error()}
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &TransportError{StatusCode: resp.StatusCode, Message: string(respBody)}
	}

	var genResp generateResponse
	if err := json.Unmarshal(respBody, &genResp); err != nil {
		return nil, &MalformedOutputError{Raw: string(respBody), Err: err}
	}
	if len(genResp.Candidates) == 0 || len(genResp.Candidates[0].Content.Parts) == 0 {
		return nil, &MalformedOutputError{Raw: string(respBody), Err: fmt.Errorf("no candidates in response")}
	}

	var text string
	for _, part := range genResp.Candidates[0].Content.Parts {
		text += part.Text
	}

	return &GenerateResult{
		Text:       text,
		TokensUsed: genResp.UsageMetadata.TotalTokenCount,
	}, nil
}

// isQuotaErr reports whether err is a transport failure carrying the
// provider's rate-limit signal.
func isQuotaErr(err error) bool {
	var terr *TransportError
	if errors.As(err, &terr) {
		return isQuotaSignal(terr.StatusCode, terr.Message)
	}
	return false
}
