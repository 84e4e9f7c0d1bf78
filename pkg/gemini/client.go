// Package gemini is a minimal client for the Generative Language
// generateContent endpoint. Uses raw HTTP calls (no SDK).
package gemini

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/oauth2/google"
)

const (
	DefaultBaseURL = "https://generativelanguage.googleapis.com/v1beta"
	DefaultModel   = "gemini-1.5-flash"

	// Scope is the OAuth scope used with application default credentials.
	Scope = "https://www.googleapis.com/auth/generative-language"
)

// ErrNotConfigured is returned when neither an API key nor credentials are set.
var ErrNotConfigured = errors.New("gemini: not configured")

// Client generates a reply for prompt under a system instruction.
type Client interface {
	GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error)
}

// RealClient calls the REST API. With an APIKey it authenticates via the
// x-goog-api-key header; otherwise httpClient must already carry credentials.
type RealClient struct {
	APIKey     string
	Model      string
	BaseURL    string
	httpClient *http.Client
}

// NewClient returns a RealClient authenticated by API key.
func NewClient(apiKey, model string) *RealClient {
	return newClient(apiKey, model, &http.Client{Timeout: 30 * time.Second})
}

// NewADCClient returns a RealClient authenticated with Google application
// default credentials.
func NewADCClient(ctx context.Context, model string) (*RealClient, error) {
	hc, err := google.DefaultClient(ctx, Scope)
	if err != nil {
		return nil, fmt.Errorf("gemini: default credentials: %w", err)
	}
	hc.Timeout = 30 * time.Second
	return newClient("", model, hc), nil
}

func newClient(apiKey, model string, hc *http.Client) *RealClient {
	if model == "" {
		model = DefaultModel
	}
	return &RealClient{APIKey: apiKey, Model: model, BaseURL: DefaultBaseURL, httpClient: hc}
}

type part struct {
	Text string `json:"text"`
}

type content struct {
	Role  string `json:"role,omitempty"`
	Parts []part `json:"parts"`
}

type generateRequest struct {
	SystemInstruction *content  `json:"systemInstruction,omitempty"`
	Contents          []content `json:"contents"`
}

type generateResponse struct {
	Candidates []struct {
		Content content `json:"content"`
	} `json:"candidates"`
}

type apiError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// GenerateContent returns the concatenated text of the first candidate.
// An empty string with a nil error means the model produced no text.
func (c *RealClient) GenerateContent(ctx context.Context, systemInstruction, prompt string) (string, error) {
	if c == nil || c.httpClient == nil {
		return "", ErrNotConfigured
	}

	req := generateRequest{
		Contents: []content{{Role: "user", Parts: []part{{Text: prompt}}}},
	}
	if systemInstruction != "" {
		req.SystemInstruction = &content{Parts: []part{{Text: systemInstruction}}}
	}
	body, err := json.Marshal(req)
	if err != nil {
		return "", err
	}

	endpoint := fmt.Sprintf("%s/models/%s:generateContent", strings.TrimSuffix(c.BaseURL, "/"), url.PathEscape(c.Model))
	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return "", err
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.APIKey != "" {
		httpReq.Header.Set("x-goog-api-key", c.APIKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return "", fmt.Errorf("gemini: request: %w", err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return "", fmt.Errorf("gemini: read body: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		var apiErr apiError
		if json.Unmarshal(raw, &apiErr) == nil && apiErr.Error.Message != "" {
			return "", fmt.Errorf("gemini: %d %s: %s", resp.StatusCode, apiErr.Error.Status, apiErr.Error.Message)
		}
		return "", fmt.Errorf("gemini: unexpected status %d", resp.StatusCode)
	}

	var out generateResponse
	if err := json.Unmarshal(raw, &out); err != nil {
		return "", fmt.Errorf("gemini: decode response: %w", err)
	}
	if len(out.Candidates) == 0 {
		return "", nil
	}
	var sb strings.Builder
	for _, p := range out.Candidates[0].Content.Parts {
		sb.WriteString(p.Text)
	}
	return strings.TrimSpace(sb.String()), nil
}
