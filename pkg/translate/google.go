package translate

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/goccy/go-json"

	"github.com/vanderheijden86/notebook/pkg/debug"
)

// DefaultGoogleEndpoint is the Cloud Translation v2 base URL.
const DefaultGoogleEndpoint = "https://translation.googleapis.com"

// maxErrorBody caps how much of an error response is read.
const maxErrorBody = 64 << 10

// GoogleOption configures a Google translator.
type GoogleOption func(*Google)

// WithEndpoint overrides the API base URL. Empty keeps the default.
func WithEndpoint(endpoint string) GoogleOption {
	return func(g *Google) {
		if endpoint != "" {
			g.endpoint = strings.TrimRight(endpoint, "/")
		}
	}
}

// WithHTTPClient sets the HTTP client used for requests.
func WithHTTPClient(c *http.Client) GoogleOption {
	return func(g *Google) {
		g.client = c
	}
}

// Google calls the Cloud Translation v2 REST API with an API key.
type Google struct {
	apiKey   string
	endpoint string
	client   *http.Client
}

// NewGoogle creates a Google translator.
func NewGoogle(apiKey string, opts ...GoogleOption) *Google {
	g := &Google{
		apiKey:   apiKey,
		endpoint: DefaultGoogleEndpoint,
		client:   http.DefaultClient,
	}
	for _, opt := range opts {
		opt(g)
	}
	return g
}

type googleRequest struct {
	Q      []string `json:"q"`
	Target string   `json:"target"`
	Format string   `json:"format"`
}

type googleResponse struct {
	Data struct {
		Translations []struct {
			TranslatedText         string `json:"translatedText"`
			DetectedSourceLanguage string `json:"detectedSourceLanguage,omitempty"`
		} `json:"translations"`
	} `json:"data"`
}

type googleErrorResponse struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
	} `json:"error"`
}

// Translate implements Translator.
func (g *Google) Translate(ctx context.Context, text, target string) (string, error) {
	body, err := json.Marshal(googleRequest{Q: []string{text}, Target: target, Format: "text"})
	if err != nil {
		return "", &Error{Provider: "google", Err: err}
	}

	u := g.endpoint + "/language/translate/v2?key=" + url.QueryEscape(g.apiKey)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, u, bytes.NewReader(body))
	if err != nil {
		return "", &Error{Provider: "google", Err: err}
	}
	req.Header.Set("Content-Type", "application/json")

	debug.Log("google translate: %d bytes -> %s", len(text), target)
	resp, err := g.client.Do(req)
	if err != nil {
		// The URL carries the key; keep it out of messages.
		if uerr, ok := err.(*url.Error); ok {
			err = uerr.Err
		}
		return "", &Error{Provider: "google", Err: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		data, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
		var apiErr googleErrorResponse
		msg := strings.TrimSpace(string(data))
		if json.Unmarshal(data, &apiErr) == nil && apiErr.Error.Message != "" {
			msg = apiErr.Error.Message
		}
		return "", &Error{Provider: "google", Status: resp.StatusCode, Message: msg}
	}

	var out googleResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", &Error{Provider: "google", Err: fmt.Errorf("decoding response: %w", err)}
	}
	if len(out.Data.Translations) == 0 {
		return "", &Error{Provider: "google", Message: "response contained no translations"}
	}
	return out.Data.Translations[0].TranslatedText, nil
}
