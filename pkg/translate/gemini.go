package translate

import (
	"context"
	"fmt"
	"strings"
	"sync"

	"google.golang.org/genai"
)

// DefaultGeminiModel is used when no model is configured.
const DefaultGeminiModel = "gemini-2.0-flash"

// Gemini translates with a Gemini model. The client is created on first use
// so constructing one never touches the network.
type Gemini struct {
	apiKey string
	model  string

	once      sync.Once
	client    *genai.Client
	clientErr error
}

// NewGemini creates a Gemini translator.
func NewGemini(apiKey, model string) *Gemini {
	if model == "" {
		model = DefaultGeminiModel
	}
	return &Gemini{apiKey: apiKey, model: model}
}

func (g *Gemini) init(ctx context.Context) error {
	g.once.Do(func() {
		g.client, g.clientErr = genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  g.apiKey,
			Backend: genai.BackendGeminiAPI,
		})
	})
	return g.clientErr
}

// Translate implements Translator.
func (g *Gemini) Translate(ctx context.Context, text, target string) (string, error) {
	if err := g.init(ctx); err != nil {
		return "", &Error{Provider: "gemini", Err: fmt.Errorf("creating client: %w", err)}
	}

	resp, err := g.client.Models.GenerateContent(ctx, g.model, genai.Text(geminiPrompt(text, target)), nil)
	if err != nil {
		return "", &Error{Provider: "gemini", Err: err}
	}
	out := strings.TrimSpace(resp.Text())
	if out == "" && strings.TrimSpace(text) != "" {
		return "", &Error{Provider: "gemini", Message: "empty response"}
	}
	return out, nil
}

func geminiPrompt(text, target string) string {
	return fmt.Sprintf(
		"Translate the text between the markers into the language with ISO-639 code %q. "+
			"Reply with the translation only, no commentary, and keep line breaks.\n"+
			"<<<\n%s\n>>>", target, text)
}
