// Package translate turns note text into another language through an
// external service. The navigator only sees the Translator interface.
package translate

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/vanderheijden86/notebook/pkg/config"
)

// ErrNoCredentials is returned when no API key was configured.
var ErrNoCredentials = errors.New("no translation API key configured")

// Translator translates text into the language identified by target.
type Translator interface {
	Translate(ctx context.Context, text, target string) (string, error)
}

// Func adapts a plain function to Translator.
type Func func(ctx context.Context, text, target string) (string, error)

// Translate calls f.
func (f Func) Translate(ctx context.Context, text, target string) (string, error) {
	return f(ctx, text, target)
}

// Error is a failure reported by a translation provider.
type Error struct {
	Provider string
	Status   int // HTTP status when known
	Message  string
	Err      error
}

func (e *Error) Error() string {
	var b strings.Builder
	b.WriteString(e.Provider)
	b.WriteString(" translate")
	if e.Status != 0 {
		fmt.Fprintf(&b, " (HTTP %d)", e.Status)
	}
	if e.Message != "" {
		b.WriteString(": ")
		b.WriteString(e.Message)
	}
	if e.Err != nil {
		b.WriteString(": ")
		b.WriteString(e.Err.Error())
	}
	return b.String()
}

func (e *Error) Unwrap() error { return e.Err }

// New returns the translator selected by cfg. A missing API key does not
// fail here; the returned translator reports ErrNoCredentials when used, so
// the rest of the program keeps working without one.
func New(cfg config.TranslateConfig) (Translator, error) {
	key := strings.TrimSpace(os.Getenv(cfg.KeyEnv()))
	if key == "" {
		return missingKey(cfg.KeyEnv()), nil
	}

	switch cfg.Provider {
	case "", config.ProviderGoogle:
		return NewGoogle(key, WithEndpoint(cfg.Endpoint)), nil
	case config.ProviderGemini:
		return NewGemini(key, cfg.Model), nil
	default:
		return nil, fmt.Errorf("unknown translation provider %q", cfg.Provider)
	}
}

func missingKey(env string) Translator {
	return Func(func(context.Context, string, string) (string, error) {
		return "", fmt.Errorf("%w (set %s)", ErrNoCredentials, env)
	})
}
