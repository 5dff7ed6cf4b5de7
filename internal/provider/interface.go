// Package provider defines the external text-generation and translation
// boundaries and the failure modes they surface.
package provider

import (
	"context"
	"errors"
	"fmt"
)

//go:generate mockgen -source=interface.go -destination=../mocks/provider/mock_client.go -package=mock_provider

// Generator issues a single natural-language instruction to a text
// generation service and returns its raw output. The output may be free
// text or a JSON-shaped string; callers parse it defensively.
type Generator interface {
	Generate(ctx context.Context, instruction string) (string, error)
	GenerateJSON(ctx context.Context, instruction string) (string, error)
}

// TranslateRequest is a plain text-to-text translation request.
type TranslateRequest struct {
	Text           string
	SourceLangCode string
	TargetLangCode string
	Context        string
}

// Translator translates a short text between two languages.
type Translator interface {
	Translate(ctx context.Context, req TranslateRequest) (string, error)
}

// Failure modes clients surface. The pipeline needs to tell these apart:
// a missing credential is a configuration problem, not a request problem,
// and a malformed body is expected behavior from generation providers.
var (
	ErrMissingCredentials = errors.New("provider credentials are not configured")
	ErrMalformedResponse  = errors.New("malformed provider response")
	ErrNetworkFailure     = errors.New("provider network failure")
)

// UpstreamError is a non-2xx response from the provider, carrying the
// provider's own message when one was available.
type UpstreamError struct {
	StatusCode int
	Message    string
}

func (e *UpstreamError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("provider rejected request with status %d", e.StatusCode)
	}
	return fmt.Sprintf("provider rejected request with status %d: %s", e.StatusCode, e.Message)
}
