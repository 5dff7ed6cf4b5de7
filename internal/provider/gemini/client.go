// Package gemini provides a text generation client for the Gemini
// generateContent API.
package gemini

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"resty.dev/v3"

	"github.com/lingofeed/lingofeed/internal/provider"
)

const (
	defaultBaseURL = "https://generativelanguage.googleapis.com"
	requestTimeout = 30 * time.Second
)

// Client calls the Gemini generateContent endpoint.
type Client struct {
	httpClient *resty.Client
	apiKey     string
	model      string
}

// NewClient creates a new Client. An empty apiKey is allowed here; calls
// fail with provider.ErrMissingCredentials without touching the network.
func NewClient(apiKey, model string) *Client {
	client := resty.New()
	client.SetBaseURL(defaultBaseURL)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(requestTimeout)

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
		model:      model,
	}
}

// SetBaseURL overrides the API endpoint, for tests.
func (client *Client) SetBaseURL(baseURL string) {
	client.httpClient.SetBaseURL(baseURL)
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type generateContentRequest struct {
	Contents         []content         `json:"contents"`
	GenerationConfig *generationConfig `json:"generationConfig,omitempty"`
}

type content struct {
	Parts []part `json:"parts"`
}

type part struct {
	Text string `json:"text"`
}

type generationConfig struct {
	ResponseMIMEType string `json:"responseMimeType,omitempty"`
}

type generateContentResponse struct {
	Candidates []candidate `json:"candidates"`
	Error      *apiError   `json:"error"`
}

type candidate struct {
	Content      content `json:"content"`
	FinishReason string  `json:"finishReason"`
}

type apiError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// Generate implements the provider.Generator interface for free-text output.
func (client *Client) Generate(ctx context.Context, instruction string) (string, error) {
	return client.generate(ctx, instruction, nil)
}

// GenerateJSON asks the provider to return a JSON body. The result is still
// raw text; callers normalize and parse it defensively.
func (client *Client) GenerateJSON(ctx context.Context, instruction string) (string, error) {
	return client.generate(ctx, instruction, &generationConfig{
		ResponseMIMEType: "application/json",
	})
}

func (client *Client) generate(ctx context.Context, instruction string, config *generationConfig) (string, error) {
	if client.apiKey == "" {
		return "", provider.ErrMissingCredentials
	}

	requestBody := generateContentRequest{
		Contents: []content{
			{Parts: []part{{Text: instruction}}},
		},
		GenerationConfig: config,
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetQueryParam("key", client.apiKey).
		SetBody(requestBody).
		SetResult(&generateContentResponse{}).
		SetError(&generateContentResponse{}).
		Post(fmt.Sprintf("/v1beta/models/%s:generateContent", client.model))
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Post > %v", provider.ErrNetworkFailure, err)
	}
	if response.IsError() {
		message := ""
		if errorBody, ok := response.Error().(*generateContentResponse); ok && errorBody.Error != nil {
			message = errorBody.Error.Message
		}
		return "", &provider.UpstreamError{
			StatusCode: response.StatusCode(),
			Message:    message,
		}
	}

	responseBody, ok := response.Result().(*generateContentResponse)
	if !ok || responseBody == nil || len(responseBody.Candidates) == 0 {
		return "", fmt.Errorf("%w: empty candidates: %s", provider.ErrMalformedResponse, response.String())
	}

	candidateContent := responseBody.Candidates[0]
	if len(candidateContent.Content.Parts) == 0 || candidateContent.Content.Parts[0].Text == "" {
		slog.Default().Error("Gemini returned no text",
			"finishReason", candidateContent.FinishReason,
			"model", client.model)
		if candidateContent.FinishReason != "" {
			return "", fmt.Errorf("%w: generation stopped: %s", provider.ErrMalformedResponse, candidateContent.FinishReason)
		}
		return "", fmt.Errorf("%w: no text in first candidate", provider.ErrMalformedResponse)
	}

	return candidateContent.Content.Parts[0].Text, nil
}
