// Package deepl provides a translation client for the DeepL v2 API.
package deepl

import (
	"context"
	"fmt"
	"time"

	"resty.dev/v3"

	"github.com/lingofeed/lingofeed/internal/provider"
)

const requestTimeout = 30 * time.Second

// Client calls the DeepL translate endpoint.
type Client struct {
	httpClient *resty.Client
	apiKey     string
}

// NewClient creates a new Client. An empty apiKey is allowed here; calls
// fail with provider.ErrMissingCredentials without touching the network.
func NewClient(apiKey, baseURL string) *Client {
	client := resty.New()
	client.SetBaseURL(baseURL)
	client.SetHeader("Authorization", "DeepL-Auth-Key "+apiKey)
	client.SetHeader("Content-Type", "application/json")
	client.SetTimeout(requestTimeout)

	return &Client{
		httpClient: client,
		apiKey:     apiKey,
	}
}

func (client *Client) Close() error {
	return client.httpClient.Close()
}

type translateRequest struct {
	Text       []string `json:"text"`
	SourceLang string   `json:"source_lang"`
	TargetLang string   `json:"target_lang"`
	Context    string   `json:"context,omitempty"`
}

type translateResponse struct {
	Translations []translation `json:"translations"`
	Message      string        `json:"message"`
}

type translation struct {
	DetectedSourceLanguage string `json:"detected_source_language"`
	Text                   string `json:"text"`
}

// Translate implements the provider.Translator interface.
func (client *Client) Translate(ctx context.Context, req provider.TranslateRequest) (string, error) {
	if client.apiKey == "" {
		return "", provider.ErrMissingCredentials
	}

	requestBody := translateRequest{
		Text:       []string{req.Text},
		SourceLang: req.SourceLangCode,
		TargetLang: req.TargetLangCode,
		Context:    req.Context,
	}

	response, err := client.httpClient.R().
		SetContext(ctx).
		SetBody(requestBody).
		SetResult(&translateResponse{}).
		SetError(&translateResponse{}).
		Post("/v2/translate")
	if err != nil {
		return "", fmt.Errorf("%w: httpClient.Post > %v", provider.ErrNetworkFailure, err)
	}
	if response.IsError() {
		message := ""
		if errorBody, ok := response.Error().(*translateResponse); ok {
			message = errorBody.Message
		}
		return "", &provider.UpstreamError{
			StatusCode: response.StatusCode(),
			Message:    message,
		}
	}

	responseBody, ok := response.Result().(*translateResponse)
	if !ok || responseBody == nil || len(responseBody.Translations) == 0 {
		return "", fmt.Errorf("%w: empty translations: %s", provider.ErrMalformedResponse, response.String())
	}
	if responseBody.Translations[0].Text == "" {
		return "", fmt.Errorf("%w: empty translation text", provider.ErrMalformedResponse)
	}

	return responseBody.Translations[0].Text, nil
}
