// Package gemini implements linkpost.Composer on top of the Google Gemini API.
package gemini

import (
	"context"
	"errors"
	"time"

	"github.com/fwojciec/linkpost"
	"google.golang.org/genai"
)

// TransportFallbackText is the post text used when the API cannot be reached
// or answers with an error status.
const TransportFallbackText = "Failed to communicate with the Gemini API."

// DefaultTimeout bounds a single generation call.
const DefaultTimeout = linkpost.DefaultGenerateTimeout

// ContentGenerator generates model content. *genai.Models satisfies it.
type ContentGenerator interface {
	GenerateContent(ctx context.Context, model string, contents []*genai.Content, config *genai.GenerateContentConfig) (*genai.GenerateContentResponse, error)
}

var _ ContentGenerator = (*genai.Models)(nil)

// Ensure Composer implements linkpost.Composer at compile time.
var _ linkpost.Composer = (*Composer)(nil)

// Composer implements linkpost.Composer using Google Gemini.
type Composer struct {
	models  ContentGenerator
	model   string
	timeout time.Duration
}

// Option configures a Composer.
type Option func(*Composer)

// WithTimeout bounds each generation call.
// Defaults to DefaultTimeout (60s) if not specified.
func WithTimeout(d time.Duration) Option {
	return func(c *Composer) {
		c.timeout = d
	}
}

// NewComposer creates a new Composer that sends requests for model.
func NewComposer(models ContentGenerator, model string, opts ...Option) *Composer {
	c := &Composer{
		models:  models,
		model:   model,
		timeout: DefaultTimeout,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// NewClient creates a Gemini API client. An empty baseURL uses the SDK default.
func NewClient(ctx context.Context, apiKey, baseURL string) (*genai.Client, error) {
	return genai.NewClient(ctx, &genai.ClientConfig{
		APIKey:      apiKey,
		Backend:     genai.BackendGeminiAPI,
		HTTPOptions: genai.HTTPOptions{BaseURL: baseURL},
	})
}

// Compose builds the prompt for cleanedText and sourceURL and submits it.
// The result is never nil. Failures carry fallback text and return
// EINVALID for empty text, ETRANSPORT for request failures or ESHAPE for
// unusable responses.
func (c *Composer) Compose(ctx context.Context, cleanedText, sourceURL string) (*linkpost.GenerationResult, error) {
	if cleanedText == "" {
		err := linkpost.Errorf(linkpost.EINVALID, "article text required")
		return failed(linkpost.FallbackText, err), err
	}
	return c.Generate(ctx, NewGenerationRequest(cleanedText, sourceURL))
}

// Generate submits req as a single user turn and unpacks the reply.
func (c *Composer) Generate(ctx context.Context, req *linkpost.GenerationRequest) (*linkpost.GenerationResult, error) {
	if req == nil || req.PromptText == "" {
		err := linkpost.Errorf(linkpost.EINVALID, "prompt required")
		return failed(linkpost.FallbackText, err), err
	}

	ctx, cancel := context.WithTimeout(ctx, c.timeout)
	defer cancel()

	resp, err := c.models.GenerateContent(ctx, c.model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: req.PromptText}},
		}},
		nil,
	)
	if err != nil {
		err = transportError(err)
		return failed(TransportFallbackText, err), err
	}

	text, err := ExtractText(resp)
	if err != nil {
		return failed(linkpost.FallbackText, err), err
	}

	return &linkpost.GenerationResult{Text: text, Succeeded: true}, nil
}

func failed(text string, err error) *linkpost.GenerationResult {
	return &linkpost.GenerationResult{
		Text:        text,
		Succeeded:   false,
		ErrorDetail: linkpost.ErrorMessage(err),
	}
}

// transportError wraps a request failure as ETRANSPORT.
func transportError(err error) error {
	var apiErr genai.APIError
	switch {
	case errors.As(err, &apiErr):
		return linkpost.Errorf(linkpost.ETRANSPORT, "Gemini API returned %d %s: %s", apiErr.Code, apiErr.Status, apiErr.Message)
	case errors.Is(err, context.DeadlineExceeded):
		return linkpost.Errorf(linkpost.ETRANSPORT, "Gemini API request timed out")
	default:
		return linkpost.Errorf(linkpost.ETRANSPORT, "Gemini API request failed: %v", err)
	}
}
