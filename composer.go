package linkpost

import "context"

// FallbackText is the post text used when the generation backend answers
// with a response that holds no generated text.
const FallbackText = "Generation Failed."

// GenerationRequest is a single prompt submitted to the generation backend.
type GenerationRequest struct {
	PromptText string
	TargetURL  string
}

// GenerationResult is the outcome of one generation request.
type GenerationResult struct {
	Text        string
	Succeeded   bool
	ErrorDetail string
}

// Composer turns cleaned article text into post text.
type Composer interface {
	// Compose builds a GenerationRequest from cleanedText and sourceURL and
	// submits it to the generation backend.
	// The returned result is never nil: on failure it carries fallback text
	// and the error is EINVALID for empty input, ETRANSPORT or ESHAPE.
	Compose(ctx context.Context, cleanedText, sourceURL string) (*GenerationResult, error)
}
