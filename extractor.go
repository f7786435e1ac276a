package linkpost

import "context"

// SourceDocument holds one fetched article and the text derived from it.
// It lives only for the duration of a single pipeline run.
type SourceDocument struct {
	URL     string
	RawHTML []byte

	// CleanedText is the visible body text after structural removal of
	// script, style, nav, header and footer elements and whitespace
	// normalization.
	CleanedText string

	// ContentHash identifies CleanedText in logs.
	ContentHash string
}

// Cleaner reduces raw HTML to readable plain text.
type Cleaner interface {
	// Clean parses rawHTML and returns its cleaned visible text.
	// Returns ENOBODY if no text survives cleanup.
	Clean(rawHTML []byte) (string, error)
}

// Extractor fetches an article and reduces it to cleaned text.
type Extractor interface {
	// Extract fetches url and returns the resulting document.
	// Returns EINVALID for URLs that are not absolute http(s) URLs.
	Extract(ctx context.Context, url string) (*SourceDocument, error)
}
