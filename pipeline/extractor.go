package pipeline

import (
	"context"
	"fmt"
	"net/url"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/linkpost"
)

// Ensure Extractor implements linkpost.Extractor at compile time.
var _ linkpost.Extractor = (*Extractor)(nil)

// Extractor fetches an article and cleans it into a SourceDocument.
type Extractor struct {
	Fetcher linkpost.Fetcher
	Cleaner linkpost.Cleaner
}

// Extract fetches rawURL and derives its cleaned text.
func (e *Extractor) Extract(ctx context.Context, rawURL string) (*linkpost.SourceDocument, error) {
	if err := ValidateURL(rawURL); err != nil {
		return nil, err
	}

	raw, err := e.Fetcher.Fetch(ctx, rawURL)
	if err != nil {
		return nil, err
	}

	text, err := e.Cleaner.Clean(raw)
	if err != nil {
		return nil, err
	}

	return &linkpost.SourceDocument{
		URL:         rawURL,
		RawHTML:     raw,
		CleanedText: text,
		ContentHash: ComputeHash(text),
	}, nil
}

// ValidateURL returns EINVALID unless rawURL is an absolute http(s) URL.
func ValidateURL(rawURL string) error {
	u, err := url.Parse(rawURL)
	if err != nil {
		return linkpost.Errorf(linkpost.EINVALID, "invalid URL %q: %v", rawURL, err)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return linkpost.Errorf(linkpost.EINVALID, "URL %q must start with http:// or https://", rawURL)
	}
	if u.Host == "" {
		return linkpost.Errorf(linkpost.EINVALID, "URL %q has no host", rawURL)
	}
	return nil
}

// ComputeHash computes a hash of the content using xxhash.
func ComputeHash(content string) string {
	return fmt.Sprintf("%016x", xxhash.Sum64String(content))
}
