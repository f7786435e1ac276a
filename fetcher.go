package linkpost

import "context"

// DefaultUserAgent is the desktop browser identification sent with every
// article request. Many sites reject requests from obvious bots.
const DefaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36"

// Fetcher retrieves raw HTML from URLs.
type Fetcher interface {
	// Fetch retrieves the document at url and returns its body as UTF-8 HTML.
	// Returns ENETWORK, ETIMEOUT or EHTTPSTATUS on failure.
	// The context controls timeout and cancellation.
	Fetch(ctx context.Context, url string) ([]byte, error)

	// Close releases any resources held by the Fetcher.
	Close() error
}
