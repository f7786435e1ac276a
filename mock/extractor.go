package mock

import (
	"context"

	"github.com/fwojciec/linkpost"
)

var _ linkpost.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of linkpost.Extractor.
type Extractor struct {
	ExtractFn func(ctx context.Context, url string) (*linkpost.SourceDocument, error)
}

func (e *Extractor) Extract(ctx context.Context, url string) (*linkpost.SourceDocument, error) {
	return e.ExtractFn(ctx, url)
}
