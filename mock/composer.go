package mock

import (
	"context"

	"github.com/fwojciec/linkpost"
)

var _ linkpost.Composer = (*Composer)(nil)

// Composer is a mock implementation of linkpost.Composer.
type Composer struct {
	ComposeFn func(ctx context.Context, cleanedText, sourceURL string) (*linkpost.GenerationResult, error)
}

func (c *Composer) Compose(ctx context.Context, cleanedText, sourceURL string) (*linkpost.GenerationResult, error) {
	return c.ComposeFn(ctx, cleanedText, sourceURL)
}
