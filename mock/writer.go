package mock

import (
	"context"

	"github.com/fwojciec/linkpost"
)

var _ linkpost.PostWriter = (*PostWriter)(nil)

// PostWriter is a mock implementation of linkpost.PostWriter.
type PostWriter struct {
	WritePostFn func(ctx context.Context, post *linkpost.Post) (string, error)
}

func (w *PostWriter) WritePost(ctx context.Context, post *linkpost.Post) (string, error) {
	return w.WritePostFn(ctx, post)
}
