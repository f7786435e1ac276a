package linkpost

import (
	"context"
	"time"
)

// Post is a generated post ready to be persisted.
type Post struct {
	RunID       string    `json:"runId"`
	SourceURL   string    `json:"sourceUrl"`
	Text        string    `json:"text"`
	GeneratedAt time.Time `json:"generatedAt"`
}

// Validate returns an error if the post contains invalid fields.
func (p *Post) Validate() error {
	if p.SourceURL == "" {
		return Errorf(EINVALID, "post source URL required")
	}
	if p.GeneratedAt.IsZero() {
		return Errorf(EINVALID, "post generation time required")
	}
	return nil
}

// PostWriter persists generated posts.
type PostWriter interface {
	// WritePost stores the post and returns the path it was written to.
	// Returns EIO if the post cannot be written.
	WritePost(ctx context.Context, post *Post) (path string, err error)
}
