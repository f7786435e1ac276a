// Package pipeline runs the article-to-post pipeline: extract the article
// text, compose a post from it and persist the result.
package pipeline

import (
	"context"
	"time"

	"github.com/fwojciec/linkpost"
	"github.com/google/uuid"
)

// State is a step of a pipeline run.
type State int

const (
	StateStart State = iota
	StateExtracted
	StateComposed
	StateDone
	StateFailed
)

// String returns the state name.
func (s State) String() string {
	switch s {
	case StateStart:
		return "start"
	case StateExtracted:
		return "extracted"
	case StateComposed:
		return "composed"
	case StateDone:
		return "done"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Outcome holds everything a run produced.
type Outcome struct {
	RunID    string
	State    State
	Document *linkpost.SourceDocument
	Result   *linkpost.GenerationResult
	Post     *linkpost.Post

	// Path is the saved file. Empty when nothing was written.
	Path string
}

// ProgressEvent reports a state transition.
type ProgressEvent struct {
	RunID string
	State State
	URL   string

	// Document is set once extraction has succeeded.
	Document *linkpost.SourceDocument

	// Error is set when the transition was caused by, or absorbed, a failure.
	Error error
}

// ProgressFunc is a callback for reporting pipeline progress.
type ProgressFunc func(event ProgressEvent)

// Pipeline sequences extraction, composition and persistence for one URL.
type Pipeline struct {
	Extractor linkpost.Extractor
	Composer  linkpost.Composer
	Writer    linkpost.PostWriter

	// Now returns the generation timestamp. Defaults to time.Now.
	Now func() time.Time

	// NewRunID returns an identifier for a run. Defaults to a random UUID.
	NewRunID func() string
}

// Run converts the article at rawURL into a saved post.
//
// Extraction failures end the run in StateFailed with nothing written.
// Composition failures are absorbed: the fallback text is persisted and the
// run still reaches StateDone. A write failure is returned with the outcome
// in StateDone and no Path.
func (p *Pipeline) Run(ctx context.Context, rawURL string, progress ProgressFunc) (out *Outcome, err error) {
	out = &Outcome{RunID: p.runID(), State: StateStart}
	defer func() {
		if r := recover(); r != nil {
			out.State = StateFailed
			err = linkpost.Errorf(linkpost.EINTERNAL, "pipeline panic: %v", r)
		}
	}()
	report := func(err error) {
		if progress != nil {
			progress(ProgressEvent{RunID: out.RunID, State: out.State, URL: rawURL, Document: out.Document, Error: err})
		}
	}
	report(nil)

	doc, err := p.Extractor.Extract(ctx, rawURL)
	if err != nil {
		out.State = StateFailed
		report(err)
		return out, err
	}
	out.Document = doc
	out.State = StateExtracted
	report(nil)

	// Composition failures are absorbed into the fallback result.
	result, composeErr := p.Composer.Compose(ctx, doc.CleanedText, doc.URL)
	if result == nil {
		if composeErr == nil {
			composeErr = linkpost.Errorf(linkpost.EINTERNAL, "composer returned no result")
		}
		out.State = StateFailed
		report(composeErr)
		return out, composeErr
	}
	out.Result = result
	out.State = StateComposed
	report(composeErr)

	out.Post = &linkpost.Post{
		RunID:       out.RunID,
		SourceURL:   doc.URL,
		Text:        result.Text,
		GeneratedAt: p.now(),
	}
	path, err := p.Writer.WritePost(ctx, out.Post)
	out.State = StateDone
	if err != nil {
		report(err)
		return out, err
	}
	out.Path = path
	report(nil)

	return out, nil
}

func (p *Pipeline) runID() string {
	if p.NewRunID != nil {
		return p.NewRunID()
	}
	return uuid.New().String()
}

func (p *Pipeline) now() time.Time {
	if p.Now != nil {
		return p.Now()
	}
	return time.Now()
}
