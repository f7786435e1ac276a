package main

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/fwojciec/linkpost"
	"github.com/fwojciec/linkpost/pipeline"
)

// PreviewLength is the number of characters of cleaned text echoed after
// extraction.
const PreviewLength = 300

var (
	rule   = strings.Repeat("-", 30)
	banner = strings.Repeat("=", 50)
)

// Preview returns the first PreviewLength characters of text on one line.
func Preview(text string) string {
	r := []rune(text)
	if len(r) > PreviewLength {
		r = r[:PreviewLength]
	}
	return strings.ReplaceAll(strings.TrimSpace(string(r)), "\n", " ")
}

// Console prints pipeline progress and results for a human reader.
type Console struct {
	w io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Progress is a pipeline.ProgressFunc.
func (c *Console) Progress(e pipeline.ProgressEvent) {
	switch e.State {
	case pipeline.StateStart:
		fmt.Fprintf(c.w, "Fetching content from: %s\n", e.URL)
	case pipeline.StateExtracted:
		fmt.Fprintf(c.w, "Successfully scraped content (First %d characters):\n'%s...'\n", PreviewLength, Preview(e.Document.CleanedText))
		fmt.Fprintln(c.w, rule)
		fmt.Fprintln(c.w, "Sending content to Gemini for LinkedIn post generation...")
	case pipeline.StateComposed:
		if e.Error != nil {
			fmt.Fprintf(c.w, "Generation failed: %s\n", linkpost.ErrorMessage(e.Error))
		}
	case pipeline.StateFailed:
		fmt.Fprintf(c.w, "Scraping failed or no content found: %s\n", linkpost.ErrorMessage(e.Error))
	}
}

// Result prints the generated post and where it was saved. outputDir is
// shown as an absolute path when one can be resolved.
func (c *Console) Result(out *pipeline.Outcome, outputDir string, writeErr error) {
	if out == nil || out.Result == nil {
		return
	}
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, banner)
	fmt.Fprintln(c.w, "🚀 GENERATED LINKEDIN POST 🚀")
	fmt.Fprintln(c.w, banner)
	fmt.Fprintln(c.w, strings.TrimSpace(out.Result.Text))
	fmt.Fprintln(c.w)
	fmt.Fprintln(c.w, banner)
	if writeErr != nil {
		fmt.Fprintf(c.w, "FATAL ERROR: Could not save file to disk. %s\n", linkpost.ErrorMessage(writeErr))
		return
	}
	if abs, err := filepath.Abs(outputDir); err == nil {
		outputDir = abs
	}
	fmt.Fprintf(c.w, "✅ Full output saved to: %s\n", out.Path)
	fmt.Fprintf(c.w, "Folder created/used: %s\n", outputDir)
	fmt.Fprintln(c.w, banner)
}
