// Package fs provides file-based storage for generated posts.
package fs

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/fwojciec/linkpost"
)

// DefaultSegment names files for URLs without a usable path segment.
const DefaultSegment = "summary"

// Timestamp layouts used in file names and file content.
const (
	FilenameTimeLayout = "20060102_150405"
	ContentTimeLayout  = "2006-01-02 15:04:05"
)

// unsafeChars matches everything not allowed in a file name segment.
var unsafeChars = regexp.MustCompile(`[^a-zA-Z0-9_\-]`)

// URLSegment returns the last element of the URL path with every character
// outside [a-zA-Z0-9_-] removed from its escaped form. Query and fragment
// are ignored.
// Example: https://site.com/a/b/c?x=1 → c
func URLSegment(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return DefaultSegment
	}

	// Percent-escapes are kept so that their hex digits survive sanitising.
	path := strings.Trim(u.EscapedPath(), "/")
	if i := strings.LastIndex(path, "/"); i >= 0 {
		path = path[i+1:]
	}

	segment := unsafeChars.ReplaceAllString(path, "")
	if segment == "" {
		return DefaultSegment
	}
	return segment
}

// Filename returns the file name for a post: <timestamp>_<segment>.txt.
func Filename(post *linkpost.Post) string {
	return post.GeneratedAt.Format(FilenameTimeLayout) + "_" + URLSegment(post.SourceURL) + ".txt"
}

// FormatPost formats a post as a delimited text block.
func FormatPost(post *linkpost.Post) string {
	var b strings.Builder
	b.WriteString("\n--- START GENERATED CONTENT ---\n")
	b.WriteString("Blog URL: ")
	b.WriteString(post.SourceURL)
	b.WriteString("\nGeneration Time: ")
	b.WriteString(post.GeneratedAt.Format(ContentTimeLayout))
	b.WriteString("\n\n")
	b.WriteString(post.Text)
	b.WriteString("\n\n--- END GENERATED CONTENT ---\n")
	return b.String()
}

// Ensure Writer implements linkpost.PostWriter at compile time.
var _ linkpost.PostWriter = (*Writer)(nil)

// Writer writes posts as text files to a directory.
type Writer struct {
	baseDir string
}

// NewWriter creates a new Writer that writes to the given base directory.
// The directory is created on first write if it does not exist.
func NewWriter(baseDir string) *Writer {
	return &Writer{baseDir: baseDir}
}

// WritePost writes a post to disk and returns the file path.
func (w *Writer) WritePost(ctx context.Context, post *linkpost.Post) (string, error) {
	if err := post.Validate(); err != nil {
		return "", err
	}

	if err := os.MkdirAll(w.baseDir, 0755); err != nil {
		return "", linkpost.Errorf(linkpost.EIO, "could not create output folder %q: %v", w.baseDir, err)
	}

	path := filepath.Join(w.baseDir, Filename(post))
	if err := os.WriteFile(path, []byte(FormatPost(post)), 0644); err != nil {
		return "", linkpost.Errorf(linkpost.EIO, "could not save file to disk: %v", err)
	}

	return path, nil
}
