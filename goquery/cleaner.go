// Package goquery reduces article HTML to plain text using goquery
// selections over an x/net/html parse tree.
package goquery

import (
	"bytes"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/linkpost"
	"golang.org/x/net/html"
)

// NonContentSelector matches the elements dropped from the tree before text
// extraction.
const NonContentSelector = "script, style, nav, header, footer"

// blankLines matches a run of two or more line breaks, allowing whitespace
// on the lines in between. The class covers Unicode spaces such as U+00A0
// from &nbsp; spacer paragraphs, not only ASCII \s.
var blankLines = regexp.MustCompile(`\n[\s\v\p{Z}\x{85}\x{1c}-\x{1f}]*\n`)

// Ensure Cleaner implements linkpost.Cleaner at compile time.
var _ linkpost.Cleaner = (*Cleaner)(nil)

// Cleaner extracts the visible body text of an HTML document.
type Cleaner struct{}

// NewCleaner creates a new Cleaner.
func NewCleaner() *Cleaner {
	return &Cleaner{}
}

// Clean parses rawHTML, removes non-content elements from the tree and
// returns the normalized text of the remaining body.
func (c *Cleaner) Clean(rawHTML []byte) (string, error) {
	// Scripting is disabled so that <noscript> children are parsed as
	// markup rather than a single raw text node.
	root, err := html.ParseWithOptions(bytes.NewReader(rawHTML), html.ParseOptionEnableScripting(false))
	if err != nil {
		return "", linkpost.Errorf(linkpost.ENOBODY, "failed to parse HTML: %v", err)
	}

	doc := goquery.NewDocumentFromNode(root)
	doc.Find(NonContentSelector).Remove()

	body := doc.Find("body")
	if body.Length() == 0 {
		return "", linkpost.Errorf(linkpost.ENOBODY, "document has no body element")
	}

	text := NormalizeWhitespace(body.Text())
	if text == "" {
		return "", linkpost.Errorf(linkpost.ENOBODY, "document body has no extractable text")
	}
	return text, nil
}

// NormalizeWhitespace trims s and collapses every run of blank lines into
// exactly one blank line. Lines holding only whitespace count as blank.
func NormalizeWhitespace(s string) string {
	return blankLines.ReplaceAllString(strings.TrimSpace(s), "\n\n")
}
