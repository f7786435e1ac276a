// Package linkpost turns a single web article into a LinkedIn-style post.
// It fetches the article, reduces it to clean visible text, asks a language
// model to rewrite it as a post and saves the result to disk.
//
// This package contains domain types and interfaces following Ben Johnson's
// Standard Package Layout. Implementations live in subdirectories named
// after their primary dependency (e.g., goquery/, gemini/, rod/).
package linkpost
