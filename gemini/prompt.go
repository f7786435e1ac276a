package gemini

import (
	"fmt"
	"strings"

	"github.com/fwojciec/linkpost"
)

// StyleRules is the style contract every generated post is asked to follow.
// The rules are sent with each request; the output is not checked against them.
var StyleRules = []string{
	"Structure: open with a strong hook, give 3-5 key takeaways, and close with a clear call-to-action.",
	"Format: write in a professional, conversational voice. Separate ideas with line breaks (blank lines) and use a few relevant emojis (such as 💡, ✅, 🚀) so the post is easy to scan.",
	"Length: keep the post concise, ideally no more than 15-20 lines in total.",
	"Hashtags: end the post with 4-6 specific, relevant hashtags.",
	"Call-to-action: the call-to-action must point readers to the article URL given at the end of this message, exactly as written.",
	"Output: return only the text of the post. Do not add an introduction, explanation or any other commentary.",
}

// NewGenerationRequest builds the request for turning cleanedText, taken
// from sourceURL, into a post.
func NewGenerationRequest(cleanedText, sourceURL string) *linkpost.GenerationRequest {
	return &linkpost.GenerationRequest{
		PromptText: BuildPrompt(cleanedText, sourceURL),
		TargetURL:  sourceURL,
	}
}

// BuildPrompt builds the single-turn prompt. It embeds cleanedText and
// sourceURL exactly once each.
func BuildPrompt(cleanedText, sourceURL string) string {
	var sb strings.Builder
	sb.WriteString("You are an expert LinkedIn copywriter specializing in B2B tech and professional content.\n")
	sb.WriteString("Turn the article below into a single, highly engaging LinkedIn post.\n\n")
	sb.WriteString("The post must follow these rules:\n")
	for i, rule := range StyleRules {
		fmt.Fprintf(&sb, "%d. %s\n", i+1, rule)
	}
	sb.WriteString("\n---\n\n")
	sb.WriteString("ARTICLE CONTENT:\n\n")
	sb.WriteString(cleanedText)
	sb.WriteString("\n\n---\n\n")
	fmt.Fprintf(&sb, "LinkedIn post (call-to-action URL: %s):\n", sourceURL)
	return sb.String()
}
