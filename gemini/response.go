package gemini

import (
	"github.com/fwojciec/linkpost"
	"google.golang.org/genai"
)

// ExtractText returns the text at candidates[0].content.parts[0].text.
// Every level of that path is optional in the API; a missing level or an
// empty text yields an ESHAPE error describing where the path broke.
func ExtractText(resp *genai.GenerateContentResponse) (string, error) {
	if resp == nil {
		return "", linkpost.Errorf(linkpost.ESHAPE, "empty response")
	}

	if len(resp.Candidates) == 0 {
		if fb := resp.PromptFeedback; fb != nil && fb.BlockReason != "" {
			return "", linkpost.Errorf(linkpost.ESHAPE, "response has no candidates (prompt blocked: %s)", fb.BlockReason)
		}
		return "", linkpost.Errorf(linkpost.ESHAPE, "response has no candidates")
	}

	candidate := resp.Candidates[0]
	if candidate == nil {
		return "", linkpost.Errorf(linkpost.ESHAPE, "first candidate is empty")
	}

	if candidate.Content == nil {
		if candidate.FinishReason != "" {
			return "", linkpost.Errorf(linkpost.ESHAPE, "first candidate has no content (finish reason: %s)", candidate.FinishReason)
		}
		return "", linkpost.Errorf(linkpost.ESHAPE, "first candidate has no content")
	}

	if len(candidate.Content.Parts) == 0 {
		return "", linkpost.Errorf(linkpost.ESHAPE, "first candidate has no parts")
	}

	part := candidate.Content.Parts[0]
	if part == nil || part.Text == "" {
		return "", linkpost.Errorf(linkpost.ESHAPE, "first part has no text")
	}

	return part.Text, nil
}
