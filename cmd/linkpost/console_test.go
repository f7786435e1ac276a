package main_test

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/fwojciec/linkpost"
	main "github.com/fwojciec/linkpost/cmd/linkpost"
	"github.com/fwojciec/linkpost/pipeline"
	"github.com/stretchr/testify/assert"
)

func TestPreview(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		in   string
		want string
	}{
		{"short text unchanged", "Hello", "Hello"},
		{"newlines become spaces", "a\n\nb", "a  b"},
		{"trimmed", "  x  ", "x"},
		{"truncated to limit", strings.Repeat("é", 400), strings.Repeat("é", 300)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, main.Preview(tt.in))
		})
	}
}

func TestConsole_Result(t *testing.T) {
	t.Parallel()

	t.Run("reports write failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		out := &pipeline.Outcome{
			State:  pipeline.StateDone,
			Result: &linkpost.GenerationResult{Text: "  post  ", Succeeded: true},
		}

		main.NewConsole(&buf).Result(out, "out", linkpost.Errorf(linkpost.EIO, "disk full"))

		assert.Contains(t, buf.String(), "\npost\n")
		assert.Contains(t, buf.String(), "FATAL ERROR: Could not save file to disk. disk full")
		assert.NotContains(t, buf.String(), "Full output saved to")
	})

	t.Run("frames post with banner markers", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		out := &pipeline.Outcome{
			State:  pipeline.StateDone,
			Result: &linkpost.GenerationResult{Text: "post", Succeeded: true},
			Path:   "out/20250108_143000_post.txt",
		}

		main.NewConsole(&buf).Result(out, "out", nil)

		assert.Contains(t, buf.String(), "🚀 GENERATED LINKEDIN POST 🚀\n")
		assert.Contains(t, buf.String(), "✅ Full output saved to: out/20250108_143000_post.txt\n")
		assert.Contains(t, buf.String(), "Folder created/used: ")
	})

	t.Run("ignores outcome without result", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer

		main.NewConsole(&buf).Result(&pipeline.Outcome{}, "out", errors.New("x"))

		assert.Empty(t, buf.String())
	})
}
