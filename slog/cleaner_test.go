package slog_test

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"testing"

	"github.com/fwojciec/linkpost"
	"github.com/fwojciec/linkpost/mock"
	lpslog "github.com/fwojciec/linkpost/slog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoggingCleaner_Clean(t *testing.T) {
	t.Parallel()

	t.Run("logs input bytes and output chars", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Cleaner{
			CleanFn: func(rawHTML []byte) (string, error) {
				return "Hello", nil
			},
		}

		text, err := lpslog.NewLoggingCleaner(inner, logger).Clean([]byte("<p>Hello</p>"))

		require.NoError(t, err)
		assert.Equal(t, "Hello", text)
		output := buf.String()
		assert.Contains(t, output, "msg=clean")
		assert.Contains(t, output, "bytes=12")
		assert.Contains(t, output, "chars=5")
	})

	t.Run("passes error through", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Cleaner{
			CleanFn: func(rawHTML []byte) (string, error) {
				return "", linkpost.Errorf(linkpost.ENOBODY, "document has no text")
			},
		}

		_, err := lpslog.NewLoggingCleaner(inner, logger).Clean(nil)

		assert.Equal(t, linkpost.ENOBODY, linkpost.ErrorCode(err))
		assert.Contains(t, buf.String(), "err=")
		assert.Contains(t, buf.String(), "document has no text")
	})
}

func TestLoggingExtractor_Extract(t *testing.T) {
	t.Parallel()

	t.Run("logs hash and size of extracted document", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(_ context.Context, url string) (*linkpost.SourceDocument, error) {
				return &linkpost.SourceDocument{URL: url, CleanedText: "abc", ContentHash: "00000000deadbeef"}, nil
			},
		}

		doc, err := lpslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "https://example.com/a")

		require.NoError(t, err)
		assert.Equal(t, "abc", doc.CleanedText)
		output := buf.String()
		assert.Contains(t, output, "msg=extract")
		assert.Contains(t, output, "hash=00000000deadbeef")
		assert.Contains(t, output, "chars=3")
	})

	t.Run("tolerates nil document on failure", func(t *testing.T) {
		t.Parallel()

		var buf bytes.Buffer
		logger := slog.New(slog.NewTextHandler(&buf, nil))
		inner := &mock.Extractor{
			ExtractFn: func(context.Context, string) (*linkpost.SourceDocument, error) {
				return nil, errors.New("boom")
			},
		}

		doc, err := lpslog.NewLoggingExtractor(inner, logger).Extract(context.Background(), "https://example.com/a")

		require.Error(t, err)
		assert.Nil(t, doc)
		assert.Contains(t, buf.String(), "err=boom")
	})
}
