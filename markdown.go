package blogcache

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

// DefaultSummaryLength is the number of characters taken from the body when a
// post has no summary in its frontmatter.
const DefaultSummaryLength = 200

const summarySuffix = "..."

// RenderFunc converts a markdown body to HTML.
type RenderFunc func(body []byte) (string, error)

// DefaultRenderer returns a RenderFunc that uses goldmark with the following extensions:
// - GFM (tables, strikethrough, autolinks, task lists)
// - Footnote
// It also enables the following parser options:
// - AutoHeadingID
// - Attribute, for heading ids such as `## Intro {#intro}`
//
// Raw HTML in the body is passed through; post sources are trusted.
func DefaultRenderer() RenderFunc {
	md := goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
			extension.Footnote,
		),
		goldmark.WithParserOptions(
			parser.WithAutoHeadingID(),
			parser.WithAttribute(),
		),
		goldmark.WithRendererOptions(
			html.WithUnsafe(),
		),
	)

	return func(body []byte) (string, error) {
		var buf bytes.Buffer
		if err := md.Convert(body, &buf); err != nil {
			return "", fmt.Errorf("failed to convert markdown: %w", err)
		}
		return buf.String(), nil
	}
}

// Summarize returns the first limit characters of body, trimmed. When the body
// holds limit characters or more, "..." is appended.
func Summarize(body string, limit int) string {
	if limit <= 0 {
		limit = DefaultSummaryLength
	}

	runes := []rune(body)
	if len(runes) < limit {
		return strings.TrimSpace(body)
	}

	return strings.TrimSpace(string(runes[:limit])) + summarySuffix
}

// GenerateETag generates an ETag for the raw post source.
func GenerateETag(source []byte) string {
	return fmt.Sprintf("%016x", xxhash.Sum64(source))
}

// EstimateReadingTime estimates the reading time of the content.
func EstimateReadingTime(content string) string {
	const wordsPerMinute = 200

	minutes := len(strings.Fields(content)) / wordsPerMinute

	switch {
	case minutes < 1:
		return "< 1 min"
	case minutes < 60:
		return fmt.Sprintf("%d min", minutes)
	default:
		return fmt.Sprintf("%d hr %d min", minutes/60, minutes%60)
	}
}
