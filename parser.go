package blogcache

import (
	"slices"
	"strings"
	"unicode"

	"github.com/spf13/afero"
)

const (
	reasonMissingOpening = "missing opening delimiter"
	reasonMissingClosing = "missing closing delimiter"
	reasonFrontmatter    = "invalid frontmatter"
	reasonDate           = "invalid date"
	reasonRender         = "failed to render markdown"
	reasonEmptySlug      = "file name has no slug"
)

// Parser turns the raw bytes of one post file into a Post.
type Parser struct {
	render        RenderFunc
	formats       []FrontmatterFormat
	summaryLength int
}

// NewParser creates a Parser. A nil render uses DefaultRenderer, a summaryLength
// below 1 uses DefaultSummaryLength and no formats accepts every supported one.
func NewParser(render RenderFunc, summaryLength int, formats ...FrontmatterFormat) *Parser {
	if render == nil {
		render = DefaultRenderer()
	}
	if summaryLength < 1 {
		summaryLength = DefaultSummaryLength
	}
	formats = slices.DeleteFunc(slices.Clone(formats), func(f FrontmatterFormat) bool {
		return f.Delimiter() == ""
	})
	if len(formats) == 0 {
		formats = DefaultFrontmatterFormats()
	}

	return &Parser{
		render:        render,
		formats:       formats,
		summaryLength: summaryLength,
	}
}

// ParseFile reads path from fsys and parses it. Read failures are returned as
// *IOError, content problems as *FormatError.
func (p *Parser) ParseFile(fsys afero.Fs, path string) (*Post, error) {
	source, err := afero.ReadFile(fsys, path)
	if err != nil {
		return nil, &IOError{Path: path, Err: err}
	}

	return p.Parse(path, source)
}

// Parse converts the source of the file at path into a Post. The path only
// provides the slug and error context; nothing is read from disk.
func (p *Parser) Parse(path string, source []byte) (*Post, error) {
	slug := FileSlug(path)
	if slug == "" {
		return nil, &FormatError{Path: path, Reason: reasonEmptySlug}
	}

	text := strings.TrimLeftFunc(string(source), unicode.IsSpace)

	format, fmText, body, reason := p.splitFrontmatter(text)
	if reason != "" {
		return nil, &FormatError{Path: path, Reason: reason}
	}

	fm, err := decodeFrontmatter(format, fmText)
	if err != nil {
		return nil, &FormatError{Path: path, Reason: reasonFrontmatter, Err: err}
	}

	date, err := fm.PublishedDate()
	if err != nil {
		return nil, &FormatError{Path: path, Reason: reasonDate, Err: err}
	}

	html, err := p.render([]byte(body))
	if err != nil {
		return nil, &FormatError{Path: path, Reason: reasonRender, Err: err}
	}

	var summary string
	if fm.Summary != nil {
		summary = *fm.Summary
	} else {
		summary = Summarize(body, p.summaryLength)
	}

	return &Post{
		Slug:        slug,
		Title:       fm.Title,
		Date:        date,
		Tags:        fm.Tags,
		Summary:     summary,
		HTML:        html,
		ETag:        GenerateETag(source),
		ReadingTime: EstimateReadingTime(body),
		SourcePath:  path,
		body:        body,
	}, nil
}

// splitFrontmatter splits text into the frontmatter block and the body, both
// trimmed. The first line must be a delimiter of an accepted format, and the
// block ends at the next line consisting solely of the same delimiter. A
// non-empty reason is returned when either delimiter is missing.
func (p *Parser) splitFrontmatter(text string) (format FrontmatterFormat, fm, body, reason string) {
	first, rest, _ := strings.Cut(text, "\n")

	format, ok := p.formatFor(trimLine(first))
	if !ok {
		return "", "", "", reasonMissingOpening
	}
	delim := format.Delimiter()

	offset := 0
	for {
		line, _, more := strings.Cut(rest[offset:], "\n")
		if trimLine(line) == delim {
			return format, strings.TrimSpace(rest[:offset]), strings.TrimSpace(rest[offset+len(line):]), ""
		}
		if !more {
			return "", "", "", reasonMissingClosing
		}
		offset += len(line) + 1
	}
}

func (p *Parser) formatFor(line string) (FrontmatterFormat, bool) {
	for _, f := range p.formats {
		if line == f.Delimiter() {
			return f, true
		}
	}
	return "", false
}

func trimLine(line string) string {
	return strings.TrimRight(line, " \t\r")
}
