package blogcache

import (
	"fmt"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"gopkg.in/yaml.v3"
)

// DateLayout is the only accepted layout for the frontmatter date.
const DateLayout = "2006-01-02"

type FrontmatterFormat string

const (
	FrontmatterYAML FrontmatterFormat = "yaml"
	FrontmatterTOML FrontmatterFormat = "toml"
)

// DefaultFrontmatterFormats returns every supported format, YAML first.
func DefaultFrontmatterFormats() []FrontmatterFormat {
	return []FrontmatterFormat{FrontmatterYAML, FrontmatterTOML}
}

// Delimiter returns the line that opens and closes a block of this format.
func (f FrontmatterFormat) Delimiter() string {
	switch f {
	case FrontmatterYAML:
		return "---"
	case FrontmatterTOML:
		return "+++"
	default:
		return ""
	}
}

func (f FrontmatterFormat) String() string {
	return string(f)
}

// Frontmatter is the metadata block at the top of a post file. Title and Date
// are required, Tags defaults to an empty list. Summary is nil when absent; an
// explicit empty summary is kept.
type Frontmatter struct {
	Title   string     `yaml:"title" toml:"title"`
	Date    dateString `yaml:"date" toml:"date"`
	Tags    []string   `yaml:"tags" toml:"tags"`
	Summary *string    `yaml:"summary" toml:"summary"`
}

// Validate checks that the required fields are present. The date layout is
// checked by PublishedDate.
func (fm Frontmatter) Validate() error {
	return validation.ValidateStruct(&fm,
		validation.Field(&fm.Title, validation.Required, validation.By(notBlank)),
		validation.Field(&fm.Date, validation.Required),
	)
}

func notBlank(value any) error {
	if s, ok := value.(string); ok && strings.TrimSpace(s) == "" {
		return validation.ErrRequired
	}
	return nil
}

// PublishedDate parses Date as a calendar date at UTC midnight.
func (fm Frontmatter) PublishedDate() (time.Time, error) {
	return time.Parse(DateLayout, string(fm.Date))
}

// dateString holds the raw frontmatter date. TOML has a native local date type,
// so a bare `date = 2024-01-02` arrives as a time.Time and is formatted back.
type dateString string

func (d *dateString) UnmarshalTOML(value any) error {
	switch v := value.(type) {
	case string:
		*d = dateString(v)
	case time.Time:
		if v.Hour() != 0 || v.Minute() != 0 || v.Second() != 0 || v.Nanosecond() != 0 {
			// keeps the time part so PublishedDate rejects it
			*d = dateString(v.Format(time.RFC3339))
			return nil
		}
		*d = dateString(v.Format(DateLayout))
	default:
		return fmt.Errorf("date must be a string, got %T", value)
	}
	return nil
}

// decodeFrontmatter decodes and validates a frontmatter block that has already
// been stripped of its delimiters.
func decodeFrontmatter(format FrontmatterFormat, text string) (Frontmatter, error) {
	var fm Frontmatter

	switch format {
	case FrontmatterYAML:
		if err := yaml.Unmarshal([]byte(text), &fm); err != nil {
			return fm, fmt.Errorf("failed to decode YAML frontmatter: %w", err)
		}
	case FrontmatterTOML:
		if _, err := toml.Decode(text, &fm); err != nil {
			return fm, fmt.Errorf("failed to decode TOML frontmatter: %w", err)
		}
	default:
		return fm, fmt.Errorf("%w: %s", ErrUnsupportedFormat, format)
	}

	if fm.Tags == nil {
		fm.Tags = []string{}
	}

	if err := fm.Validate(); err != nil {
		return fm, fmt.Errorf("%w: %w", ErrInvalidFrontmatter, err)
	}

	return fm, nil
}
