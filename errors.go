package blogcache

import (
	"errors"
	"fmt"
)

var (
	ErrIO                 = errors.New("io error")
	ErrFormat             = errors.New("format error")
	ErrInvalidOptions     = errors.New("invalid options")
	ErrUnsupportedFormat  = errors.New("unsupported frontmatter format")
	ErrMissingContentDir  = errors.New("content directory is required")
	ErrInvalidFrontmatter = errors.New("invalid frontmatter")
)

// IOError reports a file or directory that could not be read.
type IOError struct {
	Path string
	Err  error
}

func (e *IOError) Error() string {
	return fmt.Sprintf("failed to read %s: %v", e.Path, e.Err)
}

func (e *IOError) Unwrap() error {
	return e.Err
}

// Is makes every IOError match ErrIO.
func (e *IOError) Is(target error) bool {
	return target == ErrIO
}

// FormatError reports a file whose content does not follow the expected layout:
// missing delimiters, undecodable frontmatter or an invalid date.
type FormatError struct {
	Path   string
	Reason string
	Err    error
}

func (e *FormatError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("invalid post %s: %s: %v", e.Path, e.Reason, e.Err)
	}
	return fmt.Sprintf("invalid post %s: %s", e.Path, e.Reason)
}

func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is makes every FormatError match ErrFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrFormat
}
