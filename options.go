package blogcache

import (
	"fmt"
	"log/slog"

	"github.com/BurntSushi/toml"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/afero"
)

// Options is a struct for configuring a new BlogCache instance.
type Options struct {
	ContentDir         string              `toml:"content_dir"`         // ContentDir is the directory holding the post files.
	Extension          string              `toml:"extension"`           // Extension is the post file extension. Default is ".md".
	SummaryLength      int                 `toml:"summary_length"`      // SummaryLength is the number of characters in a generated summary. Default is 200.
	FrontmatterFormats []FrontmatterFormat `toml:"frontmatter_formats"` // FrontmatterFormats lists the accepted frontmatter formats. Default is YAML and TOML.
	DisableSearch      bool                `toml:"disable_search"`      // DisableSearch skips building the full-text index on load.
	LoadOnInit         bool                `toml:"load_on_init"`        // LoadOnInit loads the posts when the BlogCache is created.
	Fs                 afero.Fs            `toml:"-"`                   // Fs is the filesystem posts are read from. Default is the OS filesystem.
	Logger             *slog.Logger        `toml:"-"`                   // Logger is the logger used by BlogCache. Default is an info logger to stderr.
	Renderer           RenderFunc          `toml:"-"`                   // Renderer converts markdown bodies to HTML. A goldmark renderer is used if not provided.
}

// LoadOptionsFile decodes a TOML configuration file into Options. Fields that
// cannot come from a file (Fs, Logger, Renderer) are left empty.
func LoadOptionsFile(fsys afero.Fs, path string) (Options, error) {
	var opts Options

	data, err := afero.ReadFile(fsys, path)
	if err != nil {
		return opts, &IOError{Path: path, Err: err}
	}

	md, err := toml.Decode(string(data), &opts)
	if err != nil {
		return opts, fmt.Errorf("%w: failed to decode %s: %w", ErrInvalidOptions, path, err)
	}

	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return opts, fmt.Errorf("%w: unknown keys in %s: %v", ErrInvalidOptions, path, undecoded)
	}

	return opts, nil
}

// Validate checks the options after defaults have been applied.
func (o Options) Validate() error {
	if o.ContentDir == "" {
		return ErrMissingContentDir
	}

	err := validation.ValidateStruct(&o,
		validation.Field(&o.SummaryLength, validation.Min(0)),
		validation.Field(&o.FrontmatterFormats,
			validation.Each(validation.In(FrontmatterYAML, FrontmatterTOML).Error("must be yaml or toml"))),
	)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidOptions, err)
	}

	return nil
}

func (o Options) withDefaults() Options {
	if o.Extension == "" {
		o.Extension = DefaultExtension
	}

	if o.SummaryLength == 0 {
		o.SummaryLength = DefaultSummaryLength
	}

	if len(o.FrontmatterFormats) == 0 {
		o.FrontmatterFormats = DefaultFrontmatterFormats()
	}

	if o.Fs == nil {
		o.Fs = afero.NewOsFs()
	}

	if o.Logger == nil {
		o.Logger = defaultLogger()
	}

	if o.Renderer == nil {
		o.Renderer = DefaultRenderer()
	}

	return o
}
