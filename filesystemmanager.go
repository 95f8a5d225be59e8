package blogcache

import (
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/spf13/afero"
)

// DefaultExtension is the extension of the files the loader picks up.
const DefaultExtension = ".md"

// LoadReport summarises one load.
type LoadReport struct {
	Dir      string
	Loaded   int
	Skipped  int
	Duration time.Duration
}

// Loader scans a content directory, parses every post file in it and swaps
// the result into a PostStore.
type Loader struct {
	fs        afero.Fs
	parser    *Parser
	store     PostStore
	extension string
	indexing  bool
	logger    *slog.Logger
	mu        sync.Mutex
}

// NewLoader creates a loader. Search indexing is enabled by default.
func NewLoader(fsys afero.Fs, parser *Parser, store PostStore, logger *slog.Logger) *Loader {
	return &Loader{
		fs:        fsys,
		parser:    parser,
		store:     store,
		extension: DefaultExtension,
		indexing:  true,
		logger:    logger,
	}
}

// SetExtension sets the file extension the loader matches, e.g. ".md".
func (l *Loader) SetExtension(ext string) {
	if ext == "" {
		return
	}
	if !strings.HasPrefix(ext, ".") {
		ext = "." + ext
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.extension = ext
}

// SetIndexing turns building the search index on or off for later loads.
func (l *Loader) SetIndexing(enabled bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.indexing = enabled
}

// Load scans dir and replaces the store's snapshot with the result. Files that
// fail to parse are logged and skipped. A missing directory is logged as a
// warning and leaves an empty snapshot; an unreadable one leaves the store as
// it was.
func (l *Loader) Load(dir string) {
	l.mu.Lock()
	defer l.mu.Unlock()

	start := time.Now()

	posts, report, err := l.scan(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			l.logger.Warn("content directory not found, no posts loaded", slog.String("dir", dir))
			l.store.Replace(NewSnapshot(nil))
			return
		}
		l.logger.Error("failed to read content directory",
			slog.String("dir", dir),
			slog.String("error", err.Error()))
		return
	}

	snap := &Snapshot{posts: posts, loadedAt: time.Now()}
	if l.indexing {
		index, err := buildIndex(posts, l.logger)
		if err != nil {
			l.logger.Error("failed to build search index", slog.String("error", err.Error()))
		} else {
			snap.index = index
		}
	}

	l.store.Replace(snap)

	report.Duration = time.Since(start)
	l.logger.Info("posts loaded",
		slog.String("dir", report.Dir),
		slog.Int("loaded", report.Loaded),
		slog.Int("skipped", report.Skipped),
		slog.Duration("duration", report.Duration))
}

// Scan parses every matching file in dir without touching the store. Posts are
// returned newest first; posts sharing a date keep file name order. The error
// is non-nil only when dir itself cannot be read, and wraps os.ErrNotExist when
// it does not exist.
func (l *Loader) Scan(dir string) ([]Post, LoadReport, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	return l.scan(dir)
}

func (l *Loader) scan(dir string) ([]Post, LoadReport, error) {
	report := LoadReport{Dir: dir}

	info, err := l.fs.Stat(dir)
	if err != nil {
		return nil, report, &IOError{Path: dir, Err: err}
	}
	if !info.IsDir() {
		return nil, report, &IOError{Path: dir, Err: errors.New("not a directory")}
	}

	// afero.ReadDir returns entries sorted by file name
	entries, err := afero.ReadDir(l.fs, dir)
	if err != nil {
		return nil, report, &IOError{Path: dir, Err: err}
	}

	posts := make([]Post, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), l.extension) {
			continue
		}

		path := filepath.Join(dir, entry.Name())
		post, err := l.parser.ParseFile(l.fs, path)
		if err != nil {
			l.logger.Error("failed to parse post",
				slog.String("path", path),
				slog.String("error", err.Error()))
			report.Skipped++
			continue
		}

		if !IsSafeSlug(post.Slug) {
			l.logger.Warn("post slug is not URL-safe and is used as-is",
				slog.String("path", path),
				slog.String("slug", post.Slug))
		}

		l.logger.Debug("loaded post", slog.String("path", path), slog.String("title", post.Title))
		posts = append(posts, *post)
		report.Loaded++
	}

	sort.SliceStable(posts, func(i, j int) bool {
		return posts[i].Date.After(posts[j].Date)
	})

	return posts, report, nil
}
