package blogcache

import (
	"fmt"
	"log/slog"
	"os"
	"time"
)

// BlogCache is the main entry point: it loads posts from a content directory
// and answers queries against the most recent load.
type BlogCache struct {
	contentDir string
	loader     *Loader
	logger     *slog.Logger
	store      *MemoryCacheStore
}

// New creates a new BlogCache instance with the provided options. Posts are
// loaded immediately when opts.LoadOnInit is set; otherwise call Reload.
func New(opts Options) (*BlogCache, error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	store := NewMemoryCacheStore()
	parser := NewParser(opts.Renderer, opts.SummaryLength, opts.FrontmatterFormats...)

	loader := NewLoader(opts.Fs, parser, store, opts.Logger)
	loader.SetExtension(opts.Extension)
	loader.SetIndexing(!opts.DisableSearch)

	bc := &BlogCache{
		contentDir: opts.ContentDir,
		loader:     loader,
		logger:     opts.Logger,
		store:      store,
	}

	if opts.LoadOnInit {
		bc.Reload()
	}

	return bc, nil
}

func defaultLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr,
		&slog.HandlerOptions{
			AddSource: false,
			Level:     slog.LevelInfo,
		}))
}

// Reload reads the content directory again and atomically replaces the cached
// posts. Failures are logged, never returned; query the cache to see the result.
func (bc *BlogCache) Reload() {
	bc.loader.Load(bc.contentDir)
}

// ContentDir returns the directory posts are loaded from.
func (bc *BlogCache) ContentDir() string {
	return bc.contentDir
}

// LoadedAt returns when the current posts were loaded, or the zero time
// before the first load.
func (bc *BlogCache) LoadedAt() time.Time {
	return bc.store.Snapshot().LoadedAt()
}

// All returns every post, newest first.
func (bc *BlogCache) All() []Post {
	return bc.store.All()
}

// BySlug returns the post with the exact slug. ok is false when there is none.
func (bc *BlogCache) BySlug(slug string) (Post, bool) {
	return bc.store.BySlug(slug)
}

// AllTags returns the distinct tags, most used first.
func (bc *BlogCache) AllTags() []string {
	return bc.store.Snapshot().Tags()
}

// TagCounts returns every tag with its number of occurrences, most used first.
func (bc *BlogCache) TagCounts() []TagCount {
	return bc.store.Snapshot().TagCounts()
}

// PostsByTag returns the posts carrying tag, newest first.
func (bc *BlogCache) PostsByTag(tag string) []Post {
	return bc.store.Snapshot().PostsByTag(tag)
}

// Latest returns up to n of the newest posts.
func (bc *BlogCache) Latest(n int) []Post {
	return bc.store.Snapshot().Latest(n)
}

// Page returns one page of posts, newest first.
func (bc *BlogCache) Page(pageNum, pageSize int) Paginator {
	return bc.store.Snapshot().Page(pageNum, pageSize)
}

// Search runs a full-text query against the current posts.
func (bc *BlogCache) Search(query string, limit int) ([]Post, error) {
	return bc.store.Snapshot().Search(query, limit)
}

// Filter returns one page of posts matching opts.
func (bc *BlogCache) Filter(opts FilterOptions) (Paginator, error) {
	return bc.store.Snapshot().Filter(opts)
}

// Close releases the search index of the current snapshot.
func (bc *BlogCache) Close() error {
	snap := bc.store.Snapshot()
	if snap.index == nil {
		return nil
	}
	if err := snap.index.Close(); err != nil {
		return fmt.Errorf("failed to close search index: %w", err)
	}
	return nil
}
