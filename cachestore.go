package blogcache

import (
	"sync"
	"time"

	"github.com/blevesearch/bleve/v2"
)

// Snapshot is an immutable, ordered set of posts produced by one load.
// Posts are sorted by date, newest first.
type Snapshot struct {
	posts    []Post
	index    bleve.Index // nil when search is disabled or indexing failed
	loadedAt time.Time
}

// NewSnapshot creates a snapshot from posts, which must already be in
// snapshot order. The slice is copied.
func NewSnapshot(posts []Post) *Snapshot {
	return &Snapshot{
		posts:    clonePosts(posts),
		loadedAt: time.Now(),
	}
}

// Len returns the number of posts in the snapshot.
func (s *Snapshot) Len() int {
	return len(s.posts)
}

// LoadedAt returns the time the snapshot was built.
func (s *Snapshot) LoadedAt() time.Time {
	return s.loadedAt
}

func (s *Snapshot) bySlug(slug string) (Post, bool) {
	for i := range s.posts {
		if s.posts[i].Slug == slug {
			return s.posts[i], true
		}
	}
	return Post{}, false
}

// MemoryCacheStore holds the current snapshot. Readers share it under a read
// lock; Replace swaps it under the write lock and does nothing else there.
type MemoryCacheStore struct {
	current *Snapshot
	mu      sync.RWMutex
}

// NewMemoryCacheStore creates a store holding an empty snapshot.
func NewMemoryCacheStore() *MemoryCacheStore {
	return &MemoryCacheStore{
		current: &Snapshot{posts: []Post{}},
	}
}

// Replace swaps in snap and returns the snapshot it replaced.
func (m *MemoryCacheStore) Replace(snap *Snapshot) *Snapshot {
	if snap == nil {
		snap = &Snapshot{posts: []Post{}, loadedAt: time.Now()}
	}

	m.mu.Lock()
	prev := m.current
	m.current = snap
	m.mu.Unlock()

	return prev
}

// Snapshot returns the current snapshot. It must be treated as read-only.
func (m *MemoryCacheStore) Snapshot() *Snapshot {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.current
}

// All returns a copy of every post in the current snapshot.
func (m *MemoryCacheStore) All() []Post {
	return clonePosts(m.Snapshot().posts)
}

// BySlug returns a copy of the first post whose slug matches exactly.
func (m *MemoryCacheStore) BySlug(slug string) (Post, bool) {
	post, ok := m.Snapshot().bySlug(slug)
	if !ok {
		return Post{}, false
	}
	return post.clone(), true
}
