package blogcache

// PostStore holds the snapshot the Loader produces and serves reads from it.
type PostStore interface {
	// Replace swaps in snap and returns the snapshot it replaced.
	Replace(snap *Snapshot) *Snapshot
	// Snapshot returns the current snapshot.
	Snapshot() *Snapshot
	// All returns a copy of every post in the current snapshot.
	All() []Post
	// BySlug retrieves a post by its slug.
	BySlug(slug string) (Post, bool)
}

var _ PostStore = (*MemoryCacheStore)(nil)
