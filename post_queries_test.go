package blogcache_test

import (
	"math"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypergopher/blogcache"
)

func loadedStore(t *testing.T) *blogcache.MemoryCacheStore {
	t.Helper()

	fsys := afero.NewMemMapFs()
	writePost(t, fsys, "gophers.md", "Gophers Everywhere", "2024-04-01", "go", "animals")
	writePost(t, fsys, "channels.md", "Channels in Practice", "2024-03-01", "go")
	writePost(t, fsys, "borrowing.md", "Borrow Checker Notes", "2024-02-01", "rust")
	writePost(t, fsys, "hello.md", "Hello", "2024-01-01")

	loader, store, _ := newTestLoader(fsys)
	loader.Load(postsDir)
	require.Len(t, store.All(), 4)

	return store
}

func TestSnapshot_PostsByTag(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	assert.Equal(t, []string{"gophers", "channels"}, slugs(snap.PostsByTag("go")))
	assert.Equal(t, []string{"borrowing"}, slugs(snap.PostsByTag("rust")))
	assert.Empty(t, snap.PostsByTag("Go"))
	assert.Empty(t, snap.PostsByTag("missing"))
}

func TestSnapshot_Latest(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	assert.Equal(t, []string{"gophers", "channels", "borrowing"}, slugs(snap.Latest(3)))
	assert.Len(t, snap.Latest(10), 4)
	assert.Empty(t, snap.Latest(0))
	assert.Empty(t, snap.Latest(-1))
}

func TestSnapshot_Page(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	tests := []struct {
		name          string
		pageNum       int
		pageSize      int
		expectedSlugs []string
		expectedPage  int
		totalPages    int
		hasNext       bool
		hasPrev       bool
	}{
		{
			name:          "First page",
			pageNum:       1,
			pageSize:      3,
			expectedSlugs: []string{"gophers", "channels", "borrowing"},
			expectedPage:  1,
			totalPages:    2,
			hasNext:       true,
			hasPrev:       false,
		},
		{
			name:          "Last page",
			pageNum:       2,
			pageSize:      3,
			expectedSlugs: []string{"hello"},
			expectedPage:  2,
			totalPages:    2,
			hasNext:       false,
			hasPrev:       true,
		},
		{
			name:          "Page past the end",
			pageNum:       5,
			pageSize:      3,
			expectedSlugs: []string{},
			expectedPage:  5,
			totalPages:    2,
			hasNext:       false,
			hasPrev:       true,
		},
		{
			name:          "Defaults for invalid input",
			pageNum:       0,
			pageSize:      0,
			expectedSlugs: []string{"gophers", "channels", "borrowing", "hello"},
			expectedPage:  1,
			totalPages:    1,
			hasNext:       false,
			hasPrev:       false,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page := snap.Page(tc.pageNum, tc.pageSize)
			assert.Equal(t, tc.expectedSlugs, slugs(page.Posts))
			assert.Equal(t, tc.expectedPage, page.CurrentPage)
			assert.Equal(t, tc.totalPages, page.TotalPages)
			assert.Equal(t, tc.hasNext, page.HasNext)
			assert.Equal(t, tc.hasPrev, page.HasPrev)
			assert.Equal(t, len(tc.expectedSlugs) > 0, page.HasPosts)
			assert.Equal(t, 4, page.TotalPosts)
		})
	}
}

func TestSnapshot_PageOutOfRange(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	tests := []struct {
		name     string
		pageNum  int
		pageSize int
	}{
		{name: "Largest page number", pageNum: math.MaxInt, pageSize: 10},
		{name: "Large page number and size", pageNum: math.MaxInt / 2, pageSize: math.MaxInt / 2},
		{name: "Largest page size on a later page", pageNum: 2, pageSize: math.MaxInt},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var page blogcache.Paginator
			require.NotPanics(t, func() {
				page = snap.Page(tc.pageNum, tc.pageSize)
			})
			assert.Empty(t, page.Posts)
			assert.False(t, page.HasNext)
			assert.Equal(t, 4, page.TotalPosts)
			assert.Equal(t, page.TotalPages, page.NextPage)
		})
	}

	page := snap.Page(1, math.MaxInt)
	assert.Len(t, page.Posts, 4)
	assert.Equal(t, 1, page.TotalPages)
}

func TestSnapshot_Search(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	posts, err := snap.Search("gophers", 10)
	require.NoError(t, err)
	require.NotEmpty(t, posts)
	assert.Equal(t, "gophers", posts[0].Slug)

	posts, err = snap.Search("rust", 10)
	require.NoError(t, err)
	assert.Equal(t, []string{"borrowing"}, slugs(posts))

	posts, err = snap.Search("   ", 10)
	require.NoError(t, err)
	assert.Empty(t, posts)

	posts, err = snap.Search("nothingmatchesthis", 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}

func TestSnapshot_SearchWithoutIndex(t *testing.T) {
	snap := blogcache.NewSnapshot([]blogcache.Post{tagged("one", "go")})

	posts, err := snap.Search("go", 10)
	require.NoError(t, err)
	assert.Empty(t, posts)
}
