package blogcache_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hypergopher/blogcache"
)

func TestSnapshot_Filter(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	tests := []struct {
		name          string
		opts          blogcache.FilterOptions
		expectedSlugs []string
		totalPosts    int
	}{
		{
			name:          "No filters",
			opts:          blogcache.FilterOptions{},
			expectedSlugs: []string{"gophers", "channels", "borrowing", "hello"},
			totalPosts:    4,
		},
		{
			name:          "Tag only",
			opts:          blogcache.FilterOptions{FilterTag: "go"},
			expectedSlugs: []string{"gophers", "channels"},
			totalPosts:    2,
		},
		{
			name:          "Tag with paging",
			opts:          blogcache.FilterOptions{FilterTag: "go", PageNum: 2, PageSize: 1},
			expectedSlugs: []string{"channels"},
			totalPosts:    2,
		},
		{
			name:          "Search only",
			opts:          blogcache.FilterOptions{FilterSearch: "borrow"},
			expectedSlugs: []string{"borrowing"},
			totalPosts:    1,
		},
		{
			name:          "Search and tag",
			opts:          blogcache.FilterOptions{FilterSearch: "channels", FilterTag: "rust"},
			expectedSlugs: []string{},
			totalPosts:    0,
		},
		{
			name:          "Unknown tag",
			opts:          blogcache.FilterOptions{FilterTag: "missing"},
			expectedSlugs: []string{},
			totalPosts:    0,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			page, err := snap.Filter(tc.opts)
			require.NoError(t, err)
			assert.Equal(t, tc.expectedSlugs, slugs(page.Posts))
			assert.Equal(t, tc.totalPosts, page.TotalPosts)
		})
	}
}

func TestSnapshot_FilterPageOutOfRange(t *testing.T) {
	snap := loadedStore(t).Snapshot()

	for _, opts := range []blogcache.FilterOptions{
		{PageNum: math.MaxInt / 2},
		{PageNum: math.MaxInt, FilterTag: "go"},
		{PageNum: math.MaxInt, FilterSearch: "gophers"},
	} {
		var page blogcache.Paginator
		var err error
		require.NotPanics(t, func() {
			page, err = snap.Filter(opts)
		})
		require.NoError(t, err)
		assert.Empty(t, page.Posts)
	}
}

func TestSnapshot_FilterEmpty(t *testing.T) {
	page, err := blogcache.NewSnapshot(nil).Filter(blogcache.FilterOptions{FilterSearch: "go"})
	require.NoError(t, err)

	assert.Empty(t, page.Posts)
	assert.False(t, page.HasPosts)
	assert.Equal(t, 1, page.CurrentPage)
}
