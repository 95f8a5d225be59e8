package blogcache

// FilterOptions contains the options to filter posts.
type FilterOptions struct {
	PageNum      int    // The page number to retrieve. Default is 1.
	PageSize     int    // The number of items per page. Default is DefaultPageSize.
	FilterTag    string // The exact tag to filter by. Empty matches every post.
	FilterSearch string // A search string to filter by. Searches the title, summary, tags and body.
}

// Filter applies opts to the snapshot and returns the requested page. Without
// a search string posts keep snapshot order; with one they are in relevance order.
func (s *Snapshot) Filter(opts FilterOptions) (Paginator, error) {
	if opts.PageNum < 1 {
		opts.PageNum = 1
	}
	if opts.PageSize < 1 {
		opts.PageSize = DefaultPageSize
	}

	posts := s.posts
	if opts.FilterSearch != "" {
		if len(s.posts) == 0 {
			return NewPaginator(nil, 0, opts.PageNum, opts.PageSize), nil
		}

		found, err := s.Search(opts.FilterSearch, len(s.posts))
		if err != nil {
			return Paginator{}, err
		}
		posts = found
	}

	if opts.FilterTag != "" {
		tagged := make([]Post, 0, len(posts))
		for i := range posts {
			if posts[i].HasTag(opts.FilterTag) {
				tagged = append(tagged, posts[i])
			}
		}
		posts = tagged
	}

	start, end := paginationBounds(opts.PageNum, opts.PageSize, len(posts))
	return NewPaginator(clonePosts(posts[start:end]), len(posts), opts.PageNum, opts.PageSize), nil
}
