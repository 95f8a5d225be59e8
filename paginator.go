package blogcache

// DefaultPageSize is used when a page size or search limit below 1 is given.
const DefaultPageSize = 10

// Paginator is a struct that holds information about pagination, such as the total number of pages, the current page,
// the next and previous pages, the page size, whether there are more pages, whether there are posts,
// the total number of posts and the posts on the current page.
type Paginator struct {
	TotalPages  int
	CurrentPage int
	NextPage    int
	PrevPage    int
	PageSize    int
	HasNext     bool
	HasPrev     bool
	HasPosts    bool
	TotalPosts  int
	Posts       []Post
}

// NewPaginator returns a Paginator struct with the given parameters.
func NewPaginator(posts []Post, total, currentPage, pageSize int) Paginator {
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}
	nextPage := totalPages
	prevPage := currentPage - 1

	if currentPage < totalPages {
		nextPage = currentPage + 1
	}

	if prevPage < 1 {
		prevPage = 1
	}

	if posts == nil {
		posts = []Post{}
	}

	return Paginator{
		TotalPages:  totalPages,
		CurrentPage: currentPage,
		NextPage:    nextPage,
		PrevPage:    prevPage,
		PageSize:    pageSize,
		HasNext:     currentPage < totalPages,
		HasPrev:     currentPage > 1,
		HasPosts:    len(posts) > 0,
		TotalPosts:  total,
		Posts:       posts,
	}
}

// paginationBounds calculates the start and end indices for pagination.
// pageNum and pageSize must be at least 1.
func paginationBounds(pageNum, pageSize, totalItems int) (start, end int) {
	// past the last page; also keeps the multiplication below from overflowing
	if pageNum-1 > totalItems/pageSize {
		return totalItems, totalItems
	}

	start = (pageNum - 1) * pageSize
	if start > totalItems {
		start = totalItems
	}
	end = start + pageSize
	if end > totalItems {
		end = totalItems
	}
	return start, end
}
