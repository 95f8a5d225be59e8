package blogcache

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/blevesearch/bleve/v2/mapping"
)

const bleveDocType = "post"

// searchDocument is the part of a post that goes into the search index.
type searchDocument struct {
	Title   string   `json:"title"`
	Summary string   `json:"summary"`
	Tags    []string `json:"tags"`
	Body    string   `json:"body"`
}

func (searchDocument) BleveType() string {
	return bleveDocType
}

// Posts returns a copy of every post in the snapshot.
func (s *Snapshot) Posts() []Post {
	return clonePosts(s.posts)
}

// PostsByTag returns the posts carrying the exact tag, in snapshot order.
func (s *Snapshot) PostsByTag(tag string) []Post {
	posts := make([]Post, 0)
	for i := range s.posts {
		if s.posts[i].HasTag(tag) {
			posts = append(posts, s.posts[i].clone())
		}
	}
	return posts
}

// Latest returns up to n of the newest posts.
func (s *Snapshot) Latest(n int) []Post {
	if n <= 0 {
		return []Post{}
	}
	if n > len(s.posts) {
		n = len(s.posts)
	}
	return clonePosts(s.posts[:n])
}

// Page returns one page of the snapshot. A page number below 1 is treated as
// the first page and a page size below 1 as DefaultPageSize.
func (s *Snapshot) Page(pageNum, pageSize int) Paginator {
	if pageNum < 1 {
		pageNum = 1
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}

	start, end := paginationBounds(pageNum, pageSize, len(s.posts))
	return NewPaginator(clonePosts(s.posts[start:end]), len(s.posts), pageNum, pageSize)
}

// Search runs a bleve query string against the title, summary, tags and body
// of every post and returns up to limit matches in relevance order.
func (s *Snapshot) Search(queryString string, limit int) ([]Post, error) {
	queryString = strings.TrimSpace(queryString)
	if queryString == "" || s.index == nil {
		return []Post{}, nil
	}
	if limit < 1 {
		limit = DefaultPageSize
	}

	request := bleve.NewSearchRequestOptions(bleve.NewQueryStringQuery(queryString), limit, 0, false)
	result, err := s.index.Search(request)
	if err != nil {
		return nil, fmt.Errorf("error searching for posts: %w", err)
	}

	posts := make([]Post, 0, len(result.Hits))
	for _, hit := range result.Hits {
		if post, ok := s.bySlug(hit.ID); ok {
			posts = append(posts, post.clone())
		}
	}

	return posts, nil
}

// buildIndex creates an in-memory search index over posts. A post that cannot
// be indexed is logged and left out of search; the other posts are still indexed.
func buildIndex(posts []Post, logger *slog.Logger) (bleve.Index, error) {
	index, err := bleve.NewMemOnly(defineBleveMapping())
	if err != nil {
		return nil, fmt.Errorf("failed to create bleve index: %w", err)
	}

	batch := index.NewBatch()
	for i := range posts {
		doc := searchDocument{
			Title:   posts[i].Title,
			Summary: posts[i].Summary,
			Tags:    posts[i].Tags,
			Body:    posts[i].body,
		}
		if err := batch.Index(posts[i].Slug, doc); err != nil {
			logger.Error("failed to index post",
				slog.String("path", posts[i].SourcePath),
				slog.String("slug", posts[i].Slug),
				slog.String("error", err.Error()))
			continue
		}
	}

	if err := index.Batch(batch); err != nil {
		_ = index.Close()
		return nil, fmt.Errorf("failed to index posts: %w", err)
	}

	return index, nil
}

func defineBleveMapping() *mapping.IndexMappingImpl {
	indexMapping := bleve.NewIndexMapping()
	docMapping := bleve.NewDocumentMapping()

	docMapping.AddFieldMappingsAt("title", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("summary", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("tags", bleve.NewTextFieldMapping())
	docMapping.AddFieldMappingsAt("body", bleve.NewTextFieldMapping())

	indexMapping.AddDocumentMapping(bleveDocType, docMapping)

	return indexMapping
}
