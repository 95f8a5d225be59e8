package blogcache

import (
	"slices"
	"time"
)

// Post represents a parsed markdown post
type Post struct {
	Slug        string    `json:"slug"`        // Slug is the file name without its extension
	Title       string    `json:"title"`       // Title is the title from the frontmatter
	Date        time.Time `json:"date"`        // Date is the publication date at UTC midnight
	Tags        []string  `json:"tags"`        // Tags in frontmatter order, duplicates kept
	Summary     string    `json:"summary"`     // Summary is the frontmatter summary or the start of the body
	HTML        string    `json:"html"`        // HTML is the rendered body, ready to embed without escaping
	ETag        string    `json:"etag"`        // ETag is a hash of the raw source file
	ReadingTime string    `json:"readingTime"` // ReadingTime is the estimated reading time of the body
	SourcePath  string    `json:"sourcePath"`  // SourcePath is the file the post was loaded from
	body        string    // body is the markdown body, kept for the search index
}

// HasTags returns true if the post has at least one tag
func (p *Post) HasTags() bool {
	return len(p.Tags) > 0
}

// HasTag returns true if the post carries the exact tag
func (p *Post) HasTag(tag string) bool {
	return slices.Contains(p.Tags, tag)
}

// PublishedDate returns the date in the format Jan 2, 2006
func (p *Post) PublishedDate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format("Jan 2, 2006")
}

// ISODate returns the date in the YYYY-MM-DD format used in frontmatter
func (p *Post) ISODate() string {
	if p.Date.IsZero() {
		return ""
	}
	return p.Date.Format(DateLayout)
}

// clone returns a copy that shares no slices with p.
func (p Post) clone() Post {
	p.Tags = slices.Clone(p.Tags)
	if p.Tags == nil {
		p.Tags = []string{}
	}
	return p
}

func clonePosts(posts []Post) []Post {
	out := make([]Post, len(posts))
	for i := range posts {
		out[i] = posts[i].clone()
	}
	return out
}
