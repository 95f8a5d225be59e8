package blogcache

import (
	"cmp"
	"slices"
)

// TagCount is a tag and the number of times it occurs across a snapshot.
type TagCount struct {
	Tag   string `json:"tag"`
	Count int    `json:"count"`
}

// TagCounts counts every tag occurrence in the snapshot. The result is ordered
// by descending count; tags with the same count are ordered alphabetically.
func (s *Snapshot) TagCounts() []TagCount {
	return countTags(s.posts)
}

// Tags returns the distinct tags of the snapshot, most frequent first.
func (s *Snapshot) Tags() []string {
	counts := s.TagCounts()
	tags := make([]string, len(counts))
	for i, tc := range counts {
		tags[i] = tc.Tag
	}
	return tags
}

func countTags(posts []Post) []TagCount {
	tally := make(map[string]int)
	for i := range posts {
		for _, tag := range posts[i].Tags {
			tally[tag]++
		}
	}

	counts := make([]TagCount, 0, len(tally))
	for tag, n := range tally {
		counts = append(counts, TagCount{Tag: tag, Count: n})
	}

	slices.SortFunc(counts, func(a, b TagCount) int {
		if c := cmp.Compare(b.Count, a.Count); c != 0 {
			return c
		}
		return cmp.Compare(a.Tag, b.Tag)
	})

	return counts
}
