package utils

import (
	"sort"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// SortPostsByDate returns a copy of posts ordered by publish date, newest first.
// Posts published at the same instant keep their input order.
func SortPostsByDate(posts []entity.Post) []entity.Post {
	sorted := make([]entity.Post, len(posts))
	copy(sorted, posts)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].PublishedAt.After(sorted[j].PublishedAt)
	})
	return sorted
}

// FindPostBySlug returns the post with the given slug, if any.
func FindPostBySlug(posts []entity.Post, slug string) (entity.Post, bool) {
	for _, p := range posts {
		if p.Slug == slug {
			return p, true
		}
	}
	return entity.Post{}, false
}

// UniqueBySlug drops every post whose slug already appeared earlier in the slice.
func UniqueBySlug(posts []entity.Post) []entity.Post {
	seen := make(map[string]struct{}, len(posts))
	out := make([]entity.Post, 0, len(posts))
	for _, p := range posts {
		if _, ok := seen[p.Slug]; ok {
			continue
		}
		seen[p.Slug] = struct{}{}
		out = append(out, p)
	}
	return out
}
