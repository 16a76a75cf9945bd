package utils

import (
	"testing"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, _ := time.Parse("2006-01-02", s)
	return t
}

func TestSortPostsByDate(t *testing.T) {
	in := []entity.Post{
		{Slug: "c", PublishedAt: day("2024-01-01")},
		{Slug: "a", PublishedAt: day("2024-01-03")},
		{Slug: "b", PublishedAt: day("2024-01-02")},
	}

	out := SortPostsByDate(in)

	assert.Equal(t, []string{"a", "b", "c"}, slugs(out))
	assert.Equal(t, "c", in[0].Slug, "input must not be reordered")
}

func TestUniqueBySlug(t *testing.T) {
	in := []entity.Post{{Slug: "a"}, {Slug: "b"}, {Slug: "a"}}
	assert.Equal(t, []string{"a", "b"}, slugs(UniqueBySlug(in)))
}

func TestFindPostBySlug(t *testing.T) {
	in := []entity.Post{{Slug: "a"}, {Slug: "b"}}

	p, ok := FindPostBySlug(in, "b")
	assert.True(t, ok)
	assert.Equal(t, "b", p.Slug)

	_, ok = FindPostBySlug(in, "z")
	assert.False(t, ok)
}

func slugs(posts []entity.Post) []string {
	out := make([]string, 0, len(posts))
	for _, p := range posts {
		out = append(out, p.Slug)
	}
	return out
}
