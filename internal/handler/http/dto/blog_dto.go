package dto

import (
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// PostSummary is a post as shown in lists; the body is left out.
type PostSummary struct {
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	PublishedAt string   `json:"published_at"`
}

type PostListResponse struct {
	Metadata entity.Metadata `json:"metadata"`
	Posts    []PostSummary   `json:"posts"`
}

type PostDetailResponse struct {
	PostSummary
	HTML      string          `json:"html"`
	UpdatedAt string          `json:"updated_at"`
	Metadata  entity.Metadata `json:"metadata"`
}

type ViewsResponse struct {
	Slug  string `json:"slug"`
	Views int64  `json:"views"`
}

type CreatePostRequest struct {
	Slug        string     `json:"slug" binding:"required,slug"`
	Title       string     `json:"title" binding:"required,notblank"`
	Excerpt     string     `json:"excerpt"`
	Content     string     `json:"content" binding:"required"`
	Tags        []string   `json:"tags"`
	Draft       bool       `json:"draft"`
	PublishedAt *time.Time `json:"published_at"`
}

type UpdatePostRequest struct {
	Title   *string  `json:"title" binding:"omitempty,notblank"`
	Excerpt *string  `json:"excerpt"`
	Content *string  `json:"content"`
	Tags    []string `json:"tags"`
	Draft   *bool    `json:"draft"`
}

type AdminPostResponse struct {
	ID          string   `json:"id"`
	Slug        string   `json:"slug"`
	Title       string   `json:"title"`
	Excerpt     string   `json:"excerpt"`
	Tags        []string `json:"tags"`
	Draft       bool     `json:"draft"`
	PublishedAt string   `json:"published_at"`
	UpdatedAt   string   `json:"updated_at"`
}

func ToPostSummary(p entity.Post) PostSummary {
	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}
	return PostSummary{
		Slug:        p.Slug,
		Title:       p.Title,
		Excerpt:     p.Excerpt,
		Tags:        tags,
		PublishedAt: p.PublishedAt.UTC().Format(time.RFC3339),
	}
}

// ToPostSummaries never returns nil so empty lists encode as [].
func ToPostSummaries(posts []entity.Post) []PostSummary {
	out := make([]PostSummary, 0, len(posts))
	for _, p := range posts {
		out = append(out, ToPostSummary(p))
	}
	return out
}

func ToPostDetailResponse(d entity.PostDetail, md entity.Metadata) PostDetailResponse {
	return PostDetailResponse{
		PostSummary: ToPostSummary(d.Post),
		HTML:        d.HTML,
		UpdatedAt:   d.Post.UpdatedAt.UTC().Format(time.RFC3339),
		Metadata:    md,
	}
}

func (r CreatePostRequest) ToEntity() entity.Post {
	p := entity.Post{
		Slug:    r.Slug,
		Title:   r.Title,
		Excerpt: r.Excerpt,
		Content: r.Content,
		Tags:    r.Tags,
		Draft:   r.Draft,
	}
	if r.PublishedAt != nil {
		p.PublishedAt = r.PublishedAt.UTC()
	}
	return p
}

func (r UpdatePostRequest) ToEntity() entity.PostUpdate {
	return entity.PostUpdate{
		Title:   r.Title,
		Excerpt: r.Excerpt,
		Content: r.Content,
		Tags:    r.Tags,
		Draft:   r.Draft,
	}
}

func ToAdminPostResponse(p entity.Post) AdminPostResponse {
	s := ToPostSummary(p)
	return AdminPostResponse{
		ID:          p.ID,
		Slug:        s.Slug,
		Title:       s.Title,
		Excerpt:     s.Excerpt,
		Tags:        s.Tags,
		Draft:       p.Draft,
		PublishedAt: s.PublishedAt,
		UpdatedAt:   p.UpdatedAt.UTC().Format(time.RFC3339),
	}
}
