package contract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// IPostRepository is the blog content source.
type IPostRepository interface {
	// ListReadablePosts returns every non-draft post, newest first.
	ListReadablePosts(ctx context.Context) ([]entity.Post, error)
	GetPostBySlug(ctx context.Context, slug string) (*entity.Post, error)
	CreatePost(ctx context.Context, post *entity.Post) error
	UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error)
}
