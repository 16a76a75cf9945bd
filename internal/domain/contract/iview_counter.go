package contract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// IViewCounter tracks page views per post slug and ranks posts by them.
type IViewCounter interface {
	// GetTopThreeBlogPosts returns up to three most-viewed slugs, excluding excludeSlug.
	GetTopThreeBlogPosts(ctx context.Context, excludeSlug string) ([]entity.RankedPost, error)
	IncrementViews(ctx context.Context, slug string) (int64, error)
	GetViews(ctx context.Context, slug string) (int64, error)
}
