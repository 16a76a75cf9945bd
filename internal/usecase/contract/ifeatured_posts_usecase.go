package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// IFeaturedPostsUseCase selects the posts highlighted on the home page.
// It never fails: on any error the selection is empty.
type IFeaturedPostsUseCase interface {
	GetFeaturedPosts(ctx context.Context) []entity.Post
}
