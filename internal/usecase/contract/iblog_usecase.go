package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type IBlogUseCase interface {
	ListPosts(ctx context.Context) ([]entity.Post, error)
	GetPost(ctx context.Context, slug string) (*entity.PostDetail, error)
	RecordView(ctx context.Context, slug string) (int64, error)
	GetViews(ctx context.Context, slug string) (int64, error)
}
