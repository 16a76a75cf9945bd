package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type IAdminUseCase interface {
	Login(ctx context.Context, password string) (string, error)
	CreatePost(ctx context.Context, post entity.Post) (*entity.Post, error)
	UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error)
}
