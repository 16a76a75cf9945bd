package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type INotionUseCase interface {
	GetNotionData(ctx context.Context) []entity.NotionPage
}
