package contract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type INotionClient interface {
	QueryDatabase(ctx context.Context, databaseID string) ([]entity.NotionPage, error)
}
