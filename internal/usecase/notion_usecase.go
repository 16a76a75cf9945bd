package usecase

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type NotionUseCase struct {
	client     contract.INotionClient
	databaseID string
	logger     usecasecontract.IAppLogger
}

var _ usecasecontract.INotionUseCase = (*NotionUseCase)(nil)

// NewNotionUseCase accepts a nil client when the integration is not configured.
func NewNotionUseCase(client contract.INotionClient, databaseID string, logger usecasecontract.IAppLogger) *NotionUseCase {
	return &NotionUseCase{client: client, databaseID: databaseID, logger: logger}
}

// GetNotionData returns the database rows, or an empty slice on any failure.
func (uc *NotionUseCase) GetNotionData(ctx context.Context) []entity.NotionPage {
	if uc.client == nil || uc.databaseID == "" {
		uc.logger.Debugf("notion: %v", entity.ErrNotionNotConfigured)
		return []entity.NotionPage{}
	}
	pages, err := uc.client.QueryDatabase(ctx, uc.databaseID)
	if err != nil {
		uc.logger.Errorf("Failed to fetch data from Notion: %v", err)
		return []entity.NotionPage{}
	}
	if pages == nil {
		return []entity.NotionPage{}
	}
	return pages
}
