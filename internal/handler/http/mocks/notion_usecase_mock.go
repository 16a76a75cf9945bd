package mocks

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type MockNotionUsecase struct {
	Pages []entity.NotionPage
}

var _ usecasecontract.INotionUseCase = (*MockNotionUsecase)(nil)

func (m *MockNotionUsecase) GetNotionData(ctx context.Context) []entity.NotionPage {
	if m.Pages == nil {
		return []entity.NotionPage{}
	}
	return m.Pages
}
