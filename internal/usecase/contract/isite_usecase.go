package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type ISiteUseCase interface {
	SiteInfo() entity.SiteInfo
	HomePage(ctx context.Context) entity.HomePage
	ProjectsPage(featuredOnly bool) entity.ProjectsPage
	BlogMetadata() entity.Metadata
}
