package mocks

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type MockSiteUsecase struct {
	FeaturedPosts []entity.Post
	Projects      []entity.Project
	LastFeatured  bool
}

var _ usecasecontract.ISiteUseCase = (*MockSiteUsecase)(nil)

func NewMockSiteUsecase() *MockSiteUsecase {
	return &MockSiteUsecase{
		Projects: []entity.Project{
			{Name: "Frames", Featured: true},
			{Name: "ChipView"},
		},
	}
}

func (m *MockSiteUsecase) SiteInfo() entity.SiteInfo {
	return entity.SiteInfo{Metadata: entity.Metadata{Title: "Site"}, UmamiWebsiteID: "umami", IsTemplate: true}
}

func (m *MockSiteUsecase) HomePage(ctx context.Context) entity.HomePage {
	return entity.HomePage{
		Metadata:         entity.Metadata{Title: "Home"},
		FeaturedPosts:    m.FeaturedPosts,
		FeaturedProjects: m.Projects[:1],
		JSONLD:           map[string]any{"@type": "Organization"},
	}
}

func (m *MockSiteUsecase) ProjectsPage(featuredOnly bool) entity.ProjectsPage {
	m.LastFeatured = featuredOnly
	if featuredOnly {
		return entity.ProjectsPage{Projects: m.Projects[:1]}
	}
	return entity.ProjectsPage{Projects: m.Projects}
}

func (m *MockSiteUsecase) BlogMetadata() entity.Metadata {
	return entity.Metadata{Title: "Blog"}
}
