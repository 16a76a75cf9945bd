package usecase_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/usecase"
)

type stubFeatured struct{ posts []entity.Post }

func (s stubFeatured) GetFeaturedPosts(context.Context) []entity.Post { return s.posts }

func TestHomePage(t *testing.T) {
	uc := usecase.NewSiteUseCase(stubFeatured{posts: []entity.Post{{Slug: "a"}}}, "https://jahir.dev", "umami-id", false)

	page := uc.HomePage(context.Background())

	assert.Equal(t, []string{"a"}, slugsOf(page.FeaturedPosts))
	assert.NotEmpty(t, page.FeaturedProjects)
	for _, p := range page.FeaturedProjects {
		assert.True(t, p.Featured)
	}
	assert.Equal(t, "Organization", page.JSONLD["@type"])
	assert.Equal(t, "https://jahir.dev", page.JSONLD["url"])
}

func TestHomePage_EmptyFeaturedSelection(t *testing.T) {
	uc := usecase.NewSiteUseCase(stubFeatured{posts: []entity.Post{}}, "https://jahir.dev", "", true)

	page := uc.HomePage(context.Background())

	assert.NotNil(t, page.FeaturedPosts)
	assert.Empty(t, page.FeaturedPosts)
}

func TestProjectsPage(t *testing.T) {
	uc := usecase.NewSiteUseCase(stubFeatured{}, "https://jahir.dev/", "", true)

	all := uc.ProjectsPage(false)
	featured := uc.ProjectsPage(true)

	assert.Greater(t, len(all.Projects), len(featured.Projects))
	assert.Equal(t, "Projects – Jason Zhang", all.Metadata.Title)
	assert.Equal(t, "https://jahir.dev/projects", all.Metadata.CanonicalURL)
	assert.Contains(t, all.Metadata.Keywords, "open-source")
}

func TestSiteInfo(t *testing.T) {
	uc := usecase.NewSiteUseCase(stubFeatured{}, "https://jahir.dev", "umami-id", true)

	info := uc.SiteInfo()

	assert.Equal(t, "umami-id", info.UmamiWebsiteID)
	assert.True(t, info.IsTemplate)
	if assert.Len(t, info.Navigation, 1) {
		assert.Equal(t, "Navigate", info.Navigation[0].Title)
		assert.Len(t, info.Navigation[0].Links, 4)
	}
	assert.Equal(t, "Jason Zhang – Frontend Software Engineer", info.Metadata.Title)
}
