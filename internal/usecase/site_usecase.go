package usecase

import (
	"context"
	"strings"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

// SiteUseCase assembles the view models of the static pages.
type SiteUseCase struct {
	featured       usecasecontract.IFeaturedPostsUseCase
	baseURL        string
	umamiWebsiteID string
	isTemplate     bool
}

var _ usecasecontract.ISiteUseCase = (*SiteUseCase)(nil)

func NewSiteUseCase(featured usecasecontract.IFeaturedPostsUseCase, baseURL, umamiWebsiteID string, isTemplate bool) *SiteUseCase {
	return &SiteUseCase{
		featured:       featured,
		baseURL:        strings.TrimRight(baseURL, "/"),
		umamiWebsiteID: umamiWebsiteID,
		isTemplate:     isTemplate,
	}
}

func (uc *SiteUseCase) SiteInfo() entity.SiteInfo {
	return entity.SiteInfo{
		Metadata:       utils.CreateMetadata(utils.MetadataOptions{BaseURL: uc.baseURL}),
		Navigation:     navigationLinks,
		UmamiWebsiteID: uc.umamiWebsiteID,
		IsTemplate:     uc.isTemplate,
	}
}

// HomePage never fails; an empty featured selection is rendered as such.
func (uc *SiteUseCase) HomePage(ctx context.Context) entity.HomePage {
	return entity.HomePage{
		Metadata:         utils.CreateMetadata(utils.MetadataOptions{BaseURL: uc.baseURL}),
		FeaturedPosts:    uc.featured.GetFeaturedPosts(ctx),
		FeaturedProjects: filterProjects(true),
		JSONLD:           organizationJSONLD(uc.baseURL),
	}
}

func (uc *SiteUseCase) ProjectsPage(featuredOnly bool) entity.ProjectsPage {
	return entity.ProjectsPage{
		Metadata: utils.CreateMetadata(utils.MetadataOptions{
			Title:       "Projects – " + utils.SiteName,
			Description: "Projects by Jason Zhang. Get to know the projects I'm most proud of. Many of them are open-source.",
			ExactURL:    uc.baseURL + "/projects",
			Keywords:    []string{"tech", "software", "development", "project", "portfolio", "app", "programming", "open-source"},
			BaseURL:     uc.baseURL,
		}),
		Projects: filterProjects(featuredOnly),
	}
}

func (uc *SiteUseCase) BlogMetadata() entity.Metadata {
	return utils.CreateMetadata(utils.MetadataOptions{
		Title:       "Blog – " + utils.SiteName,
		Description: "Blog posts by Jason Zhang about software development, design and more.",
		ExactURL:    uc.baseURL + "/blog",
		Keywords:    []string{"tech", "software", "development", "blog", "programming", "web", "frontend"},
		BaseURL:     uc.baseURL,
	})
}

func filterProjects(featuredOnly bool) []entity.Project {
	out := make([]entity.Project, 0, len(projects))
	for _, p := range projects {
		if featuredOnly && !p.Featured {
			continue
		}
		out = append(out, p)
	}
	return out
}
