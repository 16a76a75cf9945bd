package dto

import "github.com/jasonzhang/portfolio/internal/domain/entity"

type HomeResponse struct {
	Metadata         entity.Metadata  `json:"metadata"`
	FeaturedPosts    []PostSummary    `json:"featured_posts"`
	FeaturedProjects []entity.Project `json:"featured_projects"`
	JSONLD           map[string]any   `json:"json_ld"`
}

func ToHomeResponse(p entity.HomePage) HomeResponse {
	projects := p.FeaturedProjects
	if projects == nil {
		projects = []entity.Project{}
	}
	return HomeResponse{
		Metadata:         p.Metadata,
		FeaturedPosts:    ToPostSummaries(p.FeaturedPosts),
		FeaturedProjects: projects,
		JSONLD:           p.JSONLD,
	}
}

// ReleasePageResponse is the view model of the download redirect page.
type ReleasePageResponse struct {
	Repo     string          `json:"repo"`
	Success  bool            `json:"success"`
	Download string          `json:"download"`
	Heading  string          `json:"heading"`
	Message  string          `json:"message"`
	Metadata entity.Metadata `json:"metadata"`
}

const (
	releaseSuccessHeading = "Download started!"
	releaseSuccessMessage = "Feel free to close this tab 😉"
	releaseFailureHeading = "Oh no!"
	releaseFailureMessage = "Direct download is not available right now 😕"
)

func ToReleasePageResponse(d entity.ReleaseDownload, md entity.Metadata) ReleasePageResponse {
	resp := ReleasePageResponse{
		Repo:     d.Repo,
		Success:  d.Success,
		Download: d.Download,
		Heading:  releaseFailureHeading,
		Message:  releaseFailureMessage,
		Metadata: md,
	}
	if d.Success {
		resp.Heading = releaseSuccessHeading
		resp.Message = releaseSuccessMessage
	}
	return resp
}

type ReleaseReposResponse struct {
	Repos []string `json:"repos"`
}

type LoginRequest struct {
	Password string `json:"password" binding:"required"`
}

type TokenResponse struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}
