package external_services

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v66/github"
	"golang.org/x/oauth2"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// GitHubReleaseClient reads release data from the GitHub REST API.
type GitHubReleaseClient struct {
	client *github.Client
}

var _ contract.IReleaseProvider = (*GitHubReleaseClient)(nil)

// NewGitHubReleaseClient creates a client that authenticates with token when it is
// set; anonymous calls work but are heavily rate limited.
func NewGitHubReleaseClient(token string, timeout time.Duration) *GitHubReleaseClient {
	httpClient := &http.Client{Timeout: timeout}
	if token != "" {
		ctx := context.WithValue(context.Background(), oauth2.HTTPClient, httpClient)
		httpClient = oauth2.NewClient(ctx, oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token}))
	}
	return &GitHubReleaseClient{client: github.NewClient(httpClient)}
}

// WithBaseURL points the client at another API root, e.g. GitHub Enterprise.
func (c *GitHubReleaseClient) WithBaseURL(baseURL string) (*GitHubReleaseClient, error) {
	if !strings.HasSuffix(baseURL, "/") {
		baseURL += "/"
	}
	u, err := url.Parse(baseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid github base url: %w", err)
	}
	c.client.BaseURL = u
	return c, nil
}

func (c *GitHubReleaseClient) GetLatestRelease(ctx context.Context, owner, repo string) (*entity.Release, error) {
	release, _, err := c.client.Repositories.GetLatestRelease(ctx, owner, repo)
	if err != nil {
		var rateErr *github.RateLimitError
		if errors.As(err, &rateErr) {
			return nil, fmt.Errorf("github rate limit exceeded until %s: %w", rateErr.Rate.Reset.Time.Format(time.RFC3339), err)
		}
		return nil, fmt.Errorf("failed to get latest release of %s/%s: %w", owner, repo, err)
	}

	out := &entity.Release{
		TagName: release.GetTagName(),
		HTMLURL: release.GetHTMLURL(),
		Assets:  make([]entity.ReleaseAsset, 0, len(release.Assets)),
	}
	for _, a := range release.Assets {
		out.Assets = append(out.Assets, entity.ReleaseAsset{
			Name:        a.GetName(),
			DownloadURL: a.GetBrowserDownloadURL(),
			ContentType: a.GetContentType(),
		})
	}
	return out, nil
}
