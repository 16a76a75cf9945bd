package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

const releaseCacheKeyPrefix = "gh-release:"

// ReleaseUseCase resolves the latest downloadable artifact of allow-listed repositories.
type ReleaseUseCase struct {
	provider contract.IReleaseProvider
	memo     *Memoizer
	logger   usecasecontract.IAppLogger
	owner    string
	repos    []string
	ttl      time.Duration
	baseURL  string
}

var _ usecasecontract.IReleaseUseCase = (*ReleaseUseCase)(nil)

func NewReleaseUseCase(provider contract.IReleaseProvider, memo *Memoizer, logger usecasecontract.IAppLogger, owner string, repos []string, ttl time.Duration, baseURL string) *ReleaseUseCase {
	return &ReleaseUseCase{
		provider: provider,
		memo:     memo,
		logger:   logger,
		owner:    owner,
		repos:    append([]string(nil), repos...),
		ttl:      ttl,
		baseURL:  strings.TrimRight(baseURL, "/"),
	}
}

func (uc *ReleaseUseCase) ResolveRepo(name string) (string, bool) {
	name = strings.TrimSpace(name)
	if name == "" {
		return "", false
	}
	for _, r := range uc.repos {
		if strings.EqualFold(r, name) {
			return r, true
		}
	}
	return "", false
}

func (uc *ReleaseUseCase) Repositories() []string {
	return append([]string(nil), uc.repos...)
}

// GetReleaseDownload returns the asset to download for repo. Lookup failures are
// not errors: they produce an unsuccessful download pointing at the releases page.
// Only an unknown repository is an error.
func (uc *ReleaseUseCase) GetReleaseDownload(ctx context.Context, name string) (*entity.ReleaseDownload, error) {
	repo, ok := uc.ResolveRepo(name)
	if !ok {
		return nil, entity.ErrUnknownRepository
	}

	key := releaseCacheKeyPrefix + strings.ToLower(repo)
	download, _, err := GetOrCompute(ctx, uc.memo, key, uc.ttl, func(ctx context.Context) (entity.ReleaseDownload, error) {
		return uc.fetch(ctx, repo)
	})
	if err != nil {
		uc.logger.Warningf("release lookup failed for %s: %v", repo, err)
		metrics.IncReleaseLookup(repo, "fallback")
		fallback := uc.fallback(repo)
		return &fallback, nil
	}
	return &download, nil
}

func (uc *ReleaseUseCase) fetch(ctx context.Context, repo string) (entity.ReleaseDownload, error) {
	release, err := uc.provider.GetLatestRelease(ctx, uc.owner, repo)
	if err != nil {
		return entity.ReleaseDownload{}, fmt.Errorf("%w: %v", entity.ErrReleaseUnavailable, err)
	}
	asset, ok := pickAsset(release.Assets)
	if !ok {
		metrics.IncReleaseLookup(repo, "no_assets")
		d := uc.fallback(repo)
		d.Tag = release.TagName
		if release.HTMLURL != "" {
			d.Download = release.HTMLURL
		}
		return d, nil
	}
	metrics.IncReleaseLookup(repo, "success")
	return entity.ReleaseDownload{
		Repo:     repo,
		Tag:      release.TagName,
		Success:  true,
		Download: asset.DownloadURL,
	}, nil
}

func (uc *ReleaseUseCase) fallback(repo string) entity.ReleaseDownload {
	return entity.ReleaseDownload{
		Repo:     repo,
		Success:  false,
		Download: fmt.Sprintf("https://github.com/%s/%s/releases/latest", uc.owner, repo),
	}
}

// pickAsset prefers an Android package, then any asset with a download URL.
func pickAsset(assets []entity.ReleaseAsset) (entity.ReleaseAsset, bool) {
	for _, a := range assets {
		if a.DownloadURL != "" && strings.HasSuffix(strings.ToLower(a.Name), ".apk") {
			return a, true
		}
	}
	for _, a := range assets {
		if a.DownloadURL != "" {
			return a, true
		}
	}
	return entity.ReleaseAsset{}, false
}

func (uc *ReleaseUseCase) ReleaseMetadata(repo string) entity.Metadata {
	return utils.CreateMetadata(utils.MetadataOptions{
		Title:       fmt.Sprintf("%s Release Download – %s", repo, utils.SiteName),
		Description: fmt.Sprintf("Download the latest release artifacts from the %s repository on GitHub", repo),
		ExactURL:    fmt.Sprintf("%s/gh-releases/%s", uc.baseURL, repo),
		BaseURL:     uc.baseURL,
	})
}
