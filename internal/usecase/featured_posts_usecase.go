package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/infrastructure/metrics"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

const (
	FeaturedPostsCacheKey = "featured-posts"
	DefaultFeaturedTTL    = 24 * time.Hour
	maxRankedPosts        = 3
)

// FeaturedPostsUseCase picks the latest post, one of the most viewed posts and
// one random post, and keeps the selection for a fixed window.
type FeaturedPostsUseCase struct {
	posts          contract.IPostRepository
	ranking        contract.IViewCounter
	random         contract.IRandomSource
	memo           *Memoizer
	logger         usecasecontract.IAppLogger
	ttl            time.Duration
	rankingTimeout time.Duration
}

var _ usecasecontract.IFeaturedPostsUseCase = (*FeaturedPostsUseCase)(nil)

func NewFeaturedPostsUseCase(posts contract.IPostRepository, ranking contract.IViewCounter, random contract.IRandomSource, memo *Memoizer, logger usecasecontract.IAppLogger, ttl, rankingTimeout time.Duration) *FeaturedPostsUseCase {
	if ttl <= 0 {
		ttl = DefaultFeaturedTTL
	}
	return &FeaturedPostsUseCase{
		posts:          posts,
		ranking:        ranking,
		random:         random,
		memo:           memo,
		logger:         logger,
		ttl:            ttl,
		rankingTimeout: rankingTimeout,
	}
}

// GetFeaturedPosts returns the cached selection, computing it on the first call
// of each window. The result has 0 to 3 posts and is never nil.
func (uc *FeaturedPostsUseCase) GetFeaturedPosts(ctx context.Context) []entity.Post {
	posts, hit, err := GetOrCompute(ctx, uc.memo, FeaturedPostsCacheKey, uc.ttl, func(ctx context.Context) ([]entity.Post, error) {
		return uc.ComputeFeaturedPosts(ctx), nil
	})
	if err != nil || posts == nil {
		return []entity.Post{}
	}
	if hit {
		uc.logger.Debugf("cache hit: key=%s posts=%d", FeaturedPostsCacheKey, len(posts))
	}
	return posts
}

// ComputeFeaturedPosts runs the selection without the cache. Failures yield an
// empty selection.
func (uc *FeaturedPostsUseCase) ComputeFeaturedPosts(ctx context.Context) []entity.Post {
	selection, err := uc.selectFeatured(ctx)
	if err != nil {
		metrics.IncFeaturedFailure()
		uc.logger.Errorf("featured posts: %v", err)
		return []entity.Post{}
	}
	metrics.ObserveFeaturedSize(len(selection))
	return selection
}

func (uc *FeaturedPostsUseCase) selectFeatured(ctx context.Context) (selection []entity.Post, err error) {
	defer func() {
		if r := recover(); r != nil {
			selection, err = nil, fmt.Errorf("%w: %v", entity.ErrSelectionFailure, r)
		}
	}()

	readable, err := uc.posts.ListReadablePosts(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list posts: %v", entity.ErrSelectionFailure, err)
	}
	if len(readable) == 0 {
		return []entity.Post{}, nil
	}

	sorted := utils.SortPostsByDate(readable)
	latest, rest := sorted[0], sorted[1:]

	topThree, err := uc.topViewed(ctx, latest.Slug)
	if err != nil {
		return nil, fmt.Errorf("%w: ranking: %v", entity.ErrSelectionFailure, err)
	}
	if len(topThree) == 0 {
		return []entity.Post{latest}, nil
	}
	if len(topThree) > maxRankedPosts {
		topThree = topThree[:maxRankedPosts]
	}

	mostViewed := topThree[uc.random.Intn(len(topThree))]

	otherPosts := make([]entity.Post, 0, len(rest))
	for _, p := range rest {
		if p.Slug != mostViewed.Slug {
			otherPosts = append(otherPosts, p)
		}
	}

	selection = []entity.Post{latest}
	// An unmatched ranked slug (unknown, draft or the latest post) is dropped.
	if p, ok := utils.FindPostBySlug(rest, mostViewed.Slug); ok {
		selection = append(selection, p)
	}
	if len(otherPosts) > 0 {
		selection = append(selection, otherPosts[uc.random.Intn(len(otherPosts))])
	}
	return utils.UniqueBySlug(selection), nil
}

func (uc *FeaturedPostsUseCase) topViewed(ctx context.Context, excludeSlug string) ([]entity.RankedPost, error) {
	if uc.rankingTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, uc.rankingTimeout)
		defer cancel()
	}
	return uc.ranking.GetTopThreeBlogPosts(ctx, excludeSlug)
}
