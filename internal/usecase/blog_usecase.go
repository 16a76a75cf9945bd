package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
	"github.com/jasonzhang/portfolio/internal/utils"
)

// BlogUseCaseImpl serves the public blog: listing, detail and view counts.
type BlogUseCaseImpl struct {
	postRepo contract.IPostRepository
	views    contract.IViewCounter
	renderer contract.IMarkdownRenderer
	logger   usecasecontract.IAppLogger
}

// NewBlogUseCase creates a new instance of BlogUseCase
func NewBlogUseCase(postRepo contract.IPostRepository, views contract.IViewCounter, renderer contract.IMarkdownRenderer, logger usecasecontract.IAppLogger) *BlogUseCaseImpl {
	return &BlogUseCaseImpl{
		postRepo: postRepo,
		views:    views,
		renderer: renderer,
		logger:   logger,
	}
}

// check if BlogUseCaseImpl implements the IBlogUseCase
var _ usecasecontract.IBlogUseCase = (*BlogUseCaseImpl)(nil)

// ListPosts returns every readable post, newest first.
func (uc *BlogUseCaseImpl) ListPosts(ctx context.Context) ([]entity.Post, error) {
	posts, err := uc.postRepo.ListReadablePosts(ctx)
	if err != nil {
		uc.logger.Errorf("failed to list posts: %v", err)
		return nil, fmt.Errorf("failed to list posts: %w", err)
	}
	return utils.SortPostsByDate(posts), nil
}

// GetPost returns a readable post with its markdown rendered to HTML.
func (uc *BlogUseCaseImpl) GetPost(ctx context.Context, slug string) (*entity.PostDetail, error) {
	post, err := uc.readablePost(ctx, slug)
	if err != nil {
		return nil, err
	}
	html, err := uc.renderer.Render(post.Content)
	if err != nil {
		uc.logger.Errorf("failed to render post %s: %v", slug, err)
		return nil, fmt.Errorf("failed to render post: %w", err)
	}
	return &entity.PostDetail{Post: *post, HTML: html}, nil
}

// RecordView counts one view of a readable post and returns the new total.
func (uc *BlogUseCaseImpl) RecordView(ctx context.Context, slug string) (int64, error) {
	if _, err := uc.readablePost(ctx, slug); err != nil {
		return 0, err
	}
	count, err := uc.views.IncrementViews(ctx, slug)
	if err != nil {
		uc.logger.Errorf("failed to record view for %s: %v", slug, err)
		return 0, fmt.Errorf("failed to record view: %w", err)
	}
	return count, nil
}

func (uc *BlogUseCaseImpl) GetViews(ctx context.Context, slug string) (int64, error) {
	if _, err := uc.readablePost(ctx, slug); err != nil {
		return 0, err
	}
	count, err := uc.views.GetViews(ctx, slug)
	if err != nil {
		return 0, fmt.Errorf("failed to get views: %w", err)
	}
	return count, nil
}

// readablePost hides drafts behind ErrPostNotFound.
func (uc *BlogUseCaseImpl) readablePost(ctx context.Context, slug string) (*entity.Post, error) {
	slug = strings.TrimSpace(slug)
	if slug == "" {
		return nil, entity.ErrPostNotFound
	}
	post, err := uc.postRepo.GetPostBySlug(ctx, slug)
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			return nil, entity.ErrPostNotFound
		}
		return nil, fmt.Errorf("failed to get post: %w", err)
	}
	if !post.Readable() {
		return nil, entity.ErrPostNotFound
	}
	return post, nil
}
