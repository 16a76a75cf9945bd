package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/contract"
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

const adminSubject = "admin"

// AdminUseCase lets the site owner sign in and publish posts.
type AdminUseCase struct {
	postRepo     contract.IPostRepository
	hasher       contract.IHasher
	jwtService   JWTService
	uuidgen      contract.IUUIDGenerator
	logger       usecasecontract.IAppLogger
	passwordHash string
	now          func() time.Time
}

var _ usecasecontract.IAdminUseCase = (*AdminUseCase)(nil)

func NewAdminUseCase(postRepo contract.IPostRepository, hasher contract.IHasher, jwtService JWTService, uuidgen contract.IUUIDGenerator, logger usecasecontract.IAppLogger, passwordHash string) *AdminUseCase {
	return &AdminUseCase{
		postRepo:     postRepo,
		hasher:       hasher,
		jwtService:   jwtService,
		uuidgen:      uuidgen,
		logger:       logger,
		passwordHash: passwordHash,
		now:          time.Now,
	}
}

// Login checks password against the configured bcrypt hash and issues an access token.
func (uc *AdminUseCase) Login(ctx context.Context, password string) (string, error) {
	if uc.passwordHash == "" {
		return "", entity.ErrAdminLoginDisabled
	}
	if err := uc.hasher.ComparePasswordHash(password, uc.passwordHash); err != nil {
		uc.logger.Warningf("admin login rejected: %v", err)
		return "", entity.ErrInvalidCredentials
	}
	token, err := uc.jwtService.GenerateAccessToken(adminSubject, entity.RoleAdmin)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}
	return token, nil
}

// CreatePost stores a new post. A zero PublishedAt defaults to now.
func (uc *AdminUseCase) CreatePost(ctx context.Context, post entity.Post) (*entity.Post, error) {
	post.Slug = strings.TrimSpace(post.Slug)
	post.Title = strings.TrimSpace(post.Title)
	if post.Slug == "" {
		return nil, errors.New("slug is required")
	}
	if post.Title == "" {
		return nil, errors.New("title is required")
	}

	now := uc.now().UTC()
	post.ID = uc.uuidgen.NewUUID()
	if post.PublishedAt.IsZero() {
		post.PublishedAt = now
	}
	post.CreatedAt = now
	post.UpdatedAt = now
	if post.Tags == nil {
		post.Tags = []string{}
	}

	if err := uc.postRepo.CreatePost(ctx, &post); err != nil {
		if errors.Is(err, entity.ErrDuplicateSlug) {
			return nil, entity.ErrDuplicateSlug
		}
		uc.logger.Errorf("failed to create post: %v", err)
		return nil, fmt.Errorf("failed to create post: %w", err)
	}
	uc.logger.Infof("post created: slug=%s draft=%t", post.Slug, post.Draft)
	return &post, nil
}

func (uc *AdminUseCase) UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error) {
	if update.Title != nil && strings.TrimSpace(*update.Title) == "" {
		return nil, errors.New("title cannot be empty")
	}
	post, err := uc.postRepo.UpdatePost(ctx, slug, update)
	if err != nil {
		if errors.Is(err, entity.ErrPostNotFound) {
			return nil, entity.ErrPostNotFound
		}
		uc.logger.Errorf("failed to update post %s: %v", slug, err)
		return nil, fmt.Errorf("failed to update post: %w", err)
	}
	return post, nil
}
