package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/usecase"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// MockAdminUsecase accepts the password "s3cret".
type MockAdminUsecase struct {
	ShouldFailCreate bool
	LoginDisabled    bool
	Created          []entity.Post
}

var _ usecasecontract.IAdminUseCase = (*MockAdminUsecase)(nil)

func NewMockAdminUsecase() *MockAdminUsecase {
	return &MockAdminUsecase{}
}

func (m *MockAdminUsecase) Login(ctx context.Context, password string) (string, error) {
	if m.LoginDisabled {
		return "", entity.ErrAdminLoginDisabled
	}
	if password != "s3cret" {
		return "", entity.ErrInvalidCredentials
	}
	return "mock_access_token", nil
}

func (m *MockAdminUsecase) CreatePost(ctx context.Context, post entity.Post) (*entity.Post, error) {
	if m.ShouldFailCreate {
		return nil, errors.New("create failed")
	}
	for _, p := range m.Created {
		if p.Slug == post.Slug {
			return nil, entity.ErrDuplicateSlug
		}
	}
	post.ID = "mock-post-id"
	post.UpdatedAt = time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC)
	m.Created = append(m.Created, post)
	return &post, nil
}

func (m *MockAdminUsecase) UpdatePost(ctx context.Context, slug string, update entity.PostUpdate) (*entity.Post, error) {
	for i, p := range m.Created {
		if p.Slug != slug {
			continue
		}
		if update.Title != nil {
			p.Title = *update.Title
		}
		if update.Draft != nil {
			p.Draft = *update.Draft
		}
		m.Created[i] = p
		return &p, nil
	}
	return nil, entity.ErrPostNotFound
}

// MockJWTService accepts only "mock_access_token".
type MockJWTService struct{}

var _ usecase.JWTService = MockJWTService{}

func (MockJWTService) GenerateAccessToken(subject string, role entity.Role) (string, error) {
	return "mock_access_token", nil
}

func (MockJWTService) ParseAccessToken(token string) (*entity.Claims, error) {
	if token != "mock_access_token" {
		return nil, errors.New("invalid token")
	}
	return &entity.Claims{Subject: "admin", Role: entity.RoleAdmin}, nil
}
