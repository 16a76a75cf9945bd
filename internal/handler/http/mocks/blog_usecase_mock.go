package mocks

import (
	"context"
	"errors"
	"time"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

// MockBlogUsecase is a mock implementation of the IBlogUseCase interface
type MockBlogUsecase struct {
	// Control mock behavior
	ShouldFailList   bool
	ShouldFailGet    bool
	ShouldFailRecord bool

	// Return values
	Posts []entity.Post
	Views map[string]int64
}

var _ usecasecontract.IBlogUseCase = (*MockBlogUsecase)(nil)

func NewMockBlogUsecase() *MockBlogUsecase {
	return &MockBlogUsecase{
		Posts: []entity.Post{
			{Slug: "second-post", Title: "Second post", Excerpt: "Newer", Content: "## Two", Tags: []string{"go"}, PublishedAt: time.Date(2024, 2, 1, 0, 0, 0, 0, time.UTC)},
			{Slug: "first-post", Title: "First post", Excerpt: "Older", Content: "# One", PublishedAt: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)},
		},
		Views: map[string]int64{},
	}
}

func (m *MockBlogUsecase) ListPosts(ctx context.Context) ([]entity.Post, error) {
	if m.ShouldFailList {
		return nil, errors.New("list failed")
	}
	return m.Posts, nil
}

func (m *MockBlogUsecase) find(slug string) (*entity.Post, error) {
	for _, p := range m.Posts {
		if p.Slug == slug {
			cp := p
			return &cp, nil
		}
	}
	return nil, entity.ErrPostNotFound
}

func (m *MockBlogUsecase) GetPost(ctx context.Context, slug string) (*entity.PostDetail, error) {
	if m.ShouldFailGet {
		return nil, errors.New("get failed")
	}
	p, err := m.find(slug)
	if err != nil {
		return nil, err
	}
	return &entity.PostDetail{Post: *p, HTML: "<p>" + p.Content + "</p>"}, nil
}

func (m *MockBlogUsecase) RecordView(ctx context.Context, slug string) (int64, error) {
	if m.ShouldFailRecord {
		return 0, errors.New("record failed")
	}
	if _, err := m.find(slug); err != nil {
		return 0, err
	}
	m.Views[slug]++
	return m.Views[slug], nil
}

func (m *MockBlogUsecase) GetViews(ctx context.Context, slug string) (int64, error) {
	if _, err := m.find(slug); err != nil {
		return 0, err
	}
	return m.Views[slug], nil
}
