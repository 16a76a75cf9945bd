package mocks

import (
	"context"
	"errors"
	"strings"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	usecasecontract "github.com/jasonzhang/portfolio/internal/usecase/contract"
)

type MockReleaseUsecase struct {
	ShouldFailLookup bool
	NoAsset          bool
}

var _ usecasecontract.IReleaseUseCase = (*MockReleaseUsecase)(nil)

func NewMockReleaseUsecase() *MockReleaseUsecase {
	return &MockReleaseUsecase{}
}

func (m *MockReleaseUsecase) ResolveRepo(name string) (string, bool) {
	if strings.EqualFold(name, "frames") {
		return "Frames", true
	}
	return "", false
}

func (m *MockReleaseUsecase) Repositories() []string {
	return []string{"Frames"}
}

func (m *MockReleaseUsecase) GetReleaseDownload(ctx context.Context, name string) (*entity.ReleaseDownload, error) {
	repo, ok := m.ResolveRepo(name)
	if !ok {
		return nil, entity.ErrUnknownRepository
	}
	if m.ShouldFailLookup {
		return nil, errors.New("lookup failed")
	}
	if m.NoAsset {
		return &entity.ReleaseDownload{Repo: repo, Download: "https://github.com/jahirfiquitiva/Frames/releases/latest"}, nil
	}
	return &entity.ReleaseDownload{Repo: repo, Tag: "v1", Success: true, Download: "https://example.com/frames.apk"}, nil
}

func (m *MockReleaseUsecase) ReleaseMetadata(repo string) entity.Metadata {
	return entity.Metadata{Title: repo + " Release Download"}
}
