package usecasecontract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type IReleaseUseCase interface {
	// ResolveRepo matches name case-insensitively against the allow-list.
	ResolveRepo(name string) (string, bool)
	Repositories() []string
	GetReleaseDownload(ctx context.Context, name string) (*entity.ReleaseDownload, error)
	ReleaseMetadata(repo string) entity.Metadata
}
