package contract

import (
	"context"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

type IReleaseProvider interface {
	GetLatestRelease(ctx context.Context, owner, repo string) (*entity.Release, error)
}
