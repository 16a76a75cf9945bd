package usecase

import (
	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

// JWTService defines the interface for JWT operations.
type JWTService interface {
	GenerateAccessToken(subject string, role entity.Role) (string, error)
	ParseAccessToken(token string) (*entity.Claims, error)
}
