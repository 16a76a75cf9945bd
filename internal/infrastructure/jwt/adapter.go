package jwt

import (
	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/usecase"
)

// JWTServiceAdapter adapts JWTManager to the usecase.JWTService interface.
type JWTServiceAdapter struct {
	mgr *JWTManager
}

var _ usecase.JWTService = (*JWTServiceAdapter)(nil)

// NewJWTService creates a new usecase.JWTService from JWTManager
func NewJWTService(mgr *JWTManager) usecase.JWTService {
	return &JWTServiceAdapter{mgr: mgr}
}

func (a *JWTServiceAdapter) GenerateAccessToken(subject string, role entity.Role) (string, error) {
	return a.mgr.GenerateAccessToken(subject, string(role))
}

// ParseAccessToken validates an access token and returns Claims.
func (a *JWTServiceAdapter) ParseAccessToken(tokenStr string) (*entity.Claims, error) {
	claims, err := a.mgr.VerifyToken(tokenStr)
	if err != nil {
		return nil, err
	}
	return &entity.Claims{
		Subject:          claims.Subject,
		Role:             entity.Role(claims.Role),
		RegisteredClaims: claims.RegisteredClaims,
	}, nil
}
