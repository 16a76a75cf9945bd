package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
	"github.com/jasonzhang/portfolio/internal/handler/http/dto"
	"github.com/jasonzhang/portfolio/internal/usecase"
)

// ClaimsKey is the gin context key holding *entity.Claims of an authenticated request.
const ClaimsKey = "claims"

// AdminAuth requires a valid bearer token carrying the admin role.
func AdminAuth(jwtService usecase.JWTService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		scheme, token, ok := strings.Cut(header, " ")
		if !ok || !strings.EqualFold(scheme, "Bearer") || strings.TrimSpace(token) == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "missing or malformed authorization header"})
			return
		}

		claims, err := jwtService.ParseAccessToken(strings.TrimSpace(token))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "invalid or expired token"})
			return
		}
		if claims.Role != entity.RoleAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "admin role required"})
			return
		}

		c.Set(ClaimsKey, claims)
		c.Next()
	}
}
