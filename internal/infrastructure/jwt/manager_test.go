package jwt

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jasonzhang/portfolio/internal/domain/entity"
)

func TestNewJWTManager_RequiresSecret(t *testing.T) {
	_, err := NewJWTManager("", time.Hour)
	assert.Error(t, err)
}

func TestAccessTokenRoundTrip(t *testing.T) {
	mgr, err := NewJWTManager("secret", 12*time.Hour)
	require.NoError(t, err)
	svc := NewJWTService(mgr)

	token, err := svc.GenerateAccessToken("admin", entity.RoleAdmin)
	require.NoError(t, err)

	claims, err := svc.ParseAccessToken(token)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Subject)
	assert.Equal(t, entity.RoleAdmin, claims.Role)
	assert.WithinDuration(t, time.Now().Add(12*time.Hour), claims.ExpiresAt.Time, time.Minute)
}

func TestVerifyToken_Expired(t *testing.T) {
	mgr, err := NewJWTManager("secret", time.Hour)
	require.NoError(t, err)
	mgr.now = func() time.Time { return time.Now().Add(-2 * time.Hour) }
	token, err := mgr.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	mgr.now = time.Now
	_, err = mgr.VerifyToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenExpired)
}

func TestVerifyToken_WrongSecret(t *testing.T) {
	signer, _ := NewJWTManager("secret", time.Hour)
	verifier, _ := NewJWTManager("other", time.Hour)
	token, err := signer.GenerateAccessToken("admin", "admin")
	require.NoError(t, err)

	_, err = verifier.VerifyToken(token)

	assert.ErrorIs(t, err, jwt.ErrTokenSignatureInvalid)
}

func TestVerifyToken_RejectsNoneAlgorithm(t *testing.T) {
	mgr, _ := NewJWTManager("secret", time.Hour)
	token := jwt.NewWithClaims(jwt.SigningMethodNone, AdminClaims{
		Role: "admin",
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   "admin",
			Issuer:    issuer,
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})
	unsigned, err := token.SignedString(jwt.UnsafeAllowNoneSignatureType)
	require.NoError(t, err)

	_, err = mgr.VerifyToken(unsigned)

	assert.Error(t, err)
}
