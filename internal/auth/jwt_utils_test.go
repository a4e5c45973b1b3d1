package auth

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"saripos/internal/models"
)

func sign(t *testing.T, claims *Claims) string {
	t.Helper()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtKey)
	require.NoError(t, err)
	return signed
}

func TestTokenRoundTrip(t *testing.T) {
	Configure("test-secret", time.Hour)

	token, err := GenerateToken(3, models.RoleCashier)
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(3), claims.UserID)
	assert.Equal(t, models.RoleCashier, claims.Role)
}

func TestValidateRejectsWrongKey(t *testing.T) {
	Configure("first-secret", time.Hour)
	token, err := GenerateToken(1, models.RoleAdmin)
	require.NoError(t, err)

	Configure("second-secret", time.Hour)
	_, err = ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsExpiredToken(t *testing.T) {
	Configure("test-secret", time.Hour)
	token := sign(t, &Claims{
		UserID: 1,
		Role:   models.RoleAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Minute)),
		},
	})

	_, err := ValidateToken(token)
	assert.Error(t, err)
}

func TestValidateRejectsUnknownRole(t *testing.T) {
	Configure("test-secret", time.Hour)
	token := sign(t, &Claims{
		UserID: 1,
		Role:   "superuser",
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(time.Hour)),
		},
	})

	_, err := ValidateToken(token)
	assert.Error(t, err)
}
