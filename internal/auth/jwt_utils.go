package auth

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"saripos/internal/models"
)

var (
	jwtKey   []byte
	tokenTTL = 24 * time.Hour
)

// Configure sets the signing key and token lifetime. Must be called
// once at startup before any token is issued or validated.
func Configure(secret string, ttl time.Duration) {
	jwtKey = []byte(secret)
	if ttl > 0 {
		tokenTTL = ttl
	}
}

// Claims defines what is inside the token (The "ID Card")
type Claims struct {
	UserID uint        `json:"user_id"`
	Role   models.Role `json:"role"`
	jwt.RegisteredClaims
}

// GenerateToken creates a signed JWT for a user
func GenerateToken(userID uint, role models.Role) (string, error) {
	claims := &Claims{
		UserID: userID,
		Role:   role,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(tokenTTL)),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(jwtKey)
}

// ValidateToken checks if a token is fake or expired
func ValidateToken(tokenString string) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return jwtKey, nil
	})

	if err != nil {
		return nil, err
	}

	if !token.Valid {
		return nil, errors.New("invalid token")
	}

	// The role claim is attacker-controlled text until proven otherwise.
	if _, err := models.ParseRole(string(claims.Role)); err != nil {
		return nil, err
	}

	return claims, nil
}
