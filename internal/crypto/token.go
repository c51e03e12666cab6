package crypto

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Token type discriminators. Access and refresh tokens are structurally
// identical apart from the type claim and their lifetime.
const (
	TokenTypeAccess  = "access"
	TokenTypeRefresh = "refresh"
)

// Claims represents the JWT claims carried by StoryLens tokens.
type Claims struct {
	jwt.RegisteredClaims
	TokenType string `json:"type"`
}

// GenerateAccessToken creates a signed short-lived access token for the
// given user.
func GenerateAccessToken(userID, secret string, expiry time.Duration) (string, error) {
	return generateToken(userID, TokenTypeAccess, secret, expiry)
}

// GenerateRefreshToken creates a signed long-lived refresh token for the
// given user.
func GenerateRefreshToken(userID, secret string, expiry time.Duration) (string, error) {
	return generateToken(userID, TokenTypeRefresh, secret, expiry)
}

func generateToken(userID, tokenType, secret string, expiry time.Duration) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID,
			ExpiresAt: jwt.NewNumericDate(now.Add(expiry)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		TokenType: tokenType,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(secret))
}

// ValidateToken parses a token string and checks its signature and expiry.
// It does not check the token type: an endpoint that expects a specific
// type must inspect Claims.TokenType itself.
func ValidateToken(tokenString, secret string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidToken
		}
		return []byte(secret), nil
	})
	if err != nil {
		return nil, ErrInvalidToken
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, ErrInvalidToken
	}

	return claims, nil
}
