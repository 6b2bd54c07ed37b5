// Package auth implements the token and password primitives for the server:
// HS256 JWTs carrying the user's identity, and bcrypt password hashing.
package auth

import (
	"errors"
	"time"

	"spenttribe/internal/common"

	"github.com/golang-jwt/jwt/v5"
)

// Claims carries the authenticated identity inside a token. The JSON keys
// match the shape the frontend decodes ({id, username}).
type Claims struct {
	jwt.RegisteredClaims
	UserID   string `json:"id"`
	Username string `json:"username"`
}

// GenerateToken signs a token embedding the user's id and username,
// valid for validityDuration from now.
func GenerateToken(userID, username string, secretKey []byte, validityDuration time.Duration) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(validityDuration)),
		},
		UserID:   userID,
		Username: username,
	})

	return token.SignedString(secretKey)
}

// ParseToken verifies the signature and expiry of tokenString and returns its
// claims. Expired tokens yield common.ErrTokenExpired; any other failure
// yields common.ErrInvalidToken.
func ParseToken(tokenString string, secretKey []byte) (*Claims, error) {
	claims := &Claims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (interface{}, error) {
		return secretKey, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, common.ErrTokenExpired
		}
		return nil, common.ErrInvalidToken
	}

	if !token.Valid {
		return nil, common.ErrInvalidToken
	}

	return claims, nil
}
