// Package service provides the catalog operations behind the HTTP
// handlers, plus helpers for resolving the caller identity from a
// Bearer token.
package service

import (
	"time"

	"github.com/golang-jwt/jwt/v4"
)

// TokenParser resolves a user id from an Authorization Bearer value.
type TokenParser interface {
	UserIDFromToken(tokenString string) string
}

// Claims represents the claims that are included in the JWT token.
type Claims struct {
	jwt.RegisteredClaims
	// UserID is a custom claim for storing the user ID.
	UserID string `json:"user_id"`
}

// TokenExp defines the expiration time of issued JWT tokens (1 year).
const TokenExp = time.Hour * 24 * 365

// secretKey is used for signing JWT tokens. It should be kept private.
const secretKey = "supersecretkey"

type Auth struct{}

func NewAuth() *Auth {
	return &Auth{}
}

// BuildJWTString creates a signed token carrying the given user id.
func (a *Auth) BuildJWTString(userID string) (string, error) {
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(TokenExp)),
		},
		UserID: userID,
	})

	return token.SignedString([]byte(secretKey))
}

// UserIDFromToken extracts the user id claim from a Bearer value. A
// value that is not one of our tokens is treated as an opaque
// caller-supplied identifier and returned as is.
func (a *Auth) UserIDFromToken(tokenString string) string {
	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte(secretKey), nil
	})

	if err != nil || !token.Valid || claims.UserID == "" {
		return tokenString
	}

	return claims.UserID
}
