// Package auth issues and verifies the access tokens used by the API.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"shopapi/internal/core/apperror"
	appctx "shopapi/internal/core/context"
	"shopapi/internal/domain/entity"
)

// Claims is the token payload.
type Claims struct {
	UserID   int64  `json:"uid"`
	Email    string `json:"email"`
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}

// TokenIssuer signs and parses HS256 access tokens.
type TokenIssuer struct {
	secret   []byte
	issuer   string
	audience string
	expiry   time.Duration
}

// NewTokenIssuer creates a token issuer. The secret must be non-empty.
func NewTokenIssuer(secret, issuer, audience string, expiry time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt secret is required")
	}
	if expiry <= 0 {
		expiry = time.Hour
	}
	return &TokenIssuer{
		secret:   []byte(secret),
		issuer:   issuer,
		audience: audience,
		expiry:   expiry,
	}, nil
}

// Issue signs a token for the user. The expiry is stamped from the current
// time plus the configured lifetime.
func (t *TokenIssuer) Issue(user *entity.User) (string, time.Time, error) {
	now := time.Now().UTC()
	expiresAt := now.Add(t.expiry)

	claims := Claims{
		UserID:   user.ID,
		Email:    user.Email,
		Username: user.Username,
		Role:     user.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", user.ID),
			Issuer:    t.issuer,
			Audience:  jwt.ClaimStrings{t.audience},
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(t.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("sign token: %w", err)
	}
	return signed, expiresAt, nil
}

// Parse verifies a token string and returns its claims.
func (t *TokenIssuer) Parse(tokenString string) (*Claims, error) {
	claims := &Claims{}
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
	}
	if t.issuer != "" {
		opts = append(opts, jwt.WithIssuer(t.issuer))
	}
	if t.audience != "" {
		opts = append(opts, jwt.WithAudience(t.audience))
	}

	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		return t.secret, nil
	}, opts...)
	if err != nil {
		return nil, apperror.NewUnauthorized("invalid or expired token").WithCause(err)
	}
	if !token.Valid {
		return nil, apperror.NewUnauthorized("invalid token")
	}
	return claims, nil
}

// UserContext converts verified claims to the request-scoped user value.
func (c *Claims) UserContext() *appctx.UserContext {
	return &appctx.UserContext{
		UserID:   c.UserID,
		Email:    c.Email,
		Username: c.Username,
		Role:     c.Role,
	}
}
