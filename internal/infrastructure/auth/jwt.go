// Package auth provides the token and password primitives backing the
// login flow: an HMAC-signed JWT service and a bcrypt password hasher.
package auth

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"kontor/internal/domain/access"
	"kontor/internal/shared/authorization"
	"kontor/internal/shared/biztime"
)

// Claims carries the principal attributes the middleware needs to
// rebuild an access.Principal without a database lookup.
type Claims struct {
	UserID     uint               `json:"user_id"`
	Role       authorization.Role `json:"role"`
	Kind       authorization.Kind `json:"kind"`
	CustomerID *uint              `json:"customer_id,omitempty"`
	Email      string             `json:"email"`
	Name       string             `json:"name"`
	jwt.RegisteredClaims
}

type JWTService struct {
	secret           []byte
	accessExpMinutes int
}

func NewJWTService(secret string, accessExpMinutes int) *JWTService {
	return &JWTService{
		secret:           []byte(secret),
		accessExpMinutes: accessExpMinutes,
	}
}

// Issue mints a signed access token for the principal.
func (s *JWTService) Issue(principal access.Principal, email, name string) (string, time.Time, error) {
	now := biztime.NowUTC()
	expiresAt := now.Add(time.Duration(s.accessExpMinutes) * time.Minute)

	claims := &Claims{
		UserID:     principal.ID,
		Role:       principal.Role,
		Kind:       principal.Kind,
		CustomerID: principal.CustomerID,
		Email:      email,
		Name:       name,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   fmt.Sprintf("%d", principal.ID),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
			IssuedAt:  jwt.NewNumericDate(now),
			NotBefore: jwt.NewNumericDate(now),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", time.Time{}, fmt.Errorf("failed to sign access token: %w", err)
	}

	return signed, expiresAt, nil
}

// Verify parses and validates a token string. It rejects tokens signed
// with anything other than the configured HMAC method.
func (s *JWTService) Verify(tokenString string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.secret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token")
	}
	if !claims.Role.IsValid() || !claims.Kind.IsValid() {
		return nil, fmt.Errorf("invalid token claims")
	}

	return claims, nil
}

// Principal rebuilds the access principal embedded in the claims.
func (c *Claims) Principal() access.Principal {
	return access.Principal{
		ID:         c.UserID,
		Role:       c.Role,
		Kind:       c.Kind,
		CustomerID: c.CustomerID,
	}
}
