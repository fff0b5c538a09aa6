package service

import (
	"errors"
	"fmt"
	"time"

	"awei/internal/model"

	jwt "github.com/golang-jwt/jwt/v5"
)

// TokenTTL is how long an issued session token stays valid. Revocation is
// stateless (the cookie is cleared client-side), so a replayed token
// remains verifiable until this expiry.
const TokenTTL = 365 * 24 * time.Hour

var ErrInvalidToken = errors.New("invalid token")

type sessionClaims struct {
	Email string `json:"email"`
	Name  string `json:"name,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// TokenService signs and verifies session tokens
type TokenService struct {
	secret []byte
}

func NewTokenService(secret string) *TokenService {
	return &TokenService{secret: []byte(secret)}
}

// Issue signs the identity into an HS256 token expiring after TokenTTL.
func (s *TokenService) Issue(identity model.Identity) (string, error) {
	now := time.Now()
	claims := sessionClaims{
		Email: identity.Email,
		Name:  identity.Name,
		Role:  identity.Role,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(TokenTTL)),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verify validates signature and expiry and returns the embedded identity.
func (s *TokenService) Verify(tokenString string) (*model.Identity, error) {
	tok, err := jwt.ParseWithClaims(tokenString, &sessionClaims{}, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Method.Alg())
		}
		return s.secret, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	claims, ok := tok.Claims.(*sessionClaims)
	if !ok || claims.Email == "" {
		return nil, ErrInvalidToken
	}
	return &model.Identity{Email: claims.Email, Name: claims.Name, Role: claims.Role}, nil
}
