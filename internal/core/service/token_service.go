package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/atypikhouse/atypikhouse-api/internal/core/domain"
)

// DefaultTokenTTL is the session validity window. There is no refresh
// mechanism: expiry forces re-authentication.
const DefaultTokenTTL = 7 * 24 * time.Hour

// TokenService issues and verifies HS256 session tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue produces a signed token embedding the claims and an expiry of
// now + ttl.
func (s *TokenService) Issue(claims domain.Claims) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub":   claims.Subject,
		"email": claims.Email,
		"role":  string(claims.Role),
		"iat":   now.Unix(),
		"exp":   now.Add(s.ttl).Unix(),
	})
	return t.SignedString(s.secret)
}

// Verify validates signature and expiry. Any malformed, forged, or expired
// token yields domain.ErrUnauthenticated; the reason is deliberately not
// surfaced to callers.
func (s *TokenService) Verify(token string) (*domain.Claims, error) {
	mc := jwt.MapClaims{}
	tkn, err := jwt.ParseWithClaims(token, mc, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil || !tkn.Valid {
		return nil, domain.ErrUnauthenticated
	}

	sub, _ := mc["sub"].(string)
	email, _ := mc["email"].(string)
	roleStr, _ := mc["role"].(string)
	role := domain.Role(roleStr)
	if sub == "" || !role.Valid() {
		return nil, domain.ErrUnauthenticated
	}

	return &domain.Claims{Subject: sub, Email: email, Role: role}, nil
}
