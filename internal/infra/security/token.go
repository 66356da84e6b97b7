package security

import (
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/keizo-yamashita/user-service/internal/apperr"
	"github.com/keizo-yamashita/user-service/internal/core/domain"
	"github.com/keizo-yamashita/user-service/internal/core/port"
)

const defaultAccessTokenTTL = 30 * time.Minute

// TokenService issues and verifies HMAC-SHA256 signed access tokens carrying
// the user id as subject and a fixed expiry.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService constructs a TokenService for the supplied symmetric secret.
func NewTokenService(secret string, ttl time.Duration) (*TokenService, error) {
	if secret == "" {
		return nil, fmt.Errorf("jwt: secret is required")
	}
	if ttl <= 0 {
		ttl = defaultAccessTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}, nil
}

// Issue signs an access token with sub bound to the user id and exp set to
// now plus the configured TTL.
func (s *TokenService) Issue(id domain.UserID) (string, error) {
	if id.IsZero() {
		return "", fmt.Errorf("jwt: user id is required")
	}

	now := time.Now().UTC()
	claims := jwt.RegisteredClaims{
		Subject:   id.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("jwt: sign token: %w", err)
	}

	return signed, nil
}

// Verify validates signature and expiry and extracts the subject user id.
// Any failure surfaces as a business error with CodeInvalidToken; token
// verification never crashes on malformed input.
func (s *TokenService) Verify(token string) (domain.UserID, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return domain.UserID{}, apperr.BusinessWrap(apperr.CodeInvalidToken, err, nil)
	}

	if claims.Subject == "" {
		return domain.UserID{}, apperr.Business(apperr.CodeInvalidToken, nil)
	}

	id, err := domain.ParseUserID(claims.Subject)
	if err != nil {
		return domain.UserID{}, apperr.BusinessWrap(apperr.CodeInvalidToken, err, nil)
	}

	return id, nil
}

var _ port.TokenService = (*TokenService)(nil)
