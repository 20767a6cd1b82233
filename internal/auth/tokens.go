package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/melodex/melodex/internal/shared"
)

const minSecretLen = 32

// Codec signs and verifies HS256 bearer tokens. The signing secret is loaded
// once at startup; a missing or short secret fails construction, not the
// first request.
type Codec struct {
	secret []byte
	ttl    time.Duration
}

// NewCodec constructs a Codec. ttl controls the expiry claim; zero issues
// non-expiring tokens.
func NewCodec(secret string, ttl time.Duration) (*Codec, error) {
	if len(secret) < minSecretLen {
		return nil, fmt.Errorf("auth: token secret must be at least %d bytes", minSecretLen)
	}
	return &Codec{secret: []byte(secret), ttl: ttl}, nil
}

// Encode issues a signed token for the given subject. Extra claims are merged
// into the payload; registered claim names win over extras.
func (c *Codec) Encode(subject string, extra map[string]any, issuedAt time.Time) (string, error) {
	claims := jwt.MapClaims{}
	for k, v := range extra {
		claims[k] = v
	}
	claims["sub"] = subject
	claims["iat"] = jwt.NewNumericDate(issuedAt)
	claims["jti"] = uuid.NewString()
	if c.ttl > 0 {
		claims["exp"] = jwt.NewNumericDate(issuedAt.Add(c.ttl))
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("auth: sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the signature and returns the claims. Any verification
// failure, including expiry, reports shared.ErrTokenInvalid.
func (c *Codec) Decode(tokenStr string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %v", t.Header["alg"])
		}
		return c.secret, nil
	}, jwt.WithValidMethods([]string{"HS256"}))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", shared.ErrTokenInvalid, err)
	}
	if !token.Valid {
		return nil, shared.ErrTokenInvalid
	}
	return claims, nil
}

// Subject is a convenience projection of Decode.
func (c *Codec) Subject(tokenStr string) (string, error) {
	claims, err := c.Decode(tokenStr)
	if err != nil {
		return "", err
	}
	subject, err := claims.GetSubject()
	if err != nil || subject == "" {
		return "", errors.Join(shared.ErrTokenInvalid, err)
	}
	return subject, nil
}
