// auth/token.go
package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrInvalidToken is returned for every decode failure. Callers cannot tell
// an expired token from a forged one.
var ErrInvalidToken = errors.New("invalid token")

// Codec issues and verifies signed bearer tokens. The secret is fixed at
// construction and shared read-only.
type Codec struct {
	secret          []byte
	method          jwt.SigningMethod
	defaultLifetime time.Duration
	now             func() time.Time
}

func NewCodec(secret, algorithm string, defaultLifetime time.Duration) (*Codec, error) {
	if secret == "" {
		return nil, errors.New("token secret must not be empty")
	}
	if algorithm == "" {
		algorithm = jwt.SigningMethodHS256.Alg()
	}
	var method jwt.SigningMethod
	switch algorithm {
	case jwt.SigningMethodHS256.Alg():
		method = jwt.SigningMethodHS256
	case jwt.SigningMethodHS384.Alg():
		method = jwt.SigningMethodHS384
	case jwt.SigningMethodHS512.Alg():
		method = jwt.SigningMethodHS512
	default:
		return nil, fmt.Errorf("unsupported signing algorithm %q", algorithm)
	}
	return &Codec{
		secret:          []byte(secret),
		method:          method,
		defaultLifetime: defaultLifetime,
		now:             time.Now,
	}, nil
}

// Encode signs a token whose subject is the given user id. A zero lifetime
// falls back to the configured default.
func (c *Codec) Encode(subject string, lifetime time.Duration) (string, error) {
	if subject == "" {
		return "", errors.New("token subject must not be empty")
	}
	if lifetime <= 0 {
		lifetime = c.defaultLifetime
	}
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(c.now().UTC().Add(lifetime)),
	}
	signed, err := jwt.NewWithClaims(c.method, claims).SignedString(c.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// Decode verifies the token and returns its subject.
func (c *Codec) Decode(token string) (string, error) {
	claims := &jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return c.secret, nil
	},
		jwt.WithValidMethods([]string{c.method.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	)
	if err != nil || !parsed.Valid {
		return "", ErrInvalidToken
	}
	if claims.Subject == "" {
		return "", ErrInvalidToken
	}
	return claims.Subject, nil
}
