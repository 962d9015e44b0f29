package session

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// JWTChecker verifies HS256 access tokens issued by the auth service without
// a network round trip.
type JWTChecker struct {
	secret   []byte
	audience string
	now      func() time.Time
}

// NewJWTChecker returns a checker using secret as the HMAC key. When
// audience is non-empty the token's aud claim must contain it. A nil now
// means time.Now.
func NewJWTChecker(secret, audience string, now func() time.Time) *JWTChecker {
	if now == nil {
		now = time.Now
	}
	return &JWTChecker{secret: []byte(secret), audience: audience, now: now}
}

// Check validates the signature, the expiry, and the audience. Any token
// problem is unauthenticated; only a missing key is an error.
func (c *JWTChecker) Check(_ context.Context, token string) Result {
	if len(c.secret) == 0 {
		return Result{Status: StatusError, Err: errors.New("session.JWTChecker: signing secret is not configured")}
	}
	if token == "" {
		return Result{Status: StatusUnauthenticated}
	}

	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(c.now),
	}
	if c.audience != "" {
		opts = append(opts, jwt.WithAudience(c.audience))
	}

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return c.secret, nil
	}, opts...)
	if err != nil {
		return Result{Status: StatusUnauthenticated, Err: fmt.Errorf("session.JWTChecker: %w", err)}
	}
	if claims.Subject == "" {
		return Result{Status: StatusUnauthenticated, Err: errors.New("session.JWTChecker: token has no subject")}
	}
	return Result{Status: StatusAuthenticated, UserID: claims.Subject}
}
