// Package auth is the boundary to the token-verification gateway: the rest
// of the service only ever sees a verified Identity or a rejection.
package auth

import (
	"context"
	"fmt"

	"github.com/golang-jwt/jwt/v5"
)

// Identity is the result of a successful credential check.
type Identity struct {
	Subject string
	Admin   bool
}

// Verifier turns a bearer credential into an Identity or an error.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

// JWTVerifier validates HMAC-signed JWTs issued by the admin panel's login
// flow.
type JWTVerifier struct {
	secret []byte
}

func NewJWTVerifier(secret string) *JWTVerifier {
	return &JWTVerifier{secret: []byte(secret)}
}

func (v *JWTVerifier) Verify(_ context.Context, token string) (*Identity, error) {
	claims := jwt.MapClaims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}
		return v.secret, nil
	})
	if err != nil {
		return nil, err
	}
	if !parsed.Valid {
		return nil, jwt.ErrTokenUnverifiable
	}

	identity := Identity{}
	if sub, ok := claims["sub"].(string); ok {
		identity.Subject = sub
	}
	if admin, ok := claims["admin"].(bool); ok {
		identity.Admin = admin
	}
	return &identity, nil
}
