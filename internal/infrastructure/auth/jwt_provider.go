package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tecnicontrol/internal/domain/entities"
	"tecnicontrol/internal/usecase/interfaces"

	jwt "github.com/golang-jwt/jwt/v5"
)

var ErrInvalidSigningMethod = errors.New("unexpected signing method")

// Claims are the bearer token claims. The subject is the user id.
type Claims struct {
	Name  string `json:"name,omitempty"`
	Email string `json:"email,omitempty"`
	jwt.RegisteredClaims
}

// JWTProvider verifies HS256 bearer tokens signed with a shared secret.
type JWTProvider struct {
	secret []byte
	issuer string
}

var _ interfaces.IIdentityProvider = (*JWTProvider)(nil)

func NewJWTProvider(secret, issuer string) *JWTProvider {
	return &JWTProvider{secret: []byte(secret), issuer: strings.TrimSpace(issuer)}
}

func (p *JWTProvider) Verify(_ context.Context, tokenString string) (entities.Identity, error) {
	opts := []jwt.ParserOption{
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithExpirationRequired(),
	}
	if p.issuer != "" {
		opts = append(opts, jwt.WithIssuer(p.issuer))
	}

	claims := &Claims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, ErrInvalidSigningMethod
		}
		return p.secret, nil
	}, opts...)
	if err != nil {
		return entities.Identity{}, fmt.Errorf("%w: %w", interfaces.ErrInvalidCredentials, err)
	}
	if !token.Valid {
		return entities.Identity{}, interfaces.ErrInvalidCredentials
	}

	uid := strings.TrimSpace(claims.Subject)
	if uid == "" {
		return entities.Identity{}, fmt.Errorf("%w: missing subject", interfaces.ErrInvalidCredentials)
	}
	return entities.Identity{UID: uid, Name: claims.Name, Email: claims.Email}, nil
}

// Sign issues a token for claims. Used by local tooling and tests.
func (p *JWTProvider) Sign(claims Claims) (string, error) {
	if p.issuer != "" && claims.Issuer == "" {
		claims.Issuer = p.issuer
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(p.secret)
}
