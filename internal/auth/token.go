package auth

import (
	"errors"
	"fmt"
	"time"

	"github.com/dgraph-io/ristretto/v2"
	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5"
)

var ErrInvalidToken = errors.New("invalid or expired token")

// Claims are the JWT claims of an access token. Subject is the user id.
type Claims struct {
	Email string `json:"email"`
	jwt.RegisteredClaims
}

// Token is a signed access token.
type Token struct {
	Value     string
	ID        string
	ExpiresAt time.Time
}

// TokenIssuer signs, verifies and revokes HS256 access tokens. Revoked token
// ids are kept in memory until the token would have expired anyway.
type TokenIssuer struct {
	secret  []byte
	ttl     time.Duration
	now     func() time.Time
	revoked *ristretto.Cache[string, struct{}]
}

func NewTokenIssuer(secret string, ttl time.Duration) (*TokenIssuer, error) {
	if secret == "" {
		return nil, errors.New("auth: empty token secret")
	}
	revoked, err := ristretto.NewCache(&ristretto.Config[string, struct{}]{
		NumCounters: 100_000,
		MaxCost:     10_000,
		BufferItems: 64,
	})
	if err != nil {
		return nil, fmt.Errorf("auth: revocation cache: %w", err)
	}
	return &TokenIssuer{
		secret:  []byte(secret),
		ttl:     ttl,
		now:     time.Now,
		revoked: revoked,
	}, nil
}

func (i *TokenIssuer) Issue(userID uuid.UUID, email string) (Token, error) {
	issuedAt := i.now()
	expiresAt := issuedAt.Add(i.ttl)
	tokenID := uuid.Must(uuid.NewV4()).String()

	claims := Claims{
		Email: email,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			ID:        tokenID,
			IssuedAt:  jwt.NewNumericDate(issuedAt),
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}
	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(i.secret)
	if err != nil {
		return Token{}, fmt.Errorf("sign token: %w", err)
	}
	return Token{Value: signed, ID: tokenID, ExpiresAt: expiresAt}, nil
}

// Parse verifies the signature, expiry and revocation state of value.
func (i *TokenIssuer) Parse(value string) (Identity, error) {
	claims := &Claims{}
	_, err := jwt.ParseWithClaims(value, claims, func(token *jwt.Token) (interface{}, error) {
		return i.secret, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithTimeFunc(i.now),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: %w", ErrInvalidToken, err)
	}

	userID, err := uuid.FromString(claims.Subject)
	if err != nil {
		return Identity{}, fmt.Errorf("%w: bad subject", ErrInvalidToken)
	}
	if _, revoked := i.revoked.Get(claims.ID); revoked {
		return Identity{}, fmt.Errorf("%w: revoked", ErrInvalidToken)
	}

	return Identity{
		UserID:    userID,
		Email:     claims.Email,
		TokenID:   claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}

// Revoke rejects the token for the rest of its lifetime.
func (i *TokenIssuer) Revoke(identity Identity) {
	ttl := identity.ExpiresAt.Sub(i.now())
	if ttl <= 0 || identity.TokenID == "" {
		return
	}
	i.revoked.SetWithTTL(identity.TokenID, struct{}{}, 1, ttl)
	i.revoked.Wait()
}

func (i *TokenIssuer) Close() {
	i.revoked.Close()
}
