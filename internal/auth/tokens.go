// Package auth issues and verifies RS256 access tokens, hashes passwords and
// keeps the denylist of revoked tokens.
package auth

import (
	"crypto/rsa"
	"errors"
	"fmt"
	"strconv"
	"time"

	"vantage/pkg/domain"
	"vantage/pkg/serrors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// TokenType is returned alongside every access token.
const TokenType = "bearer"

// Issuer signs and verifies access tokens.
type Issuer struct {
	private *rsa.PrivateKey
	public  *rsa.PublicKey
	ttl     time.Duration
	now     func() time.Time
}

// NewIssuer parses the PEM encoded key pair. When publicPEM is empty the public
// key is derived from the private key. Without a private key the Issuer can
// only verify tokens.
func NewIssuer(privatePEM, publicPEM string, ttl time.Duration) (*Issuer, error) {
	iss := &Issuer{ttl: ttl, now: time.Now}

	if privatePEM != "" {
		key, err := jwt.ParseRSAPrivateKeyFromPEM([]byte(privatePEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA private key: %w", err)
		}
		iss.private = key
		iss.public = &key.PublicKey
	}
	if publicPEM != "" {
		key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(publicPEM))
		if err != nil {
			return nil, fmt.Errorf("could not parse RSA public key: %w", err)
		}
		iss.public = key
	}
	if iss.public == nil {
		return nil, errors.New("no RSA key configured")
	}

	return iss, nil
}

// Issue signs a new token for userID.
func (i *Issuer) Issue(userID domain.UserID) (*Token, error) {
	return i.IssueWithTTL(userID, i.ttl)
}

// IssueWithTTL signs a new token for userID that expires after ttl.
func (i *Issuer) IssueWithTTL(userID domain.UserID, ttl time.Duration) (*Token, error) {
	if i.private == nil {
		return nil, errors.New("no RSA private key configured")
	}

	now := i.now()
	exp := now.Add(ttl)
	claims := jwt.RegisteredClaims{
		Subject:   strconv.FormatInt(int64(userID), 10),
		ID:        uuid.NewString(),
		ExpiresAt: jwt.NewNumericDate(exp),
		IssuedAt:  jwt.NewNumericDate(now),
		NotBefore: jwt.NewNumericDate(now),
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodRS256, claims).SignedString(i.private)
	if err != nil {
		return nil, fmt.Errorf("could not sign token: %w", err)
	}

	return &Token{AccessToken: signed, TokenType: TokenType, ExpiresAt: exp.Truncate(time.Second)}, nil
}

// Parse verifies raw and returns its claims. Every failure is reported as
// serrors.ErrUnauthorized.
func (i *Issuer) Parse(raw string) (*Claims, error) {
	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(raw, &claims, func(*jwt.Token) (any, error) {
		return i.public, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(i.now),
	)
	if err != nil {
		return nil, serrors.Wrap(serrors.ErrUnauthorized, err, "invalid token")
	}

	id, err := strconv.ParseInt(claims.Subject, 10, 64)
	if err != nil || id <= 0 {
		return nil, serrors.With(serrors.ErrUnauthorized, "invalid token subject")
	}
	if claims.ID == "" {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has no id")
	}

	return &Claims{
		UserID:    domain.UserID(id),
		JTI:       claims.ID,
		ExpiresAt: claims.ExpiresAt.Time,
	}, nil
}
