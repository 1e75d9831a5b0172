package auth

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vantage/internal/config"
	"vantage/pkg/cache"
	"vantage/pkg/domain"
	"vantage/pkg/logger"
	"vantage/pkg/serrors"
	"vantage/pkg/storage"

	"go.uber.org/zap"
)

// Options configures the token issuer.
type Options struct {
	PrivateKey     string
	PublicKey      string
	AccessTokenTTL time.Duration
}

// NewOptions constructs an Options value from the provided application config.
func NewOptions(cfg *config.Config) Options {
	return Options{
		PrivateKey:     cfg.JWT.PrivateKey,
		PublicKey:      cfg.JWT.PublicKey,
		AccessTokenTTL: cfg.JWT.AccessTokenTTL,
	}
}

type service struct {
	storage storage.Storage
	cache   cache.Cache
	issuer  *Issuer
}

var _ Service = (*service)(nil)

func denylistKey(jti string) string { return cache.Key("denylist", jti) }

func (s service) Login(ctx context.Context, email, password string) (*Token, error) {
	user, err := s.storage.UserByEmail(ctx, strings.TrimSpace(email))
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil || !CheckPassword(user.HashedPassword, password) {
		return nil, serrors.With(serrors.ErrUnauthorized, "Incorrect email or password")
	}
	if !user.IsActive {
		return nil, serrors.With(serrors.ErrBadRequest, "Inactive user")
	}

	token, err := s.issuer.Issue(user.ID)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}
	logger.Info(ctx, "user logged in", zap.Int64("user_id", int64(user.ID)))

	return token, nil
}

func (s service) Authenticate(ctx context.Context, rawToken string) (*Principal, error) {
	claims, err := s.issuer.Parse(rawToken)
	if err != nil {
		return nil, err
	}

	revoked, err := s.cache.Exists(ctx, denylistKey(claims.JTI))
	if err != nil {
		// a cache outage must not lock everybody out
		logger.Warn(ctx, "could not check token denylist", zap.Error(err))
	}
	if revoked {
		return nil, serrors.With(serrors.ErrUnauthorized, "token has been revoked")
	}

	user, err := s.storage.UserByID(ctx, claims.UserID)
	if err != nil {
		return nil, fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return nil, serrors.With(serrors.ErrUnauthorized, "Could not validate credentials")
	}
	if !user.IsActive {
		return nil, serrors.With(serrors.ErrBadRequest, "Inactive user")
	}

	return &Principal{User: *user, Claims: *claims}, nil
}

func (s service) Refresh(ctx context.Context, userID domain.UserID) (*Token, error) {
	token, err := s.issuer.Issue(userID)
	if err != nil {
		return nil, fmt.Errorf("could not issue token: %w", err)
	}

	return token, nil
}

func (s service) Logout(ctx context.Context, claims Claims) error {
	ttl := time.Until(claims.ExpiresAt)
	if ttl <= 0 {
		return nil
	}
	if err := s.cache.Set(ctx, denylistKey(claims.JTI), []byte("1"), ttl); err != nil {
		return fmt.Errorf("could not revoke token: %w", err)
	}

	return nil
}

func (s service) ChangePassword(ctx context.Context, userID domain.UserID, current, next string) error {
	user, err := s.storage.UserByID(ctx, userID)
	if err != nil {
		return fmt.Errorf("could not get user: %w", err)
	}
	if user == nil {
		return serrors.With(serrors.ErrNotFound, "User not found")
	}
	if !CheckPassword(user.HashedPassword, current) {
		return serrors.With(serrors.ErrBadRequest, "Incorrect password")
	}
	if strings.TrimSpace(next) == "" {
		return serrors.With(serrors.ErrBadRequest, "New password must not be empty")
	}

	hashed, err := HashPassword(next)
	if err != nil {
		return err
	}
	mustChange := false
	if _, err := s.storage.UpdateUser(ctx, userID, storage.UserUpdates{
		HashedPassword:     &hashed,
		MustChangePassword: &mustChange,
	}); err != nil {
		return fmt.Errorf("could not update password: %w", err)
	}

	return nil
}

// New creates a Service. It fails when the configured keys cannot be parsed.
func New(storage storage.Storage, cache cache.Cache, options Options) (Service, error) {
	issuer, err := NewIssuer(options.PrivateKey, options.PublicKey, options.AccessTokenTTL)
	if err != nil {
		return nil, err
	}

	return &service{storage: storage, cache: cache, issuer: issuer}, nil
}
