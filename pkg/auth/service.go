package auth

import (
	"context"
	"io"
	"log/slog"

	"github.com/hearthhq/hearthd/pkg/logger"
	"github.com/hearthhq/hearthd/pkg/userstore"
)

// subject is the token subject for the single local account. The account
// name is mutable, so tokens are bound to this fixed identity instead; a
// profile rename never invalidates live sessions.
const subject = "owner"

// minPasswordLength is the registration and password-change policy floor.
const minPasswordLength = 6

// UserStore is the durable singleton-record repository the service mutates.
// All writes go through Update, whose mutator runs inside the store's
// critical section.
type UserStore interface {
	Exists(ctx context.Context) (bool, error)
	Create(ctx context.Context, user userstore.User) error
	Read(ctx context.Context) (userstore.User, error)
	Update(ctx context.Context, fn func(*userstore.User) error) error
}

// TokenService issues and verifies the signed bearer tokens returned by
// Login and checked on every authenticated operation.
type TokenService interface {
	Issue(subject string) (string, error)
	Verify(tokenString string) (string, error)
	Renew(tokenString string) (string, error)
}

// Service orchestrates registration, login, session renewal, two-factor
// enrollment and teardown, profile updates, and password changes. It is the
// sole mutator of the user store and the only caller of the hashing, TOTP,
// and token components.
type Service struct {
	store      UserStore
	tokens     TokenService
	issuer     string
	bcryptCost int
	qrSize     int
	logger     *slog.Logger
}

// Option configures the service.
type Option func(*Service)

// WithLogger sets a custom logger for the service.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Service) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// WithIssuer sets the issuer label embedded in TOTP provisioning URIs.
func WithIssuer(issuer string) Option {
	return func(s *Service) {
		if issuer != "" {
			s.issuer = issuer
		}
	}
}

// WithBcryptCost sets the bcrypt cost for password hashing.
func WithBcryptCost(cost int) Option {
	return func(s *Service) { s.bcryptCost = cost }
}

// WithQRSize sets the edge length in pixels of generated enrollment QR codes.
func WithQRSize(size int) Option {
	return func(s *Service) {
		if size > 0 {
			s.qrSize = size
		}
	}
}

// New creates the authentication service on top of the injected store and
// token service. Defaults: issuer "hearth.local", default bcrypt cost,
// discarded logs.
func New(store UserStore, tokens TokenService, opts ...Option) (*Service, error) {
	if store == nil {
		return nil, ErrMissingStore
	}
	if tokens == nil {
		return nil, ErrMissingTokenService
	}

	// Logs are discarded unless the caller wires a destination via
	// WithLogger; the service never logs secrets or hashes either way.
	s := &Service{
		store:  store,
		tokens: tokens,
		issuer: "hearth.local",
		logger: logger.New(logger.WithOutput(io.Discard)),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s, nil
}

// authenticate verifies the bearer token presented on an authenticated
// operation. Every failure collapses into ErrInvalidToken.
func (s *Service) authenticate(tokenString string) error {
	if _, err := s.tokens.Verify(tokenString); err != nil {
		return ErrInvalidToken
	}
	return nil
}
