package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	pwd "github.com/hearthhq/hearthd/pkg/password"
	"github.com/hearthhq/hearthd/pkg/qrcode"
	"github.com/hearthhq/hearthd/pkg/totp"
	"github.com/hearthhq/hearthd/pkg/userstore"
)

// Profile is the projection of the user record exposed to callers. The
// password hash and TOTP secret never leave the service.
type Profile struct {
	Name      string `json:"name"`
	Wallpaper string `json:"wallpaper,omitempty"`
}

// Enrollment is the payload handed to the caller when starting two-factor
// setup: the provisioning URI plus the same URI rendered as a QR data URI
// for direct display. Nothing is persisted until Enable2FA confirms it.
type Enrollment struct {
	URI    string `json:"uri"`
	QRCode string `json:"qrCode"`
}

// Register creates the single user account. It fails with
// ErrAlreadyRegistered once an account exists; there is no multi-user mode.
func (s *Service) Register(ctx context.Context, name, password string) error {
	if name == "" {
		return fmt.Errorf("%w: name is required", ErrValidation)
	}
	if password == "" {
		return fmt.Errorf("%w: password is required", ErrValidation)
	}
	if len(password) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	if len(password) > pwd.MaxLength {
		return fmt.Errorf("%w: password must be at most %d characters", ErrValidation, pwd.MaxLength)
	}

	hash, err := pwd.HashWithCost(password, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.Create(ctx, userstore.User{Name: name, PasswordHash: hash}); err != nil {
		if errors.Is(err, userstore.ErrAlreadyRegistered) {
			return ErrAlreadyRegistered
		}
		return fmt.Errorf("failed to create user: %w", err)
	}

	s.logger.InfoContext(ctx, "user registered", slog.String("component", "auth"))
	return nil
}

// Exists reports whether a user account is registered. It is the only
// operation besides Register and Login that needs no session.
func (s *Service) Exists(ctx context.Context) (bool, error) {
	return s.store.Exists(ctx)
}

// Login verifies the password (and the TOTP code when two-factor is on) and
// returns a fresh session token. "No account" and "wrong password" both
// yield ErrInvalidLogin so that failures reveal nothing about registration
// state.
func (s *Service) Login(ctx context.Context, password, totpToken string) (string, error) {
	user, err := s.store.Read(ctx)
	if err != nil {
		if errors.Is(err, userstore.ErrNotRegistered) {
			return "", ErrInvalidLogin
		}
		return "", fmt.Errorf("failed to read user: %w", err)
	}

	if !pwd.Verify(password, user.PasswordHash) {
		s.logger.WarnContext(ctx, "login failed", slog.String("component", "auth"))
		return "", ErrInvalidLogin
	}

	if user.TotpEnabled() {
		if totpToken == "" {
			return "", ErrMissingTotpToken
		}
		ok, err := totp.Validate(user.TotpSecret, totpToken)
		if err != nil || !ok {
			s.logger.WarnContext(ctx, "login failed 2FA check", slog.String("component", "auth"))
			return "", ErrInvalidTotpToken
		}
	}

	tokenString, err := s.tokens.Issue(subject)
	if err != nil {
		return "", fmt.Errorf("failed to issue token: %w", err)
	}

	s.logger.InfoContext(ctx, "login succeeded", slog.String("component", "auth"))
	return tokenString, nil
}

// RenewToken exchanges a still-valid session token for a fresh one with a
// new expiry window. No password re-entry is required.
func (s *Service) RenewToken(ctx context.Context, tokenString string) (string, error) {
	renewed, err := s.tokens.Renew(tokenString)
	if err != nil {
		return "", ErrInvalidToken
	}
	return renewed, nil
}

// GenerateTotpUri generates a brand-new TOTP secret and returns its
// provisioning URI. Nothing is persisted: the secret only becomes committed
// state when Enable2FA receives it back together with a valid code, so
// abandoned enrollments leave no half-enabled state behind. Repeated calls
// return distinct secrets.
func (s *Service) GenerateTotpUri(ctx context.Context, tokenString string) (string, error) {
	if err := s.authenticate(tokenString); err != nil {
		return "", err
	}

	user, err := s.store.Read(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to read user: %w", err)
	}

	secret, err := totp.GenerateSecretKey()
	if err != nil {
		return "", fmt.Errorf("failed to generate TOTP secret: %w", err)
	}

	uri, err := totp.URI(totp.Params{
		Secret:      secret,
		AccountName: user.Name,
		Issuer:      s.issuer,
	})
	if err != nil {
		return "", fmt.Errorf("failed to build provisioning URI: %w", err)
	}
	return uri, nil
}

// GenerateTotpEnrollment is GenerateTotpUri plus the same URI rendered as a
// QR code image, ready for the setup dialog.
func (s *Service) GenerateTotpEnrollment(ctx context.Context, tokenString string) (Enrollment, error) {
	uri, err := s.GenerateTotpUri(ctx, tokenString)
	if err != nil {
		return Enrollment{}, err
	}

	qr, err := qrcode.GenerateDataURI(uri, s.qrSize)
	if err != nil {
		return Enrollment{}, fmt.Errorf("failed to render enrollment QR: %w", err)
	}
	return Enrollment{URI: uri, QRCode: qr}, nil
}

// Enable2FA turns on two-factor authentication. The caller returns the
// provisioning URI from GenerateTotpUri together with a current code for
// it; possession of a working authenticator is proven before the secret is
// committed, atomically, to the user record.
func (s *Service) Enable2FA(ctx context.Context, tokenString, totpToken, totpUri string) error {
	if err := s.authenticate(tokenString); err != nil {
		return err
	}

	secret, err := totp.SecretFromURI(totpUri)
	if err != nil {
		return ErrInvalidTotpToken
	}

	ok, err := totp.Validate(secret, totpToken)
	if err != nil || !ok {
		return ErrInvalidTotpToken
	}

	if err := s.store.Update(ctx, func(u *userstore.User) error {
		u.TotpSecret = secret
		return nil
	}); err != nil {
		return fmt.Errorf("failed to enable 2FA: %w", err)
	}

	s.logger.InfoContext(ctx, "2FA enabled", slog.String("component", "auth"))
	return nil
}

// Disable2FA turns off two-factor authentication after verifying a current
// code against the committed secret. The check and the clearing of the
// secret happen inside one store update, so it cannot race a concurrent
// enable.
func (s *Service) Disable2FA(ctx context.Context, tokenString, totpToken string) error {
	if err := s.authenticate(tokenString); err != nil {
		return err
	}

	if err := s.store.Update(ctx, func(u *userstore.User) error {
		if !u.TotpEnabled() {
			return ErrInvalidTotpToken
		}
		ok, err := totp.Validate(u.TotpSecret, totpToken)
		if err != nil || !ok {
			return ErrInvalidTotpToken
		}
		u.TotpSecret = ""
		return nil
	}); err != nil {
		if errors.Is(err, ErrInvalidTotpToken) {
			return ErrInvalidTotpToken
		}
		return fmt.Errorf("failed to disable 2FA: %w", err)
	}

	s.logger.InfoContext(ctx, "2FA disabled", slog.String("component", "auth"))
	return nil
}

// Get returns the profile projection of the user record.
func (s *Service) Get(ctx context.Context, tokenString string) (Profile, error) {
	if err := s.authenticate(tokenString); err != nil {
		return Profile{}, err
	}

	user, err := s.store.Read(ctx)
	if err != nil {
		return Profile{}, fmt.Errorf("failed to read user: %w", err)
	}
	return Profile{Name: user.Name, Wallpaper: user.Wallpaper}, nil
}

// Set applies a partial profile update. Only the name and wallpaper fields
// are recognized; any other key fails validation before anything is stored.
// Supplied fields are updated, omitted fields are left alone.
func (s *Service) Set(ctx context.Context, tokenString string, changes map[string]any) error {
	if err := s.authenticate(tokenString); err != nil {
		return err
	}

	var name, wallpaper *string
	for key, value := range changes {
		str, isString := value.(string)
		switch key {
		case "name":
			if !isString || str == "" {
				return fmt.Errorf("%w: name must be a non-empty string", ErrValidation)
			}
			name = &str
		case "wallpaper":
			if !isString {
				return fmt.Errorf("%w: wallpaper must be a string", ErrValidation)
			}
			wallpaper = &str
		default:
			return fmt.Errorf("%w: unrecognized_keys: %q", ErrValidation, key)
		}
	}
	if name == nil && wallpaper == nil {
		return nil
	}

	if err := s.store.Update(ctx, func(u *userstore.User) error {
		if name != nil {
			u.Name = *name
		}
		if wallpaper != nil {
			u.Wallpaper = *wallpaper
		}
		return nil
	}); err != nil {
		return fmt.Errorf("failed to update profile: %w", err)
	}
	return nil
}

// ChangePassword re-hashes and commits a new password after verifying the
// old one. Outstanding session tokens stay valid; the short token TTL
// bounds how long a stolen session survives the change.
func (s *Service) ChangePassword(ctx context.Context, tokenString, oldPassword, newPassword string) error {
	if err := s.authenticate(tokenString); err != nil {
		return err
	}
	if len(newPassword) < minPasswordLength {
		return fmt.Errorf("%w: password must be at least %d characters", ErrValidation, minPasswordLength)
	}
	if len(newPassword) > pwd.MaxLength {
		return fmt.Errorf("%w: password must be at most %d characters", ErrValidation, pwd.MaxLength)
	}

	// Hash outside the store's critical section; only the verify-and-swap
	// runs under the lock.
	newHash, err := pwd.HashWithCost(newPassword, s.bcryptCost)
	if err != nil {
		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err := s.store.Update(ctx, func(u *userstore.User) error {
		if !pwd.Verify(oldPassword, u.PasswordHash) {
			return ErrInvalidLogin
		}
		u.PasswordHash = newHash
		return nil
	}); err != nil {
		if errors.Is(err, ErrInvalidLogin) {
			return ErrInvalidLogin
		}
		return fmt.Errorf("failed to change password: %w", err)
	}

	s.logger.InfoContext(ctx, "password changed", slog.String("component", "auth"))
	return nil
}
