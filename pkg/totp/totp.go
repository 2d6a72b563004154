package totp

import (
	"crypto/hmac"
	"crypto/rand"
	"crypto/sha1"
	"encoding/base32"
	"errors"
	"fmt"
	"math"
	"net/url"
	"regexp"
	"strings"
	"time"
)

const (
	// Digits is the code length produced and accepted. Fixed at the
	// 6-digit standard understood by every mainstream authenticator app.
	Digits = 6
	// Period is the code validity window in seconds (RFC 6238 standard).
	Period = 30
	// Algorithm is the HMAC algorithm advertised in provisioning URIs.
	Algorithm = "SHA1"

	// secretSize is 160 bits, the RFC 4226 recommended secret strength.
	secretSize = 20
)

var (
	// secretKeyRegex matches Base32 without padding: uppercase A-Z, digits 2-7.
	secretKeyRegex = regexp.MustCompile(`^[A-Z2-7]+$`)
	// codeRegex matches exactly six ASCII digits.
	codeRegex = regexp.MustCompile(`^\d{6}$`)
)

var b32 = base32.StdEncoding.WithPadding(base32.NoPadding)

// Params describes a provisioning URI for an authenticator app.
type Params struct {
	Secret      string // Base32-encoded shared secret (required)
	AccountName string // Account label shown in the authenticator (required)
	Issuer      string // Service name shown in the authenticator (required)
}

// Validate ensures all required provisioning parameters are present and valid.
func (p Params) Validate() error {
	if p.Secret == "" {
		return ErrMissingSecret
	}
	if !secretKeyRegex.MatchString(p.Secret) {
		return ErrInvalidSecret
	}
	if p.AccountName == "" {
		return ErrMissingAccountName
	}
	if p.Issuer == "" {
		return ErrMissingIssuer
	}
	return nil
}

// GenerateSecretKey generates a new Base32-encoded 160-bit shared secret.
// Every call draws fresh randomness, so two calls never yield the same
// secret in practice.
func GenerateSecretKey() (string, error) {
	secret := make([]byte, secretSize)
	if _, err := rand.Read(secret); err != nil {
		return "", errors.Join(ErrFailedToGenerateSecretKey, err)
	}
	return b32.EncodeToString(secret), nil
}

// URI builds an otpauth://totp provisioning URI following the Key Uri Format:
// https://github.com/google/google-authenticator/wiki/Key-Uri-Format
func URI(params Params) (string, error) {
	if err := params.Validate(); err != nil {
		return "", err
	}

	label := fmt.Sprintf("%s:%s",
		url.PathEscape(params.Issuer),
		url.PathEscape(params.AccountName),
	)

	query := url.Values{}
	query.Set("secret", params.Secret)
	query.Set("issuer", params.Issuer)
	query.Set("algorithm", Algorithm)
	query.Set("digits", fmt.Sprintf("%d", Digits))
	query.Set("period", fmt.Sprintf("%d", Period))

	return fmt.Sprintf("otpauth://totp/%s?%s", label, query.Encode()), nil
}

// SecretFromURI extracts and validates the shared secret embedded in an
// otpauth://totp provisioning URI. The URI round-trips through the caller
// during 2FA enrollment, so the secret is re-validated here rather than
// trusted.
func SecretFromURI(uri string) (string, error) {
	parsed, err := url.Parse(uri)
	if err != nil {
		return "", errors.Join(ErrInvalidURI, err)
	}
	if parsed.Scheme != "otpauth" || parsed.Host != "totp" {
		return "", ErrInvalidURI
	}

	secret := strings.TrimSpace(strings.ToUpper(parsed.Query().Get("secret")))
	if secret == "" {
		return "", ErrMissingSecret
	}
	if !secretKeyRegex.MatchString(secret) {
		return "", ErrInvalidSecret
	}
	return secret, nil
}

// Validate checks a submitted code against the secret for the current time.
func Validate(secret, code string) (bool, error) {
	return ValidateAt(secret, code, time.Now())
}

// ValidateAt checks a submitted code against the secret for the 30-second
// step containing t. Codes from the previous and next step are also accepted
// to absorb clock drift between server and authenticator. Codes of the wrong
// length or containing non-digits are rejected before any HMAC work.
func ValidateAt(secret, code string, t time.Time) (bool, error) {
	code = strings.TrimSpace(code)
	if !codeRegex.MatchString(code) {
		return false, ErrInvalidCode
	}

	key, err := decodeSecret(secret)
	if err != nil {
		return false, err
	}

	counter := t.Unix() / Period
	for i := int64(-1); i <= 1; i++ {
		if hotp(key, counter+i) == code {
			return true, nil
		}
	}
	return false, nil
}

// Generate produces the code for the current 30-second step.
func Generate(secret string) (string, error) {
	return GenerateAt(secret, time.Now())
}

// GenerateAt produces the code for the 30-second step containing t.
func GenerateAt(secret string, t time.Time) (string, error) {
	key, err := decodeSecret(secret)
	if err != nil {
		return "", err
	}
	return hotp(key, t.Unix()/Period), nil
}

func decodeSecret(secret string) ([]byte, error) {
	secret = strings.TrimSpace(strings.ToUpper(secret))
	if !secretKeyRegex.MatchString(secret) {
		return nil, ErrInvalidSecret
	}
	key, err := b32.DecodeString(secret)
	if err != nil {
		return nil, errors.Join(ErrInvalidSecret, err)
	}
	return key, nil
}

// hotp implements the RFC 4226 HMAC-based one-time password algorithm,
// reducing an HMAC-SHA1 of the big-endian counter to a 6-digit code.
func hotp(key []byte, counter int64) string {
	counterBytes := make([]byte, 8)
	for i := 7; i >= 0; i-- {
		counterBytes[i] = byte(counter & 0xff)
		counter >>= 8
	}

	mac := hmac.New(sha1.New, key)
	mac.Write(counterBytes)
	sum := mac.Sum(nil)

	// Dynamic truncation (RFC 4226 §5.3): low 4 bits of the last byte pick
	// the offset, the MSB is cleared to keep the value positive.
	offset := sum[len(sum)-1] & 0x0f
	value := (int(sum[offset]&0x7f) << 24) |
		(int(sum[offset+1]) << 16) |
		(int(sum[offset+2]) << 8) |
		int(sum[offset+3])

	return fmt.Sprintf("%06d", value%int(math.Pow10(Digits)))
}
