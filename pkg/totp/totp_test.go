package totp_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/hearthhq/hearthd/pkg/totp"
)

func TestGenerateSecretKey(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEmpty(t, secret)
	assert.Regexp(t, `^[A-Z2-7]+$`, secret)

	other, err := totp.GenerateSecretKey()
	require.NoError(t, err)
	assert.NotEqual(t, secret, other)
}

func TestURI(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  totp.Params
		want    string
		wantErr error
	}{
		{
			name: "basic URI",
			params: totp.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "satoshi",
				Issuer:      "Hearth",
			},
			want: "otpauth://totp/Hearth:satoshi?algorithm=SHA1&digits=6&issuer=Hearth&period=30&secret=ABCDEFGHIJKLMNOP",
		},
		{
			name: "missing secret",
			params: totp.Params{
				AccountName: "satoshi",
				Issuer:      "Hearth",
			},
			wantErr: totp.ErrMissingSecret,
		},
		{
			name: "lowercase secret rejected",
			params: totp.Params{
				Secret:      "abcdefgh",
				AccountName: "satoshi",
				Issuer:      "Hearth",
			},
			wantErr: totp.ErrInvalidSecret,
		},
		{
			name: "missing account name",
			params: totp.Params{
				Secret: "ABCDEFGHIJKLMNOP",
				Issuer: "Hearth",
			},
			wantErr: totp.ErrMissingAccountName,
		},
		{
			name: "missing issuer",
			params: totp.Params{
				Secret:      "ABCDEFGHIJKLMNOP",
				AccountName: "satoshi",
			},
			wantErr: totp.ErrMissingIssuer,
		},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := totp.URI(tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSecretFromURI(t *testing.T) {
	t.Parallel()

	t.Run("round trip", func(t *testing.T) {
		t.Parallel()
		secret, err := totp.GenerateSecretKey()
		require.NoError(t, err)

		uri, err := totp.URI(totp.Params{Secret: secret, AccountName: "satoshi", Issuer: "Hearth"})
		require.NoError(t, err)

		got, err := totp.SecretFromURI(uri)
		require.NoError(t, err)
		assert.Equal(t, secret, got)
	})

	t.Run("known fixture", func(t *testing.T) {
		t.Parallel()
		uri := "otpauth://totp/Hearth?secret=63AU7PMWJX6EQJR6G3KTQFG5RDZ2UE3WVUMP3VFJWHSWJ7MMHTIQ&period=30&digits=6&algorithm=SHA1&issuer=hearth.local"
		secret, err := totp.SecretFromURI(uri)
		require.NoError(t, err)
		assert.Equal(t, "63AU7PMWJX6EQJR6G3KTQFG5RDZ2UE3WVUMP3VFJWHSWJ7MMHTIQ", secret)
	})

	tests := []struct {
		name string
		uri  string
		err  error
	}{
		{name: "wrong scheme", uri: "https://totp/Hearth?secret=ABCDEFGH", err: totp.ErrInvalidURI},
		{name: "wrong host", uri: "otpauth://hotp/Hearth?secret=ABCDEFGH", err: totp.ErrInvalidURI},
		{name: "no secret", uri: "otpauth://totp/Hearth?issuer=hearth.local", err: totp.ErrMissingSecret},
		{name: "invalid base32 secret", uri: "otpauth://totp/Hearth?secret=not-base32!", err: totp.ErrInvalidSecret},
		{name: "not a URI", uri: "::::", err: totp.ErrInvalidURI},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := totp.SecretFromURI(tt.uri)
			require.ErrorIs(t, err, tt.err)
		})
	}
}

func TestValidateAt(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	now := time.Unix(1700000000, 0)
	code, err := totp.GenerateAt(secret, now)
	require.NoError(t, err)
	require.Regexp(t, `^\d{6}$`, code)

	t.Run("current step accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(secret, code, now)
		require.NoError(t, err)
		assert.True(t, ok)
	})

	t.Run("adjacent steps accepted", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(secret, code, now.Add(30*time.Second))
		require.NoError(t, err)
		assert.True(t, ok, "code from previous step should be accepted")

		ok, err = totp.ValidateAt(secret, code, now.Add(-30*time.Second))
		require.NoError(t, err)
		assert.True(t, ok, "code from next step should be accepted")
	})

	t.Run("outside skew window rejected", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt(secret, code, now.Add(2*time.Minute))
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("wrong secret rejected", func(t *testing.T) {
		t.Parallel()
		other, err := totp.GenerateSecretKey()
		require.NoError(t, err)
		otherCode, err := totp.GenerateAt(other, now)
		require.NoError(t, err)
		if otherCode == code {
			t.Skip("code collision between unrelated secrets")
		}
		ok, err := totp.ValidateAt(secret, otherCode, now)
		require.NoError(t, err)
		assert.False(t, ok)
	})

	t.Run("malformed codes fail fast", func(t *testing.T) {
		t.Parallel()
		for _, bad := range []string{"", "12345", "1234567", "12345a", "abcdef"} {
			ok, err := totp.ValidateAt(secret, bad, now)
			require.ErrorIs(t, err, totp.ErrInvalidCode)
			assert.False(t, ok)
		}
	})

	t.Run("invalid secret", func(t *testing.T) {
		t.Parallel()
		ok, err := totp.ValidateAt("not-base32!", "123456", now)
		require.ErrorIs(t, err, totp.ErrInvalidSecret)
		assert.False(t, ok)
	})
}

func TestGenerate(t *testing.T) {
	t.Parallel()

	secret, err := totp.GenerateSecretKey()
	require.NoError(t, err)

	code, err := totp.Generate(secret)
	require.NoError(t, err)
	assert.Regexp(t, `^\d{6}$`, code)

	ok, err := totp.Validate(secret, code)
	require.NoError(t, err)
	assert.True(t, ok)
}
