package service

import (
	"testing"
	"time"

	"github.com/medikit/dispenser-backend/internal/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		JWTSecret:  "test-secret-that-is-long-enough",
		JWTExpiry:  time.Hour,
		BcryptCost: 4, // minimum cost to keep tests fast
	}
}

func TestHashPassword(t *testing.T) {
	svc := NewAuthService(testConfig())

	hash, err := svc.HashPassword("segredo123")
	require.NoError(t, err)
	require.NotEmpty(t, hash)
	assert.NotEqual(t, "segredo123", hash)

	t.Run("round trip verifies", func(t *testing.T) {
		assert.NoError(t, svc.CheckPassword(hash, "segredo123"))
	})

	t.Run("wrong password fails", func(t *testing.T) {
		err := svc.CheckPassword(hash, "segredo124")
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("per-call salt makes hashes differ", func(t *testing.T) {
		other, err := svc.HashPassword("segredo123")
		require.NoError(t, err)
		assert.NotEqual(t, hash, other)
		assert.NoError(t, svc.CheckPassword(other, "segredo123"))
	})
}

func TestCheckPasswordGarbageHash(t *testing.T) {
	svc := NewAuthService(testConfig())

	// A corrupt digest is a mismatch, not a panic.
	assert.ErrorIs(t, svc.CheckPassword("not-a-bcrypt-hash", "x"), ErrInvalidCredentials)
}

func TestGenerateToken(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	svc := NewAuthService(testConfig())
	svc.now = func() time.Time { return fixedTime }

	token, err := svc.GenerateToken(42)
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := svc.ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, 42, claims.AdminID)
	assert.Equal(t, "42", claims.Subject)
	assert.Equal(t, fixedTime.Unix(), claims.IssuedAt.Unix())
	assert.Equal(t, fixedTime.Add(time.Hour).Unix(), claims.ExpiresAt.Unix())
	assert.NotEmpty(t, claims.ID)
}

func TestValidateToken(t *testing.T) {
	fixedTime := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	newService := func(secret string, at time.Time) *AuthService {
		cfg := testConfig()
		cfg.JWTSecret = secret
		svc := NewAuthService(cfg)
		svc.now = func() time.Time { return at }
		return svc
	}

	tests := []struct {
		name    string
		token   func() (*AuthService, string)
		wantErr bool
	}{
		{
			name: "valid token",
			token: func() (*AuthService, string) {
				svc := newService("secret-a", fixedTime)
				token, _ := svc.GenerateToken(7)
				return svc, token
			},
		},
		{
			name: "expired token",
			token: func() (*AuthService, string) {
				gen := newService("secret-a", fixedTime)
				token, _ := gen.GenerateToken(7)
				val := newService("secret-a", fixedTime.Add(2*time.Hour))
				return val, token
			},
			wantErr: true,
		},
		{
			name: "wrong secret",
			token: func() (*AuthService, string) {
				gen := newService("secret-a", fixedTime)
				token, _ := gen.GenerateToken(7)
				val := newService("secret-b", fixedTime)
				return val, token
			},
			wantErr: true,
		},
		{
			name: "tampered token",
			token: func() (*AuthService, string) {
				svc := newService("secret-a", fixedTime)
				token, _ := svc.GenerateToken(7)
				return svc, token + "xx"
			},
			wantErr: true,
		},
		{
			name: "malformed token",
			token: func() (*AuthService, string) {
				return newService("secret-a", fixedTime), "not.a.jwt"
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, token := tt.token()
			claims, err := svc.ValidateToken(token)
			if tt.wantErr {
				assert.Error(t, err)
				assert.Nil(t, claims)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, 7, claims.AdminID)
		})
	}
}
