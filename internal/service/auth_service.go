package service

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/medikit/dispenser-backend/internal/config"
	"golang.org/x/crypto/bcrypt"
)

// ErrInvalidCredentials is returned when a password check fails.
var ErrInvalidCredentials = errors.New("invalid credentials")

// Hasher is the one-way password capability. Hash salts per call, so two
// hashes of the same plaintext differ; CheckPassword is a boolean gate
// that returns ErrInvalidCredentials on mismatch and never panics.
type Hasher interface {
	HashPassword(password string) (string, error)
	CheckPassword(hash, password string) error
}

// TokenService issues and verifies session tokens. ValidateToken is a pure
// cryptographic check: it never touches the credential store.
type TokenService interface {
	GenerateToken(adminID int) (string, error)
	ValidateToken(tokenStr string) (*Claims, error)
}

// Claims extends JWT standard claims with the administrator id. The token
// carries only the numeric id — least privilege for downstream handlers.
type Claims struct {
	jwt.RegisteredClaims
	AdminID int `json:"admin_id"`
}

// AuthService implements Hasher and TokenService over bcrypt and HS256 JWTs.
type AuthService struct {
	secret []byte
	expiry time.Duration
	cost   int
	now    func() time.Time
}

// NewAuthService creates a new AuthService from configuration.
func NewAuthService(cfg *config.Config) *AuthService {
	return &AuthService{
		secret: []byte(cfg.JWTSecret),
		expiry: cfg.JWTExpiry,
		cost:   cfg.BcryptCost,
		now:    time.Now,
	}
}

// HashPassword hashes a password with the configured bcrypt cost.
func (s *AuthService) HashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	return string(hash), err
}

// CheckPassword compares a plaintext password against a bcrypt hash.
func (s *AuthService) CheckPassword(hash, password string) error {
	if err := bcrypt.CompareHashAndPassword([]byte(hash), []byte(password)); err != nil {
		return ErrInvalidCredentials
	}
	return nil
}

// GenerateToken creates a signed JWT bound to an administrator id.
func (s *AuthService) GenerateToken(adminID int) (string, error) {
	now := s.now()

	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.New().String(),
			Subject:   strconv.Itoa(adminID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
		},
		AdminID: adminID,
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(s.secret)
}

// ValidateToken parses and validates a JWT, returning the claims. Malformed,
// tampered and expired tokens all come back as an error; the caller maps
// every failure to the same Unauthorized response.
func (s *AuthService) ValidateToken(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithTimeFunc(func() time.Time { return s.now() }))
	if err != nil {
		return nil, fmt.Errorf("parse token: %w", err)
	}

	claims, ok := token.Claims.(*Claims)
	if !ok || !token.Valid {
		return nil, errors.New("invalid token claims")
	}

	return claims, nil
}
