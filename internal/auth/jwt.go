package auth

import (
	"crypto/rand"
	"crypto/sha256"
	"encoding/base64"
	"encoding/hex"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// ErrTokenEmpty is returned when an empty string is presented as an access token.
var ErrTokenEmpty = errors.New("token is empty")

// JWTManager signs and validates session access tokens and produces opaque
// refresh tokens.
type JWTManager struct {
	secret    []byte
	issuer    string
	accessTTL time.Duration
	now       func() time.Time
}

// NewJWTManager creates a new JWT manager.
// secret must be at least 32 characters for HS256.
func NewJWTManager(secret string, issuer string, accessTTL time.Duration) *JWTManager {
	return &JWTManager{
		secret:    []byte(secret),
		issuer:    issuer,
		accessTTL: accessTTL,
		now:       time.Now,
	}
}

// sessionClaims carries the account role next to the registered claims.
// Linked Roblox identity is never put into the token: it changes while a
// session is alive and is always read from the account row.
type sessionClaims struct {
	jwt.RegisteredClaims
	Role domain.Role `json:"role,omitempty"`
}

// GenerateAccessToken creates a signed HS256 JWT with the account ID as subject.
func (m *JWTManager) GenerateAccessToken(accountID uuid.UUID, role domain.Role) (string, error) {
	now := m.now()
	claims := sessionClaims{
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Subject:   accountID.String(),
			Issuer:    m.issuer,
			ExpiresAt: jwt.NewNumericDate(now.Add(m.accessTTL)),
			IssuedAt:  jwt.NewNumericDate(now),
		},
		Role: role,
	}

	signed, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return "", fmt.Errorf("sign token: %w", err)
	}
	return signed, nil
}

// ValidateAccessToken parses a session token and returns the account ID and role.
// Tokens without a known role are treated as regular users.
func (m *JWTManager) ValidateAccessToken(tokenString string) (uuid.UUID, domain.Role, error) {
	if tokenString == "" {
		return uuid.Nil, "", ErrTokenEmpty
	}

	claims := &sessionClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(token *jwt.Token) (any, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return m.secret, nil
	},
		jwt.WithIssuer(m.issuer),
		jwt.WithExpirationRequired(),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("parse token: %w", err)
	}
	if !token.Valid {
		return uuid.Nil, "", fmt.Errorf("invalid token claims")
	}

	accountID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, "", fmt.Errorf("invalid subject UUID: %w", err)
	}

	role := claims.Role
	if !role.IsValid() {
		role = domain.RoleUser
	}
	return accountID, role, nil
}

// GenerateRefreshToken returns a random refresh token and the SHA-256 hash
// that gets persisted in its place.
func (m *JWTManager) GenerateRefreshToken() (raw string, hash string, err error) {
	b := make([]byte, 32)
	if _, err := rand.Read(b); err != nil {
		return "", "", fmt.Errorf("generate random bytes: %w", err)
	}

	raw = base64.RawURLEncoding.EncodeToString(b)
	return raw, HashToken(raw), nil
}

// HashToken computes the hex SHA-256 of a token.
func HashToken(raw string) string {
	h := sha256.Sum256([]byte(raw))
	return hex.EncodeToString(h[:])
}

// RandomString returns n random bytes encoded as URL-safe base64. It backs
// OAuth state values and verification nonces.
func RandomString(n int) (string, error) {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", fmt.Errorf("generate random bytes: %w", err)
	}
	return base64.RawURLEncoding.EncodeToString(b), nil
}
