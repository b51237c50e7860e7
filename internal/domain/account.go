package domain

import (
	"time"

	"github.com/google/uuid"
)

// Account is a local user record.
// A Roblox identity is linked when both RobloxUserID and RobloxUsername are set.
type Account struct {
	ID             uuid.UUID
	Email          string
	Username       *string
	DisplayName    string
	AvatarURL      *string
	Provider       AuthProvider
	ProviderID     string
	Role           Role
	RobloxUserID   *int64
	RobloxUsername *string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// IsLinked reports whether a Roblox identity is attached to the account.
func (a *Account) IsLinked() bool {
	return a.RobloxUserID != nil
}

// RobloxLink is a verified external identity to merge onto an Account.
type RobloxLink struct {
	UserID   int64
	Username string
}

// RefreshToken represents a hashed refresh token stored in the database.
type RefreshToken struct {
	ID        uuid.UUID
	AccountID uuid.UUID
	TokenHash string
	ExpiresAt time.Time
	CreatedAt time.Time
	RevokedAt *time.Time
}

// IsRevoked returns true if the token has been revoked.
func (t *RefreshToken) IsRevoked() bool {
	return t.RevokedAt != nil
}

// IsExpired returns true if the token has expired relative to now.
func (t *RefreshToken) IsExpired(now time.Time) bool {
	return t.ExpiresAt.Before(now)
}
