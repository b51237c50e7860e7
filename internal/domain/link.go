package domain

import (
	"time"

	"github.com/google/uuid"
)

// VerificationPhrase is the text a claimant publishes in their Roblox profile
// description to prove control of the account.
const VerificationPhrase = "I am verifying my Rotection account"

// LinkChallenge is a pending manual verification for one account.
type LinkChallenge struct {
	AccountID      uuid.UUID `json:"account_id"`
	RobloxUserID   int64     `json:"roblox_user_id"`
	RobloxUsername string    `json:"roblox_username"`
	Phrase         string    `json:"phrase"`
	CreatedAt      time.Time `json:"created_at"`
}
