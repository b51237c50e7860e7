// Package provider holds the results returned by external API adapters, so
// services can depend on them without importing the adapters.
package provider

import (
	"fmt"
	"strconv"
	"time"
)

// OAuthToken is an access/refresh pair issued by an identity provider.
type OAuthToken struct {
	AccessToken  string
	RefreshToken string
	TokenType    string
	IDToken      string
	Scope        string
	Expiry       time.Time
}

// RobloxProfile is the OpenID userinfo of a Roblox user.
type RobloxProfile struct {
	Sub               string `json:"sub"`
	Name              string `json:"name"`
	Nickname          string `json:"nickname"`
	PreferredUsername string `json:"preferred_username"`
	Picture           string `json:"picture"`
	ProfileURL        string `json:"profile"`
	CreatedAt         int64  `json:"created_at"`
}

// UserID parses the numeric Roblox id from the subject claim.
func (p *RobloxProfile) UserID() (int64, error) {
	id, err := strconv.ParseInt(p.Sub, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid subject %q: %w", p.Sub, err)
	}
	return id, nil
}

// Username is the account name shown on Roblox.
func (p *RobloxProfile) Username() string {
	if p.PreferredUsername != "" {
		return p.PreferredUsername
	}
	return p.Name
}

// RobloxUser is the public view of a Roblox account.
type RobloxUser struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	DisplayName string `json:"displayName"`
	Description string `json:"description"`
	IsBanned    bool   `json:"isBanned"`
}

// GameMetadata is the descriptive data of a game as published by Roblox.
type GameMetadata struct {
	PlaceID     string
	UniverseID  string
	Name        string
	Description string
	Creator     string
	Genre       string
	Visits      int64
	Playing     int64
	MaxPlayers  int64
	Favorites   int64
}

// GameLookup is the outcome of a catalog lookup. Metadata is nil when it could
// not be fetched; Thumbnail is always set once an id was extracted.
type GameLookup struct {
	ID        string
	Metadata  *GameMetadata
	Thumbnail string
}

// Found reports whether the URL carried a recognizable id.
func (r GameLookup) Found() bool { return r.ID != "" }
