package domain

import (
	"time"

	"github.com/google/uuid"
)

// Game is a reviewable catalog entry.
type Game struct {
	ID           uuid.UUID
	RobloxID     string
	Title        string
	Developer    string
	Description  string
	ThumbnailURL *string
	RobloxURL    string
	Genre        *string
	AgeRating    string
	Verified     bool
	Status       ModerationStatus
	TotalPlays   string
	SubmittedBy  *uuid.UUID
	ApprovedBy   *uuid.UUID
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// DefaultAgeRating applies when a game is created without one.
const DefaultAgeRating = "7+"

// GameStats is the aggregate the store maintains over a game's ratings.
type GameStats struct {
	AvgHonesty        float64
	AvgSafety         float64
	AvgFairness       float64
	AvgAgeAppropriate float64
	AvgOverall        float64
	RatingCount       int
	SafetyScore       int
}

// GameWithStats is a catalog listing row.
type GameWithStats struct {
	Game
	Stats GameStats
}

// GameFilter selects catalog listings. Only approved games are ever returned.
type GameFilter struct {
	Search       string
	Genre        string
	VerifiedOnly bool
	Sort         GameSort
	Limit        int
	Offset       int
}

// GameMetadataUpdate carries fields refreshed from the external catalog.
type GameMetadataUpdate struct {
	ThumbnailURL *string
	TotalPlays   *string
}
