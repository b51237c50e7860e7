package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// uniqueRobloxID returns a numeric id that does not collide across parallel tests.
func uniqueRobloxID() string {
	return "9" + randomDigits(12)
}

func randomDigits(n int) string {
	u := uuid.New()
	digits := make([]byte, n)
	for i := range digits {
		digits[i] = '0' + u[i]%10
	}
	return string(digits)
}

// SeedAccount creates a Google-backed account with the user role and no Roblox link.
func SeedAccount(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, domain.RoleUser)
}

// SeedAdmin creates an account with the admin role.
func SeedAdmin(t *testing.T, pool *pgxpool.Pool) domain.Account {
	t.Helper()
	return seedAccount(t, pool, domain.RoleAdmin)
}

func seedAccount(t *testing.T, pool *pgxpool.Pool, role domain.Role) domain.Account {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	username := "user_" + suffix
	acc := domain.Account{
		ID:          uuid.New(),
		Email:       "testuser-" + suffix + "@example.com",
		Username:    &username,
		DisplayName: "Test User " + suffix,
		Provider:    domain.AuthProviderGoogle,
		ProviderID:  "google-" + suffix,
		Role:        role,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO accounts (id, email, username, display_name, provider, provider_id, role, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		acc.ID, acc.Email, acc.Username, acc.DisplayName, string(acc.Provider), acc.ProviderID, string(acc.Role), acc.CreatedAt, acc.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedAccount: %v", err)
	}

	return acc
}

// SeedGame creates a game with the given moderation status.
func SeedGame(t *testing.T, pool *pgxpool.Pool, status domain.ModerationStatus) domain.Game {
	t.Helper()
	return SeedGameWith(t, pool, func(g *domain.Game) { g.Status = status })
}

// SeedGameWith creates an approved game after applying mutate to the defaults.
func SeedGameWith(t *testing.T, pool *pgxpool.Pool, mutate func(*domain.Game)) domain.Game {
	t.Helper()
	ctx := context.Background()

	suffix := uniqueSuffix()
	now := time.Now().UTC().Truncate(time.Microsecond)
	robloxID := uniqueRobloxID()
	g := domain.Game{
		ID:          uuid.New(),
		RobloxID:    robloxID,
		Title:       "Test Game " + suffix,
		Developer:   "Studio " + suffix,
		Description: "A game seeded for tests",
		RobloxURL:   "https://www.roblox.com/games/" + robloxID,
		AgeRating:   domain.DefaultAgeRating,
		Status:      domain.StatusApproved,
		TotalPlays:  "0",
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if mutate != nil {
		mutate(&g)
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO games (id, roblox_id, title, developer, description, thumbnail_url, roblox_url, genre,
		                    age_rating, verified, status, total_plays, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)`,
		g.ID, g.RobloxID, g.Title, g.Developer, g.Description, g.ThumbnailURL, g.RobloxURL, g.Genre,
		g.AgeRating, g.Verified, string(g.Status), g.TotalPlays, g.CreatedAt, g.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedGame: %v", err)
	}

	return g
}

// SeedRating stores one rating with the same score on every axis.
func SeedRating(t *testing.T, pool *pgxpool.Pool, gameID, accountID uuid.UUID, score int) domain.Rating {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	r := domain.Rating{
		ID:             uuid.New(),
		GameID:         gameID,
		AccountID:      accountID,
		Honesty:        score,
		Safety:         score,
		Fairness:       score,
		AgeAppropriate: score,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO game_ratings (id, game_id, user_id, honesty, safety, fairness, age_appropriate, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		r.ID, r.GameID, r.AccountID, r.Honesty, r.Safety, r.Fairness, r.AgeAppropriate, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedRating: %v", err)
	}

	return r
}

// SeedReview attaches a review to an existing rating.
func SeedReview(t *testing.T, pool *pgxpool.Pool, rating domain.Rating, content string) domain.Review {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	rv := domain.Review{
		ID:        uuid.New(),
		GameID:    rating.GameID,
		AccountID: rating.AccountID,
		RatingID:  rating.ID,
		Content:   content,
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO game_reviews (id, game_id, user_id, rating_id, content, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		rv.ID, rv.GameID, rv.AccountID, rv.RatingID, rv.Content, rv.CreatedAt, rv.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedReview: %v", err)
	}

	return rv
}

// SeedSubmission creates a pending submission for a fresh roblox id.
func SeedSubmission(t *testing.T, pool *pgxpool.Pool, submitterID uuid.UUID) domain.Submission {
	t.Helper()
	ctx := context.Background()

	now := time.Now().UTC().Truncate(time.Microsecond)
	robloxID := uniqueRobloxID()
	title := "Submitted Game " + uniqueSuffix()
	s := domain.Submission{
		ID:          uuid.New(),
		RobloxURL:   "https://www.roblox.com/games/" + robloxID,
		RobloxID:    robloxID,
		Title:       &title,
		SubmitterID: submitterID,
		Status:      domain.StatusPending,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(ctx,
		`INSERT INTO game_submissions (id, roblox_url, roblox_id, title, submitter_id, status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		s.ID, s.RobloxURL, s.RobloxID, s.Title, s.SubmitterID, string(s.Status), s.CreatedAt, s.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedSubmission: %v", err)
	}

	return s
}
