package catalog

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// ListInput is the raw listing request. Zero values select the defaults:
// all genres, popular first, 50 per page.
type ListInput struct {
	Search       string
	Genre        string
	VerifiedOnly bool
	Sort         string
	Limit        int
	Offset       int
}

// Validate checks the values that cannot be defaulted.
func (i ListInput) Validate() error {
	var errs []domain.FieldError

	if i.Sort != "" && !domain.GameSort(i.Sort).IsValid() {
		errs = append(errs, domain.FieldError{Field: "sort", Message: "must be one of: popular safety rated newest"})
	}
	if i.Limit < 0 {
		errs = append(errs, domain.FieldError{Field: "limit", Message: "must not be negative"})
	}
	if i.Offset < 0 {
		errs = append(errs, domain.FieldError{Field: "offset", Message: "must not be negative"})
	}

	if len(errs) > 0 {
		return domain.NewValidationErrors(errs)
	}
	return nil
}

func (i ListInput) filter() domain.GameFilter {
	genre := strings.TrimSpace(i.Genre)
	if genre == domain.AllGenres {
		genre = ""
	}
	return domain.GameFilter{
		Search:       strings.TrimSpace(i.Search),
		Genre:        genre,
		VerifiedOnly: i.VerifiedOnly,
		Sort:         domain.GameSort(i.Sort),
		Limit:        i.Limit,
		Offset:       i.Offset,
	}
}

// List returns approved games matching the input.
func (s *Service) List(ctx context.Context, in ListInput) ([]domain.GameWithStats, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}

	games, err := s.games.List(ctx, in.filter())
	if err != nil {
		return nil, fmt.Errorf("catalog.List: %w", err)
	}
	return games, nil
}

// Search is List with only a text query.
func (s *Service) Search(ctx context.Context, query string, limit int) ([]domain.GameWithStats, error) {
	return s.List(ctx, ListInput{Search: query, Limit: limit})
}

// ByGenre is List restricted to one genre.
func (s *Service) ByGenre(ctx context.Context, genre string, limit int) ([]domain.GameWithStats, error) {
	return s.List(ctx, ListInput{Genre: genre, Limit: limit})
}

// Featured returns verified games with a high safety score, best rated first.
func (s *Service) Featured(ctx context.Context) ([]domain.GameWithStats, error) {
	games, err := s.games.Featured(ctx, FeaturedMinSafetyScore, FeaturedLimit)
	if err != nil {
		return nil, fmt.Errorf("catalog.Featured: %w", err)
	}
	return games, nil
}

// Get returns one game in any moderation status. Callers that expose it
// publicly check Status themselves.
func (s *Service) Get(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error) {
	g, err := s.games.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("catalog.Get: %w", err)
	}
	return g, nil
}

// GetByRobloxID returns the game with the given Roblox place id in any
// moderation status, so pending submissions count as already listed.
func (s *Service) GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error) {
	robloxID = strings.TrimSpace(robloxID)
	if robloxID == "" {
		return nil, domain.NewValidationError("roblox_id", "required")
	}

	g, err := s.games.GetByRobloxID(ctx, robloxID)
	if err != nil {
		return nil, fmt.Errorf("catalog.GetByRobloxID: %w", err)
	}
	return g, nil
}

// Genres returns "All Genres" followed by the sorted distinct genres in use.
func (s *Service) Genres(ctx context.Context) ([]string, error) {
	genres, err := s.games.Genres(ctx)
	if err != nil {
		return nil, fmt.Errorf("catalog.Genres: %w", err)
	}

	genres = lo.Uniq(lo.Filter(genres, func(g string, _ int) bool {
		return g != "" && g != domain.AllGenres
	}))
	sort.Strings(genres)

	return append([]string{domain.AllGenres}, genres...), nil
}

// Reviews returns the reviews of a game, newest first.
func (s *Service) Reviews(ctx context.Context, gameID uuid.UUID) ([]domain.Review, error) {
	reviews, err := s.reviews.ListByGame(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("catalog.Reviews: %w", err)
	}
	return reviews, nil
}

// UserRating returns the caller's rating of a game, or nil when there is none.
func (s *Service) UserRating(ctx context.Context, accountID, gameID uuid.UUID) (*domain.Rating, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	r, err := s.ratings.GetByAccount(ctx, accountID, gameID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("catalog.UserRating: %w", err)
	}
	return r, nil
}

// UserVote returns the caller's vote on a review, or nil when there is none.
func (s *Service) UserVote(ctx context.Context, accountID, reviewID uuid.UUID) (*domain.ReviewVote, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	v, err := s.reviews.GetVote(ctx, accountID, reviewID)
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return nil, nil
	case err != nil:
		return nil, fmt.Errorf("catalog.UserVote: %w", err)
	}
	return v, nil
}

// UserSubmissions returns the caller's submissions, newest first.
func (s *Service) UserSubmissions(ctx context.Context, accountID uuid.UUID) ([]domain.Submission, error) {
	if accountID == uuid.Nil {
		return nil, domain.ErrUnauthorized
	}

	subs, err := s.submissions.ListBySubmitter(ctx, accountID)
	if err != nil {
		return nil, fmt.Errorf("catalog.UserSubmissions: %w", err)
	}
	return subs, nil
}
