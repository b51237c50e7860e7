package catalog

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

// MsgInvalidURL is returned for URLs without a Roblox place id.
const MsgInvalidURL = "Please provide a valid Roblox game URL."

// LookupResult previews a game before it is submitted.
type LookupResult struct {
	provider.GameLookup
	// Listed is the approved catalog entry for the same place, if any.
	Listed *domain.GameWithStats
}

// Lookup fetches metadata and a thumbnail for a Roblox game URL. Missing
// metadata is not an error.
func (s *Service) Lookup(ctx context.Context, rawURL string) (*LookupResult, error) {
	rawURL = strings.TrimSpace(rawURL)
	id, ok := s.lookup.Identify(rawURL)
	if !ok {
		return nil, domain.NewUserError(domain.ErrValidation, MsgInvalidURL)
	}

	res := &LookupResult{GameLookup: s.lookup.Lookup(ctx, rawURL)}

	listed, err := s.games.GetByRobloxID(ctx, id)
	switch {
	case err == nil:
		res.Listed = listed
	case errors.Is(err, domain.ErrNotFound):
	default:
		return nil, fmt.Errorf("catalog.Lookup: %w", err)
	}

	return res, nil
}
