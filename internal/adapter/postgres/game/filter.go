package game

import (
	"strings"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

const (
	defaultLimit = 50
	maxLimit     = 200
)

// normalize applies defaults and clamps paging values.
func normalize(f domain.GameFilter) domain.GameFilter {
	if f.Limit <= 0 {
		f.Limit = defaultLimit
	}
	if f.Limit > maxLimit {
		f.Limit = maxLimit
	}
	if f.Offset < 0 {
		f.Offset = 0
	}
	if !f.Sort.IsValid() {
		f.Sort = domain.SortPopular
	}
	return f
}

// orderBy maps a sort key to ORDER BY terms. id breaks ties so paging is stable.
func orderBy(sort domain.GameSort) []string {
	switch sort {
	case domain.SortSafety:
		return []string{"safety_score DESC", "id"}
	case domain.SortRated:
		return []string{"avg_overall_rating DESC", "id"}
	case domain.SortNewest:
		return []string{"created_at DESC", "id"}
	default:
		return []string{"rating_count DESC", "id"}
	}
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// escapeLike neutralizes LIKE wildcards in user input.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}
