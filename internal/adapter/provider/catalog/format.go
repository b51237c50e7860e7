package catalog

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/heartmarshall/rotection-backend/internal/domain"
)

// genreRule maps name keywords to a genre. Rules are checked in order.
type genreRule struct {
	genre    string
	keywords []string
}

var genreRules = []genreRule{
	{"Simulator", []string{"simulator", "sim"}},
	{"Tycoon", []string{"tycoon"}},
	{"Obby", []string{"obby", "obstacle"}},
	{"Roleplay", []string{"roleplay", "rp"}},
	{"Horror", []string{"horror", "scary"}},
	{"Racing", []string{"racing", "car"}},
	{"Fighting", []string{"fighting", "battle"}},
	{"Adventure", []string{"adventure"}},
	{"Puzzle", []string{"puzzle"}},
	{"Strategy", []string{"strategy"}},
}

var (
	matureKeywords = []string{"blood", "violence", "weapon", "gun", "war", "death", "kill"}
	teenKeywords   = []string{"dating", "romance", "chat", "social", "competitive"}
)

const maxDescriptionLen = 500

var excessNewlinesRe = regexp.MustCompile(`\n{3,}`)

// InferGenre guesses a genre from a game name by substring match.
// Names without a known keyword get domain.AllGenres.
func InferGenre(name string) string {
	lower := strings.ToLower(name)
	for _, rule := range genreRules {
		if containsAny(lower, rule.keywords) {
			return rule.genre
		}
	}
	return domain.AllGenres
}

// AgeRating estimates the audience of a game from its name and description.
func AgeRating(name, description string) string {
	text := strings.ToLower(name) + "\n" + strings.ToLower(description)
	switch {
	case containsAny(text, matureKeywords):
		return "13+"
	case containsAny(text, teenKeywords):
		return "9+"
	default:
		return "5+"
	}
}

// FormatDescription collapses runs of blank lines and truncates to 500 characters.
func FormatDescription(description string) string {
	cleaned := strings.TrimSpace(excessNewlinesRe.ReplaceAllString(description, "\n\n"))

	runes := []rune(cleaned)
	if len(runes) > maxDescriptionLen {
		return string(runes[:maxDescriptionLen-3]) + "..."
	}
	return cleaned
}

// FormatVisitCount renders a visit count as 1.2K+, 3.4M+ or 5.6B+.
func FormatVisitCount(visits int64) string {
	switch {
	case visits >= 1_000_000_000:
		return strconv.FormatFloat(float64(visits)/1_000_000_000, 'f', 1, 64) + "B+"
	case visits >= 1_000_000:
		return strconv.FormatFloat(float64(visits)/1_000_000, 'f', 1, 64) + "M+"
	case visits >= 1_000:
		return strconv.FormatFloat(float64(visits)/1_000, 'f', 1, 64) + "K+"
	default:
		return strconv.FormatInt(visits, 10)
	}
}

func containsAny(s string, keywords []string) bool {
	return lo.ContainsBy(keywords, func(k string) bool { return strings.Contains(s, k) })
}
