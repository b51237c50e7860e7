package catalog

import (
	"regexp"
	"strings"
)

var (
	gamePathRe  = regexp.MustCompile(`games/(\d+)`)
	placeIDRe   = regexp.MustCompile(`PlaceId=(\d+)`)
	numericRe   = regexp.MustCompile(`^\d+$`)
	slugDropRe  = regexp.MustCompile(`[^a-z0-9\s-]`)
	slugSpaceRe = regexp.MustCompile(`\s+`)
	slugDashRe  = regexp.MustCompile(`-+`)
)

const gameURLBase = "https://www.roblox.com/games/"

// ExtractIdentifier pulls the numeric place id out of a Roblox game URL.
// Supported shapes:
//
//	https://www.roblox.com/games/123456789/game-name
//	roblox.com/games/123456789
//	https://www.roblox.com/games/refer?PlaceId=123456789
//
// Any other string reports false.
func ExtractIdentifier(rawURL string) (string, bool) {
	if m := gamePathRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}
	if m := placeIDRe.FindStringSubmatch(rawURL); m != nil {
		return m[1], true
	}
	return "", false
}

// IsValidURL reports whether a numeric identifier can be extracted from rawURL.
func IsValidURL(rawURL string) bool {
	id, ok := ExtractIdentifier(rawURL)
	return ok && numericRe.MatchString(id)
}

// GameURL builds the canonical game page URL, with a slug when name is set.
func GameURL(id, name string) string {
	if name == "" {
		return gameURLBase + id
	}

	slug := slugDropRe.ReplaceAllString(strings.ToLower(name), "")
	slug = slugSpaceRe.ReplaceAllString(slug, "-")
	slug = slugDashRe.ReplaceAllString(slug, "-")
	slug = strings.Trim(slug, "-")

	return gameURLBase + id + "/" + slug
}
