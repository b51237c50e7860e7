package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

const (
	defaultGamesURL      = "https://games.roblox.com"
	defaultThumbnailsURL = "https://thumbnails.roblox.com"

	unknownGame    = "Unknown Game"
	unknownCreator = "Unknown Creator"
)

// Endpoint labels used in logs and failure counters.
const (
	EndpointPlaceDetails   = "place_details"
	EndpointGames          = "games"
	EndpointGameIcons      = "game_icons"
	EndpointPlaceGameIcons = "place_game_icons"
)

// FailureCounter records failed catalog requests per endpoint.
type FailureCounter interface {
	CatalogFetchFailed(endpoint string)
}

// Client reads game metadata and thumbnails from the public Roblox APIs.
// Every method degrades to "no data" instead of failing.
type Client struct {
	gamesURL      string
	thumbnailsURL string
	proxyPrefix   string
	thumbnailSize string
	httpClient    *http.Client
	failures      FailureCounter
	log           *slog.Logger
}

// NewClient creates a catalog client. failures may be nil.
func NewClient(cfg config.CatalogConfig, failures FailureCounter, logger *slog.Logger) *Client {
	return &Client{
		gamesURL:      defaultGamesURL,
		thumbnailsURL: defaultThumbnailsURL,
		proxyPrefix:   cfg.ProxyPrefix,
		thumbnailSize: cfg.ThumbnailSize,
		httpClient:    &http.Client{Timeout: cfg.Timeout},
		failures:      failures,
		log:           logger.With("adapter", "roblox_catalog"),
	}
}

// FetchMetadata resolves the universe of a place and fetches its details.
// Any failure is logged and reported as nil, nil so callers proceed without
// enrichment.
func (c *Client) FetchMetadata(ctx context.Context, placeID string) (*provider.GameMetadata, error) {
	body, err := c.get(ctx, EndpointPlaceDetails, c.gamesURL+"/v1/games/multiget-place-details?placeIds="+url.QueryEscape(placeID))
	if err != nil {
		return nil, nil
	}

	place := gjson.GetBytes(body, "0")
	universeID := place.Get("universeId").String()
	if !place.Exists() || universeID == "" || universeID == "0" {
		c.fail(ctx, EndpointPlaceDetails, errors.New("no place data"))
		return nil, nil
	}

	body, err = c.get(ctx, EndpointGames, c.gamesURL+"/v1/games?universeIds="+url.QueryEscape(universeID))
	if err != nil {
		return nil, nil
	}

	game := gjson.GetBytes(body, "data.0")
	if !game.Exists() {
		c.fail(ctx, EndpointGames, errors.New("no game data"))
		return nil, nil
	}

	meta := &provider.GameMetadata{
		PlaceID:     placeID,
		UniverseID:  universeID,
		Name:        coalesce(game.Get("name").String(), place.Get("name").String(), unknownGame),
		Description: coalesce(game.Get("description").String(), place.Get("description").String()),
		Creator:     coalesce(game.Get("creator.name").String(), builderName(place), unknownCreator),
		Visits:      coalesce(game.Get("visits").Int(), place.Get("placeVisits").Int()),
		Playing:     game.Get("playing").Int(),
		MaxPlayers:  coalesce(game.Get("maxPlayers").Int(), place.Get("maxPlayers").Int()),
		Favorites:   game.Get("favoritedCount").Int(),
	}

	meta.Genre = game.Get("genre").String()
	if meta.Genre == "" || meta.Genre == "All" {
		meta.Genre = InferGenre(meta.Name)
	}

	c.log.DebugContext(ctx, "catalog metadata fetched",
		slog.String("place_id", placeID),
		slog.String("universe_id", universeID),
		slog.String("name", meta.Name),
	)
	return meta, nil
}

// FetchThumbnail returns an icon URL for the given id. It tries the universe
// icon endpoint, then the place icon endpoint, then falls back to a placeholder.
// An empty size uses the configured default.
func (c *Client) FetchThumbnail(ctx context.Context, id, size string) string {
	if size == "" {
		size = c.thumbnailSize
	}
	params := url.Values{}
	params.Set("returnPolicy", "PlaceHolder")
	params.Set("size", size)
	params.Set("format", "Png")
	params.Set("isCircular", "false")
	query := "&" + params.Encode()

	if u, ok := c.imageURL(ctx, EndpointGameIcons, c.thumbnailsURL+"/v1/games/icons?universeIds="+url.QueryEscape(id)+query); ok {
		return u
	}
	if u, ok := c.imageURL(ctx, EndpointPlaceGameIcons, c.thumbnailsURL+"/v1/places/gameicons?placeIds="+url.QueryEscape(id)+query); ok {
		return u
	}
	return PlaceholderURL(size)
}

// Lookup extracts the id from rawURL and fetches metadata and thumbnail
// concurrently. The two fetches are independent: one failing never cancels
// the other. An unrecognized URL returns an empty result.
func (c *Client) Lookup(ctx context.Context, rawURL string) provider.GameLookup {
	id, ok := ExtractIdentifier(rawURL)
	if !ok {
		return provider.GameLookup{}
	}

	res := provider.GameLookup{ID: id}

	var g errgroup.Group
	g.Go(func() error {
		res.Metadata, _ = c.FetchMetadata(ctx, id)
		return nil
	})
	g.Go(func() error {
		res.Thumbnail = c.FetchThumbnail(ctx, id, "")
		return nil
	})
	_ = g.Wait()

	if res.Metadata != nil {
		res.Metadata.Description = FormatDescription(res.Metadata.Description)
	}
	return res
}

// Identify returns the place id of a Roblox game URL without any network call.
func (c *Client) Identify(rawURL string) (string, bool) {
	if !IsValidURL(rawURL) {
		return "", false
	}
	return ExtractIdentifier(rawURL)
}

// EstimateAgeRating applies the keyword heuristic of AgeRating.
func (c *Client) EstimateAgeRating(name, description string) string {
	return AgeRating(name, description)
}

// PlaceholderURL is the image used when no thumbnail could be resolved.
func PlaceholderURL(size string) string {
	return fmt.Sprintf("https://via.placeholder.com/%s/cccccc/666666?text=No+Image", size)
}

func (c *Client) imageURL(ctx context.Context, endpoint, target string) (string, bool) {
	body, err := c.get(ctx, endpoint, target)
	if err != nil {
		return "", false
	}
	u := gjson.GetBytes(body, "data.0.imageUrl").String()
	if u == "" {
		c.log.DebugContext(ctx, "catalog thumbnail missing", slog.String("endpoint", endpoint))
		return "", false
	}
	return u, true
}

// get performs one GET through the relay. Failures are logged and counted here,
// so callers only decide the fallback.
func (c *Client) get(ctx context.Context, endpoint, target string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.relay(target), nil)
	if err != nil {
		c.fail(ctx, endpoint, err)
		return nil, fmt.Errorf("catalog: create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.fail(ctx, endpoint, err)
		return nil, fmt.Errorf("catalog: request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err := fmt.Errorf("catalog: unexpected status %d", resp.StatusCode)
		c.fail(ctx, endpoint, err)
		return nil, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		c.fail(ctx, endpoint, err)
		return nil, fmt.Errorf("catalog: read body: %w", err)
	}
	if !gjson.ValidBytes(body) {
		err := errors.New("catalog: invalid json")
		c.fail(ctx, endpoint, err)
		return nil, err
	}
	return body, nil
}

func (c *Client) relay(target string) string {
	if c.proxyPrefix == "" {
		return target
	}
	return c.proxyPrefix + url.QueryEscape(target)
}

func (c *Client) fail(ctx context.Context, endpoint string, err error) {
	c.log.WarnContext(ctx, "catalog fetch failed",
		slog.String("endpoint", endpoint),
		slog.String("error", err.Error()),
	)
	if c.failures != nil {
		c.failures.CatalogFetchFailed(endpoint)
	}
}

// builderName reads the place creator, which older payloads send as a plain
// string and newer ones as an object.
func builderName(place gjson.Result) string {
	b := place.Get("builder")
	if b.IsObject() {
		return b.Get("name").String()
	}
	return b.String()
}

func coalesce[T comparable](values ...T) T {
	v, _ := lo.Coalesce(values...)
	return v
}
