package roblox

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

type usernamesRequest struct {
	Usernames          []string `json:"usernames"`
	ExcludeBannedUsers bool     `json:"excludeBannedUsers"`
}

type usernamesResponse struct {
	Data []provider.RobloxUser `json:"data"`
}

// LookupUsername resolves a username to a user. Unknown or banned names
// return domain.ErrNotFound.
func (c *Client) LookupUsername(ctx context.Context, username string) (*provider.RobloxUser, error) {
	payload, err := json.Marshal(usernamesRequest{Usernames: []string{username}, ExcludeBannedUsers: true})
	if err != nil {
		return nil, fmt.Errorf("roblox: encode usernames request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.usersURL+"/v1/usernames/users", bytes.NewReader(payload))
	if err != nil {
		return nil, fmt.Errorf("roblox: create usernames request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	var out usernamesResponse
	if err := c.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	if len(out.Data) == 0 {
		return nil, fmt.Errorf("roblox: user %q: %w", username, domain.ErrNotFound)
	}
	return &out.Data[0], nil
}

// FetchPublicProfile reads the public profile, including its description text.
func (c *Client) FetchPublicProfile(ctx context.Context, userID int64) (*provider.RobloxUser, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.usersURL+"/v1/users/"+strconv.FormatInt(userID, 10), nil)
	if err != nil {
		return nil, fmt.Errorf("roblox: create profile request: %w", err)
	}

	var out provider.RobloxUser
	if err := c.doJSON(ctx, req, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

func (c *Client) doJSON(ctx context.Context, req *http.Request, dst any) error {
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "roblox users api failed", slog.String("path", req.URL.Path), slog.String("error", err.Error()))
		return fmt.Errorf("roblox: users api: %w", err)
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return fmt.Errorf("roblox: %s: %w", req.URL.Path, domain.ErrNotFound)
	case resp.StatusCode != http.StatusOK:
		c.log.ErrorContext(ctx, "roblox users api failed", slog.String("path", req.URL.Path), slog.Int("status", resp.StatusCode))
		return fmt.Errorf("roblox: users api: unexpected status %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(dst); err != nil {
		return fmt.Errorf("roblox: decode users api response: %w", err)
	}
	return nil
}
