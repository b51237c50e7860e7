package roblox

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"golang.org/x/oauth2"

	"github.com/heartmarshall/rotection-backend/internal/config"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

const (
	defaultAuthorizeURL = "https://authorize.roblox.com/v1/authorize"
	defaultAPIBaseURL   = "https://apis.roblox.com"
	defaultUsersBaseURL = "https://users.roblox.com"
)

var (
	ErrExchangeFailed     = errors.New("roblox: token exchange failed")
	ErrProfileFetchFailed = errors.New("roblox: profile fetch failed")
	ErrRevokeFailed       = errors.New("roblox: token revoke failed")
)

// Client talks to the Roblox OAuth 2.0 endpoints and the public users API.
// Nothing is retried.
type Client struct {
	oauth      *oauth2.Config
	apiBaseURL string
	usersURL   string
	httpClient *http.Client
	log        *slog.Logger
}

// NewClient creates a Roblox client from the application credentials.
func NewClient(cfg config.RobloxConfig, logger *slog.Logger) *Client {
	return newClient(cfg, defaultAuthorizeURL, defaultAPIBaseURL, defaultUsersBaseURL, logger)
}

func newClient(cfg config.RobloxConfig, authorizeURL, apiBaseURL, usersURL string, logger *slog.Logger) *Client {
	return &Client{
		oauth: &oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			RedirectURL:  cfg.RedirectURI,
			Scopes:       []string{"openid", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   authorizeURL,
				TokenURL:  apiBaseURL + "/oauth/v1/token",
				AuthStyle: oauth2.AuthStyleInHeader,
			},
		},
		apiBaseURL: apiBaseURL,
		usersURL:   usersURL,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		log:        logger.With("adapter", "roblox_oauth"),
	}
}

// AuthorizationURL builds the authorize redirect for the given anti-CSRF state.
func (c *Client) AuthorizationURL(state string) string {
	return c.oauth.AuthCodeURL(state)
}

// ExchangeCode trades an authorization code for tokens. A rejected exchange
// wraps ErrExchangeFailed and carries the provider's error text.
func (c *Client) ExchangeCode(ctx context.Context, code string) (*provider.OAuthToken, error) {
	tok, err := c.oauth.Exchange(c.withHTTPClient(ctx), code)
	if err != nil {
		c.log.ErrorContext(ctx, "roblox token exchange failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %s", ErrExchangeFailed, providerErrorText(err))
	}
	return toToken(tok), nil
}

// FetchProfile reads the userinfo of the token owner.
func (c *Client) FetchProfile(ctx context.Context, accessToken string) (*provider.RobloxProfile, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.apiBaseURL+"/oauth/v1/userinfo", nil)
	if err != nil {
		return nil, fmt.Errorf("roblox: create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.ErrorContext(ctx, "roblox userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("%w: %v", ErrProfileFetchFailed, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		c.log.ErrorContext(ctx, "roblox userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("%w: status %d", ErrProfileFetchFailed, resp.StatusCode)
	}

	var profile provider.RobloxProfile
	if err := json.NewDecoder(resp.Body).Decode(&profile); err != nil {
		return nil, fmt.Errorf("%w: invalid json: %v", ErrProfileFetchFailed, err)
	}
	if profile.Sub == "" {
		return nil, fmt.Errorf("%w: missing sub", ErrProfileFetchFailed)
	}
	return &profile, nil
}

// RevokeToken invalidates an access or refresh token. Callers treat failures
// as non-fatal.
func (c *Client) RevokeToken(ctx context.Context, token string) error {
	form := url.Values{}
	form.Set("token", token)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.apiBaseURL+"/oauth/v1/token/revoke", strings.NewReader(form.Encode()))
	if err != nil {
		return fmt.Errorf("roblox: create revoke request: %w", err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.SetBasicAuth(url.QueryEscape(c.oauth.ClientID), url.QueryEscape(c.oauth.ClientSecret))

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrRevokeFailed, err)
	}
	defer resp.Body.Close()
	_, _ = io.Copy(io.Discard, resp.Body)

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: status %d", ErrRevokeFailed, resp.StatusCode)
	}
	return nil
}

func (c *Client) withHTTPClient(ctx context.Context) context.Context {
	return context.WithValue(ctx, oauth2.HTTPClient, c.httpClient)
}

// providerErrorText extracts the most useful text from an oauth2 error:
// the raw response body when the provider answered, the error itself otherwise.
func providerErrorText(err error) string {
	var re *oauth2.RetrieveError
	if errors.As(err, &re) {
		if body := strings.TrimSpace(string(re.Body)); body != "" {
			return body
		}
		if re.ErrorDescription != "" {
			return re.ErrorDescription
		}
		if re.ErrorCode != "" {
			return re.ErrorCode
		}
		if re.Response != nil {
			return re.Response.Status
		}
	}
	return err.Error()
}

func toToken(tok *oauth2.Token) *provider.OAuthToken {
	t := &provider.OAuthToken{
		AccessToken:  tok.AccessToken,
		RefreshToken: tok.RefreshToken,
		TokenType:    tok.TokenType,
		Expiry:       tok.Expiry,
	}
	if v, ok := tok.Extra("id_token").(string); ok {
		t.IDToken = v
	}
	if v, ok := tok.Extra("scope").(string); ok {
		t.Scope = v
	}
	return t
}
