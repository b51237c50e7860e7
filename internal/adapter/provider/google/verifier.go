package google

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/endpoints"

	"github.com/heartmarshall/rotection-backend/internal/auth"
	"github.com/heartmarshall/rotection-backend/internal/config"
)

var (
	// Made variables for testing purposes
	tokenURL    = endpoints.Google.TokenURL
	userinfoURL = "https://openidconnect.googleapis.com/v1/userinfo"
)

var (
	ErrInvalidCode      = errors.New("oauth: invalid or expired code")
	ErrUnavailable      = errors.New("oauth: google unavailable")
	ErrEmailNotVerified = errors.New("oauth: email not verified")
	ErrInvalidUserinfo  = errors.New("oauth: invalid userinfo response")
)

// Verifier exchanges Google OAuth authorization codes for an identity.
type Verifier struct {
	oauth      *oauth2.Config
	httpClient *http.Client
	log        *slog.Logger
}

// NewVerifier creates a Google OAuth verifier from the auth section of the config.
func NewVerifier(cfg config.AuthConfig, logger *slog.Logger) *Verifier {
	return &Verifier{
		oauth: &oauth2.Config{
			ClientID:     cfg.GoogleClientID,
			ClientSecret: cfg.GoogleClientSecret,
			RedirectURL:  cfg.GoogleRedirectURI,
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint: oauth2.Endpoint{
				AuthURL:   endpoints.Google.AuthURL,
				TokenURL:  tokenURL,
				AuthStyle: oauth2.AuthStyleInParams,
			},
		},
		httpClient: &http.Client{Timeout: 10 * time.Second},
		log:        logger.With("adapter", "google_oauth"),
	}
}

// userinfoResponse is the OpenID Connect userinfo document.
type userinfoResponse struct {
	Sub           string `json:"sub"`
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

// AuthCodeURL returns the Google consent page URL for the given state.
func (v *Verifier) AuthCodeURL(state string) string {
	return v.oauth.AuthCodeURL(state)
}

// VerifyCode exchanges an authorization code for the caller's identity.
// The provider parameter is ignored (always "google").
func (v *Verifier) VerifyCode(ctx context.Context, _ string, code string) (*auth.OAuthIdentity, error) {
	tok, err := v.oauth.Exchange(context.WithValue(ctx, oauth2.HTTPClient, v.httpClient), code)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth token exchange failed", slog.String("error", err.Error()))

		var re *oauth2.RetrieveError
		if errors.As(err, &re) && re.Response != nil && re.Response.StatusCode == http.StatusBadRequest {
			return nil, ErrInvalidCode
		}
		return nil, ErrUnavailable
	}

	info, err := v.fetchUserinfo(ctx, tok.AccessToken)
	if err != nil {
		return nil, err
	}

	if !info.EmailVerified {
		return nil, ErrEmailNotVerified
	}

	identity := &auth.OAuthIdentity{
		Email:      info.Email,
		ProviderID: info.Sub,
	}
	if info.Name != "" {
		identity.Name = &info.Name
	}
	if info.Picture != "" {
		identity.AvatarURL = &info.Picture
	}

	v.log.DebugContext(ctx, "google oauth success", slog.String("email", info.Email))

	return identity, nil
}

func (v *Verifier) fetchUserinfo(ctx context.Context, accessToken string) (*userinfoResponse, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, userinfoURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create userinfo request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+accessToken)

	resp, err := v.httpClient.Do(req)
	if err != nil {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.String("error", err.Error()))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		v.log.ErrorContext(ctx, "google oauth userinfo failed", slog.Int("status", resp.StatusCode))
		return nil, fmt.Errorf("oauth: failed to fetch user info")
	}

	var info userinfoResponse
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, ErrInvalidUserinfo
	}
	if info.Sub == "" || info.Email == "" {
		return nil, ErrInvalidUserinfo
	}

	return &info, nil
}
