package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/link"
)

type profileService interface {
	Get(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	SetUsername(ctx context.Context, accountID uuid.UUID, username string) (*domain.Account, error)
}

type linkService interface {
	StartOAuth(ctx context.Context, accountID uuid.UUID) (string, error)
	CompleteOAuth(ctx context.Context, accountID *uuid.UUID, cb link.Callback) (*domain.Account, error)
	StartManual(ctx context.Context, accountID uuid.UUID, username string) (*link.Challenge, error)
	ConfirmManual(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
	Unlink(ctx context.Context, accountID uuid.UUID) (*domain.Account, error)
}

// AccountHandler serves the caller's profile and Roblox linking.
type AccountHandler struct {
	profile profileService
	link    linkService
	log     *slog.Logger
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(profile profileService, link linkService, logger *slog.Logger) *AccountHandler {
	return &AccountHandler{profile: profile, link: link, log: logger.With("handler", "account")}
}

type usernameRequest struct {
	Username string `json:"username"`
}

type manualStartRequest struct {
	Username string `json:"username"`
}

type challengeResponse struct {
	RobloxUserID   int64     `json:"robloxUserId"`
	RobloxUsername string    `json:"robloxUsername"`
	Phrase         string    `json:"phrase"`
	ExpiresAt      time.Time `json:"expiresAt"`
}

type redirectResponse struct {
	URL string `json:"url"`
}

// Me handles GET /me.
func (h *AccountHandler) Me(w http.ResponseWriter, r *http.Request) {
	account, err := h.profile.Get(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// SetUsername handles PUT /me/username.
func (h *AccountHandler) SetUsername(w http.ResponseWriter, r *http.Request) {
	var req usernameRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	account, err := h.profile.SetUsername(r.Context(), callerID(r), req.Username)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// StartRobloxOAuth handles POST /link/roblox/start. The client redirects the
// browser to the returned URL.
func (h *AccountHandler) StartRobloxOAuth(w http.ResponseWriter, r *http.Request) {
	url, err := h.link.StartOAuth(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, redirectResponse{URL: url})
}

// RobloxCallback handles GET /link/roblox/callback. The client forwards the
// provider's query parameters together with its bearer token.
func (h *AccountHandler) RobloxCallback(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	cb := link.Callback{
		Code:             q.Get("code"),
		State:            q.Get("state"),
		Error:            q.Get("error"),
		ErrorDescription: q.Get("error_description"),
	}

	var accountID *uuid.UUID
	if id := callerID(r); id != uuid.Nil {
		accountID = &id
	}

	account, err := h.link.CompleteOAuth(r.Context(), accountID, cb)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// StartManualLink handles POST /link/roblox/manual/start.
func (h *AccountHandler) StartManualLink(w http.ResponseWriter, r *http.Request) {
	var req manualStartRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	ch, err := h.link.StartManual(r.Context(), callerID(r), req.Username)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, challengeResponse{
		RobloxUserID:   ch.RobloxUserID,
		RobloxUsername: ch.RobloxUsername,
		Phrase:         ch.Phrase,
		ExpiresAt:      ch.ExpiresAt,
	})
}

// ConfirmManualLink handles POST /link/roblox/manual/confirm.
func (h *AccountHandler) ConfirmManualLink(w http.ResponseWriter, r *http.Request) {
	account, err := h.link.ConfirmManual(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}

// Unlink handles DELETE /link/roblox.
func (h *AccountHandler) Unlink(w http.ResponseWriter, r *http.Request) {
	account, err := h.link.Unlink(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAccountResponse(account))
}
