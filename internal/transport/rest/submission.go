package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/catalog"
	"github.com/heartmarshall/rotection-backend/internal/service/submission"
)

type entryService interface {
	SubmitEntry(ctx context.Context, accountID uuid.UUID, robloxURL string) (*submission.EntryResult, error)
}

type submissionReader interface {
	UserSubmissions(ctx context.Context, accountID uuid.UUID) ([]domain.Submission, error)
	Lookup(ctx context.Context, rawURL string) (*catalog.LookupResult, error)
}

// SubmissionHandler serves game submission and the pre-submission lookup.
type SubmissionHandler struct {
	entries entryService
	reader  submissionReader
	log     *slog.Logger
}

// NewSubmissionHandler creates a SubmissionHandler.
func NewSubmissionHandler(entries entryService, reader submissionReader, logger *slog.Logger) *SubmissionHandler {
	return &SubmissionHandler{entries: entries, reader: reader, log: logger.With("handler", "submission")}
}

type submitRequest struct {
	RobloxURL string `json:"robloxUrl"`
}

type entryResultResponse struct {
	Submission submissionResponse `json:"submission"`
	Message    string             `json:"message"`
}

type lookupResponse struct {
	RobloxID  string            `json:"robloxId"`
	Metadata  *metadataResponse `json:"metadata"`
	Thumbnail string            `json:"thumbnail"`
	Listed    *gameResponse     `json:"listed,omitempty"`
}

// Submit handles POST /submissions.
func (h *SubmissionHandler) Submit(w http.ResponseWriter, r *http.Request) {
	var req submitRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.entries.SubmitEntry(r.Context(), callerID(r), req.RobloxURL)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, entryResultResponse{
		Submission: toSubmissionResponse(res.Submission),
		Message:    res.Message,
	})
}

// Mine handles GET /me/submissions.
func (h *SubmissionHandler) Mine(w http.ResponseWriter, r *http.Request) {
	subs, err := h.reader.UserSubmissions(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(subs))
}

// Lookup handles GET /catalog/lookup?url=.
func (h *SubmissionHandler) Lookup(w http.ResponseWriter, r *http.Request) {
	res, err := h.reader.Lookup(r.Context(), r.URL.Query().Get("url"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	resp := lookupResponse{
		RobloxID:  res.ID,
		Metadata:  toMetadataResponse(res.Metadata),
		Thumbnail: res.Thumbnail,
	}
	if res.Listed != nil {
		g := toGameResponse(*res.Listed)
		resp.Listed = &g
	}
	writeJSON(w, http.StatusOK, resp)
}
