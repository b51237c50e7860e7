package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/submission"
	"github.com/heartmarshall/rotection-backend/internal/transport/middleware"
)

type moderationService interface {
	ListPending(ctx context.Context, adminID uuid.UUID) ([]domain.Submission, error)
	Approve(ctx context.Context, adminID, submissionID uuid.UUID, in submission.ApproveInput) (*submission.ApproveResult, error)
	Reject(ctx context.Context, adminID, submissionID uuid.UUID, notes string) (*domain.Submission, error)
	ListReports(ctx context.Context, adminID uuid.UUID, status domain.ReportStatus) ([]domain.Report, error)
	ResolveReport(ctx context.Context, adminID, reportID uuid.UUID, status domain.ReportStatus, notes string) (*domain.Report, error)
	History(ctx context.Context, adminID uuid.UUID, entityType domain.AuditEntity, entityID uuid.UUID) ([]domain.AuditRecord, error)
}

// AdminHandler serves moderation REST endpoints.
type AdminHandler struct {
	moderation moderationService
	log        *slog.Logger
}

// NewAdminHandler creates an AdminHandler.
func NewAdminHandler(moderation moderationService, logger *slog.Logger) *AdminHandler {
	return &AdminHandler{
		moderation: moderation,
		log:        logger.With("handler", "admin"),
	}
}

type approveRequest struct {
	AgeRating string `json:"ageRating"`
	Notes     string `json:"notes"`
}

type rejectRequest struct {
	Notes string `json:"notes"`
}

type resolveRequest struct {
	Status string `json:"status"`
	Notes  string `json:"notes"`
}

type approveResponse struct {
	Submission submissionResponse `json:"submission"`
	Game       gameResponse       `json:"game"`
}

// Submissions lists pending submissions.
// GET /admin/submissions
func (h *AdminHandler) Submissions(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	subs, err := h.moderation.ListPending(r.Context(), callerID(r))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponses(subs))
}

// Approve accepts a submission and lists the game.
// POST /admin/submissions/{id}/approve
func (h *AdminHandler) Approve(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req approveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.moderation.Approve(r.Context(), callerID(r), id, submission.ApproveInput{
		AgeRating: req.AgeRating,
		Notes:     req.Notes,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, approveResponse{
		Submission: toSubmissionResponse(res.Submission),
		Game:       toGameResponse(domain.GameWithStats{Game: *res.Game}),
	})
}

// Reject declines a submission.
// POST /admin/submissions/{id}/reject
func (h *AdminHandler) Reject(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req rejectRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	sub, err := h.moderation.Reject(r.Context(), callerID(r), id, req.Notes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toSubmissionResponse(sub))
}

// Reports lists reports filtered by status (default pending).
// GET /admin/reports?status=pending
func (h *AdminHandler) Reports(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	status := domain.ReportStatus(r.URL.Query().Get("status"))
	reports, err := h.moderation.ListReports(r.Context(), callerID(r), status)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]reportResponse, len(reports))
	for i := range reports {
		out[i] = toReportResponse(&reports[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// ResolveReport closes a report.
// POST /admin/reports/{id}/resolve
func (h *AdminHandler) ResolveReport(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req resolveRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	report, err := h.moderation.ResolveReport(r.Context(), callerID(r), id, domain.ReportStatus(req.Status), req.Notes)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toReportResponse(report))
}

// Audit returns the moderation trail of one submission or report.
// GET /admin/audit?entity_type=submission&entity_id={id}
func (h *AdminHandler) Audit(w http.ResponseWriter, r *http.Request) {
	if !h.requireAdmin(w, r) {
		return
	}

	q := r.URL.Query()
	entityID, err := uuid.Parse(q.Get("entity_id"))
	if err != nil {
		handleError(w, r, h.log, domain.NewValidationError("entity_id", "must be a valid UUID"))
		return
	}

	records, err := h.moderation.History(r.Context(), callerID(r), domain.AuditEntity(q.Get("entity_type")), entityID)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	out := make([]auditResponse, len(records))
	for i := range records {
		out[i] = toAuditResponse(&records[i])
	}
	writeJSON(w, http.StatusOK, out)
}

// requireAdmin rejects callers whose token does not carry the admin role.
// The service re-checks the stored role.
func (h *AdminHandler) requireAdmin(w http.ResponseWriter, r *http.Request) bool {
	if err := middleware.RequireAdmin(r.Context()); err != nil {
		handleError(w, r, h.log, err)
		return false
	}
	return true
}
