package rest

import (
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/pkg/ctxutil"
)

const maxBodyBytes = 1 << 20

type errorResponse struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields,omitempty"`
}

func writeError(w http.ResponseWriter, status int, message string) {
	writeJSON(w, status, errorResponse{Error: message})
}

// handleError maps a service error to a status code. Messages carried by a
// domain.UserError are shown as-is; anything unclassified is logged and
// reported as a generic 500.
func handleError(w http.ResponseWriter, r *http.Request, log *slog.Logger, err error) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, domain.ErrValidation):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrUnauthorized):
		status = http.StatusUnauthorized
	case errors.Is(err, domain.ErrForbidden):
		status = http.StatusForbidden
	case errors.Is(err, domain.ErrNotFound):
		status = http.StatusNotFound
	case errors.Is(err, domain.ErrAlreadyExists), errors.Is(err, domain.ErrConflict):
		status = http.StatusConflict
	case errors.Is(err, domain.ErrIntegrity):
		status = http.StatusUnprocessableEntity
	case errors.Is(err, domain.ErrUpstream):
		status = http.StatusBadGateway
	}

	if msg, ok := domain.UserMessage(err); ok {
		writeError(w, status, msg)
		return
	}

	var ve *domain.ValidationError
	if errors.As(err, &ve) {
		resp := errorResponse{Error: "validation failed", Fields: make(map[string]string, len(ve.Errors))}
		for _, fe := range ve.Errors {
			resp.Fields[fe.Field] = fe.Message
		}
		writeJSON(w, status, resp)
		return
	}

	switch status {
	case http.StatusInternalServerError:
		log.ErrorContext(r.Context(), "internal error", slog.String("error", err.Error()))
		writeError(w, status, "internal server error")
	case http.StatusBadGateway:
		log.WarnContext(r.Context(), "upstream error", slog.String("error", err.Error()))
		writeError(w, status, "upstream service unavailable")
	default:
		writeError(w, status, strings.ToLower(http.StatusText(status)))
	}
}

// decodeJSON reads a size-limited JSON body into dst and writes a 400 on
// failure.
func decodeJSON(w http.ResponseWriter, r *http.Request, dst any) bool {
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return false
	}
	return true
}

// pathUUID parses the named path value and writes a 400 when it is not a UUID.
func pathUUID(w http.ResponseWriter, r *http.Request, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(r.PathValue(name))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid "+name)
		return uuid.Nil, false
	}
	return id, true
}

// callerID returns the authenticated account, or uuid.Nil for anonymous
// requests. Services reject uuid.Nil where a session is required.
func callerID(r *http.Request) uuid.UUID {
	id, _ := ctxutil.UserIDFromCtx(r.Context())
	return id
}

func queryInt(r *http.Request, name string) (int, error) {
	v := r.URL.Query().Get(name)
	if v == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return 0, domain.NewValidationError(name, "must be an integer")
	}
	return n, nil
}

func extractBearer(r *http.Request) string {
	h := r.Header.Get("Authorization")
	if h == "" {
		return ""
	}
	parts := strings.SplitN(h, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return parts[1]
}
