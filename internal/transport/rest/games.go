package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strconv"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/service/catalog"
	"github.com/heartmarshall/rotection-backend/internal/service/rating"
	"github.com/heartmarshall/rotection-backend/internal/service/submission"
)

type catalogService interface {
	List(ctx context.Context, in catalog.ListInput) ([]domain.GameWithStats, error)
	Featured(ctx context.Context) ([]domain.GameWithStats, error)
	Genres(ctx context.Context) ([]string, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.GameWithStats, error)
	GetByRobloxID(ctx context.Context, robloxID string) (*domain.GameWithStats, error)
	Reviews(ctx context.Context, gameID uuid.UUID) ([]domain.Review, error)
	UserRating(ctx context.Context, accountID, gameID uuid.UUID) (*domain.Rating, error)
	UserVote(ctx context.Context, accountID, reviewID uuid.UUID) (*domain.ReviewVote, error)
}

type ratingService interface {
	SubmitRating(ctx context.Context, accountID, gameID uuid.UUID, in rating.RatingInput) (*rating.RatingResult, error)
	VoteOnReview(ctx context.Context, accountID, reviewID uuid.UUID, in rating.VoteInput) (*domain.ReviewVote, error)
}

type reportService interface {
	SubmitReport(ctx context.Context, accountID, gameID uuid.UUID, in submission.ReportInput) (*submission.ReportResult, error)
}

// GameHandler serves catalog reads and the per-game writes: ratings,
// reviews, votes and reports.
type GameHandler struct {
	catalog catalogService
	ratings ratingService
	reports reportService
	log     *slog.Logger
}

// NewGameHandler creates a GameHandler.
func NewGameHandler(catalog catalogService, ratings ratingService, reports reportService, logger *slog.Logger) *GameHandler {
	return &GameHandler{
		catalog: catalog,
		ratings: ratings,
		reports: reports,
		log:     logger.With("handler", "game"),
	}
}

type ratingRequest struct {
	Honesty        int    `json:"honesty"`
	Safety         int    `json:"safety"`
	Fairness       int    `json:"fairness"`
	AgeAppropriate int    `json:"ageAppropriate"`
	Review         string `json:"review"`
}

type ratingResultResponse struct {
	Rating      *ratingResponse `json:"rating"`
	Review      *reviewResponse `json:"review,omitempty"`
	ReviewSaved bool            `json:"reviewSaved"`
	Message     string          `json:"message"`
}

type reportRequest struct {
	Description string `json:"description"`
}

type reportResultResponse struct {
	Report  reportResponse `json:"report"`
	Message string         `json:"message"`
}

type voteRequest struct {
	Helpful bool `json:"helpful"`
}

// List handles GET /games?search&genre&verified&sort&limit&offset.
func (h *GameHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	in := catalog.ListInput{
		Search: q.Get("search"),
		Genre:  q.Get("genre"),
		Sort:   q.Get("sort"),
	}

	var err error
	if v := q.Get("verified"); v != "" {
		if in.VerifiedOnly, err = strconv.ParseBool(v); err != nil {
			handleError(w, r, h.log, domain.NewValidationError("verified", "must be a boolean"))
			return
		}
	}
	if in.Limit, err = queryInt(r, "limit"); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if in.Offset, err = queryInt(r, "offset"); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	games, err := h.catalog.List(r.Context(), in)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameResponses(games))
}

// Featured handles GET /games/featured.
func (h *GameHandler) Featured(w http.ResponseWriter, r *http.Request) {
	games, err := h.catalog.Featured(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameResponses(games))
}

// Genres handles GET /games/genres.
func (h *GameHandler) Genres(w http.ResponseWriter, r *http.Request) {
	genres, err := h.catalog.Genres(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, genres)
}

// Get handles GET /games/{id}.
func (h *GameHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	game, err := h.catalog.Get(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameResponse(*game))
}

// GetByRobloxID handles GET /roblox/games/{robloxId}.
func (h *GameHandler) GetByRobloxID(w http.ResponseWriter, r *http.Request) {
	game, err := h.catalog.GetByRobloxID(r.Context(), r.PathValue("robloxId"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toGameResponse(*game))
}

// Reviews handles GET /games/{id}/reviews.
func (h *GameHandler) Reviews(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	reviews, err := h.catalog.Reviews(r.Context(), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, lo.Map(reviews, func(rv domain.Review, _ int) *reviewResponse {
		return toReviewResponse(&rv)
	}))
}

// MyRating handles GET /games/{id}/my-rating. The body is null when the
// caller has not rated the game.
func (h *GameHandler) MyRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	rt, err := h.catalog.UserRating(r.Context(), callerID(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toRatingResponse(rt))
}

// SubmitRating handles POST /games/{id}/ratings.
func (h *GameHandler) SubmitRating(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req ratingRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.ratings.SubmitRating(r.Context(), callerID(r), id, rating.RatingInput{
		Honesty:        req.Honesty,
		Safety:         req.Safety,
		Fairness:       req.Fairness,
		AgeAppropriate: req.AgeAppropriate,
		Review:         req.Review,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	writeJSON(w, http.StatusCreated, ratingResultResponse{
		Rating:      toRatingResponse(res.Rating),
		Review:      toReviewResponse(res.Review),
		ReviewSaved: res.ReviewSaved,
		Message:     res.Message,
	})
}

// SubmitReport handles POST /games/{id}/reports.
func (h *GameHandler) SubmitReport(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req reportRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	res, err := h.reports.SubmitReport(r.Context(), callerID(r), id, submission.ReportInput{Description: req.Description})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, reportResultResponse{
		Report:  toReportResponse(res.Report),
		Message: res.Message,
	})
}

// Vote handles POST /reviews/{id}/votes.
func (h *GameHandler) Vote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}
	var req voteRequest
	if !decodeJSON(w, r, &req) {
		return
	}

	vote, err := h.ratings.VoteOnReview(r.Context(), callerID(r), id, rating.VoteInput{Helpful: req.Helpful})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(vote))
}

// MyVote handles GET /reviews/{id}/my-vote. The body is null when the caller
// has not voted.
func (h *GameHandler) MyVote(w http.ResponseWriter, r *http.Request) {
	id, ok := pathUUID(w, r, "id")
	if !ok {
		return
	}

	vote, err := h.catalog.UserVote(r.Context(), callerID(r), id)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toVoteResponse(vote))
}
