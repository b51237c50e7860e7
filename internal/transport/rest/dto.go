package rest

import (
	"time"

	"github.com/samber/lo"

	"github.com/heartmarshall/rotection-backend/internal/domain"
	"github.com/heartmarshall/rotection-backend/internal/provider"
)

type accountResponse struct {
	ID             string  `json:"id"`
	Email          string  `json:"email"`
	Username       *string `json:"username,omitempty"`
	DisplayName    string  `json:"displayName"`
	AvatarURL      *string `json:"avatarUrl,omitempty"`
	Role           string  `json:"role"`
	RobloxUserID   *int64  `json:"robloxUserId,omitempty"`
	RobloxUsername *string `json:"robloxUsername,omitempty"`
}

func toAccountResponse(a *domain.Account) accountResponse {
	return accountResponse{
		ID:             a.ID.String(),
		Email:          a.Email,
		Username:       a.Username,
		DisplayName:    a.DisplayName,
		AvatarURL:      a.AvatarURL,
		Role:           a.Role.String(),
		RobloxUserID:   a.RobloxUserID,
		RobloxUsername: a.RobloxUsername,
	}
}

type gameResponse struct {
	ID           string    `json:"id"`
	RobloxID     string    `json:"robloxId"`
	Title        string    `json:"title"`
	Developer    string    `json:"developer"`
	Description  string    `json:"description"`
	ThumbnailURL *string   `json:"thumbnailUrl,omitempty"`
	RobloxURL    string    `json:"robloxUrl"`
	Genre        *string   `json:"genre,omitempty"`
	AgeRating    string    `json:"ageRating"`
	Verified     bool      `json:"verified"`
	TotalPlays   string    `json:"totalPlays"`
	CreatedAt    time.Time `json:"createdAt"`

	AvgHonesty        float64 `json:"avgHonesty"`
	AvgSafety         float64 `json:"avgSafety"`
	AvgFairness       float64 `json:"avgFairness"`
	AvgAgeAppropriate float64 `json:"avgAgeAppropriate"`
	AvgOverall        float64 `json:"avgOverall"`
	RatingCount       int     `json:"ratingCount"`
	SafetyScore       int     `json:"safetyScore"`
}

func toGameResponse(g domain.GameWithStats) gameResponse {
	return gameResponse{
		ID:                g.ID.String(),
		RobloxID:          g.RobloxID,
		Title:             g.Title,
		Developer:         g.Developer,
		Description:       g.Description,
		ThumbnailURL:      g.ThumbnailURL,
		RobloxURL:         g.RobloxURL,
		Genre:             g.Genre,
		AgeRating:         g.AgeRating,
		Verified:          g.Verified,
		TotalPlays:        g.TotalPlays,
		CreatedAt:         g.CreatedAt,
		AvgHonesty:        g.Stats.AvgHonesty,
		AvgSafety:         g.Stats.AvgSafety,
		AvgFairness:       g.Stats.AvgFairness,
		AvgAgeAppropriate: g.Stats.AvgAgeAppropriate,
		AvgOverall:        g.Stats.AvgOverall,
		RatingCount:       g.Stats.RatingCount,
		SafetyScore:       g.Stats.SafetyScore,
	}
}

func toGameResponses(games []domain.GameWithStats) []gameResponse {
	return lo.Map(games, func(g domain.GameWithStats, _ int) gameResponse { return toGameResponse(g) })
}

type ratingResponse struct {
	ID             string    `json:"id"`
	GameID         string    `json:"gameId"`
	Honesty        int       `json:"honesty"`
	Safety         int       `json:"safety"`
	Fairness       int       `json:"fairness"`
	AgeAppropriate int       `json:"ageAppropriate"`
	UpdatedAt      time.Time `json:"updatedAt"`
}

func toRatingResponse(r *domain.Rating) *ratingResponse {
	if r == nil {
		return nil
	}
	return &ratingResponse{
		ID:             r.ID.String(),
		GameID:         r.GameID.String(),
		Honesty:        r.Honesty,
		Safety:         r.Safety,
		Fairness:       r.Fairness,
		AgeAppropriate: r.AgeAppropriate,
		UpdatedAt:      r.UpdatedAt,
	}
}

type reviewResponse struct {
	ID             string    `json:"id"`
	GameID         string    `json:"gameId"`
	Content        string    `json:"content"`
	HelpfulCount   int       `json:"helpfulCount"`
	UnhelpfulCount int       `json:"unhelpfulCount"`
	AuthorUsername *string   `json:"authorUsername,omitempty"`
	Overall        *float64  `json:"overall,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

func toReviewResponse(r *domain.Review) *reviewResponse {
	if r == nil {
		return nil
	}
	return &reviewResponse{
		ID:             r.ID.String(),
		GameID:         r.GameID.String(),
		Content:        r.Content,
		HelpfulCount:   r.HelpfulCount,
		UnhelpfulCount: r.UnhelpfulCount,
		AuthorUsername: r.AuthorUsername,
		Overall:        r.Overall,
		CreatedAt:      r.CreatedAt,
	}
}

type voteResponse struct {
	ReviewID string `json:"reviewId"`
	Helpful  bool   `json:"helpful"`
}

func toVoteResponse(v *domain.ReviewVote) *voteResponse {
	if v == nil {
		return nil
	}
	return &voteResponse{ReviewID: v.ReviewID.String(), Helpful: v.Helpful}
}

type submissionResponse struct {
	ID           string     `json:"id"`
	RobloxURL    string     `json:"robloxUrl"`
	RobloxID     string     `json:"robloxId"`
	Title        *string    `json:"title,omitempty"`
	Developer    *string    `json:"developer,omitempty"`
	Description  *string    `json:"description,omitempty"`
	ThumbnailURL *string    `json:"thumbnailUrl,omitempty"`
	Genre        *string    `json:"genre,omitempty"`
	SubmitterID  string     `json:"submitterId"`
	Status       string     `json:"status"`
	AdminNotes   *string    `json:"adminNotes,omitempty"`
	ReviewedAt   *time.Time `json:"reviewedAt,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

func toSubmissionResponse(s *domain.Submission) submissionResponse {
	return submissionResponse{
		ID:           s.ID.String(),
		RobloxURL:    s.RobloxURL,
		RobloxID:     s.RobloxID,
		Title:        s.Title,
		Developer:    s.Developer,
		Description:  s.Description,
		ThumbnailURL: s.ThumbnailURL,
		Genre:        s.Genre,
		SubmitterID:  s.SubmitterID.String(),
		Status:       s.Status.String(),
		AdminNotes:   s.AdminNotes,
		ReviewedAt:   s.ReviewedAt,
		CreatedAt:    s.CreatedAt,
	}
}

func toSubmissionResponses(subs []domain.Submission) []submissionResponse {
	return lo.Map(subs, func(s domain.Submission, _ int) submissionResponse { return toSubmissionResponse(&s) })
}

type reportResponse struct {
	ID          string    `json:"id"`
	GameID      string    `json:"gameId"`
	Description string    `json:"description"`
	Status      string    `json:"status"`
	AdminNotes  *string   `json:"adminNotes,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
}

func toReportResponse(r *domain.Report) reportResponse {
	return reportResponse{
		ID:          r.ID.String(),
		GameID:      r.GameID.String(),
		Description: r.Description,
		Status:      r.Status.String(),
		AdminNotes:  r.AdminNotes,
		CreatedAt:   r.CreatedAt,
	}
}

type auditResponse struct {
	ID         string         `json:"id"`
	ActorID    string         `json:"actorId"`
	EntityType string         `json:"entityType"`
	EntityID   string         `json:"entityId"`
	Action     string         `json:"action"`
	Changes    map[string]any `json:"changes"`
	CreatedAt  time.Time      `json:"createdAt"`
}

func toAuditResponse(a *domain.AuditRecord) auditResponse {
	return auditResponse{
		ID:         a.ID.String(),
		ActorID:    a.ActorID.String(),
		EntityType: a.EntityType.String(),
		EntityID:   a.EntityID.String(),
		Action:     a.Action.String(),
		Changes:    a.Changes,
		CreatedAt:  a.CreatedAt,
	}
}

type metadataResponse struct {
	PlaceID     string `json:"placeId"`
	UniverseID  string `json:"universeId"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Creator     string `json:"creator"`
	Genre       string `json:"genre"`
	Visits      int64  `json:"visits"`
	Playing     int64  `json:"playing"`
	MaxPlayers  int64  `json:"maxPlayers"`
	Favorites   int64  `json:"favorites"`
}

func toMetadataResponse(m *provider.GameMetadata) *metadataResponse {
	if m == nil {
		return nil
	}
	return &metadataResponse{
		PlaceID:     m.PlaceID,
		UniverseID:  m.UniverseID,
		Name:        m.Name,
		Description: m.Description,
		Creator:     m.Creator,
		Genre:       m.Genre,
		Visits:      m.Visits,
		Playing:     m.Playing,
		MaxPlayers:  m.MaxPlayers,
		Favorites:   m.Favorites,
	}
}

type messageResponse struct {
	Message string `json:"message"`
}
