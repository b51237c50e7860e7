package domain

// Role is the authorization role of an account.
type Role string

const (
	RoleUser  Role = "user"
	RoleAdmin Role = "admin"
)

func (r Role) String() string { return string(r) }

func (r Role) IsValid() bool {
	return r == RoleUser || r == RoleAdmin
}

// IsAdmin reports whether the role grants moderation rights.
func (r Role) IsAdmin() bool { return r == RoleAdmin }

// AuthProvider identifies the social login that created an account.
type AuthProvider string

const (
	AuthProviderGoogle AuthProvider = "google"
)

func (p AuthProvider) String() string { return string(p) }

func (p AuthProvider) IsValid() bool {
	return p == AuthProviderGoogle
}

// ModerationStatus is the review state of a game or a submission.
type ModerationStatus string

const (
	StatusPending  ModerationStatus = "pending"
	StatusApproved ModerationStatus = "approved"
	StatusRejected ModerationStatus = "rejected"
)

func (s ModerationStatus) String() string { return string(s) }

func (s ModerationStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusApproved, StatusRejected:
		return true
	}
	return false
}

// ReportStatus is the handling state of a report.
type ReportStatus string

const (
	ReportPending   ReportStatus = "pending"
	ReportResolved  ReportStatus = "resolved"
	ReportDismissed ReportStatus = "dismissed"
)

func (s ReportStatus) String() string { return string(s) }

func (s ReportStatus) IsValid() bool {
	switch s {
	case ReportPending, ReportResolved, ReportDismissed:
		return true
	}
	return false
}

// IsFinal reports whether a moderator has closed the report.
func (s ReportStatus) IsFinal() bool {
	return s == ReportResolved || s == ReportDismissed
}

// GameSort selects the ordering of catalog listings.
type GameSort string

const (
	SortPopular GameSort = "popular"
	SortSafety  GameSort = "safety"
	SortRated   GameSort = "rated"
	SortNewest  GameSort = "newest"
)

func (s GameSort) String() string { return string(s) }

func (s GameSort) IsValid() bool {
	switch s {
	case SortPopular, SortSafety, SortRated, SortNewest:
		return true
	}
	return false
}

// AllGenres is the pseudo-genre that disables genre filtering.
const AllGenres = "All Genres"
