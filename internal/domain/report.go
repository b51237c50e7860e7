package domain

import (
	"time"

	"github.com/google/uuid"
)

// Report is a complaint against a game.
type Report struct {
	ID          uuid.UUID
	GameID      uuid.UUID
	AccountID   uuid.UUID
	Description string
	Status      ReportStatus
	AdminNotes  *string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// MinReportLength and MaxReportLength bound a trimmed report description.
const (
	MinReportLength = 10
	MaxReportLength = 2000
)
