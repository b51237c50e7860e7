package domain

import (
	"time"

	"github.com/google/uuid"
)

// AuditEntity is the kind of record a moderation decision applies to.
type AuditEntity string

const (
	AuditSubmission AuditEntity = "submission"
	AuditReport     AuditEntity = "report"
)

func (e AuditEntity) String() string { return string(e) }

// IsValid reports whether e is a known entity kind.
func (e AuditEntity) IsValid() bool {
	return e == AuditSubmission || e == AuditReport
}

// AuditAction is a moderation decision.
type AuditAction string

const (
	AuditApprove AuditAction = "approve"
	AuditReject  AuditAction = "reject"
	AuditResolve AuditAction = "resolve"
	AuditDismiss AuditAction = "dismiss"
)

func (a AuditAction) String() string { return string(a) }

// AuditRecord is an append-only entry of the moderation trail.
type AuditRecord struct {
	ID         uuid.UUID
	ActorID    uuid.UUID
	EntityType AuditEntity
	EntityID   uuid.UUID
	Action     AuditAction
	Changes    map[string]any
	CreatedAt  time.Time
}
