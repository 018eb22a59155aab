package model

import (
	"time"

	"github.com/google/uuid"

	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// StatusTransition is one entry of the append-only application transition
// log. The applicant-facing timeline is derived from these records rather
// than from fixed-offset guesses.
type StatusTransition struct {
	ID            string
	ApplicationID string
	FromStatus    valueobject.ApplicationStatus
	ToStatus      valueobject.ApplicationStatus
	Actor         string
	Notes         string
	OccurredAt    time.Time
}

// NewStatusTransition records a single status change.
func NewStatusTransition(
	applicationID string,
	from, to valueobject.ApplicationStatus,
	actor, notes string,
	occurredAt time.Time,
) StatusTransition {
	return StatusTransition{
		ID:            uuid.New().String(),
		ApplicationID: applicationID,
		FromStatus:    from,
		ToStatus:      to,
		Actor:         actor,
		Notes:         notes,
		OccurredAt:    occurredAt,
	}
}
