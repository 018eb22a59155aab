package valueobject

import (
	"errors"
	"fmt"
)

// ---------------------------------------------------------------------------
// ApplicationStatus – immutable value object
// ---------------------------------------------------------------------------

// ApplicationStatus represents the lifecycle stage of a credit application.
// It is the single status domain shared by every component; there is no
// separate persistence-side enumeration.
type ApplicationStatus struct {
	value string
}

const (
	statusPending         = "PENDING"
	statusInReview        = "IN_REVIEW"
	statusPendingApproval = "PENDING_APPROVAL"
	statusApproved        = "APPROVED"
	statusRejected        = "REJECTED"
	statusCancelled       = "CANCELLED"
)

var (
	StatusPending         = ApplicationStatus{value: statusPending}
	StatusInReview        = ApplicationStatus{value: statusInReview}
	StatusPendingApproval = ApplicationStatus{value: statusPendingApproval}
	StatusApproved        = ApplicationStatus{value: statusApproved}
	StatusRejected        = ApplicationStatus{value: statusRejected}
	StatusCancelled       = ApplicationStatus{value: statusCancelled}
)

var validApplicationStatuses = map[string]ApplicationStatus{
	statusPending:         StatusPending,
	statusInReview:        StatusInReview,
	statusPendingApproval: StatusPendingApproval,
	statusApproved:        StatusApproved,
	statusRejected:        StatusRejected,
	statusCancelled:       StatusCancelled,
}

// NewApplicationStatus creates an ApplicationStatus from a raw string.
func NewApplicationStatus(s string) (ApplicationStatus, error) {
	v, ok := validApplicationStatuses[s]
	if !ok {
		return ApplicationStatus{}, fmt.Errorf("invalid application status: %q", s)
	}
	return v, nil
}

// String returns the string representation of the status.
func (s ApplicationStatus) String() string { return s.value }

// IsZero returns true if the status has not been initialised.
func (s ApplicationStatus) IsZero() bool { return s.value == "" }

// Equal returns true when both statuses carry the same value.
func (s ApplicationStatus) Equal(other ApplicationStatus) bool {
	return s.value == other.value
}

// IsTerminal reports whether no further transitions are allowed.
func (s ApplicationStatus) IsTerminal() bool {
	switch s.value {
	case statusApproved, statusRejected, statusCancelled:
		return true
	}
	return false
}

// IsOpen reports whether the application is still awaiting a decision.
func (s ApplicationStatus) IsOpen() bool {
	switch s.value {
	case statusPending, statusInReview, statusPendingApproval:
		return true
	}
	return false
}

// CanTransitionTo reports whether the lifecycle allows moving from s to next.
// PENDING -> IN_REVIEW -> PENDING_APPROVAL -> {APPROVED | REJECTED};
// the decision engine may approve or reject straight from any open state,
// and CANCELLED is reachable from every non-terminal state.
func (s ApplicationStatus) CanTransitionTo(next ApplicationStatus) bool {
	if s.IsTerminal() {
		return false
	}
	switch next.value {
	case statusApproved, statusRejected, statusCancelled:
		return true
	case statusInReview:
		return s.value == statusPending
	case statusPendingApproval:
		return s.value == statusPending || s.value == statusInReview
	}
	return false
}

// ---------------------------------------------------------------------------
// Sentinel errors
// ---------------------------------------------------------------------------

var (
	ErrInvalidStatusTransition = errors.New("invalid status transition")
)
