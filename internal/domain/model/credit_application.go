package model

import (
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/event"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// CreditApplication aggregate root
// ---------------------------------------------------------------------------

// CreditApplication is an immutable aggregate. Every mutation returns a new copy.
type CreditApplication struct {
	id             string
	customerNumber string
	creditType     valueobject.CreditType
	amount         decimal.Decimal
	termMonths     int
	monthlyIncome  decimal.Decimal
	notes          string
	status         valueobject.ApplicationStatus
	version        int
	createdAt      time.Time
	updatedAt      time.Time
	approvedAt     *time.Time
	rejectedAt     *time.Time
	deletedAt      *time.Time
	domainEvents   []event.DomainEvent
}

// ---------------------------------------------------------------------------
// Constructors
// ---------------------------------------------------------------------------

// NewCreditApplication creates a brand-new application in PENDING status.
func NewCreditApplication(
	customerNumber string,
	creditType valueobject.CreditType,
	amount decimal.Decimal,
	termMonths int,
	monthlyIncome decimal.Decimal,
	notes string,
	now time.Time,
) (CreditApplication, error) {
	if customerNumber == "" {
		return CreditApplication{}, errors.New("customer number is required")
	}
	if creditType.IsZero() {
		return CreditApplication{}, errors.New("credit type is required")
	}
	if amount.LessThanOrEqual(decimal.Zero) {
		return CreditApplication{}, errors.New("amount must be positive")
	}
	if termMonths < 1 {
		return CreditApplication{}, errors.New("term months must be at least 1")
	}
	if monthlyIncome.LessThanOrEqual(decimal.Zero) {
		return CreditApplication{}, errors.New("monthly income must be positive")
	}

	id := uuid.New().String()
	app := CreditApplication{
		id:             id,
		customerNumber: customerNumber,
		creditType:     creditType,
		amount:         amount,
		termMonths:     termMonths,
		monthlyIncome:  monthlyIncome,
		notes:          notes,
		status:         valueobject.StatusPending,
		version:        1,
		createdAt:      now,
		updatedAt:      now,
	}

	submitted := event.NewApplicationSubmitted(
		id, customerNumber, creditType.String(), amount, termMonths,
	)
	app.domainEvents = append(app.domainEvents, submitted)
	return app, nil
}

// ReconstructCreditApplication rebuilds an aggregate from persistence without side-effects.
func ReconstructCreditApplication(
	id, customerNumber string,
	creditType valueobject.CreditType,
	amount decimal.Decimal,
	termMonths int,
	monthlyIncome decimal.Decimal,
	notes string,
	status valueobject.ApplicationStatus,
	version int,
	createdAt, updatedAt time.Time,
	approvedAt, rejectedAt, deletedAt *time.Time,
) CreditApplication {
	return CreditApplication{
		id:             id,
		customerNumber: customerNumber,
		creditType:     creditType,
		amount:         amount,
		termMonths:     termMonths,
		monthlyIncome:  monthlyIncome,
		notes:          notes,
		status:         status,
		version:        version,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
		approvedAt:     approvedAt,
		rejectedAt:     rejectedAt,
		deletedAt:      deletedAt,
	}
}

// ---------------------------------------------------------------------------
// State transitions (each returns a new copy)
// ---------------------------------------------------------------------------

// StartReview transitions PENDING -> IN_REVIEW.
func (a CreditApplication) StartReview(now time.Time) (CreditApplication, error) {
	return a.moveTo(valueobject.StatusInReview, now)
}

// MarkPendingApproval escalates an open application for manual review.
func (a CreditApplication) MarkPendingApproval(now time.Time) (CreditApplication, error) {
	return a.moveTo(valueobject.StatusPendingApproval, now)
}

// Approve transitions an open application to APPROVED and stamps the
// approval timestamp. Emits ApplicationApproved.
func (a CreditApplication) Approve(reason string, now time.Time) (CreditApplication, error) {
	next, err := a.moveTo(valueobject.StatusApproved, now)
	if err != nil {
		return a, err
	}
	t := now
	next.approvedAt = &t
	next.domainEvents = append(next.domainEvents, event.NewApplicationApproved(
		a.id, a.customerNumber, a.amount, reason,
	))
	return next, nil
}

// Reject transitions an open application to REJECTED and stamps the
// rejection timestamp. Emits ApplicationRejected.
func (a CreditApplication) Reject(reason string, now time.Time) (CreditApplication, error) {
	next, err := a.moveTo(valueobject.StatusRejected, now)
	if err != nil {
		return a, err
	}
	t := now
	next.rejectedAt = &t
	next.domainEvents = append(next.domainEvents, event.NewApplicationRejected(
		a.id, a.customerNumber, reason,
	))
	return next, nil
}

// Cancel transitions any non-terminal application to CANCELLED and
// soft-deletes it. Emits ApplicationCancelled.
func (a CreditApplication) Cancel(reason string, now time.Time) (CreditApplication, error) {
	next, err := a.moveTo(valueobject.StatusCancelled, now)
	if err != nil {
		return a, err
	}
	t := now
	next.deletedAt = &t
	next.domainEvents = append(next.domainEvents, event.NewApplicationCancelled(
		a.id, a.customerNumber, reason, "",
	))
	return next, nil
}

// Supersede cancels an APPROVED application that has been replaced by a
// refinance. This is the only path out of a terminal state: the original
// credit is retired, never decisioned again.
func (a CreditApplication) Supersede(newApplicationID string, now time.Time) (CreditApplication, error) {
	if !a.status.Equal(valueobject.StatusApproved) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = valueobject.StatusCancelled
	next.updatedAt = now
	t := now
	next.deletedAt = &t
	next.domainEvents = copyEvents(a.domainEvents)
	next = next.withNote("superseded by refinance application " + newApplicationID)
	next.domainEvents = append(next.domainEvents, event.NewApplicationCancelled(
		a.id, a.customerNumber, "refinanced", newApplicationID,
	))
	return next, nil
}

// AppendNote returns a copy with the note joined onto existing notes.
func (a CreditApplication) AppendNote(note string, now time.Time) CreditApplication {
	next := a.withNote(note)
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	return next
}

func (a CreditApplication) withNote(note string) CreditApplication {
	next := a
	if note == "" {
		return next
	}
	if next.notes == "" {
		next.notes = note
	} else {
		next.notes = strings.Join([]string{next.notes, note}, "\n")
	}
	return next
}

func (a CreditApplication) moveTo(target valueobject.ApplicationStatus, now time.Time) (CreditApplication, error) {
	if !a.status.CanTransitionTo(target) {
		return a, valueobject.ErrInvalidStatusTransition
	}
	next := a
	next.status = target
	next.updatedAt = now
	next.domainEvents = copyEvents(a.domainEvents)
	next.domainEvents = append(next.domainEvents, event.NewApplicationStatusChanged(
		a.id, a.customerNumber, a.status.String(), target.String(),
	))
	return next, nil
}

// ---------------------------------------------------------------------------
// Accessors
// ---------------------------------------------------------------------------

func (a CreditApplication) ID() string                              { return a.id }
func (a CreditApplication) CustomerNumber() string                  { return a.customerNumber }
func (a CreditApplication) CreditType() valueobject.CreditType      { return a.creditType }
func (a CreditApplication) Amount() decimal.Decimal                 { return a.amount }
func (a CreditApplication) TermMonths() int                         { return a.termMonths }
func (a CreditApplication) MonthlyIncome() decimal.Decimal          { return a.monthlyIncome }
func (a CreditApplication) Notes() string                           { return a.notes }
func (a CreditApplication) Status() valueobject.ApplicationStatus   { return a.status }
func (a CreditApplication) Version() int                            { return a.version }
func (a CreditApplication) CreatedAt() time.Time                    { return a.createdAt }
func (a CreditApplication) UpdatedAt() time.Time                    { return a.updatedAt }
func (a CreditApplication) ApprovedAt() *time.Time                  { return a.approvedAt }
func (a CreditApplication) RejectedAt() *time.Time                  { return a.rejectedAt }
func (a CreditApplication) DeletedAt() *time.Time                   { return a.deletedAt }
func (a CreditApplication) IsDeleted() bool                         { return a.deletedAt != nil }
func (a CreditApplication) DomainEvents() []event.DomainEvent       { return a.domainEvents }

// ClearEvents returns a copy with an empty event list (call after publishing).
func (a CreditApplication) ClearEvents() CreditApplication {
	next := a
	next.domainEvents = nil
	return next
}

// ---------------------------------------------------------------------------
// helpers
// ---------------------------------------------------------------------------

func copyEvents(src []event.DomainEvent) []event.DomainEvent {
	if len(src) == 0 {
		return nil
	}
	dst := make([]event.DomainEvent, len(src))
	copy(dst, src)
	return dst
}
