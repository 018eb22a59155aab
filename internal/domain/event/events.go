package event

import (
	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/pkg/events"
)

// DomainEvent is an alias for the shared pkg/events.DomainEvent interface.
type DomainEvent = events.DomainEvent

const aggregateType = "CreditApplication"

// ---------------------------------------------------------------------------
// Credit Application Events
// ---------------------------------------------------------------------------

// ApplicationSubmitted is raised when a new application enters the system.
type ApplicationSubmitted struct {
	events.BaseEvent
	CustomerNumber string          `json:"customer_number"`
	CreditType     string          `json:"credit_type"`
	Amount         decimal.Decimal `json:"amount"`
	TermMonths     int             `json:"term_months"`
}

func NewApplicationSubmitted(
	applicationID, customerNumber, creditType string,
	amount decimal.Decimal, termMonths int,
) ApplicationSubmitted {
	return ApplicationSubmitted{
		BaseEvent:      events.NewBaseEvent("credit.application.submitted", applicationID, aggregateType),
		CustomerNumber: customerNumber,
		CreditType:     creditType,
		Amount:         amount,
		TermMonths:     termMonths,
	}
}

// ApplicationApproved is raised when an application is approved.
type ApplicationApproved struct {
	events.BaseEvent
	CustomerNumber string          `json:"customer_number"`
	Amount         decimal.Decimal `json:"amount"`
	Reason         string          `json:"reason"`
}

func NewApplicationApproved(
	applicationID, customerNumber string, amount decimal.Decimal, reason string,
) ApplicationApproved {
	return ApplicationApproved{
		BaseEvent:      events.NewBaseEvent("credit.application.approved", applicationID, aggregateType),
		CustomerNumber: customerNumber,
		Amount:         amount,
		Reason:         reason,
	}
}

// ApplicationRejected is raised when an application is rejected.
type ApplicationRejected struct {
	events.BaseEvent
	CustomerNumber string `json:"customer_number"`
	Reason         string `json:"reason"`
}

func NewApplicationRejected(applicationID, customerNumber, reason string) ApplicationRejected {
	return ApplicationRejected{
		BaseEvent:      events.NewBaseEvent("credit.application.rejected", applicationID, aggregateType),
		CustomerNumber: customerNumber,
		Reason:         reason,
	}
}

// ApplicationStatusChanged is raised on every non-decision status move.
type ApplicationStatusChanged struct {
	events.BaseEvent
	CustomerNumber string `json:"customer_number"`
	FromStatus     string `json:"from_status"`
	ToStatus       string `json:"to_status"`
}

func NewApplicationStatusChanged(
	applicationID, customerNumber, fromStatus, toStatus string,
) ApplicationStatusChanged {
	return ApplicationStatusChanged{
		BaseEvent:      events.NewBaseEvent("credit.application.status_changed", applicationID, aggregateType),
		CustomerNumber: customerNumber,
		FromStatus:     fromStatus,
		ToStatus:       toStatus,
	}
}

// ApplicationCancelled is raised when an application is cancelled or
// superseded by a refinance.
type ApplicationCancelled struct {
	events.BaseEvent
	CustomerNumber string `json:"customer_number"`
	Reason         string `json:"reason"`
	SupersededBy   string `json:"superseded_by,omitempty"`
}

func NewApplicationCancelled(
	applicationID, customerNumber, reason, supersededBy string,
) ApplicationCancelled {
	return ApplicationCancelled{
		BaseEvent:      events.NewBaseEvent("credit.application.cancelled", applicationID, aggregateType),
		CustomerNumber: customerNumber,
		Reason:         reason,
		SupersededBy:   supersededBy,
	}
}
