package port

import (
	"context"
	"errors"

	"github.com/meridianbank/credit-origination/internal/domain/event"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// ErrApplicationNotFound is returned when no application matches the given id.
var ErrApplicationNotFound = errors.New("credit application not found")

// ---------------------------------------------------------------------------
// Repository ports (driven/secondary adapters)
// ---------------------------------------------------------------------------

// ApplicationRepository persists and retrieves credit applications.
type ApplicationRepository interface {
	Save(ctx context.Context, app model.CreditApplication) error
	// SaveAll persists the given applications as one atomic unit. The
	// refinance flow depends on this: the new application and the
	// superseded one must commit or fail together.
	SaveAll(ctx context.Context, apps ...model.CreditApplication) error
	FindByID(ctx context.Context, id string) (model.CreditApplication, error)
	FindByCustomerAndStatus(ctx context.Context, customerNumber string, status valueobject.ApplicationStatus) ([]model.CreditApplication, error)
	FindAll(ctx context.Context) ([]model.CreditApplication, error)
}

// TransitionLogRepository stores the append-only status transition log.
type TransitionLogRepository interface {
	Append(ctx context.Context, transitions ...model.StatusTransition) error
	FindByApplicationID(ctx context.Context, applicationID string) ([]model.StatusTransition, error)
}

// ---------------------------------------------------------------------------
// Event publisher port
// ---------------------------------------------------------------------------

// EventPublisher publishes domain events to external consumers.
type EventPublisher interface {
	Publish(ctx context.Context, events ...event.DomainEvent) error
}

// ---------------------------------------------------------------------------
// External service ports
// ---------------------------------------------------------------------------

// FinancialProfileSource supplies customer records and financial signals.
// The core never fetches these itself.
type FinancialProfileSource interface {
	GetCustomer(ctx context.Context, customerNumber string) (model.Customer, error)
	GetFinancialProfile(ctx context.Context, customerNumber string) (model.FinancialProfile, error)
}

// SeenIPStore is the keyed, TTL-bounded memory behind the IP-novelty fraud
// rule. The store is owned by the caller and injected at evaluation time so
// the rule itself stays pure.
type SeenIPStore interface {
	IsKnown(ctx context.Context, customerNumber, ip string) (bool, error)
	Remember(ctx context.Context, customerNumber, ip string) error
}
