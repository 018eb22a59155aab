package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/event"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// --- Mock implementations ---

type mockApplicationRepository struct {
	saveFunc                    func(ctx context.Context, app model.CreditApplication) error
	saveAllFunc                 func(ctx context.Context, apps ...model.CreditApplication) error
	findByIDFunc                func(ctx context.Context, id string) (model.CreditApplication, error)
	findByCustomerAndStatusFunc func(ctx context.Context, customerNumber string, status valueobject.ApplicationStatus) ([]model.CreditApplication, error)
	findAllFunc                 func(ctx context.Context) ([]model.CreditApplication, error)
	savedApps                   []model.CreditApplication
	savedBatches                [][]model.CreditApplication
}

func (m *mockApplicationRepository) Save(ctx context.Context, app model.CreditApplication) error {
	if m.saveFunc != nil {
		return m.saveFunc(ctx, app)
	}
	m.savedApps = append(m.savedApps, app)
	return nil
}

func (m *mockApplicationRepository) SaveAll(ctx context.Context, apps ...model.CreditApplication) error {
	if m.saveAllFunc != nil {
		return m.saveAllFunc(ctx, apps...)
	}
	m.savedBatches = append(m.savedBatches, apps)
	m.savedApps = append(m.savedApps, apps...)
	return nil
}

func (m *mockApplicationRepository) FindByID(ctx context.Context, id string) (model.CreditApplication, error) {
	if m.findByIDFunc != nil {
		return m.findByIDFunc(ctx, id)
	}
	return model.CreditApplication{}, port.ErrApplicationNotFound
}

func (m *mockApplicationRepository) FindByCustomerAndStatus(ctx context.Context, customerNumber string, status valueobject.ApplicationStatus) ([]model.CreditApplication, error) {
	if m.findByCustomerAndStatusFunc != nil {
		return m.findByCustomerAndStatusFunc(ctx, customerNumber, status)
	}
	return nil, nil
}

func (m *mockApplicationRepository) FindAll(ctx context.Context) ([]model.CreditApplication, error) {
	if m.findAllFunc != nil {
		return m.findAllFunc(ctx)
	}
	return nil, nil
}

type mockTransitionLog struct {
	appendFunc          func(ctx context.Context, transitions ...model.StatusTransition) error
	findByAppFunc       func(ctx context.Context, applicationID string) ([]model.StatusTransition, error)
	appendedTransitions []model.StatusTransition
}

func (m *mockTransitionLog) Append(ctx context.Context, transitions ...model.StatusTransition) error {
	if m.appendFunc != nil {
		return m.appendFunc(ctx, transitions...)
	}
	m.appendedTransitions = append(m.appendedTransitions, transitions...)
	return nil
}

func (m *mockTransitionLog) FindByApplicationID(ctx context.Context, applicationID string) ([]model.StatusTransition, error) {
	if m.findByAppFunc != nil {
		return m.findByAppFunc(ctx, applicationID)
	}
	return nil, nil
}

type mockEventPublisher struct {
	publishFunc     func(ctx context.Context, events ...event.DomainEvent) error
	publishedEvents []event.DomainEvent
}

func (m *mockEventPublisher) Publish(ctx context.Context, evts ...event.DomainEvent) error {
	if m.publishFunc != nil {
		return m.publishFunc(ctx, evts...)
	}
	m.publishedEvents = append(m.publishedEvents, evts...)
	return nil
}

type mockProfileSource struct {
	customerFunc func(ctx context.Context, customerNumber string) (model.Customer, error)
	profileFunc  func(ctx context.Context, customerNumber string) (model.FinancialProfile, error)
}

func (m *mockProfileSource) GetCustomer(ctx context.Context, customerNumber string) (model.Customer, error) {
	if m.customerFunc != nil {
		return m.customerFunc(ctx, customerNumber)
	}
	return model.Customer{CustomerNumber: customerNumber, FullName: "Test Customer"}, nil
}

func (m *mockProfileSource) GetFinancialProfile(ctx context.Context, customerNumber string) (model.FinancialProfile, error) {
	if m.profileFunc != nil {
		return m.profileFunc(ctx, customerNumber)
	}
	return strongProfile(), nil
}

// --- Helpers ---

func mustCreditType(t *testing.T, raw string) valueobject.CreditType {
	t.Helper()
	ct, err := valueobject.NewCreditType(raw)
	if err != nil {
		t.Fatalf("credit type %q: %v", raw, err)
	}
	return ct
}

// --- Profile fixtures ---

// strongProfile scores well above the VIP threshold.
func strongProfile() model.FinancialProfile {
	return model.FinancialProfile{
		MonthlyExpenses:  decimal.NewFromInt(2_000),
		AverageBalance:   decimal.NewFromInt(20_000),
		OnTimePayments:   30,
		LatePayments:     0,
		AccountAgeMonths: 120,
	}
}

// standardProfile lands in the STANDARD band.
func standardProfile() model.FinancialProfile {
	return model.FinancialProfile{
		MonthlyExpenses: decimal.NewFromInt(2_000),
	}
}

// weakProfile scores below the RISKY minimum.
func weakProfile() model.FinancialProfile {
	return model.FinancialProfile{
		MonthlyExpenses: decimal.NewFromInt(8_500),
		LatePayments:    1,
	}
}
