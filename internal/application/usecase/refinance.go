package usecase

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/service"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

var (
	// ErrNotRefinanceable is returned when the application is not APPROVED.
	ErrNotRefinanceable = errors.New("only approved applications can be refinanced")
	// ErrNotApplicationOwner is returned when the requesting customer does
	// not own the application.
	ErrNotApplicationOwner = errors.New("application does not belong to customer")
)

// RefinanceUseCase replaces an approved application with a new one carrying
// an adjusted term and rate, cancelling the original. The two writes are a
// single transactional unit through ApplicationRepository.SaveAll.
type RefinanceUseCase struct {
	appRepo   port.ApplicationRepository
	log       port.TransitionLogRepository
	signals   port.FinancialProfileSource
	publisher port.EventPublisher
	scorer    *service.ScoringEngine
}

// NewRefinanceUseCase wires dependencies.
func NewRefinanceUseCase(
	appRepo port.ApplicationRepository,
	log port.TransitionLogRepository,
	signals port.FinancialProfileSource,
	publisher port.EventPublisher,
	scorer *service.ScoringEngine,
) *RefinanceUseCase {
	return &RefinanceUseCase{
		appRepo:   appRepo,
		log:       log,
		signals:   signals,
		publisher: publisher,
		scorer:    scorer,
	}
}

// Execute refinances an approved application.
func (uc *RefinanceUseCase) Execute(ctx context.Context, req dto.RefinanceRequest) (dto.RefinanceResponse, error) {
	now := time.Now().UTC()

	existing, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("find application: %w", err)
	}
	if !existing.Status().Equal(valueobject.StatusApproved) {
		return dto.RefinanceResponse{}, ErrNotRefinanceable
	}
	if existing.CustomerNumber() != req.CustomerNumber {
		return dto.RefinanceResponse{}, ErrNotApplicationOwner
	}

	// The tier reflects the customer's current score, not the one they were
	// approved under.
	customer, err := uc.signals.GetCustomer(ctx, req.CustomerNumber)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("fetch customer: %w", err)
	}
	profile, err := uc.signals.GetFinancialProfile(ctx, req.CustomerNumber)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("fetch financial profile: %w", err)
	}
	score := uc.scorer.CalculateScore(customer, existing, profile)
	category := service.Categorize(score)

	term := existing.TermMonths()
	if req.ExtendTermMonths > 0 {
		term += req.ExtendTermMonths
	}

	newApp, err := model.NewCreditApplication(
		req.CustomerNumber,
		existing.CreditType(),
		existing.Amount(),
		term,
		existing.MonthlyIncome(),
		"refinanced from application "+existing.ID(),
		now,
	)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("create refinance application: %w", err)
	}

	newApp, err = applyRefinanceShortcut(newApp, category, now)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("apply refinance shortcut: %w", err)
	}

	old, err := existing.Supersede(newApp.ID(), now)
	if err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("supersede application: %w", err)
	}

	if err := uc.appRepo.SaveAll(ctx, newApp, old); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("save applications: %w", err)
	}

	transitions := []model.StatusTransition{
		model.NewStatusTransition(
			old.ID(), valueobject.StatusApproved, valueobject.StatusCancelled,
			"refinance-engine", "superseded by "+newApp.ID(), now,
		),
	}
	if !newApp.Status().Equal(valueobject.StatusPending) {
		transitions = append(transitions, model.NewStatusTransition(
			newApp.ID(), valueobject.StatusPending, newApp.Status(),
			"refinance-engine", "", now,
		))
	}
	if err := uc.log.Append(ctx, transitions...); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("append transitions: %w", err)
	}

	allEvents := append(newApp.DomainEvents(), old.DomainEvents()...)
	if err := uc.publisher.Publish(ctx, allEvents...); err != nil {
		return dto.RefinanceResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return dto.RefinanceResponse{
		Application:   toApplicationResponse(newApp),
		RefinanceRate: service.CalculateRefinanceRate(req.MarketRate, category),
		Category:      category.String(),
	}, nil
}

// applyRefinanceShortcut fast-tracks the replacement application by tier:
// VIP skips review entirely, STANDARD goes straight to manual approval,
// RISKY enters review, anything else stays PENDING.
func applyRefinanceShortcut(
	app model.CreditApplication,
	category valueobject.Category,
	now time.Time,
) (model.CreditApplication, error) {
	switch {
	case category.Equal(valueobject.CategoryVIP):
		return app.Approve("vip refinance auto-approval", now)
	case category.Equal(valueobject.CategoryStandard):
		return app.MarkPendingApproval(now)
	case category.Equal(valueobject.CategoryRisky):
		return app.StartReview(now)
	default:
		return app, nil
	}
}
