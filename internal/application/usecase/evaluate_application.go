package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/service"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// EvaluateApplicationUseCase orchestrates new application submission:
// scoring, tier derivation, the approval decision, persistence, the
// transition log, and event publication.
type EvaluateApplicationUseCase struct {
	appRepo   port.ApplicationRepository
	log       port.TransitionLogRepository
	signals   port.FinancialProfileSource
	publisher port.EventPublisher
	scorer    *service.ScoringEngine
	approver  *service.ApprovalEngine
}

// NewEvaluateApplicationUseCase wires dependencies.
func NewEvaluateApplicationUseCase(
	appRepo port.ApplicationRepository,
	log port.TransitionLogRepository,
	signals port.FinancialProfileSource,
	publisher port.EventPublisher,
	scorer *service.ScoringEngine,
	approver *service.ApprovalEngine,
) *EvaluateApplicationUseCase {
	return &EvaluateApplicationUseCase{
		appRepo:   appRepo,
		log:       log,
		signals:   signals,
		publisher: publisher,
		scorer:    scorer,
		approver:  approver,
	}
}

// Execute creates, scores, decides, and persists a credit application.
func (uc *EvaluateApplicationUseCase) Execute(
	ctx context.Context,
	req dto.SubmitApplicationRequest,
) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	creditType, err := valueobject.NewCreditType(req.CreditType)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("parse credit type: %w", err)
	}

	// 1. Create the application aggregate.
	app, err := model.NewCreditApplication(
		req.CustomerNumber, creditType, req.Amount,
		req.TermMonths, req.MonthlyIncome, req.Notes, now,
	)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("create application: %w", err)
	}

	// 2. Fetch the customer and financial signals.
	customer, err := uc.signals.GetCustomer(ctx, req.CustomerNumber)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("fetch customer: %w", err)
	}
	profile, err := uc.signals.GetFinancialProfile(ctx, req.CustomerNumber)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("fetch financial profile: %w", err)
	}

	// 3. Score and derive the tier for this decision.
	score := uc.scorer.CalculateScore(customer, app, profile)
	category := service.Categorize(score)

	// 4. Apply the approval policy.
	decided, err := uc.approver.Decide(app, category, score, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("decide application: %w", err)
	}

	// 5. Persist.
	if err := uc.appRepo.Save(ctx, decided); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	// 6. Record the real transition for the timeline.
	if !decided.Status().Equal(app.Status()) {
		transition := model.NewStatusTransition(
			decided.ID(), valueobject.StatusPending, decided.Status(),
			"approval-engine", "", now,
		)
		if err := uc.log.Append(ctx, transition); err != nil {
			return dto.ApplicationResponse{}, fmt.Errorf("append transition: %w", err)
		}
	}

	// 7. Publish domain events.
	if err := uc.publisher.Publish(ctx, decided.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(decided), nil
}

func toApplicationResponse(app model.CreditApplication) dto.ApplicationResponse {
	return dto.ApplicationResponse{
		ID:             app.ID(),
		CustomerNumber: app.CustomerNumber(),
		CreditType:     app.CreditType().String(),
		Amount:         app.Amount(),
		TermMonths:     app.TermMonths(),
		MonthlyIncome:  app.MonthlyIncome(),
		Notes:          app.Notes(),
		Status:         app.Status().String(),
		CreatedAt:      app.CreatedAt(),
		UpdatedAt:      app.UpdatedAt(),
		ApprovedAt:     app.ApprovedAt(),
		RejectedAt:     app.RejectedAt(),
	}
}
