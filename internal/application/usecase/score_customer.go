package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/service"
)

// ScoreCustomerUseCase computes the credit score and policy tier for the
// customer behind an application. The tier is derived on every call; it is
// never read from storage.
type ScoreCustomerUseCase struct {
	appRepo port.ApplicationRepository
	signals port.FinancialProfileSource
	scorer  *service.ScoringEngine
}

// NewScoreCustomerUseCase wires dependencies.
func NewScoreCustomerUseCase(
	appRepo port.ApplicationRepository,
	signals port.FinancialProfileSource,
	scorer *service.ScoringEngine,
) *ScoreCustomerUseCase {
	return &ScoreCustomerUseCase{appRepo: appRepo, signals: signals, scorer: scorer}
}

// Execute scores the owner of the given application.
func (uc *ScoreCustomerUseCase) Execute(ctx context.Context, applicationID string) (dto.ScoreResponse, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("find application: %w", err)
	}

	customer, err := uc.signals.GetCustomer(ctx, app.CustomerNumber())
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("fetch customer: %w", err)
	}

	profile, err := uc.signals.GetFinancialProfile(ctx, app.CustomerNumber())
	if err != nil {
		return dto.ScoreResponse{}, fmt.Errorf("fetch financial profile: %w", err)
	}

	score := uc.scorer.CalculateScore(customer, app, profile)
	category := service.Categorize(score)

	return dto.ScoreResponse{
		CustomerNumber: app.CustomerNumber(),
		Score:          score,
		Category:       category.String(),
	}, nil
}
