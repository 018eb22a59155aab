package usecase

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/service"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// FindRefinanceEligibleUseCase lists a customer's approved, active credits.
type FindRefinanceEligibleUseCase struct {
	appRepo port.ApplicationRepository
}

// NewFindRefinanceEligibleUseCase wires dependencies.
func NewFindRefinanceEligibleUseCase(appRepo port.ApplicationRepository) *FindRefinanceEligibleUseCase {
	return &FindRefinanceEligibleUseCase{appRepo: appRepo}
}

// Execute returns every refinance-eligible application for the customer.
func (uc *FindRefinanceEligibleUseCase) Execute(ctx context.Context, customerNumber string) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.FindByCustomerAndStatus(ctx, customerNumber, valueobject.StatusApproved)
	if err != nil {
		return nil, fmt.Errorf("list approved applications: %w", err)
	}

	var eligible []dto.ApplicationResponse
	for _, app := range apps {
		if app.IsDeleted() {
			continue
		}
		eligible = append(eligible, toApplicationResponse(app))
	}
	return eligible, nil
}

// CalculateRefinanceOfferUseCase quotes the refinance rate for a tier.
type CalculateRefinanceOfferUseCase struct{}

// NewCalculateRefinanceOfferUseCase returns the use case.
func NewCalculateRefinanceOfferUseCase() *CalculateRefinanceOfferUseCase {
	return &CalculateRefinanceOfferUseCase{}
}

// Execute computes market rate × (1 − tier discount), 2 decimals.
func (uc *CalculateRefinanceOfferUseCase) Execute(marketRate decimal.Decimal, category string) (dto.RefinanceOffer, error) {
	tier, err := valueobject.NewCategory(category)
	if err != nil {
		return dto.RefinanceOffer{}, fmt.Errorf("parse category: %w", err)
	}

	return dto.RefinanceOffer{
		MarketRate:    marketRate,
		RefinanceRate: service.CalculateRefinanceRate(marketRate, tier),
		Category:      tier.String(),
	}, nil
}
