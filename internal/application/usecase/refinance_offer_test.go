package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/credit-origination/internal/application/usecase"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
	"github.com/meridianbank/credit-origination/pkg/testutil"
)

func TestFindRefinanceEligible_Execute(t *testing.T) {
	active := approvedApplication(t)
	deletedAt := testutil.FixedNow
	superseded := model.ReconstructCreditApplication(
		"app-ref-002", testutil.TestCustomerNumber,
		mustCreditType(t, "MORTGAGE"),
		decimal.NewFromInt(200_000), 240, decimal.NewFromInt(9_000), "",
		valueobject.StatusApproved, 2,
		deletedAt.AddDate(0, 0, -60), deletedAt,
		nil, nil, &deletedAt,
	)

	repo := &mockApplicationRepository{
		findByCustomerAndStatusFunc: func(_ context.Context, customerNumber string, status valueobject.ApplicationStatus) ([]model.CreditApplication, error) {
			require.Equal(t, testutil.TestCustomerNumber, customerNumber)
			require.Equal(t, "APPROVED", status.String())
			return []model.CreditApplication{active, superseded}, nil
		},
	}
	uc := usecase.NewFindRefinanceEligibleUseCase(repo)

	eligible, err := uc.Execute(context.Background(), testutil.TestCustomerNumber)

	require.NoError(t, err)
	require.Len(t, eligible, 1)
	assert.Equal(t, active.ID(), eligible[0].ID)
}

func TestCalculateRefinanceOffer_Execute(t *testing.T) {
	uc := usecase.NewCalculateRefinanceOfferUseCase()
	marketRate := decimal.RequireFromString("10.00")

	tests := []struct {
		category string
		want     string
	}{
		{"VIP", "8.00"},
		{"STANDARD", "9.00"},
		{"RISKY", "9.50"},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			offer, err := uc.Execute(marketRate, tt.category)

			require.NoError(t, err)
			assert.Equal(t, tt.want, offer.RefinanceRate.StringFixed(2))
			assert.Equal(t, tt.category, offer.Category)
			assert.True(t, offer.MarketRate.Equal(marketRate))
		})
	}

	t.Run("unknown category is rejected", func(t *testing.T) {
		_, err := uc.Execute(marketRate, "PLATINUM")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "parse category")
	})
}
