package usecase_test

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/application/usecase"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/service"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
	"github.com/meridianbank/credit-origination/pkg/testutil"
)

func approvedApplication(t *testing.T) model.CreditApplication {
	t.Helper()
	approvedAt := testutil.FixedNow
	return model.ReconstructCreditApplication(
		"app-ref-001", testutil.TestCustomerNumber,
		mustCreditType(t, "AUTO_LOAN"),
		decimal.NewFromInt(40_000), 48, decimal.NewFromInt(9_000), "",
		valueobject.StatusApproved, 3,
		approvedAt.AddDate(0, 0, -30), approvedAt,
		&approvedAt, nil, nil,
	)
}

func newRefinanceUseCase(
	appRepo *mockApplicationRepository,
	log *mockTransitionLog,
	signals *mockProfileSource,
	publisher *mockEventPublisher,
) *usecase.RefinanceUseCase {
	return usecase.NewRefinanceUseCase(appRepo, log, signals, publisher, service.NewScoringEngine())
}

func TestRefinance_Execute(t *testing.T) {
	marketRate := decimal.RequireFromString("10.00")

	t.Run("vip customer gets an auto-approved replacement", func(t *testing.T) {
		existing := approvedApplication(t)
		appRepo := repoWith(existing)
		log := &mockTransitionLog{}
		publisher := &mockEventPublisher{}
		uc := newRefinanceUseCase(appRepo, log, &mockProfileSource{}, publisher)

		resp, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:  existing.ID(),
			CustomerNumber: testutil.TestCustomerNumber,
			MarketRate:     marketRate,
		})

		require.NoError(t, err)
		assert.Equal(t, "VIP", resp.Category)
		assert.Equal(t, "8.00", resp.RefinanceRate.StringFixed(2))
		assert.Equal(t, "APPROVED", resp.Application.Status)
		assert.Equal(t, 48, resp.Application.TermMonths)
		assert.Contains(t, resp.Application.Notes, "refinanced from application "+existing.ID())
		require.NotNil(t, resp.Application.ApprovedAt)

		require.Len(t, appRepo.savedBatches, 1)
		require.Len(t, appRepo.savedBatches[0], 2)
		old := appRepo.savedBatches[0][1]
		assert.Equal(t, "CANCELLED", old.Status().String())
		assert.True(t, old.IsDeleted())
		assert.Contains(t, old.Notes(), "superseded by refinance application "+resp.Application.ID)

		require.Len(t, log.appendedTransitions, 2)
		for _, tr := range log.appendedTransitions {
			assert.Equal(t, "refinance-engine", tr.Actor)
		}
		assert.Equal(t, existing.ID(), log.appendedTransitions[0].ApplicationID)
		assert.Equal(t, "CANCELLED", log.appendedTransitions[0].ToStatus.String())
		assert.Equal(t, resp.Application.ID, log.appendedTransitions[1].ApplicationID)
		assert.Equal(t, "APPROVED", log.appendedTransitions[1].ToStatus.String())

		assert.NotEmpty(t, publisher.publishedEvents)
	})

	t.Run("term extension lengthens the replacement", func(t *testing.T) {
		existing := approvedApplication(t)
		uc := newRefinanceUseCase(repoWith(existing), &mockTransitionLog{}, &mockProfileSource{}, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:    existing.ID(),
			CustomerNumber:   testutil.TestCustomerNumber,
			MarketRate:       marketRate,
			ExtendTermMonths: 12,
		})

		require.NoError(t, err)
		assert.Equal(t, 60, resp.Application.TermMonths)
	})

	t.Run("non-positive extension keeps the original term", func(t *testing.T) {
		existing := approvedApplication(t)
		uc := newRefinanceUseCase(repoWith(existing), &mockTransitionLog{}, &mockProfileSource{}, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:    existing.ID(),
			CustomerNumber:   testutil.TestCustomerNumber,
			MarketRate:       marketRate,
			ExtendTermMonths: -6,
		})

		require.NoError(t, err)
		assert.Equal(t, 48, resp.Application.TermMonths)
	})

	t.Run("standard customer lands in manual approval", func(t *testing.T) {
		existing := approvedApplication(t)
		signals := &mockProfileSource{
			profileFunc: func(context.Context, string) (model.FinancialProfile, error) {
				return standardProfile(), nil
			},
		}
		uc := newRefinanceUseCase(repoWith(existing), &mockTransitionLog{}, signals, &mockEventPublisher{})

		resp, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:  existing.ID(),
			CustomerNumber: testutil.TestCustomerNumber,
			MarketRate:     marketRate,
		})

		require.NoError(t, err)
		assert.Equal(t, "STANDARD", resp.Category)
		assert.Equal(t, "9.00", resp.RefinanceRate.StringFixed(2))
		assert.Equal(t, "PENDING_APPROVAL", resp.Application.Status)
	})

	t.Run("only approved applications can be refinanced", func(t *testing.T) {
		pending := pendingApplication(t)
		uc := newRefinanceUseCase(repoWith(pending), &mockTransitionLog{}, &mockProfileSource{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:  pending.ID(),
			CustomerNumber: testutil.TestCustomerNumber,
			MarketRate:     marketRate,
		})

		require.ErrorIs(t, err, usecase.ErrNotRefinanceable)
	})

	t.Run("only the owner can refinance", func(t *testing.T) {
		existing := approvedApplication(t)
		uc := newRefinanceUseCase(repoWith(existing), &mockTransitionLog{}, &mockProfileSource{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:  existing.ID(),
			CustomerNumber: testutil.TestOtherCustomerNumber,
			MarketRate:     marketRate,
		})

		require.ErrorIs(t, err, usecase.ErrNotApplicationOwner)
	})

	t.Run("fails when the application does not exist", func(t *testing.T) {
		uc := newRefinanceUseCase(&mockApplicationRepository{}, &mockTransitionLog{}, &mockProfileSource{}, &mockEventPublisher{})

		_, err := uc.Execute(context.Background(), dto.RefinanceRequest{
			ApplicationID:  "missing",
			CustomerNumber: testutil.TestCustomerNumber,
			MarketRate:     marketRate,
		})

		require.ErrorIs(t, err, port.ErrApplicationNotFound)
	})
}
