package usecase_test

import (
	"context"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/credit-origination/internal/application/usecase"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
	"github.com/meridianbank/credit-origination/pkg/testutil"
)

func reconstructApplication(
	t *testing.T,
	status valueobject.ApplicationStatus,
	createdAt, updatedAt time.Time,
	approvedAt, rejectedAt, deletedAt *time.Time,
) model.CreditApplication {
	t.Helper()
	return model.ReconstructCreditApplication(
		"app-hist-001", testutil.TestCustomerNumber,
		mustCreditType(t, "MORTGAGE"),
		decimal.NewFromInt(250_000), 240, decimal.NewFromInt(8_000), "",
		status, 1, createdAt, updatedAt,
		approvedAt, rejectedAt, deletedAt,
	)
}

func TestStageHistory_Execute(t *testing.T) {
	created := testutil.FixedNow

	t.Run("prefers the recorded transition log", func(t *testing.T) {
		app := reconstructApplication(t, valueobject.StatusInReview, created, created.Add(time.Hour), nil, nil, nil)
		log := &mockTransitionLog{
			findByAppFunc: func(context.Context, string) ([]model.StatusTransition, error) {
				return []model.StatusTransition{
					model.NewStatusTransition(app.ID(), valueobject.StatusPending, valueobject.StatusInReview, "ops", "", created.Add(time.Hour)),
				}, nil
			},
		}
		uc := usecase.NewStageHistoryUseCase(repoWith(app), log)

		stages, err := uc.Execute(context.Background(), app.ID())

		require.NoError(t, err)
		require.Len(t, stages, 2)
		assert.Equal(t, "received", stages[0].Name)
		assert.Equal(t, "PENDING", stages[0].Status)
		assert.Equal(t, created, stages[0].OccurredAt)
		assert.Equal(t, "in review", stages[1].Name)
		assert.Equal(t, "IN_REVIEW", stages[1].Status)
		assert.Equal(t, created.Add(time.Hour), stages[1].OccurredAt)
	})

	t.Run("pending application with no log has a single stage", func(t *testing.T) {
		app := reconstructApplication(t, valueobject.StatusPending, created, created, nil, nil, nil)
		uc := usecase.NewStageHistoryUseCase(repoWith(app), &mockTransitionLog{})

		stages, err := uc.Execute(context.Background(), app.ID())

		require.NoError(t, err)
		require.Len(t, stages, 1)
		assert.Equal(t, "received", stages[0].Name)
	})

	t.Run("cancelled application falls back to creation plus cancellation", func(t *testing.T) {
		cancelledAt := created.Add(48 * time.Hour)
		app := reconstructApplication(t, valueobject.StatusCancelled, created, cancelledAt, nil, nil, &cancelledAt)
		uc := usecase.NewStageHistoryUseCase(repoWith(app), &mockTransitionLog{})

		stages, err := uc.Execute(context.Background(), app.ID())

		require.NoError(t, err)
		require.Len(t, stages, 2)
		assert.Equal(t, "cancelled", stages[1].Name)
		assert.Equal(t, cancelledAt, stages[1].OccurredAt)
	})

	t.Run("approved application without a log gets the reconstructed chain", func(t *testing.T) {
		approvedAt := created.AddDate(0, 0, 5)
		app := reconstructApplication(t, valueobject.StatusApproved, created, approvedAt, &approvedAt, nil, nil)
		uc := usecase.NewStageHistoryUseCase(repoWith(app), &mockTransitionLog{})

		stages, err := uc.Execute(context.Background(), app.ID())

		require.NoError(t, err)
		require.Len(t, stages, 4)
		assert.Equal(t, []string{"received", "in review", "pending approval", "approved"},
			[]string{stages[0].Name, stages[1].Name, stages[2].Name, stages[3].Name})
		assert.Equal(t, created.AddDate(0, 0, 1), stages[1].OccurredAt)
		assert.Equal(t, created.AddDate(0, 0, 2), stages[2].OccurredAt)
		assert.Equal(t, approvedAt, stages[3].OccurredAt)
	})

	t.Run("terminal stage without a timestamp uses a fixed offset", func(t *testing.T) {
		app := reconstructApplication(t, valueobject.StatusRejected, created, created, nil, nil, nil)
		uc := usecase.NewStageHistoryUseCase(repoWith(app), &mockTransitionLog{})

		stages, err := uc.Execute(context.Background(), app.ID())

		require.NoError(t, err)
		require.Len(t, stages, 4)
		assert.Equal(t, "rejected", stages[3].Name)
		assert.Equal(t, created.AddDate(0, 0, 3), stages[3].OccurredAt)
	})

	t.Run("fails when the application does not exist", func(t *testing.T) {
		uc := usecase.NewStageHistoryUseCase(&mockApplicationRepository{}, &mockTransitionLog{})

		_, err := uc.Execute(context.Background(), "missing")

		require.ErrorIs(t, err, port.ErrApplicationNotFound)
	})
}
