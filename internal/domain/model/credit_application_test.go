package model_test

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/credit-origination/internal/domain/event"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
	"github.com/meridianbank/credit-origination/pkg/testutil"
)

func newApplication(t *testing.T) model.CreditApplication {
	t.Helper()
	app, err := model.NewCreditApplication(
		testutil.TestCustomerNumber,
		valueobject.CreditTypeMortgage,
		decimal.NewFromInt(250_000),
		240,
		decimal.NewFromInt(9_000),
		"first home",
		testutil.FixedNow,
	)
	require.NoError(t, err)
	return app
}

func TestNewCreditApplication(t *testing.T) {
	t.Run("creates a pending application with a submission event", func(t *testing.T) {
		app := newApplication(t)

		assert.NotEmpty(t, app.ID())
		assert.True(t, app.Status().Equal(valueobject.StatusPending))
		assert.Equal(t, 1, app.Version())
		assert.Equal(t, testutil.FixedNow, app.CreatedAt())
		assert.Nil(t, app.ApprovedAt())
		assert.Nil(t, app.RejectedAt())
		assert.False(t, app.IsDeleted())

		require.Len(t, app.DomainEvents(), 1)
		assert.Equal(t, "credit.application.submitted", app.DomainEvents()[0].EventType())
	})

	t.Run("validation", func(t *testing.T) {
		cases := []struct {
			name   string
			mutate func(*string, *valueobject.CreditType, *decimal.Decimal, *int, *decimal.Decimal)
			errMsg string
		}{
			{"missing customer", func(c *string, _ *valueobject.CreditType, _ *decimal.Decimal, _ *int, _ *decimal.Decimal) {
				*c = ""
			}, "customer number is required"},
			{"missing credit type", func(_ *string, ct *valueobject.CreditType, _ *decimal.Decimal, _ *int, _ *decimal.Decimal) {
				*ct = valueobject.CreditType{}
			}, "credit type is required"},
			{"non-positive amount", func(_ *string, _ *valueobject.CreditType, a *decimal.Decimal, _ *int, _ *decimal.Decimal) {
				*a = decimal.Zero
			}, "amount must be positive"},
			{"term below one", func(_ *string, _ *valueobject.CreditType, _ *decimal.Decimal, tm *int, _ *decimal.Decimal) {
				*tm = 0
			}, "term months must be at least 1"},
			{"non-positive income", func(_ *string, _ *valueobject.CreditType, _ *decimal.Decimal, _ *int, inc *decimal.Decimal) {
				*inc = decimal.NewFromInt(-1)
			}, "monthly income must be positive"},
		}

		for _, tc := range cases {
			t.Run(tc.name, func(t *testing.T) {
				customer := testutil.TestCustomerNumber
				creditType := valueobject.CreditTypeMortgage
				amount := decimal.NewFromInt(100_000)
				term := 120
				income := decimal.NewFromInt(5_000)
				tc.mutate(&customer, &creditType, &amount, &term, &income)

				_, err := model.NewCreditApplication(customer, creditType, amount, term, income, "", testutil.FixedNow)
				require.Error(t, err)
				assert.Contains(t, err.Error(), tc.errMsg)
			})
		}
	})
}

func TestCreditApplication_Transitions(t *testing.T) {
	later := testutil.FixedNow.Add(time.Hour)

	t.Run("pending to in review to pending approval to approved", func(t *testing.T) {
		app := newApplication(t)

		reviewed, err := app.StartReview(later)
		require.NoError(t, err)
		assert.True(t, reviewed.Status().Equal(valueobject.StatusInReview))

		pended, err := reviewed.MarkPendingApproval(later)
		require.NoError(t, err)

		approved, err := pended.Approve("manual approval", later)
		require.NoError(t, err)
		assert.True(t, approved.Status().Equal(valueobject.StatusApproved))
		require.NotNil(t, approved.ApprovedAt())
		assert.Nil(t, approved.RejectedAt())
	})

	t.Run("transitions do not mutate the receiver", func(t *testing.T) {
		app := newApplication(t)
		_, err := app.StartReview(later)
		require.NoError(t, err)

		assert.True(t, app.Status().Equal(valueobject.StatusPending))
		assert.Equal(t, testutil.FixedNow, app.UpdatedAt())
	})

	t.Run("terminal states admit no further transitions", func(t *testing.T) {
		app := newApplication(t)
		approved, err := app.Approve("ok", later)
		require.NoError(t, err)

		_, err = approved.Reject("no", later)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		_, err = approved.StartReview(later)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
		_, err = approved.Cancel("change of mind", later)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("in review cannot be re-entered", func(t *testing.T) {
		app := newApplication(t)
		pended, err := app.MarkPendingApproval(later)
		require.NoError(t, err)

		_, err = pended.StartReview(later)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})

	t.Run("cancel soft-deletes", func(t *testing.T) {
		app := newApplication(t)
		cancelled, err := app.Cancel("customer withdrew", later)
		require.NoError(t, err)

		assert.True(t, cancelled.Status().Equal(valueobject.StatusCancelled))
		assert.True(t, cancelled.IsDeleted())
		require.NotNil(t, cancelled.DeletedAt())
		assert.Equal(t, later, *cancelled.DeletedAt())
	})

	t.Run("at most one decision timestamp is ever set", func(t *testing.T) {
		app := newApplication(t)

		approved, err := app.Approve("ok", later)
		require.NoError(t, err)
		assert.Nil(t, approved.RejectedAt())

		rejected, err := app.Reject("no", later)
		require.NoError(t, err)
		assert.Nil(t, rejected.ApprovedAt())
	})
}

func TestCreditApplication_Supersede(t *testing.T) {
	later := testutil.FixedNow.Add(time.Hour)

	t.Run("retires an approved application", func(t *testing.T) {
		app := newApplication(t)
		approved, err := app.Approve("ok", testutil.FixedNow)
		require.NoError(t, err)
		approved = approved.ClearEvents()

		superseded, err := approved.Supersede("app-new-001", later)
		require.NoError(t, err)

		assert.True(t, superseded.Status().Equal(valueobject.StatusCancelled))
		assert.True(t, superseded.IsDeleted())
		assert.Contains(t, superseded.Notes(), "superseded by refinance application app-new-001")

		require.Len(t, superseded.DomainEvents(), 1)
		cancelled, ok := superseded.DomainEvents()[0].(event.ApplicationCancelled)
		require.True(t, ok)
		assert.Equal(t, "app-new-001", cancelled.SupersededBy)
	})

	t.Run("rejects any non-approved application", func(t *testing.T) {
		app := newApplication(t)

		_, err := app.Supersede("app-new-001", later)
		assert.ErrorIs(t, err, valueobject.ErrInvalidStatusTransition)
	})
}

func TestCreditApplication_Notes(t *testing.T) {
	app := newApplication(t)

	noted := app.AppendNote("called the customer", testutil.FixedNow)
	assert.Equal(t, "first home\ncalled the customer", noted.Notes())

	unchanged := app.AppendNote("", testutil.FixedNow)
	assert.Equal(t, "first home", unchanged.Notes())
}

func TestCreditApplication_ClearEvents(t *testing.T) {
	app := newApplication(t)
	require.NotEmpty(t, app.DomainEvents())

	cleared := app.ClearEvents()
	assert.Empty(t, cleared.DomainEvents())
	assert.NotEmpty(t, app.DomainEvents())
}
