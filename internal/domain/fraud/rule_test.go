package fraud_test

import (
	"context"
	"fmt"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meridianbank/credit-origination/internal/domain/fraud"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
	"github.com/meridianbank/credit-origination/pkg/testutil"
)

// --- Mock seen-IP store ---

type mockSeenIPStore struct {
	isKnownFunc func(ctx context.Context, customerNumber, ip string) (bool, error)
	remembered  []string
}

func (m *mockSeenIPStore) IsKnown(ctx context.Context, customerNumber, ip string) (bool, error) {
	if m.isKnownFunc != nil {
		return m.isKnownFunc(ctx, customerNumber, ip)
	}
	return false, nil
}

func (m *mockSeenIPStore) Remember(_ context.Context, customerNumber, ip string) error {
	m.remembered = append(m.remembered, customerNumber+"/"+ip)
	return nil
}

func monitoredTransaction() model.FraudEvaluationRequest {
	return model.FraudEvaluationRequest{
		CustomerNumber:     testutil.TestCustomerNumber,
		TransactionType:    "TRANSFER",
		Amount:             decimal.NewFromInt(2_500),
		IPAddress:          "203.0.113.7",
		UserAgent:          "test-agent",
		DeviceID:           "device-001",
		Location:           "Lisbon, PT",
		CounterpartAccount: "ACC-9001",
	}
}

// --- Rules ---

func TestUnusualLocationRule(t *testing.T) {
	rule := fraud.NewUnusualLocationRule()

	t.Run("not applicable without a location", func(t *testing.T) {
		req := monitoredTransaction()
		req.Location = "   "
		assert.False(t, rule.IsApplicable(req))
	})

	t.Run("country extraction and risk levels", func(t *testing.T) {
		cases := []struct {
			location string
			want     valueobject.RiskLevel
		}{
			{"Pyongyang, KP", valueobject.RiskHigh},
			{"Tehran, ir", valueobject.RiskHigh},
			{"Moscow, RU", valueobject.RiskMedium},
			{"Minsk,BY", valueobject.RiskMedium},
			{"Lisbon, PT", valueobject.RiskLow},
			{"SY", valueobject.RiskHigh},
			{"ru-somewhere", valueobject.RiskMedium},
			{"Berlin", valueobject.RiskLow},
		}

		for _, tc := range cases {
			req := monitoredTransaction()
			req.Location = tc.location

			finding, err := rule.Evaluate(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, finding.Level.Equal(tc.want), "location %q", tc.location)
			assert.NotEmpty(t, finding.Reason)
		}
	})

	t.Run("reason is computed per call", func(t *testing.T) {
		first := monitoredTransaction()
		first.Location = "Havana, CU"
		second := monitoredTransaction()
		second.Location = "Oslo, NO"

		f1, err := rule.Evaluate(context.Background(), first)
		require.NoError(t, err)
		f2, err := rule.Evaluate(context.Background(), second)
		require.NoError(t, err)

		assert.Contains(t, f1.Reason, "CU")
		assert.Contains(t, f2.Reason, "NO")
	})
}

func TestIPNoveltyRule(t *testing.T) {
	t.Run("not applicable without ip or customer", func(t *testing.T) {
		rule := fraud.NewIPNoveltyRule(&mockSeenIPStore{})

		req := monitoredTransaction()
		req.IPAddress = ""
		assert.False(t, rule.IsApplicable(req))

		req = monitoredTransaction()
		req.CustomerNumber = ""
		assert.False(t, rule.IsApplicable(req))
	})

	t.Run("known ip is low risk", func(t *testing.T) {
		store := &mockSeenIPStore{
			isKnownFunc: func(_ context.Context, _, _ string) (bool, error) { return true, nil },
		}
		rule := fraud.NewIPNoveltyRule(store)

		finding, err := rule.Evaluate(context.Background(), monitoredTransaction())
		require.NoError(t, err)
		assert.True(t, finding.Level.Equal(valueobject.RiskLow))
	})

	t.Run("novel ip is medium risk", func(t *testing.T) {
		rule := fraud.NewIPNoveltyRule(&mockSeenIPStore{})

		finding, err := rule.Evaluate(context.Background(), monitoredTransaction())
		require.NoError(t, err)
		assert.True(t, finding.Level.Equal(valueobject.RiskMedium))
		assert.Contains(t, finding.Reason, "first transaction from ip")
	})

	t.Run("store failure surfaces as an error", func(t *testing.T) {
		store := &mockSeenIPStore{
			isKnownFunc: func(_ context.Context, _, _ string) (bool, error) {
				return false, fmt.Errorf("store unavailable")
			},
		}
		rule := fraud.NewIPNoveltyRule(store)

		_, err := rule.Evaluate(context.Background(), monitoredTransaction())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "lookup seen ip")
	})
}

func TestLargeAmountRule(t *testing.T) {
	rule := fraud.NewLargeAmountRule()

	t.Run("not applicable for non-positive amounts", func(t *testing.T) {
		req := monitoredTransaction()
		req.Amount = decimal.Zero
		assert.False(t, rule.IsApplicable(req))
	})

	cases := []struct {
		amount int64
		want   valueobject.RiskLevel
	}{
		{250_000, valueobject.RiskHigh},
		{100_000, valueobject.RiskHigh},
		{99_999, valueobject.RiskMedium},
		{10_000, valueobject.RiskMedium},
		{9_999, valueobject.RiskLow},
		{500, valueobject.RiskLow},
	}

	for _, tc := range cases {
		t.Run(fmt.Sprintf("amount %d", tc.amount), func(t *testing.T) {
			req := monitoredTransaction()
			req.Amount = decimal.NewFromInt(tc.amount)

			finding, err := rule.Evaluate(context.Background(), req)
			require.NoError(t, err)
			assert.True(t, finding.Level.Equal(tc.want))
		})
	}
}

// --- Engine ---

func TestEngine_Evaluate(t *testing.T) {
	t.Run("aggregates the maximum level across applicable rules", func(t *testing.T) {
		store := &mockSeenIPStore{}
		engine := fraud.NewEngine(store,
			fraud.NewUnusualLocationRule(),
			fraud.NewIPNoveltyRule(store),
			fraud.NewLargeAmountRule(),
		)

		req := monitoredTransaction()
		req.Location = "Damascus, SY"

		report, err := engine.Evaluate(context.Background(), req)
		require.NoError(t, err)
		require.Len(t, report.Findings, 3)
		assert.True(t, report.OverallLevel.Equal(valueobject.RiskHigh))
	})

	t.Run("skips rules that are not applicable", func(t *testing.T) {
		store := &mockSeenIPStore{}
		engine := fraud.NewEngine(store,
			fraud.NewUnusualLocationRule(),
			fraud.NewLargeAmountRule(),
		)

		req := monitoredTransaction()
		req.Location = ""
		req.Amount = decimal.Zero

		report, err := engine.Evaluate(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, report.Findings)
		assert.True(t, report.OverallLevel.Equal(valueobject.RiskLow))
	})

	t.Run("remembers the ip after evaluation", func(t *testing.T) {
		store := &mockSeenIPStore{}
		engine := fraud.NewEngine(store, fraud.NewIPNoveltyRule(store))

		req := monitoredTransaction()
		_, err := engine.Evaluate(context.Background(), req)
		require.NoError(t, err)

		require.Len(t, store.remembered, 1)
		assert.Equal(t, testutil.TestCustomerNumber+"/203.0.113.7", store.remembered[0])
	})

	t.Run("does not write when the request carries no ip", func(t *testing.T) {
		store := &mockSeenIPStore{}
		engine := fraud.NewEngine(store, fraud.NewLargeAmountRule())

		req := monitoredTransaction()
		req.IPAddress = ""

		_, err := engine.Evaluate(context.Background(), req)
		require.NoError(t, err)
		assert.Empty(t, store.remembered)
	})
}
