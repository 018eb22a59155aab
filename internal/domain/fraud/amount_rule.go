package fraud

import (
	"context"
	"fmt"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

var (
	largeAmountHigh   = decimal.NewFromInt(100_000)
	largeAmountMedium = decimal.NewFromInt(10_000)
)

// LargeAmountRule flags unusually large transaction amounts.
type LargeAmountRule struct{}

// NewLargeAmountRule returns the rule.
func NewLargeAmountRule() *LargeAmountRule {
	return &LargeAmountRule{}
}

// Name implements Rule.
func (r *LargeAmountRule) Name() string { return "large_amount" }

// IsApplicable implements Rule.
func (r *LargeAmountRule) IsApplicable(req model.FraudEvaluationRequest) bool {
	return req.Amount.GreaterThan(decimal.Zero)
}

// Evaluate implements Rule.
func (r *LargeAmountRule) Evaluate(_ context.Context, req model.FraudEvaluationRequest) (Finding, error) {
	level := valueobject.RiskLow
	switch {
	case req.Amount.GreaterThanOrEqual(largeAmountHigh):
		level = valueobject.RiskHigh
	case req.Amount.GreaterThanOrEqual(largeAmountMedium):
		level = valueobject.RiskMedium
	}

	return Finding{
		RuleName: r.Name(),
		Level:    level,
		Reason:   fmt.Sprintf("transaction amount %s is %s risk", req.Amount.StringFixed(2), level),
	}, nil
}
