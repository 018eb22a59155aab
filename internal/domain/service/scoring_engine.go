package service

import (
	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/model"
)

// ---------------------------------------------------------------------------
// ScoringEngine – multi-factor credit score calculation
// ---------------------------------------------------------------------------

// Score bounds. Every computed score is clamped into this range.
const (
	MinScore = 300
	MaxScore = 900
)

// baseScore is the demographic-factor placeholder every applicant starts from.
const baseScore = 500

var (
	ratioExcellent = decimal.NewFromFloat(0.5)
	ratioGood      = decimal.NewFromFloat(0.7)
	ratioFair      = decimal.NewFromFloat(0.9)

	balanceHigh   = decimal.NewFromInt(10_000)
	balanceMedium = decimal.NewFromInt(5_000)
	balanceLow    = decimal.NewFromInt(1_000)
)

// ScoringEngine computes a deterministic credit score from the applicant's
// application and financial signal bag. It is pure: no randomness, no
// external calls, identical inputs always yield identical scores.
type ScoringEngine struct{}

// NewScoringEngine returns a new engine instance.
func NewScoringEngine() *ScoringEngine {
	return &ScoringEngine{}
}

// CalculateScore sums four sub-scores and clamps the result to [300, 900].
func (e *ScoringEngine) CalculateScore(
	_ model.Customer,
	app model.CreditApplication,
	profile model.FinancialProfile,
) int {
	score := baseScore
	score += e.incomeExpenseScore(app.MonthlyIncome(), profile.MonthlyExpenses)
	score += e.creditHistoryScore(profile)
	score += e.bankActivityScore(profile)

	if score < MinScore {
		return MinScore
	}
	if score > MaxScore {
		return MaxScore
	}
	return score
}

// incomeExpenseScore rewards low expense-to-income ratios. The ratio is
// computed at 2 decimals, round-half-up. Non-positive income is always a
// penalty regardless of expenses.
func (e *ScoringEngine) incomeExpenseScore(income, expenses decimal.Decimal) int {
	if income.LessThanOrEqual(decimal.Zero) {
		return -100
	}

	ratio := expenses.DivRound(income, 2)
	switch {
	case ratio.LessThan(ratioExcellent):
		return 150
	case ratio.LessThan(ratioGood):
		return 100
	case ratio.LessThan(ratioFair):
		return 50
	default:
		return -50
	}
}

// creditHistoryScore weighs payment behaviour. It is unbounded here; only
// the final clamp limits its contribution.
func (e *ScoringEngine) creditHistoryScore(profile model.FinancialProfile) int {
	return 10*profile.OnTimePayments - 20*profile.LatePayments
}

// bankActivityScore rewards account age (capped at 50) and average balance.
func (e *ScoringEngine) bankActivityScore(profile model.FinancialProfile) int {
	ageScore := (profile.AccountAgeMonths / 12) * 5
	if ageScore > 50 {
		ageScore = 50
	}

	var balanceScore int
	switch {
	case profile.AverageBalance.GreaterThan(balanceHigh):
		balanceScore = 100
	case profile.AverageBalance.GreaterThan(balanceMedium):
		balanceScore = 50
	case profile.AverageBalance.GreaterThan(balanceLow):
		balanceScore = 25
	}

	return ageScore + balanceScore
}
