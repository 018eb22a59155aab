package model

import "github.com/shopspring/decimal"

// FinancialProfile is the bag of financial signals the scoring engine
// consumes. The zero value is a valid profile: missing signals score as
// zero instead of failing the call.
type FinancialProfile struct {
	MonthlyExpenses  decimal.Decimal
	AverageBalance   decimal.Decimal
	OnTimePayments   int
	LatePayments     int
	AccountAgeMonths int
}
