package model

import "github.com/shopspring/decimal"

// FraudEvaluationRequest is one monitored transaction handed to the fraud
// rule set. It is an immutable input; the core never persists it.
type FraudEvaluationRequest struct {
	CustomerNumber     string
	TransactionType    string
	Amount             decimal.Decimal
	IPAddress          string
	UserAgent          string
	DeviceID           string
	Location           string
	CounterpartAccount string
}
