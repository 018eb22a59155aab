package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Requests
// ---------------------------------------------------------------------------

// SubmitApplicationRequest carries the input for a new credit application.
type SubmitApplicationRequest struct {
	CustomerNumber string
	CreditType     string
	Amount         decimal.Decimal
	TermMonths     int
	MonthlyIncome  decimal.Decimal
	Notes          string
}

// UpdateStatusRequest transitions an application to a new status.
type UpdateStatusRequest struct {
	ApplicationID string
	NewStatus     string
	Notes         string
	Actor         string
}

// RefinanceRequest asks for an approved application to be refinanced.
type RefinanceRequest struct {
	ApplicationID    string
	CustomerNumber   string
	MarketRate       decimal.Decimal
	ExtendTermMonths int
}

// EvaluateTransactionRequest is one monitored transaction to screen.
type EvaluateTransactionRequest struct {
	CustomerNumber     string
	TransactionType    string
	Amount             decimal.Decimal
	IPAddress          string
	UserAgent          string
	DeviceID           string
	Location           string
	CounterpartAccount string
}

// ---------------------------------------------------------------------------
// Responses
// ---------------------------------------------------------------------------

// ApplicationResponse is the external view of a credit application.
type ApplicationResponse struct {
	ID             string
	CustomerNumber string
	CreditType     string
	Amount         decimal.Decimal
	TermMonths     int
	MonthlyIncome  decimal.Decimal
	Notes          string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
	ApprovedAt     *time.Time
	RejectedAt     *time.Time
}

// ScoreResponse carries a computed credit score and the derived tier.
type ScoreResponse struct {
	CustomerNumber string
	Score          int
	Category       string
}

// Stage is one entry of an application's timeline.
type Stage struct {
	Name       string
	Status     string
	OccurredAt time.Time
}

// RefinanceResponse pairs the replacement application with its quoted rate.
type RefinanceResponse struct {
	Application   ApplicationResponse
	RefinanceRate decimal.Decimal
	Category      string
}

// RefinanceOffer is the rate quote for refinancing under a given tier.
type RefinanceOffer struct {
	MarketRate    decimal.Decimal
	RefinanceRate decimal.Decimal
	Category      string
}

// BankRiskReport aggregates portfolio-level credit exposure.
type BankRiskReport struct {
	TotalActiveCredit    decimal.Decimal
	AverageAmount        decimal.Decimal
	DistributionByType   map[string]decimal.Decimal
	ApplicationsInWindow int
	ApprovalsInWindow    int
	ApprovalRate         decimal.Decimal
	RiskScore            float64
	WindowDays           int
}

// ApplicationRiskReport scores a single application's risk contribution.
type ApplicationRiskReport struct {
	ApplicationID       string
	RiskScore           float64
	CreditTypeFactor    float64
	TermFactor          float64
	IncomeToCreditRatio decimal.Decimal
}

// FraudFinding is one rule's verdict on a monitored transaction.
type FraudFinding struct {
	RuleName string
	Level    string
	Reason   string
}

// FraudReport is the aggregated fraud screening outcome.
type FraudReport struct {
	OverallLevel string
	Findings     []FraudFinding
}
