package service

import (
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// ErrUnknownCategory is returned when the decision engine is handed a
// category it has no policy for. The engine never guesses a default.
var ErrUnknownCategory = errors.New("unknown customer category")

var (
	vipAutoApprovalLimit   = decimal.NewFromInt(1_000_000)
	standardAutoLimit      = decimal.NewFromInt(500_000)
	riskyRejectAmountLimit = decimal.NewFromInt(100_000)
)

const (
	standardMinAutoScore = 650
	riskyMinScore        = 500
)

// ApprovalEngine applies the bank's category-conditioned approval policy.
// Each decision is evaluated once; there are no retries. The engine mutates
// only status and the relevant timestamp on the application; persistence is
// the caller's responsibility.
type ApprovalEngine struct{}

// NewApprovalEngine returns a new engine instance.
func NewApprovalEngine() *ApprovalEngine {
	return &ApprovalEngine{}
}

// Decide returns the application updated with the decision outcome.
//
// Policy:
//
//	VIP:      amount > 1,000,000            -> PENDING_APPROVAL
//	          otherwise                     -> APPROVED
//	STANDARD: amount > 500,000 or score<650 -> PENDING_APPROVAL
//	          otherwise                     -> APPROVED
//	RISKY:    amount > 100,000 or score<500 -> REJECTED
//	          otherwise                     -> PENDING_APPROVAL
func (e *ApprovalEngine) Decide(
	app model.CreditApplication,
	category valueobject.Category,
	score int,
	now time.Time,
) (model.CreditApplication, error) {
	switch {
	case category.Equal(valueobject.CategoryVIP):
		if app.Amount().GreaterThan(vipAutoApprovalLimit) {
			return app.MarkPendingApproval(now)
		}
		return app.Approve("vip tier auto-approval", now)

	case category.Equal(valueobject.CategoryStandard):
		if app.Amount().GreaterThan(standardAutoLimit) {
			return app.MarkPendingApproval(now)
		}
		if score < standardMinAutoScore {
			return app.MarkPendingApproval(now)
		}
		return app.Approve("standard tier auto-approval", now)

	case category.Equal(valueobject.CategoryRisky):
		if app.Amount().GreaterThan(riskyRejectAmountLimit) {
			return app.Reject("amount exceeds limit for risky tier", now)
		}
		if score < riskyMinScore {
			return app.Reject("credit score below minimum threshold", now)
		}
		return app.MarkPendingApproval(now)

	default:
		return app, ErrUnknownCategory
	}
}
