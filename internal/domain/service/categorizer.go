package service

import "github.com/meridianbank/credit-origination/internal/domain/valueobject"

// Category thresholds, inclusive on the lower bound of each tier.
const (
	vipThreshold      = 750
	standardThreshold = 600
)

// Categorize maps a credit score onto a customer policy tier. It is a pure,
// total function over integers and is never cached: every decision
// recomputes the tier from the latest score.
func Categorize(score int) valueobject.Category {
	switch {
	case score >= vipThreshold:
		return valueobject.CategoryVIP
	case score >= standardThreshold:
		return valueobject.CategoryStandard
	default:
		return valueobject.CategoryRisky
	}
}
