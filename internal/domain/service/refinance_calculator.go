package service

import (
	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

var one = decimal.NewFromInt(1)

// CalculateRefinanceRate applies the category discount to the market rate:
// rate = market × (1 − discount), rounded to 2 decimals, round-half-up.
// Unknown categories get the market rate unchanged.
func CalculateRefinanceRate(marketRate decimal.Decimal, category valueobject.Category) decimal.Decimal {
	return marketRate.Mul(one.Sub(category.RefinanceDiscount())).Round(2)
}
