package valueobject

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// ---------------------------------------------------------------------------
// Category – customer policy tier
// ---------------------------------------------------------------------------

// Category is the policy bucket a customer falls into for a single decision.
// It is always recomputed from the latest credit score and never persisted,
// so a stale tier can never drive an approval.
type Category struct {
	value string
	rank  int
}

const (
	categoryRisky    = "RISKY"
	categoryStandard = "STANDARD"
	categoryVIP      = "VIP"
)

var (
	CategoryRisky    = Category{value: categoryRisky, rank: 0}
	CategoryStandard = Category{value: categoryStandard, rank: 1}
	CategoryVIP      = Category{value: categoryVIP, rank: 2}
)

var validCategories = map[string]Category{
	categoryRisky:    CategoryRisky,
	categoryStandard: CategoryStandard,
	categoryVIP:      CategoryVIP,
}

// refinanceDiscounts maps a tier to its refinance rate discount.
var refinanceDiscounts = map[string]decimal.Decimal{
	categoryVIP:      decimal.NewFromFloat(0.20),
	categoryStandard: decimal.NewFromFloat(0.10),
	categoryRisky:    decimal.NewFromFloat(0.05),
}

// NewCategory creates a Category from a raw string.
func NewCategory(s string) (Category, error) {
	v, ok := validCategories[s]
	if !ok {
		return Category{}, fmt.Errorf("invalid customer category: %q", s)
	}
	return v, nil
}

// String returns the string representation of the category.
func (c Category) String() string { return c.value }

// IsZero returns true if the category has not been initialised.
func (c Category) IsZero() bool { return c.value == "" }

// Equal returns true when both categories carry the same value.
func (c Category) Equal(other Category) bool { return c.value == other.value }

// Rank orders tiers: RISKY < STANDARD < VIP.
func (c Category) Rank() int { return c.rank }

// RefinanceDiscount returns the rate discount applied when refinancing.
// Unknown (zero) categories get no discount.
func (c Category) RefinanceDiscount() decimal.Decimal {
	if d, ok := refinanceDiscounts[c.value]; ok {
		return d
	}
	return decimal.Zero
}
