package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// CreditType – immutable value object
// ---------------------------------------------------------------------------

// CreditType identifies the loan product an application is for.
type CreditType struct {
	value string
}

const (
	creditTypeMortgage           = "MORTGAGE"
	creditTypeAutoLoan           = "AUTO_LOAN"
	creditTypePersonalFinance    = "PERSONAL_FINANCE"
	creditTypeBusinessLoan       = "BUSINESS_LOAN"
	creditTypeEducationLoan      = "EDUCATION_LOAN"
	creditTypeCommercialMortgage = "COMMERCIAL_MORTGAGE"
	creditTypeEquipmentFinancing = "EQUIPMENT_FINANCING"
	creditTypeWorkingCapital     = "WORKING_CAPITAL"
)

var (
	CreditTypeMortgage           = CreditType{value: creditTypeMortgage}
	CreditTypeAutoLoan           = CreditType{value: creditTypeAutoLoan}
	CreditTypePersonalFinance    = CreditType{value: creditTypePersonalFinance}
	CreditTypeBusinessLoan       = CreditType{value: creditTypeBusinessLoan}
	CreditTypeEducationLoan      = CreditType{value: creditTypeEducationLoan}
	CreditTypeCommercialMortgage = CreditType{value: creditTypeCommercialMortgage}
	CreditTypeEquipmentFinancing = CreditType{value: creditTypeEquipmentFinancing}
	CreditTypeWorkingCapital     = CreditType{value: creditTypeWorkingCapital}
)

var validCreditTypes = map[string]CreditType{
	creditTypeMortgage:           CreditTypeMortgage,
	creditTypeAutoLoan:           CreditTypeAutoLoan,
	creditTypePersonalFinance:    CreditTypePersonalFinance,
	creditTypeBusinessLoan:       CreditTypeBusinessLoan,
	creditTypeEducationLoan:      CreditTypeEducationLoan,
	creditTypeCommercialMortgage: CreditTypeCommercialMortgage,
	creditTypeEquipmentFinancing: CreditTypeEquipmentFinancing,
	creditTypeWorkingCapital:     CreditTypeWorkingCapital,
}

// riskFactors weights each product for portfolio risk analytics.
var riskFactors = map[string]float64{
	creditTypeMortgage:           0.3,
	creditTypeCommercialMortgage: 0.3,
	creditTypeEducationLoan:      0.4,
	creditTypeAutoLoan:           0.5,
	creditTypeEquipmentFinancing: 0.5,
	creditTypeBusinessLoan:       0.6,
	creditTypeWorkingCapital:     0.7,
	creditTypePersonalFinance:    0.8,
}

// defaultRiskFactor applies to products without an explicit weighting.
const defaultRiskFactor = 0.7

// NewCreditType creates a CreditType from a raw string.
func NewCreditType(s string) (CreditType, error) {
	v, ok := validCreditTypes[s]
	if !ok {
		return CreditType{}, fmt.Errorf("invalid credit type: %q", s)
	}
	return v, nil
}

// String returns the string representation of the credit type.
func (c CreditType) String() string { return c.value }

// IsZero returns true if the credit type has not been initialised.
func (c CreditType) IsZero() bool { return c.value == "" }

// Equal returns true when both credit types carry the same value.
func (c CreditType) Equal(other CreditType) bool { return c.value == other.value }

// RiskFactor returns the product risk weighting used by portfolio analytics.
func (c CreditType) RiskFactor() float64 {
	if f, ok := riskFactors[c.value]; ok {
		return f
	}
	return defaultRiskFactor
}
