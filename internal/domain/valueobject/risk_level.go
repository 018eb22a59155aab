package valueobject

import "fmt"

// ---------------------------------------------------------------------------
// RiskLevel – ordered fraud risk level
// ---------------------------------------------------------------------------

// RiskLevel is the single ordered risk enumeration used across fraud
// evaluation: LOW < MEDIUM < HIGH < CRITICAL. Builtin rules emit up to HIGH;
// CRITICAL is reserved for overriding escalations such as blocklist hits.
type RiskLevel struct {
	value string
	rank  int
}

const (
	riskLow      = "LOW"
	riskMedium   = "MEDIUM"
	riskHigh     = "HIGH"
	riskCritical = "CRITICAL"
)

var (
	RiskLow      = RiskLevel{value: riskLow, rank: 0}
	RiskMedium   = RiskLevel{value: riskMedium, rank: 1}
	RiskHigh     = RiskLevel{value: riskHigh, rank: 2}
	RiskCritical = RiskLevel{value: riskCritical, rank: 3}
)

var validRiskLevels = map[string]RiskLevel{
	riskLow:      RiskLow,
	riskMedium:   RiskMedium,
	riskHigh:     RiskHigh,
	riskCritical: RiskCritical,
}

// NewRiskLevel creates a RiskLevel from a raw string.
func NewRiskLevel(s string) (RiskLevel, error) {
	v, ok := validRiskLevels[s]
	if !ok {
		return RiskLevel{}, fmt.Errorf("invalid risk level: %q", s)
	}
	return v, nil
}

// String returns the string representation of the risk level.
func (r RiskLevel) String() string { return r.value }

// IsZero returns true if the risk level has not been initialised.
func (r RiskLevel) IsZero() bool { return r.value == "" }

// Equal returns true when both levels carry the same value.
func (r RiskLevel) Equal(other RiskLevel) bool { return r.value == other.value }

// Rank orders levels ascending by severity.
func (r RiskLevel) Rank() int { return r.rank }

// Max returns the more severe of the two levels.
func (r RiskLevel) Max(other RiskLevel) RiskLevel {
	if other.rank > r.rank {
		return other
	}
	return r
}
