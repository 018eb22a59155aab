package fraud

import (
	"context"
	"fmt"
	"strings"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// highRiskCountries and mediumRiskCountries are the fixed country lists the
// location rule matches against.
var (
	highRiskCountries   = map[string]bool{"KP": true, "IR": true, "SY": true, "CU": true, "SD": true}
	mediumRiskCountries = map[string]bool{"RU": true, "BY": true, "VE": true, "MM": true, "AF": true}
)

// UnusualLocationRule flags transactions originating from high-risk
// countries. The country code is extracted from the free-text location:
// the trimmed substring after the last comma, or the first two characters
// when the location has no comma.
type UnusualLocationRule struct{}

// NewUnusualLocationRule returns the rule.
func NewUnusualLocationRule() *UnusualLocationRule {
	return &UnusualLocationRule{}
}

// Name implements Rule.
func (r *UnusualLocationRule) Name() string { return "unusual_location" }

// IsApplicable implements Rule: the rule only fires when a location is present.
func (r *UnusualLocationRule) IsApplicable(req model.FraudEvaluationRequest) bool {
	return strings.TrimSpace(req.Location) != ""
}

// Evaluate implements Rule.
func (r *UnusualLocationRule) Evaluate(_ context.Context, req model.FraudEvaluationRequest) (Finding, error) {
	country := extractCountryCode(req.Location)

	level := valueobject.RiskLow
	switch {
	case highRiskCountries[country]:
		level = valueobject.RiskHigh
	case mediumRiskCountries[country]:
		level = valueobject.RiskMedium
	}

	return Finding{
		RuleName: r.Name(),
		Level:    level,
		Reason:   fmt.Sprintf("transaction location %q resolved to country %q (%s risk)", req.Location, country, level),
	}, nil
}

// extractCountryCode pulls a country code out of a free-text location.
func extractCountryCode(location string) string {
	loc := strings.TrimSpace(location)
	if idx := strings.LastIndex(loc, ","); idx >= 0 {
		return strings.ToUpper(strings.TrimSpace(loc[idx+1:]))
	}
	if len(loc) < 2 {
		return strings.ToUpper(loc)
	}
	return strings.ToUpper(loc[:2])
}
