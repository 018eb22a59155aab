package fraud

import (
	"context"
	"fmt"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// IPNoveltyRule flags transactions coming from an IP address the customer
// has never been seen on. The seen-IP memory lives in an injected,
// TTL-bounded store owned by the caller; the rule only reads it.
type IPNoveltyRule struct {
	store port.SeenIPStore
}

// NewIPNoveltyRule returns the rule backed by the given store.
func NewIPNoveltyRule(store port.SeenIPStore) *IPNoveltyRule {
	return &IPNoveltyRule{store: store}
}

// Name implements Rule.
func (r *IPNoveltyRule) Name() string { return "ip_novelty" }

// IsApplicable implements Rule.
func (r *IPNoveltyRule) IsApplicable(req model.FraudEvaluationRequest) bool {
	return req.IPAddress != "" && req.CustomerNumber != ""
}

// Evaluate implements Rule.
func (r *IPNoveltyRule) Evaluate(ctx context.Context, req model.FraudEvaluationRequest) (Finding, error) {
	known, err := r.store.IsKnown(ctx, req.CustomerNumber, req.IPAddress)
	if err != nil {
		return Finding{}, fmt.Errorf("lookup seen ip: %w", err)
	}

	if known {
		return Finding{
			RuleName: r.Name(),
			Level:    valueobject.RiskLow,
			Reason:   fmt.Sprintf("ip %s already seen for customer %s", req.IPAddress, req.CustomerNumber),
		}, nil
	}

	return Finding{
		RuleName: r.Name(),
		Level:    valueobject.RiskMedium,
		Reason:   fmt.Sprintf("first transaction from ip %s for customer %s", req.IPAddress, req.CustomerNumber),
	}, nil
}
