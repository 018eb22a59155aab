package fraud

import (
	"context"
	"fmt"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// ---------------------------------------------------------------------------
// Fraud rule engine
// ---------------------------------------------------------------------------

// Finding is the outcome of evaluating one rule against one transaction.
// The reason is computed per call and carried on the result, so a rule's
// evaluation never depends on any other rule having run before it.
type Finding struct {
	RuleName string
	Level    valueobject.RiskLevel
	Reason   string
}

// Rule is one pluggable fraud evaluator. Implementations must be stateless:
// any memory they need (e.g. the seen-IP store) is injected at construction.
type Rule interface {
	Name() string
	IsApplicable(req model.FraudEvaluationRequest) bool
	Evaluate(ctx context.Context, req model.FraudEvaluationRequest) (Finding, error)
}

// Report aggregates the findings of all applicable rules for one request.
type Report struct {
	Findings     []Finding
	OverallLevel valueobject.RiskLevel
}

// Engine drives rule evaluation. Rules run in registration order, but each
// finding is independent of that order; the overall level is the maximum
// across findings.
type Engine struct {
	rules   []Rule
	ipStore port.SeenIPStore
}

// NewEngine creates an engine over the given rules. The seen-IP store may be
// nil when no IP-novelty rule is registered.
func NewEngine(ipStore port.SeenIPStore, rules ...Rule) *Engine {
	return &Engine{rules: rules, ipStore: ipStore}
}

// Evaluate runs every applicable rule against the request. After evaluation
// the engine records the request's IP for the customer; the write lives here,
// not in the rules, so rules stay read-only.
func (e *Engine) Evaluate(ctx context.Context, req model.FraudEvaluationRequest) (Report, error) {
	report := Report{OverallLevel: valueobject.RiskLow}

	for _, rule := range e.rules {
		if !rule.IsApplicable(req) {
			continue
		}
		finding, err := rule.Evaluate(ctx, req)
		if err != nil {
			return Report{}, fmt.Errorf("evaluate rule %s: %w", rule.Name(), err)
		}
		report.Findings = append(report.Findings, finding)
		report.OverallLevel = report.OverallLevel.Max(finding.Level)
	}

	if e.ipStore != nil && req.IPAddress != "" {
		if err := e.ipStore.Remember(ctx, req.CustomerNumber, req.IPAddress); err != nil {
			return Report{}, fmt.Errorf("remember ip: %w", err)
		}
	}

	return report, nil
}
