package usecase

import (
	"context"
	"fmt"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/fraud"
	"github.com/meridianbank/credit-origination/internal/domain/model"
)

// EvaluateTransactionUseCase screens a monitored transaction through the
// registered fraud rules.
type EvaluateTransactionUseCase struct {
	engine *fraud.Engine
}

// NewEvaluateTransactionUseCase wires dependencies.
func NewEvaluateTransactionUseCase(engine *fraud.Engine) *EvaluateTransactionUseCase {
	return &EvaluateTransactionUseCase{engine: engine}
}

// Execute evaluates the request and returns the aggregated report.
func (uc *EvaluateTransactionUseCase) Execute(ctx context.Context, req dto.EvaluateTransactionRequest) (dto.FraudReport, error) {
	report, err := uc.engine.Evaluate(ctx, model.FraudEvaluationRequest{
		CustomerNumber:     req.CustomerNumber,
		TransactionType:    req.TransactionType,
		Amount:             req.Amount,
		IPAddress:          req.IPAddress,
		UserAgent:          req.UserAgent,
		DeviceID:           req.DeviceID,
		Location:           req.Location,
		CounterpartAccount: req.CounterpartAccount,
	})
	if err != nil {
		return dto.FraudReport{}, fmt.Errorf("evaluate transaction: %w", err)
	}

	out := dto.FraudReport{OverallLevel: report.OverallLevel.String()}
	for _, f := range report.Findings {
		out.Findings = append(out.Findings, dto.FraudFinding{
			RuleName: f.RuleName,
			Level:    f.Level.String(),
			Reason:   f.Reason,
		})
	}
	return out, nil
}
