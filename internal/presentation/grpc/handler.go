package grpc

import (
	"context"
	"errors"
	"time"

	"github.com/shopspring/decimal"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/application/usecase"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// CreditHandler implements CreditServiceServer on top of the use-case layer.
type CreditHandler struct {
	UnimplementedCreditServiceServer

	evaluate     *usecase.EvaluateApplicationUseCase
	score        *usecase.ScoreCustomerUseCase
	updateStatus *usecase.UpdateStatusUseCase
	stageHistory *usecase.StageHistoryUseCase
	stale        *usecase.StaleApplicationsUseCase
	processing   *usecase.ProcessingTimeUseCase
	refinance    *usecase.RefinanceUseCase
	eligible     *usecase.FindRefinanceEligibleUseCase
	offer        *usecase.CalculateRefinanceOfferUseCase
	bankRisk     *usecase.AnalyzeBankRiskUseCase
	appRisk      *usecase.AnalyzeApplicationRiskUseCase
	screenTx     *usecase.EvaluateTransactionUseCase
}

// NewCreditHandler creates a new handler with all use-case dependencies.
func NewCreditHandler(
	evaluate *usecase.EvaluateApplicationUseCase,
	score *usecase.ScoreCustomerUseCase,
	updateStatus *usecase.UpdateStatusUseCase,
	stageHistory *usecase.StageHistoryUseCase,
	stale *usecase.StaleApplicationsUseCase,
	processing *usecase.ProcessingTimeUseCase,
	refinance *usecase.RefinanceUseCase,
	eligible *usecase.FindRefinanceEligibleUseCase,
	offer *usecase.CalculateRefinanceOfferUseCase,
	bankRisk *usecase.AnalyzeBankRiskUseCase,
	appRisk *usecase.AnalyzeApplicationRiskUseCase,
	screenTx *usecase.EvaluateTransactionUseCase,
) *CreditHandler {
	return &CreditHandler{
		evaluate:     evaluate,
		score:        score,
		updateStatus: updateStatus,
		stageHistory: stageHistory,
		stale:        stale,
		processing:   processing,
		refinance:    refinance,
		eligible:     eligible,
		offer:        offer,
		bankRisk:     bankRisk,
		appRisk:      appRisk,
		screenTx:     screenTx,
	}
}

// EvaluateApplication submits a new application and runs the approval decision.
func (h *CreditHandler) EvaluateApplication(ctx context.Context, req *EvaluateApplicationRequest) (*EvaluateApplicationResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}
	income, err := decimal.NewFromString(req.MonthlyIncome)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid monthly income: %v", err)
	}

	resp, err := h.evaluate.Execute(ctx, dto.SubmitApplicationRequest{
		CustomerNumber: req.CustomerNumber,
		CreditType:     req.CreditType,
		Amount:         amount,
		TermMonths:     req.TermMonths,
		MonthlyIncome:  income,
		Notes:          req.Notes,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &EvaluateApplicationResponse{Application: toWireApplication(resp)}, nil
}

// CalculateCreditScore computes the score and tier for an application's owner.
func (h *CreditHandler) CalculateCreditScore(ctx context.Context, req *CalculateCreditScoreRequest) (*CalculateCreditScoreResponse, error) {
	resp, err := h.score.Execute(ctx, req.ApplicationId)
	if err != nil {
		return nil, grpcError(err)
	}
	return &CalculateCreditScoreResponse{
		CustomerNumber: resp.CustomerNumber,
		Score:          resp.Score,
		Category:       resp.Category,
	}, nil
}

// UpdateApplicationStatus transitions an application's status.
func (h *CreditHandler) UpdateApplicationStatus(ctx context.Context, req *UpdateApplicationStatusRequest) (*UpdateApplicationStatusResponse, error) {
	resp, err := h.updateStatus.Execute(ctx, dto.UpdateStatusRequest{
		ApplicationID: req.ApplicationId,
		NewStatus:     req.NewStatus,
		Notes:         req.Notes,
		Actor:         req.Actor,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &UpdateApplicationStatusResponse{Application: toWireApplication(resp)}, nil
}

// GetApplicationStageHistory returns an application's timeline.
func (h *CreditHandler) GetApplicationStageHistory(ctx context.Context, req *GetApplicationStageHistoryRequest) (*GetApplicationStageHistoryResponse, error) {
	stages, err := h.stageHistory.Execute(ctx, req.ApplicationId)
	if err != nil {
		return nil, grpcError(err)
	}

	out := make([]*Stage, 0, len(stages))
	for _, s := range stages {
		out = append(out, &Stage{
			Name:       s.Name,
			Status:     s.Status,
			OccurredAt: s.OccurredAt.Format(time.RFC3339),
		})
	}
	return &GetApplicationStageHistoryResponse{Stages: out}, nil
}

// GetStaleApplications lists open applications untouched for ThresholdDays.
func (h *CreditHandler) GetStaleApplications(ctx context.Context, req *GetStaleApplicationsRequest) (*GetStaleApplicationsResponse, error) {
	apps, err := h.stale.Execute(ctx, req.ThresholdDays)
	if err != nil {
		return nil, grpcError(err)
	}
	return &GetStaleApplicationsResponse{Applications: toWireApplications(apps)}, nil
}

// GetProcessingTime returns the whole days an application has been in flight.
func (h *CreditHandler) GetProcessingTime(ctx context.Context, req *GetProcessingTimeRequest) (*GetProcessingTimeResponse, error) {
	days, err := h.processing.Execute(ctx, req.ApplicationId)
	if err != nil {
		return nil, grpcError(err)
	}
	return &GetProcessingTimeResponse{Days: days}, nil
}

// RefinanceCredit replaces an approved application with a new one.
func (h *CreditHandler) RefinanceCredit(ctx context.Context, req *RefinanceCreditRequest) (*RefinanceCreditResponse, error) {
	rate, err := decimal.NewFromString(req.MarketRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid market rate: %v", err)
	}

	resp, err := h.refinance.Execute(ctx, dto.RefinanceRequest{
		ApplicationID:    req.ApplicationId,
		CustomerNumber:   req.CustomerNumber,
		MarketRate:       rate,
		ExtendTermMonths: req.ExtendTermMonths,
	})
	if err != nil {
		return nil, grpcError(err)
	}
	return &RefinanceCreditResponse{
		Application:   toWireApplication(resp.Application),
		RefinanceRate: resp.RefinanceRate.StringFixed(2),
		Category:      resp.Category,
	}, nil
}

// FindRefinanceEligibleCredits lists a customer's refinance-eligible credits.
func (h *CreditHandler) FindRefinanceEligibleCredits(ctx context.Context, req *FindRefinanceEligibleCreditsRequest) (*FindRefinanceEligibleCreditsResponse, error) {
	apps, err := h.eligible.Execute(ctx, req.CustomerNumber)
	if err != nil {
		return nil, grpcError(err)
	}
	return &FindRefinanceEligibleCreditsResponse{Applications: toWireApplications(apps)}, nil
}

// CalculateRefinanceOffer quotes the refinance rate for a tier.
func (h *CreditHandler) CalculateRefinanceOffer(ctx context.Context, req *CalculateRefinanceOfferRequest) (*CalculateRefinanceOfferResponse, error) {
	rate, err := decimal.NewFromString(req.MarketRate)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid market rate: %v", err)
	}

	offer, err := h.offer.Execute(rate, req.Category)
	if err != nil {
		return nil, grpcError(err)
	}
	return &CalculateRefinanceOfferResponse{
		MarketRate:    offer.MarketRate.StringFixed(2),
		RefinanceRate: offer.RefinanceRate.StringFixed(2),
		Category:      offer.Category,
	}, nil
}

// AnalyzeBankCreditRisk aggregates the portfolio over a trailing window.
func (h *CreditHandler) AnalyzeBankCreditRisk(ctx context.Context, req *AnalyzeBankCreditRiskRequest) (*AnalyzeBankCreditRiskResponse, error) {
	report, err := h.bankRisk.Execute(ctx, req.WindowDays)
	if err != nil {
		return nil, grpcError(err)
	}

	distribution := make(map[string]string, len(report.DistributionByType))
	for creditType, sum := range report.DistributionByType {
		distribution[creditType] = sum.String()
	}
	return &AnalyzeBankCreditRiskResponse{
		TotalActiveCredit:    report.TotalActiveCredit.String(),
		AverageAmount:        report.AverageAmount.String(),
		DistributionByType:   distribution,
		ApplicationsInWindow: report.ApplicationsInWindow,
		ApprovalsInWindow:    report.ApprovalsInWindow,
		ApprovalRate:         report.ApprovalRate.StringFixed(2),
		RiskScore:            report.RiskScore,
		WindowDays:           report.WindowDays,
	}, nil
}

// AnalyzeApplicationRisk scores one application against the portfolio.
func (h *CreditHandler) AnalyzeApplicationRisk(ctx context.Context, req *AnalyzeApplicationRiskRequest) (*AnalyzeApplicationRiskResponse, error) {
	report, err := h.appRisk.Execute(ctx, req.ApplicationId)
	if err != nil {
		return nil, grpcError(err)
	}
	return &AnalyzeApplicationRiskResponse{
		ApplicationId:       report.ApplicationID,
		RiskScore:           report.RiskScore,
		CreditTypeFactor:    report.CreditTypeFactor,
		TermFactor:          report.TermFactor,
		IncomeToCreditRatio: report.IncomeToCreditRatio.String(),
	}, nil
}

// EvaluateTransaction screens one monitored transaction for fraud.
func (h *CreditHandler) EvaluateTransaction(ctx context.Context, req *EvaluateTransactionRequest) (*EvaluateTransactionResponse, error) {
	amount, err := decimal.NewFromString(req.Amount)
	if err != nil {
		return nil, status.Errorf(codes.InvalidArgument, "invalid amount: %v", err)
	}

	report, err := h.screenTx.Execute(ctx, dto.EvaluateTransactionRequest{
		CustomerNumber:     req.CustomerNumber,
		TransactionType:    req.TransactionType,
		Amount:             amount,
		IPAddress:          req.IpAddress,
		UserAgent:          req.UserAgent,
		DeviceID:           req.DeviceId,
		Location:           req.Location,
		CounterpartAccount: req.CounterpartAccount,
	})
	if err != nil {
		return nil, grpcError(err)
	}

	findings := make([]*FraudFinding, 0, len(report.Findings))
	for _, f := range report.Findings {
		findings = append(findings, &FraudFinding{
			RuleName: f.RuleName,
			Level:    f.Level,
			Reason:   f.Reason,
		})
	}
	return &EvaluateTransactionResponse{
		OverallLevel: report.OverallLevel,
		Findings:     findings,
	}, nil
}

// grpcError maps domain failures onto gRPC status codes.
func grpcError(err error) error {
	switch {
	case errors.Is(err, port.ErrApplicationNotFound):
		return status.Error(codes.NotFound, err.Error())
	case errors.Is(err, usecase.ErrNotApplicationOwner):
		return status.Error(codes.PermissionDenied, err.Error())
	case errors.Is(err, usecase.ErrNotRefinanceable),
		errors.Is(err, valueobject.ErrInvalidStatusTransition):
		return status.Error(codes.FailedPrecondition, err.Error())
	default:
		return status.Error(codes.Internal, err.Error())
	}
}

func toWireApplication(app dto.ApplicationResponse) *Application {
	out := &Application{
		Id:             app.ID,
		CustomerNumber: app.CustomerNumber,
		CreditType:     app.CreditType,
		Amount:         app.Amount.String(),
		TermMonths:     app.TermMonths,
		MonthlyIncome:  app.MonthlyIncome.String(),
		Notes:          app.Notes,
		Status:         app.Status,
		CreatedAt:      app.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      app.UpdatedAt.Format(time.RFC3339),
	}
	if app.ApprovedAt != nil {
		out.ApprovedAt = app.ApprovedAt.Format(time.RFC3339)
	}
	if app.RejectedAt != nil {
		out.RejectedAt = app.RejectedAt.Format(time.RFC3339)
	}
	return out
}

func toWireApplications(apps []dto.ApplicationResponse) []*Application {
	out := make([]*Application, 0, len(apps))
	for _, app := range apps {
		out = append(out, toWireApplication(app))
	}
	return out
}
