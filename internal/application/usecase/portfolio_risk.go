package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

var (
	portfolioExposureCeiling = decimal.NewFromInt(10_000_000)
	oneHundred               = decimal.NewFromInt(100)
)

// AnalyzeBankRiskUseCase aggregates the active portfolio into one risk score.
type AnalyzeBankRiskUseCase struct {
	appRepo port.ApplicationRepository
	now     func() time.Time
}

// NewAnalyzeBankRiskUseCase wires dependencies.
func NewAnalyzeBankRiskUseCase(appRepo port.ApplicationRepository, now func() time.Time) *AnalyzeBankRiskUseCase {
	if now == nil {
		now = time.Now
	}
	return &AnalyzeBankRiskUseCase{appRepo: appRepo, now: now}
}

// Execute scans the portfolio and computes bank-wide exposure metrics over the
// given trailing window.
func (uc *AnalyzeBankRiskUseCase) Execute(ctx context.Context, windowDays int) (dto.BankRiskReport, error) {
	apps, err := uc.appRepo.FindAll(ctx)
	if err != nil {
		return dto.BankRiskReport{}, fmt.Errorf("scan portfolio: %w", err)
	}

	total := decimal.Zero
	byType := make(map[string]decimal.Decimal)
	activeCount := 0
	for _, app := range apps {
		if app.IsDeleted() || app.Status() != valueobject.StatusApproved {
			continue
		}
		total = total.Add(app.Amount())
		byType[app.CreditType().String()] = byType[app.CreditType().String()].Add(app.Amount())
		activeCount++
	}

	avg := decimal.Zero
	if activeCount > 0 {
		avg = total.DivRound(decimal.NewFromInt(int64(activeCount)), 2)
	}

	// Window counts go by raw timestamps. Cancelled and superseded rows still
	// count toward throughput, they were real submissions and real approvals.
	cutoff := uc.now().AddDate(0, 0, -windowDays)
	appsInWindow, approvalsInWindow := 0, 0
	for _, app := range apps {
		if !app.CreatedAt().Before(cutoff) {
			appsInWindow++
		}
		if at := app.ApprovedAt(); at != nil && !at.Before(cutoff) {
			approvalsInWindow++
		}
	}

	approvalRate := decimal.Zero
	if appsInWindow > 0 {
		approvalRate = decimal.NewFromInt(int64(approvalsInWindow)).
			Mul(oneHundred).
			DivRound(decimal.NewFromInt(int64(appsInWindow)), 2)
	}

	return dto.BankRiskReport{
		TotalActiveCredit:    total,
		AverageAmount:        avg,
		DistributionByType:   byType,
		ApplicationsInWindow: appsInWindow,
		ApprovalsInWindow:    approvalsInWindow,
		ApprovalRate:         approvalRate,
		RiskScore:            bankRiskScore(total, approvalRate, byType),
		WindowDays:           windowDays,
	}, nil
}

// bankRiskScore weights exposure volume, approval velocity and the portfolio's
// credit-type mix into a 0..100 figure.
func bankRiskScore(total, approvalRate decimal.Decimal, byType map[string]decimal.Decimal) float64 {
	exposure, _ := total.Div(portfolioExposureCeiling).Float64()
	if exposure > 1 {
		exposure = 1
	}

	rate, _ := approvalRate.Float64()

	mix := 0.0
	if total.IsPositive() {
		for creditType, sum := range byType {
			ct, err := valueobject.NewCreditType(creditType)
			if err != nil {
				continue
			}
			share, _ := sum.Div(total).Float64()
			mix += ct.RiskFactor() * share
		}
	}

	score := 40*exposure + 30*(rate/100) + 30*mix
	if score > 100 {
		score = 100
	}
	return score
}

// AnalyzeApplicationRiskUseCase scores one application's risk contribution
// relative to the current portfolio.
type AnalyzeApplicationRiskUseCase struct {
	appRepo port.ApplicationRepository
}

// NewAnalyzeApplicationRiskUseCase wires dependencies.
func NewAnalyzeApplicationRiskUseCase(appRepo port.ApplicationRepository) *AnalyzeApplicationRiskUseCase {
	return &AnalyzeApplicationRiskUseCase{appRepo: appRepo}
}

// Execute computes the risk profile of a single application.
func (uc *AnalyzeApplicationRiskUseCase) Execute(ctx context.Context, applicationID string) (dto.ApplicationRiskReport, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return dto.ApplicationRiskReport{}, fmt.Errorf("find application %s: %w", applicationID, err)
	}

	apps, err := uc.appRepo.FindAll(ctx)
	if err != nil {
		return dto.ApplicationRiskReport{}, fmt.Errorf("scan portfolio: %w", err)
	}

	report := applicationRisk(app, portfolioAverage(apps))
	return report, nil
}

func portfolioAverage(apps []model.CreditApplication) decimal.Decimal {
	total := decimal.Zero
	count := 0
	for _, app := range apps {
		if app.IsDeleted() || app.Status() != valueobject.StatusApproved {
			continue
		}
		total = total.Add(app.Amount())
		count++
	}
	if count == 0 {
		return decimal.Zero
	}
	return total.DivRound(decimal.NewFromInt(int64(count)), 2)
}

func applicationRisk(app model.CreditApplication, avgAmount decimal.Decimal) dto.ApplicationRiskReport {
	// With an empty portfolio any amount is outsized, so the ratio pins at
	// its cap of 3.
	amountRatio := 3.0
	if avgAmount.IsPositive() {
		amountRatio, _ = app.Amount().Div(avgAmount).Float64()
		if amountRatio > 3 {
			amountRatio = 3
		}
	}

	typeFactor := app.CreditType().RiskFactor()
	termFactor := termRiskFactor(app.TermMonths())

	incomeToCredit := app.MonthlyIncome().
		Mul(decimal.NewFromInt(int64(app.TermMonths()))).
		Div(app.Amount())
	coverage, _ := incomeToCredit.Float64()
	coverageGap := 1 - coverage
	if coverageGap < 0 {
		coverageGap = 0
	}

	score := 30*(amountRatio/3) + 25*typeFactor + 20*termFactor + 25*coverageGap
	if score > 100 {
		score = 100
	}

	return dto.ApplicationRiskReport{
		ApplicationID:       app.ID(),
		RiskScore:           score,
		CreditTypeFactor:    typeFactor,
		TermFactor:          termFactor,
		IncomeToCreditRatio: incomeToCredit.Round(2),
	}
}

// termRiskFactor weights longer commitments heavier.
func termRiskFactor(termMonths int) float64 {
	switch {
	case termMonths <= 12:
		return 0.2
	case termMonths <= 36:
		return 0.4
	case termMonths <= 60:
		return 0.6
	case termMonths <= 120:
		return 0.8
	default:
		return 1.0
	}
}
