package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// StageHistoryUseCase derives the applicant-facing timeline. It prefers the
// recorded transition log; only applications predating the log fall back to
// the fixed-offset reconstruction.
type StageHistoryUseCase struct {
	appRepo port.ApplicationRepository
	log     port.TransitionLogRepository
}

// NewStageHistoryUseCase wires dependencies.
func NewStageHistoryUseCase(
	appRepo port.ApplicationRepository,
	log port.TransitionLogRepository,
) *StageHistoryUseCase {
	return &StageHistoryUseCase{appRepo: appRepo, log: log}
}

// Execute returns the stage timeline for one application.
func (uc *StageHistoryUseCase) Execute(ctx context.Context, applicationID string) ([]dto.Stage, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("find application: %w", err)
	}

	transitions, err := uc.log.FindByApplicationID(ctx, applicationID)
	if err != nil {
		return nil, fmt.Errorf("load transition log: %w", err)
	}

	if len(transitions) > 0 {
		return recordedTimeline(app, transitions), nil
	}
	return syntheticTimeline(app), nil
}

// recordedTimeline builds the timeline from actual transition records.
func recordedTimeline(app model.CreditApplication, transitions []model.StatusTransition) []dto.Stage {
	stages := []dto.Stage{{
		Name:       "received",
		Status:     valueobject.StatusPending.String(),
		OccurredAt: app.CreatedAt(),
	}}
	for _, tr := range transitions {
		stages = append(stages, dto.Stage{
			Name:       stageName(tr.ToStatus),
			Status:     tr.ToStatus.String(),
			OccurredAt: tr.OccurredAt,
		})
	}
	return stages
}

// syntheticTimeline reconstructs a plausible timeline for applications that
// predate the transition log: fixed offsets from creation, terminal stage at
// its recorded timestamp when available.
func syntheticTimeline(app model.CreditApplication) []dto.Stage {
	created := app.CreatedAt()
	stages := []dto.Stage{{
		Name:       "received",
		Status:     valueobject.StatusPending.String(),
		OccurredAt: created,
	}}

	status := app.Status()
	if status.Equal(valueobject.StatusPending) {
		return stages
	}

	if status.Equal(valueobject.StatusCancelled) {
		stages = append(stages, dto.Stage{
			Name:       "cancelled",
			Status:     status.String(),
			OccurredAt: app.UpdatedAt(),
		})
		return stages
	}

	stages = append(stages, dto.Stage{
		Name:       "in review",
		Status:     valueobject.StatusInReview.String(),
		OccurredAt: created.AddDate(0, 0, 1),
	})
	if status.Equal(valueobject.StatusInReview) {
		return stages
	}

	stages = append(stages, dto.Stage{
		Name:       "pending approval",
		Status:     valueobject.StatusPendingApproval.String(),
		OccurredAt: created.AddDate(0, 0, 2),
	})
	if status.Equal(valueobject.StatusPendingApproval) {
		return stages
	}

	stages = append(stages, dto.Stage{
		Name:       stageName(status),
		Status:     status.String(),
		OccurredAt: terminalTimestamp(app),
	})
	return stages
}

func terminalTimestamp(app model.CreditApplication) time.Time {
	if t := app.ApprovedAt(); t != nil {
		return *t
	}
	if t := app.RejectedAt(); t != nil {
		return *t
	}
	return app.CreatedAt().AddDate(0, 0, 3)
}

func stageName(status valueobject.ApplicationStatus) string {
	switch {
	case status.Equal(valueobject.StatusPending):
		return "received"
	case status.Equal(valueobject.StatusInReview):
		return "in review"
	case status.Equal(valueobject.StatusPendingApproval):
		return "pending approval"
	case status.Equal(valueobject.StatusApproved):
		return "approved"
	case status.Equal(valueobject.StatusRejected):
		return "rejected"
	case status.Equal(valueobject.StatusCancelled):
		return "cancelled"
	}
	return status.String()
}
