package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/meridianbank/credit-origination/internal/application/dto"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// StaleApplicationsUseCase surfaces open applications stuck without progress.
type StaleApplicationsUseCase struct {
	appRepo port.ApplicationRepository
}

// NewStaleApplicationsUseCase wires dependencies.
func NewStaleApplicationsUseCase(appRepo port.ApplicationRepository) *StaleApplicationsUseCase {
	return &StaleApplicationsUseCase{appRepo: appRepo}
}

// Execute returns every non-deleted open application whose last update is
// older than now − thresholdDays.
func (uc *StaleApplicationsUseCase) Execute(ctx context.Context, thresholdDays int) ([]dto.ApplicationResponse, error) {
	apps, err := uc.appRepo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("list applications: %w", err)
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -thresholdDays)
	var stale []dto.ApplicationResponse
	for _, app := range apps {
		if app.IsDeleted() || !app.Status().IsOpen() {
			continue
		}
		if app.UpdatedAt().Before(cutoff) {
			stale = append(stale, toApplicationResponse(app))
		}
	}
	return stale, nil
}

// ProcessingTimeUseCase measures how long an application took to decide.
type ProcessingTimeUseCase struct {
	appRepo port.ApplicationRepository
}

// NewProcessingTimeUseCase wires dependencies.
func NewProcessingTimeUseCase(appRepo port.ApplicationRepository) *ProcessingTimeUseCase {
	return &ProcessingTimeUseCase{appRepo: appRepo}
}

// Execute returns whole days between creation and the decision timestamp:
// approval, rejection, last update for cancelled, or now for still-open
// applications.
func (uc *ProcessingTimeUseCase) Execute(ctx context.Context, applicationID string) (int, error) {
	app, err := uc.appRepo.FindByID(ctx, applicationID)
	if err != nil {
		return 0, fmt.Errorf("find application: %w", err)
	}

	var end time.Time
	switch {
	case app.ApprovedAt() != nil:
		end = *app.ApprovedAt()
	case app.RejectedAt() != nil:
		end = *app.RejectedAt()
	case app.Status().Equal(valueobject.StatusCancelled):
		end = app.UpdatedAt()
	default:
		end = time.Now().UTC()
	}

	return int(end.Sub(app.CreatedAt()).Hours() / 24), nil
}
