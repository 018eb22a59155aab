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

// UpdateStatusUseCase transitions an application's status, stamping the
// approval or rejection timestamp when the new status calls for one,
// appending operator notes, and recording the transition in the log.
type UpdateStatusUseCase struct {
	appRepo   port.ApplicationRepository
	log       port.TransitionLogRepository
	publisher port.EventPublisher
}

// NewUpdateStatusUseCase wires dependencies.
func NewUpdateStatusUseCase(
	appRepo port.ApplicationRepository,
	log port.TransitionLogRepository,
	publisher port.EventPublisher,
) *UpdateStatusUseCase {
	return &UpdateStatusUseCase{appRepo: appRepo, log: log, publisher: publisher}
}

// Execute applies the requested status change.
func (uc *UpdateStatusUseCase) Execute(ctx context.Context, req dto.UpdateStatusRequest) (dto.ApplicationResponse, error) {
	now := time.Now().UTC()

	target, err := valueobject.NewApplicationStatus(req.NewStatus)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("parse status: %w", err)
	}

	app, err := uc.appRepo.FindByID(ctx, req.ApplicationID)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("find application: %w", err)
	}
	previous := app.Status()

	app, err = applyTransition(app, target, now)
	if err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("transition to %s: %w", target, err)
	}
	app = app.AppendNote(req.Notes, now)

	if err := uc.appRepo.Save(ctx, app); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("save application: %w", err)
	}

	transition := model.NewStatusTransition(
		app.ID(), previous, target, req.Actor, req.Notes, now,
	)
	if err := uc.log.Append(ctx, transition); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("append transition: %w", err)
	}

	if err := uc.publisher.Publish(ctx, app.DomainEvents()...); err != nil {
		return dto.ApplicationResponse{}, fmt.Errorf("publish events: %w", err)
	}

	return toApplicationResponse(app), nil
}

func applyTransition(
	app model.CreditApplication,
	target valueobject.ApplicationStatus,
	now time.Time,
) (model.CreditApplication, error) {
	switch {
	case target.Equal(valueobject.StatusInReview):
		return app.StartReview(now)
	case target.Equal(valueobject.StatusPendingApproval):
		return app.MarkPendingApproval(now)
	case target.Equal(valueobject.StatusApproved):
		return app.Approve("approved by reviewer", now)
	case target.Equal(valueobject.StatusRejected):
		return app.Reject("rejected by reviewer", now)
	case target.Equal(valueobject.StatusCancelled):
		return app.Cancel("cancelled by request", now)
	default:
		return app, valueobject.ErrInvalidStatusTransition
	}
}
