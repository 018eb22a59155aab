package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

// TransitionLogRepo implements port.TransitionLogRepository. The table is
// append-only; rows are never updated or deleted.
type TransitionLogRepo struct {
	pool *pgxpool.Pool
}

// NewTransitionLogRepo creates a new repository over the given pool.
func NewTransitionLogRepo(pool *pgxpool.Pool) *TransitionLogRepo {
	return &TransitionLogRepo{pool: pool}
}

// Append inserts transition records.
func (r *TransitionLogRepo) Append(ctx context.Context, transitions ...model.StatusTransition) error {
	query := `
		INSERT INTO status_transitions (
			id, application_id, from_status, to_status, actor, notes, occurred_at
		) VALUES ($1,$2,$3,$4,$5,$6,$7)
	`
	for _, tr := range transitions {
		_, err := r.pool.Exec(ctx, query,
			tr.ID, tr.ApplicationID,
			tr.FromStatus.String(), tr.ToStatus.String(),
			tr.Actor, tr.Notes, tr.OccurredAt,
		)
		if err != nil {
			return fmt.Errorf("append status transition: %w", err)
		}
	}
	return nil
}

// FindByApplicationID returns an application's transitions in order.
func (r *TransitionLogRepo) FindByApplicationID(ctx context.Context, applicationID string) ([]model.StatusTransition, error) {
	query := `
		SELECT id, application_id, from_status, to_status, actor, notes, occurred_at
		FROM status_transitions
		WHERE application_id = $1
		ORDER BY occurred_at
	`
	rows, err := r.pool.Query(ctx, query, applicationID)
	if err != nil {
		return nil, fmt.Errorf("query status transitions: %w", err)
	}
	defer rows.Close()

	var result []model.StatusTransition
	for rows.Next() {
		var (
			tr             model.StatusTransition
			fromStr, toStr string
			occurredAt     time.Time
		)
		if err := rows.Scan(&tr.ID, &tr.ApplicationID, &fromStr, &toStr, &tr.Actor, &tr.Notes, &occurredAt); err != nil {
			return nil, fmt.Errorf("scan status transition: %w", err)
		}
		from, err := valueobject.NewApplicationStatus(fromStr)
		if err != nil {
			return nil, fmt.Errorf("parse from status: %w", err)
		}
		to, err := valueobject.NewApplicationStatus(toStr)
		if err != nil {
			return nil, fmt.Errorf("parse to status: %w", err)
		}
		tr.FromStatus = from
		tr.ToStatus = to
		tr.OccurredAt = occurredAt
		result = append(result, tr)
	}
	return result, rows.Err()
}
