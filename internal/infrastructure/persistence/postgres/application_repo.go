package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	pkgpostgres "github.com/meridianbank/credit-origination/pkg/postgres"

	"github.com/meridianbank/credit-origination/internal/domain/model"
	"github.com/meridianbank/credit-origination/internal/domain/port"
	"github.com/meridianbank/credit-origination/internal/domain/valueobject"
)

const applicationColumns = `
	id, customer_number, credit_type, amount, term_months, monthly_income,
	notes, status, version, created_at, updated_at,
	approved_at, rejected_at, deleted_at
`

// ApplicationRepo implements port.ApplicationRepository backed by PostgreSQL.
type ApplicationRepo struct {
	pool *pgxpool.Pool
}

// NewApplicationRepo creates a new repository over the given pool.
func NewApplicationRepo(pool *pgxpool.Pool) *ApplicationRepo {
	return &ApplicationRepo{pool: pool}
}

// Save persists an application (upsert by ID with optimistic locking).
func (r *ApplicationRepo) Save(ctx context.Context, app model.CreditApplication) error {
	return saveOne(ctx, r.pool, app)
}

// SaveAll persists the given applications inside one transaction. Either all
// writes commit or none do; the refinance flow relies on this.
func (r *ApplicationRepo) SaveAll(ctx context.Context, apps ...model.CreditApplication) error {
	return pkgpostgres.WithTransaction(ctx, r.pool, func(tx pgx.Tx) error {
		for _, app := range apps {
			if err := saveOne(ctx, tx, app); err != nil {
				return err
			}
		}
		return nil
	})
}

func saveOne(ctx context.Context, q pkgpostgres.Querier, app model.CreditApplication) error {
	query := `
		INSERT INTO credit_applications (` + applicationColumns + `)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)
		ON CONFLICT (id) DO UPDATE SET
			notes       = EXCLUDED.notes,
			status      = EXCLUDED.status,
			term_months = EXCLUDED.term_months,
			version     = credit_applications.version + 1,
			updated_at  = EXCLUDED.updated_at,
			approved_at = EXCLUDED.approved_at,
			rejected_at = EXCLUDED.rejected_at,
			deleted_at  = EXCLUDED.deleted_at
		WHERE credit_applications.version = $9
	`
	tag, err := q.Exec(ctx, query,
		app.ID(), app.CustomerNumber(), app.CreditType().String(),
		app.Amount(), app.TermMonths(), app.MonthlyIncome(),
		app.Notes(), app.Status().String(), app.Version(),
		app.CreatedAt(), app.UpdatedAt(),
		app.ApprovedAt(), app.RejectedAt(), app.DeletedAt(),
	)
	if err != nil {
		return fmt.Errorf("save credit application: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return errors.New("optimistic locking conflict on credit application")
	}
	return nil
}

// FindByID retrieves a single application by its identifier.
func (r *ApplicationRepo) FindByID(ctx context.Context, id string) (model.CreditApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM credit_applications WHERE id = $1`

	app, err := scanApplication(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CreditApplication{}, port.ErrApplicationNotFound
		}
		return model.CreditApplication{}, err
	}
	return app, nil
}

// FindByCustomerAndStatus retrieves a customer's applications in a status.
func (r *ApplicationRepo) FindByCustomerAndStatus(ctx context.Context, customerNumber string, status valueobject.ApplicationStatus) ([]model.CreditApplication, error) {
	query := `
		SELECT ` + applicationColumns + `
		FROM credit_applications
		WHERE customer_number = $1 AND status = $2
		ORDER BY created_at DESC
	`
	return r.scanMany(ctx, query, customerNumber, status.String())
}

// FindAll retrieves every application. Used by portfolio scans; soft-deleted
// rows are included and filtered by the caller where needed.
func (r *ApplicationRepo) FindAll(ctx context.Context) ([]model.CreditApplication, error) {
	query := `SELECT ` + applicationColumns + ` FROM credit_applications ORDER BY created_at`
	return r.scanMany(ctx, query)
}

func (r *ApplicationRepo) scanMany(ctx context.Context, query string, args ...any) ([]model.CreditApplication, error) {
	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query credit applications: %w", err)
	}
	defer rows.Close()

	var result []model.CreditApplication
	for rows.Next() {
		app, err := scanApplication(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, app)
	}
	return result, rows.Err()
}

type scannable interface {
	Scan(dest ...any) error
}

func scanApplication(s scannable) (model.CreditApplication, error) {
	var (
		id, customerNumber              string
		creditTypeStr                   string
		amount, monthlyIncome           decimal.Decimal
		termMonths                      int
		notes, statusStr                string
		version                         int
		createdAt, updatedAt            time.Time
		approvedAt, rejectedAt, deleted *time.Time
	)

	err := s.Scan(
		&id, &customerNumber, &creditTypeStr,
		&amount, &termMonths, &monthlyIncome,
		&notes, &statusStr, &version,
		&createdAt, &updatedAt,
		&approvedAt, &rejectedAt, &deleted,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return model.CreditApplication{}, err
		}
		return model.CreditApplication{}, fmt.Errorf("scan credit application: %w", err)
	}

	creditType, err := valueobject.NewCreditType(creditTypeStr)
	if err != nil {
		return model.CreditApplication{}, fmt.Errorf("parse credit type: %w", err)
	}
	status, err := valueobject.NewApplicationStatus(statusStr)
	if err != nil {
		return model.CreditApplication{}, fmt.Errorf("parse status: %w", err)
	}

	return model.ReconstructCreditApplication(
		id, customerNumber, creditType,
		amount, termMonths, monthlyIncome,
		notes, status, version,
		createdAt, updatedAt,
		approvedAt, rejectedAt, deleted,
	), nil
}
