package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internship-service/internal/domain"
)

// ApplicationRepository encapsulates application persistence.
type ApplicationRepository interface {
	Create(ctx context.Context, app *domain.Application) error
	ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error)
	UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error
}

type applicationRepository struct {
	pool *pgxpool.Pool
}

// NewApplicationRepository instantiates repository.
func NewApplicationRepository(pool *pgxpool.Pool) ApplicationRepository {
	return &applicationRepository{pool: pool}
}

func (r *applicationRepository) Create(ctx context.Context, app *domain.Application) error {
	const query = `
        INSERT INTO applications (user_id, internship_id, status)
        VALUES ($1, $2, $3)
        RETURNING application_id`
	if app.Status == "" {
		app.Status = domain.ApplicationStatusPending
	}
	return r.pool.QueryRow(ctx, query, app.UserID, app.InternshipID, app.Status).Scan(&app.ID)
}

func (r *applicationRepository) ListByUser(ctx context.Context, userID int64) ([]domain.UserApplication, error) {
	const query = `
        SELECT i.internship_id, i.title, i.description, i.company, i.location, i.created_by,
            a.application_id, a.status
        FROM applications a
        INNER JOIN internships i ON a.internship_id = i.internship_id
        WHERE a.user_id = $1
        ORDER BY a.application_id`
	rows, err := r.pool.Query(ctx, query, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.UserApplication, 0)
	for rows.Next() {
		var item domain.UserApplication
		if err := rows.Scan(
			&item.ID,
			&item.Title,
			&item.Description,
			&item.Company,
			&item.Location,
			&item.CreatedBy,
			&item.ApplicationID,
			&item.Status,
		); err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, rows.Err()
}

// UpdateStatus returns pgx.ErrNoRows when no application matched id.
func (r *applicationRepository) UpdateStatus(ctx context.Context, id int64, status domain.ApplicationStatus) error {
	const query = `UPDATE applications SET status=$1 WHERE application_id=$2`
	cmd, err := r.pool.Exec(ctx, query, status, id)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}
