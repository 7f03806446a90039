package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/internhub/internship-service/internal/domain"
)

// InternshipRepository encapsulates catalog persistence.
type InternshipRepository interface {
	Create(ctx context.Context, internship *domain.Internship) error
	GetByID(ctx context.Context, id int64) (*domain.Internship, error)
	List(ctx context.Context) ([]domain.Internship, error)
}

type internshipRepository struct {
	pool *pgxpool.Pool
}

// NewInternshipRepository instantiates repository.
func NewInternshipRepository(pool *pgxpool.Pool) InternshipRepository {
	return &internshipRepository{pool: pool}
}

func (r *internshipRepository) Create(ctx context.Context, internship *domain.Internship) error {
	const query = `
        INSERT INTO internships (title, description, company, location, created_by)
        VALUES ($1,$2,$3,$4,$5)
        RETURNING internship_id`
	return r.pool.QueryRow(ctx, query,
		internship.Title,
		internship.Description,
		internship.Company,
		internship.Location,
		internship.CreatedBy,
	).Scan(&internship.ID)
}

func (r *internshipRepository) GetByID(ctx context.Context, id int64) (*domain.Internship, error) {
	const query = `
        SELECT internship_id, title, description, company, location, created_by
        FROM internships WHERE internship_id=$1`
	row := r.pool.QueryRow(ctx, query, id)
	return scanInternship(row)
}

func (r *internshipRepository) List(ctx context.Context) ([]domain.Internship, error) {
	const query = `
        SELECT internship_id, title, description, company, location, created_by
        FROM internships ORDER BY internship_id`
	rows, err := r.pool.Query(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := make([]domain.Internship, 0)
	for rows.Next() {
		internship, err := scanInternship(rows)
		if err != nil {
			return nil, err
		}
		items = append(items, *internship)
	}
	return items, rows.Err()
}

func scanInternship(row pgx.Row) (*domain.Internship, error) {
	var internship domain.Internship
	if err := row.Scan(
		&internship.ID,
		&internship.Title,
		&internship.Description,
		&internship.Company,
		&internship.Location,
		&internship.CreatedBy,
	); err != nil {
		return nil, err
	}
	return &internship, nil
}
