package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// JobRepository handles database operations for job openings.
type JobRepository struct {
	db *sqlx.DB
}

// NewJobRepository creates a new JobRepository.
func NewJobRepository(db *sqlx.DB) *JobRepository {
	return &JobRepository{db: db}
}

const jobColumns = `id, role_title, business_division, team, work_type,
	location, description, excerpt, is_active, created_at, updated_at`

// List retrieves all job openings newest-first.
func (r *JobRepository) List(ctx context.Context) ([]*JobOpening, error) {
	var jobs []*JobOpening
	query := `SELECT ` + jobColumns + ` FROM job_openings ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &jobs, query); err != nil {
		return nil, fmt.Errorf("failed to list job openings: %w", err)
	}
	return jobs, nil
}

// GetByID retrieves a single job opening.
func (r *JobRepository) GetByID(ctx context.Context, id string) (*JobOpening, error) {
	var job JobOpening
	query := `SELECT ` + jobColumns + ` FROM job_openings WHERE id = $1`
	if err := r.db.GetContext(ctx, &job, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("job opening %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get job opening: %w", err)
	}
	return &job, nil
}

// Insert creates a new job opening; the backend assigns id and timestamps.
func (r *JobRepository) Insert(ctx context.Context, job *JobOpening) error {
	query := `INSERT INTO job_openings (role_title, business_division, team,
			work_type, location, description, excerpt, is_active)
		VALUES (:role_title, :business_division, :team, :work_type, :location,
			:description, :excerpt, :is_active)
		RETURNING id, created_at, updated_at`
	rows, err := r.db.NamedQueryContext(ctx, query, job)
	if err != nil {
		return fmt.Errorf("failed to insert job opening: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&job.ID, &job.CreatedAt, &job.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan inserted job opening: %w", err)
		}
	}
	return rows.Err()
}

// Update rewrites an existing job opening keyed by its identifier.
func (r *JobRepository) Update(ctx context.Context, job *JobOpening) error {
	query := `UPDATE job_openings
		SET role_title = :role_title, business_division = :business_division,
		    team = :team, work_type = :work_type, location = :location,
		    description = :description, excerpt = :excerpt,
		    is_active = :is_active, updated_at = now()
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, job)
	if err != nil {
		return fmt.Errorf("failed to update job opening: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("job opening %s: %w", job.ID, ErrNotFound)
	}
	return nil
}

// SetActive flips the public-visibility flag on a single opening.
func (r *JobRepository) SetActive(ctx context.Context, id string, active bool) error {
	result, err := r.db.ExecContext(ctx,
		`UPDATE job_openings SET is_active = $1, updated_at = now() WHERE id = $2`, active, id)
	if err != nil {
		return fmt.Errorf("failed to set job opening active flag: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("job opening %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a job opening. Applicants keep their rows; the reference
// is weak and nulled by the schema.
func (r *JobRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM job_openings WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete job opening: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("job opening %s: %w", id, ErrNotFound)
	}
	return nil
}

// CountActive returns the number of openings currently visible to the
// public careers page.
func (r *JobRepository) CountActive(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM job_openings WHERE is_active`); err != nil {
		return 0, fmt.Errorf("failed to count active job openings: %w", err)
	}
	return n, nil
}

// ApplicantRepository handles database operations for job applicants.
type ApplicantRepository struct {
	db *sqlx.DB
}

// NewApplicantRepository creates a new ApplicantRepository.
func NewApplicantRepository(db *sqlx.DB) *ApplicantRepository {
	return &ApplicantRepository{db: db}
}

// List retrieves applicants newest-first, with the role title of the
// referenced opening denormalized for display. An empty jobID returns the
// full pipeline.
func (r *ApplicantRepository) List(ctx context.Context, jobID string) ([]*Applicant, error) {
	var applicants []*Applicant
	base := `SELECT a.id, a.job_id, coalesce(j.role_title, '') AS role_title,
			a.full_name, a.email, a.phone_number, a.resume_url, a.portfolio_url,
			a.linkedin_url, a.answers, a.status, a.created_at
		FROM applicants a
		LEFT JOIN job_openings j ON j.id = a.job_id`
	var err error
	if jobID == "" {
		err = r.db.SelectContext(ctx, &applicants, base+` ORDER BY a.created_at DESC`)
	} else {
		err = r.db.SelectContext(ctx, &applicants, base+` WHERE a.job_id = $1 ORDER BY a.created_at DESC`, jobID)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list applicants: %w", err)
	}
	return applicants, nil
}

// UpdateStatus transitions a single applicant to the given status.
func (r *ApplicantRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE applicants SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update applicant status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("applicant %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes an applicant by ID.
func (r *ApplicantRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM applicants WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete applicant: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("applicant %s: %w", id, ErrNotFound)
	}
	return nil
}
