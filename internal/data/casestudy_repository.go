package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// CaseStudyRepository handles database operations for case studies.
type CaseStudyRepository struct {
	db *sqlx.DB
}

// NewCaseStudyRepository creates a new CaseStudyRepository.
func NewCaseStudyRepository(db *sqlx.DB) *CaseStudyRepository {
	return &CaseStudyRepository{db: db}
}

const caseStudyColumns = `id, title, slug, sector, status, headline_summary,
	excerpt, background, strategic_approach, impact, featured_image_url, tags,
	service_type, is_featured, is_published, created_at, updated_at`

// List retrieves case studies newest-first. An empty serviceType returns the
// whole collection.
func (r *CaseStudyRepository) List(ctx context.Context, serviceType string) ([]*CaseStudy, error) {
	var studies []*CaseStudy
	var err error
	if serviceType == "" {
		query := `SELECT ` + caseStudyColumns + ` FROM case_studies ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &studies, query)
	} else {
		query := `SELECT ` + caseStudyColumns + ` FROM case_studies WHERE service_type = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &studies, query, serviceType)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list case studies: %w", err)
	}
	return studies, nil
}

// GetByID retrieves a single case study.
func (r *CaseStudyRepository) GetByID(ctx context.Context, id string) (*CaseStudy, error) {
	var cs CaseStudy
	query := `SELECT ` + caseStudyColumns + ` FROM case_studies WHERE id = $1`
	if err := r.db.GetContext(ctx, &cs, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("case study %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get case study: %w", err)
	}
	return &cs, nil
}

// Insert creates a new case study. The backend assigns the identifier and
// timestamps, which are written back onto cs.
func (r *CaseStudyRepository) Insert(ctx context.Context, cs *CaseStudy) error {
	query := `INSERT INTO case_studies (title, slug, sector, status, headline_summary,
			excerpt, background, strategic_approach, impact, featured_image_url, tags,
			service_type, is_featured, is_published)
		VALUES (:title, :slug, :sector, :status, :headline_summary, :excerpt,
			:background, :strategic_approach, :impact, :featured_image_url, :tags,
			:service_type, :is_featured, :is_published)
		RETURNING id, created_at, updated_at`
	rows, err := r.db.NamedQueryContext(ctx, query, cs)
	if err != nil {
		return fmt.Errorf("failed to insert case study: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&cs.ID, &cs.CreatedAt, &cs.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan inserted case study: %w", err)
		}
	}
	return rows.Err()
}

// Update rewrites an existing case study keyed by its identifier.
func (r *CaseStudyRepository) Update(ctx context.Context, cs *CaseStudy) error {
	query := `UPDATE case_studies
		SET title = :title, slug = :slug, sector = :sector, status = :status,
		    headline_summary = :headline_summary, excerpt = :excerpt,
		    background = :background, strategic_approach = :strategic_approach,
		    impact = :impact, featured_image_url = :featured_image_url,
		    tags = :tags, service_type = :service_type,
		    is_featured = :is_featured, is_published = :is_published,
		    updated_at = now()
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, cs)
	if err != nil {
		return fmt.Errorf("failed to update case study: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("case study %s: %w", cs.ID, ErrNotFound)
	}
	return nil
}

// Delete removes a case study by its ID.
func (r *CaseStudyRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM case_studies WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete case study: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("case study %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of case studies.
func (r *CaseStudyRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM case_studies`); err != nil {
		return 0, fmt.Errorf("failed to count case studies: %w", err)
	}
	return n, nil
}
