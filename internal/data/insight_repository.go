package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// InsightRepository handles database operations for insights.
type InsightRepository struct {
	db *sqlx.DB
}

// NewInsightRepository creates a new InsightRepository.
func NewInsightRepository(db *sqlx.DB) *InsightRepository {
	return &InsightRepository{db: db}
}

const insightColumns = `id, title, slug, category, excerpt, content_body,
	featured_image_url, author_name, content_format, meta_title,
	meta_description, is_featured, is_published, published_at, created_at,
	updated_at`

// List retrieves all insights newest-first.
func (r *InsightRepository) List(ctx context.Context) ([]*Insight, error) {
	var insights []*Insight
	query := `SELECT ` + insightColumns + ` FROM insights ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &insights, query); err != nil {
		return nil, fmt.Errorf("failed to list insights: %w", err)
	}
	return insights, nil
}

// GetByID retrieves a single insight.
func (r *InsightRepository) GetByID(ctx context.Context, id string) (*Insight, error) {
	var ins Insight
	query := `SELECT ` + insightColumns + ` FROM insights WHERE id = $1`
	if err := r.db.GetContext(ctx, &ins, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("insight %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get insight: %w", err)
	}
	return &ins, nil
}

// Insert creates a new insight; the backend assigns id and timestamps.
func (r *InsightRepository) Insert(ctx context.Context, ins *Insight) error {
	query := `INSERT INTO insights (title, slug, category, excerpt, content_body,
			featured_image_url, author_name, content_format, meta_title,
			meta_description, is_featured, is_published, published_at)
		VALUES (:title, :slug, :category, :excerpt, :content_body,
			:featured_image_url, :author_name, :content_format, :meta_title,
			:meta_description, :is_featured, :is_published, :published_at)
		RETURNING id, created_at, updated_at`
	rows, err := r.db.NamedQueryContext(ctx, query, ins)
	if err != nil {
		return fmt.Errorf("failed to insert insight: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&ins.ID, &ins.CreatedAt, &ins.UpdatedAt); err != nil {
			return fmt.Errorf("failed to scan inserted insight: %w", err)
		}
	}
	return rows.Err()
}

// Update rewrites an existing insight keyed by its identifier.
func (r *InsightRepository) Update(ctx context.Context, ins *Insight) error {
	query := `UPDATE insights
		SET title = :title, slug = :slug, category = :category, excerpt = :excerpt,
		    content_body = :content_body, featured_image_url = :featured_image_url,
		    author_name = :author_name, content_format = :content_format,
		    meta_title = :meta_title, meta_description = :meta_description,
		    is_featured = :is_featured, is_published = :is_published,
		    published_at = :published_at, updated_at = now()
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, ins)
	if err != nil {
		return fmt.Errorf("failed to update insight: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("insight %s: %w", ins.ID, ErrNotFound)
	}
	return nil
}

// UnfeatureAllExcept clears the featured flag on every insight other than
// the one identified by excludeID (pass "" when featuring a new record).
// A partial unique index on the table makes a two-featured state impossible
// even if concurrent sessions race this call.
func (r *InsightRepository) UnfeatureAllExcept(ctx context.Context, excludeID string) error {
	var err error
	if excludeID == "" {
		_, err = r.db.ExecContext(ctx, `UPDATE insights SET is_featured = false WHERE is_featured`)
	} else {
		_, err = r.db.ExecContext(ctx, `UPDATE insights SET is_featured = false WHERE is_featured AND id <> $1`, excludeID)
	}
	if err != nil {
		return fmt.Errorf("failed to clear featured insights: %w", err)
	}
	return nil
}

// Delete removes an insight by its ID.
func (r *InsightRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM insights WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete insight: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("insight %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of insights.
func (r *InsightRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM insights`); err != nil {
		return 0, fmt.Errorf("failed to count insights: %w", err)
	}
	return n, nil
}
