package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// TestimonialRepository handles database operations for testimonials.
type TestimonialRepository struct {
	db *sqlx.DB
}

// NewTestimonialRepository creates a new TestimonialRepository.
func NewTestimonialRepository(db *sqlx.DB) *TestimonialRepository {
	return &TestimonialRepository{db: db}
}

const testimonialColumns = `id, feedback, service_type, customer_name,
	company, designation, is_anonymous, is_featured, is_approved, created_at`

// List retrieves all testimonials newest-first.
func (r *TestimonialRepository) List(ctx context.Context) ([]*Testimonial, error) {
	var ts []*Testimonial
	query := `SELECT ` + testimonialColumns + ` FROM testimonials ORDER BY created_at DESC`
	if err := r.db.SelectContext(ctx, &ts, query); err != nil {
		return nil, fmt.Errorf("failed to list testimonials: %w", err)
	}
	return ts, nil
}

// GetByID retrieves a single testimonial.
func (r *TestimonialRepository) GetByID(ctx context.Context, id string) (*Testimonial, error) {
	var t Testimonial
	query := `SELECT ` + testimonialColumns + ` FROM testimonials WHERE id = $1`
	if err := r.db.GetContext(ctx, &t, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("testimonial %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get testimonial: %w", err)
	}
	return &t, nil
}

// Insert creates a new testimonial; the backend assigns id and created_at.
func (r *TestimonialRepository) Insert(ctx context.Context, t *Testimonial) error {
	query := `INSERT INTO testimonials (feedback, service_type, customer_name,
			company, designation, is_anonymous, is_featured, is_approved)
		VALUES (:feedback, :service_type, :customer_name, :company, :designation,
			:is_anonymous, :is_featured, :is_approved)
		RETURNING id, created_at`
	rows, err := r.db.NamedQueryContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("failed to insert testimonial: %w", err)
	}
	defer rows.Close()
	if rows.Next() {
		if err := rows.Scan(&t.ID, &t.CreatedAt); err != nil {
			return fmt.Errorf("failed to scan inserted testimonial: %w", err)
		}
	}
	return rows.Err()
}

// Update rewrites an existing testimonial keyed by its identifier.
func (r *TestimonialRepository) Update(ctx context.Context, t *Testimonial) error {
	query := `UPDATE testimonials
		SET feedback = :feedback, service_type = :service_type,
		    customer_name = :customer_name, company = :company,
		    designation = :designation, is_anonymous = :is_anonymous,
		    is_featured = :is_featured, is_approved = :is_approved
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, t)
	if err != nil {
		return fmt.Errorf("failed to update testimonial: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("testimonial %s: %w", t.ID, ErrNotFound)
	}
	return nil
}

// SetFlag flips one of the boolean visibility flags (is_approved or
// is_featured) on a single testimonial.
func (r *TestimonialRepository) SetFlag(ctx context.Context, id, column string, value bool) error {
	var query string
	switch column {
	case "is_approved":
		query = `UPDATE testimonials SET is_approved = $1 WHERE id = $2`
	case "is_featured":
		query = `UPDATE testimonials SET is_featured = $1 WHERE id = $2`
	default:
		return fmt.Errorf("unknown testimonial flag %q", column)
	}
	result, err := r.db.ExecContext(ctx, query, value, id)
	if err != nil {
		return fmt.Errorf("failed to set testimonial flag: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("testimonial %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a testimonial by its ID.
func (r *TestimonialRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM testimonials WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete testimonial: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("testimonial %s: %w", id, ErrNotFound)
	}
	return nil
}
