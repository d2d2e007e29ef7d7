package data

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// LeadRepository handles database operations for leads. The portal never
// inserts leads; they arrive through the public contact form.
type LeadRepository struct {
	db *sqlx.DB
}

// NewLeadRepository creates a new LeadRepository.
func NewLeadRepository(db *sqlx.DB) *LeadRepository {
	return &LeadRepository{db: db}
}

const leadColumns = `id, full_name, email, phone_number, company, title,
	page_source, service_interest, message, status, created_at`

// List retrieves leads newest-first, optionally filtered by status.
func (r *LeadRepository) List(ctx context.Context, status string) ([]*Lead, error) {
	var leads []*Lead
	var err error
	if status == "" {
		query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &leads, query)
	} else {
		query := `SELECT ` + leadColumns + ` FROM leads WHERE status = $1 ORDER BY created_at DESC`
		err = r.db.SelectContext(ctx, &leads, query, status)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return leads, nil
}

// Recent retrieves the most recently created leads, up to limit.
func (r *LeadRepository) Recent(ctx context.Context, limit int) ([]*Lead, error) {
	var leads []*Lead
	query := `SELECT ` + leadColumns + ` FROM leads ORDER BY created_at DESC LIMIT $1`
	if err := r.db.SelectContext(ctx, &leads, query, limit); err != nil {
		return nil, fmt.Errorf("failed to list recent leads: %w", err)
	}
	return leads, nil
}

// UpdateStatus transitions a single lead to the given status.
func (r *LeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	result, err := r.db.ExecContext(ctx, `UPDATE leads SET status = $1 WHERE id = $2`, status, id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lead %s: %w", id, ErrNotFound)
	}
	return nil
}

// Delete removes a lead by its ID.
func (r *LeadRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM leads WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete lead: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("lead %s: %w", id, ErrNotFound)
	}
	return nil
}

// Count returns the number of leads.
func (r *LeadRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM leads`); err != nil {
		return 0, fmt.Errorf("failed to count leads: %w", err)
	}
	return n, nil
}
