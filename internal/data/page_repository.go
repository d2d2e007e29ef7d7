package data

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// PageRepository handles database operations for marketing-site pages.
type PageRepository struct {
	db *sqlx.DB
}

// NewPageRepository creates a new PageRepository.
func NewPageRepository(db *sqlx.DB) *PageRepository {
	return &PageRepository{db: db}
}

const pageColumns = `id, slug, title, meta_title, meta_description, hero_title,
	hero_description, hero_cta_text, hero_cta_link, is_published, updated_at`

// GetAll retrieves every page ordered by title, matching the order the
// portal's hero editor lists them in.
func (r *PageRepository) GetAll(ctx context.Context) ([]*Page, error) {
	var pages []*Page
	query := `SELECT ` + pageColumns + ` FROM pages ORDER BY title ASC`
	if err := r.db.SelectContext(ctx, &pages, query); err != nil {
		return nil, fmt.Errorf("failed to get all pages: %w", err)
	}
	return pages, nil
}

// GetByID retrieves a single page by its ID.
func (r *PageRepository) GetByID(ctx context.Context, id string) (*Page, error) {
	var page Page
	query := `SELECT ` + pageColumns + ` FROM pages WHERE id = $1`
	if err := r.db.GetContext(ctx, &page, query, id); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("page %s: %w", id, ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get page by id: %w", err)
	}
	return &page, nil
}

// Count returns the number of pages in the collection.
func (r *PageRepository) Count(ctx context.Context) (int, error) {
	var n int
	if err := r.db.GetContext(ctx, &n, `SELECT count(*) FROM pages`); err != nil {
		return 0, fmt.Errorf("failed to count pages: %w", err)
	}
	return n, nil
}

// BulkInsert seeds the pages collection. It is only called by the explicit
// initialize-defaults operation when the collection is empty.
func (r *PageRepository) BulkInsert(ctx context.Context, pages []*Page) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin seed transaction: %w", err)
	}
	defer tx.Rollback()

	query := `INSERT INTO pages (slug, title, hero_title, hero_description, hero_cta_text, hero_cta_link)
		VALUES (:slug, :title, :hero_title, :hero_description, :hero_cta_text, :hero_cta_link)`
	for _, p := range pages {
		if _, err := tx.NamedExecContext(ctx, query, p); err != nil {
			return fmt.Errorf("failed to seed page %q: %w", p.Slug, err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit page seed: %w", err)
	}
	return nil
}

// UpdateHero updates the hero copy fields of a page. Other columns are never
// mutated through the portal.
func (r *PageRepository) UpdateHero(ctx context.Context, page *Page) error {
	query := `UPDATE pages
		SET hero_title = :hero_title, hero_description = :hero_description,
		    hero_cta_text = :hero_cta_text, hero_cta_link = :hero_cta_link,
		    updated_at = now()
		WHERE id = :id`
	result, err := r.db.NamedExecContext(ctx, query, page)
	if err != nil {
		return fmt.Errorf("failed to update page hero: %w", err)
	}
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}
	if rowsAffected == 0 {
		return fmt.Errorf("page %s: %w", page.ID, ErrNotFound)
	}
	return nil
}
