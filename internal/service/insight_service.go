package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/editor"

	"github.com/microcosm-cc/bluemonday"
)

// InsightRepository defines the gateway operations the insight screens use.
type InsightRepository interface {
	List(ctx context.Context) ([]*data.Insight, error)
	GetByID(ctx context.Context, id string) (*data.Insight, error)
	Insert(ctx context.Context, ins *data.Insight) error
	Update(ctx context.Context, ins *data.Insight) error
	UnfeatureAllExcept(ctx context.Context, excludeID string) error
	Delete(ctx context.Context, id string) error
}

// InsightService provides business logic for the editorial content screens.
type InsightService struct {
	repo      InsightRepository
	sanitizer *bluemonday.Policy
	now       func() time.Time
}

// NewInsightService creates a new InsightService with the given repository.
func NewInsightService(repo InsightRepository) *InsightService {
	return &InsightService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
		now:       time.Now,
	}
}

// List retrieves all insights newest-first.
func (s *InsightService) List(ctx context.Context) ([]*data.Insight, error) {
	insights, err := s.repo.List(ctx)
	return emptyIfNil(insights), err
}

// Get retrieves a single insight.
func (s *InsightService) Get(ctx context.Context, id string) (*data.Insight, error) {
	return s.repo.GetByID(ctx, id)
}

// Save persists a draft insight: insert when it carries no identifier,
// update otherwise. The featured flag is a singleton across the collection,
// so featuring this draft first unsets every other record.
func (s *InsightService) Save(ctx context.Context, draft *data.Insight) (editor.Outcome, error) {
	if draft.ContentFormat != data.FormatArticle && draft.ContentFormat != data.FormatVideo {
		return 0, fmt.Errorf("unknown content format %q: %w", draft.ContentFormat, ErrInvalid)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return 0, fmt.Errorf("title is required: %w", ErrInvalid)
	}

	if draft.IsFeatured {
		if err := s.repo.UnfeatureAllExcept(ctx, draft.ID); err != nil {
			return 0, err
		}
	}

	return editor.Save[*data.Insight](ctx, s.repo, draft,
		s.sanitizeBody,
		autofillSEO,
		s.stampPublished,
	)
}

// Delete removes an insight.
func (s *InsightService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *InsightService) sanitizeBody(draft *data.Insight) {
	draft.ContentBody = s.sanitizer.Sanitize(draft.ContentBody)
	draft.Excerpt = s.sanitizer.Sanitize(draft.Excerpt)
}

// autofillSEO derives the meta fields from the editorial content when the
// editor left them blank.
func autofillSEO(draft *data.Insight) {
	if strings.TrimSpace(draft.MetaTitle) == "" {
		draft.MetaTitle = draft.Title
	}
	if strings.TrimSpace(draft.MetaDescription) == "" {
		source := draft.Excerpt
		if strings.TrimSpace(source) == "" {
			source = draft.ContentBody
		}
		draft.MetaDescription = truncate(strings.TrimSpace(source), 160)
	}
}

// stampPublished records the first transition to published and clears the
// timestamp again on unpublish.
func (s *InsightService) stampPublished(draft *data.Insight) {
	switch {
	case draft.IsPublished && draft.PublishedAt == nil:
		now := s.now()
		draft.PublishedAt = &now
	case !draft.IsPublished:
		draft.PublishedAt = nil
	}
}

func truncate(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max])
}
