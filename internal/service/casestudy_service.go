package service

import (
	"context"
	"fmt"
	"strings"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/editor"

	"github.com/microcosm-cc/bluemonday"
)

// CaseStudyRepository defines the gateway operations the portfolio screens
// use.
type CaseStudyRepository interface {
	List(ctx context.Context, serviceType string) ([]*data.CaseStudy, error)
	GetByID(ctx context.Context, id string) (*data.CaseStudy, error)
	Insert(ctx context.Context, cs *data.CaseStudy) error
	Update(ctx context.Context, cs *data.CaseStudy) error
	Delete(ctx context.Context, id string) error
}

// CaseStudyService provides business logic for the portfolio screens.
type CaseStudyService struct {
	repo      CaseStudyRepository
	sanitizer *bluemonday.Policy
}

// NewCaseStudyService creates a new CaseStudyService.
func NewCaseStudyService(repo CaseStudyRepository) *CaseStudyService {
	return &CaseStudyService{
		repo:      repo,
		sanitizer: bluemonday.UGCPolicy(),
	}
}

// List retrieves case studies, optionally filtered by service category.
func (s *CaseStudyService) List(ctx context.Context, serviceType string) ([]*data.CaseStudy, error) {
	if serviceType != "" && !validServiceType(serviceType) {
		return nil, fmt.Errorf("unknown service type %q: %w", serviceType, ErrInvalid)
	}
	studies, err := s.repo.List(ctx, serviceType)
	return emptyIfNil(studies), err
}

// Get retrieves a single case study.
func (s *CaseStudyService) Get(ctx context.Context, id string) (*data.CaseStudy, error) {
	return s.repo.GetByID(ctx, id)
}

// Save persists a draft case study, normalizing its tag set and sanitizing
// the narrative sections first.
func (s *CaseStudyService) Save(ctx context.Context, draft *data.CaseStudy) (editor.Outcome, error) {
	if !validServiceType(draft.ServiceType) {
		return 0, fmt.Errorf("unknown service type %q: %w", draft.ServiceType, ErrInvalid)
	}
	if strings.TrimSpace(draft.Title) == "" {
		return 0, fmt.Errorf("title is required: %w", ErrInvalid)
	}

	return editor.Save[*data.CaseStudy](ctx, s.repo, draft,
		normalizeDraftTags,
		s.sanitizeSections,
	)
}

// Delete removes a case study.
func (s *CaseStudyService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func (s *CaseStudyService) sanitizeSections(draft *data.CaseStudy) {
	draft.Background = s.sanitizer.Sanitize(draft.Background)
	draft.StrategicApproach = s.sanitizer.Sanitize(draft.StrategicApproach)
	draft.Impact = s.sanitizer.Sanitize(draft.Impact)
}

func normalizeDraftTags(draft *data.CaseStudy) {
	draft.Tags = NormalizeTags(draft.Tags)
}

// NormalizeTags trims, uppercases and deduplicates a tag sequence while
// preserving the order tags were first entered. Adding the same tag twice,
// in any casing, yields a single entry.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]struct{}, len(tags))
	out := make([]string, 0, len(tags))
	for _, tag := range tags {
		normalized := strings.ToUpper(strings.TrimSpace(tag))
		if normalized == "" {
			continue
		}
		if _, dup := seen[normalized]; dup {
			continue
		}
		seen[normalized] = struct{}{}
		out = append(out, normalized)
	}
	return out
}

func validServiceType(st string) bool {
	switch st {
	case data.ServiceBusiness, data.ServiceIndividuals, data.ServiceEntertainment:
		return true
	}
	return false
}
