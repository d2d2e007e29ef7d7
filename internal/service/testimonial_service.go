package service

import (
	"context"
	"fmt"
	"strings"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/editor"
)

// TestimonialRepository defines the gateway operations the testimonial
// screens use.
type TestimonialRepository interface {
	List(ctx context.Context) ([]*data.Testimonial, error)
	GetByID(ctx context.Context, id string) (*data.Testimonial, error)
	Insert(ctx context.Context, t *data.Testimonial) error
	Update(ctx context.Context, t *data.Testimonial) error
	SetFlag(ctx context.Context, id, column string, value bool) error
	Delete(ctx context.Context, id string) error
}

// TestimonialService provides business logic for the testimonial wall.
type TestimonialService struct {
	repo TestimonialRepository
}

// NewTestimonialService creates a new TestimonialService.
func NewTestimonialService(repo TestimonialRepository) *TestimonialService {
	return &TestimonialService{repo: repo}
}

// List retrieves all testimonials newest-first.
func (s *TestimonialService) List(ctx context.Context) ([]*data.Testimonial, error) {
	testimonials, err := s.repo.List(ctx)
	return emptyIfNil(testimonials), err
}

// Get retrieves a single testimonial.
func (s *TestimonialService) Get(ctx context.Context, id string) (*data.Testimonial, error) {
	return s.repo.GetByID(ctx, id)
}

// Save persists a draft testimonial. Anonymous feedback carries no customer
// identity, so those fields are cleared before the write.
func (s *TestimonialService) Save(ctx context.Context, draft *data.Testimonial) (editor.Outcome, error) {
	if strings.TrimSpace(draft.Feedback) == "" {
		return 0, fmt.Errorf("feedback is required: %w", ErrInvalid)
	}
	return editor.Save[*data.Testimonial](ctx, s.repo, draft, clearIdentityWhenAnonymous)
}

// ToggleFlag flips the approved or featured flag on one testimonial.
// Unlike insights, the featured flag here has no singleton constraint.
func (s *TestimonialService) ToggleFlag(ctx context.Context, id, flag string, value bool) error {
	if flag != "is_approved" && flag != "is_featured" {
		return fmt.Errorf("unknown testimonial flag %q: %w", flag, ErrInvalid)
	}
	return s.repo.SetFlag(ctx, id, flag, value)
}

// Delete removes a testimonial.
func (s *TestimonialService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}

func clearIdentityWhenAnonymous(draft *data.Testimonial) {
	if draft.IsAnonymous {
		draft.CustomerName = ""
		draft.Company = ""
		draft.Designation = ""
	}
}
