package service

import (
	"context"
	"fmt"
	"slices"
	"strings"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/editor"
)

// JobRepository defines the gateway operations the vacancies tab uses.
type JobRepository interface {
	List(ctx context.Context) ([]*data.JobOpening, error)
	GetByID(ctx context.Context, id string) (*data.JobOpening, error)
	Insert(ctx context.Context, job *data.JobOpening) error
	Update(ctx context.Context, job *data.JobOpening) error
	SetActive(ctx context.Context, id string, active bool) error
	Delete(ctx context.Context, id string) error
}

// ApplicantRepository defines the gateway operations the pipeline tab uses.
type ApplicantRepository interface {
	List(ctx context.Context, jobID string) ([]*data.Applicant, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// CareersService provides business logic for the recruitment screens:
// vacancies on one tab, the applicant pipeline on the other.
type CareersService struct {
	jobs       JobRepository
	applicants ApplicantRepository
}

// NewCareersService creates a new CareersService.
func NewCareersService(jobs JobRepository, applicants ApplicantRepository) *CareersService {
	return &CareersService{jobs: jobs, applicants: applicants}
}

// ListJobs retrieves all openings newest-first.
func (s *CareersService) ListJobs(ctx context.Context) ([]*data.JobOpening, error) {
	jobs, err := s.jobs.List(ctx)
	return emptyIfNil(jobs), err
}

// GetJob retrieves a single opening.
func (s *CareersService) GetJob(ctx context.Context, id string) (*data.JobOpening, error) {
	return s.jobs.GetByID(ctx, id)
}

// SaveJob persists a draft opening.
func (s *CareersService) SaveJob(ctx context.Context, draft *data.JobOpening) (editor.Outcome, error) {
	if strings.TrimSpace(draft.RoleTitle) == "" {
		return 0, fmt.Errorf("role title is required: %w", ErrInvalid)
	}
	return editor.Save[*data.JobOpening](ctx, s.jobs, draft)
}

// SetJobActive flips public visibility for one opening.
func (s *CareersService) SetJobActive(ctx context.Context, id string, active bool) error {
	return s.jobs.SetActive(ctx, id, active)
}

// DeleteJob removes an opening. Its applicants remain; the job reference is
// weak and the pipeline keeps their rows.
func (s *CareersService) DeleteJob(ctx context.Context, id string) error {
	return s.jobs.Delete(ctx, id)
}

// ListApplicants retrieves the pipeline, optionally for one opening.
func (s *CareersService) ListApplicants(ctx context.Context, jobID string) ([]*data.Applicant, error) {
	applicants, err := s.applicants.List(ctx, jobID)
	return emptyIfNil(applicants), err
}

// UpdateApplicantStatus moves an applicant through the pipeline.
func (s *CareersService) UpdateApplicantStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(data.ApplicantStatuses, status) {
		return fmt.Errorf("unknown applicant status %q: %w", status, ErrInvalid)
	}
	return s.applicants.UpdateStatus(ctx, id, status)
}

// DeleteApplicant removes an applicant from the pipeline.
func (s *CareersService) DeleteApplicant(ctx context.Context, id string) error {
	return s.applicants.Delete(ctx, id)
}
