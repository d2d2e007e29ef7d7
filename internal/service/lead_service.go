package service

import (
	"context"
	"fmt"
	"slices"

	"stravigo-admin/internal/data"
)

// LeadRepository defines the gateway operations the lead screens use.
type LeadRepository interface {
	List(ctx context.Context, status string) ([]*data.Lead, error)
	UpdateStatus(ctx context.Context, id, status string) error
	Delete(ctx context.Context, id string) error
}

// LeadService provides business logic for the enquiry pipeline. Leads are
// created by the public site; the portal only reads, re-statuses and
// deletes them.
type LeadService struct {
	repo LeadRepository
}

// NewLeadService creates a new LeadService.
func NewLeadService(repo LeadRepository) *LeadService {
	return &LeadService{repo: repo}
}

// List retrieves leads, optionally filtered by pipeline status. The "all"
// filter (the UI's default tab) is equivalent to no filter.
func (s *LeadService) List(ctx context.Context, status string) ([]*data.Lead, error) {
	if status == "all" {
		status = ""
	}
	if status != "" && !slices.Contains(data.LeadStatuses, status) {
		return nil, fmt.Errorf("unknown lead status %q: %w", status, ErrInvalid)
	}
	leads, err := s.repo.List(ctx, status)
	return emptyIfNil(leads), err
}

// UpdateStatus transitions a lead through the pipeline.
func (s *LeadService) UpdateStatus(ctx context.Context, id, status string) error {
	if !slices.Contains(data.LeadStatuses, status) {
		return fmt.Errorf("unknown lead status %q: %w", status, ErrInvalid)
	}
	return s.repo.UpdateStatus(ctx, id, status)
}

// Delete removes a lead.
func (s *LeadService) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
