package data

import "context"

// Stats composes the per-collection count queries the dashboard renders, so
// the counters live next to the repositories that own each table.
type Stats struct {
	leads    *LeadRepository
	studies  *CaseStudyRepository
	insights *InsightRepository
	jobs     *JobRepository
}

// NewStats creates a Stats facade over the given repositories.
func NewStats(leads *LeadRepository, studies *CaseStudyRepository, insights *InsightRepository, jobs *JobRepository) *Stats {
	return &Stats{leads: leads, studies: studies, insights: insights, jobs: jobs}
}

// LeadCount returns the total number of leads.
func (s *Stats) LeadCount(ctx context.Context) (int, error) {
	return s.leads.Count(ctx)
}

// CaseStudyCount returns the total number of case studies.
func (s *Stats) CaseStudyCount(ctx context.Context) (int, error) {
	return s.studies.Count(ctx)
}

// InsightCount returns the total number of insights.
func (s *Stats) InsightCount(ctx context.Context) (int, error) {
	return s.insights.Count(ctx)
}

// ActiveJobCount returns the number of publicly visible openings.
func (s *Stats) ActiveJobCount(ctx context.Context) (int, error) {
	return s.jobs.CountActive(ctx)
}

// RecentLeads returns the most recently created leads, up to limit.
func (s *Stats) RecentLeads(ctx context.Context, limit int) ([]*Lead, error) {
	return s.leads.Recent(ctx, limit)
}
