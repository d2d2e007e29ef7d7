package service

import (
	"context"
	"time"

	"stravigo-admin/internal/cache"
	"stravigo-admin/internal/data"
)

// statsCacheKey is where the dashboard counters live in the local cache.
const statsCacheKey = "dashboard:stats"

// statsTTL bounds how stale the dashboard counters may be.
const statsTTL = 30 * time.Second

// DashboardStats is the portal landing page summary.
type DashboardStats struct {
	Leads       int          `json:"leads"`
	CaseStudies int          `json:"case_studies"`
	Insights    int          `json:"insights"`
	ActiveJobs  int          `json:"active_jobs"`
	RecentLeads []*data.Lead `json:"recent_leads"`
}

// DashboardCounters defines the count queries the dashboard needs.
type DashboardCounters interface {
	LeadCount(ctx context.Context) (int, error)
	CaseStudyCount(ctx context.Context) (int, error)
	InsightCount(ctx context.Context) (int, error)
	ActiveJobCount(ctx context.Context) (int, error)
	RecentLeads(ctx context.Context, limit int) ([]*data.Lead, error)
}

// DashboardService aggregates collection counters behind a short-lived
// cache so reloading the landing page does not re-query the backend.
type DashboardService struct {
	counters DashboardCounters
	cache    *cache.Cache
}

// NewDashboardService creates a new DashboardService.
func NewDashboardService(counters DashboardCounters, c *cache.Cache) *DashboardService {
	return &DashboardService{counters: counters, cache: c}
}

// Stats returns the dashboard summary, served from cache when fresh.
func (s *DashboardService) Stats(ctx context.Context) (*DashboardStats, error) {
	var cached DashboardStats
	if hit, err := s.cache.GetJSON(statsCacheKey, &cached); err == nil && hit {
		return &cached, nil
	}

	stats := &DashboardStats{}
	var err error
	if stats.Leads, err = s.counters.LeadCount(ctx); err != nil {
		return nil, err
	}
	if stats.CaseStudies, err = s.counters.CaseStudyCount(ctx); err != nil {
		return nil, err
	}
	if stats.Insights, err = s.counters.InsightCount(ctx); err != nil {
		return nil, err
	}
	if stats.ActiveJobs, err = s.counters.ActiveJobCount(ctx); err != nil {
		return nil, err
	}
	if stats.RecentLeads, err = s.counters.RecentLeads(ctx, 5); err != nil {
		return nil, err
	}
	stats.RecentLeads = emptyIfNil(stats.RecentLeads)

	// Cache write failures only cost us a recount next time.
	_ = s.cache.SetJSON(statsCacheKey, stats, statsTTL)
	return stats, nil
}
