package service

import (
	"context"
	"fmt"

	"stravigo-admin/internal/data"
)

// PageRepository defines the gateway operations the hero editor uses.
type PageRepository interface {
	GetAll(ctx context.Context) ([]*data.Page, error)
	GetByID(ctx context.Context, id string) (*data.Page, error)
	Count(ctx context.Context) (int, error)
	BulkInsert(ctx context.Context, pages []*data.Page) error
	UpdateHero(ctx context.Context, page *data.Page) error
}

// PageService provides business logic for the marketing-site hero editor.
// Pages are seeded once and then only their hero copy changes; the portal
// never deletes them.
type PageService struct {
	repo PageRepository
}

// NewPageService creates a new PageService.
func NewPageService(repo PageRepository) *PageService {
	return &PageService{repo: repo}
}

// defaultPages is the initial content set for a fresh site.
var defaultPages = []*data.Page{
	{Slug: "home", Title: "Home Page", HeroTitle: "We Build the Brands Everyone Talks About", HeroDescription: "Stravigo blends strategy, culture, and creativity to help businesses dominate attention.", HeroCTAText: "Talk To Stravigo", HeroCTALink: "/contact"},
	{Slug: "about", Title: "About Stravigo", HeroTitle: "Trusted by Market Leaders", HeroDescription: "We help brands, individuals, and entertainers become impossible to ignore.", HeroCTAText: "Our Story", HeroCTALink: "/about"},
	{Slug: "our-work", Title: "Our Work", HeroTitle: "Your Brand. Our Strategy. Endless Possibilities.", HeroDescription: "Deep dive into some of the campaigns that have defined us.", HeroCTAText: "See Hits", HeroCTALink: "/case-studies"},
	{Slug: "insights", Title: "The Stravigo Eagle", HeroTitle: "In-depth Insights & Analysis", HeroDescription: "Ideas and challenges shaping today's world.", HeroCTAText: "Read Reports", HeroCTALink: "/insights"},
	{Slug: "careers", Title: "Culture & Careers", HeroTitle: "Powered By Doers & Dreamers", HeroDescription: "If you want to grow fast and think boldly — welcome home.", HeroCTAText: "Join Us", HeroCTALink: "/careers"},
}

// List retrieves every page.
func (s *PageService) List(ctx context.Context) ([]*data.Page, error) {
	pages, err := s.repo.GetAll(ctx)
	return emptyIfNil(pages), err
}

// InitializeDefaults seeds the collection with the standard page set. It is
// an explicit operation and only valid while the collection is empty.
func (s *PageService) InitializeDefaults(ctx context.Context) error {
	n, err := s.repo.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return fmt.Errorf("pages are already initialized: %w", ErrInvalid)
	}
	return s.repo.BulkInsert(ctx, defaultPages)
}

// UpdateHero rewrites the hero copy of one page. Only the hero fields are
// honoured; everything else on the record is immutable from the portal.
func (s *PageService) UpdateHero(ctx context.Context, page *data.Page) (*data.Page, error) {
	if page.ID == "" {
		return nil, fmt.Errorf("page id is required: %w", ErrInvalid)
	}
	if err := s.repo.UpdateHero(ctx, page); err != nil {
		return nil, err
	}
	// Re-read so the caller sees the backend's refreshed timestamp.
	return s.repo.GetByID(ctx, page.ID)
}
