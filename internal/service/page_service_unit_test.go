//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"stravigo-admin/internal/data"
)

// mockPageRepository is a mock implementation of the PageRepository interface.
type mockPageRepository struct {
	errToReturn   error
	countToReturn int
	pageToReturn  *data.Page
	pagesToReturn []*data.Page

	countCalled      int
	bulkInsertCalled int
	updateHeroCalled int

	lastInserted   []*data.Page
	lastHeroUpdate *data.Page
}

var _ PageRepository = (*mockPageRepository)(nil)

func (m *mockPageRepository) GetAll(ctx context.Context) ([]*data.Page, error) {
	return m.pagesToReturn, m.errToReturn
}

func (m *mockPageRepository) GetByID(ctx context.Context, id string) (*data.Page, error) {
	if m.errToReturn != nil {
		return nil, m.errToReturn
	}
	if m.pageToReturn != nil && m.pageToReturn.ID == id {
		return m.pageToReturn, nil
	}
	return nil, data.ErrNotFound
}

func (m *mockPageRepository) Count(ctx context.Context) (int, error) {
	m.countCalled++
	return m.countToReturn, m.errToReturn
}

func (m *mockPageRepository) BulkInsert(ctx context.Context, pages []*data.Page) error {
	m.bulkInsertCalled++
	m.lastInserted = pages
	return m.errToReturn
}

func (m *mockPageRepository) UpdateHero(ctx context.Context, page *data.Page) error {
	m.updateHeroCalled++
	m.lastHeroUpdate = page
	return m.errToReturn
}

func TestPageService_InitializeDefaults_SeedsEmptyCollection(t *testing.T) {
	repo := &mockPageRepository{}
	svc := NewPageService(repo)

	if err := svc.InitializeDefaults(context.Background()); err != nil {
		t.Fatalf("InitializeDefaults returned unexpected error: %v", err)
	}
	if repo.bulkInsertCalled != 1 {
		t.Fatalf("expected one bulk insert, got %d", repo.bulkInsertCalled)
	}
	if len(repo.lastInserted) != 5 {
		t.Errorf("expected 5 seeded pages, got %d", len(repo.lastInserted))
	}
	slugs := map[string]bool{}
	for _, p := range repo.lastInserted {
		slugs[p.Slug] = true
	}
	for _, want := range []string{"home", "about", "our-work", "insights", "careers"} {
		if !slugs[want] {
			t.Errorf("expected seeded page with slug %q", want)
		}
	}
}

func TestPageService_InitializeDefaults_RefusesNonEmptyCollection(t *testing.T) {
	repo := &mockPageRepository{countToReturn: 5}
	svc := NewPageService(repo)

	err := svc.InitializeDefaults(context.Background())
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if repo.bulkInsertCalled != 0 {
		t.Error("expected no bulk insert when pages already exist")
	}
}

func TestPageService_UpdateHero_RequiresID(t *testing.T) {
	repo := &mockPageRepository{}
	svc := NewPageService(repo)

	_, err := svc.UpdateHero(context.Background(), &data.Page{HeroTitle: "New Hero"})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if repo.updateHeroCalled != 0 {
		t.Error("expected no write without an identifier")
	}
}

func TestPageService_UpdateHero_ReturnsRefreshedRecord(t *testing.T) {
	refreshed := &data.Page{ID: "page-1", Slug: "home", HeroTitle: "New Hero"}
	repo := &mockPageRepository{pageToReturn: refreshed}
	svc := NewPageService(repo)

	got, err := svc.UpdateHero(context.Background(), &data.Page{ID: "page-1", HeroTitle: "New Hero"})
	if err != nil {
		t.Fatalf("UpdateHero returned unexpected error: %v", err)
	}
	if repo.updateHeroCalled != 1 {
		t.Fatalf("expected one hero update, got %d", repo.updateHeroCalled)
	}
	if got != refreshed {
		t.Error("expected the re-read record to be returned")
	}
}

func TestPageService_UpdateHero_PropagatesNotFound(t *testing.T) {
	repo := &mockPageRepository{errToReturn: data.ErrNotFound}
	svc := NewPageService(repo)

	_, err := svc.UpdateHero(context.Background(), &data.Page{ID: "missing"})
	if !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}
