//go:build unit

package service

import (
	"context"
	"errors"
	"testing"

	"stravigo-admin/internal/data"
)

// mockTestimonialRepository is a mock implementation of the
// TestimonialRepository interface.
type mockTestimonialRepository struct {
	errToReturn        error
	testimonialsToReturn []*data.Testimonial

	insertCalled  int
	updateCalled  int
	setFlagCalled int
	deleteCalled  int

	lastSavedDraft *data.Testimonial
	lastFlagColumn string
	lastFlagValue  bool
}

var _ TestimonialRepository = (*mockTestimonialRepository)(nil)

func (m *mockTestimonialRepository) List(ctx context.Context) ([]*data.Testimonial, error) {
	return m.testimonialsToReturn, m.errToReturn
}

func (m *mockTestimonialRepository) GetByID(ctx context.Context, id string) (*data.Testimonial, error) {
	for _, tm := range m.testimonialsToReturn {
		if tm.ID == id {
			return tm, nil
		}
	}
	return nil, data.ErrNotFound
}

func (m *mockTestimonialRepository) Insert(ctx context.Context, tm *data.Testimonial) error {
	m.insertCalled++
	m.lastSavedDraft = tm
	if m.errToReturn != nil {
		return m.errToReturn
	}
	tm.ID = "generated-id"
	return nil
}

func (m *mockTestimonialRepository) Update(ctx context.Context, tm *data.Testimonial) error {
	m.updateCalled++
	m.lastSavedDraft = tm
	return m.errToReturn
}

func (m *mockTestimonialRepository) SetFlag(ctx context.Context, id, column string, value bool) error {
	m.setFlagCalled++
	m.lastFlagColumn = column
	m.lastFlagValue = value
	return m.errToReturn
}

func (m *mockTestimonialRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalled++
	return m.errToReturn
}

func TestTestimonialService_Get(t *testing.T) {
	existing := &data.Testimonial{ID: "tm-1", Feedback: "Great collaboration."}
	repo := &mockTestimonialRepository{testimonialsToReturn: []*data.Testimonial{existing}}
	svc := NewTestimonialService(repo)

	got, err := svc.Get(context.Background(), "tm-1")
	if err != nil {
		t.Fatalf("Get returned unexpected error: %v", err)
	}
	if got != existing {
		t.Error("expected the stored record back")
	}

	if _, err := svc.Get(context.Background(), "missing"); !errors.Is(err, data.ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestTestimonialService_Save_RequiresFeedback(t *testing.T) {
	repo := &mockTestimonialRepository{}
	svc := NewTestimonialService(repo)

	_, err := svc.Save(context.Background(), &data.Testimonial{Feedback: "  "})
	if !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
	if repo.insertCalled != 0 {
		t.Error("expected no write after a validation failure")
	}
}

func TestTestimonialService_Save_ClearsIdentityWhenAnonymous(t *testing.T) {
	repo := &mockTestimonialRepository{}
	svc := NewTestimonialService(repo)

	draft := &data.Testimonial{
		Feedback:     "Great collaboration from start to finish.",
		CustomerName: "Ada Okafor",
		Company:      "Northwind",
		Designation:  "CMO",
		IsAnonymous:  true,
	}

	if _, err := svc.Save(context.Background(), draft); err != nil {
		t.Fatalf("Save returned unexpected error: %v", err)
	}
	saved := repo.lastSavedDraft
	if saved.CustomerName != "" || saved.Company != "" || saved.Designation != "" {
		t.Errorf("expected identity cleared for anonymous feedback, got %q/%q/%q",
			saved.CustomerName, saved.Company, saved.Designation)
	}
}

func TestTestimonialService_Save_KeepsIdentityWhenNamed(t *testing.T) {
	repo := &mockTestimonialRepository{}
	svc := NewTestimonialService(repo)

	draft := &data.Testimonial{
		Feedback:     "Great collaboration from start to finish.",
		CustomerName: "Ada Okafor",
	}

	if _, err := svc.Save(context.Background(), draft); err != nil {
		t.Fatalf("Save returned unexpected error: %v", err)
	}
	if repo.lastSavedDraft.CustomerName != "Ada Okafor" {
		t.Errorf("expected identity to survive, got %q", repo.lastSavedDraft.CustomerName)
	}
}

func TestTestimonialService_ToggleFlag(t *testing.T) {
	testCases := []struct {
		name    string
		flag    string
		wantErr bool
	}{
		{"approved", "is_approved", false},
		{"featured", "is_featured", false},
		{"unknown flag", "is_published", true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockTestimonialRepository{}
			svc := NewTestimonialService(repo)

			err := svc.ToggleFlag(context.Background(), "tm-1", tc.flag, true)
			if tc.wantErr {
				if !errors.Is(err, ErrInvalid) {
					t.Fatalf("expected ErrInvalid, got %v", err)
				}
				if repo.setFlagCalled != 0 {
					t.Error("expected no write for an unknown flag")
				}
				return
			}
			if err != nil {
				t.Fatalf("ToggleFlag returned unexpected error: %v", err)
			}
			if repo.lastFlagColumn != tc.flag || !repo.lastFlagValue {
				t.Errorf("expected flag %q set true, got %q=%v", tc.flag, repo.lastFlagColumn, repo.lastFlagValue)
			}
		})
	}
}
