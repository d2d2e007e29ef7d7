//go:build unit

package service

import (
	"context"
	"errors"
	"reflect"
	"strings"
	"testing"

	"stravigo-admin/internal/data"
)

// mockCaseStudyRepository is a mock implementation of the
// CaseStudyRepository interface.
type mockCaseStudyRepository struct {
	errToReturn    error
	studiesToReturn []*data.CaseStudy

	insertCalled int
	updateCalled int
	deleteCalled int

	lastServiceType string
	lastSavedDraft  *data.CaseStudy
}

var _ CaseStudyRepository = (*mockCaseStudyRepository)(nil)

func (m *mockCaseStudyRepository) List(ctx context.Context, serviceType string) ([]*data.CaseStudy, error) {
	m.lastServiceType = serviceType
	return m.studiesToReturn, m.errToReturn
}

func (m *mockCaseStudyRepository) GetByID(ctx context.Context, id string) (*data.CaseStudy, error) {
	for _, cs := range m.studiesToReturn {
		if cs.ID == id {
			return cs, nil
		}
	}
	return nil, data.ErrNotFound
}

func (m *mockCaseStudyRepository) Insert(ctx context.Context, cs *data.CaseStudy) error {
	m.insertCalled++
	m.lastSavedDraft = cs
	if m.errToReturn != nil {
		return m.errToReturn
	}
	cs.ID = "generated-id"
	return nil
}

func (m *mockCaseStudyRepository) Update(ctx context.Context, cs *data.CaseStudy) error {
	m.updateCalled++
	m.lastSavedDraft = cs
	return m.errToReturn
}

func (m *mockCaseStudyRepository) Delete(ctx context.Context, id string) error {
	m.deleteCalled++
	return m.errToReturn
}

func newDraftCaseStudy() *data.CaseStudy {
	return &data.CaseStudy{
		Title:       "Rebrand for a National Retailer",
		Slug:        "rebrand-national-retailer",
		ServiceType: data.ServiceBusiness,
	}
}

func TestNormalizeTags(t *testing.T) {
	testCases := []struct {
		name string
		in   []string
		want []string
	}{
		{
			name: "uppercases and trims",
			in:   []string{" branding ", "pr"},
			want: []string{"BRANDING", "PR"},
		},
		{
			name: "deduplicates across casing",
			in:   []string{"Branding", "BRANDING", "branding"},
			want: []string{"BRANDING"},
		},
		{
			name: "preserves first-entry order",
			in:   []string{"pr", "branding", "PR"},
			want: []string{"PR", "BRANDING"},
		},
		{
			name: "drops blank entries",
			in:   []string{"", "   ", "media"},
			want: []string{"MEDIA"},
		},
		{
			name: "empty input",
			in:   nil,
			want: []string{},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := NormalizeTags(tc.in)
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("NormalizeTags(%v) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}

func TestNormalizeTags_Idempotent(t *testing.T) {
	in := []string{" Branding ", "pr", "BRANDING", "Media Buying"}
	once := NormalizeTags(in)
	twice := NormalizeTags(once)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("expected a second normalization to be a no-op: %v != %v", once, twice)
	}
}

func TestCaseStudyService_Save_NormalizesTags(t *testing.T) {
	repo := &mockCaseStudyRepository{}
	svc := NewCaseStudyService(repo)

	draft := newDraftCaseStudy()
	draft.Tags = []string{"branding", " Branding ", "pr"}

	if _, err := svc.Save(context.Background(), draft); err != nil {
		t.Fatalf("Save returned unexpected error: %v", err)
	}
	want := []string{"BRANDING", "PR"}
	if !reflect.DeepEqual([]string(repo.lastSavedDraft.Tags), want) {
		t.Errorf("expected tags %v, got %v", want, repo.lastSavedDraft.Tags)
	}
}

func TestCaseStudyService_Save_SanitizesNarrativeSections(t *testing.T) {
	repo := &mockCaseStudyRepository{}
	svc := NewCaseStudyService(repo)

	draft := newDraftCaseStudy()
	draft.Background = `<p>Context.</p><script>alert("x")</script>`

	if _, err := svc.Save(context.Background(), draft); err != nil {
		t.Fatalf("Save returned unexpected error: %v", err)
	}
	if strings.Contains(repo.lastSavedDraft.Background, "<script>") {
		t.Errorf("expected script tags stripped, got %q", repo.lastSavedDraft.Background)
	}
}

func TestCaseStudyService_Save_Validation(t *testing.T) {
	testCases := []struct {
		name   string
		mutate func(*data.CaseStudy)
	}{
		{"missing title", func(d *data.CaseStudy) { d.Title = "" }},
		{"unknown service type", func(d *data.CaseStudy) { d.ServiceType = "government" }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo := &mockCaseStudyRepository{}
			svc := NewCaseStudyService(repo)

			draft := newDraftCaseStudy()
			tc.mutate(draft)

			_, err := svc.Save(context.Background(), draft)
			if !errors.Is(err, ErrInvalid) {
				t.Fatalf("expected ErrInvalid, got %v", err)
			}
			if repo.insertCalled != 0 || repo.updateCalled != 0 {
				t.Error("expected no write after a validation failure")
			}
		})
	}
}

func TestCaseStudyService_Get(t *testing.T) {
	existing := newDraftCaseStudy()
	existing.ID = "cs-1"
	repo := &mockCaseStudyRepository{studiesToReturn: []*data.CaseStudy{existing}}
	svc := NewCaseStudyService(repo)

	got, err := svc.Get(context.Background(), "cs-1")
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

func TestCaseStudyService_List_RejectsUnknownFilter(t *testing.T) {
	repo := &mockCaseStudyRepository{}
	svc := NewCaseStudyService(repo)

	if _, err := svc.List(context.Background(), "government"); !errors.Is(err, ErrInvalid) {
		t.Fatalf("expected ErrInvalid, got %v", err)
	}
}

func TestCaseStudyService_List_PassesFilterThrough(t *testing.T) {
	repo := &mockCaseStudyRepository{}
	svc := NewCaseStudyService(repo)

	if _, err := svc.List(context.Background(), data.ServiceEntertainment); err != nil {
		t.Fatalf("List returned unexpected error: %v", err)
	}
	if repo.lastServiceType != data.ServiceEntertainment {
		t.Errorf("expected filter %q forwarded, got %q", data.ServiceEntertainment, repo.lastServiceType)
	}
}
