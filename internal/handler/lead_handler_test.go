//go:build unit

package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"stravigo-admin/internal/data"
	"stravigo-admin/internal/service"
)

// stubLeadRepository is a minimal service.LeadRepository for handler tests.
type stubLeadRepository struct {
	leadsToReturn []*data.Lead
}

var _ service.LeadRepository = (*stubLeadRepository)(nil)

func (s *stubLeadRepository) List(ctx context.Context, status string) ([]*data.Lead, error) {
	return s.leadsToReturn, nil
}

func (s *stubLeadRepository) UpdateStatus(ctx context.Context, id, status string) error {
	return nil
}

func (s *stubLeadRepository) Delete(ctx context.Context, id string) error {
	return nil
}

func TestLeadHandler_List_EmptyCollectionRendersEmptyArray(t *testing.T) {
	// The gateway reports an empty collection as a nil slice; the response
	// body must still be a JSON array.
	h := NewLeadHandler(service.NewLeadService(&stubLeadRepository{leadsToReturn: nil}))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rr := httptest.NewRecorder()
	if appErr := h.list(rr, req); appErr != nil {
		t.Fatalf("list returned unexpected error: %v", appErr.Err)
	}

	if got := strings.TrimSpace(rr.Body.String()); got != "[]" {
		t.Fatalf("expected body [], got %q", got)
	}
}

func TestLeadHandler_List_RendersRows(t *testing.T) {
	repo := &stubLeadRepository{leadsToReturn: []*data.Lead{
		{ID: "lead-1", FullName: "Ada Okafor", Status: "new"},
	}}
	h := NewLeadHandler(service.NewLeadService(repo))

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	rr := httptest.NewRecorder()
	if appErr := h.list(rr, req); appErr != nil {
		t.Fatalf("list returned unexpected error: %v", appErr.Err)
	}

	var leads []*data.Lead
	if err := json.NewDecoder(rr.Body).Decode(&leads); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if len(leads) != 1 || leads[0].FullName != "Ada Okafor" {
		t.Fatalf("unexpected response rows: %+v", leads)
	}
}
