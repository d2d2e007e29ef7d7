//go:build unit

package editor

import (
	"context"
	"errors"
	"testing"
)

type fakeRecord struct {
	ID    string
	Title string
}

func (r *fakeRecord) RecordID() string { return r.ID }

// fakeCollection counts dispatched writes and remembers the last record
// passed to each.
type fakeCollection struct {
	insertCalled int
	updateCalled int
	lastInserted *fakeRecord
	lastUpdated  *fakeRecord
	errToReturn  error
}

var _ Collection[*fakeRecord] = (*fakeCollection)(nil)

func (c *fakeCollection) Insert(ctx context.Context, rec *fakeRecord) error {
	c.insertCalled++
	c.lastInserted = rec
	if c.errToReturn != nil {
		return c.errToReturn
	}
	rec.ID = "assigned-1"
	return nil
}

func (c *fakeCollection) Update(ctx context.Context, rec *fakeRecord) error {
	c.updateCalled++
	c.lastUpdated = rec
	return c.errToReturn
}

func TestSave_DispatchesOnIdentifier(t *testing.T) {
	t.Run("draft without identifier inserts exactly once", func(t *testing.T) {
		col := &fakeCollection{}
		outcome, err := Save(context.Background(), col, &fakeRecord{Title: "new"})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if outcome != Inserted {
			t.Errorf("want Inserted, got %v", outcome)
		}
		if col.insertCalled != 1 || col.updateCalled != 0 {
			t.Errorf("want 1 insert and 0 updates, got %d/%d", col.insertCalled, col.updateCalled)
		}
	})

	t.Run("draft with identifier updates exactly that record", func(t *testing.T) {
		col := &fakeCollection{}
		outcome, err := Save(context.Background(), col, &fakeRecord{ID: "42", Title: "edited"})
		if err != nil {
			t.Fatalf("Save failed: %v", err)
		}
		if outcome != Updated {
			t.Errorf("want Updated, got %v", outcome)
		}
		if col.insertCalled != 0 || col.updateCalled != 1 {
			t.Errorf("want 0 inserts and 1 update, got %d/%d", col.insertCalled, col.updateCalled)
		}
		if col.lastUpdated.ID != "42" {
			t.Errorf("want update keyed by id 42, got %q", col.lastUpdated.ID)
		}
	})
}

func TestSave_RunsTransformsOnceBeforeDispatch(t *testing.T) {
	col := &fakeCollection{}
	calls := 0
	upper := func(r *fakeRecord) {
		calls++
		r.Title = "TRANSFORMED"
	}

	if _, err := Save(context.Background(), col, &fakeRecord{Title: "raw"}, upper); err != nil {
		t.Fatalf("Save failed: %v", err)
	}
	if calls != 1 {
		t.Errorf("want transform to run once, ran %d times", calls)
	}
	if col.lastInserted.Title != "TRANSFORMED" {
		t.Errorf("want transformed draft dispatched, got %q", col.lastInserted.Title)
	}
}

func TestSave_FailureLeavesNothingPersisted(t *testing.T) {
	col := &fakeCollection{errToReturn: errors.New("backend rejected write")}
	draft := &fakeRecord{Title: "draft"}

	if _, err := Save(context.Background(), col, draft); err == nil {
		t.Fatal("want error from failing collection, got nil")
	}
	// The draft keeps its state for correction; it never gained an ID.
	if draft.RecordID() != "" {
		t.Errorf("failed insert must not assign an identifier, got %q", draft.RecordID())
	}
}

// Mutating a draft copy must never leak into the record it was copied from
// unless a save succeeds.
func TestDraftIsolation(t *testing.T) {
	persisted := &fakeRecord{ID: "7", Title: "original"}

	draft := *persisted
	draft.Title = "abandoned edit"
	// Editor closed without saving: nothing dispatched.

	if persisted.Title != "original" {
		t.Errorf("discarded draft mutated the source record: %q", persisted.Title)
	}
}
