// Package editor generalizes the save path every content screen shares:
// a draft record is transformed, then routed to insert or update depending
// on whether the storage backend has already assigned it an identifier.
package editor

import "context"

// Record is any draft that can report its collaborator-assigned identifier.
// An empty identifier means the record has never been persisted.
type Record interface {
	RecordID() string
}

// Collection is the slice of the data gateway a save needs.
type Collection[T Record] interface {
	Insert(ctx context.Context, rec T) error
	Update(ctx context.Context, rec T) error
}

// Transform is an entity-specific pre-save hook. Transforms must be pure
// functions of the draft; they run exactly once, synchronously, before any
// write is dispatched.
type Transform[T Record] func(draft T)

// Outcome reports which write a save dispatched.
type Outcome int

const (
	// Inserted means the draft carried no identifier and a new record was
	// created.
	Inserted Outcome = iota
	// Updated means the draft's existing record was rewritten.
	Updated
)

// Save applies the transforms to the draft and dispatches it to the
// collection. On failure the draft is left as transformed so the caller can
// surface the error without losing the user's input.
func Save[T Record](ctx context.Context, col Collection[T], draft T, transforms ...Transform[T]) (Outcome, error) {
	for _, t := range transforms {
		t(draft)
	}
	if draft.RecordID() == "" {
		return Inserted, col.Insert(ctx, draft)
	}
	return Updated, col.Update(ctx, draft)
}
