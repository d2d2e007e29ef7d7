package data

import "errors"

// ErrNotFound is returned when a query targets a record that does not exist
// in its collection. Callers should match it with errors.Is.
var ErrNotFound = errors.New("record not found")
