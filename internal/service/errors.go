package service

import "errors"

// ErrInvalid marks failures caused by input the portal should have refused
// before reaching the storage backend. Handlers translate it to 400.
var ErrInvalid = errors.New("invalid input")
