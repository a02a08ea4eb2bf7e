package repository

import "errors"

// ErrNotFound is returned by every implementation when the requested
// record does not exist, so services stay storage-agnostic.
var ErrNotFound = errors.New("record not found")
