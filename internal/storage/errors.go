package storage

import "errors"

const EmptyIntValue = -1

var (
	ErrNotFound = errors.New("not found")
	ErrConflict = errors.New("conflict")
	// ErrReferenceNotFound reports a foreign key pointing at a missing
	// row, as opposed to the target row itself being gone.
	ErrReferenceNotFound = errors.New("referenced row not found")
)
