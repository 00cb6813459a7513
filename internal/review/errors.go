package review

import (
	"errors"
	"fmt"
)

// ErrNotFound reports that the application record is already gone. A
// concurrent reviewer may have rejected it first; callers should log and
// continue rather than treat it as fatal.
var ErrNotFound = errors.New("application record not found")

// StorageError wraps a metadata-store failure that aborted a reject before
// the blob step. The record is still visible and the reject can be retried.
type StorageError struct {
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("metadata store error: %v", e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// OrphanBlobError reports that the resume blob could not be deleted after
// the metadata record was already removed. The candidate is gone from the
// pipeline; the blob is left behind for operator reconciliation.
type OrphanBlobError struct {
	ObjectPath string
	Err        error
}

func (e *OrphanBlobError) Error() string {
	return fmt.Sprintf("orphaned resume blob %q: %v", e.ObjectPath, e.Err)
}

func (e *OrphanBlobError) Unwrap() error {
	return e.Err
}
