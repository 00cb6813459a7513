// Package review implements the reviewer workbench: session-local accept
// decisions and the two-store reject protocol for candidate records.
package review

import (
	"context"
	"errors"
	"log"
	"sync"

	"github.com/JainamOswal18/TheBetterHack2025/internal/storage"
)

// Decision is a reviewer's session-local verdict on a candidate.
type Decision int

const (
	// DecisionPending means the reviewer has not accepted the candidate yet.
	DecisionPending Decision = iota
	// DecisionAccepted marks an accepted candidate. Acceptance lives only in
	// this workbench's memory and is lost on restart; it never reaches the
	// metadata store. That mirrors the product behavior and is intentional.
	DecisionAccepted
)

// MetadataStore is the slice of the candidate store the workbench needs.
// DeleteCandidate must return ErrNotFound when the record is already gone.
type MetadataStore interface {
	DeleteCandidate(ctx context.Context, id uint) error
}

// BlobStore is the slice of the resume blob store the workbench needs.
type BlobStore interface {
	Delete(ctx context.Context, objectPath string) error
	Bucket() string
}

// Outcome reports what each step of a reject actually did, so callers can
// tell full success apart from orphan-warning success.
type Outcome struct {
	MetadataDeleted bool
	BlobAttempted   bool
	BlobDeleted     bool
	// BlobErr is an *OrphanBlobError when the blob delete failed after the
	// metadata record was removed. Non-fatal.
	BlobErr error
}

// Workbench holds one reviewer session's state over the candidate pipeline.
type Workbench struct {
	store MetadataStore
	blobs BlobStore

	mu        sync.Mutex
	decisions map[uint]Decision
}

// NewWorkbench creates a workbench over the given stores.
func NewWorkbench(store MetadataStore, blobs BlobStore) *Workbench {
	return &Workbench{
		store:     store,
		blobs:     blobs,
		decisions: make(map[uint]Decision),
	}
}

// Accept marks a candidate accepted in this session. It is idempotent, never
// fails, and touches neither the metadata store nor the blob store.
func (w *Workbench) Accept(id uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.decisions[id] = DecisionAccepted
}

// Decision returns the session decision for a candidate.
func (w *Workbench) Decision(id uint) Decision {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.decisions[id]
}

// Accepted reports whether the candidate was accepted in this session.
func (w *Workbench) Accepted(id uint) bool {
	return w.Decision(id) == DecisionAccepted
}

// Reject removes a candidate from the pipeline.
//
// The metadata record is deleted first; only then is the resume blob
// deleted. The ordering is deliberate and must not be reversed or
// parallelized: the metadata row is the only pointer to the blob, so
// deleting the blob first and then failing on metadata would leave a
// record whose resume can never be recovered, while the opposite failure
// merely leaks a blob that reconciliation can find later.
//
// A metadata failure aborts the whole operation (the blob delete is never
// issued) and surfaces as *StorageError, or ErrNotFound when the record was
// already gone. A blob failure after successful metadata deletion is
// reported in Outcome.BlobErr and logged, but the reject still succeeds:
// the metadata store is the source of truth for pipeline membership.
//
// When resumeRef contains no bucket-scope delimiter the record has no
// addressable blob and the metadata deletion alone is full success.
func (w *Workbench) Reject(ctx context.Context, id uint, resumeRef string) (Outcome, error) {
	out := Outcome{}

	if err := w.store.DeleteCandidate(ctx, id); err != nil {
		if errors.Is(err, ErrNotFound) {
			return out, err
		}
		return out, &StorageError{Err: err}
	}
	out.MetadataDeleted = true
	w.forget(id)

	objectPath, ok := storage.ObjectPath(resumeRef, w.blobs.Bucket())
	if !ok {
		return out, nil
	}

	out.BlobAttempted = true
	if err := w.blobs.Delete(ctx, objectPath); err != nil {
		orphan := &OrphanBlobError{ObjectPath: objectPath, Err: err}
		log.Printf("warning: %v", orphan)
		out.BlobErr = orphan
		return out, nil
	}
	out.BlobDeleted = true

	return out, nil
}

// forget drops the session decision once the candidate leaves the pipeline.
func (w *Workbench) forget(id uint) {
	w.mu.Lock()
	defer w.mu.Unlock()
	delete(w.decisions, id)
}
