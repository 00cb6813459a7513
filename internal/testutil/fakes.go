package testutil

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/JainamOswal18/TheBetterHack2025/internal/scoring"
)

// MemoryStorage is an in-memory storage.Client for tests. Failures can be
// injected per operation and every delete is counted so tests can assert the
// reject protocol's call ordering.
type MemoryStorage struct {
	BucketName string

	FailUpload error
	FailDelete error

	mu          sync.Mutex
	objects     map[string][]byte
	DeleteCalls int
}

// NewMemoryStorage creates an empty in-memory store for the given bucket.
func NewMemoryStorage(bucket string) *MemoryStorage {
	return &MemoryStorage{
		BucketName: bucket,
		objects:    map[string][]byte{},
	}
}

// Bucket returns the configured bucket scope.
func (m *MemoryStorage) Bucket() string {
	return m.BucketName
}

// Upload stores the object bytes in memory.
func (m *MemoryStorage) Upload(_ context.Context, objectPath string, data io.Reader) error {
	if m.FailUpload != nil {
		return m.FailUpload
	}
	content, err := io.ReadAll(data)
	if err != nil {
		return err
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	m.objects[objectPath] = content
	return nil
}

// Download returns a reader over the stored object bytes.
func (m *MemoryStorage) Download(_ context.Context, objectPath string) (io.ReadCloser, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	content, ok := m.objects[objectPath]
	if !ok {
		return nil, 0, fmt.Errorf("object %s not found", objectPath)
	}
	return io.NopCloser(bytes.NewReader(content)), int64(len(content)), nil
}

// Delete removes the object, counting every call.
func (m *MemoryStorage) Delete(_ context.Context, objectPath string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.DeleteCalls++
	if m.FailDelete != nil {
		return m.FailDelete
	}
	if _, ok := m.objects[objectPath]; !ok {
		return fmt.Errorf("object %s not found", objectPath)
	}
	delete(m.objects, objectPath)
	return nil
}

// Has reports whether the object is currently stored.
func (m *MemoryStorage) Has(objectPath string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	_, ok := m.objects[objectPath]
	return ok
}

// Len returns the number of stored objects.
func (m *MemoryStorage) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.objects)
}

// RecordingScorer is a scoring.ScoreProvider fake that records submissions.
type RecordingScorer struct {
	Err error

	mu          sync.Mutex
	Submissions []scoring.Submission
}

// SubmitResume records the submission and returns the injected error, if any.
func (r *RecordingScorer) SubmitResume(_ context.Context, sub scoring.Submission) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Submissions = append(r.Submissions, sub)
	return r.Err
}

// Calls returns how many submissions were forwarded.
func (r *RecordingScorer) Calls() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.Submissions)
}
