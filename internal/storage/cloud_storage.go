package storage

import (
	"context"
	"fmt"
	"io"
	"os"

	"cloud.google.com/go/storage"
	"google.golang.org/api/iterator"
)

// DefaultBucket is used when STORAGE_BUCKET is not set. The name doubles as
// the bucket-scope delimiter inside resume locators.
const DefaultBucket = "resume"

// Client is the blob store contract the rest of the service depends on.
type Client interface {
	Upload(ctx context.Context, objectPath string, data io.Reader) error
	Download(ctx context.Context, objectPath string) (io.ReadCloser, int64, error)
	Delete(ctx context.Context, objectPath string) error
	Bucket() string
}

// CloudStorageClient implements Client on Google Cloud Storage.
type CloudStorageClient struct {
	BucketName string
	Client     *storage.Client
}

// NewCloudStorageClient creates a client bound to the given bucket.
func NewCloudStorageClient(ctx context.Context, bucketName string) (*CloudStorageClient, error) {
	if bucketName == "" {
		bucketName = os.Getenv("STORAGE_BUCKET")
	}
	if bucketName == "" {
		bucketName = DefaultBucket
	}
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create cloud storage client: %v", err)
	}
	return &CloudStorageClient{
		BucketName: bucketName,
		Client:     client,
	}, nil
}

// Bucket returns the bucket scope this client writes into.
func (c *CloudStorageClient) Bucket() string {
	return c.BucketName
}

// Upload writes the data to the given object path.
func (c *CloudStorageClient) Upload(ctx context.Context, objectPath string, data io.Reader) error {
	obj := c.Client.Bucket(c.BucketName).Object(objectPath)
	wc := obj.NewWriter(ctx)
	if _, err := io.Copy(wc, data); err != nil {
		return fmt.Errorf("failed to write data to object: %v", err)
	}
	if err := wc.Close(); err != nil {
		return fmt.Errorf("failed to close object writer: %v", err)
	}
	return nil
}

// Download opens a reader over the object and returns its size when known.
func (c *CloudStorageClient) Download(ctx context.Context, objectPath string) (io.ReadCloser, int64, error) {
	rc, err := c.Client.Bucket(c.BucketName).Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to open object reader: %v", err)
	}
	return rc, rc.Attrs.Size, nil
}

// Delete removes the object at the given path.
func (c *CloudStorageClient) Delete(ctx context.Context, objectPath string) error {
	if err := c.Client.Bucket(c.BucketName).Object(objectPath).Delete(ctx); err != nil {
		return fmt.Errorf("failed to delete object %s: %v", objectPath, err)
	}
	return nil
}

// ListObjects returns every object path under the given prefix. Used by the
// orphan reconciliation tool.
func (c *CloudStorageClient) ListObjects(ctx context.Context, prefix string) ([]string, error) {
	var names []string
	it := c.Client.Bucket(c.BucketName).Objects(ctx, &storage.Query{Prefix: prefix})
	for {
		attrs, err := it.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to list objects: %v", err)
		}
		names = append(names, attrs.Name)
	}
	return names, nil
}
