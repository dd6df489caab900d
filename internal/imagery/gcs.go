package imagery

import (
	"context"
	"fmt"
	"io"

	"cloud.google.com/go/storage"
)

// GCSDownloader fetches blobs from a Google Cloud Storage bucket.
type GCSDownloader struct {
	bucket *storage.BucketHandle
}

// NewGCSDownloader creates a downloader for the named bucket using ambient credentials.
func NewGCSDownloader(ctx context.Context, bucketName string) (*GCSDownloader, error) {
	client, err := storage.NewClient(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create storage client: %w", err)
	}
	return &GCSDownloader{bucket: client.Bucket(bucketName)}, nil
}

// Download reads the full contents of one object.
func (g *GCSDownloader) Download(ctx context.Context, objectPath string) ([]byte, error) {
	reader, err := g.bucket.Object(objectPath).NewReader(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to open object %s: %w", objectPath, err)
	}
	defer reader.Close()

	data, err := io.ReadAll(reader)
	if err != nil {
		return nil, fmt.Errorf("failed to read object %s: %w", objectPath, err)
	}
	return data, nil
}
