package storage

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"github.com/you-rent/api/internal/platform/config"
	"github.com/you-rent/api/pkg/util"
	"google.golang.org/api/option"
)

// Client wraps the estate picture bucket. Uploads return a storage path;
// the path is resolved to a fetchable URL on demand and never stored as a
// URL itself.
type Client struct {
	bucket *storage.BucketHandle
	urlTTL time.Duration
}

// New creates a storage client against the configured bucket, reusing the
// Firestore service account credentials.
func New(ctx context.Context, cfg config.Config) (*Client, error) {
	creds, _, err := cfg.FirebaseCredentialsJSON()
	if err != nil {
		return nil, err
	}
	gcs, err := storage.NewClient(ctx, option.WithCredentialsJSON(creds))
	if err != nil {
		return nil, fmt.Errorf("init storage client: %w", err)
	}
	return &Client{
		bucket: gcs.Bucket(cfg.StorageBucket),
		urlTTL: 15 * time.Minute,
	}, nil
}

// Upload streams the file into the bucket under a unique object name derived
// from the original file name and returns the storage path.
func (c *Client) Upload(ctx context.Context, fileName, contentType string, r io.Reader) (string, error) {
	path := objectName(fileName)

	w := c.bucket.Object(path).NewWriter(ctx)
	w.ContentType = contentType
	if _, err := io.Copy(w, r); err != nil {
		_ = w.Close()
		return "", fmt.Errorf("upload %s: %w", path, err)
	}
	if err := w.Close(); err != nil {
		return "", fmt.Errorf("finalize upload %s: %w", path, err)
	}
	return path, nil
}

// ResolveURL turns a storage path into a short-lived fetchable URL.
func (c *Client) ResolveURL(path string) (string, error) {
	url, err := c.bucket.SignedURL(path, &storage.SignedURLOptions{
		Scheme:  storage.SigningSchemeV4,
		Method:  http.MethodGet,
		Expires: time.Now().Add(c.urlTTL),
	})
	if err != nil {
		return "", fmt.Errorf("sign url for %s: %w", path, err)
	}
	return url, nil
}

// Delete removes the object at the given storage path.
func (c *Client) Delete(ctx context.Context, path string) error {
	if err := c.bucket.Object(path).Delete(ctx); err != nil {
		return fmt.Errorf("delete %s: %w", path, err)
	}
	return nil
}

// objectName keeps the original base name readable while guaranteeing
// uniqueness across uploads of equally named files.
func objectName(fileName string) string {
	base := util.FileNameWithoutExtension(fileName)
	stamp := time.Now().UTC().Format("20060102T150405")
	name := fmt.Sprintf("%s-%s-%s", base, stamp, uuid.NewString()[:8])
	if ext := util.FileExtension(fileName); ext != "" {
		name += "." + ext
	}
	return name
}
