package helpers

import (
	"context"
	"errors"
	"fmt"
	"io"
	"path"
	"strings"

	"cloud.google.com/go/storage"
	"github.com/google/uuid"
	"google.golang.org/api/option"
)

const gcsHost = "https://storage.googleapis.com/"

// NewGCSClient creates a Google Cloud Storage client. If credsPath is empty, ADC is used.
func NewGCSClient(ctx context.Context, credsPath string) (*storage.Client, error) {
	if credsPath == "" {
		return storage.NewClient(ctx)
	}
	return storage.NewClient(ctx, option.WithCredentialsFile(credsPath))
}

// ObjectStore writes public objects into a single bucket.
type ObjectStore struct {
	Client *storage.Client
	Bucket string
}

func (s ObjectStore) Enabled() bool { return s.Client != nil && s.Bucket != "" }

// Put uploads r to objectPath and returns the object's public URL.
func (s ObjectStore) Put(ctx context.Context, objectPath, contentType string, r io.Reader) (string, error) {
	wc := s.Client.Bucket(s.Bucket).Object(objectPath).NewWriter(ctx)
	wc.ContentType = contentType
	wc.CacheControl = "public, max-age=86400"
	wc.ChunkSize = 0 // profile images fit in one request
	if _, err := io.Copy(wc, r); err != nil {
		_ = wc.Close()
		return "", err
	}
	if err := wc.Close(); err != nil {
		return "", err
	}
	return PublicURL(s.Bucket, objectPath), nil
}

// DeleteURL removes the object behind a URL produced by Put. URLs for other buckets
// and already deleted objects are ignored.
func (s ObjectStore) DeleteURL(ctx context.Context, url string) error {
	prefix := gcsHost + s.Bucket + "/"
	if !strings.HasPrefix(url, prefix) {
		return nil
	}
	err := s.Client.Bucket(s.Bucket).Object(strings.TrimPrefix(url, prefix)).Delete(ctx)
	if errors.Is(err, storage.ErrObjectNotExist) {
		return nil
	}
	return err
}

// ObjectPath builds "<prefix>/<owner>/<uuid><ext>" keeping the original extension.
func ObjectPath(prefix, owner, filename string) string {
	ext := strings.ToLower(path.Ext(filename))
	return path.Join(prefix, owner, uuid.NewString()+ext)
}

func PublicURL(bucket, objectPath string) string {
	return fmt.Sprintf("%s%s/%s", gcsHost, bucket, objectPath)
}
