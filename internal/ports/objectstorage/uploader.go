package objectstorage

import (
	"context"
	"io"
)

// Uploader sube bytes a un bucket. Es sincrónico y reporta fallas como error.
type Uploader interface {
	Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error
}
