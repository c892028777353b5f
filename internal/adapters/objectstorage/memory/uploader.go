package memory

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sync"
)

var ErrBucketRequired = errors.New("bucket required")

// Uploader guarda los objetos en memoria. Sirve para modo dev y tests.
type Uploader struct {
	mu      sync.RWMutex
	objects map[string][]byte

	// FailWith, si no es nil, hace fallar todos los uploads (simula caída del bucket).
	FailWith error
}

func NewUploader() *Uploader {
	return &Uploader{objects: make(map[string][]byte)}
}

func (u *Uploader) Upload(ctx context.Context, bucket, key string, body io.Reader, contentType string) error {
	if u.FailWith != nil {
		return u.FailWith
	}
	if bucket == "" {
		return ErrBucketRequired
	}

	b, err := io.ReadAll(body)
	if err != nil {
		return fmt.Errorf("read body: %w", err)
	}

	u.mu.Lock()
	defer u.mu.Unlock()
	u.objects[bucket+"/"+key] = b
	return nil
}

func (u *Uploader) Get(bucket, key string) ([]byte, bool) {
	u.mu.RLock()
	defer u.mu.RUnlock()
	b, ok := u.objects[bucket+"/"+key]
	return b, ok
}

func (u *Uploader) Len() int {
	u.mu.RLock()
	defer u.mu.RUnlock()
	return len(u.objects)
}
