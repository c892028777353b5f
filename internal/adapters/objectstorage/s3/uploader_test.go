package s3

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeS3 struct {
	mu          sync.Mutex
	status      int
	requests    int
	method      string
	path        string
	contentType string
	body        string
}

func (f *fakeS3) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	b, _ := io.ReadAll(r.Body)

	f.mu.Lock()
	f.requests++
	f.method = r.Method
	f.path = r.URL.Path
	f.contentType = r.Header.Get("Content-Type")
	f.body = string(b)
	status := f.status
	f.mu.Unlock()

	if status == 0 {
		status = http.StatusOK
	}
	if status == http.StatusOK {
		w.Header().Set("ETag", `"d41d8cd98f00b204e9800998ecf8427e"`)
	}
	w.WriteHeader(status)
}

func newTestUploader(t *testing.T, srv *httptest.Server) *Uploader {
	t.Helper()

	up, err := New(context.Background(), Config{
		Region:          "us-east-1",
		Endpoint:        srv.URL,
		UsePathStyle:    true,
		AccessKeyID:     "test",
		SecretAccessKey: "test",
	})
	require.NoError(t, err)
	return up
}

func TestUploadPutsObject(t *testing.T) {
	fake := &fakeS3{}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	up := newTestUploader(t, srv)
	err := up.Upload(context.Background(), "catcollector", "a1b2c3.png", strings.NewReader("img-bytes"), "image/png")
	require.NoError(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, http.MethodPut, fake.method)
	assert.Equal(t, "/catcollector/a1b2c3.png", fake.path)
	assert.Equal(t, "image/png", fake.contentType)
	assert.Contains(t, fake.body, "img-bytes")
}

func TestUploadSurfacesServerError(t *testing.T) {
	fake := &fakeS3{status: http.StatusInternalServerError}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	up := newTestUploader(t, srv)
	err := up.Upload(context.Background(), "catcollector", "a1b2c3.png", strings.NewReader("img"), "")
	assert.Error(t, err)
}

func TestUploadIsAttemptedOnce(t *testing.T) {
	// 503 es reintentable para el SDK; con un solo intento no debe repetirse
	fake := &fakeS3{status: http.StatusServiceUnavailable}
	srv := httptest.NewServer(fake)
	defer srv.Close()

	up := newTestUploader(t, srv)
	err := up.Upload(context.Background(), "catcollector", "a1b2c3.png", strings.NewReader("img"), "image/png")
	require.Error(t, err)

	fake.mu.Lock()
	defer fake.mu.Unlock()
	assert.Equal(t, 1, fake.requests)
}

func TestUploadRequiresBucket(t *testing.T) {
	srv := httptest.NewServer(&fakeS3{})
	defer srv.Close()

	up := newTestUploader(t, srv)
	assert.ErrorIs(t, up.Upload(context.Background(), " ", "k", strings.NewReader("x"), ""), ErrBucketRequired)
}
