package memory

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploaderStoresObject(t *testing.T) {
	u := NewUploader()

	require.NoError(t, u.Upload(context.Background(), "catcollector", "a1b2c3.png", strings.NewReader("img"), "image/png"))

	b, ok := u.Get("catcollector", "a1b2c3.png")
	require.True(t, ok)
	assert.Equal(t, "img", string(b))
	assert.Equal(t, 1, u.Len())
}

func TestUploaderFailures(t *testing.T) {
	u := NewUploader()
	assert.ErrorIs(t, u.Upload(context.Background(), "", "k", strings.NewReader("x"), ""), ErrBucketRequired)

	boom := errors.New("bucket down")
	u.FailWith = boom
	assert.ErrorIs(t, u.Upload(context.Background(), "b", "k", strings.NewReader("x"), ""), boom)
	assert.Zero(t, u.Len())
}
