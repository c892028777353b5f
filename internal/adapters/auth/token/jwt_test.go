package token

import (
	"context"
	"testing"
	"time"

	"cat-collector/internal/ports/auth"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJWT_IssueAndVerify(t *testing.T) {
	j, err := New(Config{Secret: "s3cret", TTL: time.Hour})
	require.NoError(t, err)

	raw, exp, err := j.Issue(auth.Claims{UserID: "user-1", Username: "ana"})
	require.NoError(t, err)
	assert.NotEmpty(t, raw)
	assert.WithinDuration(t, time.Now().Add(time.Hour), exp, 5*time.Second)

	claims, err := j.Verify(context.Background(), raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", claims.UserID)
	assert.Equal(t, "ana", claims.Username)
}

func TestJWT_RejectsExpired(t *testing.T) {
	j, err := New(Config{Secret: "s3cret", TTL: time.Minute})
	require.NoError(t, err)

	issuedAt := time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC)
	j.now = func() time.Time { return issuedAt }
	raw, _, err := j.Issue(auth.Claims{UserID: "user-1"})
	require.NoError(t, err)

	j.now = func() time.Time { return issuedAt.Add(2 * time.Minute) }
	_, err = j.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWT_RejectsOtherSecret(t *testing.T) {
	a, err := New(Config{Secret: "one"})
	require.NoError(t, err)
	b, err := New(Config{Secret: "two"})
	require.NoError(t, err)

	raw, _, err := a.Issue(auth.Claims{UserID: "user-1"})
	require.NoError(t, err)

	_, err = b.Verify(context.Background(), raw)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestNew_RequiresSecret(t *testing.T) {
	_, err := New(Config{})
	assert.ErrorIs(t, err, ErrNotConfigured)
}
