package storage

import (
	"context"
	"io"
	"testing"

	domainerrors "creatorhub/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gocloud.dev/blob/memblob"
)

func TestBlobStorage_SaveAndOpen(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.creatorhub.test/uploads/")
	ctx := context.Background()

	url, err := storage.Save(ctx, "user-1/avatar.png", []byte("png-bytes"), "image/png")
	require.NoError(t, err)
	assert.Equal(t, "https://cdn.creatorhub.test/uploads/user-1/avatar.png", url)

	object, err := storage.Open(ctx, "user-1/avatar.png")
	require.NoError(t, err)
	defer object.Body.Close()

	body, err := io.ReadAll(object.Body)
	require.NoError(t, err)
	assert.Equal(t, "png-bytes", string(body))
	assert.Equal(t, "image/png", object.ContentType)
	assert.Equal(t, int64(9), object.Size)
}

func TestBlobStorage_OpenMissing(t *testing.T) {
	bucket := memblob.OpenBucket(nil)
	defer bucket.Close()

	storage := NewBlobStorage(bucket, "https://cdn.creatorhub.test/uploads")

	_, err := storage.Open(context.Background(), "missing.png")
	assert.ErrorIs(t, err, domainerrors.ErrNotFound)
}
