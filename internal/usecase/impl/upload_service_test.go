package impl

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"creatorhub/internal/domain/constants"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	mockSvc "creatorhub/internal/mocks/service"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngHeader = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x01\x00\x00\x00\x01\x08\x02\x00\x00\x00")

func TestUploadService_UploadImage_Success(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	svc := NewUploadService(UploadServiceParams{Storage: storage, Logger: discardLogger()})
	ctx := context.Background()

	storage.EXPECT().
		Save(ctx, mock.MatchedBy(func(key string) bool {
			return strings.HasPrefix(key, "uploads/u1/") && strings.HasSuffix(key, ".png")
		}), pngHeader, "image/png").
		Return("https://cdn.test/uploads/u1/x.png", nil)

	output, err := svc.UploadImage(ctx, "u1", pngHeader)

	require.NoError(t, err)
	assert.Equal(t, "https://cdn.test/uploads/u1/x.png", output.URL)
	assert.Equal(t, "image/png", output.ContentType)
	assert.Equal(t, len(pngHeader), output.Size)
}

func TestUploadService_UploadImage_Rejections(t *testing.T) {
	tests := []struct {
		name     string
		data     []byte
		expected error
	}{
		{name: "not an image", data: []byte("%PDF-1.7\n%binary"), expected: domainerrors.ErrUnsupportedMedia},
		{name: "plain text", data: []byte("hello world"), expected: domainerrors.ErrUnsupportedMedia},
		{name: "too large", data: append(append([]byte{}, pngHeader...), make([]byte, constants.MaxUploadSize)...), expected: domainerrors.ErrFileTooLarge},
		{name: "empty", data: nil, expected: domainerrors.ErrValidationFailed},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := NewUploadService(UploadServiceParams{Storage: mockSvc.NewMockImageStorage(t), Logger: discardLogger()})

			_, err := svc.UploadImage(context.Background(), "u1", tt.data)

			assert.True(t, errors.Is(err, tt.expected), "got %v", err)
		})
	}
}

func TestUploadService_OpenUpload(t *testing.T) {
	storage := mockSvc.NewMockImageStorage(t)
	svc := NewUploadService(UploadServiceParams{Storage: storage, Logger: discardLogger()})
	ctx := context.Background()
	object := &service.StoredObject{Body: io.NopCloser(bytes.NewReader(pngHeader)), ContentType: "image/png"}

	storage.EXPECT().Open(ctx, "uploads/u1/a.png").Return(object, nil)
	storage.EXPECT().Open(ctx, "uploads/u1/missing.png").Return(nil, domainerrors.ErrNotFound.WrapMessage("blob missing"))

	opened, err := svc.OpenUpload(ctx, "u1/a.png")
	require.NoError(t, err)
	assert.Equal(t, object, opened)

	_, err = svc.OpenUpload(ctx, "u1/missing.png")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))

	_, err = svc.OpenUpload(ctx, "../secrets.txt")
	assert.True(t, errors.Is(err, domainerrors.ErrNotFound))
}
