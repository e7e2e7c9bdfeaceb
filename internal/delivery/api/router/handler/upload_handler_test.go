package handler

import (
	"bytes"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"creatorhub/internal/domain/service"
	mockUsecase "creatorhub/internal/mocks/usecase"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var pngBytes = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR")

func multipartRequest(t *testing.T, files map[string][]byte) *http.Request {
	t.Helper()

	var body bytes.Buffer
	writer := multipart.NewWriter(&body)
	for field, data := range files {
		part, err := writer.CreateFormFile(field, field+".png")
		require.NoError(t, err)
		_, err = part.Write(data)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/uploads", &body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())

	return req
}

func TestUploadHandler_Upload(t *testing.T) {
	t.Run("stored", func(t *testing.T) {
		e := newTestEcho(t)
		uploadUC := mockUsecase.NewMockUploadUsecase(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC})

		uploadUC.EXPECT().UploadImage(mock.Anything, testUser.ID, pngBytes).
			Return(&usecase.UploadOutput{URL: "https://creatorhub.test/uploads/user-1/a.png", ContentType: "image/png", Size: len(pngBytes)}, nil).Once()

		rec := serve(t, e, h.Upload, multipartRequest(t, map[string][]byte{"file": pngBytes}), withUser(testUser))

		assert.Equal(t, http.StatusCreated, rec.Code)
		assert.Contains(t, rec.Body.String(), "/uploads/user-1/a.png")
	})

	t.Run("extra part rejected", func(t *testing.T) {
		e := newTestEcho(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: mockUsecase.NewMockUploadUsecase(t)})

		req := multipartRequest(t, map[string][]byte{"file": pngBytes, "other": pngBytes})
		rec := serve(t, e, h.Upload, req, withUser(testUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), `"file"`)
	})

	t.Run("not multipart", func(t *testing.T) {
		e := newTestEcho(t)
		h := NewUploadHandler(UploadHandlerParams{UploadUC: mockUsecase.NewMockUploadUsecase(t)})

		rec := serve(t, e, h.Upload, jsonRequest(http.MethodPost, "/api/uploads", `{}`), withUser(testUser))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestUploadHandler_Serve(t *testing.T) {
	e := newTestEcho(t)
	uploadUC := mockUsecase.NewMockUploadUsecase(t)
	h := NewUploadHandler(UploadHandlerParams{UploadUC: uploadUC})

	uploadUC.EXPECT().OpenUpload(mock.Anything, "user-1/a.png").
		Return(&service.StoredObject{
			Body:        io.NopCloser(strings.NewReader(string(pngBytes))),
			ContentType: "image/png",
			Size:        int64(len(pngBytes)),
		}, nil).Once()

	req := httptest.NewRequest(http.MethodGet, "/uploads/user-1/a.png", nil)
	rec := serve(t, e, h.Serve, req, withParam("*", "user-1/a.png"))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get(echo.HeaderContentType))
	assert.Equal(t, pngBytes, rec.Body.Bytes())
}
