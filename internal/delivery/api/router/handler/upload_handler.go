package handler

import (
	"io"
	"net/http"
	"strconv"

	"creatorhub/internal/delivery/api/response"
	"creatorhub/internal/domain/constants"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

const uploadFormField = "file"

// UploadHandlerParams holds dependencies for UploadHandler, injected by Fx.
type UploadHandlerParams struct {
	fx.In

	UploadUC usecase.UploadUsecase
}

// UploadHandler stores and serves creator images.
type UploadHandler struct {
	uploadUC usecase.UploadUsecase
}

// NewUploadHandler is the constructor for UploadHandler
func NewUploadHandler(params UploadHandlerParams) *UploadHandler {
	return &UploadHandler{
		uploadUC: params.UploadUC,
	}
}

// Upload accepts a multipart form with exactly one image in the "file" part.
func (h *UploadHandler) Upload(c echo.Context) error {
	user, err := currentUser(c)
	if err != nil {
		return err
	}

	form, err := c.MultipartForm()
	if err != nil {
		return response.HandleAppError(c, domainerrors.NewFieldError(uploadFormField, "a multipart form is required"))
	}

	files := form.File[uploadFormField]
	if len(files) != 1 || len(form.File) != 1 {
		return response.HandleAppError(c, domainerrors.NewFieldError(uploadFormField, "exactly one file is required"))
	}

	if files[0].Size > constants.MaxUploadSize {
		return response.HandleAppError(c, domainerrors.ErrFileTooLarge)
	}

	file, err := files[0].Open()
	if err != nil {
		return errors.Wrap(err, "open uploaded file")
	}
	defer file.Close()

	// One extra byte lets the usecase see oversize bodies whose header lied about the size.
	data, err := io.ReadAll(io.LimitReader(file, constants.MaxUploadSize+1))
	if err != nil {
		return errors.Wrap(err, "read uploaded file")
	}

	output, err := h.uploadUC.UploadImage(c.Request().Context(), user.ID, data)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Created(c, output)
}

// Serve streams a stored image.
func (h *UploadHandler) Serve(c echo.Context) error {
	object, err := h.uploadUC.OpenUpload(c.Request().Context(), c.Param("*"))
	if err != nil {
		return response.HandleAppError(c, err)
	}
	defer object.Body.Close()

	header := c.Response().Header()
	header.Set("Cache-Control", "public, max-age=31536000, immutable")
	header.Set("X-Content-Type-Options", "nosniff")
	if object.Size > 0 {
		header.Set(echo.HeaderContentLength, strconv.FormatInt(object.Size, 10))
	}

	return c.Stream(http.StatusOK, object.ContentType, object.Body)
}
