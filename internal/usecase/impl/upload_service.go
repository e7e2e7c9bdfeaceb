package impl

import (
	"context"
	"log/slog"
	"path"
	"strings"

	"creatorhub/internal/domain/constants"
	domainerrors "creatorhub/internal/domain/errors"
	"creatorhub/internal/domain/service"
	"creatorhub/internal/usecase"
	"creatorhub/internal/util"

	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// uploadPrefix is the bucket folder every upload lives under.
const uploadPrefix = "uploads/"

type uploadService struct {
	storage service.ImageStorage
	logger  *slog.Logger
}

// UploadServiceParams holds dependencies for UploadService, injected by Fx.
type UploadServiceParams struct {
	fx.In

	Storage service.ImageStorage
	Logger  *slog.Logger
}

// NewUploadService creates a new upload service instance
func NewUploadService(params UploadServiceParams) usecase.UploadUsecase {
	return &uploadService{
		storage: params.Storage,
		logger:  params.Logger,
	}
}

// UploadImage sniffs the content type, enforces the size limit and stores the image.
func (s *uploadService) UploadImage(ctx context.Context, userID string, data []byte) (*usecase.UploadOutput, error) {
	if len(data) > constants.MaxUploadSize {
		return nil, domainerrors.ErrFileTooLarge.WithDetails(
			"received " + util.FormatBytes(int64(len(data))) + ", limit " + util.FormatBytes(constants.MaxUploadSize),
		)
	}
	if len(data) == 0 {
		return nil, domainerrors.NewFieldError("file", "is empty")
	}

	mtype := mimetype.Detect(data)
	if !strings.HasPrefix(mtype.String(), "image/") {
		return nil, domainerrors.ErrUnsupportedMedia.WithDetails(mtype.String())
	}

	key := uploadPrefix + userID + "/" + uuid.NewString() + mtype.Extension()
	contentType := mtype.String()

	url, err := s.storage.Save(ctx, key, data, contentType)
	if err != nil {
		return nil, errors.Wrap(err, "failed to store image")
	}

	s.logger.InfoContext(ctx, "Image uploaded",
		slog.String("user_id", userID),
		slog.String("key", key),
		slog.Int("size", len(data)),
	)

	return &usecase.UploadOutput{URL: url, ContentType: contentType, Size: len(data)}, nil
}

// OpenUpload reads a stored image. Paths escaping the uploads folder are not found.
func (s *uploadService) OpenUpload(ctx context.Context, name string) (*service.StoredObject, error) {
	cleaned := path.Clean("/" + name)
	if cleaned == "/" || strings.Contains(name, "..") {
		return nil, domainerrors.ErrNotFound.WithMessage("upload not found")
	}

	object, err := s.storage.Open(ctx, uploadPrefix+strings.TrimPrefix(cleaned, "/"))
	if err != nil {
		return nil, notFound(err, domainerrors.ErrNotFound, "upload not found")
	}

	return object, nil
}
