package impl

import (
	domainerrors "creatorhub/internal/domain/errors"

	"github.com/pkg/errors"
)

// notFound converts a repository miss into the 404 shown for missing or foreign rows.
func notFound(err, sentinel error, message string) error {
	if errors.Is(err, sentinel) {
		return domainerrors.ErrNotFound.WithMessage(message)
	}

	return err
}

func boolOrDefault(value *bool, fallback bool) bool {
	if value == nil {
		return fallback
	}

	return *value
}
