package employee

import (
	"context"
	"errors"

	employeeerrors "github.com/connectwithhassan/all-in-one/internal/employee/errors"

	"gorm.io/gorm"
)

// mapRepositoryError menerjemahkan error gorm/context ke AppError.
// Error lain diteruskan apa adanya dan menjadi 500 di handler.
func mapRepositoryError(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return employeeerrors.ErrEmployeeNotFound
	case errors.Is(err, context.DeadlineExceeded):
		return employeeerrors.ErrDirectoryUnavailable.WithCause(err)
	default:
		return err
	}
}
