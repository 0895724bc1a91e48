package payroll

import (
	"errors"
	"strings"

	payrollerrors "github.com/connectwithhassan/all-in-one/internal/payroll/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const payrollUniqueConstraint = "uq_payroll_employee_month"

func mapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return payrollerrors.ErrPayrollNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		if pgErr.Code == "23505" && pgErr.ConstraintName == payrollUniqueConstraint {
			return payrollerrors.ErrPayrollConflict
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") && strings.Contains(errMsg, payrollUniqueConstraint) {
		return payrollerrors.ErrPayrollConflict
	}

	return err
}
