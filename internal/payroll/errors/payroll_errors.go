package payrollerrors

import (
	"net/http"

	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
)

var (
	ErrInvalidCompanyID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid company id",
		http.StatusBadRequest,
	)
	ErrInvalidActorID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid actor id",
		http.StatusBadRequest,
	)
	ErrInvalidPayrollID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid payroll id",
		http.StatusBadRequest,
	)
	ErrInvalidExportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance export id",
		http.StatusBadRequest,
	)
	ErrInvalidMonth = apperror.New(
		apperror.CodeInvalidInput,
		"invalid month format, expected YYYY-MM",
		http.StatusBadRequest,
	)
	ErrInvalidOfficialLeaves = apperror.New(
		apperror.CodeInvalidInput,
		"official_leaves cannot be negative",
		http.StatusBadRequest,
	)
	ErrInvalidAllowedHours = apperror.New(
		apperror.CodeInvalidInput,
		"allowed_hours_per_day must be greater than zero",
		http.StatusBadRequest,
	)
	ErrInvalidAdjustment = apperror.New(
		apperror.CodeInvalidInput,
		"day counts cannot be negative or exceed official working days",
		http.StatusBadRequest,
	)
	ErrInvalidMoneyValue = apperror.New(
		apperror.CodeInvalidInput,
		"salary and hour values cannot be negative",
		http.StatusBadRequest,
	)
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"employee not found",
		http.StatusNotFound,
	)
	ErrEmployeeNotComputable = apperror.New(
		apperror.CodeInvalidState,
		"employee is missing required wage fields",
		http.StatusUnprocessableEntity,
	)
	ErrPayrollNotFound = apperror.New(
		apperror.CodeNotFound,
		"payroll not found",
		http.StatusNotFound,
	)
	ErrPayrollConflict = apperror.New(
		apperror.CodeConflict,
		"payroll already exists for this employee and month",
		http.StatusConflict,
	)
	ErrGenerationQueueUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"payroll generation queue is not configured",
		http.StatusServiceUnavailable,
	)
)
