package attendanceerrors

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
	ErrInvalidExportID = apperror.New(
		apperror.CodeInvalidInput,
		"invalid attendance export id",
		http.StatusBadRequest,
	)
	ErrFileRequired = apperror.New(
		apperror.CodeInvalidInput,
		"attendance file is required",
		http.StatusBadRequest,
	)
	ErrUnsupportedFormat = apperror.New(
		apperror.CodeInvalidInput,
		"unsupported attendance file, expected .xlsx, .xls or .csv",
		http.StatusBadRequest,
	)
	ErrNoWorksheet = apperror.New(
		apperror.CodeInvalidInput,
		"no worksheet found",
		http.StatusBadRequest,
	)
	ErrEmptyExport = apperror.New(
		apperror.CodeInvalidInput,
		"attendance export is empty",
		http.StatusBadRequest,
	)
	ErrUnreadableExport = apperror.New(
		apperror.CodeInvalidInput,
		"attendance export could not be read",
		http.StatusBadRequest,
	)
	ErrExportNotFound = apperror.New(
		apperror.CodeNotFound,
		"attendance export not found",
		http.StatusNotFound,
	)
)
