package employeeerrors

import (
	"net/http"

	"github.com/connectwithhassan/all-in-one/internal/shared/apperror"
)

var (
	ErrEmployeeNotFound = apperror.New(
		apperror.CodeNotFound,
		"Karyawan tidak ditemukan",
		http.StatusNotFound,
	)
	ErrInvalidEmployeeID = apperror.New(
		apperror.CodeInvalidInput,
		"ID karyawan tidak valid",
		http.StatusBadRequest,
	)
	// ErrDirectoryUnavailable dipakai saat query master karyawan timeout.
	ErrDirectoryUnavailable = apperror.New(
		apperror.CodeServiceUnavailable,
		"Data karyawan sedang tidak bisa diakses",
		http.StatusServiceUnavailable,
	)
)
