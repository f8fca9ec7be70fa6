package userdetailserrors

import (
	"net/http"

	"go-ums/internal/shared/apperror"
)

var (
	ErrDetailsNotFound = apperror.New(
		apperror.CodeNotFound,
		"User details not found",
		http.StatusNotFound,
	)

	ErrNoDetailsFound = apperror.New(
		apperror.CodeNotFound,
		"No user details found",
		http.StatusNotFound,
	)

	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_birth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
