package autherrors

import (
	"net/http"

	"go-ums/internal/shared/apperror"
)

var (
	// Login failures deliberately share one message so callers cannot
	// probe which of email/password was wrong.
	ErrInvalidCredentials = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid credentials",
		http.StatusBadRequest,
	)

	ErrUserInactive = apperror.New(
		apperror.CodeInvalidInput,
		"User account is not active",
		http.StatusBadRequest,
	)

	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrMissingToken = apperror.New(
		apperror.CodeUnauthorized,
		"Token not found",
		http.StatusUnauthorized,
	)

	ErrInvalidToken = apperror.New(
		apperror.CodeForbidden,
		"Token is invalid",
		http.StatusForbidden,
	)

	ErrTokenExpired = apperror.New(
		apperror.CodeForbidden,
		"Token has expired",
		http.StatusForbidden,
	)

	ErrInvalidRefreshToken = apperror.New(
		apperror.CodeUnauthorized,
		"Refresh token is invalid",
		http.StatusUnauthorized,
	)

	ErrTokenGenerationFailed = apperror.New(
		apperror.CodeInternalError,
		"Failed to generate token",
		http.StatusInternalServerError,
	)

	ErrInvalidJoiningDate = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid joining_date format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)

	ErrInvalidDateOfBirth = apperror.New(
		apperror.CodeInvalidInput,
		"Invalid date_of_birth format, expected YYYY-MM-DD",
		http.StatusBadRequest,
	)
)
