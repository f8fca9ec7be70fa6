package usererrors

import (
	"net/http"

	"go-ums/internal/shared/apperror"
)

var (
	ErrUserNotFound = apperror.New(
		apperror.CodeNotFound,
		"User not found",
		http.StatusNotFound,
	)

	ErrNoUsersFound = apperror.New(
		apperror.CodeNotFound,
		"No users found",
		http.StatusNotFound,
	)

	ErrUsernameTaken = apperror.New(
		apperror.CodeConflict,
		"Username is already taken",
		http.StatusConflict,
	)

	ErrEmailTaken = apperror.New(
		apperror.CodeConflict,
		"Email address is already registered",
		http.StatusConflict,
	)

	ErrPhoneTaken = apperror.New(
		apperror.CodeConflict,
		"Phone number is already registered",
		http.StatusConflict,
	)

	ErrEmployeeIDTaken = apperror.New(
		apperror.CodeConflict,
		"Employee ID is already registered",
		http.StatusConflict,
	)
)
