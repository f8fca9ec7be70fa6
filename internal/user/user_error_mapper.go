package user

import (
	"errors"
	"strings"

	usererrors "go-ums/internal/user/errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// MapRepositoryError translates driver-level failures into the module's
// sentinels. Unique-violation mapping keys off the index names declared on
// the User entity.
func MapRepositoryError(err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return usererrors.ErrUserNotFound
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		switch pgErr.ConstraintName {
		case "uq_users_username":
			return usererrors.ErrUsernameTaken
		case "uq_users_email":
			return usererrors.ErrEmailTaken
		case "uq_users_phone_no":
			return usererrors.ErrPhoneTaken
		case "uq_users_employee_id":
			return usererrors.ErrEmployeeIDTaken
		}
	}

	errMsg := strings.ToLower(err.Error())
	if strings.Contains(errMsg, "duplicate key value") {
		switch {
		case strings.Contains(errMsg, "uq_users_username"):
			return usererrors.ErrUsernameTaken
		case strings.Contains(errMsg, "uq_users_email"):
			return usererrors.ErrEmailTaken
		case strings.Contains(errMsg, "uq_users_phone_no"):
			return usererrors.ErrPhoneTaken
		case strings.Contains(errMsg, "uq_users_employee_id"):
			return usererrors.ErrEmployeeIDTaken
		}
	}

	return err
}
