package response

import (
	"go-ums/internal/shared/apperror"

	"github.com/gin-gonic/gin"
)

// The API predates this codebase, so its wire shapes are preserved as-is:
// bare lists and objects for data, {"message": ...} for outcomes and
// {"message": ..., "error": ...} when the underlying cause is safe to show.

func Message(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"message": message})
}

func Error(c *gin.Context, status int, message string, err error) {
	body := gin.H{"message": message}
	if err != nil {
		body["error"] = err.Error()
	}
	c.JSON(status, body)
}

// FromError maps an error chain to its AppError status and message.
func FromError(c *gin.Context, err error) {
	appErr := apperror.From(err)
	c.JSON(appErr.HTTPStatus, gin.H{"message": appErr.Message})
}
