package auth

import (
	"strings"

	autherrors "go-ums/internal/auth/errors"
	"go-ums/internal/shared/contextutil"
	"go-ums/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Middleware verifies the Bearer access token and stores the claims in the
// request context. No token yields 401; a bad or expired one yields 403.
func Middleware(tokens *TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		tokenString, found := strings.CutPrefix(authHeader, "Bearer ")
		if !found || tokenString == "" {
			response.FromError(c, autherrors.ErrMissingToken)
			c.Abort()
			return
		}

		claims, err := tokens.VerifyAccessToken(tokenString)
		if err != nil {
			response.FromError(c, err)
			c.Abort()
			return
		}

		c.Set("user_id", claims.UserID)
		c.Set("username", claims.Username)
		c.Set("role", claims.Role)

		ctx := contextutil.WithUserID(c.Request.Context(), claims.Subject)
		c.Request = c.Request.WithContext(ctx)

		c.Next()
	}
}
