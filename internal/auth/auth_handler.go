package auth

import (
	"net/http"

	"go-ums/internal/shared/apperror"
	"go-ums/internal/shared/response"

	"github.com/gin-gonic/gin"
)

const refreshCookieName = "refreshToken"

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Register(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.Register(c.Request.Context(), req); err != nil {
		// Creation failures, uniqueness violations included, surface as a
		// generic registration error carrying the constraint detail.
		response.Error(c, http.StatusInternalServerError, "Error registering user", err)
		return
	}

	response.Message(c, http.StatusCreated, "User registered successfully")
}

func (h *Handler) Login(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	resp, err := h.service.Login(c.Request.Context(), req.EmailAddress, req.Password)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken, int(RefreshTokenTTL.Seconds()))
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Logout(c *gin.Context) {
	h.setRefreshCookie(c, "", -1)
	response.Message(c, http.StatusOK, "Logged out successfully")
}

func (h *Handler) Status(c *gin.Context) {
	userID := c.GetUint("user_id")

	resp, err := h.service.Status(c.Request.Context(), userID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

func (h *Handler) Refresh(c *gin.Context) {
	refreshToken, err := c.Cookie(refreshCookieName)
	if err != nil || refreshToken == "" {
		var req struct {
			RefreshToken string `json:"refreshToken" binding:"required"`
		}
		if err := c.ShouldBindJSON(&req); err != nil {
			response.Message(c, http.StatusUnauthorized, "Missing refresh token")
			return
		}
		refreshToken = req.RefreshToken
	}

	resp, err := h.service.Refresh(c.Request.Context(), refreshToken)
	if err != nil {
		response.FromError(c, err)
		return
	}

	h.setRefreshCookie(c, resp.RefreshToken, int(RefreshTokenTTL.Seconds()))
	c.JSON(http.StatusOK, resp)
}

func (h *Handler) setRefreshCookie(c *gin.Context, value string, maxAge int) {
	http.SetCookie(c.Writer, &http.Cookie{
		Name:     refreshCookieName,
		Value:    value,
		Path:     "/",
		MaxAge:   maxAge,
		HttpOnly: true,
		Secure:   true,
		SameSite: http.SameSiteStrictMode,
	})
}
