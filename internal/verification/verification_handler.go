package verification

import (
	"net/http"
	"strconv"

	"go-ums/internal/shared/apperror"
	"go-ums/internal/shared/response"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

type approveRequest struct {
	VerifierID uint `json:"verifier_id" binding:"required"`
}

func (h *Handler) Approve(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	var req approveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		mapped := apperror.MapValidationError(err)
		response.FromError(c, mapped)
		return
	}

	v, err := h.service.Approve(c.Request.Context(), uint(userID), req.VerifierID)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User verified successfully", "verification": v})
}
