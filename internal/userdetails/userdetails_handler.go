package userdetails

import (
	"errors"
	"net/http"
	"strconv"

	"go-ums/internal/shared/apperror"
	"go-ums/internal/shared/response"
	userdetailserrors "go-ums/internal/userdetails/errors"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	service Service
}

func NewHandler(s Service) *Handler {
	return &Handler{service: s}
}

func (h *Handler) Add(c *gin.Context) {
	var req CreateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	d, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error adding user details", err)
		return
	}

	c.JSON(http.StatusCreated, d)
}

func (h *Handler) Update(c *gin.Context) {
	detailsID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid details id")
		return
	}

	var req UpdateDetailsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	d, err := h.service.Update(c.Request.Context(), uint(detailsID), req)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) Get(c *gin.Context) {
	userIDParam := c.Query("userId")
	userID, err := strconv.ParseUint(userIDParam, 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "userId parameter is required")
		return
	}

	d, err := h.service.GetByUserID(c.Request.Context(), uint(userID))
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, d)
}

func (h *Handler) GetAll(c *gin.Context) {
	details, err := h.service.ListAll(c.Request.Context())
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, details)
}

func (h *Handler) UpdateBasic(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	var req UpdateBasicRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	d, err := h.service.UpdateBasic(c.Request.Context(), uint(userID), req)
	if err != nil {
		// The legacy route answered with {"error": ...} here, unlike the
		// rest of the details surface.
		switch {
		case errors.Is(err, userdetailserrors.ErrDetailsNotFound):
			c.JSON(http.StatusNotFound, gin.H{"error": "User details not found"})
		case errors.Is(err, userdetailserrors.ErrInvalidDateOfBirth):
			response.FromError(c, err)
		default:
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update user details"})
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "User details updated successfully", "userDetails": d})
}
