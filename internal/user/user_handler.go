package user

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

func (h *Handler) AllUsers(c *gin.Context) {
	officeIDParam := c.Query("office_id")
	if officeIDParam == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "office_id parameter is required"})
		return
	}

	officeID, err := strconv.ParseUint(officeIDParam, 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "office_id must be numeric"})
		return
	}

	users, err := h.service.ListEmployeesByOffice(c.Request.Context(), uint(officeID))
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) FilterUsers(c *gin.Context) {
	var q FilterUsersQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	users, err := h.service.Filter(c.Request.Context(), q.EmployeeID, q.Designation)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Internal Server Error"})
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) Search(c *gin.Context) {
	term := c.Query("employee_name")

	users, err := h.service.SearchEmployees(c.Request.Context(), term)
	if err != nil {
		response.FromError(c, err)
		return
	}

	c.JSON(http.StatusOK, users)
}

func (h *Handler) UpdateStatus(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("user_id"), 10, 32)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid user_id")
		return
	}

	var req UpdateStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	if err := h.service.UpdateStatus(c.Request.Context(), uint(userID), *req.IsActive); err != nil {
		response.FromError(c, err)
		return
	}

	response.Message(c, http.StatusOK, "User status updated successfully")
}
