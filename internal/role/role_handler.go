package role

import (
	"net/http"

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

func (h *Handler) Create(c *gin.Context) {
	var req CreateRoleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FromError(c, apperror.MapValidationError(err))
		return
	}

	r, err := h.service.Create(c.Request.Context(), req)
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error creating role", err)
		return
	}

	c.JSON(http.StatusCreated, r)
}

func (h *Handler) GetAll(c *gin.Context) {
	roles, err := h.service.GetAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching roles", err)
		return
	}

	c.JSON(http.StatusOK, roles)
}
