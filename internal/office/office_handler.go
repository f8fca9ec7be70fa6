package office

import (
	"net/http"

	"go-ums/internal/shared/response"

	"github.com/gin-gonic/gin"
)

// Offices carry no payload beyond their status flag, so the handler talks
// to the repository directly.
type Handler struct {
	repo Repository
}

func NewHandler(repo Repository) *Handler {
	return &Handler{repo: repo}
}

type createOfficeRequest struct {
	Status *bool `json:"status"`
}

func (h *Handler) Create(c *gin.Context) {
	var req createOfficeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Message(c, http.StatusBadRequest, "Invalid input")
		return
	}

	o := Office{Status: true}
	if req.Status != nil {
		o.Status = *req.Status
	}

	if err := h.repo.Create(c.Request.Context(), &o); err != nil {
		response.Error(c, http.StatusInternalServerError, "Error creating office", err)
		return
	}

	c.JSON(http.StatusCreated, o)
}

func (h *Handler) GetAll(c *gin.Context) {
	offices, err := h.repo.FindAll(c.Request.Context())
	if err != nil {
		response.Error(c, http.StatusInternalServerError, "Error fetching offices", err)
		return
	}

	c.JSON(http.StatusOK, offices)
}
