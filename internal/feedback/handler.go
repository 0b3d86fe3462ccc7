package feedback

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/shared/server/respond"
)

// Handler exposes the feedback HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new feedback handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the feedback routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/feedback", h.Submit)
	rg.GET("/feedback", h.List)
}

type submitRequest struct {
	UserEmail string `json:"userEmail" binding:"omitempty,email"`
	Rating    string `json:"rating" binding:"required,oneof=excellent good fair poor"`
	Comments  string `json:"comments"`
}

// Submit records a new piece of feedback.
func (h *Handler) Submit(c *gin.Context) {
	var req submitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_request", "rating must be one of excellent, good, fair, poor", nil)
		return
	}

	entry, err := h.svc.Submit(c.Request.Context(), req.UserEmail, req.Rating, req.Comments)
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to save feedback", nil)
		return
	}

	respond.Created(c, gin.H{
		"success":  true,
		"feedback": entry,
	})
}

// List returns recent feedback entries and aggregate stats.
func (h *Handler) List(c *gin.Context) {
	entries, stats, err := h.svc.Recent(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load feedback", nil)
		return
	}

	respond.OK(c, gin.H{
		"success":  true,
		"feedback": entries,
		"stats":    stats,
	})
}
