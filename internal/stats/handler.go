package stats

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"ats-backend/internal/resumes"
	"ats-backend/internal/shared/server/respond"
)

// Handler serves aggregate upload and analysis statistics.
type Handler struct {
	repo resumes.Repo
}

// NewHandler creates a new stats handler.
func NewHandler(repo resumes.Repo) *Handler {
	return &Handler{repo: repo}
}

// RegisterRoutes mounts the stats route on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/stats", h.Get)
}

type summary struct {
	TotalResumes     int `json:"totalResumes"`
	AverageATSScore  int `json:"averageAtsScore"`
	AverageWordCount int `json:"averageWordCount"`
}

// Get returns aggregate statistics over all stored resumes.
func (h *Handler) Get(c *gin.Context) {
	stats, err := h.repo.Stats(c.Request.Context())
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load stats", nil)
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"stats": summary{
			TotalResumes:     stats.TotalResumes,
			AverageATSScore:  stats.AverageATSScore,
			AverageWordCount: stats.AverageWordCount,
		},
		"gradeDistribution": stats.GradeDistribution,
		"recentActivity":    stats.RecentActivity,
	})
}
