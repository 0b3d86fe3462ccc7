package resumes

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"ats-backend/internal/extract"
	"ats-backend/internal/shared/server/respond"
)

// Handler exposes the resume HTTP endpoints.
type Handler struct {
	svc *Service
}

// NewHandler creates a new resume handler.
func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

// RegisterRoutes mounts the resume routes on the given router group.
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/resumes", h.Upload)
	rg.GET("/resumes/:id/analysis", h.GetAnalysis)
	rg.GET("/resumes/:id/download", h.Download)
}

type parsedData struct {
	Pages int               `json:"pages"`
	Info  map[string]string `json:"info"`
}

type uploadResponse struct {
	Success       bool        `json:"success"`
	ResumeID      string      `json:"resumeId"`
	Filename      string      `json:"filename"`
	ExtractedInfo interface{} `json:"extractedInfo"`
	ATSAnalysis   interface{} `json:"atsAnalysis"`
	ParsedData    parsedData  `json:"parsedData"`
}

// Upload accepts a multipart PDF upload, runs the analysis pipeline and
// returns the full result.
func (h *Handler) Upload(c *gin.Context) {
	fileHeader, err := c.FormFile("file")
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "missing_file", "a resume file is required under the 'file' field", nil)
		return
	}

	if fileHeader.Size > MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large",
			fmt.Sprintf("file exceeds the %dMB limit", MaxUploadBytes>>20), nil)
		return
	}

	if !isPDF(fileHeader.Filename, fileHeader.Header.Get("Content-Type")) {
		respond.Error(c, http.StatusBadRequest, "unsupported_type", "only PDF files are supported", nil)
		return
	}

	f, err := fileHeader.Open()
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_file", "could not read uploaded file", nil)
		return
	}
	defer f.Close()

	data, err := io.ReadAll(io.LimitReader(f, MaxUploadBytes+1))
	if err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_file", "could not read uploaded file", nil)
		return
	}
	if len(data) > MaxUploadBytes {
		respond.Error(c, http.StatusRequestEntityTooLarge, "file_too_large",
			fmt.Sprintf("file exceeds the %dMB limit", MaxUploadBytes>>20), nil)
		return
	}

	jobKeywords := splitKeywords(c.PostForm("keywords"))

	result, err := h.svc.Process(c.Request.Context(), fileHeader.Filename, data, jobKeywords)
	if errors.Is(err, extract.ErrDecode) {
		respond.Error(c, http.StatusBadRequest, "decode_error", "could not extract text from the PDF", nil)
		return
	}
	if errors.Is(err, ErrInvalidInput) {
		respond.Error(c, http.StatusBadRequest, "invalid_input", err.Error(), nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "processing_failed", "failed to process resume", nil)
		return
	}

	respond.OK(c, uploadResponse{
		Success:       true,
		ResumeID:      result.Resume.ID,
		Filename:      result.Resume.OriginalFilename,
		ExtractedInfo: result.Analysis.Resume,
		ATSAnalysis:   result.Analysis.Analysis,
		ParsedData: parsedData{
			Pages: result.Analysis.PageCount,
			Info:  result.Analysis.Info,
		},
	})
}

type resumeView struct {
	ID               string `json:"id"`
	Filename         string `json:"filename"`
	OriginalFilename string `json:"originalFilename"`
	FileSize         int64  `json:"fileSize"`
	UploadDate       string `json:"uploadDate"`
}

type analysisView struct {
	ATSScore         int             `json:"atsScore"`
	Grade            string          `json:"grade"`
	TotalWords       int             `json:"totalWords"`
	ReadabilityScore int             `json:"readabilityScore"`
	AnalysisDate     string          `json:"analysisDate"`
	Data             json.RawMessage `json:"data"`
}

// GetAnalysis returns the stored analysis for a resume.
func (h *Handler) GetAnalysis(c *gin.Context) {
	resumeID := c.Param("id")
	if _, err := uuid.Parse(resumeID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "resume id must be a UUID", nil)
		return
	}

	resume, record, err := h.svc.GetAnalysis(c.Request.Context(), resumeID)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to load analysis", nil)
		return
	}

	respond.OK(c, gin.H{
		"success": true,
		"resume": resumeView{
			ID:               resume.ID,
			Filename:         resume.FileName,
			OriginalFilename: resume.OriginalFilename,
			FileSize:         resume.SizeBytes,
			UploadDate:       resume.UploadedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
		},
		"analysis": analysisView{
			ATSScore:         record.ATSScore,
			Grade:            record.Grade,
			TotalWords:       record.TotalWords,
			ReadabilityScore: record.ReadabilityScore,
			AnalysisDate:     record.CreatedAt.UTC().Format("2006-01-02T15:04:05Z07:00"),
			Data:             json.RawMessage(record.AnalysisData),
		},
	})
}

// Download streams the original PDF back to the caller.
func (h *Handler) Download(c *gin.Context) {
	resumeID := c.Param("id")
	if _, err := uuid.Parse(resumeID); err != nil {
		respond.Error(c, http.StatusBadRequest, "invalid_id", "resume id must be a UUID", nil)
		return
	}

	resume, rc, err := h.svc.OpenFile(c.Request.Context(), resumeID)
	if errors.Is(err, ErrNotFound) {
		respond.Error(c, http.StatusNotFound, "not_found", "resume not found", nil)
		return
	}
	if err != nil {
		respond.Error(c, http.StatusInternalServerError, "internal_error", "failed to open resume file", nil)
		return
	}
	defer rc.Close()

	headers := map[string]string{
		"Content-Disposition": fmt.Sprintf("attachment; filename=%q", resume.OriginalFilename),
	}
	c.DataFromReader(http.StatusOK, resume.SizeBytes, "application/pdf", rc, headers)
}

func isPDF(fileName, contentType string) bool {
	if strings.EqualFold(filepath.Ext(fileName), ".pdf") {
		return true
	}
	return strings.EqualFold(contentType, "application/pdf")
}

func splitKeywords(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	keywords := make([]string, 0, len(parts))
	for _, part := range parts {
		trimmed := strings.TrimSpace(part)
		if trimmed != "" {
			keywords = append(keywords, trimmed)
		}
	}
	return keywords
}
