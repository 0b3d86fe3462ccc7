package feedback

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() (*gin.Engine, *MemoryRepo) {
	repo := NewMemoryRepo()
	router := gin.New()
	NewHandler(NewService(repo)).RegisterRoutes(router.Group("/api/v1"))
	return router, repo
}

func postFeedback(router *gin.Engine, payload string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodPost, "/api/v1/feedback", strings.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestSubmitFeedback(t *testing.T) {
	router, _ := newTestRouter()

	rec := postFeedback(router, `{"userEmail":"jane@example.com","rating":"excellent","comments":"very helpful"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool  `json:"success"`
		Feedback Entry `json:"feedback"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if !resp.Success || resp.Feedback.ID == "" {
		t.Errorf("response: %+v", resp)
	}
	if resp.Feedback.Rating != RatingExcellent {
		t.Errorf("rating: got %q", resp.Feedback.Rating)
	}
}

func TestSubmitFeedbackAnonymous(t *testing.T) {
	router, _ := newTestRouter()

	rec := postFeedback(router, `{"rating":"good"}`)
	if rec.Code != http.StatusCreated {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}
}

func TestSubmitFeedbackRejectsInvalidRating(t *testing.T) {
	router, _ := newTestRouter()

	for _, payload := range []string{
		`{"rating":"amazing"}`,
		`{"comments":"no rating"}`,
		`{"userEmail":"not-an-email","rating":"good"}`,
	} {
		rec := postFeedback(router, payload)
		if rec.Code != http.StatusBadRequest {
			t.Errorf("payload %s: got %d, want 400", payload, rec.Code)
		}
	}
}

func TestListFeedbackWithStats(t *testing.T) {
	router, _ := newTestRouter()

	for _, rating := range []string{"excellent", "excellent", "poor"} {
		rec := postFeedback(router, `{"rating":"`+rating+`"}`)
		if rec.Code != http.StatusCreated {
			t.Fatalf("seed feedback: got %d", rec.Code)
		}
	}

	req := httptest.NewRequest(http.MethodGet, "/api/v1/feedback", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status: got %d, body: %s", rec.Code, rec.Body.String())
	}

	var resp struct {
		Success  bool    `json:"success"`
		Feedback []Entry `json:"feedback"`
		Stats    Stats   `json:"stats"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if len(resp.Feedback) != 3 {
		t.Errorf("entries: got %d, want 3", len(resp.Feedback))
	}
	if resp.Stats.Total != 3 {
		t.Errorf("total: got %d", resp.Stats.Total)
	}
	// excellent=5, excellent=5, poor=2 averages to 4.
	if resp.Stats.AverageRating < 3.99 || resp.Stats.AverageRating > 4.01 {
		t.Errorf("average rating: got %v", resp.Stats.AverageRating)
	}
	if !bytes.Contains(rec.Body.Bytes(), []byte("ratingDistribution")) {
		t.Errorf("body missing rating distribution: %s", rec.Body.String())
	}
}
