package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"price-optimizer/internal/api/models"

	"github.com/gin-gonic/gin"
)

func TestErrorHandler_PanicEnvelope(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(ErrorHandler())
	router.GET("/boom", func(c *gin.Context) {
		panic("store unavailable")
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/boom", nil)
	router.ServeHTTP(w, req)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", w.Code)
	}
	var resp models.ErrorResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("body is not the error envelope: %v (%s)", err, w.Body.String())
	}
	if resp.Error.Code != "INTERNAL_ERROR" {
		t.Errorf("code = %q, want INTERNAL_ERROR", resp.Error.Code)
	}
	if resp.Error.Message == "" {
		t.Error("message is empty")
	}
}
