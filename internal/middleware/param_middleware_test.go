package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func TestExtractUintParam(t *testing.T) {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/activity/:id", ExtractUintParam("id", "activityID"), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"id": c.MustGet("activityID").(uint)})
	})

	tests := []struct {
		name       string
		path       string
		wantStatus int
	}{
		{"valid id", "/activity/42", http.StatusOK},
		{"not a number", "/activity/abc", http.StatusNotFound},
		{"negative", "/activity/-1", http.StatusNotFound},
		{"zero", "/activity/0", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := httptest.NewRecorder()
			router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, tt.path, nil))
			assert.Equal(t, tt.wantStatus, w.Code)
		})
	}
}
