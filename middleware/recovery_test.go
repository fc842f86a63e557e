package middleware

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

func TestRecoveryMiddleware(t *testing.T) {
	gin.SetMode(gin.TestMode)

	router := gin.New()
	router.Use(RequestID()) // Add request ID first
	router.Use(Recovery())
	router.GET("/contracts/boom", func(c *gin.Context) {
		var contracts []string
		c.JSON(http.StatusOK, gin.H{"first": contracts[3]}) // index out of range
	})
	router.GET("/contracts", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"contracts": []string{}})
	})

	t.Run("panic recovery", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/contracts/boom", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusInternalServerError {
			t.Errorf("Expected status 500, got %d", w.Code)
		}

		body := w.Body.String()
		if !strings.Contains(body, "Internal server error") {
			t.Error("Expected error message in response")
		}
	})

	t.Run("normal request unaffected", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/contracts", nil)
		w := httptest.NewRecorder()

		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200, got %d", w.Code)
		}
	})

	t.Run("router survives a panic", func(t *testing.T) {
		req := httptest.NewRequest("GET", "/contracts/boom", nil)
		router.ServeHTTP(httptest.NewRecorder(), req)

		req = httptest.NewRequest("GET", "/contracts", nil)
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		if w.Code != http.StatusOK {
			t.Errorf("Expected status 200 after panic, got %d", w.Code)
		}
	})
}
