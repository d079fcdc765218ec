package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupCORSRouter(origins []string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(CORS(origins))
	r.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})
	return r
}

func doRequest(r *gin.Engine, method, origin string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, "/ping", nil)
	if origin != "" {
		req.Header.Set("Origin", origin)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestCORS_AllowedOriginIsEchoed(t *testing.T) {
	r := setupCORSRouter([]string{"https://movies.example.com"})

	w := doRequest(r, http.MethodGet, "https://movies.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://movies.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_DisallowedOriginGetsNoAllowHeader(t *testing.T) {
	r := setupCORSRouter([]string{"https://movies.example.com"})

	w := doRequest(r, http.MethodGet, "https://evil.example.com")

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"))
	// caches must still key on Origin even when the request is refused
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_WildcardAllowsAnyOrigin(t *testing.T) {
	r := setupCORSRouter([]string{"*"})

	w := doRequest(r, http.MethodGet, "https://anywhere.example.com")

	assert.Equal(t, "https://anywhere.example.com", w.Header().Get("Access-Control-Allow-Origin"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
}

func TestCORS_PreflightShortCircuits(t *testing.T) {
	r := setupCORSRouter([]string{"https://movies.example.com"})

	w := doRequest(r, http.MethodOptions, "https://movies.example.com")

	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Equal(t, "GET, POST, OPTIONS", w.Header().Get("Access-Control-Allow-Methods"))
	assert.Equal(t, "Origin", w.Header().Get("Vary"))
	assert.Empty(t, w.Body.String())
}
