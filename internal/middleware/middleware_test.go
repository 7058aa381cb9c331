// internal/middleware/middleware_test.go
package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/javajoker/inventory-tracker/internal/config"
	"github.com/javajoker/inventory-tracker/internal/i18n"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newEngine(handlers ...gin.HandlerFunc) *gin.Engine {
	r := gin.New()
	r.Use(handlers...)
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"actor":      c.GetString("actor"),
			"lang":       c.GetString("lang"),
			"request_id": c.GetString("request_id"),
		})
	})
	r.GET("/panic", func(c *gin.Context) {
		panic("boom")
	})
	return r
}

func get(t *testing.T, r http.Handler, path string, headers map[string]string) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	req := httptest.NewRequest(http.MethodGet, path, nil)
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]interface{}
	if w.Body.Len() > 0 {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	}
	return w, body
}

func TestActor(t *testing.T) {
	r := newEngine(Actor("admin"))

	_, body := get(t, r, "/ping", nil)
	assert.Equal(t, "admin", body["actor"])

	_, body = get(t, r, "/ping", map[string]string{ActorHeader: "  clerk "})
	assert.Equal(t, "clerk", body["actor"])
}

func TestRequestID(t *testing.T) {
	r := newEngine(RequestID())

	w, body := get(t, r, "/ping", nil)
	generated := w.Header().Get(RequestIDHeader)
	assert.Len(t, generated, 36)
	assert.Equal(t, generated, body["request_id"])

	w, _ = get(t, r, "/ping", map[string]string{RequestIDHeader: "abc-123"})
	assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
}

func TestParseLanguage(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))

	tests := map[string]string{
		"":                        "en",
		"zh-TW,zh;q=0.9,en;q=0.8": "zh_TW",
		"zh_TW":                   "zh_TW",
		"en-US":                   "en",
		"fr-FR,fr;q=0.9":          "en",
	}
	for header, want := range tests {
		assert.Equal(t, want, parseLanguage(header), "header %q", header)
	}
}

func TestRecovery(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))
	r := newEngine(Recovery())

	w, body := get(t, r, "/panic", nil)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Equal(t, false, body["success"])
	errBody := body["error"].(map[string]interface{})
	assert.Equal(t, "INTERNAL_ERROR", errBody["code"])
	assert.NotContains(t, w.Body.String(), "boom")
}

func TestRateLimiter(t *testing.T) {
	require.NoError(t, i18n.Initialize("en"))
	limiter := NewRateLimiter(1, 2)
	r := newEngine(limiter.Middleware())

	for i := 0; i < 2; i++ {
		w, _ := get(t, r, "/ping", nil)
		assert.Equal(t, http.StatusOK, w.Code)
	}

	w, body := get(t, r, "/ping", nil)
	assert.Equal(t, http.StatusTooManyRequests, w.Code)
	assert.Equal(t, "RATE_LIMITED", body["error"].(map[string]interface{})["code"])
}

func TestRateLimiterDisabled(t *testing.T) {
	r := newEngine(UploadRateLimiter(0).Middleware())

	for i := 0; i < 50; i++ {
		w, _ := get(t, r, "/ping", nil)
		require.Equal(t, http.StatusOK, w.Code)
	}
}

func TestRateLimiterCleanup(t *testing.T) {
	limiter := NewRateLimiter(1, 1)
	limiter.getVisitor("10.0.0.1")
	require.Len(t, limiter.visitors, 1)

	limiter.cleanupVisitors(time.Now())
	assert.Len(t, limiter.visitors, 1)

	limiter.cleanupVisitors(time.Now().Add(5 * time.Minute))
	assert.Empty(t, limiter.visitors)
}

func TestCORS(t *testing.T) {
	r := newEngine(CORS(config.CORSConfig{AllowedOrigins: []string{"http://localhost:3000"}}))

	w, _ := get(t, r, "/ping", map[string]string{"Origin": "http://localhost:3000"})
	assert.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))

	w, _ = get(t, r, "/ping", map[string]string{"Origin": "http://other.test"})
	assert.Empty(t, w.Header().Get("Access-Control-Allow-Origin"), "unlisted origin")

	// httptest requests target example.com, so use a different origin
	r = newEngine(CORS(config.CORSConfig{AllowedOrigins: []string{"*"}}))
	w, _ = get(t, r, "/ping", map[string]string{"Origin": "http://other.test"})
	assert.Equal(t, "*", w.Header().Get("Access-Control-Allow-Origin"))
}
