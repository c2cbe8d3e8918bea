package common

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"

	sc "github.com/kiddy-universe/web-api/services/common"
)

func payloadRouter(got *sc.Payload) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.POST("/", func(c *gin.Context) {
		*got = Payload(c)
		c.Status(http.StatusNoContent)
	})
	return r
}

func TestPayload(t *testing.T) {
	t.Run("small body", func(t *testing.T) {
		var got sc.Payload
		w := httptest.NewRecorder()
		payloadRouter(&got).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(`{"text":"hi"}`)))
		assert.Equal(t, "hi", got.Text("text"))
	})

	t.Run("oversized body is empty", func(t *testing.T) {
		var got sc.Payload
		body := `{"text":"` + strings.Repeat("a", MaxPayloadSize) + `"}`
		w := httptest.NewRecorder()
		payloadRouter(&got).ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/", strings.NewReader(body)))
		assert.NotNil(t, got)
		assert.Empty(t, got)
	})
}

func TestError(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/", func(c *gin.Context) {
		Error(c, http.StatusBadRequest, "Query is required")
	})
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"ok":false,"error":"Query is required"}`, w.Body.String())
}
