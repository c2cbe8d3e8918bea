package voice

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func perform(body string) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(r)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/voice", strings.NewReader(body)))
	return w
}

func TestVoice_Echo(t *testing.T) {
	w := perform(`{"text":"  hello  "}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"ok":true,"transcript":"hello","tts":"hello"}`, w.Body.String())
}

func TestVoice_Idempotent(t *testing.T) {
	first := perform(`{"text":"The cat sat."}`)
	second := perform(`{"text":"The cat sat."}`)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestVoice_Empty(t *testing.T) {
	for _, body := range []string{`{"text":"   "}`, `{}`, `{"text":null}`, `[]`, ``} {
		w := perform(body)
		assert.Equal(t, http.StatusBadRequest, w.Code, body)
		assert.JSONEq(t, `{"ok":false,"error":"No text provided"}`, w.Body.String(), body)
	}
}
