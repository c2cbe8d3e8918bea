package metrics

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestObserveUpstream(t *testing.T) {
	before := testutil.ToFloat64(UpstreamFailures.WithLabelValues("test"))
	ObserveUpstream("test", time.Now(), nil)
	assert.Equal(t, before, testutil.ToFloat64(UpstreamFailures.WithLabelValues("test")))
	ObserveUpstream("test", time.Now(), errors.New("boom"))
	assert.Equal(t, before+1, testutil.ToFloat64(UpstreamFailures.WithLabelValues("test")))
}

func TestRegisterHandler(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	RegisterHandler(r)
	ChatResponses.WithLabelValues("mock").Inc()

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/metrics", nil))
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "kiddy_chat_responses_total")
}
