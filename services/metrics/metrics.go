package metrics

import (
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	ChatResponses = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiddy_chat_responses_total",
			Help: "Total number of chat responses by provenance",
		},
		[]string{"model"},
	)

	UpstreamFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "kiddy_upstream_failures_total",
			Help: "Total number of failed calls to external services",
		},
		[]string{"service"},
	)

	UpstreamDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name: "kiddy_upstream_duration_seconds",
			Help: "Duration of calls to external services in seconds",
		},
		[]string{"service"},
	)
)

// ObserveUpstream records the duration and outcome of one external call.
func ObserveUpstream(service string, start time.Time, err error) {
	UpstreamDuration.WithLabelValues(service).Observe(time.Since(start).Seconds())
	if err != nil {
		UpstreamFailures.WithLabelValues(service).Inc()
	}
}

func RegisterHandler(r *gin.Engine) {
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
}
