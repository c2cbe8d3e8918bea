package health

import (
	"net/http"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gin-gonic/gin"
)

type Response struct {
	Status    string `json:"status"`
	Timestamp string `json:"timestamp"`
	Uptime    string `json:"uptime"`
}

type Handler struct {
	started time.Time
	now     func() time.Time
}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{
		started: time.Now(),
		now:     time.Now,
	}
	r.GET("/health", h.get)
}

func (s *Handler) get(c *gin.Context) {
	now := s.now()
	c.JSON(http.StatusOK, &Response{
		Status:    "ok",
		Timestamp: now.UTC().Format(time.RFC3339),
		Uptime:    strings.TrimSpace(humanize.RelTime(s.started, now, "", "")),
	})
}
