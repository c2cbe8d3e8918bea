package index

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiddy-universe/web-api/handlers/common"
	"github.com/kiddy-universe/web-api/services/template"
)

type Data struct {
	Panel  string
	Panels []common.Panel
}

type Handler struct {
	tb *template.Builder
}

func RegisterHandler(r *gin.Engine, tm *template.Manager) {
	h := &Handler{
		tb: tm.MustRegisterViews("index").WithLayout("main"),
	}
	r.GET("/", h.index)
	for _, panel := range common.Panels {
		r.GET("/"+panel.Url, h.index)
	}
}

func (s *Handler) index(c *gin.Context) {
	s.tb.Build("index").HTML(http.StatusOK, c, &Data{
		Panel:  strings.TrimPrefix(c.Request.URL.Path, "/"),
		Panels: common.Panels,
	})
}
