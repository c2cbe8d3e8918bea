package video

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/kiddy-universe/web-api/handlers/common"
	sc "github.com/kiddy-universe/web-api/services/common"
	"github.com/kiddy-universe/web-api/services/video"
)

type Response struct {
	OK      bool        `json:"ok"`
	Subject string      `json:"subject"`
	Grade   int         `json:"grade"`
	Video   video.Video `json:"video"`
}

type Handler struct {
	catalog *video.Catalog
}

func RegisterHandler(r *gin.Engine, catalog *video.Catalog) {
	h := &Handler{
		catalog: catalog,
	}
	r.POST("/video", h.post)
}

func (s *Handler) post(c *gin.Context) {
	p := common.Payload(c)
	subject := s.catalog.Normalize(p.Text("subject"))
	c.JSON(http.StatusOK, &Response{
		OK:      true,
		Subject: subject,
		Grade:   p.Int("grade", sc.DefaultGrade),
		Video:   s.catalog.Pick(subject),
	})
}
