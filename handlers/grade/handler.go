package grade

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kiddy-universe/web-api/handlers/common"
	"github.com/kiddy-universe/web-api/services/grade"
)

const SessionKey = "grade"

type Response struct {
	OK      bool   `json:"ok"`
	Grade   int    `json:"grade"`
	Message string `json:"message"`
}

type Handler struct{}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{}
	r.POST("/grade", h.post)
}

func (s *Handler) post(c *gin.Context) {
	p := common.Payload(c)
	n, err := grade.Parse(p.Text("grade"))
	if err != nil {
		if !common.ValidationError(c, err) {
			common.Error(c, http.StatusInternalServerError, "Invalid grade")
		}
		return
	}
	session := sessions.Default(c)
	session.Set(SessionKey, n)
	if err := session.Save(); err != nil {
		log.WithError(err).Warn("failed to save grade to session")
	}
	c.JSON(http.StatusOK, &Response{
		OK:      true,
		Grade:   n,
		Message: grade.Welcome(n),
	})
}
