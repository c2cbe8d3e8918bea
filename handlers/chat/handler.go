package chat

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kiddy-universe/web-api/handlers/common"
	"github.com/kiddy-universe/web-api/services/chat"
	sc "github.com/kiddy-universe/web-api/services/common"
	"github.com/kiddy-universe/web-api/services/metrics"
)

const defaultSubject = "general"

type Response struct {
	OK       bool           `json:"ok"`
	Response *chat.Response `json:"response"`
}

type Handler struct {
	responder chat.Responder
}

func RegisterHandler(r *gin.Engine, responder chat.Responder) {
	h := &Handler{
		responder: responder,
	}
	r.POST("/chat", h.post)
}

func (s *Handler) bindRequest(p sc.Payload) *chat.Request {
	subject := p.Text("subject")
	if subject == "" {
		subject = defaultSubject
	}
	return &chat.Request{
		Message: strings.TrimSpace(p.Text("message")),
		Mode:    chat.Mode(p.TextOr("mode", string(chat.ModeChat))),
		Grade:   p.Int("grade", sc.DefaultGrade),
		Subject: strings.TrimSpace(subject),
		Model:   strings.TrimSpace(p.Text("model")),
		Images:  p.Strings("images"),
	}
}

func (s *Handler) post(c *gin.Context) {
	req := s.bindRequest(common.Payload(c))
	if req.Message == "" {
		common.Error(c, http.StatusBadRequest, "Message is required")
		return
	}
	res, err := s.responder.Respond(c.Request.Context(), req)
	if err != nil {
		log.WithError(err).Error("failed to respond to chat")
		common.Error(c, http.StatusInternalServerError, "Chat failed")
		return
	}
	metrics.ChatResponses.WithLabelValues(res.Model).Inc()
	c.JSON(http.StatusOK, &Response{
		OK:       true,
		Response: res,
	})
}
