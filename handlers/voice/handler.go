package voice

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/kiddy-universe/web-api/handlers/common"
)

type Response struct {
	OK         bool   `json:"ok"`
	Transcript string `json:"transcript"`
	TTS        string `json:"tts"`
}

// Handler echoes text back. Speech recognition and synthesis
// happen in the browser.
type Handler struct{}

func RegisterHandler(r *gin.Engine) {
	h := &Handler{}
	r.POST("/voice", h.post)
}

func (s *Handler) post(c *gin.Context) {
	text := strings.TrimSpace(common.Payload(c).Text("text"))
	if text == "" {
		common.Error(c, http.StatusBadRequest, "No text provided")
		return
	}
	c.JSON(http.StatusOK, &Response{
		OK:         true,
		Transcript: text,
		TTS:        text,
	})
}
