package common

import (
	"net/http"

	"github.com/gin-gonic/gin"

	sc "github.com/kiddy-universe/web-api/services/common"
)

type ErrorResponse struct {
	OK    bool   `json:"ok"`
	Error string `json:"error"`
}

// MaxPayloadSize bounds request bodies. Larger bodies read as an empty payload.
const MaxPayloadSize = 4 << 20

// Payload reads the request body leniently, see sc.ReadPayload.
func Payload(c *gin.Context) sc.Payload {
	if c.Request.Body == nil {
		return sc.Payload{}
	}
	return sc.ReadPayload(http.MaxBytesReader(c.Writer, c.Request.Body, MaxPayloadSize))
}

func Error(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, &ErrorResponse{
		OK:    false,
		Error: msg,
	})
}

// ValidationError answers 400 with the error message and reports
// whether err was a validation error at all.
func ValidationError(c *gin.Context, err error) bool {
	ve, ok := sc.IsValidationError(err)
	if !ok {
		return false
	}
	Error(c, http.StatusBadRequest, ve.Message)
	return true
}
