package session

import (
	"net/http"

	"github.com/gin-contrib/sessions"
	"github.com/gin-contrib/sessions/cookie"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/urfave/cli"

	"github.com/kiddy-universe/web-api/services/common"
)

const (
	Name          = "kiddy"
	sessionMaxAge = 60 * 60 * 24 * 30
)

func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	return Register(r, c.String(common.SessionSecretFlag))
}

func Register(r *gin.Engine, secret string) error {
	if secret == "" {
		return errors.New("session secret is empty")
	}
	store := cookie.NewStore([]byte(secret))
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   sessionMaxAge,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	r.Use(sessions.Sessions(Name, store))
	return nil
}
