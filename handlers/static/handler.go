package static

import (
	"os"
	"path/filepath"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"

	"github.com/kiddy-universe/web-api/services/common"
)

func RegisterHandler(c *cli.Context, r *gin.Engine) error {
	return Register(r, c.String(common.AssetsPathFlag))
}

// Register serves path under /assets. A missing path only disables static files.
func Register(r *gin.Engine, path string) error {
	fi, err := os.Stat(path)
	if err != nil {
		log.WithError(err).Warnf("assets path %v unavailable, static files disabled", path)
		return nil
	}
	if !fi.IsDir() {
		return errors.Errorf("assets path %v is not a directory", path)
	}
	r.Static("/assets", path)
	if _, err := os.Stat(filepath.Join(path, "favicon.ico")); err == nil {
		r.StaticFile("/favicon.ico", filepath.Join(path, "favicon.ico"))
	}
	return nil
}
