package web

import (
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// CORS allows cross-origin calls from origins. A "*" entry allows any origin.
func CORS(origins []string) gin.HandlerFunc {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", RequestIDHeader},
		ExposeHeaders: []string{RequestIDHeader},
		MaxAge:        12 * time.Hour,
	}
	var allowed []string
	for _, o := range origins {
		if o == "*" {
			cfg.AllowAllOrigins = true
			allowed = nil
			break
		}
		if o != "" {
			allowed = append(allowed, o)
		}
	}
	if !cfg.AllowAllOrigins {
		if len(allowed) == 0 {
			cfg.AllowAllOrigins = true
		} else {
			cfg.AllowOrigins = allowed
			cfg.AllowCredentials = true
		}
	}
	return cors.New(cfg)
}
