package main

import (
	"net/http"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	cs "github.com/webtor-io/common-services"

	"github.com/kiddy-universe/web-api/handlers/catalog"
	wc "github.com/kiddy-universe/web-api/handlers/chat"
	wg "github.com/kiddy-universe/web-api/handlers/grade"
	"github.com/kiddy-universe/web-api/handlers/health"
	wi "github.com/kiddy-universe/web-api/handlers/index"
	ws "github.com/kiddy-universe/web-api/handlers/search"
	sess "github.com/kiddy-universe/web-api/handlers/session"
	sta "github.com/kiddy-universe/web-api/handlers/static"
	wv "github.com/kiddy-universe/web-api/handlers/video"
	"github.com/kiddy-universe/web-api/handlers/voice"
	"github.com/kiddy-universe/web-api/services/common"
	"github.com/kiddy-universe/web-api/services/metrics"
	"github.com/kiddy-universe/web-api/services/template"
	"github.com/kiddy-universe/web-api/services/video"
	w "github.com/kiddy-universe/web-api/services/web"
	"github.com/kiddy-universe/web-api/services/wikipedia"
)

func makeServeCMD() cli.Command {
	serveCMD := cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Serves web server",
		Action:  serve,
	}
	configureServe(&serveCMD)
	return serveCMD
}

func configureServe(c *cli.Command) {
	c.Flags = cs.RegisterProbeFlags(c.Flags)
	c.Flags = cs.RegisterPprofFlags(c.Flags)
	c.Flags = w.RegisterFlags(c.Flags)
	c.Flags = common.RegisterFlags(c.Flags)
	c.Flags = wikipedia.RegisterFlags(c.Flags)
	c.Flags = configureResponder(c.Flags)
}

func serve(c *cli.Context) error {
	// Setting HTTP Client
	cl := http.DefaultClient

	// Setting template renderer
	re := multitemplate.NewRenderer()

	// Setting TemplateManager
	tm := template.NewManager(c, re)

	var servers []cs.Servable
	// Setting Probe
	probe := cs.NewProbe(c)
	if probe != nil {
		servers = append(servers, probe)
		defer probe.Close()
	}

	// Setting Pprof
	pprof := cs.NewPprof(c)
	if pprof != nil {
		servers = append(servers, pprof)
		defer pprof.Close()
	}

	// Setting Gin
	r := gin.New()
	r.RedirectTrailingSlash = false
	r.HTMLRender = re
	r.Use(gin.Recovery(), w.RequestID(), w.Logger(), w.CORS(c.StringSlice(common.CORSOriginsFlag)))

	// Setting Web
	web, err := w.New(c, r)
	if err != nil {
		return err
	}
	servers = append(servers, web)
	defer web.Close()

	// Setting Session
	err = sess.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting Static
	err = sta.RegisterHandler(c, r)
	if err != nil {
		return err
	}

	// Setting Metrics
	metrics.RegisterHandler(r)

	// Setting Health
	health.RegisterHandler(r)

	// Setting IndexHandler
	wi.RegisterHandler(r, tm)

	// Setting Catalog
	catalog.RegisterHandler(r)

	// Setting GradeHandler
	wg.RegisterHandler(r)

	// Setting VideoHandler
	wv.RegisterHandler(r, video.NewCatalog())

	// Setting VoiceHandler
	voice.RegisterHandler(r)

	// Setting ChatHandler
	wc.RegisterHandler(r, makeResponder(c, cl))

	// Setting Wikipedia API
	wapi := wikipedia.New(c, cl)

	// Setting SearchHandler
	ws.RegisterHandler(r, wapi)

	// Render templates
	err = tm.Init()
	if err != nil {
		return err
	}

	// Setting Serve
	serve := cs.NewServe(servers...)

	// And SERVE!
	err = serve.Serve()
	if err != nil {
		log.WithError(err).Error("got server error")
	}
	return err
}
