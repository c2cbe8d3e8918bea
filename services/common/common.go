package common

import (
	"github.com/urfave/cli"
)

var (
	DomainFlag        = "domain"
	SessionSecretFlag = "secret"
	CORSOriginsFlag   = "cors-allow-origins"
	TemplatesPathFlag = "templates-path"
	AssetsPathFlag    = "assets-path"
)

func RegisterFlags(f []cli.Flag) []cli.Flag {
	f = append(f,
		cli.StringFlag{
			Name:   DomainFlag,
			Usage:  "domain",
			Value:  "http://localhost:5000",
			EnvVar: "DOMAIN",
		},
		cli.StringFlag{
			Name:   SessionSecretFlag,
			Usage:  "session secret",
			Value:  "dev-secret-key",
			EnvVar: "SESSION_SECRET,FLASK_SECRET_KEY",
		},
		cli.StringSliceFlag{
			Name:   CORSOriginsFlag,
			Usage:  "allowed CORS origins",
			Value:  &cli.StringSlice{"*"},
			EnvVar: "CORS_ALLOW_ORIGINS",
		},
		cli.StringFlag{
			Name:   TemplatesPathFlag,
			Usage:  "templates path",
			Value:  "templates",
			EnvVar: "TEMPLATES_PATH",
		},
		cli.StringFlag{
			Name:   AssetsPathFlag,
			Usage:  "assets path",
			Value:  "assets",
			EnvVar: "ASSETS_PATH",
		},
	)

	return f
}

// DefaultGrade is used when a request carries no usable grade.
const DefaultGrade = 5
