package template

import (
	"fmt"
	"html/template"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-contrib/multitemplate"
	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
	"github.com/yargevad/filepathx"

	"github.com/kiddy-universe/web-api/services/common"
)

type Manager struct {
	re       multitemplate.Renderer
	path     string
	funcs    template.FuncMap
	builders []*Builder
}

type Builder struct {
	pattern string
	layout  string
}

type Template struct {
	name string
}

func NewManager(c *cli.Context, re multitemplate.Renderer) *Manager {
	domain := strings.TrimSuffix(c.String(common.DomainFlag), "/")
	return NewManagerWithPath(c.String(common.TemplatesPathFlag), re).WithFuncs(template.FuncMap{
		"domain": func() string { return domain },
	})
}

func NewManagerWithPath(path string, re multitemplate.Renderer) *Manager {
	return &Manager{
		re:   re,
		path: path,
		funcs: template.FuncMap{
			"domain": func() string { return "" },
		},
	}
}

func (s *Manager) WithFuncs(funcs template.FuncMap) *Manager {
	for k, v := range funcs {
		s.funcs[k] = v
	}
	return s
}

// MustRegisterViews registers all views matching pattern under views/.
// Templates are parsed later by Init.
func (s *Manager) MustRegisterViews(pattern string) *Builder {
	b := &Builder{
		pattern: pattern,
		layout:  "main",
	}
	s.builders = append(s.builders, b)
	return b
}

func (b *Builder) WithLayout(name string) *Builder {
	b.layout = name
	return b
}

func (b *Builder) Build(name string) *Template {
	return &Template{name: name}
}

func (t *Template) HTML(code int, c *gin.Context, data any) {
	c.HTML(code, t.name, data)
}

func (s *Manager) Init() (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("failed to parse templates: %v", r)
		}
	}()
	partials, err := filepathx.Glob(filepath.Join(s.path, "partials", "**", "*.html"))
	if err != nil {
		return errors.Wrap(err, "failed to glob partials")
	}
	viewsDir := filepath.Join(s.path, "views")
	for _, b := range s.builders {
		layout := filepath.Join(s.path, "layouts", b.layout+".html")
		if _, err := os.Stat(layout); err != nil {
			return errors.Wrapf(err, "layout %v not found", b.layout)
		}
		views, err := filepathx.Glob(filepath.Join(viewsDir, b.pattern+".html"))
		if err != nil {
			return errors.Wrapf(err, "failed to glob views %v", b.pattern)
		}
		if len(views) == 0 {
			return errors.Errorf("no views found for pattern %v in %v", b.pattern, viewsDir)
		}
		for _, v := range views {
			rel, err := filepath.Rel(viewsDir, v)
			if err != nil {
				return err
			}
			name := filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
			files := append([]string{layout}, partials...)
			files = append(files, v)
			s.re.AddFromFilesFuncs(name, s.funcs, files...)
			log.Debugf("template %v registered with layout %v", name, b.layout)
		}
	}
	return nil
}

func (s *Manager) String() string {
	return fmt.Sprintf("templates at %v", s.path)
}
