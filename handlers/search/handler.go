package search

import (
	"context"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"

	"github.com/kiddy-universe/web-api/handlers/common"
	"github.com/kiddy-universe/web-api/services/wikipedia"
)

type Searcher interface {
	Search(ctx context.Context, query string) ([]wikipedia.Result, error)
}

type Response struct {
	OK      bool               `json:"ok"`
	Results []wikipedia.Result `json:"results"`
}

type Handler struct {
	searcher Searcher
}

func RegisterHandler(r *gin.Engine, searcher Searcher) {
	h := &Handler{
		searcher: searcher,
	}
	r.POST("/search", h.post)
}

func (s *Handler) post(c *gin.Context) {
	query := strings.TrimSpace(common.Payload(c).Text("query"))
	if query == "" {
		common.Error(c, http.StatusBadRequest, "Query is required")
		return
	}
	results, err := s.searcher.Search(c.Request.Context(), query)
	if err != nil {
		log.WithError(err).WithField("query", query).Error("search failed")
		common.Error(c, http.StatusInternalServerError, "Search failed")
		return
	}
	if results == nil {
		results = []wikipedia.Result{}
	}
	c.JSON(http.StatusOK, &Response{
		OK:      true,
		Results: results,
	})
}
