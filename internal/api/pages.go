package api

import (
	"bytes"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/metrics"
	"github.com/FaizBuildsStuff/matera-media/internal/content"
	"github.com/FaizBuildsStuff/matera-media/internal/sections"
)

// HomeSlug is the well-known document id of the landing page.
const HomeSlug = "home"

// Render outcomes recorded per page response.
const (
	renderSourceStore    = "store"
	renderSourceDefault  = "default"
	renderSourceFallback = "fallback"
)

// PageHandler serves CMS-composed pages. A page request never fails on
// content problems: missing documents render the built-in defaults, and
// store errors are logged and fall back the same way.
type PageHandler struct {
	fetcher  content.PageFetcher
	renderer *sections.Renderer
	logger   logger.Logger
}

func NewPageHandler(fetcher content.PageFetcher, renderer *sections.Renderer, log logger.Logger) *PageHandler {
	return &PageHandler{fetcher: fetcher, renderer: renderer, logger: log}
}

func (h *PageHandler) Home(c *gin.Context) {
	h.render(c, HomeSlug)
}

func (h *PageHandler) Page(c *gin.Context) {
	h.render(c, c.Param("slug"))
}

func (h *PageHandler) render(c *gin.Context, slug string) {
	var (
		title  string // layout falls back to the site name
		blocks sections.BlockList
		source = renderSourceDefault
	)

	page, err := h.fetcher.FetchPage(c.Request.Context(), slug)
	switch {
	case err != nil:
		h.logger.Error("page fetch failed, rendering defaults", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		source = renderSourceFallback
	case page != nil:
		if page.Title != "" {
			title = page.Title
		}
		blocks = page.Sections
		source = renderSourceStore
	}

	var body bytes.Buffer
	if err := h.renderer.RenderPage(&body, title, blocks); err != nil {
		// Template execution failing is a server bug, not a content problem.
		h.logger.Error("page render failed", map[string]interface{}{
			"slug":  slug,
			"error": err.Error(),
		})
		c.String(http.StatusInternalServerError, "internal error")
		return
	}

	metrics.PageRenders.WithLabelValues(slug, source).Inc()
	c.Data(http.StatusOK, "text/html; charset=utf-8", body.Bytes())
}
