// Package api wires the HTTP surface: page rendering, the inquiry
// endpoints, health and metrics.
package api

import (
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	apperrors "github.com/FaizBuildsStuff/matera-media/internal/common/errors"
	"github.com/FaizBuildsStuff/matera-media/internal/common/logger"
	"github.com/FaizBuildsStuff/matera-media/internal/common/observability"
	"github.com/FaizBuildsStuff/matera-media/internal/content"
	"github.com/FaizBuildsStuff/matera-media/internal/inquiry"
	"github.com/FaizBuildsStuff/matera-media/internal/sections"
)

// Deps carries everything the router needs. Flow may be nil when the
// progressive form endpoints are disabled.
type Deps struct {
	Logger        logger.Logger
	Observability *observability.Observability
	Pages         content.PageFetcher
	Renderer      *sections.Renderer
	Inquiries     *inquiry.Service
	Flow          *inquiry.Flow
}

// NewRouter builds the gin engine with all routes registered.
func NewRouter(deps Deps) *gin.Engine {
	engine := gin.New()
	engine.Use(gin.Recovery())
	engine.Use(RequestLogger(deps.Logger, deps.Observability))

	errHandler := apperrors.NewHandler(deps.Logger)

	pages := NewPageHandler(deps.Pages, deps.Renderer, deps.Logger)
	inquiries := NewInquiryHandler(deps.Inquiries, errHandler)

	engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	engine.GET("/metrics", gin.WrapH(promhttp.Handler()))

	api := engine.Group("/api")
	api.POST("/inquiry", inquiries.Submit)

	if deps.Flow != nil {
		flow := NewFlowHandler(deps.Flow, errHandler)
		api.POST("/inquiry/flow/start", flow.Start)
		api.POST("/inquiry/flow/:token", flow.Apply)
	}

	engine.GET("/", pages.Home)
	engine.GET("/:slug", pages.Page)

	return engine
}
