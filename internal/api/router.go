// Package api wires the HTTP surface of the valuation model.
package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"btc-energy-value/internal/api/handlers"
	"btc-energy-value/internal/api/middleware"
	"btc-energy-value/internal/api/models"
	"btc-energy-value/internal/model"
	"btc-energy-value/internal/observability"
	"btc-energy-value/internal/valuation"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// RouterConfig holds what the router needs to serve requests.
type RouterConfig struct {
	Log            *zap.SugaredLogger
	Engine         *valuation.Engine
	History        model.HistoricalTable
	AllowedOrigins []string
	// StaticDir, when it exists, is served as a single-page app for non-API routes.
	StaticDir string
}

// NewRouter builds the gin engine with middleware and routes.
func NewRouter(cfg RouterConfig) *gin.Engine {
	log := cfg.Log
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	router := gin.New()
	router.Use(middleware.ErrorHandler(log))
	router.Use(middleware.CORS(cfg.AllowedOrigins))
	router.Use(middleware.Logger(log))
	router.Use(middleware.Metrics())

	valuationHandler := handlers.NewValuationHandler(cfg.Engine, cfg.History, log)
	halvingHandler := handlers.NewHalvingHandler(nil)
	if cfg.Engine != nil {
		halvingHandler = handlers.NewHalvingHandler(cfg.Engine.Schedule)
	}
	observability.SetHistoryYears(len(cfg.History))

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "history_years": len(cfg.History)})
	})
	router.GET("/metrics", gin.WrapH(observability.Handler()))

	api := router.Group("/api/v1")
	{
		api.GET("/scenarios", handlers.ListScenarios)
		api.GET("/halvings", halvingHandler.ListHalvings)
		api.GET("/history", valuationHandler.GetHistory)

		api.POST("/valuation", valuationHandler.Valuate)
		api.POST("/series", valuationHandler.Series)
		api.POST("/compare", valuationHandler.Compare)
	}

	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, models.ErrorResponse{
			Error: models.ErrorDetail{
				Code:    "NOT_FOUND",
				Message: "no route for " + c.Request.URL.Path,
			},
		})
	}

	if info, err := os.Stat(cfg.StaticDir); cfg.StaticDir != "" && err == nil && info.IsDir() {
		router.Static("/assets", filepath.Join(cfg.StaticDir, "assets"))
		index := filepath.Join(cfg.StaticDir, "index.html")
		router.NoRoute(func(c *gin.Context) {
			if strings.HasPrefix(c.Request.URL.Path, "/api") {
				notFound(c)
				return
			}
			c.File(index)
		})
		log.Infow("startup", "status", "serving static files", "dir", cfg.StaticDir)
	} else {
		router.NoRoute(notFound)
	}

	return router
}
