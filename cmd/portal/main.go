package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/rimedu/resultats-portal-api/api/swagger"
	"github.com/rimedu/resultats-portal-api/internal/auth"
	"github.com/rimedu/resultats-portal-api/internal/handler"
	internalmiddleware "github.com/rimedu/resultats-portal-api/internal/middleware"
	"github.com/rimedu/resultats-portal-api/internal/service"
	"github.com/rimedu/resultats-portal-api/internal/upstream"
	"github.com/rimedu/resultats-portal-api/pkg/cache"
	"github.com/rimedu/resultats-portal-api/pkg/config"
	"github.com/rimedu/resultats-portal-api/pkg/logger"
	corsmiddleware "github.com/rimedu/resultats-portal-api/pkg/middleware/cors"
	reqidmiddleware "github.com/rimedu/resultats-portal-api/pkg/middleware/requestid"
)

// @title Portail des Résultats API
// @version 1.0.0
// @description Public portal for Mauritanian exam results (Bac, BEPC, Concours)
// @BasePath /api/v1
// @schemes http https

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logr, err := logger.New(cfg)
	if err != nil {
		log.Fatalf("failed to init logger: %v", err)
	}
	defer logr.Sync() //nolint:errcheck

	if cfg.Env == config.EnvProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	metricsSvc := service.NewMetricsService()

	var sharedCache cache.Cache
	if cfg.Redis.Enabled {
		redisClient, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Fatalw("redis connection failed", "error", err)
		}
		defer redisClient.Close() //nolint:errcheck
		sharedCache = cache.NewRedisCache(redisClient)
	}

	gateway := upstream.New(cfg.Upstream, logr, upstream.WithObserver(metricsSvc.ObserveUpstream))

	validate := validator.New()
	tokens := auth.NewTokenStore()
	monitor := service.NewUploadMonitor(gateway, cfg.Uploads, logr)
	defer monitor.Stop()

	searchSvc := service.NewSearchService(gateway, logr)
	referenceSvc := service.NewReferenceService(gateway, sharedCache, cfg.Cache.ReferenceTTL, metricsSvc, logr)
	statsSvc := service.NewStatsService(gateway, sharedCache, cfg.Cache.StatsTTL, logr)
	shareSvc := service.NewShareService(gateway, cfg.Share.BaseURL, validate, logr)
	slipSvc := service.NewSlipService(gateway, nil, logr)
	adminSvc := service.NewAdminService(gateway, tokens, monitor, validate, logr)
	exportSvc := service.NewExportService(gateway, nil, logr)

	searchHandler := handler.NewSearchHandler(searchSvc)
	resultHandler := handler.NewResultHandler(searchSvc, slipSvc, shareSvc)
	referenceHandler := handler.NewReferenceHandler(referenceSvc)
	statsHandler := handler.NewStatsHandler(statsSvc)
	adminHandler := handler.NewAdminHandler(adminSvc, exportSvc)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New(cfg.CORS.AllowedOrigins))
	r.Use(internalmiddleware.Metrics(metricsSvc))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/ready", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	})

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))

	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	api := r.Group(cfg.APIPrefix)

	results := api.Group("/results")
	results.GET("/search", searchHandler.Search)
	results.GET("/lookup", searchHandler.Lookup)
	results.GET("/:id", resultHandler.Get)
	results.GET("/:id/slip", resultHandler.Slip)
	results.POST("/:id/share", resultHandler.Share)

	references := api.Group("/references")
	references.GET("/wilayas", referenceHandler.Wilayas)
	references.GET("/etablissements", referenceHandler.Etablissements)
	references.GET("/series", referenceHandler.Series)
	references.GET("/bootstrap", referenceHandler.Bootstrap)

	api.GET("/sessions", referenceHandler.Sessions)

	stats := api.Group("/stats")
	stats.GET("/global", statsHandler.Global)
	stats.GET("/wilayas/:id", statsHandler.Wilaya)
	stats.GET("/etablissements/:id", statsHandler.Etablissement)
	stats.GET("/top-students", statsHandler.TopStudents)
	stats.GET("/top-schools", statsHandler.TopSchools)

	admin := api.Group("/admin")
	admin.POST("/login", adminHandler.Login)

	secured := admin.Group("", internalmiddleware.RequireAdmin(adminSvc))
	secured.POST("/logout", adminHandler.Logout)
	secured.POST("/sessions", adminHandler.CreateSession)
	secured.PATCH("/sessions/:id/publish", adminHandler.PublishSession)
	secured.POST("/uploads", adminHandler.Upload)
	secured.GET("/uploads/:task_id", adminHandler.UploadStatus)
	secured.DELETE("/uploads/:task_id", adminHandler.CancelUpload)
	secured.GET("/exports/results", adminHandler.ExportResults)

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "upstream", cfg.Upstream.BaseURL)
	if err := r.Run(addr); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
