package main

import (
	"fmt"
	"log"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/KauaBAG/IfControll/api/swagger"
	"github.com/KauaBAG/IfControll/internal/handler"
	"github.com/KauaBAG/IfControll/internal/middleware"
	"github.com/KauaBAG/IfControll/internal/repository"
	"github.com/KauaBAG/IfControll/internal/service"
	"github.com/KauaBAG/IfControll/pkg/cache"
	"github.com/KauaBAG/IfControll/pkg/config"
	"github.com/KauaBAG/IfControll/pkg/database"
	appErrors "github.com/KauaBAG/IfControll/pkg/errors"
	"github.com/KauaBAG/IfControll/pkg/logger"
	corsmiddleware "github.com/KauaBAG/IfControll/pkg/middleware/cors"
	reqidmiddleware "github.com/KauaBAG/IfControll/pkg/middleware/requestid"
	"github.com/KauaBAG/IfControll/pkg/response"
)

// @title IFControll Cronologia API
// @version 3.0
// @description REST API for the vehicle maintenance chronology
// @BasePath /
// @schemes http

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

	db, err := database.NewPostgres(cfg.Database)
	if err != nil {
		logr.Sugar().Fatalw("database connection failed", "error", err)
	}
	defer db.Close()

	var cacheRepo service.CacheRepository
	if cfg.Placas.CacheEnabled {
		client, err := cache.NewRedis(cfg.Redis)
		if err != nil {
			logr.Sugar().Warnw("redis unavailable, plate cache disabled", "error", err)
		} else {
			defer client.Close()
			cacheRepo = repository.NewCacheRepository(client)
		}
	}

	metricsSvc := service.NewMetricsService()
	cacheSvc := service.NewCacheService(cacheRepo, metricsSvc, cfg.Placas.CacheTTL, logr, cacheRepo != nil)

	manutencaoRepo := repository.NewManutencaoRepository(db)
	statusRepo := repository.NewStatusUpdateRepository(db)
	placaRepo := repository.NewPlacaRepository(db)

	cronologiaSvc := service.NewCronologiaService(manutencaoRepo, statusRepo, cacheSvc, logr)
	placaSvc := service.NewPlacaService(placaRepo, cacheSvc, logr)
	exportSvc := service.NewExportService(manutencaoRepo, logr)

	manutencaoHandler := handler.NewManutencaoHandler(cronologiaSvc)
	statusHandler := handler.NewStatusUpdateHandler(cronologiaSvc)
	placaHandler := handler.NewPlacaHandler(placaSvc)
	pingHandler := handler.NewPingHandler()
	exportHandler := handler.NewExportHandler(exportSvc)

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(reqidmiddleware.Middleware())
	r.Use(logger.GinMiddleware(logr))
	r.Use(corsmiddleware.New())
	r.Use(middleware.Metrics(metricsSvc))
	r.Use(middleware.APIKey(cfg.APISecret, "/metrics", "/docs"))

	r.GET("/records", manutencaoHandler.List)
	r.POST("/records", manutencaoHandler.Create)
	r.GET("/records/:id", manutencaoHandler.Get)
	r.PUT("/records/:id", manutencaoHandler.Update)
	r.DELETE("/records/:id", manutencaoHandler.Delete)
	r.POST("/status_update/:id", statusHandler.Create)
	// A status note without a target case id never routes anywhere.
	r.Any("/status_update", func(c *gin.Context) {
		response.Error(c, appErrors.ErrMethodNotAllowed)
	})
	r.GET("/plates", placaHandler.List)
	r.GET("/ping", pingHandler.Ping)
	if cfg.Export.Enabled {
		r.GET("/export/records", exportHandler.Export)
	}

	r.GET("/metrics", gin.WrapH(metricsSvc.Handler()))
	if cfg.Env != config.EnvProduction {
		r.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	r.NoMethod(func(c *gin.Context) {
		response.Error(c, appErrors.ErrMethodNotAllowed)
	})
	r.NoRoute(func(c *gin.Context) {
		resource := strings.Split(strings.Trim(c.Request.URL.Path, "/"), "/")[0]
		response.Error(c, appErrors.Clone(appErrors.ErrNotFound, "Rota desconhecida: /"+resource))
	})

	addr := fmt.Sprintf(":%d", cfg.Port)
	logr.Sugar().Infow("server starting", "addr", addr, "env", cfg.Env, "prefix", cfg.APIPrefix)
	srv := &http.Server{
		Addr:    addr,
		Handler: middleware.MountRewrite(cfg.APIPrefix, r),
	}
	if err := srv.ListenAndServe(); err != nil {
		logr.Sugar().Fatalw("server failed", "error", err)
	}
}
