package main

import (
	"context"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"

	"github.com/piresc/sitetrack/internal/pkg/circuitbreaker"
	"github.com/piresc/sitetrack/internal/pkg/database"
	"github.com/piresc/sitetrack/internal/pkg/health"
	"github.com/piresc/sitetrack/internal/pkg/logger"
	"github.com/piresc/sitetrack/internal/pkg/metrics"
	"github.com/piresc/sitetrack/internal/pkg/middleware"
	"github.com/piresc/sitetrack/internal/pkg/models"
	nsqpkg "github.com/piresc/sitetrack/internal/pkg/nsq"
	"github.com/piresc/sitetrack/internal/utils"
	registryHandler "github.com/piresc/sitetrack/services/registry/handler/http"
	registryRepository "github.com/piresc/sitetrack/services/registry/repository"
	registryUsecase "github.com/piresc/sitetrack/services/registry/usecase"
	"github.com/piresc/sitetrack/services/tracking"
	trackingGateway "github.com/piresc/sitetrack/services/tracking/gateway"
	trackingHandler "github.com/piresc/sitetrack/services/tracking/handler"
	trackingRepository "github.com/piresc/sitetrack/services/tracking/repository"
	trackingUsecase "github.com/piresc/sitetrack/services/tracking/usecase"
)

// app is the wired HTTP surface plus the handles serve needs for startup and shutdown
type app struct {
	echo     *echo.Echo
	tracking *trackingHandler.Handler
	metrics  *metrics.Collector
}

// newApp wires repositories, usecases and handlers. redisClient and producer
// are optional; without them the position cache lives in memory and events are
// not published.
func newApp(
	configs *models.Config,
	zapLogger *logger.ZapLogger,
	reg prometheus.Registerer,
	redisClient *database.RedisClient,
	producer *nsqpkg.Producer,
) (*app, error) {
	collector, err := metrics.NewCollector(reg)
	if err != nil {
		return nil, err
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = utils.NewRequestValidator()
	e.Server.ReadTimeout = time.Duration(configs.Server.ReadTimeout) * time.Second
	e.Server.WriteTimeout = time.Duration(configs.Server.WriteTimeout) * time.Second

	e.Use(middleware.PanicRecoveryMiddleware(zapLogger))
	e.Use(middleware.RequestIDMiddleware())
	e.Use(middleware.LoggerMiddleware(middleware.NewAccessLogger(configs.Logger.Level)))
	e.Use(collector.EchoMiddleware())

	e.GET("/metrics", echo.WrapHandler(collector.Handler()))

	healthService := health.NewHealthService()
	if redisClient != nil {
		healthService.AddChecker("redis", health.CheckerFunc(redisClient.Ping))
	}
	if producer != nil {
		healthService.AddChecker("nsq", health.CheckerFunc(func(context.Context) error {
			return producer.Ping()
		}))
	}
	health.RegisterHealthEndpoints(e, configs.App.Name, configs.App.Version, healthService)

	// Registry
	registryRepo := registryRepository.NewRegistryRepository()
	registryUC := registryUsecase.NewRegistryUC(registryRepo, configs)
	registryHandler.NewRegistryHandler(registryUC).RegisterRoutes(e)

	// Tracking
	var positionCache tracking.PositionCache
	var ingest []echo.MiddlewareFunc
	if redisClient != nil {
		positionCache = trackingRepository.NewGuardedPositionCache(
			trackingRepository.NewRedisPositionCache(redisClient, configs.Tracking.PositionCacheTTL),
			circuitbreaker.New(circuitbreaker.DefaultConfig("redis-position-cache"), zapLogger),
		)
		if configs.Tracking.RateLimit > 0 {
			ingest = append(ingest, middleware.BeaconRateLimiter(
				configs.Tracking.RateLimit, configs.Tracking.RateLimitPeriod, redisClient.GetClient()))
		}
	} else {
		positionCache = trackingRepository.NewMemoryPositionCache(configs.Tracking.PositionCacheTTL, models.SystemClock{})
	}

	var publisher trackingGateway.Publisher
	if producer != nil {
		publisher = producer
	}

	trackingUC := trackingUsecase.NewTrackingUC(
		trackingRepository.NewBeaconRepository(),
		registryUC,
		positionCache,
		trackingGateway.NewTrackingGW(publisher),
		configs,
		trackingUsecase.WithMetrics(collector),
	)
	handler := trackingHandler.NewHandler(trackingUC, configs.NSQ, collector, ingest...)
	handler.RegisterRoutes(e)

	return &app{echo: e, tracking: handler, metrics: collector}, nil
}
