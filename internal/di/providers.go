package di

import (
	"fmt"
	"io"

	"github.com/google/wire"

	"StationPulse/internal/domain/repository"
	domsvc "StationPulse/internal/domain/service"
	"StationPulse/internal/handler/api"
	reposrc "StationPulse/internal/repository"
	"StationPulse/internal/services/analytics"
	"StationPulse/internal/usecase"
	"StationPulse/pkg/cache"
	"StationPulse/pkg/config"
	apphttp "StationPulse/pkg/http"
	"StationPulse/pkg/http/middleware"
	applogger "StationPulse/pkg/logger"
	"StationPulse/pkg/metrics"
	"StationPulse/pkg/server"
)

// ProviderSet wires the full application graph.
var ProviderSet = wire.NewSet(
	ProvideLogger,
	ProvideMetrics,
	ProvideCache,
	ProvideSnapshotSource,
	ProvideAnalytics,
	ProvideDashboard,
	ProvideHandler,
	ProvideServer,
	ProvideApp,
)

func ProvideLogger(cfg *config.Config) (*applogger.Logger, error) {
	return applogger.New(&applogger.Config{
		Level:  cfg.Logging.Level,
		Format: cfg.Logging.Format,
		Output: cfg.Logging.Output,
	})
}

func ProvideMetrics() *metrics.Recorder {
	return metrics.New()
}

// ProvideCache builds the configured cache backend. The cleanup function
// closes it on injector teardown.
func ProvideCache(cfg *config.Config, logger *applogger.Logger) (cache.Service, func(), error) {
	redisOpts := []cache.RedisOption{
		cache.WithAddr(cfg.Cache.Redis.Host, cfg.Cache.Redis.Port),
		cache.WithCredentials(cfg.Cache.Redis.Password, cfg.Cache.Redis.DB),
		cache.WithPrefix(cfg.Cache.Redis.Prefix),
	}

	var svc cache.Service
	switch cfg.Cache.Backend {
	case "memory", "":
		svc = cache.NewMemoryCache()
	case "redis":
		rc, err := cache.NewRedisCache(redisOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		svc = rc
	case "layered":
		rc, err := cache.NewRedisCache(redisOpts...)
		if err != nil {
			return nil, nil, fmt.Errorf("connect redis: %w", err)
		}
		svc = cache.NewLayeredCache(rc)
	default:
		return nil, nil, fmt.Errorf("unknown cache backend %q", cfg.Cache.Backend)
	}

	logger.Info("cache ready", applogger.String("backend", cfg.Cache.Backend))

	cleanup := func() {
		if closer, ok := svc.(io.Closer); ok {
			_ = closer.Close()
		}
	}
	return svc, cleanup, nil
}

func ProvideSnapshotSource(cfg *config.Config, logger *applogger.Logger, rec *metrics.Recorder) repository.SnapshotSource {
	return reposrc.NewCSVSource(cfg.Dataset.Path, logger, rec)
}

// Analytics bundles the pure analytics services.
type Analytics struct {
	Aggregator domsvc.Aggregator
	Bucketizer domsvc.Bucketizer
	Classifier domsvc.MapClassifier
	Summarizer domsvc.Summarizer
}

func ProvideAnalytics() Analytics {
	return Analytics{
		Aggregator: analytics.NewStationAggregator(),
		Bucketizer: analytics.NewQuartileBucketizer(),
		Classifier: analytics.NewThresholdClassifier(),
		Summarizer: analytics.NewPanelSummarizer(),
	}
}

func ProvideDashboard(
	cfg *config.Config,
	source repository.SnapshotSource,
	svc Analytics,
	cacheSvc cache.Service,
	rec *metrics.Recorder,
	logger *applogger.Logger,
) *usecase.Dashboard {
	return usecase.NewDashboard(
		source,
		svc.Aggregator,
		svc.Bucketizer,
		svc.Classifier,
		svc.Summarizer,
		cacheSvc,
		rec,
		logger,
		usecase.WithCacheTTL(cfg.Cache.TTL),
	)
}

func ProvideHandler(dashboard *usecase.Dashboard, logger *applogger.Logger) apphttp.Handler {
	return api.NewDashboardHandler(dashboard, logger)
}

func ProvideServer(cfg *config.Config, handler apphttp.Handler, logger *applogger.Logger) *apphttp.Server {
	opts := []apphttp.ServerOption{
		apphttp.WithHost(cfg.Server.Host),
		apphttp.WithPort(cfg.Server.Port),
		apphttp.WithTimeouts(cfg.Server.ReadTimeout, cfg.Server.WriteTimeout, cfg.Server.ShutdownTimeout),
	}
	if cfg.RateLimit.Enabled {
		opts = append(opts, apphttp.WithRateLimiter(
			middleware.NewLimiter(cfg.RateLimit.Capacity, cfg.RateLimit.RefillPerSec),
		))
	}
	return apphttp.NewServer(handler, logger, opts...)
}

func ProvideApp(cfg *config.Config, logger *applogger.Logger, srv *apphttp.Server, dashboard *usecase.Dashboard) *server.App {
	return server.NewApp(cfg, logger, srv, dashboard)
}
