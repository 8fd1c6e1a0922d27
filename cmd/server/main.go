// Package main is the entry point for the convention resolution service. It
// wires all dependencies using samber/do v2, starts the HTTP server, and
// handles graceful shutdown on SIGINT/SIGTERM.
package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	nethttp "net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/samber/do/v2"

	"github.com/jsamuelsen11/api-conventions/internal/adapters/cache"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/clients/registry"
	adapthttp "github.com/jsamuelsen11/api-conventions/internal/adapters/http"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/handlers"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/http/middleware"
	"github.com/jsamuelsen11/api-conventions/internal/adapters/manifest"

	"github.com/jsamuelsen11/api-conventions/internal/app"
	"github.com/jsamuelsen11/api-conventions/internal/domain/annotation"
	"github.com/jsamuelsen11/api-conventions/internal/domain/convention"
	"github.com/jsamuelsen11/api-conventions/internal/domain/matching"
	"github.com/jsamuelsen11/api-conventions/internal/platform/config"
	"github.com/jsamuelsen11/api-conventions/internal/platform/health"
	"github.com/jsamuelsen11/api-conventions/internal/platform/httpclient"
	"github.com/jsamuelsen11/api-conventions/internal/platform/logging"
	"github.com/jsamuelsen11/api-conventions/internal/platform/telemetry"
	"github.com/jsamuelsen11/api-conventions/internal/ports"

	sdkmetric "go.opentelemetry.io/otel/sdk/metric"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"
)

const (
	otelShutdownTimeout = 5 * time.Second
	cacheConnectTimeout = 5 * time.Second
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	profile := os.Getenv("APP_PROFILE")
	if profile == "" {
		return errors.New("APP_PROFILE environment variable is required (e.g. local, dev, qa, prod)")
	}

	// Bootstrap: config, logger, telemetry.
	cfg, err := config.Load(profile)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	logger := logging.New(cfg.Log.Level, cfg.Log.Format, os.Stderr)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	otel, err := initTelemetry(ctx, cfg)
	if err != nil {
		return fmt.Errorf("initializing telemetry: %w", err)
	}
	defer flushTelemetry(otel, logger)

	// DI container.
	injector := do.New()

	do.ProvideValue(injector, cfg)
	do.ProvideValue(injector, logger)
	do.ProvideValue(injector, otel.metrics)

	registerDependencies(injector, cfg, logger)

	// Resolve the server (eagerly wires the full graph).
	server, err := do.Invoke[*adapthttp.Server](injector)
	if err != nil {
		return fmt.Errorf("resolving server: %w", err)
	}

	if err := registerHealthCheckers(injector, cfg); err != nil {
		return err
	}
	defer closeCache(injector, cfg, logger)

	logger.Info("convention service ready",
		slog.String("profile", profile),
		slog.Any("catalog_paths", cfg.Catalog.Paths),
		slog.Bool("registry_enabled", cfg.Registry.Enabled),
		slog.Bool("cache_enabled", cfg.Cache.Enabled),
	)

	// Serve until a shutdown signal arrives, then drain in-flight requests.
	if err := server.Run(ctx); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	logger.Info("shutdown complete")
	return nil
}

// otelProviders bundles OpenTelemetry provider lifecycle. The providers are
// nil when telemetry is disabled; metrics is then a no-op set.
type otelProviders struct {
	tracer  *sdktrace.TracerProvider
	meter   *sdkmetric.MeterProvider
	metrics *telemetry.Metrics
}

// Shutdown flushes both providers. Nil-safe.
func (o *otelProviders) Shutdown(ctx context.Context) error {
	var errs []error
	if o.tracer != nil {
		if err := o.tracer.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("tracer shutdown: %w", err))
		}
	}
	if o.meter != nil {
		if err := o.meter.Shutdown(ctx); err != nil {
			errs = append(errs, fmt.Errorf("meter shutdown: %w", err))
		}
	}
	return errors.Join(errs...)
}

func initTelemetry(ctx context.Context, cfg *config.Config) (*otelProviders, error) {
	if !cfg.Telemetry.Enabled {
		return &otelProviders{metrics: telemetry.NewNoopMetrics()}, nil
	}

	tp, err := telemetry.InitTracer(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		return nil, fmt.Errorf("init tracer: %w", err)
	}

	mp, err := telemetry.InitMeter(ctx,
		cfg.Telemetry.ServiceName,
		cfg.Telemetry.Exporter,
		cfg.Telemetry.Endpoint,
	)
	if err != nil {
		_ = tp.Shutdown(ctx)
		return nil, fmt.Errorf("init meter: %w", err)
	}

	metrics, err := telemetry.NewMetrics(mp, cfg.Telemetry.ServiceName)
	if err != nil {
		_ = tp.Shutdown(ctx)
		_ = mp.Shutdown(ctx)
		return nil, fmt.Errorf("creating metrics: %w", err)
	}

	return &otelProviders{
		tracer:  tp,
		meter:   mp,
		metrics: metrics,
	}, nil
}

func flushTelemetry(otel *otelProviders, logger *slog.Logger) {
	ctx, cancel := context.WithTimeout(context.Background(), otelShutdownTimeout)
	defer cancel()

	if err := otel.Shutdown(ctx); err != nil {
		logger.Error("telemetry shutdown error", slog.Any("error", err))
	}
}

func registerDependencies(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	// Convention sources: local manifests first, then the registry.
	do.Provide(injector, func(_ do.Injector) (*manifest.Catalog, error) {
		return manifest.Load(cfg.Catalog.Paths, manifest.WithDefaults(cfg.Catalog.IncludeDefaults))
	})

	do.Provide(injector, func(i do.Injector) (*httpclient.Client, error) {
		metrics := do.MustInvoke[*telemetry.Metrics](i)
		return httpclient.New(&cfg.Registry, "convention-registry", metrics, logger), nil
	})

	do.Provide(injector, func(i do.Injector) (*registry.Client, error) {
		client := do.MustInvoke[*httpclient.Client](i)
		return registry.NewClient(client, logger), nil
	})

	do.Provide(injector, func(_ do.Injector) (*cache.RedisSourceCache, error) {
		ctx, cancel := context.WithTimeout(context.Background(), cacheConnectTimeout)
		defer cancel()
		return cache.NewRedisSourceCache(ctx, &cfg.Cache)
	})

	do.Provide(injector, func(i do.Injector) (ports.SourceProvider, error) {
		catalog, err := do.Invoke[*manifest.Catalog](i)
		if err != nil {
			return nil, err
		}
		providers := []ports.SourceProvider{catalog}

		if cfg.Registry.Enabled {
			remote, err := do.Invoke[*registry.Client](i)
			if err != nil {
				return nil, err
			}
			var provider ports.SourceProvider = remote
			if cfg.Cache.Enabled {
				sourceCache, err := do.Invoke[*cache.RedisSourceCache](i)
				if err != nil {
					return nil, fmt.Errorf("connecting source cache: %w", err)
				}
				provider = app.NewCachedSources(remote, sourceCache, logger)
			}
			providers = append(providers, provider)
		}

		return app.NewSourceChain(logger, providers...), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ActionRepository, error) {
		catalog, err := do.Invoke[*manifest.Catalog](i)
		if err != nil {
			return nil, err
		}
		return catalog, nil
	})

	do.Provide(injector, func(_ do.Injector) (convention.Matcher, error) {
		return matching.New(annotation.NewReader()), nil
	})

	do.Provide(injector, func(i do.Injector) (ports.ResolutionService, error) {
		sources := do.MustInvoke[ports.SourceProvider](i)
		actions := do.MustInvoke[ports.ActionRepository](i)
		matcher := do.MustInvoke[convention.Matcher](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return app.NewResolutionService(sources, actions, matcher, logger,
			app.WithMaxWorkers(cfg.Resolution.MaxWorkers),
			app.WithMaxBatchSize(cfg.Resolution.MaxBatchSize),
			app.WithMetrics(metrics),
		), nil
	})

	do.Provide(injector, func(_ do.Injector) (ports.HealthRegistry, error) {
		return health.New(), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.ResolutionHandler, error) {
		svc := do.MustInvoke[ports.ResolutionService](i)
		return handlers.NewResolutionHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.CatalogHandler, error) {
		svc := do.MustInvoke[ports.ResolutionService](i)
		return handlers.NewCatalogHandler(svc), nil
	})

	do.Provide(injector, func(i do.Injector) (*handlers.HealthHandler, error) {
		checks := do.MustInvoke[ports.HealthRegistry](i)
		return handlers.NewHealthHandler(checks, handlers.WithOptionalChecks(cache.CheckName)), nil
	})

	do.Provide(injector, func(i do.Injector) (nethttp.Handler, error) {
		resolutionH := do.MustInvoke[*handlers.ResolutionHandler](i)
		catalogH := do.MustInvoke[*handlers.CatalogHandler](i)
		healthH := do.MustInvoke[*handlers.HealthHandler](i)
		metrics := do.MustInvoke[*telemetry.Metrics](i)

		return adapthttp.NewRouter(resolutionH, catalogH, healthH,
			middleware.Stack(logger, metrics, cfg.Server.WriteTimeout),
		), nil
	})

	do.Provide(injector, func(i do.Injector) (*adapthttp.Server, error) {
		handler := do.MustInvoke[nethttp.Handler](i)
		return adapthttp.NewServer(cfg.Server, handler, logger), nil
	})
}

// registerHealthCheckers adds the remote dependencies to the readiness
// registry once the graph is wired. The manifest catalog is in-memory and
// needs no check.
func registerHealthCheckers(injector *do.RootScope, cfg *config.Config) error {
	checks := do.MustInvoke[ports.HealthRegistry](injector)

	if cfg.Registry.Enabled {
		remote, err := do.Invoke[*registry.Client](injector)
		if err != nil {
			return fmt.Errorf("resolving registry client: %w", err)
		}
		checks.Register(remote)
	}
	if cfg.Registry.Enabled && cfg.Cache.Enabled {
		sourceCache, err := do.Invoke[*cache.RedisSourceCache](injector)
		if err != nil {
			return fmt.Errorf("resolving source cache: %w", err)
		}
		checks.Register(sourceCache)
	}
	return nil
}

func closeCache(injector *do.RootScope, cfg *config.Config, logger *slog.Logger) {
	if !cfg.Registry.Enabled || !cfg.Cache.Enabled {
		return
	}
	sourceCache, err := do.Invoke[*cache.RedisSourceCache](injector)
	if err != nil {
		return
	}
	if err := sourceCache.Close(); err != nil {
		logger.Error("closing source cache", slog.Any("error", err))
	}
}
