package app

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/vietct/orderflow-client/config"
	"github.com/vietct/orderflow-client/internal/api"
	"github.com/vietct/orderflow-client/internal/ports"
	"github.com/vietct/orderflow-client/pkg/logger"
	"github.com/vietct/orderflow-client/pkg/metrics"
	"github.com/vietct/orderflow-client/pkg/telemetry"
)

// App — собранное приложение: логгер и клиент бэкенда.
// Оба шлюза (каталог и заказы) закрывает один HTTP-клиент.
type App struct {
	Logger  ports.Logger
	Catalog ports.CatalogGateway
	Orders  ports.OrderGateway

	metricsSrv *http.Server // nil — метрики наружу не отдаются
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Трейсинг OTEL (при включённой конфигурации); по умолчанию — no-op.
	shutdownTrace := func(context.Context) error { return nil }
	if cfg.Tracing.Enabled {
		setup, tErr := telemetry.SetupTracing(ctx, cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
		if tErr != nil {
			logg.Warnf(ctx, "failed to setup tracing: %v", tErr)
		} else {
			logg.Infof(ctx, "otel tracing enabled service=%s endpoint=%s sample=%.2f",
				cfg.Tracing.ServiceName, cfg.Tracing.Endpoint, cfg.Tracing.SampleRatio)
			shutdownTrace = setup
		}
	}

	// Клиент бэкенда магазина.
	client := api.NewClient(api.Options{
		BaseURL:  cfg.API.BaseURL,
		Timeout:  cfg.API.Timeout,
		PageSize: cfg.Catalog.PageSize,
		Sort:     cfg.Catalog.Sort,
	}, logg)

	// Слушатель метрик (при включённой конфигурации).
	var metricsSrv *http.Server
	if cfg.Metrics.Enabled {
		mux := http.NewServeMux()
		mux.Handle("/metrics", promhttp.Handler())

		metricsSrv = &http.Server{
			Addr:              cfg.Metrics.Addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		}
		go func() {
			logg.Infof(ctx, "metrics listener starting (addr=%s)", cfg.Metrics.Addr)
			if err := metricsSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				logg.Warnf(ctx, "metrics listener error: %v", err)
			}
		}()
	}

	app := &App{
		Logger:     logg,
		Catalog:    client,
		Orders:     client,
		metricsSrv: metricsSrv,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if metricsSrv != nil {
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
			if err := metricsSrv.Shutdown(shutdownCtx); err != nil {
				logg.Warnf(ctx, "metrics listener shutdown failed: %v", err)
			}
			cancel()
		}
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}
