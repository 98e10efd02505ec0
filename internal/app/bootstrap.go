package app

import (
	"context"
	"errors"
	"net/http"
	"strings"
	"time"

	"github.com/Gunvolt24/moa_wifi/config"
	"github.com/Gunvolt24/moa_wifi/internal/fallback"
	"github.com/Gunvolt24/moa_wifi/internal/pms"
	"github.com/Gunvolt24/moa_wifi/internal/ports"
	"github.com/Gunvolt24/moa_wifi/internal/provision"
	"github.com/Gunvolt24/moa_wifi/internal/repo/postgres"
	"github.com/Gunvolt24/moa_wifi/internal/sweep"
	rest "github.com/Gunvolt24/moa_wifi/internal/transport/http"
	"github.com/Gunvolt24/moa_wifi/internal/usecase"
	"github.com/Gunvolt24/moa_wifi/pkg/logger"
	"github.com/Gunvolt24/moa_wifi/pkg/metrics"
	"github.com/Gunvolt24/moa_wifi/pkg/telemetry"
	"github.com/gin-gonic/gin"
)

// App — собранное приложение и его внешние интерфейсы (HTTP, фоновый цикл).
type App struct {
	Logger          ports.Logger  // логгер
	HTTPServer      *http.Server  // HTTP-сервер
	Sweeper         *sweep.Sweeper
	gracefulTimeout time.Duration // время ожидания завершения HTTP-сервера
}

// Cleanup — функция освобождения ресурсов.
type Cleanup func()

// applyGinMode — устанавливает режим Gin по строке;
// неизвестное значение → debug и предупреждение в лог.
func applyGinMode(ctx context.Context, mode string, log ports.Logger) {
	switch strings.ToLower(strings.TrimSpace(mode)) {
	case "release":
		gin.SetMode(gin.ReleaseMode)
	case "test":
		gin.SetMode(gin.TestMode)
	case "", "debug":
		gin.SetMode(gin.DebugMode)
	default:
		gin.SetMode(gin.DebugMode)
		log.Warnf(ctx, "unknown GIN_MODE=%q, fallback to debug", mode)
	}
}

// buildFallback — офлайн-набор данных только вне прода и только при явном
// включении; в остальных случаях nil (fail-closed при недоступном PMS).
func buildFallback(ctx context.Context, cfg *config.Config, log ports.Logger) ports.FallbackProvider {
	if cfg.Env == "prod" || !cfg.Fallback.Enabled {
		return nil
	}
	if cfg.Fallback.File != "" {
		provider, err := fallback.NewFromFile(cfg.Fallback.File)
		if err != nil {
			log.Warnf(ctx, "fallback file load failed, using demo data: %v", err)
			return fallback.NewStaticProvider(fallback.DefaultDemoData())
		}
		log.Infof(ctx, "offline fallback enabled from %s", cfg.Fallback.File)
		return provider
	}
	log.Infof(ctx, "offline fallback enabled with demo data (env=%s)", cfg.Env)
	return fallback.NewStaticProvider(fallback.DefaultDemoData())
}

// Bootstrap — собирает зависимости и возвращает приложение, функцию очистки и ошибку.
func Bootstrap(ctx context.Context, cfg *config.Config) (*App, Cleanup, error) {
	// Логгер (dev/prod режим задаётся конфигурацией).
	logg, cleanupLogger, err := logger.NewZapLogger(cfg.Logger.IsProd)
	if err != nil {
		return nil, func() {}, err
	}

	// Регистрация метрик (Prometheus).
	metrics.MustRegister()

	// Пул подключений Postgres
	pool, err := postgres.NewPool(ctx, cfg.Postgres.DSN, cfg.Postgres.MaxConns)
	if err != nil {
		if cErr := cleanupLogger(); cErr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cErr)
		}
		return nil, func() {}, err
	}

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

	// Сборка зависимостей доменного слоя.
	reservationCache := postgres.NewReservationCache(pool)
	roomCatalog := postgres.NewRoomCatalog(pool)
	deviceRepo := postgres.NewDeviceRepository(pool)
	housekeeping := postgres.NewHousekeepingStore(pool)
	pmsClient := pms.NewClient(cfg.PMS, logg)
	offlineFallback := buildFallback(ctx, cfg, logg)

	validationService := usecase.NewValidationService(
		reservationCache, pmsClient, roomCatalog, offlineFallback, logg, cfg.Cache.BulkFetchInterval,
	)
	accessService := usecase.NewAccessService(
		validationService, roomCatalog, deviceRepo, housekeeping,
		provision.NewNoopProvisioner(logg), logg,
		usecase.AccessPolicy{
			MaxFastDevicesPerRoom: cfg.WiFi.MaxFastDevicesPerRoom,
			NormalProfile:         cfg.WiFi.NormalProfile,
			FastProfile:           cfg.WiFi.FastProfile,
			SkipCleanForFast:      cfg.WiFi.SkipCleanForFast,
		},
	)
	adminService := usecase.NewAdminQueryService(
		reservationCache, deviceRepo, housekeeping, validationService, logg,
	)

	// Прогрев кэша броней (опционально, чтобы первый гость не ждал полного fetch).
	if cfg.Cache.PrewarmOnStart {
		if err := validationService.RefreshIfStale(ctx); err != nil {
			logg.Warnf(ctx, "cache prewarm failed: %v", err)
		}
	}

	// Режим Gin.
	applyGinMode(ctx, cfg.HTTP.GinMode, logg)

	// Имя сервиса для otelgin (только при включённом трейсинге).
	otelServiceName := ""
	if cfg.Tracing.Enabled {
		otelServiceName = cfg.Tracing.ServiceName
	}

	// Роутер и HTTP-сервер.
	httpHandler := rest.NewHandler(accessService, adminService, logg)
	router := rest.NewRouter(httpHandler, "./web", otelServiceName)

	httpSrv := &http.Server{
		Addr:              cfg.HTTP.Addr,
		Handler:           router,
		ReadTimeout:       cfg.HTTP.ReadTimeout,
		WriteTimeout:      cfg.HTTP.WriteTimeout,
		ReadHeaderTimeout: cfg.HTTP.ReadHeaderTimeout,
		IdleTimeout:       cfg.HTTP.IdleTimeout,
	}

	// Фоновый цикл обслуживания кэша.
	var sweeper *sweep.Sweeper
	if cfg.Sweep.Enabled {
		sweeper = sweep.NewSweeper(reservationCache, validationService, logg, cfg.Sweep.Interval)
	}

	app := &App{
		Logger:          logg,
		HTTPServer:      httpSrv,
		Sweeper:         sweeper,
		gracefulTimeout: cfg.HTTP.GracefulTimeout,
	}

	// Очистка ресурсов (в обратном порядке).
	cleanup := func() {
		if terr := shutdownTrace(context.Background()); terr != nil {
			logg.Warnf(ctx, "shutdown tracing: %v", terr)
		}
		if sweeper != nil {
			sweeper.Close()
		}

		pool.Close()
		if cerr := cleanupLogger(); cerr != nil {
			logg.Warnf(ctx, "cleanup logger: %v", cerr)
		}
	}

	return app, cleanup, nil
}

// Run — запускает HTTP-сервер и фоновый цикл; ждёт отмены контекста или ошибки и останавливает их.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)

	// Запуск фонового цикла обслуживания кэша.
	if a.Sweeper != nil {
		go func() {
			a.Logger.Infof(ctx, "cache sweeper starting")
			a.Sweeper.Run(ctx)
		}()
	}

	// Запуск HTTP-сервера.
	go func() {
		a.Logger.Infof(ctx, "http server starting (addr=%s)", a.HTTPServer.Addr)
		if err := a.HTTPServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	// Ожидание сигнала остановки или фоновой ошибки.
	select {
	case <-ctx.Done():
		a.Logger.Infof(ctx, "shutdown requested, starting graceful shutdown")
	case err := <-errCh:
		a.Logger.Warnf(ctx, "background error: %v", err)
	}

	gt := a.gracefulTimeout
	if gt <= 0 {
		gt = 5 * time.Second
	}

	// Корректная остановка HTTP-сервера.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), gt)
	defer cancel()

	if err := a.HTTPServer.Shutdown(shutdownCtx); err != nil {
		a.Logger.Warnf(ctx, "http server shutdown failed: %v", err)
	} else {
		a.Logger.Infof(ctx, "http server stopped gracefully")
	}

	// Остановка фонового цикла.
	if a.Sweeper != nil {
		a.Sweeper.Close()
	}

	a.Logger.Infof(ctx, "service stopped")
	return nil
}
