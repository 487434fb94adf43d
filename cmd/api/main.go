package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dumpster_booking_backend/internal/booking"
	"dumpster_booking_backend/internal/booking/ratelimit"
	"dumpster_booking_backend/internal/email"
	"dumpster_booking_backend/internal/events"
	"dumpster_booking_backend/internal/hours"
	apphttp "dumpster_booking_backend/internal/http"
	"dumpster_booking_backend/internal/maps"
	"dumpster_booking_backend/internal/notification"
	"dumpster_booking_backend/internal/pricing"
	"dumpster_booking_backend/platform/config"
	"dumpster_booking_backend/platform/logger"
	"dumpster_booking_backend/platform/validator"
)

const noticeSweepInterval = 30 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("failed to load config: " + err.Error())
	}

	// Initialize structured logger
	log := logger.New(cfg.Env)
	log.Info("starting server", "env", cfg.Env, "addr", cfg.HTTPAddr)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// ========================================================================
	// Infrastructure Layer
	// ========================================================================

	catalog, err := pricing.LoadCatalog()
	if err != nil {
		log.Error("failed to load pricing catalog", "error", err)
		panic("failed to load pricing catalog: " + err.Error())
	}

	// Event bus for decoupled communication between modules
	eventBus := events.NewInMemoryBus(log)

	limiterStore, closeLimiterStore := initLimiterStore(ctx, cfg, log)
	if closeLimiterStore != nil {
		defer closeLimiterStore()
	}
	submitLimiter := ratelimit.New(limiterStore, ratelimit.Config{
		MinInterval:   cfg.SubmitMinInterval,
		Window:        cfg.SubmitWindow,
		MaxPerWindow:  cfg.SubmitMaxPerWindow,
		BusinessPhone: cfg.BusinessPhone,
	})

	sender, err := email.NewSender(cfg)
	if err != nil {
		log.Error("failed to initialize email sender", "error", err)
		panic("failed to initialize email sender: " + err.Error())
	}

	// Shared validator instance for dependency injection
	val := validator.New()

	// ========================================================================
	// Domain Modules (Composition Root)
	// ========================================================================

	// Notification module subscribes to domain events; notices are served
	// through the booking routes
	notificationModule := notification.NewModule(cfg.NoticeTTL, log)
	notificationModule.SubscribeEvents(eventBus)
	notificationModule.StartSweeper(ctx, noticeSweepInterval)

	mapsModule := maps.NewModule(maps.NewService(log, cfg.AddressLookupEnabled))
	pricingModule := pricing.NewModule(catalog)
	hoursModule := hours.NewModule()

	bookingModule := booking.NewModule(
		cfg,
		val,
		pricingModule.Catalog(),
		submitLimiter,
		sender,
		notificationModule.Store(),
		mapsModule.Service(),
		eventBus,
		log,
	)
	bookingModule.StartSweeper(ctx)

	// ========================================================================
	// HTTP Layer
	// ========================================================================

	app := &apphttp.App{
		Config: cfg,
		Env:    cfg.Env,
		Logger: log,
		Modules: []apphttp.Module{
			bookingModule,
			pricingModule,
			mapsModule,
			hoursModule,
		},
	}

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           apphttp.BuildRouter(app),
		ReadHeaderTimeout: 10 * time.Second,
	}

	srvErr := make(chan error, 1)
	go func() {
		log.Info("server listening", "addr", cfg.HTTPAddr)
		srvErr <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		log.Info("shutdown signal received, gracefully shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			log.Error("graceful shutdown failed", "error", err)
		}
	case err := <-srvErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Error("server error", "error", err)
			panic("server error: " + err.Error())
		}
	}
}

// initLimiterStore picks Redis when configured, otherwise the in-memory
// fallback. Counters in memory do not survive a restart; acceptable for the
// soft throttle.
func initLimiterStore(ctx context.Context, cfg *config.Config, log *logger.Logger) (ratelimit.Store, func()) {
	ttl := cfg.SubmitWindow + time.Minute

	if cfg.RedisURL == "" {
		log.Warn("REDIS_URL not configured; submission counters held in memory")
		return ratelimit.NewMemoryStore(ttl), nil
	}

	store, err := ratelimit.NewRedisStore(cfg.RedisURL, ttl)
	if err != nil {
		log.Error("failed to initialize redis limiter store", "error", err)
		return ratelimit.NewMemoryStore(ttl), nil
	}
	if err := store.Ping(ctx); err != nil {
		log.Error("redis unreachable; falling back to in-memory counters", "error", err)
		_ = store.Close()
		return ratelimit.NewMemoryStore(ttl), nil
	}

	log.Info("redis limiter store initialized")
	return store, func() {
		_ = store.Close()
	}
}
