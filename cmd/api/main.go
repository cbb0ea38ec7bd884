package main

import (
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	validator "github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/kasir-id/backend-kasir/internal/calc"
	"github.com/kasir-id/backend-kasir/internal/cart"
	"github.com/kasir-id/backend-kasir/internal/config"
	"github.com/kasir-id/backend-kasir/internal/events"
	"github.com/kasir-id/backend-kasir/internal/health"
	"github.com/kasir-id/backend-kasir/internal/money"
	"github.com/kasir-id/backend-kasir/internal/obs"
	"github.com/kasir-id/backend-kasir/internal/querystring"
	"github.com/kasir-id/backend-kasir/internal/ratelimit"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}

	logger := obs.NewLogger(cfg.LogFormat, cfg.LogLevel).With().Str("env", cfg.AppEnv).Logger()

	if cfg.MetricsEnabled {
		obs.MustRegisterDomainMetrics(cfg.MetricsNamespace, nil)
	}

	bus := &events.Bus{Notifiers: []events.Notifier{
		events.LogNotifier{Logger: logger},
	}}

	cartSvc := cart.NewService()
	cartSvc.TTL = cfg.CartTTL
	cartSvc.Formatter = money.NewFormatter(cfg.CurrencySymbol, cfg.CurrencyLocale)
	cartSvc.Events = bus

	cartHandler := &cart.Handler{Svc: cartSvc, Validate: validator.New()}
	calcHandler := calc.Handler{}
	queryHandler := querystring.Handler{}

	var httpMetrics *obs.HTTPMetrics
	if cfg.MetricsEnabled {
		httpMetrics = obs.NewHTTPMetrics(cfg.MetricsNamespace, obs.ParseBucketsCSV(cfg.MetricsBucketsCSV), nil)
	}

	limit := ratelimit.Handler{
		Limiter: ratelimit.NewMemoryLimiter(),
		Config: ratelimit.Config{
			Key:    func(r *http.Request) string { return r.RemoteAddr },
			Window: time.Minute,
			Max:    cfg.RateLimitPerMinute,
		},
		OnError: func(err error) { logger.Error().Err(err).Msg("rate limiter") },
	}

	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	if cfg.MetricsEnabled && httpMetrics != nil {
		r.Use(obs.HTTPObs{Metrics: httpMetrics}.Middleware)
	}
	r.Use(obs.RequestLogger{Logger: logger}.Middleware)
	r.Use(cors.Handler(cors.Options{
		AllowedOrigins: allowedOrigins(cfg),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodDelete, http.MethodOptions},
		AllowedHeaders: []string{"Accept", "Content-Type"},
		MaxAge:         300,
	}))

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	healthHandler := health.Handler{Checker: cartSvc}
	r.Get("/health/live", healthHandler.Live)
	r.Get("/health/ready", healthHandler.Ready)

	r.Route("/api/v1", func(v chi.Router) {
		v.Use(limit.Middleware)

		v.Route("/carts", func(c chi.Router) {
			c.Post("/", cartHandler.Create)
			c.Get("/{id}", cartHandler.Summary)
			c.Get("/{id}/summary", cartHandler.Summary)
			c.Get("/{id}/total", cartHandler.Total)
			c.Post("/{id}/items", cartHandler.AddItem)
			c.Delete("/{id}/items", cartHandler.RemoveItem)
			c.Post("/{id}/checkout", cartHandler.Checkout)
		})

		v.Get("/calc/sum", calcHandler.Sum)
		v.Post("/querystring/encode", queryHandler.Encode)
		v.Get("/querystring/parse", queryHandler.Parse)
	})

	srv := &http.Server{
		Addr:    cfg.HTTPAddr(),
		Handler: r,
	}

	logger.Info().Str("addr", srv.Addr).Msg("server starting")
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		logger.Fatal().Err(err).Msg("server exited unexpectedly")
	}
}

func allowedOrigins(cfg *config.Config) []string {
	if len(cfg.CORSAllowedOrigins) == 0 {
		return []string{"*"}
	}
	return cfg.CORSAllowedOrigins
}
