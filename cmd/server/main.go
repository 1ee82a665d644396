package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"golang.org/x/sync/errgroup"

	"touchline/internal/admission/handler"
	"touchline/internal/admission/metrics"
	"touchline/internal/admission/ports"
	"touchline/internal/admission/service"
	"touchline/internal/admission/store/agegroup"
	"touchline/internal/admission/store/applicant"
	"touchline/internal/admission/store/guardian"
	"touchline/internal/admission/store/member"
	"touchline/internal/identity"
	"touchline/internal/notify"
	"touchline/internal/platform/config"
	"touchline/internal/platform/httpserver"
	"touchline/internal/platform/logger"
	"touchline/internal/platform/postgres"
	"touchline/internal/platform/redis"
	"touchline/migrations"
	"touchline/pkg/platform/middleware/requestid"
	"touchline/pkg/platform/middleware/requesttime"
	"touchline/pkg/platform/middleware/staffauth"
)

// main wires high-level dependencies and keeps the server lifecycle small.
// Business logic lives in the internal admission packages.
func main() {
	log := logger.New()
	if err := run(context.Background(), log); err != nil {
		log.Error("server exited", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, log *slog.Logger) error {
	cfg := config.FromEnv()

	db, err := postgres.Open(cfg.DatabaseURL)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := migrations.Apply(ctx, db); err != nil {
		return err
	}

	redisClient, err := redis.New(cfg.Redis)
	if err != nil {
		return err
	}
	if redisClient != nil {
		defer redisClient.Close()
	}

	provider, err := buildIdentityProvider(cfg, redisClient, log)
	if err != nil {
		return err
	}

	sink, err := buildNotifySink(ctx, cfg, log)
	if err != nil {
		return err
	}
	if kafkaSink, ok := sink.(*notify.KafkaSink); ok {
		defer kafkaSink.Close()
	}
	publisher := notify.NewPublisher(sink, notify.WithAsyncBuffer(64), notify.WithPublisherLogger(log))
	defer publisher.Close()

	svc, err := service.New(
		applicant.NewPostgres(db),
		guardian.NewPostgres(db),
		member.NewPostgres(db),
		agegroup.NewPostgres(db),
		provider,
		newAdmissionPostgresTx(db),
		service.WithLogger(log),
		service.WithMetrics(metrics.New()),
		service.WithNotifier(publisher),
	)
	if err != nil {
		return err
	}

	router := chi.NewRouter()
	router.Use(requestid.Middleware, requesttime.Middleware, staffauth.Middleware)
	router.Get("/healthz", healthHandler(db, redisClient))
	router.Handle("/metrics", promhttp.Handler())
	handler.New(svc, log).Register(router)

	srv := httpserver.New(cfg.Addr, router)

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info("starting touchline server", "addr", cfg.Addr)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		log.Info("shutting down")
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

// buildIdentityProvider picks the HTTP client when a provider URL is
// configured and falls back to the in-memory provider for development.
func buildIdentityProvider(cfg config.Server, redisClient *redis.Client, log *slog.Logger) (ports.IdentityProvider, error) {
	if cfg.IdentityProviderURL == "" {
		log.Warn("IDENTITY_PROVIDER_URL not set, using in-memory identity provider")
		return identity.NewMemoryProvider(), nil
	}
	opts := []identity.ClientOption{identity.WithClientLogger(log)}
	if redisClient != nil {
		opts = append(opts, identity.WithKeyRegistry(identity.NewKeyRegistry(redisClient)))
	}
	return identity.NewClient(cfg.IdentityProviderURL, cfg.IdentityServiceKey, opts...)
}

func buildNotifySink(ctx context.Context, cfg config.Server, log *slog.Logger) (notify.Sink, error) {
	if len(cfg.KafkaBrokers) == 0 {
		log.Warn("KAFKA_BROKERS not set, enrollment notifications stay in memory")
		return notify.NewMemorySink(), nil
	}
	return notify.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
}

func healthHandler(db interface {
	PingContext(ctx context.Context) error
}, redisClient *redis.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()
		if err := db.PingContext(ctx); err != nil {
			http.Error(w, "database unavailable", http.StatusServiceUnavailable)
			return
		}
		if redisClient != nil {
			if err := redisClient.Health(ctx); err != nil {
				http.Error(w, "redis unavailable", http.StatusServiceUnavailable)
				return
			}
		}
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}
}
