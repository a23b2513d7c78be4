package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/volunteer-backend/internal/adapter/postgres"
	auditrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/audit"
	notificationrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/notification"
	offeringrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/offering"
	participationrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/participation"
	userrepo "github.com/heartmarshall/volunteer-backend/internal/adapter/postgres/user"
	"github.com/heartmarshall/volunteer-backend/internal/adapter/qrcode"
	"github.com/heartmarshall/volunteer-backend/internal/auth"
	"github.com/heartmarshall/volunteer-backend/internal/config"
	"github.com/heartmarshall/volunteer-backend/internal/service/notification"
	"github.com/heartmarshall/volunteer-backend/internal/service/offering"
	"github.com/heartmarshall/volunteer-backend/internal/service/participation"
	"github.com/heartmarshall/volunteer-backend/internal/service/user"
	"github.com/heartmarshall/volunteer-backend/internal/transport/middleware"
	"github.com/heartmarshall/volunteer-backend/internal/transport/rest"
)

// Run is the application entry point. It loads configuration, connects to
// the database, wires services and serves the HTTP API until ctx is
// cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return err
	}
	defer pool.Close()

	dispatcher := notification.NewDispatcher(logger, notificationrepo.New(pool), notification.DispatcherConfig{
		QueueSize:       cfg.Notifier.QueueSize,
		Workers:         cfg.Notifier.Workers,
		DeliveryTimeout: cfg.Notifier.DeliveryTimeout,
	})
	dispatcher.Start(ctx)

	limiter := middleware.NewRateLimiter(cfg.RateLimit.CleanupInterval)
	defer limiter.Stop()

	handler := NewHandler(cfg, logger, pool, dispatcher, limiter)
	serveErr := NewServer(cfg.Server, handler, logger).Serve(ctx)

	// Requests have drained; flush notifications they produced.
	stopCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), cfg.Server.ShutdownTimeout)
	defer cancel()
	if err := dispatcher.Stop(stopCtx); err != nil {
		logger.Warn("notification dispatcher stop", slog.String("error", err.Error()))
	}

	if serveErr != nil && !errors.Is(serveErr, context.Canceled) {
		return fmt.Errorf("serve: %w", serveErr)
	}
	logger.Info("application stopped")
	return nil
}

// NewHandler wires repositories, services and transport into the root
// HTTP handler.
func NewHandler(
	cfg *config.Config,
	logger *slog.Logger,
	pool *pgxpool.Pool,
	dispatcher *notification.Dispatcher,
	limiter *middleware.RateLimiter,
) http.Handler {
	// Repositories
	users := userrepo.New(pool)
	offerings := offeringrepo.New(pool)
	participations := participationrepo.New(pool)
	notifications := notificationrepo.New(pool)
	audits := auditrepo.New(pool)
	txm := postgres.NewTxManager(pool, postgres.WithMaxAttempts(cfg.Database.TxAttempts))

	// Services
	participationService := participation.NewService(logger, offerings, participations, users, audits, txm, dispatcher)
	offeringService := offering.NewService(logger, offerings, audits, txm)
	userService := user.NewService(logger, users, audits, txm)
	notificationService := notification.NewService(logger, notifications)

	// Auth
	tokens := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL)
	authenticator := auth.NewAuthenticator(tokens, users)

	mux := rest.NewMux(rest.Handlers{
		Health:        rest.NewHealthHandler(pool, dispatcher, BuildVersion()),
		Offerings:     rest.NewOfferingHandler(offeringService, participationService, qrcode.NewRenderer(qrcode.DefaultSize), logger),
		Participation: rest.NewParticipationHandler(participationService, logger),
		Me:            rest.NewMeHandler(userService, participationService, notificationService, logger),
		Admin:         rest.NewAdminHandler(userService, logger),
	}, limiter.Limit("attendance", cfg.RateLimit.ScanPerMinute))

	return middleware.Chain(
		middleware.RequestID,
		middleware.Recovery(logger),
		middleware.CORS(cfg.CORS),
		middleware.Auth(authenticator, logger),
		middleware.Logger(logger),
	)(mux)
}
