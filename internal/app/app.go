package app

import (
	"context"
	"embed"
	"errors"
	"fmt"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"disputeresolver/config"
	"disputeresolver/internal/controller/rest"
	"disputeresolver/internal/controller/rest/handlers"
	"disputeresolver/internal/domain/auth"
	"disputeresolver/internal/domain/dispute"
	"disputeresolver/internal/external/bank"
	"disputeresolver/internal/external/kafka"
	"disputeresolver/internal/external/opensearch"
	"disputeresolver/internal/messaging"
	dispute_repo "disputeresolver/internal/repo/dispute"
	user_repo "disputeresolver/internal/repo/user"
	"disputeresolver/pkg/health"
	"disputeresolver/pkg/logger"
	"disputeresolver/pkg/postgres"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"
)

//go:embed migrations/*.sql
var MIGRATION_FS embed.FS

func Run(cfg config.Config) {
	l := logger.New(cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	pool, err := postgres.New(cfg.PgURL, postgres.MaxPoolSize(cfg.PgPoolMax))
	if err != nil {
		l.Fatal(fmt.Errorf("app - Run - postgres.New: %w", err))
	}
	defer pool.Close()

	if err = ApplyMigrations(cfg.PgURL, MIGRATION_FS); err != nil {
		l.Fatal(fmt.Errorf("app - Run - ApplyMigrations: %w", err))
	}

	clock := clockwork.NewRealClock()

	disputeRepo := dispute_repo.NewPgDisputeRepo(pool)
	userRepo := user_repo.NewPgUserRepo(pool)

	verifier := bank.New(cfg.BankAPIBaseURL, cfg.BankAPIKey, &http.Client{Timeout: cfg.HTTPBankClientTimeout})

	var updates messaging.Publisher
	if len(cfg.KafkaBrokers) > 0 {
		publisher := kafka.NewPublisher(l, cfg.KafkaBrokers, cfg.KafkaDisputesTopic)
		defer publisher.Close()
		updates = publisher
	}

	var events dispute.EventSink
	if len(cfg.OpensearchURLs) > 0 {
		sink, err := opensearch.NewEventSink(ctx, cfg.OpensearchURLs, cfg.OpensearchIndexDisputeEvents)
		if err != nil {
			l.Fatal(fmt.Errorf("app - Run - opensearch.NewEventSink: %w", err))
		}
		events = sink
	} else {
		events = dispute.NewLogEventSink(l)
	}

	policy := dispute.Policy{
		HighAmountThreshold:  cfg.HighAmountThreshold,
		FailOpenSmallAmounts: cfg.FailOpenSmallAmounts,
	}

	disputeService := dispute.NewDisputeService(l, disputeRepo, verifier, policy, clock, events, updates)
	authService := auth.NewService(userRepo, cfg.JWTSecret, cfg.JWTTTL, clock)

	reconciler := dispute.NewReconciler(l, disputeRepo, clock, dispute.ReconcilerConfig{
		Interval:      cfg.ReconcileInterval,
		InitialDelay:  cfg.ReconcileInitialDelay,
		DwellDuration: cfg.ReviewDwell,
	}, events, updates)

	checkers := []health.Checker{health.NewPostgresChecker(pool)}
	if len(cfg.KafkaBrokers) > 0 {
		checkers = append(checkers, health.NewKafkaChecker(cfg.KafkaBrokers))
	}
	healthRegistry := health.NewRegistry(checkers...)

	engine := NewGinEngine(l)
	router := rest.NewRouter(
		handlers.NewAuthHandler(authService),
		handlers.NewDisputeHandler(disputeService),
		authService,
		healthRegistry,
	)
	router.SetUp(engine)

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Port),
		Handler: engine,
	}

	g, gCtx := errgroup.WithContext(ctx)

	g.Go(func() error {
		l.Info("http server listening: addr=%s", server.Addr)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		if err := reconciler.Start(gCtx); err != nil && !errors.Is(err, context.Canceled) {
			return fmt.Errorf("reconciler: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return server.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		l.Fatal(fmt.Errorf("app - Run: %w", err))
	}
	l.Info("shutdown complete")
}
