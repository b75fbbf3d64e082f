package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"time"

	"golang.org/x/sync/errgroup"

	"healthledger/internal/accesscontrol"
	"healthledger/internal/claim"
	"healthledger/internal/event"
	"healthledger/internal/jwttoken"
	"healthledger/internal/ledger"
	"healthledger/internal/platform/config"
	"healthledger/internal/platform/httpserver"
	"healthledger/internal/platform/logger"
	"healthledger/internal/platform/metrics"
	"healthledger/internal/platform/postgres"
	platformredis "healthledger/internal/platform/redis"
	"healthledger/internal/policy"
	httptransport "healthledger/internal/transport/http"
	"healthledger/internal/treasury"
	"healthledger/pkg/domain"
)

// main wires high-level dependencies, exposes the HTTP router, and keeps the
// server lifecycle small. The ledger semantics live in internal packages.
func main() {
	cfg := config.FromEnv()
	log := logger.New()
	m := metrics.New()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	var (
		policyStore   policy.Store
		claimStore    claim.Store
		treasuryStore treasury.Store
		eventStore    event.Store
		ledgerOpts    []ledger.Option
	)
	if cfg.PostgresURL != "" {
		db, err := postgres.Open(ctx, cfg.PostgresURL)
		if err != nil {
			log.Error("postgres connect failed", "error", err)
			os.Exit(1)
		}
		defer db.Close()
		if err := postgres.Migrate(ctx, db); err != nil {
			log.Error("postgres migrate failed", "error", err)
			os.Exit(1)
		}
		policyStore = policy.NewPostgresStore(db)
		claimStore = claim.NewPostgresStore(db)
		treasuryStore = treasury.NewPostgresStore(db)
		eventStore = event.NewPostgresStore(db)
		ledgerOpts = append(ledgerOpts, ledger.WithDB(db))
	} else {
		policyStore = policy.NewInMemoryStore()
		claimStore = claim.NewInMemoryStore()
		treasuryStore = treasury.NewInMemoryStore()
		eventStore = event.NewInMemoryStore()
	}

	var sinks []event.Sink
	if cfg.RedisURL != "" {
		rdb, err := platformredis.New(cfg.RedisURL)
		if err != nil {
			log.Error("redis connect failed", "error", err)
			os.Exit(1)
		}
		defer rdb.Close()
		sinks = append(sinks, event.NewRedisFeed(rdb.Client, "", 0))
	}
	var kafkaSink *event.KafkaSink
	if len(cfg.KafkaBrokers) > 0 {
		sink, err := event.NewKafkaSink(ctx, cfg.KafkaBrokers, cfg.KafkaTopic)
		if err != nil {
			log.Error("kafka connect failed", "error", err)
			os.Exit(1)
		}
		kafkaSink = sink
		sinks = append(sinks, sink)
	}

	access := accesscontrol.New(domain.Address(cfg.AdminAddress))
	if cfg.AdminKeyHash != "" {
		access = access.WithAPIKeyHash(cfg.AdminKeyHash)
	}
	policies := policy.NewRegistry(policyStore, cfg.CoverageTerm)
	claims := claim.NewRegistry(claimStore, policies)
	events := event.NewPublisher(eventStore, log, sinks...)

	svc := ledger.New(access, policies, claims, treasury.New(treasuryStore), events, m, log, ledgerOpts...)

	jwtService := jwttoken.NewJWTService(cfg.JWTSigningKey, "healthledger", "healthledger")
	handler := httptransport.NewHandler(svc, log, m)
	srv := httpserver.New(cfg.Addr, httptransport.NewRouter(handler, jwtService, access))

	log.Info("starting healthledger", "addr", cfg.Addr, "administrator", cfg.AdminAddress)

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if kafkaSink != nil {
			if err := kafkaSink.Close(shutdownCtx); err != nil {
				log.Error("kafka sink close failed", "error", err)
			}
		}
		return srv.Shutdown(shutdownCtx)
	})
	if err := g.Wait(); err != nil {
		log.Error("server error", "error", err)
		os.Exit(1)
	}
}
