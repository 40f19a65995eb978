// Command netstats follows spectred nodes and serves live network statistics.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/goodnatureofminers/spectre-netstats/internal/metrics"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/repository/clickhouse"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/repository/redis"
	"github.com/goodnatureofminers/spectre-netstats/internal/netstats/service"
	"github.com/goodnatureofminers/spectre-netstats/internal/transport"
	"github.com/goodnatureofminers/spectre-netstats/pkg/workerpool"
	grpcZap "github.com/grpc-ecosystem/go-grpc-middleware/logging/zap"
	"github.com/jessevdk/go-flags"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

const startupTimeout = 10 * time.Second

func main() {
	cfg := config{}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger, err := zap.NewDevelopment()
	if err != nil {
		panic("can't initialize zap logger: " + err.Error())
	}
	defer func() {
		_ = logger.Sync()
	}()
	grpcZap.ReplaceGrpcLoggerV2(logger.Named("grpc"))

	if _, err := flags.ParseArgs(&cfg, os.Args); err != nil {
		var ferr *flags.Error
		if errors.As(err, &ferr) && ferr.Type == flags.ErrHelp {
			return
		}
		logger.Fatal("failed to parse flags", zap.Error(err))
	}
	if err := cfg.validate(); err != nil {
		logger.Fatal("invalid configuration", zap.Error(err))
	}

	if err := run(ctx, cfg, logger); err != nil {
		logger.Fatal("netstats failed", zap.Error(err))
	}
}

func run(ctx context.Context, cfg config, logger *zap.Logger) error {
	endpoints, err := parseEndpoints(cfg.Nodes)
	if err != nil {
		return err
	}
	schedule, err := cfg.schedule()
	if err != nil {
		return fmt.Errorf("load reward schedule: %w", err)
	}

	startCtx, cancel := context.WithTimeout(ctx, startupTimeout)
	defer cancel()

	var (
		repo       historyRepository
		apiHistory transport.SnapshotHistory
		store      service.SnapshotStore
	)
	if cfg.ClickhouseDSN != "" {
		ch, err := clickhouse.NewRepository(cfg.ClickhouseDSN, metrics.NewClickhouseRepository())
		if err != nil {
			return fmt.Errorf("init clickhouse: %w", err)
		}
		defer func() {
			if err := ch.Close(); err != nil {
				logger.Warn("close clickhouse", zap.Error(err))
			}
		}()
		if err := ch.Ping(startCtx); err != nil {
			return err
		}
		repo, apiHistory = ch, ch
	}
	if cfg.RedisAddr != "" {
		rc, err := redis.NewClient(startCtx, cfg.RedisAddr, cfg.RedisUsername, cfg.RedisPassword, cfg.RedisDB, cfg.RedisTTL, metrics.NewRedisRepository())
		if err != nil {
			return fmt.Errorf("init redis: %w", err)
		}
		defer func() {
			if err := rc.Close(); err != nil {
				logger.Warn("close redis", zap.Error(err))
			}
		}()
		store = rc
	}

	nodes := make([]*node, 0, len(endpoints))
	sources := make([]transport.SnapshotSource, 0, len(endpoints))
	for _, ep := range endpoints {
		n, err := newNode(ep, cfg, repo, store, logger)
		if err != nil {
			return fmt.Errorf("node %s: %w", ep.Name, err)
		}
		nodes = append(nodes, n)
		sources = append(sources, n.tracker)
	}

	api, err := transport.NewStatsHandler(sources, schedule, apiHistory, metrics.NewAPI(), logger.Named("api"))
	if err != nil {
		return err
	}
	apiHandler, err := api.Handler()
	if err != nil {
		return err
	}
	mux := http.NewServeMux()
	mux.Handle("/", apiHandler)
	mux.Handle("/metrics", promhttp.Handler())

	s := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           mux,
		ReadTimeout:       15 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      15 * time.Second,
		IdleTimeout:       60 * time.Second,
		MaxHeaderBytes:    http.DefaultMaxHeaderBytes,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("starting http server", zap.String("addr", cfg.HTTPAddr))
		if err := s.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("listen and serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down the http server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return s.Shutdown(shutdownCtx)
	})
	g.Go(func() error {
		logger.Info("starting collectors", zap.Int("nodes", len(nodes)))
		return workerpool.Process(gctx, len(nodes), nodes, func(ctx context.Context, n *node) error {
			return n.run(ctx)
		})
	})

	if err := g.Wait(); err != nil && !errors.Is(err, context.Canceled) {
		return err
	}
	return nil
}
