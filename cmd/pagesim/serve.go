package main

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"page-replacement-simulator/internal/core/service"
	"page-replacement-simulator/internal/engine/policy"
	grpcapi "page-replacement-simulator/internal/grpc"
	"page-replacement-simulator/internal/httpapi"
	"page-replacement-simulator/internal/store"

	_ "net/http/pprof" // Register pprof handlers

	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"
	"golang.org/x/sync/errgroup"
)

var (
	httpAddrFlag = cli.StringFlag{
		Name:    "http-addr",
		Usage:   "HTTP server address",
		EnvVars: []string{"PAGESIM_HTTP_ADDR"},
	}
	grpcAddrFlag = cli.StringFlag{
		Name:    "grpc-addr",
		Usage:   "gRPC server address",
		EnvVars: []string{"PAGESIM_GRPC_ADDR"},
	}
	cacheSizeFlag = cli.IntFlag{
		Name:    "cache-size",
		Usage:   "number of cached simulation results, 0 for unbounded",
		EnvVars: []string{"PAGESIM_CACHE_SIZE"},
	}
)

func (e *env) serveCommand() *cli.Command {
	return &cli.Command{
		Action: e.serve,
		Name:   "serve",
		Usage:  "serves simulations over HTTP (JSON) and gRPC",
		Flags: []cli.Flag{
			&httpAddrFlag,
			&grpcAddrFlag,
			&cacheSizeFlag,
		},
	}
}

func (e *env) serve(c *cli.Context) error {
	httpAddr := e.cfg.Server.HTTPAddr
	if c.IsSet(httpAddrFlag.Name) {
		httpAddr = c.String(httpAddrFlag.Name)
	}
	grpcAddr := e.cfg.Server.GRPCAddr
	if c.IsSet(grpcAddrFlag.Name) {
		grpcAddr = c.String(grpcAddrFlag.Name)
	}
	cacheSize := e.cfg.Cache.Capacity
	if c.IsSet(cacheSizeFlag.Name) {
		cacheSize = c.Int(cacheSizeFlag.Name)
	}

	cachePolicy, err := e.cfg.CachePolicy()
	if err != nil {
		return err
	}
	evict, err := policy.NewOnline[string](cachePolicy)
	if err != nil {
		return err
	}
	results := store.New(store.WithCapacity(cacheSize), store.WithPolicy(evict))
	svc := service.New(results)

	ctx, stop := signal.NotifyContext(c.Context, os.Interrupt, syscall.SIGTERM)
	defer stop()

	lis, err := net.Listen("tcp", grpcAddr)
	if err != nil {
		return fmt.Errorf("failed to listen on %s: %w", grpcAddr, err)
	}
	grpcServer := grpcapi.NewServer(svc)

	mux := http.NewServeMux()
	mux.Handle("/debug/pprof/", http.DefaultServeMux)
	mux.Handle("/", httpapi.NewHandler(svc))
	httpServer := &http.Server{
		Addr:              httpAddr,
		Handler:           mux,
		ReadHeaderTimeout: 5 * time.Second,
	}

	log.WithFields(log.Fields{
		"http":         httpAddr,
		"grpc":         grpcAddr,
		"cache_size":   cacheSize,
		"cache_policy": cachePolicy,
	}).Info("Server listening...")

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		if err := grpcServer.Serve(lis); err != nil {
			return fmt.Errorf("gRPC server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("HTTP server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("Shutting down...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		grpcServer.GracefulStop()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
