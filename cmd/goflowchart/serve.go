package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	httpAdapter "github.com/cdfmlr/goflowchart/internal/adapters/http"
	"github.com/cdfmlr/goflowchart/internal/adapters/redis"
	"github.com/cdfmlr/goflowchart/internal/config"
	"github.com/cdfmlr/goflowchart/internal/logging"
	"github.com/cdfmlr/goflowchart/internal/presentation/tui"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the stateless HTTP rendering server",
	Long:  `Starts the rendering pipeline in server mode, exposing a JSON API over HTTP with an optional Redis cache for repeated renders.`,
	Run: func(cmd *cobra.Command, args []string) {
		if term.IsTerminal(int(os.Stdout.Fd())) {
			tui.PrintBanner()
		}

		cfgPath, _ := cmd.Flags().GetString("config")
		cfg, err := config.Load(cfgPath)
		if err != nil {
			fmt.Printf("Error loading config: %v\n", err)
			os.Exit(1)
		}
		if cmd.Flags().Changed("addr") {
			cfg.Server.Addr, _ = cmd.Flags().GetString("addr")
		}

		logger := logging.New(logging.ParseLevel(cfg.Log.Level))

		opts := []httpAdapter.ServerOption{httpAdapter.WithLogger(logger)}
		if cfg.Cache.Enabled {
			cache := redis.New(cfg.Cache.Addr, cfg.Cache.Password, cfg.Cache.DB,
				redis.WithTTL(cfg.Cache.TTL.Std()),
			)
			pingCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
			err := cache.Ping(pingCtx)
			cancel()
			if err != nil {
				logger.Warn("render cache unreachable, serving without it",
					"addr", cfg.Cache.Addr, "error", err)
			} else {
				logger.Info("render cache enabled", "addr", cfg.Cache.Addr, "ttl", cfg.Cache.TTL.Std())
				opts = append(opts, httpAdapter.WithCache(cache))
			}
		}

		srv := &http.Server{
			Addr:    cfg.Server.Addr,
			Handler: httpAdapter.NewHandler(opts...),
		}

		// Channel to listen for errors coming from the listener.
		serverErrors := make(chan error, 1)

		go func() {
			logger.Info("starting server", "addr", srv.Addr)
			serverErrors <- srv.ListenAndServe()
		}()

		// Channel to listen for interrupt or terminate signals.
		shutdown := make(chan os.Signal, 1)
		signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

		// Blocking main and waiting for shutdown.
		select {
		case err := <-serverErrors:
			logger.Error("server failed", "error", err)
			os.Exit(1)

		case sig := <-shutdown:
			logger.Info("starting shutdown", "signal", sig.String())

			// Give outstanding requests a deadline for completion.
			ctx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout.Std())
			defer cancel()

			if err := srv.Shutdown(ctx); err != nil {
				logger.Error("graceful shutdown did not complete", "timeout", cfg.Server.ShutdownTimeout.Std(), "error", err)
				if err := srv.Close(); err != nil {
					logger.Error("error killing server", "error", err)
				}
			}
			logger.Info("server stopped")
		}
	},
}

func init() {
	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringP("config", "c", "", "Path to a YAML config file")
	serveCmd.Flags().String("addr", ":8080", "Address to listen on (overrides config)")
}
