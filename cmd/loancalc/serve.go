package main

import (
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/cloud-ru/loancalc-go/internal/cache"
	"github.com/cloud-ru/loancalc-go/internal/server"
	"github.com/cloud-ru/loancalc-go/internal/service"
	"github.com/cloud-ru/loancalc-go/internal/tracing"
)

var servePort int

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the calculator HTTP server",
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		tracer, shutdownTracing, err := tracing.InitTracing(ctx, cfg.OTEL)
		if err != nil {
			return err
		}
		defer func() {
			if err := shutdownTracing(cmd.Context()); err != nil {
				zap.L().Warn("tracing shutdown failed", zap.Error(err))
			}
		}()

		results, err := cache.New(cfg.Cache)
		if err != nil {
			return err
		}
		defer results.Close()

		port := servePort
		if port == 0 {
			port = cfg.Server.Port
		}

		srv := server.New(cfg, service.New(results, tracer))
		return srv.Run(ctx, port)
	},
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "server port (default from config)")
	rootCmd.AddCommand(serveCmd)
}
