package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/piresc/sitetrack/internal/pkg/config"
	"github.com/piresc/sitetrack/internal/pkg/database"
	"github.com/piresc/sitetrack/internal/pkg/logger"
	nsqpkg "github.com/piresc/sitetrack/internal/pkg/nsq"
	"github.com/piresc/sitetrack/internal/pkg/retry"
	"github.com/piresc/sitetrack/internal/pkg/server"
)

var serveConfigPath string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the sitetrack API server",
	Long: `Start the HTTP API for brokers, sites, stations and beacons, and the NSQ
consumers for range and distance events when NSQ is enabled.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVarP(&serveConfigPath, "config", "c", "", "path to a config file (default ./config.yaml)")
	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	configs, err := config.InitConfig(serveConfigPath)
	if err != nil {
		return err
	}
	// A version stamped at build time wins over the configured one
	if version != "development" {
		configs.App.Version = version
	}

	zapLogger, err := logger.InitZapLoggerFromConfig(configs)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer zapLogger.Close()
	logger.SetGlobalLogger(zapLogger)

	zapLogger.Info("Starting application",
		logger.String("app", configs.App.Name),
		logger.String("version", configs.App.Version),
		logger.String("environment", configs.App.Environment))

	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Redis and nsqd often start alongside the service
	retrier := retry.New(retry.DefaultConfig(), zapLogger)

	var redisClient *database.RedisClient
	if configs.Redis.Enabled {
		err = retrier.Execute(ctx, "redis connect", func(context.Context) error {
			var err error
			redisClient, err = database.NewRedisClient(configs.Redis)
			return err
		})
		if err != nil {
			return err
		}
		zapLogger.Info("Connected to Redis",
			logger.String("host", configs.Redis.Host),
			logger.Int("port", configs.Redis.Port))
	}

	var producer *nsqpkg.Producer
	if configs.NSQ.Enabled && configs.NSQ.NSQDAddress != "" {
		err = retrier.Execute(ctx, "nsqd connect", func(context.Context) error {
			var err error
			producer, err = nsqpkg.NewProducer(configs.NSQ.NSQDAddress)
			return err
		})
		if err != nil {
			return err
		}
	} else if configs.NSQ.Enabled {
		zapLogger.Warn("No nsqd address configured, tracking events will not be published")
	}

	application, err := newApp(configs, zapLogger, prometheus.DefaultRegisterer, redisClient, producer)
	if err != nil {
		return fmt.Errorf("failed to build application: %w", err)
	}

	srv := server.NewGracefulServer(application.echo, zapLogger, config.Address(configs),
		time.Duration(configs.Server.ShutdownTimeout)*time.Second)

	// Components stop in reverse order: consumers, then producer, then Redis.
	if redisClient != nil {
		srv.OnShutdown(func(context.Context) error { return redisClient.Close() })
	}
	if producer != nil {
		srv.OnShutdown(func(context.Context) error {
			producer.Stop()
			return nil
		})
	}
	if configs.NSQ.Enabled {
		if err := application.tracking.InitNSQConsumers(); err != nil {
			return fmt.Errorf("failed to initialize NSQ consumers: %w", err)
		}
		srv.OnShutdown(func(context.Context) error {
			application.tracking.StopNSQConsumers()
			return nil
		})
	}

	return srv.Run(ctx)
}
