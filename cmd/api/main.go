// Package main is the entry point for the creator-analytics-service API.
package main

import (
	"context"
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"creator-analytics-service/internal/app/service"
	"creator-analytics-service/internal/config"
	"creator-analytics-service/internal/domain"
	"creator-analytics-service/internal/infra/contentapi"
	"creator-analytics-service/internal/logger"
	"creator-analytics-service/internal/transport/httpserver"
	"creator-analytics-service/internal/validator"
)

func main() {
	// A missing .env is fine; config falls back to defaults and APP_* vars.
	_ = godotenv.Load()

	var configPath string

	root := &cobra.Command{
		Use:           "creator-analytics-service",
		Short:         "On-demand creator analytics over the platform content API",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&configPath, "config", "", "path to config file")

	root.AddCommand(newServeCmd(&configPath))
	root.AddCommand(newReportCmd(&configPath))

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

// bootstrap loads configuration and wires the aggregation service.
func bootstrap(configPath string) (*config.Config, *logger.Logger, *service.AnalyticsService, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, nil, nil, err
	}

	log, err := logger.New(
		logger.Config{
			Level:  cfg.Logger.Level,
			Format: cfg.Logger.Format,
			Output: cfg.Logger.Output,
		},
		logger.SentryConfig{
			Enabled:     cfg.Sentry.Enabled,
			DSN:         cfg.Sentry.DSN,
			Environment: cfg.Sentry.Environment,
			SampleRate:  cfg.Sentry.SampleRate,
		},
	)
	if err != nil {
		return nil, nil, nil, err
	}

	clientCfg := contentapi.ClientConfig{
		BaseURL: cfg.ContentAPI.BaseURL,
		Timeout: cfg.ContentAPI.Timeout,
		CB: contentapi.CBConfig{
			MaxRequests:  cfg.ContentAPI.CB.MaxRequests,
			Interval:     cfg.ContentAPI.CB.Interval,
			Timeout:      cfg.ContentAPI.CB.Timeout,
			FailureRatio: cfg.ContentAPI.CB.FailureRatio,
		},
	}

	publicClient := contentapi.NewPublicClient(clientCfg, log.Logger)
	accountClient := contentapi.NewAccountClient(clientCfg, log.Logger)
	svc := service.NewAnalyticsService(publicClient, accountClient, log.Logger)

	return cfg, log, svc, nil
}

func newServeCmd(configPath *string) *cobra.Command {
	return &cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API server",
		RunE: func(_ *cobra.Command, _ []string) error {
			cfg, log, svc, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			log.Info("starting creator-analytics-service",
				zap.String("env", cfg.App.Env),
				zap.Int("port", cfg.App.Port),
				zap.String("content_api", cfg.ContentAPI.BaseURL),
			)

			server := httpserver.NewServer(
				httpserver.ServerConfig{
					AppName:   cfg.App.Name,
					BodyLimit: 1024 * 1024, // 1MB
				},
				svc,
				validator.New(),
				log.Logger,
			)

			// Graceful shutdown
			go func() {
				sigChan := make(chan os.Signal, 1)
				signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
				<-sigChan

				log.Info("shutdown signal received")

				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				if err := server.App.ShutdownWithContext(ctx); err != nil {
					log.Error("server shutdown error", zap.Error(err))
				}
			}()

			return server.Start(cfg.App.Port)
		},
	}
}

func newReportCmd(configPath *string) *cobra.Command {
	var (
		userID    string
		followers int
		following int
		posts     int
		token     string
	)

	cmd := &cobra.Command{
		Use:   "report",
		Short: "Aggregate one user's analytics and print the result as JSON",
		RunE: func(cmd *cobra.Command, _ []string) error {
			_, log, svc, err := bootstrap(*configPath)
			if err != nil {
				return err
			}
			defer func() { _ = log.Sync() }()

			ctx := cmd.Context()
			if token != "" {
				ctx = contentapi.WithToken(ctx, token)
			}

			data := svc.GetUserAnalytics(ctx, domain.User{
				ID:             userID,
				FollowersCount: followers,
				FollowingCount: following,
				PostsCount:     posts,
			})

			out, err := json.MarshalIndent(data, "", "  ")
			if err != nil {
				return err
			}

			cmd.Println(string(out))

			return nil
		},
	}

	cmd.Flags().StringVar(&userID, "user-id", "", "user to aggregate analytics for")
	cmd.Flags().IntVar(&followers, "followers", 0, "user's follower count")
	cmd.Flags().IntVar(&following, "following", 0, "user's following count")
	cmd.Flags().IntVar(&posts, "posts", 0, "user's post count")
	cmd.Flags().StringVar(&token, "token", "", "bearer token for account-scoped collections")
	_ = cmd.MarkFlagRequired("user-id")

	return cmd
}
