package main

import (
	"Food-Recipes-Backend/cmd/config"
	migration "Food-Recipes-Backend/cmd/database/migrate"
	"Food-Recipes-Backend/internal/utils"
	"Food-Recipes-Backend/internal/utils/storage"
	"Food-Recipes-Backend/pkg/seed"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v3"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// overridden during build with ldflags
var version = "dev"

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := newRootCmd().Run(ctx, os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cli.Command {
	return &cli.Command{
		Name:    config.AppName,
		Usage:   "Recipe catalog API and seed tooling",
		Version: version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Value:   utils.DefaultConfigPath,
				Usage:   "path to the YAML config file; environment variables override it",
			},
		},
		Commands: []*cli.Command{
			serveCmd(),
			migrateCmd(),
			seedCmd(),
		},
	}
}

func serveCmd() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Serve the recipe HTTP API",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "port",
				Usage: "listen port (overrides APP_PORT)",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDB(cmd, func(cfg *utils.Config, db *gorm.DB, logger *zap.Logger) error {
				if port := cmd.String("port"); port != "" {
					cfg.AppPort = port
				}

				app, err := config.NewApp(db, cfg, logger)
				if err != nil {
					return err
				}

				errCh := make(chan error, 1)
				go func() {
					logger.Info("server listening", zap.String("port", cfg.AppPort), zap.String("version", version))
					errCh <- app.Listen(":" + cfg.AppPort)
				}()

				select {
				case err := <-errCh:
					return err
				case <-ctx.Done():
					logger.Info("shutting down server")
					return app.ShutdownWithTimeout(10 * time.Second)
				}
			})
		},
	}
}

func migrateCmd() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Create missing tables without touching existing data",
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDB(cmd, func(_ *utils.Config, db *gorm.DB, logger *zap.Logger) error {
				return migration.Migrate(db.WithContext(ctx), logger)
			})
		},
	}
}

func seedCmd() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Drop all tables, recreate them and load a seed bundle",
		Description: `Loads a JSON or YAML seed bundle into an empty schema. Existing data is
destroyed. The bundle may be a local file or an S3 object (s3://bucket/key).`,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "file",
				Aliases: []string{"f"},
				Value:   "seedData.json",
				Usage:   "seed bundle location: local path or s3://bucket/key",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			return withDB(cmd, func(cfg *utils.Config, db *gorm.DB, logger *zap.Logger) error {
				location := cmd.String("file")

				var s3 storage.AwsS3
				if storage.IsS3URI(location) {
					var err error
					s3, err = storage.NewAwsS3(ctx, storage.S3Config{
						Region:    cfg.AWSS3Region,
						AccessKey: cfg.AWSAccessKey,
						SecretKey: cfg.AWSSecretKey,
						Endpoint:  cfg.AWSS3Endpoint,
						PathStyle: cfg.AWSS3PathStyle,
					})
					if err != nil {
						return err
					}
				}

				bundle, err := seed.ReadBundle(ctx, location, s3)
				if err != nil {
					logger.Error("error reading seed bundle", zap.String("location", location), zap.Error(err))
					return err
				}

				utils.InitValidator()
				if _, err := seed.NewLoader(db, utils.Validate, logger).Load(ctx, bundle); err != nil {
					logger.Error("error during seeding", zap.Error(err))
					return err
				}
				return nil
			})
		},
	}
}

// withDB loads configuration, opens the store and always closes it after fn.
func withDB(cmd *cli.Command, fn func(*utils.Config, *gorm.DB, *zap.Logger) error) (err error) {
	cfg, err := utils.LoadConfig(cmd.String("config"))
	if err != nil {
		return err
	}

	logger, err := utils.NewLogger(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		return fmt.Errorf("build logger: %w", err)
	}
	defer func() { _ = logger.Sync() }()

	db, err := config.ConnectDB(cfg)
	if err != nil {
		logger.Error("database connection failed", zap.String("driver", cfg.DBDriver), zap.Error(err))
		return err
	}
	defer func() {
		if cerr := config.CloseDB(db); cerr != nil {
			err = errors.Join(err, fmt.Errorf("close database: %w", cerr))
		}
	}()

	return fn(cfg, db, logger)
}
