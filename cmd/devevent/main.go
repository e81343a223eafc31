package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"devevent/config"
	_ "devevent/docs"
	"devevent/internal/adapters/analytics"
	"devevent/internal/adapters/email"
	deliveryhttp "devevent/internal/delivery/http"
	"devevent/internal/delivery/http/controllers"
	"devevent/internal/repository/postgres"
	"devevent/internal/services"
	"devevent/internal/usecase"
	"devevent/internal/web"
)

func main() {
	app := &cli.App{
		Name:  "devevent",
		Usage: "List developer events and take bookings.",
		Commands: []*cli.Command{
			serveCommand(),
			migrateCommand(),
			seedCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		slog.Error("Application failed", "error", err)
		os.Exit(1)
	}
}

// setup loads config and the logger shared by every command.
func setup() (*config.Config, *slog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return cfg, config.NewLogger(cfg), nil
}

func serveCommand() *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "Run the HTTP server.",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "migrate", Usage: "Apply database migrations before serving."},
		},
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(c.Context, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			provider := postgres.NewProvider(cfg.DBUrl)
			defer func() {
				if err := provider.Close(); err != nil {
					logger.Error("close database", "err", err)
				}
			}()
			db, err := provider.Open(ctx)
			if err != nil {
				return err
			}
			if c.Bool("migrate") {
				if err := postgres.Migrate(ctx, db); err != nil {
					return err
				}
			}

			mailer, err := email.NewMailer(logger, email.MailerConfig{
				Provider:    cfg.Email.Provider,
				FromAddress: cfg.Email.FromAddress,
				FromName:    cfg.Email.FromName,
				SES: email.SESConfig{
					Region:             cfg.Email.AWSRegion,
					AccessKeyID:        cfg.Email.AWSAccessKeyID,
					SecretAccessKey:    cfg.Email.AWSSecretAccessKey,
					InsecureSkipVerify: cfg.Email.InsecureSkipVerify,
				},
			})
			if err != nil {
				return fmt.Errorf("create mailer: %w", err)
			}

			tracker, err := analytics.New(logger, analytics.Config{
				Provider: cfg.Analytics.Provider,
				APIKey:   cfg.Analytics.APIKey,
				Host:     cfg.Analytics.Host,
			})
			if err != nil {
				return fmt.Errorf("create analytics: %w", err)
			}
			defer func() {
				if err := tracker.Close(); err != nil {
					logger.Warn("close analytics", "err", err)
				}
			}()

			renderer, err := email.NewTemplateRenderer()
			if err != nil {
				return err
			}

			eventRepo := postgres.NewEventRepository(db)
			bookingRepo := postgres.NewBookingRepository(db)

			eventService := services.NewEventService(logger, eventRepo)
			emailService := services.NewEmailService(logger, mailer, renderer)
			bookingService := services.NewBookingService(logger, bookingRepo, eventRepo, emailService, cfg.PublicBaseURL)
			bookingAction := services.NewBookingAction(bookingService)

			pages, err := web.NewServer(logger, eventService, bookingAction, tracker)
			if err != nil {
				return err
			}

			handler := deliveryhttp.NewRouter(logger, cfg.AllowedOrigins,
				controllers.NewEventController(logger, eventService, cfg.IsProduction()),
				controllers.NewBookingController(logger, bookingAction),
				pages,
			)

			srv := &http.Server{
				Addr:              ":" + cfg.Port,
				Handler:           handler,
				ReadHeaderTimeout: 5 * time.Second,
				ReadTimeout:       10 * time.Second,
				WriteTimeout:      15 * time.Second,
				IdleTimeout:       60 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("server listening", "addr", srv.Addr, "env", cfg.Environment)
				if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
					errCh <- err
				}
				close(errCh)
			}()

			select {
			case err := <-errCh:
				if err != nil {
					return fmt.Errorf("http server: %w", err)
				}
			case <-ctx.Done():
			}

			logger.Info("shutting down")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			return srv.Shutdown(shutdownCtx)
		},
	}
}

func migrateCommand() *cli.Command {
	return &cli.Command{
		Name:  "migrate",
		Usage: "Apply database migrations.",
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			provider := postgres.NewProvider(cfg.DBUrl)
			defer provider.Close()

			db, err := provider.Open(c.Context)
			if err != nil {
				return err
			}
			if err := postgres.Migrate(c.Context, db); err != nil {
				return err
			}
			logger.Info("migrations applied")
			return nil
		},
	}
}

func seedCommand() *cli.Command {
	return &cli.Command{
		Name:  "seed",
		Usage: "Import an event catalogue from a YAML file or URL.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "file", Value: "seed/events.yaml", Usage: "Catalogue path or http(s) URL."},
			&cli.DurationFlag{Name: "timeout", Value: 30 * time.Second, Usage: "Abort the import after this long."},
		},
		Action: func(c *cli.Context) error {
			cfg, logger, err := setup()
			if err != nil {
				return err
			}
			provider := postgres.NewProvider(cfg.DBUrl)
			defer provider.Close()

			db, err := provider.Open(c.Context)
			if err != nil {
				return err
			}

			importer := usecase.NewImportEventsUseCase(logger, postgres.NewEventRepository(db), usecase.NewCatalogueFetcher(nil), c.Duration("timeout"))
			result, err := importer.Import(c.Context, c.String("file"))
			if err != nil {
				return err
			}
			logger.Info("seed complete", "imported", result.Imported)
			return nil
		},
	}
}
