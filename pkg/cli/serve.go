package cli

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heirs-lab/prince/pkg/cli/config"
	httpctrl "github.com/heirs-lab/prince/pkg/controller/http"
	"github.com/heirs-lab/prince/pkg/service/worker"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

func cmdServe() *cli.Command {
	var addr string
	var birthdayInterval time.Duration
	var repoCfg config.Repository
	var llmCfg config.LLM
	var searchCfg config.Search

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "addr",
			Usage:       "HTTP server address",
			Value:       ":8080",
			Sources:     cli.EnvVars("PRINCE_ADDR"),
			Destination: &addr,
		},
		&cli.DurationFlag{
			Name:        "birthday-interval",
			Usage:       "Interval between birthday greeting sweeps",
			Value:       24 * time.Hour,
			Sources:     cli.EnvVars("PRINCE_BIRTHDAY_INTERVAL"),
			Destination: &birthdayInterval,
		},
	}

	// Add shared config flags
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, searchCfg.Flags()...)

	return &cli.Command{
		Name:    "serve",
		Aliases: []string{"s"},
		Usage:   "Start HTTP server",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// Initialize repository based on backend type
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc, err := buildUseCases(ctx, repo, &llmCfg, &searchCfg)
			if err != nil {
				return err
			}

			// Start birthday greeting worker
			birthdayWorker := worker.NewBirthdayWorker(uc.Birthday, birthdayInterval)
			if err := birthdayWorker.Start(ctx); err != nil {
				return goerr.Wrap(err, "failed to start birthday worker")
			}

			server := &http.Server{
				Addr:              addr,
				Handler:           httpctrl.New(uc.Chat),
				ReadHeaderTimeout: 30 * time.Second,
			}

			// Setup signal handling for graceful shutdown
			sigCh := make(chan os.Signal, 1)
			signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

			// Start server in goroutine
			errCh := make(chan error, 1)
			go func() {
				logging.Default().Info("Starting HTTP server", "addr", addr)
				if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
					errCh <- goerr.Wrap(err, "failed to start server")
				}
			}()

			// Wait for shutdown signal or server error
			select {
			case err := <-errCh:
				return err
			case sig := <-sigCh:
				logging.Default().Info("Received shutdown signal", "signal", sig)

				// Stop birthday worker first
				birthdayWorker.Stop()

				// Create shutdown context with timeout
				shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()

				// Attempt graceful shutdown
				if err := server.Shutdown(shutdownCtx); err != nil {
					return goerr.Wrap(err, "failed to shutdown server gracefully")
				}

				logging.Default().Info("Server shutdown completed")
				return nil
			}
		},
	}
}
