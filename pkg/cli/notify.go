package cli

import (
	"context"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heirs-lab/prince/pkg/cli/config"
	"github.com/heirs-lab/prince/pkg/usecase"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

func cmdNotify() *cli.Command {
	var repoCfg config.Repository

	return &cli.Command{
		Name:    "notify",
		Aliases: []string{"n"},
		Usage:   "Run one birthday greeting sweep and exit",
		Flags:   repoCfg.Flags(),
		Action: func(ctx context.Context, c *cli.Command) error {
			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			uc := usecase.New(repo)

			count, err := uc.Birthday.SendBirthdayGreetings(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to send birthday greetings")
			}

			// Greetings are dispatched on background goroutines; give
			// them a moment before the process exits.
			time.Sleep(time.Second)

			logging.Default().Info("Birthday sweep completed", "greeted", count)
			return nil
		},
	}
}
