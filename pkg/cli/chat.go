package cli

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heirs-lab/prince/pkg/cli/config"
	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

func cmdChat() *cli.Command {
	var phone string
	var repoCfg config.Repository
	var llmCfg config.LLM
	var searchCfg config.Search

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "phone",
			Usage:       "Phone number identifying the customer",
			Required:    true,
			Sources:     cli.EnvVars("PRINCE_PHONE"),
			Destination: &phone,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)
	flags = append(flags, searchCfg.Flags()...)

	return &cli.Command{
		Name:    "chat",
		Aliases: []string{"c"},
		Usage:   "Chat with the assistant interactively on the terminal",
		Flags:   flags,
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

			uc, err := buildUseCases(ctx, repo, &llmCfg, &searchCfg)
			if err != nil {
				return err
			}

			session := model.NewSession(phone)
			fmt.Println("Prince interactive chat. Type 'exit' to quit.")

			scanner := bufio.NewScanner(os.Stdin)
			for {
				fmt.Print("You: ")
				if !scanner.Scan() {
					break
				}

				input := strings.TrimSpace(scanner.Text())
				if input == "" {
					continue
				}
				if strings.EqualFold(input, "exit") {
					fmt.Println("Prince: Goodbye!")
					break
				}

				reply, err := uc.Chat.HandleMessage(ctx, session, input)
				if err != nil {
					logging.Default().Error("failed to handle message", "error", err)
					fmt.Println("Prince: Sorry, something went wrong. Please try again.")
					continue
				}

				fmt.Printf("Prince: %s\n", reply)
			}

			if err := scanner.Err(); err != nil {
				return goerr.Wrap(err, "failed to read input")
			}
			return nil
		},
	}
}
