package config

import (
	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/heirs-lab/prince/pkg/service/websearch"
)

// Search holds configuration for the Serper web search client
type Search struct {
	apiKey string
}

// Flags returns CLI flags for web search configuration
func (s *Search) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "serper-api-key",
			Usage:       "Serper API key for web search grounding",
			Sources:     cli.EnvVars("PRINCE_SERPER_API_KEY"),
			Destination: &s.apiKey,
		},
	}
}

// Configure creates a web search client from the configured flags.
// Returns nil if no API key is configured (web search grounding will
// be disabled).
func (s *Search) Configure() (websearch.Service, error) {
	if s.apiKey == "" {
		return nil, nil
	}

	svc, err := websearch.New(s.apiKey)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to create web search client")
	}

	return svc, nil
}
