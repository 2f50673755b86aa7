package config_test

import (
	"errors"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/heirs-lab/prince/pkg/cli/config"
)

func TestLogger_Configure(t *testing.T) {
	t.Run("rejects unknown log level", func(t *testing.T) {
		cfg := config.NewLoggerForTest("verbose", "console", "-")
		_, err := cfg.Configure()
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidLogLevel)).True()
	})

	t.Run("rejects unknown log format", func(t *testing.T) {
		cfg := config.NewLoggerForTest("info", "xml", "-")
		_, err := cfg.Configure()
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidLogFormat)).True()
	})

	t.Run("opens a log file for path output", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "prince.log")
		cfg := config.NewLoggerForTest("debug", "json", path)
		closer, err := cfg.Configure()
		gt.NoError(t, err).Required()
		closer()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewLoggerForTest("", "", "")
		gt.Value(t, len(cfg.Flags())).Equal(3)
	})
}

func TestLLM_Configure(t *testing.T) {
	t.Run("returns nil client when openai key is empty", func(t *testing.T) {
		cfg := config.NewLLMForTest("openai", "", "")
		client, err := cfg.Configure(t.Context())
		gt.NoError(t, err)
		gt.Value(t, client).Nil()
	})

	t.Run("returns nil client when gemini project is empty", func(t *testing.T) {
		cfg := config.NewLLMForTest("gemini", "", "")
		client, err := cfg.Configure(t.Context())
		gt.NoError(t, err)
		gt.Value(t, client).Nil()
	})

	t.Run("rejects unknown provider", func(t *testing.T) {
		cfg := config.NewLLMForTest("llama", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
		gt.Bool(t, errors.Is(err, config.ErrInvalidLLMProvider)).True()
	})

	t.Run("returns flags", func(t *testing.T) {
		cfg := config.NewLLMForTest("", "", "")
		gt.Value(t, len(cfg.Flags())).Equal(5)
	})
}

func TestSearch_Configure(t *testing.T) {
	t.Run("returns nil service when API key is empty", func(t *testing.T) {
		cfg := config.NewSearchForTest("")
		svc, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Value(t, svc).Nil()
	})

	t.Run("returns a service when API key is set", func(t *testing.T) {
		cfg := config.NewSearchForTest("test-key")
		svc, err := cfg.Configure()
		gt.NoError(t, err)
		gt.Value(t, svc).NotNil()
	})
}

func TestRepository_Configure(t *testing.T) {
	t.Run("memory backend needs no project", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("memory", "", "")
		repo, err := cfg.Configure(t.Context())
		gt.NoError(t, err).Required()
		gt.Value(t, repo).NotNil()
		gt.NoError(t, repo.Close())
	})

	t.Run("firestore backend requires project ID", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("firestore", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})

	t.Run("rejects unknown backend", func(t *testing.T) {
		cfg := config.NewRepositoryForTest("postgres", "", "")
		_, err := cfg.Configure(t.Context())
		gt.Error(t, err)
	})
}
