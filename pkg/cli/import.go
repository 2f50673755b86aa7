package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/pelletier/go-toml/v2"
	"github.com/urfave/cli/v3"

	"github.com/heirs-lab/prince/pkg/cli/config"
	"github.com/heirs-lab/prince/pkg/domain/model"
	"github.com/heirs-lab/prince/pkg/utils/logging"
)

// knowledgeFile is the TOML layout for knowledge-base imports:
//
//	[[document]]
//	content = "Heirs Life term insurance covers ..."
type knowledgeFile struct {
	Documents []knowledgeDocument `toml:"document"`
}

type knowledgeDocument struct {
	Content string `toml:"content"`
}

func cmdImport() *cli.Command {
	var path string
	var repoCfg config.Repository
	var llmCfg config.LLM

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "file",
			Aliases:     []string{"f"},
			Usage:       "TOML file with knowledge documents to import",
			Required:    true,
			Destination: &path,
		},
	}
	flags = append(flags, repoCfg.Flags()...)
	flags = append(flags, llmCfg.Flags()...)

	return &cli.Command{
		Name:    "import",
		Aliases: []string{"i"},
		Usage:   "Embed and store knowledge-base documents",
		Flags:   flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			// #nosec G304 - path is expected to be provided by CLI argument
			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read knowledge file", goerr.V("path", path))
			}

			var kf knowledgeFile
			if err := toml.Unmarshal(data, &kf); err != nil {
				return goerr.Wrap(err, "failed to parse knowledge file", goerr.V("path", path))
			}
			if len(kf.Documents) == 0 {
				return goerr.New("no documents found in knowledge file", goerr.V("path", path))
			}

			contents := make([]string, len(kf.Documents))
			for i, doc := range kf.Documents {
				if doc.Content == "" {
					return goerr.New("document content is empty", goerr.V("index", i))
				}
				contents[i] = doc.Content
			}

			llmClient, err := llmCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to configure LLM client")
			}
			if llmClient == nil {
				return goerr.New("LLM credentials are required to embed documents")
			}

			repo, err := repoCfg.Configure(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to initialize repository")
			}
			defer func() {
				if err := repo.Close(); err != nil {
					logging.Default().Error("failed to close repository", "error", err.Error())
				}
			}()

			embeddings, err := llmClient.GenerateEmbedding(ctx, model.EmbeddingDimension, contents)
			if err != nil {
				return goerr.Wrap(err, "failed to generate embeddings")
			}
			if len(embeddings) != len(contents) {
				return goerr.New("embedding count mismatch",
					goerr.V("documents", len(contents)),
					goerr.V("embeddings", len(embeddings)))
			}

			for i, content := range contents {
				embedding := make([]float32, len(embeddings[i]))
				for j, v := range embeddings[i] {
					embedding[j] = float32(v)
				}

				created, err := repo.Knowledge().Create(ctx, &model.Knowledge{
					Content:   content,
					Embedding: embedding,
				})
				if err != nil {
					return goerr.Wrap(err, "failed to store knowledge document", goerr.V("index", i))
				}

				logging.Default().Info("Imported knowledge document", "id", created.ID)
			}

			logging.Default().Info("Knowledge import completed", "count", len(contents))
			return nil
		},
	}
}
