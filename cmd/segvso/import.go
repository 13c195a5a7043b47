package main

import (
	"context"
	"fmt"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/segvso/storage/filesystem"
	"github.com/revelaction/segvso/storage/sqlite/zombiezen"
)

type ImportOptions struct {
	From     string
	To       string
	Progress bool
}

func importCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "import",
		Usage:     "import a directory of JSON and CoNLL-U documents into a SQLite file",
		UsageText: "segvso import --from <dir> --to <docs.db>",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "from", Required: true, Usage: "directory of .json and .conllu docs"},
			&cli.StringFlag{Name: "to", Required: true, Usage: "SQLite file, created if missing"},
			noProgressFlag(),
		},
		Action: func(c *cli.Context) error {
			e, err := newEnv(c, ui)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			opts := ImportOptions{
				From:     c.String("from"),
				To:       c.String("to"),
				Progress: !c.Bool("no-progress"),
			}
			return importCommand(c.Context, opts, e, ui)
		},
	}
}

func importCommand(ctx context.Context, opts ImportOptions, e env, ui UI) error {
	src, err := filesystem.NewDocStore(opts.From)
	if err != nil {
		return err
	}

	pool, err := zombiezen.NewPool(opts.To, 1)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(ctx, pool, zombiezen.SchemaDocs, zombiezen.SchemaRecords); err != nil {
		return fmt.Errorf("failed to create tables: %w", err)
	}

	dst := zombiezen.NewDocStore(pool)

	fmt.Fprintf(ui.Out, "Reading docs from %s...\n", opts.From)
	docs, err := src.List()
	if err != nil {
		return err
	}

	bar := newProgress(opts.Progress, len(docs))

	count := 0
	for _, meta := range docs {
		doc, err := src.Read(meta.Id)
		if err != nil {
			bar.Stop()
			return fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		id, err := dst.Write(doc)
		if err != nil {
			bar.Stop()
			return fmt.Errorf("failed to write doc %s: %w", meta.Title, err)
		}

		e.logger.Debug("imported", zap.String("title", meta.Title), zap.Int("id", id), zap.Int("sentences", len(doc.Sentences)))
		count++
		bar.Incr()
	}
	bar.Stop()

	fmt.Fprintf(ui.Out, "Successfully imported %d docs from %s to %s\n", count, opts.From, opts.To)
	return nil
}
