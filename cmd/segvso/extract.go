package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"github.com/revelaction/segvso/batch"
	"github.com/revelaction/segvso/record"
	sent "github.com/revelaction/segvso/sentence"
	"github.com/revelaction/segvso/storage"
	"github.com/revelaction/segvso/storage/sqlite/zombiezen"
)

type ExtractOptions struct {
	DocPath  string
	Out      string
	Workers  int
	MaxDepth int
	Progress bool
}

func extractCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "extract",
		Usage:     "extract the tagged sequences of every document",
		UsageText: "segvso extract -d <docs> [--out records.txt|records.db]",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.StringFlag{Name: "out", Aliases: []string{"o"}, Usage: "record file, or SQLite file with .db extension. Default stdout"},
			&cli.IntFlag{Name: "workers", Aliases: []string{"w"}, Usage: "parallel workers, overrides the config"},
			&cli.IntFlag{Name: "max-depth", Usage: "subordinate clause nesting bound, overrides the config"},
			noProgressFlag(),
		},
		Action: func(c *cli.Context) error {
			e, err := newEnv(c, ui)
			if err != nil {
				return err
			}
			defer e.logger.Sync()

			opts := ExtractOptions{
				DocPath:  c.String("doc-path"),
				Out:      c.String("out"),
				Workers:  c.Int("workers"),
				MaxDepth: c.Int("max-depth"),
				Progress: !c.Bool("no-progress"),
			}
			return extractCommand(c.Context, opts, e, ui)
		},
	}
}

func extractCommand(ctx context.Context, opts ExtractOptions, e env, ui UI) error {
	if opts.Workers > 0 {
		e.cfg.Workers = opts.Workers
	}
	if opts.MaxDepth > 0 {
		e.cfg.MaxDepth = opts.MaxDepth
	}

	p := &Pool{size: e.cfg.Workers}
	defer p.Close()

	repo, err := NewDocRepository(p, opts.DocPath)
	if err != nil {
		return err
	}

	docs, err := readDocs(repo, opts.Progress)
	if err != nil {
		return err
	}

	e.logger.Info("extract", zap.String("docs", opts.DocPath), zap.Int("num", len(docs)), zap.Int("workers", e.cfg.Workers))

	runner := batch.NewRunner(e.cfg.Extractor())
	runner.Pos = e.cfg.Pos()
	runner.Workers = e.cfg.Workers
	runner.LogEvery = e.cfg.LogEvery
	runner.Logger = e.logger

	bar := newProgress(opts.Progress, len(docs))
	runner.OnDoc = func(batch.Result) { bar.Incr() }

	results, err := runner.Run(ctx, docs)
	bar.Stop()
	if err != nil {
		return err
	}

	if filepath.Ext(opts.Out) == ".db" {
		return writeRecordStore(ctx, opts.Out, results)
	}

	return writeRecordFile(opts.Out, results, ui)
}

// readDocs reads every document of the repository.
func readDocs(repo storage.DocReader, withProgress bool) ([]sent.Doc, error) {
	list, err := repo.List()
	if err != nil {
		return nil, err
	}

	bar := newProgress(withProgress, len(list))
	defer bar.Stop()

	docs := make([]sent.Doc, 0, len(list))
	for _, meta := range list {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			return nil, fmt.Errorf("failed to read doc %s: %w", meta.Title, err)
		}

		doc.Id = meta.Id
		if doc.Title == "" {
			doc.Title = meta.Title
		}
		docs = append(docs, doc)
		bar.Incr()
	}

	return docs, nil
}

func writeRecordFile(path string, results []batch.Result, ui UI) error {
	if path == "" {
		return writeRecords(ui.Out, results)
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if err := writeRecords(f, results); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}

func writeRecords(out io.Writer, results []batch.Result) error {
	w := record.NewWriter(out)
	for _, res := range results {
		if err := w.Write(record.Record{Title: res.Title, Group: res.Group()}); err != nil {
			return err
		}
	}

	return w.Flush()
}

func writeRecordStore(ctx context.Context, path string, results []batch.Result) error {
	pool, err := zombiezen.NewPool(path, 1)
	if err != nil {
		return err
	}
	defer pool.Close()

	if err := zombiezen.CreateSchemas(ctx, pool, zombiezen.SchemaRecords); err != nil {
		return err
	}

	store := zombiezen.NewRecordStore(pool)
	for _, res := range results {
		if err := store.WriteRecords(res.Rows); err != nil {
			return fmt.Errorf("failed to write records of %s: %w", res.Title, err)
		}
	}

	return nil
}
