package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segvso/record"
	"github.com/revelaction/segvso/stat"
	"github.com/revelaction/segvso/storage"
)

func countCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "count",
		Usage:     "count the tokens of a record file, or of the documents",
		UsageText: "segvso count [records.txt]\nsegvso count --docs -d <docs>",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "docs", Usage: "count the sentences and tokens of the documents"},
			&cli.StringFlag{Name: "doc-path", Aliases: []string{"d"}, Usage: "Path to docs directory or SQLite file", EnvVars: []string{envDocPath}},
		},
		Action: func(c *cli.Context) error {
			if c.Bool("docs") {
				if c.String("doc-path") == "" {
					return errors.New("Doc path must be specified via -d or " + envDocPath)
				}

				p := &Pool{size: 1}
				defer p.Close()

				repo, err := NewDocRepository(p, c.String("doc-path"))
				if err != nil {
					return err
				}
				return countDocsCommand(repo, ui)
			}

			in, closeIn, err := openInput(c.Args().First(), ui)
			if err != nil {
				return err
			}
			defer closeIn()

			return countCommand(in, ui)
		},
	}
}

func countCommand(in io.Reader, ui UI) error {
	counter := stat.NewCounter()
	rd := record.NewReader(in)
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}
		counter.Add(rec)
	}

	fmt.Fprintf(ui.Out, "vocabulary: %d\n", counter.Vocabulary())
	fmt.Fprintf(ui.Out, "avg tag: %.2f\n", counter.AvgTagged())
	fmt.Fprintf(ui.Out, "avg notag: %.2f\n", counter.AvgUntagged())
	fmt.Fprintf(ui.Out, "line count: %d\n", counter.Lines)
	fmt.Fprintf(ui.Out, "sentence count: %d\n", counter.Clauses)
	return nil
}

func countDocsCommand(repo storage.DocReader, ui UI) error {
	list, err := repo.List()
	if err != nil {
		return err
	}

	hdl := stat.NewHandler()
	for _, meta := range list {
		doc, err := repo.Read(meta.Id)
		if err != nil {
			return err
		}
		hdl.Aggregate(doc)
	}

	stats := hdl.Get()
	fmt.Fprintf(ui.Out, "Num docs %d, num sentences %d, num tokens %d, num tokens per sentence %d\n", stats.NumDocs, stats.NumSentences, stats.NumTokens, stats.TokensPerSentenceMean)
	return nil
}
