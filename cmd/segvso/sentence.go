package main

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segvso/dep"
	"github.com/revelaction/segvso/render"
	"github.com/revelaction/segvso/seq"
	"github.com/revelaction/segvso/storage"
)

type SentenceOptions struct {
	NoColor bool
}

func sentenceCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "sentence",
		Usage:     "show the tokens and the extracted clause of a sentence",
		UsageText: "segvso sentence -d <docs> <doc id> <sentence id>",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "no colors"},
		},
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("sentence needs a doc id and a sentence id")
			}

			docId, err := strconv.Atoi(c.Args().Get(0))
			if err != nil {
				return fmt.Errorf("invalid doc id: %w", err)
			}

			sentId, err := strconv.Atoi(c.Args().Get(1))
			if err != nil {
				return fmt.Errorf("invalid sentence id: %w", err)
			}

			e, err := newEnv(c, ui)
			if err != nil {
				return err
			}

			p := &Pool{size: 1}
			defer p.Close()

			repo, err := NewDocRepository(p, c.String("doc-path"))
			if err != nil {
				return err
			}

			return sentenceCommand(repo, SentenceOptions{NoColor: c.Bool("no-color")}, docId, sentId, e, ui)
		},
	}
}

func sentenceCommand(repo storage.DocReader, opts SentenceOptions, docId int, sentId int, e env, ui UI) error {
	doc, err := repo.Read(docId)
	if err != nil {
		return err
	}

	if sentId < 0 || sentId >= len(doc.Sentences) {
		return fmt.Errorf("sentence index %d out of bounds (0-%d)", sentId, len(doc.Sentences)-1)
	}

	s := doc.Sentences[sentId]
	s.DocId, s.Id = docId, sentId

	c := e.cfg.Extractor().Extract(dep.FromTokens(s.Tokens, e.cfg.Pos()))

	r := render.NewRenderer(ui.Out)
	r.HasColor = !opts.NoColor
	r.Sentence(s, c)
	fmt.Fprintln(ui.Out)

	r.Tokens(s)
	fmt.Fprintln(ui.Out)

	fmt.Fprintln(ui.Out, r.Sequence(seq.Encode(c)))
	r.Clause(c)

	return nil
}
