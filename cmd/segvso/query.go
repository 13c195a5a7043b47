package main

import (
	"github.com/urfave/cli/v2"

	"github.com/revelaction/segvso/query"
	"github.com/revelaction/segvso/render"
)

func queryCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "query",
		Usage:     "interactive prompt to decode sequences and extract sentences",
		UsageText: "segvso query -d <docs>",
		Flags: []cli.Flag{
			docPathFlag(),
			&cli.BoolFlag{Name: "no-color", Usage: "no colors"},
			&cli.BoolFlag{Name: "no-prefix", Usage: "no doc and sentence prefix"},
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: render.Defaultformat, Usage: "seq, triple or tokens"},
		},
		Action: func(c *cli.Context) error {
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

			r := render.NewRenderer(ui.Out)
			r.HasColor = !c.Bool("no-color")
			r.HasPrefix = !c.Bool("no-prefix")
			r.Format = c.String("format")

			// now present the REPL
			h := query.NewHandler(repo, e.cfg.Extractor(), e.cfg.Pos(), r)
			return h.Run()
		},
	}
}
