package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segvso/record"
	"github.com/revelaction/segvso/render"
)

type DecodeOptions struct {
	Format  string
	JSON    bool
	NoColor bool
	Prefix  bool
}

func decodeCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "decode",
		Usage:     "decode a record file into verb, subject and object triples",
		UsageText: "segvso decode [--json] [--format seq|triple|tokens] [records.txt]\n\nReads stdin when no file is given.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "format", Aliases: []string{"f"}, Value: "triple", Usage: "seq, triple or tokens"},
			&cli.BoolFlag{Name: "json", Usage: "one JSON object per record"},
			&cli.BoolFlag{Name: "no-color", Usage: "no colors"},
			&cli.BoolFlag{Name: "prefix", Usage: "prefix lines with the record title and number"},
		},
		Action: func(c *cli.Context) error {
			opts := DecodeOptions{
				Format:  c.String("format"),
				JSON:    c.Bool("json"),
				NoColor: c.Bool("no-color"),
				Prefix:  c.Bool("prefix"),
			}

			in, closeIn, err := openInput(c.Args().First(), ui)
			if err != nil {
				return err
			}
			defer closeIn()

			return decodeCommand(in, opts, ui)
		},
	}
}

func decodeCommand(in io.Reader, opts DecodeOptions, ui UI) error {
	if !validFormat(opts.Format) {
		return fmt.Errorf("unknown format %q, supported: %v", opts.Format, render.SupportedFormats())
	}

	jr := render.NewJSONRenderer(ui.Out)
	r := render.NewRenderer(ui.Out)
	r.Format = opts.Format
	r.HasColor = !opts.NoColor
	r.HasPrefix = opts.Prefix

	rd := record.NewReader(in)
	for n := 0; ; n++ {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			return nil
		}
		if err != nil {
			return err
		}

		if opts.JSON {
			if err := jr.Render(rec.Title, rec.Group); err != nil {
				return err
			}
			continue
		}

		r.AddDocName(n, rec.Title)
		r.Group(n, 0, rec.Group)
	}
}

func validFormat(f string) bool {
	for _, s := range render.SupportedFormats() {
		if s == f {
			return true
		}
	}
	return false
}

// openInput opens path, or returns the UI input for an empty path or "-".
func openInput(path string, ui UI) (io.Reader, func(), error) {
	if path == "" || path == "-" {
		return ui.In, func() {}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, nil, err
	}
	return f, func() { f.Close() }, nil
}
