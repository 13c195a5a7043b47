package main

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/revelaction/segvso/record"
	"github.com/revelaction/segvso/stat"
)

func statCmd(ui UI) *cli.Command {
	return &cli.Command{
		Name:      "stat",
		Usage:     "compare the records with the storylines of a reference file",
		UsageText: "segvso stat <records.txt> <reference.txt>",
		Action: func(c *cli.Context) error {
			if c.NArg() != 2 {
				return errors.New("stat needs a record file and a reference file")
			}

			records, err := os.Open(c.Args().Get(0))
			if err != nil {
				return err
			}
			defer records.Close()

			reference, err := os.Open(c.Args().Get(1))
			if err != nil {
				return err
			}
			defer reference.Close()

			return statCommand(records, reference, ui)
		},
	}
}

// statCommand reads both files line by line, in parallel. It stops at the end
// of the shorter one.
func statCommand(records, reference io.Reader, ui UI) error {
	var a stat.Analysis

	rd := record.NewReader(records)
	ref := bufio.NewScanner(reference)
	ref.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	lines := 0
	for {
		rec, err := rd.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return err
		}

		if !ref.Scan() {
			break
		}

		a.AddGroup(stat.Storylines(ref.Text()), rec.Group)
		lines++
	}

	if err := ref.Err(); err != nil {
		return err
	}

	fmt.Fprintf(ui.Out, "lines %d, clauses %d, storyline words %d\n", lines, a.Clauses, a.Storyline)
	for i, name := range []string{"verb", "subject", "object"} {
		fmt.Fprintf(ui.Out, "%-16s %6d / %6d  %.3f\n", name, a.HitVSO[i], a.AllVSO[i], stat.Rate(a.HitVSO[i], a.AllVSO[i]))
	}
	for i, name := range []string{"subject tokens", "object tokens"} {
		fmt.Fprintf(ui.Out, "%-16s %6d / %6d  %.3f\n", name, a.HitNonCore[i], a.AllNonCore[i], stat.Rate(a.HitNonCore[i], a.AllNonCore[i]))
	}
	fmt.Fprintf(ui.Out, "%-16s %6d\n", "other", a.Other)

	return nil
}
