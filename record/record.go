// Package record frames sentence groups as lines of a record file:
//
//	title <EOT> <v> ran <s> he <o> <none> # <v> fell <s> she <o> <none> <EOSC>
package record

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"
)

const (
	TitleSeparator = "<EOT>"
	Sentinel       = "<EOSC>"
)

// ErrMalformed is returned for lines without the record sentinel.
var ErrMalformed = errors.New("malformed record")

// Record is one line: an optional title and the tagged group of a story or
// document.
type Record struct {
	Title string
	Group string
}

// Format renders r as a line, without the line break.
func Format(r Record) string {
	if r.Title == "" {
		return r.Group + " " + Sentinel
	}

	return r.Title + " " + TitleSeparator + " " + r.Group + " " + Sentinel
}

// Parse reads a formatted line.
func Parse(line string) (Record, error) {
	line = strings.TrimSpace(line)
	body, ok := strings.CutSuffix(line, Sentinel)
	if !ok {
		return Record{}, fmt.Errorf("%w: missing %s", ErrMalformed, Sentinel)
	}

	var r Record
	if title, group, found := strings.Cut(body, TitleSeparator); found {
		r.Title = strings.TrimSpace(title)
		body = group
	}

	r.Group = strings.TrimSpace(body)
	return r, nil
}

// Writer writes records, one per line.
type Writer struct {
	w *bufio.Writer
}

func NewWriter(w io.Writer) *Writer {
	return &Writer{w: bufio.NewWriter(w)}
}

func (w *Writer) Write(r Record) error {
	if _, err := w.w.WriteString(Format(r)); err != nil {
		return err
	}
	return w.w.WriteByte('\n')
}

// Flush writes any buffered data to the underlying writer.
func (w *Writer) Flush() error {
	return w.w.Flush()
}

// Reader reads records, one per line. Blank lines are skipped.
type Reader struct {
	s    *bufio.Scanner
	line int
}

func NewReader(r io.Reader) *Reader {
	s := bufio.NewScanner(r)
	// story lines can be long
	s.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)
	return &Reader{s: s}
}

// Read returns the next record, or io.EOF.
func (r *Reader) Read() (Record, error) {
	for r.s.Scan() {
		r.line++
		text := r.s.Text()
		if strings.TrimSpace(text) == "" {
			continue
		}

		rec, err := Parse(text)
		if err != nil {
			return Record{}, fmt.Errorf("line %d: %w", r.line, err)
		}
		return rec, nil
	}

	if err := r.s.Err(); err != nil {
		return Record{}, err
	}

	return Record{}, io.EOF
}

// Line returns the number of the last line read.
func (r *Reader) Line() int {
	return r.line
}
