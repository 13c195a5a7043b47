package record

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		in   Record
		want string
	}{
		{Record{Title: "the dog", Group: "<v> ran <s> dog <o> <none>"}, "the dog <EOT> <v> ran <s> dog <o> <none> <EOSC>"},
		{Record{Group: "<v> ran <s> dog <o> <none>"}, "<v> ran <s> dog <o> <none> <EOSC>"},
	}

	for _, tt := range tests {
		if got := Format(tt.in); got != tt.want {
			t.Errorf("expected %q, got %q", tt.want, got)
		}
	}
}

func TestParse(t *testing.T) {
	r, err := Parse("the dog <EOT> <v> ran <s> dog <o> <none> # <v> sat <s> <none> <o> <none> <EOSC>\n")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if r.Title != "the dog" {
		t.Errorf("unexpected title %q", r.Title)
	}
	if r.Group != "<v> ran <s> dog <o> <none> # <v> sat <s> <none> <o> <none>" {
		t.Errorf("unexpected group %q", r.Group)
	}

	// older record files glue the sentinel without space
	r, err = Parse("<v> ran <s> dog <o> <none><EOSC>")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if r.Title != "" || r.Group != "<v> ran <s> dog <o> <none>" {
		t.Errorf("unexpected record %+v", r)
	}
}

func TestParseMalformed(t *testing.T) {
	_, err := Parse("<v> ran <s> dog <o> <none>")
	if !errors.Is(err, ErrMalformed) {
		t.Fatalf("expected ErrMalformed, got %v", err)
	}
}

func TestWriterReader(t *testing.T) {
	var buf bytes.Buffer
	w := NewWriter(&buf)
	records := []Record{
		{Title: "one", Group: "<v> a <s> b <o> c"},
		{Group: "<v> d <s> e <o> f"},
	}
	for _, r := range records {
		if err := w.Write(r); err != nil {
			t.Fatalf("write: %v", err)
		}
	}
	if err := w.Flush(); err != nil {
		t.Fatalf("flush: %v", err)
	}

	// blank lines between records are ignored
	in := strings.Replace(buf.String(), "\n", "\n\n", 1)
	r := NewReader(strings.NewReader(in))

	var got []Record
	for {
		rec, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("read: %v", err)
		}
		got = append(got, rec)
	}

	if len(got) != 2 || got[0] != records[0] || got[1] != records[1] {
		t.Fatalf("expected %+v, got %+v", records, got)
	}
}

func TestReaderReportsLine(t *testing.T) {
	r := NewReader(strings.NewReader("<v> a <s> b <o> c <EOSC>\nbroken\n"))
	if _, err := r.Read(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	_, err := r.Read()
	if !errors.Is(err, ErrMalformed) || !strings.Contains(err.Error(), "line 2") {
		t.Fatalf("expected malformed error on line 2, got %v", err)
	}
}
