package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const conlluDoc = `# text = John ate cake and pie.
1	John	John	PROPN	NNP	_	2	nsubj	_	_
2	ate	eat	VERB	VBD	_	0	root	_	_
3	cake	cake	NOUN	NN	_	2	obj	_	_
4	and	and	CCONJ	CC	_	5	cc	_	_
5	pie	pie	NOUN	NN	_	3	conj	_	_

# text = He said she left.
1	He	he	PRON	PRP	_	2	nsubj	_	_
2	said	say	VERB	VBD	_	0	root	_	_
3	she	she	PRON	PRP	_	4	nsubj	_	_
4	left	leave	VERB	VBD	_	2	ccomp	_	_
`

func testUI(in string) (UI, *bytes.Buffer, *bytes.Buffer) {
	var out, errOut bytes.Buffer
	return UI{In: strings.NewReader(in), Out: &out, Err: &errOut}, &out, &errOut
}

func run(t *testing.T, in string, args ...string) (string, error) {
	t.Helper()
	ui, out, _ := testUI(in)
	err := newApp(ui).Run(append([]string{"segvso"}, args...))
	return out.String(), err
}

func docDir(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "story.conllu"), []byte(conlluDoc), 0644); err != nil {
		t.Fatalf("write doc: %v", err)
	}
	return dir
}

const group = "<v> ate <s> John <o> cake and pie # <v> said <s> He <co> left <s> she <o> <none>"

func TestExtract(t *testing.T) {
	out, err := run(t, "", "extract", "--no-progress", "-d", docDir(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "story.conllu <EOT> " + group + " <EOSC>\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestExtractToFileAndDecode(t *testing.T) {
	path := filepath.Join(t.TempDir(), "records.txt")
	if _, err := run(t, "", "extract", "--no-progress", "-w", "2", "-d", docDir(t), "--out", path); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	out, err := run(t, "", "decode", "--no-color", path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "<v> ate | <s> John | <o> cake and pie\n<v> said | <s> He | <o> left\n"
	if out != want {
		t.Errorf("expected %q, got %q", want, out)
	}
}

func TestDecodeStdinJSON(t *testing.T) {
	out, err := run(t, group+" <EOSC>\n", "decode", "--json")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, `"object":"left"`) || !strings.Contains(out, `"subject_tokens":["she"]`) {
		t.Errorf("unexpected JSON %q", out)
	}
}

func TestDecodeErrors(t *testing.T) {
	if _, err := run(t, "no sentinel\n", "decode"); err == nil || !strings.Contains(err.Error(), "line 1") {
		t.Errorf("expected malformed line error, got %v", err)
	}

	if _, err := run(t, "", "decode", "--format", "xml"); err == nil {
		t.Error("expected unknown format error")
	}
}

func TestExtractToSQLite(t *testing.T) {
	dir := t.TempDir()
	db := filepath.Join(dir, "docs.db")

	out, err := run(t, "", "import", "--no-progress", "--from", docDir(t), "--to", db)
	if err != nil {
		t.Fatalf("import: %v", err)
	}
	if !strings.Contains(out, "Successfully imported 1 docs") {
		t.Errorf("unexpected import output %q", out)
	}

	out, err = run(t, "", "extract", "--no-progress", "-d", db)
	if err != nil {
		t.Fatalf("extract: %v", err)
	}
	if !strings.Contains(out, group) {
		t.Errorf("unexpected extract output %q", out)
	}

	if _, err := run(t, "", "extract", "--no-progress", "-d", db, "--out", filepath.Join(dir, "records.db")); err != nil {
		t.Fatalf("extract to sqlite: %v", err)
	}
}

func TestSentence(t *testing.T) {
	out, err := run(t, "", "sentence", "--no-color", "-d", docDir(t), "0", "1")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	for _, want := range []string{"He said she left", "INDEX", "<v> said <s> He <co> left <s> she <o> <none>", "object-clause:"} {
		if !strings.Contains(out, want) {
			t.Errorf("expected output to contain %q, got %q", want, out)
		}
	}

	if _, err := run(t, "", "sentence", "-d", docDir(t), "0", "7"); err == nil {
		t.Error("expected out of bounds error")
	}
}

func TestCount(t *testing.T) {
	out, err := run(t, "t <EOT> "+group+" <EOSC>\n", "count")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "line count: 1") || !strings.Contains(out, "sentence count: 2") {
		t.Errorf("unexpected output %q", out)
	}

	out, err = run(t, "", "count", "--docs", "-d", docDir(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(out, "num sentences 2, num tokens 9") {
		t.Errorf("unexpected docs output %q", out)
	}
}

func TestStat(t *testing.T) {
	dir := t.TempDir()
	records := filepath.Join(dir, "records.txt")
	reference := filepath.Join(dir, "reference.txt")

	if err := os.WriteFile(records, []byte("t <EOT> "+group+" <EOSC>\n"), 0644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(reference, []byte("t <EOT> john ate pie # she left <EOL> </s> story\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "stat", records, reference)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "lines 1, clauses 2, storyline words 5") {
		t.Errorf("unexpected output %q", out)
	}

	if _, err := run(t, "", "stat", records); err == nil {
		t.Error("expected argument error")
	}
}

func TestConfigFlag(t *testing.T) {
	path := filepath.Join(t.TempDir(), "segvso.yaml")
	if err := os.WriteFile(path, []byte("verb_tags: [NOPE]\n"), 0644); err != nil {
		t.Fatal(err)
	}

	out, err := run(t, "", "--config", path, "extract", "--no-progress", "-d", docDir(t))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(out, "<v> <none> <s> <none> <o> <none> # <v> <none>") {
		t.Errorf("expected no verbs with unknown verb tags, got %q", out)
	}
}

func TestVerboseLogsToErr(t *testing.T) {
	ui, _, errOut := testUI("")
	if err := newApp(ui).Run([]string{"segvso", "--verbose", "extract", "--no-progress", "-d", docDir(t)}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(errOut.String(), "doc extracted") {
		t.Errorf("expected debug log, got %q", errOut.String())
	}
}

func TestVersionAndBash(t *testing.T) {
	out, err := run(t, "", "version")
	if err != nil || !strings.HasPrefix(out, "segvso version dev") {
		t.Errorf("unexpected version %q %v", out, err)
	}

	out, err = run(t, "", "bash")
	if err != nil || !strings.Contains(out, "complete -o default -F _segvso_autocomplete segvso") {
		t.Errorf("unexpected bash script %q %v", out, err)
	}
}
