// Package conllu reads CoNLL-U files, the output format of stanza and UDPipe.
// See https://universaldependencies.org/format.html
package conllu

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	sent "github.com/revelaction/segvso/sentence"
)

const (
	fieldSeparator = "\t"
	numFields      = 10
	empty          = "_"
)

// CoNLL-U columns
const (
	colId = iota
	colForm
	colLemma
	colUpos
	colXpos
	colFeats
	colHead
	colDeprel
)

// ReadDoc reads all sentences of r into a Doc. Multiword token ranges (1-2)
// and empty nodes (1.1) are skipped.
func ReadDoc(r io.Reader, title string) (sent.Doc, error) {
	doc := sent.Doc{Title: title}

	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	var tokens []sent.Token
	lineNum := 0

	flush := func() {
		if len(tokens) == 0 {
			return
		}
		doc.Sentences = append(doc.Sentences, sent.Sentence{
			Id:     len(doc.Sentences),
			Tokens: tokens,
		})
		tokens = nil
	}

	for s.Scan() {
		lineNum++
		line := strings.TrimRight(s.Text(), "\r")

		if strings.TrimSpace(line) == "" {
			flush()
			continue
		}

		if strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Split(line, fieldSeparator)
		if len(fields) != numFields {
			return sent.Doc{}, fmt.Errorf("line %d: expected %d fields, got %d", lineNum, numFields, len(fields))
		}

		if strings.ContainsAny(fields[colId], "-.") {
			continue
		}

		t, err := token(fields, len(doc.Sentences))
		if err != nil {
			return sent.Doc{}, fmt.Errorf("line %d: %w", lineNum, err)
		}
		tokens = append(tokens, t)
	}

	if err := s.Err(); err != nil {
		return sent.Doc{}, err
	}

	flush()
	return doc, nil
}

// token converts the columns of a word line. CoNLL-U ids are 1-based with 0
// for the root; Token indexes are 0-based and the root token is its own head.
func token(fields []string, sentId int) (sent.Token, error) {
	id, err := strconv.Atoi(fields[colId])
	if err != nil {
		return sent.Token{}, fmt.Errorf("invalid id %q: %w", fields[colId], err)
	}

	head, err := strconv.Atoi(fields[colHead])
	if err != nil {
		return sent.Token{}, fmt.Errorf("invalid head %q: %w", fields[colHead], err)
	}

	index := id - 1
	headIndex := head - 1
	if head == 0 {
		headIndex = index
	}

	return sent.Token{
		Id:         id,
		Index:      index,
		Head:       headIndex,
		SentenceId: sentId,
		Text:       fields[colForm],
		Lemma:      value(fields[colLemma]),
		Pos:        value(fields[colUpos]),
		Tag:        value(fields[colXpos]),
		Dep:        fields[colDeprel],
	}, nil
}

func value(f string) string {
	if f == empty {
		return ""
	}
	return f
}
