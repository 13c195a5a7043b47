package filesystem

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/revelaction/segvso/conllu"
	sent "github.com/revelaction/segvso/sentence"
	"github.com/revelaction/segvso/storage"
)

const (
	extJSON   = ".json"
	extCoNLLU = ".conllu"
)

// DocStore reads the documents of a directory: JSON docs and CoNLL-U
// files. Documents are identified by their position in the sorted file list.
type DocStore struct {
	docDir string

	// In-memory cache
	docs   []sent.Doc
	loaded []bool
}

var _ storage.DocRepository = (*DocStore)(nil)
var _ storage.Preloader = (*DocStore)(nil)

// NewDocStore creates a filesystem document store.
func NewDocStore(docDir string) (*DocStore, error) {
	files, err := os.ReadDir(docDir)
	if err != nil {
		return nil, err
	}

	names := []string{}
	for _, file := range files {
		if file.IsDir() {
			continue
		}
		switch filepath.Ext(file.Name()) {
		case extJSON, extCoNLLU:
			names = append(names, file.Name())
		}
	}
	sort.Strings(names)

	docs := make([]sent.Doc, 0, len(names))
	for idx, name := range names {
		docs = append(docs, sent.Doc{
			Id:    idx,
			Title: name,
		})
	}

	return &DocStore{
		docDir: docDir,
		docs:   docs,
		loaded: make([]bool, len(docs)),
	}, nil
}

// Preload loads all docs into memory.
func (h *DocStore) Preload(cb func(current, total int, name string)) error {
	total := len(h.docs)
	for i := range h.docs {
		if cb != nil {
			cb(i+1, total, h.docs[i].Title)
		}

		if err := h.load(i); err != nil {
			return err
		}
	}

	return nil
}

func (h *DocStore) List() ([]sent.Doc, error) {
	list := make([]sent.Doc, 0, len(h.docs))
	for _, d := range h.docs {
		list = append(list, sent.Doc{Id: d.Id, Title: d.Title, Labels: d.Labels})
	}
	return list, nil
}

func (h *DocStore) Read(id int) (sent.Doc, error) {
	if id < 0 || id >= len(h.docs) {
		return sent.Doc{}, fmt.Errorf("doc id %d: %w", id, storage.ErrNotFound)
	}

	if err := h.load(id); err != nil {
		return sent.Doc{}, err
	}

	return h.docs[id], nil
}

func (h *DocStore) Write(doc sent.Doc) (int, error) {
	return 0, storage.ErrReadOnly
}

func (h *DocStore) load(id int) error {
	if h.loaded[id] {
		return nil
	}

	doc := &h.docs[id] // pointer to modify in place
	fullDoc, err := ReadDoc(filepath.Join(h.docDir, doc.Title))
	if err != nil {
		return err
	}

	// Title and Id are already set
	doc.Sentences = fullDoc.Sentences
	doc.Labels = fullDoc.Labels
	for i := range doc.Sentences {
		doc.Sentences[i].DocId = doc.Id
	}
	h.loaded[id] = true

	return nil
}

// ReadDoc reads a Doc from the given path, JSON or CoNLL-U by extension.
func ReadDoc(path string) (sent.Doc, error) {
	if filepath.Ext(path) == extCoNLLU {
		f, err := os.Open(path)
		if err != nil {
			return sent.Doc{}, fmt.Errorf("IO error: %w", err)
		}
		defer f.Close()

		doc, err := conllu.ReadDoc(f, filepath.Base(path))
		if err != nil {
			return sent.Doc{}, fmt.Errorf("CoNLL-U decoding error: %w", err)
		}
		return doc, nil
	}

	f, err := os.ReadFile(path)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("IO error: %w", err)
	}

	var doc sent.Doc
	err = json.Unmarshal(f, &doc)
	if err != nil {
		return sent.Doc{}, fmt.Errorf("JSON decoding error: %w", err)
	}

	if doc.Title == "" {
		doc.Title = filepath.Base(path)
	}

	return doc, nil
}
