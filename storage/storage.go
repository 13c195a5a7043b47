package storage

import (
	"errors"

	sent "github.com/revelaction/segvso/sentence"
)

// ErrNotFound is returned when a document or record does not exist.
var ErrNotFound = errors.New("not found")

// ErrReadOnly is returned by repositories that can not be written.
var ErrReadOnly = errors.New("read-only storage")

// DocReader defines read operations for document storage
type DocReader interface {
	// List returns the metadata (Id, Title, Labels) of documents.
	// Content (Sentences) is not loaded.
	List() ([]sent.Doc, error)

	// Read returns a document by ID
	Read(id int) (sent.Doc, error)
}

// DocWriter defines write operations for document storage
type DocWriter interface {
	// Write persists a document and its sentences, and returns its new id.
	Write(doc sent.Doc) (int, error)
}

// DocRepository combines read and write operations
type DocRepository interface {
	DocReader
	DocWriter
}

// Row is the tagged sequence extracted from one sentence.
type Row struct {
	DocId      int
	SentenceId int
	Sequence   string
}

// RecordReader defines read operations for extraction results
type RecordReader interface {
	// Records returns the rows of a document ordered by sentence.
	Records(docId int) ([]Row, error)
}

// RecordWriter defines write operations for extraction results
type RecordWriter interface {
	// WriteRecords persists rows, replacing existing rows of the same
	// sentence.
	WriteRecords(rows []Row) error
}

// RecordRepository combines read and write operations
type RecordRepository interface {
	RecordReader
	RecordWriter
}

// Preloader defines an optional capability for repositories that require
// or support eager loading of data into memory.
type Preloader interface {
	Preload(cb func(current, total int, name string)) error
}
