package zombiezen

import (
	"context"
	"fmt"

	"github.com/revelaction/segvso/storage"
	"zombiezen.com/go/sqlite"
	"zombiezen.com/go/sqlite/sqlitex"
)

// RecordStore keeps the tagged sequence of each extracted sentence.
type RecordStore struct {
	pool *sqlitex.Pool
}

var _ storage.RecordRepository = (*RecordStore)(nil)

func NewRecordStore(pool *sqlitex.Pool) *RecordStore {
	return &RecordStore{pool: pool}
}

const upsertRecord = `INSERT INTO records (doc_id, sentence_id, sequence) VALUES (?, ?, ?)
ON CONFLICT (doc_id, sentence_id) DO UPDATE SET sequence = excluded.sequence`

func (h *RecordStore) WriteRecords(rows []storage.Row) (err error) {
	if len(rows) == 0 {
		return nil
	}

	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return err
	}
	defer h.pool.Put(conn)

	defer sqlitex.Save(conn)(&err)

	for _, r := range rows {
		err = sqlitex.Execute(conn, upsertRecord, &sqlitex.ExecOptions{
			Args: []any{r.DocId, r.SentenceId, r.Sequence},
		})
		if err != nil {
			return fmt.Errorf("record doc %d sentence %d: %w", r.DocId, r.SentenceId, err)
		}
	}

	return nil
}

func (h *RecordStore) Records(docId int) ([]storage.Row, error) {
	conn, err := h.pool.Take(context.TODO())
	if err != nil {
		return nil, err
	}
	defer h.pool.Put(conn)

	var rows []storage.Row
	err = sqlitex.Execute(conn, "SELECT sentence_id, sequence FROM records WHERE doc_id = ? ORDER BY sentence_id", &sqlitex.ExecOptions{
		Args: []any{docId},
		ResultFunc: func(stmt *sqlite.Stmt) error {
			rows = append(rows, storage.Row{
				DocId:      docId,
				SentenceId: stmt.ColumnInt(0),
				Sequence:   stmt.ColumnText(1),
			})
			return nil
		},
	})
	if err != nil {
		return nil, err
	}
	return rows, nil
}
