// Package batch extracts the clauses of many documents in parallel.
package batch

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/revelaction/segvso/clause"
	"github.com/revelaction/segvso/dep"
	sent "github.com/revelaction/segvso/sentence"
	"github.com/revelaction/segvso/seq"
	"github.com/revelaction/segvso/storage"
)

// Result is the extraction of one document.
type Result struct {
	DocId int
	Title string

	// Clauses holds the main clause of each sentence, in sentence order
	Clauses []clause.Clause

	// Rows holds the tagged sequence of each sentence
	Rows []storage.Row
}

// Group returns the tagged sequences of the document joined by the clause
// separator.
func (r Result) Group() string {
	return seq.EncodeGroup(r.Clauses)
}

// Runner extracts documents with a bounded number of workers.
type Runner struct {
	Extractor *clause.Extractor
	Pos       dep.PosField

	// Workers bounds the documents processed at once, values below 1 mean
	// one worker
	Workers int

	// LogEvery logs the number of extracted sentences every n sentences, 0
	// disables it
	LogEvery int

	Logger *zap.Logger

	// OnDoc, if set, is called after each document. Calls are serialized.
	OnDoc func(Result)

	mu        sync.Mutex
	sentences int
}

// NewRunner returns a Runner with one worker and a no-op logger.
func NewRunner(e *clause.Extractor) *Runner {
	return &Runner{
		Extractor: e,
		Pos:       dep.PosTag,
		Workers:   1,
		Logger:    zap.NewNop(),
	}
}

// Run extracts docs and returns their results in the order of docs. It
// stops scheduling documents when ctx is done and returns the context error.
func (r *Runner) Run(ctx context.Context, docs []sent.Doc) ([]Result, error) {
	logger := r.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	workers := r.Workers
	if workers < 1 {
		workers = 1
	}

	r.mu.Lock()
	r.sentences = 0
	r.mu.Unlock()

	results := make([]Result, len(docs))

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i := range docs {
		if gctx.Err() != nil {
			break
		}

		i := i
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}

			results[i] = r.Doc(docs[i])
			r.done(logger, results[i])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	logger.Debug("batch done", zap.Int("docs", len(docs)), zap.Int("sentences", r.sentences))
	return results, nil
}

// Doc extracts the sentences of one document.
func (r *Runner) Doc(doc sent.Doc) Result {
	res := Result{
		DocId:   doc.Id,
		Title:   doc.Title,
		Clauses: make([]clause.Clause, 0, len(doc.Sentences)),
		Rows:    make([]storage.Row, 0, len(doc.Sentences)),
	}

	for i, s := range doc.Sentences {
		c := r.Extractor.Extract(dep.FromTokens(s.Tokens, r.Pos))
		res.Clauses = append(res.Clauses, c)
		res.Rows = append(res.Rows, storage.Row{
			DocId:      doc.Id,
			SentenceId: i,
			Sequence:   seq.Encode(c),
		})
	}

	return res
}

func (r *Runner) done(logger *zap.Logger, res Result) {
	r.mu.Lock()
	defer r.mu.Unlock()

	before := r.sentences
	r.sentences += len(res.Rows)

	if r.LogEvery > 0 && r.sentences/r.LogEvery > before/r.LogEvery {
		logger.Info("extract", zap.Int("sentences", r.sentences))
	}

	logger.Debug("doc extracted",
		zap.Int("doc", res.DocId),
		zap.String("title", res.Title),
		zap.Int("sentences", len(res.Rows)),
	)

	if r.OnDoc != nil {
		r.OnDoc(res)
	}
}
