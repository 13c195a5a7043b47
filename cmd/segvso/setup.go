package main

import (
	"fmt"
	"os"

	"github.com/gosuri/uiprogress"
	"zombiezen.com/go/sqlite/sqlitex"

	"github.com/revelaction/segvso/storage"
	"github.com/revelaction/segvso/storage/filesystem"
	"github.com/revelaction/segvso/storage/sqlite/zombiezen"
)

// Pool opens the sqlite pool once.
type Pool struct {
	p    *sqlitex.Pool
	size int
}

func (p *Pool) Open(path string) (*sqlitex.Pool, error) {
	if p.p != nil {
		return p.p, nil
	}
	pool, err := zombiezen.NewPool(path, p.size)
	if err != nil {
		return nil, err
	}
	p.p = pool
	return p.p, nil
}

func (p *Pool) Close() error {
	if p.p != nil {
		return p.p.Close()
	}
	return nil
}

// NewDocRepository returns a filesystem store for a directory and a sqlite
// store for a file.
func NewDocRepository(p *Pool, path string) (storage.DocRepository, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("repository not found: %s", path)
	}

	if info.IsDir() {
		return filesystem.NewDocStore(path)
	}

	pool, err := p.Open(path)
	if err != nil {
		return nil, err
	}
	return zombiezen.NewDocStore(pool), nil
}

// progress is a single bar, or nothing when disabled.
type progress struct {
	p   *uiprogress.Progress
	bar *uiprogress.Bar
}

func newProgress(enabled bool, total int) *progress {
	if !enabled || total == 0 {
		return &progress{}
	}

	p := uiprogress.New()
	p.Start()
	bar := p.AddBar(total)
	bar.AppendCompleted()
	bar.PrependElapsed()
	return &progress{p: p, bar: bar}
}

func (pr *progress) Incr() {
	if pr.bar != nil {
		pr.bar.Incr()
	}
}

func (pr *progress) Stop() {
	if pr.p != nil {
		pr.p.Stop()
	}
}
