package zombiezen

import (
	"fmt"

	"zombiezen.com/go/sqlite/sqlitex"
)

// NewPool opens a connection pool of size connections on the database file at
// dbPath. The default pool flags open the file read-write, create it when
// missing and enable WAL mode.
func NewPool(dbPath string, size int) (*sqlitex.Pool, error) {
	if size < 1 {
		size = 1
	}

	pool, err := sqlitex.NewPool(fmt.Sprintf("file:%s", dbPath), sqlitex.PoolOptions{
		PoolSize: size,
	})
	if err != nil {
		return nil, fmt.Errorf("sqlite pool at %s: %w", dbPath, err)
	}
	return pool, nil
}
