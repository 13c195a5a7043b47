package zombiezen

import (
	"context"
	"embed"
	"fmt"
	"path"

	"zombiezen.com/go/sqlite/sqlitex"
)

const (
	SchemaDocs    = "docs.sql"
	SchemaRecords = "records.sql"
)

//go:embed sql/*.sql
var sqlFiles embed.FS

// CreateSchemas executes the embedded scripts named by schemas, in order.
func CreateSchemas(ctx context.Context, pool *sqlitex.Pool, schemas ...string) error {
	conn, err := pool.Take(ctx)
	if err != nil {
		return err
	}
	defer pool.Put(conn)

	for _, name := range schemas {
		script, err := sqlFiles.ReadFile(path.Join("sql", name))
		if err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}

		if err := sqlitex.ExecuteScript(conn, string(script), nil); err != nil {
			return fmt.Errorf("schema %s: %w", name, err)
		}
	}

	return nil
}
