package database

import (
	"context"
	"database/sql"
	"io/fs"
)

// runMigrations creates the database schema. Every statement is
// CREATE ... IF NOT EXISTS, so running it against an existing file is a no-op.
func runMigrations(ctx context.Context, db *sql.DB, assets fs.FS) error {
	schema, err := readAsset(assets, schemaAsset)
	if err != nil {
		return err
	}

	_, err = db.ExecContext(ctx, schema)
	return err
}
