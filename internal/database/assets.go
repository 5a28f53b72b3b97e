package database

import (
	"embed"
	"io/fs"
)

// Asset names inside the SQL asset filesystem
const (
	schemaAsset   = "schema.sql"
	scheduleAsset = "schedule.sql"
)

//go:embed sql/*.sql
var embedded embed.FS

// EmbeddedAssets returns the SQL scripts compiled into the binary
func EmbeddedAssets() fs.FS {
	sub, err := fs.Sub(embedded, "sql")
	if err != nil {
		panic(err) // "sql" is always a valid path
	}
	return sub
}

// readAsset loads a SQL script, reporting a missing or unreadable file as an asset read error
func readAsset(fsys fs.FS, name string) (string, error) {
	data, err := fs.ReadFile(fsys, name)
	if err != nil {
		return "", &DataError{Kind: ErrAssetRead, Op: "read_asset", Path: name, Err: err}
	}
	return string(data), nil
}
