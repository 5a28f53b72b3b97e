package database

import (
	"errors"
	"fmt"

	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

// Error kinds. Every DataStore operation either succeeds or returns a
// *DataError whose Kind is one of these, so callers can use errors.Is.
var (
	// ErrInsert indicates a mutation was rejected (uniqueness, dangling foreign key, check)
	ErrInsert = errors.New("could not insert")

	// ErrDelete indicates a deletion failed
	ErrDelete = errors.New("could not delete")

	// ErrQuery indicates a read failed at the store level
	ErrQuery = errors.New("could not query")

	// ErrParse indicates user input did not match its grammar
	ErrParse = errors.New("could not parse input")

	// ErrAssetRead indicates an SQL asset could not be read
	ErrAssetRead = errors.New("could not read sql asset")

	// ErrStoreInit indicates the database could not be opened or its schema applied
	ErrStoreInit = errors.New("could not initialise store")
)

// DataError is the error returned at the repository boundary.
// Engine errors are kept as the cause and never surface on their own.
type DataError struct {
	Kind   error  // one of the Err* kinds above
	Op     string // operation name, e.g. "add_person"
	Table  string // table involved, if any
	ID     int64  // row id for deletions
	Path   string // asset name or database path
	Reason string // constraint classification, e.g. "unique constraint"
	Err    error  // underlying cause
}

func (e *DataError) Error() string {
	var msg string
	switch e.Kind {
	case ErrInsert:
		msg = fmt.Sprintf("%v into %s", e.Kind, e.Table)
		if e.Reason != "" {
			msg += " (" + e.Reason + ")"
		}
	case ErrDelete:
		msg = fmt.Sprintf("%v from %s with id %d", e.Kind, e.Table, e.ID)
	case ErrQuery:
		msg = fmt.Sprintf("%v %s", e.Kind, e.Table)
	case ErrAssetRead, ErrStoreInit:
		msg = fmt.Sprintf("%v %s", e.Kind, e.Path)
	default:
		msg = fmt.Sprint(e.Kind)
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

// Unwrap exposes both the kind and the cause to errors.Is and errors.As
func (e *DataError) Unwrap() []error {
	if e.Err == nil {
		return []error{e.Kind}
	}
	return []error{e.Kind, e.Err}
}

func insertError(op, table string, err error) error {
	return &DataError{Kind: ErrInsert, Op: op, Table: table, Reason: constraintReason(err), Err: err}
}

func deleteError(op, table string, id int64, err error) error {
	return &DataError{Kind: ErrDelete, Op: op, Table: table, ID: id, Err: err}
}

func queryError(op, table string, err error) error {
	return &DataError{Kind: ErrQuery, Op: op, Table: table, Err: err}
}

func parseError(op string, err error) error {
	return &DataError{Kind: ErrParse, Op: op, Err: err}
}

func storeInitError(path string, err error) error {
	return &DataError{Kind: ErrStoreInit, Op: "open", Path: path, Err: err}
}

// constraintReason classifies SQLite constraint failures for error messages
func constraintReason(err error) string {
	var sqliteErr *sqlite.Error
	if !errors.As(err, &sqliteErr) {
		return ""
	}
	switch sqliteErr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE, sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY:
		return reasonUnique
	case sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return reasonForeignKey
	case sqlite3.SQLITE_CONSTRAINT_CHECK:
		return reasonCheck
	case sqlite3.SQLITE_CONSTRAINT_NOTNULL:
		return reasonNotNull
	case sqlite3.SQLITE_CONSTRAINT:
		return "constraint"
	default:
		return ""
	}
}

// Constraint reasons shared by every DataStore implementation
const (
	reasonUnique     = "unique constraint"
	reasonForeignKey = "foreign key constraint"
	reasonCheck      = "check constraint"
	reasonNotNull    = "not null constraint"
)
