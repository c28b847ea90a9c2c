package store

import "errors"

var (
	// ErrDocumentNotFound is returned by Get when no document is stored
	// under the requested key.
	ErrDocumentNotFound = errors.New("document not found")

	// ErrEmptyKey is returned when a caller passes an empty key.
	ErrEmptyKey = errors.New("empty document key")
)

// Low-level database operation errors returned (wrapped) by the SQLite
// backend.
var (
	// ErrBuildingSQLQuery is returned when constructing a SQL query fails.
	ErrBuildingSQLQuery = errors.New("error building sql query")

	// ErrExecutingQuery is returned when a SELECT fails.
	ErrExecutingQuery = errors.New("error executing sql query")

	// ErrExecutingStatement is returned when an INSERT or DELETE fails.
	ErrExecutingStatement = errors.New("failed to executing statement")

	// ErrScanningRow is returned when scanning a document row fails.
	ErrScanningRow = errors.New("failed to scan document row")
)
