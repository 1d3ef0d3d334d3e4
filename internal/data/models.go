// internal/data/models.go
package data

import (
	"database/sql"
	"errors"

	"github.com/lib/pq"
	"github.com/mattn/go-sqlite3"
)

// Models is a top-level container that groups all database model types together.
// It is passed around the application via applicationDependencies so every handler
// has access to the database without importing sql directly.
type Models struct {
	Books      BookModel      // Handles all database operations for the books table
	Authors    AuthorModel    // Handles all database operations for the authors table
	Publishers PublisherModel // Handles all database operations for the publishers table
}

// NewModels constructs a Models value wired up to the given database connection pool.
// Call this once during application startup and store the result in applicationDependencies.
func NewModels(db *sql.DB) Models {
	return Models{
		Books:      BookModel{DB: db},
		Authors:    AuthorModel{DB: db},
		Publishers: PublisherModel{DB: db},
	}
}

// ErrRecordNotFound is returned when a query finds no matching row.
var ErrRecordNotFound = errors.New("record not found")

// ErrDuplicateName is returned when an insert violates a unique constraint
// on a name column.
var ErrDuplicateName = errors.New("duplicate name")

// isUniqueViolation reports whether err is a unique-constraint violation from
// either of the registered drivers. The raw driver errors never leave this
// package; callers only ever see ErrDuplicateName.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code == "23505" // unique_violation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique
	}

	return false
}
