// internal/data/schema.go
package data

import (
	"database/sql"
	"fmt"
)

// sqliteSchema is the catalog DDL for the sqlite3 driver.
const sqliteSchema = `
CREATE TABLE IF NOT EXISTS publishers (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS authors (
	id   INTEGER PRIMARY KEY AUTOINCREMENT,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS books (
	id           INTEGER PRIMARY KEY AUTOINCREMENT,
	title        TEXT NOT NULL,
	publisher_id INTEGER REFERENCES publishers (id)
);

CREATE TABLE IF NOT EXISTS book_author (
	book_id   INTEGER NOT NULL REFERENCES books (id),
	author_id INTEGER NOT NULL REFERENCES authors (id),
	PRIMARY KEY (book_id, author_id)
);
`

// postgresSchema is the catalog DDL for the postgres driver.
const postgresSchema = `
CREATE TABLE IF NOT EXISTS publishers (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS authors (
	id   BIGSERIAL PRIMARY KEY,
	name TEXT NOT NULL UNIQUE
);

CREATE TABLE IF NOT EXISTS books (
	id           BIGSERIAL PRIMARY KEY,
	title        TEXT NOT NULL,
	publisher_id BIGINT REFERENCES publishers (id)
);

CREATE TABLE IF NOT EXISTS book_author (
	book_id   BIGINT NOT NULL REFERENCES books (id),
	author_id BIGINT NOT NULL REFERENCES authors (id),
	PRIMARY KEY (book_id, author_id)
);
`

// CreateSchema creates the catalog tables if they do not already exist.
// There is no migration mechanism: the DDL is idempotent and runs once at
// process start. The driver name must match the one the pool was opened with.
func CreateSchema(db *sql.DB, driver string) error {
	var ddl string
	switch driver {
	case "sqlite3":
		ddl = sqliteSchema
	case "postgres":
		ddl = postgresSchema
	default:
		return fmt.Errorf("unsupported database driver %q", driver)
	}

	if _, err := db.Exec(ddl); err != nil {
		return fmt.Errorf("create schema: %w", err)
	}
	return nil
}
