// internal/data/author.go
package data

import "database/sql"

// Author represents a single author record stored in the database.
// It maps directly to a row in the "authors" table.
type Author struct {
	ID   int64  `json:"id"`   // Unique identifier assigned by the database
	Name string `json:"name"` // Author name, unique across all rows
}

// CreateAuthorInput holds the fields a client supplies when creating an author.
type CreateAuthorInput struct {
	Name string `json:"name"`
}

// AuthorModel wraps a *sql.DB connection and provides methods for
// creating and listing author records.
type AuthorModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new author record to the database. After a successful insert
// the database-assigned id is written back into the struct. Returns
// ErrDuplicateName if an author with the same name already exists.
func (m AuthorModel) Insert(author *Author) error {
	query := `
		INSERT INTO authors (name)
		VALUES ($1)
		RETURNING id`

	err := m.DB.QueryRow(query, author.Name).Scan(&author.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// GetAll retrieves every author row. No filtering or pagination; rows come
// back in storage order.
func (m AuthorModel) GetAll() ([]*Author, error) {
	query := `SELECT id, name FROM authors`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []*Author{}
	for rows.Next() {
		var author Author
		err := rows.Scan(&author.ID, &author.Name)
		if err != nil {
			return nil, err
		}
		authors = append(authors, &author)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return authors, nil
}
