// internal/data/publisher.go
package data

import "database/sql"

// Publisher represents a single publisher record stored in the database.
// It maps directly to a row in the "publishers" table.
type Publisher struct {
	ID   int64  `json:"id"`   // Unique identifier assigned by the database
	Name string `json:"name"` // Publisher name, unique across all rows
}

// CreatePublisherInput holds the fields a client supplies when creating a publisher.
type CreatePublisherInput struct {
	Name string `json:"name"`
}

// PublisherModel wraps a *sql.DB connection and provides methods for
// creating and listing publisher records.
type PublisherModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new publisher record to the database. After a successful
// insert the database-assigned id is written back into the struct. Returns
// ErrDuplicateName if a publisher with the same name already exists.
func (m PublisherModel) Insert(publisher *Publisher) error {
	query := `
		INSERT INTO publishers (name)
		VALUES ($1)
		RETURNING id`

	err := m.DB.QueryRow(query, publisher.Name).Scan(&publisher.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return ErrDuplicateName
		}
		return err
	}
	return nil
}

// GetAll retrieves every publisher row in storage order.
func (m PublisherModel) GetAll() ([]*Publisher, error) {
	query := `SELECT id, name FROM publishers`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	publishers := []*Publisher{}
	for rows.Next() {
		var publisher Publisher
		err := rows.Scan(&publisher.ID, &publisher.Name)
		if err != nil {
			return nil, err
		}
		publishers = append(publishers, &publisher)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return publishers, nil
}
