// Package data provides the data models and database interaction logic
// for the mylib catalog service.
package data

import (
	"database/sql"
	"errors"
	"fmt"
	"strings"
)

// Book represents a single book record stored in the database, together with
// its resolved author set. It maps to a row in the "books" table plus the
// matching rows in the "book_author" join table.
type Book struct {
	ID          int64    `json:"id"`           // Unique identifier assigned by the database
	Title       string   `json:"title"`        // Title of the book
	PublisherID *int64   `json:"publisher_id"` // Optional reference to a publisher; nil means none
	Authors     []Author `json:"authors"`      // Authors linked via the book_author join table
}

// CreateBookInput holds the fields a client supplies when creating a new book.
// Only the title is required; a nil or absent publisher_id stores NULL.
type CreateBookInput struct {
	Title       string  `json:"title"`
	PublisherID *int64  `json:"publisher_id"`
	AuthorIDs   []int64 `json:"author_ids"`
}

// UpdateBookInput holds the fields a client may supply when partially updating
// a book. Title and AuthorIDs are pointers, so nil means "not provided, leave
// as-is" and a present (possibly empty) author list fully replaces the set.
// PublisherID is tri-state: an absent field leaves the reference unchanged,
// an explicit null clears it, and a value replaces it.
type UpdateBookInput struct {
	Title       *string         `json:"title"`
	PublisherID Optional[int64] `json:"publisher_id"`
	AuthorIDs   *[]int64        `json:"author_ids"`
}

// BookModel wraps a *sql.DB connection and provides methods for
// creating, reading, updating, and deleting book records.
type BookModel struct {
	DB *sql.DB // Shared database connection pool
}

// Insert adds a new book record together with its join-table rows, all inside
// one transaction. The requested author ids are re-resolved against existing
// author rows within the same transaction; ids with no matching row are
// silently dropped. On success the database-assigned id and the resolved
// author set are written back into the book struct.
func (m BookModel) Insert(book *Book, authorIDs []int64) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	// Rollback is a no-op after a successful Commit, so deferring it covers
	// every early return below.
	defer tx.Rollback()

	query := `
		INSERT INTO books (title, publisher_id)
		VALUES ($1, $2)
		RETURNING id`

	err = tx.QueryRow(query, book.Title, book.PublisherID).Scan(&book.ID)
	if err != nil {
		return err
	}

	authors, err := resolveAuthors(tx, authorIDs)
	if err != nil {
		return err
	}

	err = insertBookAuthors(tx, book.ID, authors)
	if err != nil {
		return err
	}

	err = tx.Commit()
	if err != nil {
		return err
	}

	book.Authors = authors
	return nil
}

// Get retrieves a single book by its primary key, including its author set.
// Returns ErrRecordNotFound if no book with the given id exists.
func (m BookModel) Get(id int64) (*Book, error) {
	if id < 1 {
		return nil, ErrRecordNotFound
	}

	query := `
		SELECT id, title, publisher_id
		FROM books
		WHERE id = $1`

	var book Book
	err := m.DB.QueryRow(query, id).Scan(&book.ID, &book.Title, &book.PublisherID)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, ErrRecordNotFound
		default:
			return nil, err
		}
	}

	authors, err := m.authorsFor(book.ID)
	if err != nil {
		return nil, err
	}
	book.Authors = authors

	return &book, nil
}

// GetAll retrieves every book with its resolved author set. No ordering is
// imposed; rows come back in storage order. The author sets are attached with
// a single join query rather than one query per book.
func (m BookModel) GetAll() ([]*Book, error) {
	query := `SELECT id, title, publisher_id FROM books`

	rows, err := m.DB.Query(query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	books := []*Book{}
	byID := make(map[int64]*Book)

	for rows.Next() {
		var book Book
		err := rows.Scan(&book.ID, &book.Title, &book.PublisherID)
		if err != nil {
			return nil, err
		}
		book.Authors = []Author{}
		books = append(books, &book)
		byID[book.ID] = &book
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	authorQuery := `
		SELECT ba.book_id, a.id, a.name
		FROM book_author ba
		INNER JOIN authors a ON a.id = ba.author_id`

	authorRows, err := m.DB.Query(authorQuery)
	if err != nil {
		return nil, err
	}
	defer authorRows.Close()

	for authorRows.Next() {
		var bookID int64
		var author Author
		err := authorRows.Scan(&bookID, &author.ID, &author.Name)
		if err != nil {
			return nil, err
		}
		if book, ok := byID[bookID]; ok {
			book.Authors = append(book.Authors, author)
		}
	}
	if err = authorRows.Err(); err != nil {
		return nil, err
	}

	return books, nil
}

// Update saves the book's title and publisher reference back to the database.
// When authorIDs is non-nil the book's author set is fully replaced: the
// existing join rows are deleted and new rows are inserted for each resolved
// id, all inside the same transaction as the row update. A nil authorIDs
// leaves the author set untouched. Returns ErrRecordNotFound if the book row
// no longer exists.
func (m BookModel) Update(book *Book, authorIDs *[]int64) error {
	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	query := `
		UPDATE books
		SET title = $1, publisher_id = $2
		WHERE id = $3`

	result, err := tx.Exec(query, book.Title, book.PublisherID, book.ID)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	if authorIDs != nil {
		_, err = tx.Exec(`DELETE FROM book_author WHERE book_id = $1`, book.ID)
		if err != nil {
			return err
		}

		authors, err := resolveAuthors(tx, *authorIDs)
		if err != nil {
			return err
		}

		err = insertBookAuthors(tx, book.ID, authors)
		if err != nil {
			return err
		}

		book.Authors = authors
	}

	return tx.Commit()
}

// Delete removes the book with the given id along with its join-table rows,
// inside one transaction. Returns ErrRecordNotFound if no matching book exists.
func (m BookModel) Delete(id int64) error {
	// Guard against obviously bad IDs before touching the database.
	if id < 1 {
		return ErrRecordNotFound
	}

	tx, err := m.DB.Begin()
	if err != nil {
		return err
	}
	defer tx.Rollback()

	// Join rows go first so no orphaned associations survive the delete.
	_, err = tx.Exec(`DELETE FROM book_author WHERE book_id = $1`, id)
	if err != nil {
		return err
	}

	result, err := tx.Exec(`DELETE FROM books WHERE id = $1`, id)
	if err != nil {
		return err
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if rowsAffected == 0 {
		return ErrRecordNotFound
	}

	return tx.Commit()
}

// authorsFor returns the author set currently linked to the given book id.
func (m BookModel) authorsFor(bookID int64) ([]Author, error) {
	query := `
		SELECT a.id, a.name
		FROM book_author ba
		INNER JOIN authors a ON a.id = ba.author_id
		WHERE ba.book_id = $1`

	rows, err := m.DB.Query(query, bookID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	authors := []Author{}
	for rows.Next() {
		var author Author
		err := rows.Scan(&author.ID, &author.Name)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return authors, nil
}

// resolveAuthors re-resolves a requested author-id list against the existing
// author rows, keeping only the matches. Unknown ids are dropped rather than
// errored, and duplicates collapse because the lookup is a single IN query.
func resolveAuthors(tx *sql.Tx, ids []int64) ([]Author, error) {
	authors := []Author{}
	if len(ids) == 0 {
		return authors, nil
	}

	placeholders := make([]string, len(ids))
	args := make([]any, len(ids))
	for i, id := range ids {
		placeholders[i] = fmt.Sprintf("$%d", i+1)
		args[i] = id
	}

	query := fmt.Sprintf(`
		SELECT id, name
		FROM authors
		WHERE id IN (%s)`, strings.Join(placeholders, ", "))

	rows, err := tx.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		var author Author
		err := rows.Scan(&author.ID, &author.Name)
		if err != nil {
			return nil, err
		}
		authors = append(authors, author)
	}
	if err = rows.Err(); err != nil {
		return nil, err
	}

	return authors, nil
}

// insertBookAuthors inserts one join row per resolved author for the book.
func insertBookAuthors(tx *sql.Tx, bookID int64, authors []Author) error {
	query := `
		INSERT INTO book_author (book_id, author_id)
		VALUES ($1, $2)`

	for _, author := range authors {
		_, err := tx.Exec(query, bookID, author.ID)
		if err != nil {
			return err
		}
	}
	return nil
}
