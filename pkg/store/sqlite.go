//go:build !wasm

package store

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

// SQLiteStore implements Store using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLite creates a SQLite-based store.
func NewSQLite(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening database: %w", err)
	}
	// A single connection keeps ":memory:" databases and write ordering
	// consistent.
	db.SetMaxOpenConns(1)

	// Initialize schema
	if err := CreateSchema(db); err != nil {
		db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	return &SQLiteStore{db: db}, nil
}

// Add stores a custom word.
func (s *SQLiteStore) Add(word string) error {
	if err := validate(word); err != nil {
		return err
	}
	_, err := s.db.Exec("INSERT OR IGNORE INTO custom_words (word) VALUES (?)", word)
	if err != nil {
		return fmt.Errorf("inserting custom word: %w", err)
	}
	return nil
}

// Words retrieves all custom words in insertion order.
func (s *SQLiteStore) Words() ([]string, error) {
	rows, err := s.db.Query("SELECT word FROM custom_words ORDER BY id")
	if err != nil {
		return nil, fmt.Errorf("querying custom words: %w", err)
	}
	defer rows.Close()

	words := []string{}
	for rows.Next() {
		var word string
		if err := rows.Scan(&word); err != nil {
			return nil, fmt.Errorf("scanning custom word: %w", err)
		}
		words = append(words, word)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating custom words: %w", err)
	}
	return words, nil
}

// Contains checks if a word has been added.
func (s *SQLiteStore) Contains(word string) (bool, error) {
	var count int
	err := s.db.QueryRow("SELECT COUNT(*) FROM custom_words WHERE word = ?", word).Scan(&count)
	if err != nil {
		return false, fmt.Errorf("checking custom word: %w", err)
	}
	return count > 0, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}
