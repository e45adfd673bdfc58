package sqlstore

import (
	"database/sql"
	"errors"

	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/rwidjaja/contactbook/internal/store"
)

type SQLStore struct {
	db *sql.DB
}

func New(dataSourceName string) (*SQLStore, error) {
	db, err := sql.Open("sqlite3", dataSourceName)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}

	s := &SQLStore{db: db}
	if err := s.createTables(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLStore) Close() error { return s.db.Close() }

func (s *SQLStore) createTables() error {
	// Simplified for brevity, ideally use migrations
	query := `
	CREATE TABLE IF NOT EXISTS users (
		username TEXT PRIMARY KEY,
		password TEXT NOT NULL,
		name TEXT NOT NULL,
		token TEXT,
		token_expiry INTEGER
	);

	CREATE UNIQUE INDEX IF NOT EXISTS idx_users_token ON users(token);

	CREATE TABLE IF NOT EXISTS contacts (
		id TEXT PRIMARY KEY,
		username TEXT NOT NULL,
		first_name TEXT NOT NULL,
		last_name TEXT,
		email TEXT,
		phone TEXT,
		FOREIGN KEY (username) REFERENCES users(username)
	);

	CREATE INDEX IF NOT EXISTS idx_contacts_username ON contacts(username);

	CREATE TABLE IF NOT EXISTS addresses (
		id TEXT PRIMARY KEY,
		contact_id TEXT NOT NULL,
		street TEXT,
		city TEXT,
		province TEXT,
		country TEXT NOT NULL,
		zip_code INTEGER NOT NULL,
		FOREIGN KEY (contact_id) REFERENCES contacts(id)
	);

	CREATE INDEX IF NOT EXISTS idx_addresses_contact_id ON addresses(contact_id);
	`

	_, err := s.db.Exec(query)
	return err
}

// mapErr normalizes driver errors into store sentinels.
func mapErr(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return store.ErrNotFound
	}
	var serr sqlite3.Error
	if errors.As(err, &serr) && serr.Code == sqlite3.ErrConstraint {
		return store.ErrDuplicate
	}
	return err
}

// requireRow converts a zero-row write into ErrNotFound.
func requireRow(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return store.ErrNotFound
	}
	return nil
}

// nullString stores "" as NULL so the unique token index ignores
// logged-out users.
func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}

func nullInt64(n int64) sql.NullInt64 {
	return sql.NullInt64{Int64: n, Valid: n != 0}
}
