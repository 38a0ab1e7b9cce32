package objectvalue

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// SQLiteStore persists object values across sessions.
type SQLiteStore struct {
	conn *sqlx.DB
}

// OpenSQLite opens or creates the value table at path.
func OpenSQLite(path string) (*SQLiteStore, error) {
	conn, err := sqlx.Open("sqlite", path+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("open db: %w", err)
	}
	s := &SQLiteStore{conn: conn}
	if err := s.migrate(); err != nil {
		conn.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}
	return s, nil
}

func (s *SQLiteStore) Close() error {
	return s.conn.Close()
}

func (s *SQLiteStore) migrate() error {
	_, err := s.conn.Exec(`
	CREATE TABLE IF NOT EXISTS object_values (
		kind INTEGER NOT NULL,
		subkind INTEGER NOT NULL,
		value INTEGER NOT NULL,
		PRIMARY KEY (kind, subkind)
	)`)
	return err
}

func (s *SQLiteStore) Lookup(kind, subkind int) (int, bool, error) {
	var v int
	err := s.conn.Get(&v, "SELECT value FROM object_values WHERE kind = ? AND subkind = ?", kind, subkind)
	if errors.Is(err, sql.ErrNoRows) {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, fmt.Errorf("lookup %d/%d: %w", kind, subkind, err)
	}
	return v, true, nil
}

func (s *SQLiteStore) Insert(kind, subkind, value int) error {
	_, err := s.conn.Exec(`
	INSERT INTO object_values (kind, subkind, value) VALUES (?, ?, ?)
	ON CONFLICT (kind, subkind) DO UPDATE SET value = excluded.value`,
		kind, subkind, clamp(value))
	if err != nil {
		return fmt.Errorf("insert %d/%d: %w", kind, subkind, err)
	}
	return nil
}

// Entries lists every stored value ordered by kind and subkind.
func (s *SQLiteStore) Entries() ([]Entry, error) {
	var out []Entry
	if err := s.conn.Select(&out, "SELECT kind, subkind, value FROM object_values ORDER BY kind, subkind"); err != nil {
		return nil, fmt.Errorf("list values: %w", err)
	}
	return out, nil
}
