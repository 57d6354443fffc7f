// Package store persists the client-side session: the access token and the
// impersonated client id, nothing else. Values are cached in memory so the
// HTTP transport can read them on every request without touching disk.
package store

import (
	"database/sql"
	"fmt"
	"sync"

	_ "modernc.org/sqlite"
)

// Key names mirror the browser client this replaces, so a reader can match
// them against the backend docs.
const (
	keyAccessToken     = "accessToken"
	keyManagedClientID = "cliente_gerenciado_id"
)

// SessionStore is a two-entry key/value table on SQLite.
type SessionStore struct {
	db *sql.DB

	mu      sync.Mutex
	token   string
	managed string
}

// Open opens (creating if needed) the session database and loads the two
// entries into memory.
func Open(path string) (*SessionStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}
	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("open session store: %w", err)
	}

	if _, err := db.Exec(`CREATE TABLE IF NOT EXISTS session (
		key   TEXT PRIMARY KEY,
		value TEXT NOT NULL
	)`); err != nil {
		return nil, fmt.Errorf("migrate session store: %w", err)
	}

	s := &SessionStore{db: db}
	if err := s.load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SessionStore) load() error {
	rows, err := s.db.Query(`SELECT key, value FROM session`)
	if err != nil {
		return fmt.Errorf("load session: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var key, value string
		if err := rows.Scan(&key, &value); err != nil {
			return fmt.Errorf("load session: %w", err)
		}
		switch key {
		case keyAccessToken:
			s.token = value
		case keyManagedClientID:
			s.managed = value
		}
	}
	return rows.Err()
}

func (s *SessionStore) Token() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token
}

func (s *SessionStore) SetToken(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.put(keyAccessToken, token); err != nil {
		return err
	}
	s.token = token
	return nil
}

func (s *SessionStore) ManagedClientID() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.managed
}

func (s *SessionStore) SetManagedClientID(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.put(keyManagedClientID, id); err != nil {
		return err
	}
	s.managed = id
	return nil
}

func (s *SessionStore) ClearManagedClientID() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.delete(keyManagedClientID); err != nil {
		return err
	}
	s.managed = ""
	return nil
}

// Clear wipes both entries. Logout and the failed-profile side effect land
// here.
func (s *SessionStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, err := s.db.Exec(`DELETE FROM session`); err != nil {
		return fmt.Errorf("clear session: %w", err)
	}
	s.token = ""
	s.managed = ""
	return nil
}

func (s *SessionStore) Close() error {
	return s.db.Close()
}

func (s *SessionStore) put(key, value string) error {
	_, err := s.db.Exec(
		`INSERT INTO session (key, value) VALUES (?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value`,
		key, value,
	)
	if err != nil {
		return fmt.Errorf("store %s: %w", key, err)
	}
	return nil
}

func (s *SessionStore) delete(key string) error {
	if _, err := s.db.Exec(`DELETE FROM session WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete %s: %w", key, err)
	}
	return nil
}
