package store

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaFS embed.FS

// Slot keys. Each key holds one independently serialized value; slots never
// reference each other.
const (
	slotEntries    = "entries"
	slotMoods      = "moods"
	slotTheme      = "theme"
	slotColorTheme = "colortheme"
	slotAPIKey     = "apikey"
)

// DB wraps the sqlite handle behind the slot model.
type DB struct {
	sql *sql.DB
	dir string
}

// DefaultDir returns the per-user data directory, creating it if needed.
func DefaultDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	base := filepath.Join(home, ".local", "share", "moodlog")
	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", err
	}
	return base, nil
}

// Open opens (or creates) the slot database under dir. An empty dir means
// the default data directory.
func Open(dir string) (*DB, error) {
	if dir == "" {
		var err error
		dir, err = DefaultDir()
		if err != nil {
			return nil, err
		}
	} else if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, err
	}

	path := filepath.Join(dir, "moodlog.db")
	dsn := fmt.Sprintf(
		"file:%s?_pragma=busy_timeout(5000)&_pragma=journal_mode(WAL)&_pragma=synchronous(NORMAL)",
		path,
	)

	dbh, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, err
	}
	if err := migrate(dbh); err != nil {
		_ = dbh.Close()
		return nil, err
	}
	return &DB{sql: dbh, dir: dir}, nil
}

func migrate(dbh *sql.DB) error {
	b, err := schemaFS.ReadFile("schema.sql")
	if err != nil {
		return err
	}
	if _, err := dbh.Exec(string(b)); err != nil {
		return errors.Join(fmt.Errorf("schema apply failed"), err)
	}
	return nil
}

// Close closes the underlying handle.
func (d *DB) Close() error { return d.sql.Close() }

// Dir returns the data directory the database lives in.
func (d *DB) Dir() string { return d.dir }

// getSlot reads one slot. Absent slots return ("", false, nil).
func (d *DB) getSlot(key string) (string, bool, error) {
	var value string
	err := d.sql.QueryRow(`SELECT value FROM slots WHERE key = ?`, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("read slot %q: %w", key, err)
	}
	return value, true, nil
}

// setSlot writes one slot wholesale.
func (d *DB) setSlot(key, value string) error {
	_, err := d.sql.Exec(`
		INSERT INTO slots(key, value) VALUES(?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	if err != nil {
		return fmt.Errorf("write slot %q: %w", key, err)
	}
	return nil
}

// deleteSlot removes a slot entirely, as opposed to storing an empty value.
// The distinction matters for the moods slot: seeding only happens when the
// slot is absent.
func (d *DB) deleteSlot(key string) error {
	if _, err := d.sql.Exec(`DELETE FROM slots WHERE key = ?`, key); err != nil {
		return fmt.Errorf("delete slot %q: %w", key, err)
	}
	return nil
}
