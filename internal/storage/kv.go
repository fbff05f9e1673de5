package storage

import (
	"database/sql"
	"embed"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"

	_ "github.com/mattn/go-sqlite3"
	"github.com/pressly/goose/v3"
)

//go:embed migrations/*.sql
var migrations embed.FS

// KV is a namespaced key -> JSON document store on SQLite. Each collection
// is one value; callers always read and write whole documents.
type KV struct {
	db *sql.DB
}

// DefaultDataDir returns the default data directory path
func DefaultDataDir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ".daybrain"
	}
	return filepath.Join(home, ".local", "share", "daybrain")
}

// DefaultDBPath returns the default database file path
func DefaultDBPath() string {
	return filepath.Join(DefaultDataDir(), "daybrain.db")
}

// Open opens the backing database and runs migrations
func Open(dbPath string) (*KV, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	// WAL mode keeps the file safe for file-level sync tools
	dsn := fmt.Sprintf("file:%s?_journal_mode=WAL&_busy_timeout=5000&_foreign_keys=ON", dbPath)
	sqlDB, err := sql.Open("sqlite3", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// SQLite only supports one writer
	sqlDB.SetMaxOpenConns(1)
	sqlDB.SetMaxIdleConns(1)

	if err := sqlDB.Ping(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	kv := &KV{db: sqlDB}

	if err := kv.migrate(); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return kv, nil
}

// migrate runs database migrations using embedded SQL files
func (kv *KV) migrate() error {
	// Silence goose logging (it corrupts TUI output)
	goose.SetLogger(log.New(io.Discard, "", 0))
	goose.SetBaseFS(migrations)

	if err := goose.SetDialect("sqlite3"); err != nil {
		return fmt.Errorf("failed to set dialect: %w", err)
	}

	if err := goose.Up(kv.db, "migrations"); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	return nil
}

// Close closes the database connection
func (kv *KV) Close() error {
	return kv.db.Close()
}

// Get returns the value stored under key. ok is false when the key is absent.
func (kv *KV) Get(key string) (value string, ok bool, err error) {
	err = kv.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, key).Scan(&value)
	if err == sql.ErrNoRows {
		return "", false, nil
	}
	if err != nil {
		return "", false, err
	}
	return value, true, nil
}

// Set stores value under key, replacing any existing value
func (kv *KV) Set(key, value string) error {
	_, err := kv.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT(key) DO UPDATE SET value = excluded.value
	`, key, value)
	return err
}

// Delete removes key; deleting an absent key is not an error
func (kv *KV) Delete(key string) error {
	_, err := kv.db.Exec(`DELETE FROM kv WHERE key = ?`, key)
	return err
}

// Rename moves the value under oldKey to newKey in one transaction.
// ok is false when oldKey is absent.
func (kv *KV) Rename(oldKey, newKey string) (ok bool, err error) {
	err = kv.transaction(func(tx *sql.Tx) error {
		var value string
		err := tx.QueryRow(`SELECT value FROM kv WHERE key = ?`, oldKey).Scan(&value)
		if err == sql.ErrNoRows {
			return nil
		}
		if err != nil {
			return err
		}

		_, err = tx.Exec(`
			INSERT INTO kv (key, value) VALUES (?, ?)
			ON CONFLICT(key) DO UPDATE SET value = excluded.value
		`, newKey, value)
		if err != nil {
			return err
		}

		if _, err := tx.Exec(`DELETE FROM kv WHERE key = ?`, oldKey); err != nil {
			return err
		}

		ok = true
		return nil
	})
	return ok, err
}

// transaction executes a function within a transaction
func (kv *KV) transaction(fn func(*sql.Tx) error) error {
	tx, err := kv.db.Begin()
	if err != nil {
		return err
	}

	if err := fn(tx); err != nil {
		tx.Rollback()
		return err
	}

	return tx.Commit()
}
