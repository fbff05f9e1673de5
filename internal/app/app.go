package app

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/fchant/daybrain/internal/scheduler"
	"github.com/fchant/daybrain/internal/storage"
	"github.com/fchant/daybrain/internal/store"
	"github.com/gofrs/flock"
)

// App holds the application state and dependencies
type App struct {
	Store     *store.Store
	Adapter   *storage.Adapter
	Scheduler *scheduler.Scheduler
	DataDir   string

	kv       *storage.KV
	lockFile *flock.Flock
}

// Config holds application configuration
type Config struct {
	DataDir string
	DBPath  string
}

// DefaultConfig returns the default application configuration
func DefaultConfig() *Config {
	dataDir := storage.DefaultDataDir()
	return &Config{
		DataDir: dataDir,
		DBPath:  filepath.Join(dataDir, "daybrain.db"),
	}
}

// New creates a new application instance
func New(cfg *Config) (*App, error) {
	if cfg == nil {
		cfg = DefaultConfig()
	}

	if err := os.MkdirAll(cfg.DataDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create data directory: %w", err)
	}

	app := &App{DataDir: cfg.DataDir}

	// Single instance: the store assumes it is the only writer
	if err := app.acquireLock(); err != nil {
		return nil, err
	}

	kv, err := storage.Open(cfg.DBPath)
	if err != nil {
		app.releaseLock()
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	app.kv = kv
	app.Adapter = storage.NewAdapter(kv)
	app.Store = store.New(app.Adapter)

	return app, nil
}

// StartScheduler launches the background jobs: the recurring-task
// generation check and the undo-buffer sweep.
func (a *App) StartScheduler() error {
	a.Scheduler = scheduler.New(time.Local)

	if _, err := a.Scheduler.Every(time.Minute, func() {
		if generated := a.Store.CheckRecurring(); len(generated) > 0 {
			log.Printf("[scheduler] generated %d recurring task(s)", len(generated))
		}
	}); err != nil {
		return fmt.Errorf("failed to schedule recurring check: %w", err)
	}

	if _, err := a.Scheduler.Every(time.Second, a.Store.SweepUndo); err != nil {
		return fmt.Errorf("failed to schedule undo sweep: %w", err)
	}

	a.Scheduler.Start()

	// Catch up immediately rather than waiting for the first tick
	a.Store.CheckRecurring()
	return nil
}

// acquireLock acquires an exclusive file lock to prevent multiple instances
func (a *App) acquireLock() error {
	lockPath := filepath.Join(a.DataDir, "daybrain.lock")
	a.lockFile = flock.New(lockPath)

	locked, err := a.lockFile.TryLock()
	if err != nil {
		return fmt.Errorf("failed to acquire lock: %w", err)
	}

	if !locked {
		return fmt.Errorf("another instance of daybrain is already running")
	}

	return nil
}

// releaseLock releases the file lock
func (a *App) releaseLock() {
	if a.lockFile != nil {
		a.lockFile.Unlock()
	}
}

// Close cleans up application resources
func (a *App) Close() error {
	var errs []error

	if a.Scheduler != nil {
		a.Scheduler.Stop()
	}

	if a.kv != nil {
		if err := a.kv.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close database: %w", err))
		}
	}

	a.releaseLock()

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}
