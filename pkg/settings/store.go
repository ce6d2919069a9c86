package settings

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	_ "modernc.org/sqlite"
)

// StoreConfig holds SQLite configuration for the settings store.
type StoreConfig struct {
	// Path is the SQLite database file path.
	Path string

	// BusyTimeout is how long SQLite waits on a locked database.
	BusyTimeout time.Duration

	// CheckpointInterval is how often WAL checkpoints run. Zero disables
	// the background checkpoint loop.
	CheckpointInterval time.Duration
}

// DefaultStoreConfig returns a sensible default configuration.
func DefaultStoreConfig() *StoreConfig {
	return &StoreConfig{
		Path:               "data/settings.db",
		BusyTimeout:        5 * time.Second,
		CheckpointInterval: 5 * time.Minute,
	}
}

const schema = `
CREATE TABLE IF NOT EXISTS settings (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	updated_at INTEGER NOT NULL
);
`

// Store persists editor settings in a SQLite database.
type Store struct {
	db     *sql.DB
	config *StoreConfig
	logger *slog.Logger

	getStmt *sql.Stmt
	setStmt *sql.Stmt

	mu     sync.Mutex
	closed bool
	stopCh chan struct{}
	doneCh chan struct{}
}

// NewStore opens (creating if necessary) the settings database at the
// configured path.
func NewStore(cfg *StoreConfig) (*Store, error) {
	if cfg == nil {
		cfg = DefaultStoreConfig()
	}
	if cfg.Path == "" {
		return nil, errors.New("settings store path is required")
	}

	if dir := filepath.Dir(cfg.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return nil, fmt.Errorf("failed to create settings directory: %w", err)
		}
	}

	dsn := fmt.Sprintf("%s?_journal_mode=WAL&_busy_timeout=%d&_synchronous=NORMAL",
		cfg.Path, int(cfg.BusyTimeout.Milliseconds()))

	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open settings database: %w", err)
	}

	// SQLite only supports a single writer.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize settings schema: %w", err)
	}

	s := &Store{
		db:     db,
		config: cfg,
		logger: slog.Default().With("component", "settings.store"),
		stopCh: make(chan struct{}),
		doneCh: make(chan struct{}),
	}

	if err := s.prepareStatements(); err != nil {
		db.Close()
		return nil, err
	}

	if cfg.CheckpointInterval > 0 {
		go s.checkpointLoop()
	} else {
		close(s.doneCh)
	}

	return s, nil
}

func (s *Store) prepareStatements() error {
	var err error

	s.getStmt, err = s.db.Prepare(`SELECT value FROM settings WHERE key = ?`)
	if err != nil {
		return fmt.Errorf("failed to prepare get statement: %w", err)
	}

	s.setStmt, err = s.db.Prepare(`
		INSERT INTO settings (key, value, updated_at) VALUES (?, ?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value,
			updated_at = excluded.updated_at`)
	if err != nil {
		return fmt.Errorf("failed to prepare set statement: %w", err)
	}

	return nil
}

// checkpointLoop periodically checkpoints the WAL so it does not grow
// without bound between restarts.
func (s *Store) checkpointLoop() {
	defer close(s.doneCh)

	ticker := time.NewTicker(s.config.CheckpointInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if _, err := s.db.Exec(`PRAGMA wal_checkpoint(TRUNCATE)`); err != nil {
				s.logger.Warn("wal checkpoint failed", "error", err)
			}
		case <-s.stopCh:
			return
		}
	}
}

// Get returns the raw value stored under key. The second return value is
// false when the key has never been set.
func (s *Store) Get(ctx context.Context, key string) (string, bool, error) {
	var value string
	err := s.getStmt.QueryRowContext(ctx, key).Scan(&value)
	if errors.Is(err, sql.ErrNoRows) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read setting %q: %w", key, err)
	}
	return value, true, nil
}

// Set stores value under key, replacing any previous value.
func (s *Store) Set(ctx context.Context, key, value string) error {
	now := time.Now().UTC().Unix()
	if _, err := s.setStmt.ExecContext(ctx, key, value, now); err != nil {
		return fmt.Errorf("failed to write setting %q: %w", key, err)
	}
	return nil
}

// Load reads the persisted settings, filling anything unset from defaults.
func (s *Store) Load(ctx context.Context) (Settings, error) {
	out := Default()

	if v, ok, err := s.Get(ctx, KeyTheme); err != nil {
		return out, err
	} else if ok {
		out.Theme = v
	}

	if v, ok, err := s.Get(ctx, KeyDefaultMode); err != nil {
		return out, err
	} else if ok {
		out.DefaultMode = v
	}

	if v, ok, err := s.Get(ctx, KeyDebounceMs); err != nil {
		return out, err
	} else if ok {
		ms, convErr := strconv.Atoi(v)
		if convErr != nil {
			s.logger.Warn("ignoring malformed debounce setting", "value", v)
		} else {
			out.DebounceMs = ms
		}
	}

	return out, nil
}

// Save persists all settings fields.
func (s *Store) Save(ctx context.Context, settings Settings) error {
	if err := s.Set(ctx, KeyTheme, settings.Theme); err != nil {
		return err
	}
	if err := s.Set(ctx, KeyDefaultMode, settings.DefaultMode); err != nil {
		return err
	}
	return s.Set(ctx, KeyDebounceMs, strconv.Itoa(settings.DebounceMs))
}

// Ping verifies the database connection is alive.
func (s *Store) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// Close stops the checkpoint loop and closes the database.
func (s *Store) Close() error {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil
	}
	s.closed = true
	s.mu.Unlock()

	close(s.stopCh)
	<-s.doneCh

	if s.getStmt != nil {
		s.getStmt.Close()
	}
	if s.setStmt != nil {
		s.setStmt.Close()
	}

	return s.db.Close()
}
