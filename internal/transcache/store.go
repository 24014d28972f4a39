package transcache

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gofrs/flock"
	_ "modernc.org/sqlite"
)

//go:embed schema.sql
var schemaSQL string

// Store manages cached transcriptions backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
	lock *flock.Flock
}

// Entry is one cached transcription payload.
type Entry struct {
	AudioHash string
	Model     string
	Language  string
	Payload   []byte
	CreatedAt time.Time
}

// Open initializes or connects to the cache database in dir and acquires the
// writer lock. Callers must Close the store to release the lock.
func Open(dir string) (*Store, error) {
	if strings.TrimSpace(dir) == "" {
		return nil, errors.New("cache directory required")
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create cache directory: %w", err)
	}

	lock := flock.New(filepath.Join(dir, "transcriptions.lock"))
	ok, err := lock.TryLock()
	if err != nil {
		return nil, fmt.Errorf("acquire cache lock: %w", err)
	}
	if !ok {
		return nil, errors.New("transcription cache is in use by another lyricsync process")
	}

	dbPath := filepath.Join(dir, "transcriptions.db")
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		_ = lock.Unlock()
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			_ = lock.Unlock()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		_ = lock.Unlock()
		return nil, fmt.Errorf("create schema: %w", err)
	}

	return &Store{db: db, path: dbPath, lock: lock}, nil
}

// Close closes the database and releases the writer lock.
func (s *Store) Close() error {
	if s == nil {
		return nil
	}
	var errs []error
	if s.db != nil {
		if err := s.db.Close(); err != nil {
			errs = append(errs, err)
		}
		s.db = nil
	}
	if s.lock != nil {
		if err := s.lock.Unlock(); err != nil {
			errs = append(errs, err)
		}
		s.lock = nil
	}
	return errors.Join(errs...)
}

// Path returns the database file location.
func (s *Store) Path() string {
	return s.path
}

// Get fetches a cached payload for the audio hash and model. The boolean is
// false on a miss.
func (s *Store) Get(ctx context.Context, audioHash, model string) (*Entry, bool, error) {
	row := s.db.QueryRowContext(
		ctx,
		`SELECT audio_hash, model, language, payload, created_at
         FROM transcriptions WHERE audio_hash = ? AND model = ?`,
		audioHash, model,
	)

	var entry Entry
	var language sql.NullString
	var createdAt string
	err := row.Scan(&entry.AudioHash, &entry.Model, &language, &entry.Payload, &createdAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("get cached transcription: %w", err)
	}
	entry.Language = language.String
	if parsed, parseErr := time.Parse(time.RFC3339Nano, createdAt); parseErr == nil {
		entry.CreatedAt = parsed
	}
	return &entry, true, nil
}

// Put stores or replaces the payload for the audio hash and model.
func (s *Store) Put(ctx context.Context, audioHash, model, language string, payload []byte) error {
	if audioHash == "" || model == "" {
		return errors.New("audio hash and model required")
	}
	if len(payload) == 0 {
		return errors.New("payload required")
	}
	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO transcriptions (audio_hash, model, language, payload, created_at)
         VALUES (?, ?, ?, ?, ?)
         ON CONFLICT (audio_hash, model) DO UPDATE SET
             language = excluded.language,
             payload = excluded.payload,
             created_at = excluded.created_at`,
		audioHash, model, nullableString(language), payload,
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("store transcription: %w", err)
	}
	return nil
}

// Clear removes every cached transcription.
func (s *Store) Clear(ctx context.Context) (int64, error) {
	res, err := s.db.ExecContext(ctx, `DELETE FROM transcriptions`)
	if err != nil {
		return 0, fmt.Errorf("clear cache: %w", err)
	}
	removed, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}
	return removed, nil
}

// Count returns the number of cached transcriptions.
func (s *Store) Count(ctx context.Context) (int64, error) {
	var count int64
	if err := s.db.QueryRowContext(ctx, `SELECT COUNT(1) FROM transcriptions`).Scan(&count); err != nil {
		return 0, fmt.Errorf("count cache entries: %w", err)
	}
	return count, nil
}

func nullableString(value string) any {
	if strings.TrimSpace(value) == "" {
		return nil
	}
	return value
}
