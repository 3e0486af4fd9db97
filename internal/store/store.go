package store

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/abhisek/careerfit/internal/catalog"
	"github.com/abhisek/careerfit/internal/schema"
)

// RecordKey is the well-known key the completed answer map is stored under.
const RecordKey = "assessmentAnswers"

// Backend names accepted by Open.
const (
	BackendSQLite = "sqlite"
	BackendRedis  = "redis"
	BackendMemory = "memory"
)

// ErrUnknownBackend is returned by Open for an unrecognised backend name.
var ErrUnknownBackend = errors.New("unknown store backend")

// AnswerStore persists the single completed-assessment record.
type AnswerStore interface {
	// Load returns the stored record, or nil if none exists or the stored
	// document cannot be read back.
	Load(ctx context.Context) (*Record, error)

	// Save replaces the stored record with answers.
	Save(ctx context.Context, answers catalog.AnswerMap) (*Record, error)

	// Clear removes the stored record. Clearing an empty store is not an error.
	Clear(ctx context.Context) error
}

// Backend is a minimal byte-oriented key-value store.
type Backend interface {
	// Get returns the value for key and whether it exists.
	Get(ctx context.Context, key string) ([]byte, bool, error)
	Put(ctx context.Context, key string, value []byte) error
	Delete(ctx context.Context, key string) error
	Close() error
}

// Store implements AnswerStore on top of a Backend.
type Store struct {
	backend Backend
	log     *zap.Logger
	now     func() time.Time
	newID   func() string
}

var _ AnswerStore = (*Store)(nil)

// New wraps a backend. A nil logger discards log output.
func New(b Backend, log *zap.Logger) *Store {
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		backend: b,
		log:     log.Named("store"),
		now:     time.Now,
		newID:   func() string { return uuid.New().String() },
	}
}

// Options selects and configures a backend for Open.
type Options struct {
	Backend string
	Path    string // SQLite database file
	Redis   RedisOptions
	Logger  *zap.Logger
}

// Open builds a Store for the configured backend.
func Open(ctx context.Context, opts Options) (*Store, error) {
	var (
		b   Backend
		err error
	)
	switch opts.Backend {
	case BackendSQLite, "":
		if err := EnsureDir(opts.Path); err != nil {
			return nil, fmt.Errorf("create data dir: %w", err)
		}
		b, err = OpenSQLite(opts.Path)
	case BackendRedis:
		b, err = OpenRedis(ctx, opts.Redis)
	case BackendMemory:
		b = NewMemory()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownBackend, opts.Backend)
	}
	if err != nil {
		return nil, err
	}
	return New(b, opts.Logger), nil
}

// Load returns the stored record, or nil if none exists or it cannot be read.
func (s *Store) Load(ctx context.Context) (*Record, error) {
	raw, ok, err := s.backend.Get(ctx, RecordKey)
	if err != nil {
		return nil, fmt.Errorf("load record: %w", err)
	}
	if !ok {
		return nil, nil
	}

	rec, err := DecodeRecord(raw)
	if err != nil {
		// An unreadable record means no assessment is in progress.
		var invalid *schema.ErrInvalidDocument
		if errors.As(err, &invalid) {
			s.log.Warn("ignoring unreadable answer record", zap.Error(err))
			return nil, nil
		}
		return nil, fmt.Errorf("decode record: %w", err)
	}

	s.log.Debug("loaded answer record",
		zap.String("attempt_id", rec.AttemptID),
		zap.Int("answers", len(rec.Answers)))
	return rec, nil
}

// Save stamps the answers with a new attempt ID and time and stores them,
// replacing any earlier record.
func (s *Store) Save(ctx context.Context, answers catalog.AnswerMap) (*Record, error) {
	rec := &Record{
		Version:     RecordVersion,
		AttemptID:   s.newID(),
		CompletedAt: s.now().UTC().Truncate(time.Second),
		Answers:     answers.Clone(),
	}

	raw, err := EncodeRecord(rec)
	if err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	if err := s.backend.Put(ctx, RecordKey, raw); err != nil {
		return nil, fmt.Errorf("save record: %w", err)
	}

	s.log.Info("saved answer record",
		zap.String("attempt_id", rec.AttemptID),
		zap.Int("answers", len(rec.Answers)))
	return rec, nil
}

// Clear deletes the stored record.
func (s *Store) Clear(ctx context.Context) error {
	if err := s.backend.Delete(ctx, RecordKey); err != nil {
		return fmt.Errorf("clear record: %w", err)
	}
	s.log.Info("cleared answer record")
	return nil
}

// Close closes the underlying backend.
func (s *Store) Close() error {
	return s.backend.Close()
}

// DefaultDataDir resolves the data directory in priority order:
// 1. $XDG_DATA_HOME/careerfit
// 2. ~/.local/share/careerfit
func DefaultDataDir() (string, error) {
	dataHome := os.Getenv("XDG_DATA_HOME")
	if dataHome == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("resolve home dir: %w", err)
		}
		dataHome = filepath.Join(home, ".local", "share")
	}
	return filepath.Join(dataHome, "careerfit"), nil
}

// EnsureDir creates the parent directory of path if it doesn't exist.
func EnsureDir(path string) error {
	dir := filepath.Dir(path)
	return os.MkdirAll(dir, 0o755)
}
