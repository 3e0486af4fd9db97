package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func openTestSQLite(t *testing.T) *SQLiteBackend {
	t.Helper()
	b, err := OpenSQLite(filepath.Join(t.TempDir(), "careerfit.db"))
	require.NoError(t, err)
	t.Cleanup(func() { b.Close() })
	return b
}

func TestSQLitePragmasApplied(t *testing.T) {
	b := openTestSQLite(t)

	tests := []struct {
		pragma string
		want   string
	}{
		{"journal_mode", "wal"},
		{"synchronous", "1"}, // NORMAL = 1
		{"busy_timeout", "5000"},
	}

	for _, tt := range tests {
		var got string
		err := b.DB().QueryRow("PRAGMA " + tt.pragma).Scan(&got)
		if err != nil {
			t.Errorf("PRAGMA %s: %v", tt.pragma, err)
			continue
		}
		if got != tt.want {
			t.Errorf("PRAGMA %s = %q, want %q", tt.pragma, got, tt.want)
		}
	}
}

func TestSQLiteGetPutDelete(t *testing.T) {
	ctx := context.Background()
	b := openTestSQLite(t)

	_, ok, err := b.Get(ctx, "missing")
	require.NoError(t, err)
	assert.False(t, ok)

	require.NoError(t, b.Put(ctx, "k", []byte("one")))
	require.NoError(t, b.Put(ctx, "k", []byte("two")))

	got, ok, err := b.Get(ctx, "k")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, []byte("two"), got)

	var rows int
	require.NoError(t, b.DB().QueryRow(`SELECT COUNT(*) FROM records`).Scan(&rows))
	assert.Equal(t, 1, rows)

	require.NoError(t, b.Delete(ctx, "k"))
	_, ok, err = b.Get(ctx, "k")
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestSQLiteRecordSurvivesReopen(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "careerfit.db")

	b, err := OpenSQLite(path)
	require.NoError(t, err)
	s := New(b, zap.NewNop())
	_, err = s.Save(ctx, sampleAnswers())
	require.NoError(t, err)
	require.NoError(t, s.Close())

	b, err = OpenSQLite(path)
	require.NoError(t, err)
	s = New(b, zap.NewNop())
	defer s.Close()

	rec, err := s.Load(ctx)
	require.NoError(t, err)
	require.NotNil(t, rec)
	assert.Equal(t, sampleAnswers(), rec.Answers)
}

func newMockBackend(t *testing.T) (*SQLiteBackend, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)

	mock.ExpectExec("CREATE TABLE IF NOT EXISTS records").
		WillReturnResult(sqlmock.NewResult(0, 0))

	b, err := newSQLiteBackend(db)
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return b, mock
}

func TestSQLiteBackendErrors(t *testing.T) {
	ctx := context.Background()
	diskErr := errors.New("disk I/O error")

	t.Run("load", func(t *testing.T) {
		b, mock := newMockBackend(t)
		mock.ExpectQuery("SELECT value FROM records WHERE key = ?").
			WithArgs(RecordKey).
			WillReturnError(diskErr)

		_, err := New(b, nil).Load(ctx)
		assert.ErrorIs(t, err, diskErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("save", func(t *testing.T) {
		b, mock := newMockBackend(t)
		mock.ExpectExec("INSERT INTO records").
			WithArgs(RecordKey, sqlmock.AnyArg(), sqlmock.AnyArg()).
			WillReturnError(diskErr)

		rec, err := New(b, nil).Save(ctx, sampleAnswers())
		assert.Nil(t, rec)
		assert.ErrorIs(t, err, diskErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("clear", func(t *testing.T) {
		b, mock := newMockBackend(t)
		mock.ExpectExec("DELETE FROM records WHERE key = ?").
			WithArgs(RecordKey).
			WillReturnError(diskErr)

		err := New(b, nil).Clear(ctx)
		assert.ErrorIs(t, err, diskErr)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("create table", func(t *testing.T) {
		db, mock, err := sqlmock.New()
		require.NoError(t, err)
		defer db.Close()

		mock.ExpectExec("CREATE TABLE IF NOT EXISTS records").WillReturnError(diskErr)

		_, err = newSQLiteBackend(db)
		assert.ErrorIs(t, err, diskErr)
	})
}
