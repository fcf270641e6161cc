package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

type failingCloser struct{ err error }

func (c failingCloser) Close() error { return c.err }

func TestSafeCloseWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeCloseWithLogging(failingCloser{err: errors.New("close failed")}, logger, "db_close")
	assert.Contains(t, buf.String(), "close failed")
	assert.Contains(t, buf.String(), "db_close")

	buf.Reset()
	SafeCloseWithLogging(failingCloser{}, logger, "db_close")
	assert.Empty(t, buf.String())

	assert.NotPanics(t, func() {
		SafeCloseWithLogging(nil, logger, "db_close")
	})
}

type fakeTx struct{ err error }

func (tx fakeTx) Rollback() error { return tx.err }

func TestSafeRollbackWithLogging(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	SafeRollbackWithLogging(fakeTx{err: errors.New("rollback failed")}, logger, "add_favorite")
	assert.Contains(t, buf.String(), "rollback failed")

	buf.Reset()
	SafeRollbackWithLogging(fakeTx{err: errors.New("sql: transaction has already been committed or rolled back")}, logger, "add_favorite")
	assert.Empty(t, buf.String())
}

func TestHandleDeferredError(t *testing.T) {
	var buf bytes.Buffer
	logger := NewStructuredLogger(&buf, slog.LevelInfo)

	t.Run("propagates deferred failure when no original error", func(t *testing.T) {
		var err error
		HandleDeferredError(&err, func() error { return errors.New("flush failed") }, logger, "flush")
		assert.Error(t, err)
		assert.Contains(t, err.Error(), "flush failed")
	})

	t.Run("keeps original error", func(t *testing.T) {
		original := errors.New("original")
		err := original
		HandleDeferredError(&err, func() error { return errors.New("flush failed") }, logger, "flush")
		assert.Equal(t, original, err)
	})

	t.Run("no-op on success", func(t *testing.T) {
		var err error
		HandleDeferredError(&err, func() error { return nil }, logger, "flush")
		assert.NoError(t, err)
	})
}
