// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-messenger/internal/logger"
	"github.com/MKhiriev/go-messenger/models"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSQLStorage(t *testing.T) (*sqlStorage, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	l := logger.Nop()
	storage := NewSQLStorage(newPostgresDB(db, l), l).(*sqlStorage)
	return storage, mock
}

func pgError(code string) error {
	return &pgconn.PgError{Code: code}
}

var messageRowColumns = []string{"id", "text", "from_id", "to_id", "from_name", "to_name", "is_read", "created_at"}

func TestSQLStorage_CreateUser_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO users (name) VALUES ($1) RETURNING id")).
		WithArgs("Alice").
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(1))

	user, err := s.CreateUser(context.Background(), "Alice")

	require.NoError(t, err)
	assert.Equal(t, models.User{ID: 1, Name: "Alice"}, user)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_CreateUser_DBError(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery("INSERT INTO users").WillReturnError(errors.New("connection reset"))

	_, err := s.CreateUser(context.Background(), "Alice")

	assert.ErrorIs(t, err, ErrExecutingQuery)
}

func TestSQLStorage_ListUsers(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM users ORDER BY id ASC")).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}).AddRow(1, "Alice").AddRow(2, "Bob"))

	users, err := s.ListUsers(context.Background())

	require.NoError(t, err)
	assert.Equal(t, []models.User{{ID: 1, Name: "Alice"}, {ID: 2, Name: "Bob"}}, users)
}

func TestSQLStorage_ListUsers_EmptyIsNotNil(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery("SELECT id, name FROM users").
		WillReturnRows(sqlmock.NewRows([]string{"id", "name"}))

	users, err := s.ListUsers(context.Background())

	require.NoError(t, err)
	assert.NotNil(t, users)
	assert.Empty(t, users)
}

func TestSQLStorage_GetUser_NotFound(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, name FROM users WHERE id = $1")).
		WithArgs(int64(9)).
		WillReturnError(sql.ErrNoRows)

	_, err := s.GetUser(context.Background(), 9)

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLStorage_CreateMessage_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	createdAt := time.Date(2026, 3, 4, 15, 16, 17, 0, time.UTC)
	msg := models.Message{Text: "hi", FromID: 1, ToID: 2, FromName: "Alice", ToName: "Bob", CreatedAt: createdAt}

	mock.ExpectQuery("INSERT INTO messages").
		WithArgs("hi", int64(1), int64(2), "Alice", "Bob", false, createdAt).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(10))

	got, err := s.CreateMessage(context.Background(), msg)

	require.NoError(t, err)
	assert.Equal(t, int64(10), got.ID)
	assert.Equal(t, "15:16:17", got.Timestamp)
}

func TestSQLStorage_CreateMessage_ForeignKeyViolation(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery("INSERT INTO messages").
		WillReturnError(pgError(pgerrcode.ForeignKeyViolation))

	_, err := s.CreateMessage(context.Background(), models.Message{Text: "hi", FromID: 1, ToID: 99})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestSQLStorage_ListInbox(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	createdAt := time.Date(2026, 3, 4, 8, 0, 1, 0, time.UTC)

	mock.ExpectQuery(regexp.QuoteMeta("FROM messages WHERE to_id = $1 ORDER BY id ASC")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows(messageRowColumns).
			AddRow(1, "hi", 1, 2, "Alice", "Bob", false, createdAt).
			AddRow(3, "again", 1, 2, "Alice", "Bob", true, createdAt))

	inbox, err := s.ListInbox(context.Background(), 2)

	require.NoError(t, err)
	require.Len(t, inbox, 2)
	assert.Equal(t, models.Message{
		ID: 1, Text: "hi", FromID: 1, ToID: 2, FromName: "Alice", ToName: "Bob",
		Timestamp: "08:00:01", CreatedAt: createdAt,
	}, inbox[0])
	assert.True(t, inbox[1].IsRead)
}

func TestSQLStorage_ListMessages_ScanError(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery("FROM messages").
		WillReturnRows(sqlmock.NewRows(messageRowColumns).
			AddRow("not-a-number", "hi", 1, 2, "Alice", "Bob", false, time.Now()))

	_, err := s.ListMessages(context.Background())

	assert.ErrorIs(t, err, ErrScanningRows)
}

func TestSQLStorage_MarkRead_Success(t *testing.T) {
	s, mock := newTestSQLStorage(t)
	createdAt := time.Now()

	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET is_read = $1 WHERE id = $2")).
		WithArgs(true, int64(42)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery(regexp.QuoteMeta("FROM messages WHERE id = $1")).
		WithArgs(int64(42)).
		WillReturnRows(sqlmock.NewRows(messageRowColumns).
			AddRow(42, "hi", 1, 2, "Alice", "Bob", true, createdAt))

	msg, err := s.MarkRead(context.Background(), 42)

	require.NoError(t, err)
	assert.True(t, msg.IsRead)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSQLStorage_MarkRead_NotFound(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec("UPDATE messages").
		WillReturnResult(sqlmock.NewResult(0, 0))

	_, err := s.MarkRead(context.Background(), 42)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestSQLStorage_UpdateMessage(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE messages SET is_read = $1, text = $2 WHERE id = $3")).
		WithArgs(false, "edited", int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectQuery("FROM messages WHERE id").
		WillReturnRows(sqlmock.NewRows(messageRowColumns).
			AddRow(5, "edited", 1, 2, "Alice", "Bob", false, time.Now()))

	msg, err := s.UpdateMessage(context.Background(), models.UpdateMessageRequest{ID: 5, Text: "edited"})

	require.NoError(t, err)
	assert.Equal(t, "edited", msg.Text)
}

func TestSQLStorage_GetMessage_NotFound(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery("FROM messages WHERE id").WillReturnError(sql.ErrNoRows)

	_, err := s.GetMessage(context.Background(), 5)

	assert.ErrorIs(t, err, ErrMessageNotFound)
}

func TestSQLStorage_DeleteMessage(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectExec(regexp.QuoteMeta("DELETE FROM messages WHERE id = $1")).
		WithArgs(int64(5)).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectExec("DELETE FROM messages").
		WillReturnResult(sqlmock.NewResult(0, 0))

	require.NoError(t, s.DeleteMessage(context.Background(), 5))
	assert.ErrorIs(t, s.DeleteMessage(context.Background(), 5), ErrMessageNotFound)
}

func TestSQLStorage_Counts(t *testing.T) {
	s, mock := newTestSQLStorage(t)

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM users")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(2))
	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM messages")).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(5))

	users, messages, err := s.Counts(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 2, users)
	assert.Equal(t, 5, messages)
}

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	assert.ErrorIs(t, c.Classify(pgError(pgerrcode.ForeignKeyViolation)), ErrUserNotFound)
	assert.NoError(t, c.Classify(pgError(pgerrcode.UniqueViolation)))
	assert.NoError(t, c.Classify(errors.New("plain")))
}
